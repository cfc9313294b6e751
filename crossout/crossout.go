// Package crossout models positions of the Crossout game. The numbers 1..N
// start on a tray; a move crosses out one or two remaining numbers whose sum
// does not exceed the game's bound. The player left without a legal crossing
// loses.
package crossout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/solb/cs4gamesolver/game"
)

const (
	// MinTaken is the fewest numbers a player may cross out per turn.
	MinTaken = 1
	// MaxTaken is the most numbers a player may cross out per turn.
	MaxTaken = 2
)

// State is an immutable Crossout position: the per-game sum bound, one
// presence flag per number 1..N, and the turn owner. The tray size never
// changes after construction.
type State struct {
	bound      int
	tray       []bool
	engineTurn bool
	hash       game.StateHash
}

// Move crosses out the 1-based numbers First and, when nonzero, Second.
type Move struct {
	First  int
	Second int
}

func (m Move) String() string {
	if m.Second == 0 {
		return fmt.Sprintf("cross out %d", m.First)
	}
	return fmt.Sprintf("cross out %d and %d", m.First, m.Second)
}

// New builds a root position with every number 1..high still present.
func New(bound, high int, engineTurn bool) *State {
	s := &State{
		bound:      bound,
		tray:       make([]bool, high),
		engineTurn: engineTurn,
	}
	for i := range s.tray {
		s.tray[i] = true
	}
	s.cacheHash()
	return s
}

// Play builds the position resulting from m. The referenced numbers must be
// structurally addressable (within 1..N); Play panics otherwise. It does not
// check presence or the sum bound - only Successors guarantees fully legal
// derivations. The turn flips unconditionally.
func (s *State) Play(m Move) *State {
	if m.First < 1 || m.First > len(s.tray) {
		panic(fmt.Sprintf("crossout: number %d out of range [1,%d]", m.First, len(s.tray)))
	}
	if m.Second != 0 && (m.Second < 1 || m.Second > len(s.tray)) {
		panic(fmt.Sprintf("crossout: number %d out of range [1,%d]", m.Second, len(s.tray)))
	}

	next := &State{
		bound:      s.bound,
		tray:       slices.Clone(s.tray),
		engineTurn: !s.engineTurn,
	}
	next.tray[m.First-1] = false
	if m.Second != 0 {
		next.tray[m.Second-1] = false
	}
	next.cacheHash()
	return next
}

// EngineTurn reports whether the engine side is up.
func (s *State) EngineTurn() bool {
	return s.engineTurn
}

// GameOver reports whether no legal crossing remains. A pair's sum can only
// respect the bound if each member would respect it alone, so it suffices to
// look for any remaining number within the bound.
func (s *State) GameOver() bool {
	for n := 1; n <= len(s.tray) && n <= s.bound; n++ {
		if s.tray[n-1] {
			return false
		}
	}
	return true
}

// Score applies the normal-play convention: whoever faces a tray with no
// legal crossing loses.
func (s *State) Score() game.Score {
	if !s.GameOver() {
		return game.Undecided
	}
	if s.engineTurn {
		return game.OpponentWin
	}
	return game.EngineWin
}

// Bound reports the immutable per-game sum bound.
func (s *State) Bound() int {
	return s.bound
}

// Size reports how many numbers the tray was dealt.
func (s *State) Size() int {
	return len(s.tray)
}

// Present reports whether number n remains on the tray, or false if no such
// number was ever dealt.
func (s *State) Present(n int) bool {
	if n < 1 || n > len(s.tray) {
		return false
	}
	return s.tray[n-1]
}

// Successors returns every position reachable in one legal move: for each
// remaining number within the bound, crossing it out alone, then paired with
// each larger remaining number the bound still allows. Each unordered pair
// appears exactly once.
func (s *State) Successors() []game.State {
	var successors []game.State
	for first := 1; first <= len(s.tray) && first <= s.bound; first++ {
		if !s.tray[first-1] {
			continue
		}
		successors = append(successors, s.Play(Move{First: first}))
		for second := first + 1; second <= len(s.tray) && first+second <= s.bound; second++ {
			if s.tray[second-1] {
				successors = append(successors, s.Play(Move{First: first, Second: second}))
			}
		}
	}
	return successors
}

// Hash returns the transposition key cached at construction.
func (s *State) Hash() game.StateHash {
	return s.hash
}

// Equal reports whether the bounds, trays, and turns match.
func (s *State) Equal(other game.State) bool {
	o, ok := other.(*State)
	if !ok {
		return false
	}
	return s.bound == o.bound && s.engineTurn == o.engineTurn && slices.Equal(s.tray, o.tray)
}

// Subsequent reports whether next could have resulted from exactly one legal
// move applied to s: the turn flipped, 1 or 2 numbers disappeared without any
// reappearing, and what disappeared sums within the bound.
func (s *State) Subsequent(next game.State) bool {
	n, ok := next.(*State)
	if !ok {
		return false
	}
	if s.bound != n.bound || len(s.tray) != len(n.tray) || s.engineTurn == n.engineTurn {
		return false
	}

	count, sum := 0, 0
	for i := range s.tray {
		if n.tray[i] && !s.tray[i] { // uncrossed something!
			return false
		}
		if s.tray[i] && !n.tray[i] {
			count++
			sum += i + 1
		}
	}
	return count >= MinTaken && count <= MaxTaken && sum <= s.bound
}

// Diff finds the move made to get between two positions. It panics unless
// the positions are exactly one legal move apart.
func (s *State) Diff(next game.State) game.Move {
	n, ok := next.(*State)
	if !ok {
		panic("crossout: diff against a state of a different game")
	}
	if !s.Subsequent(next) {
		panic("crossout: states are not one move apart")
	}

	var move Move
	for i := range s.tray {
		if s.tray[i] != n.tray[i] {
			if move.First == 0 {
				move.First = i + 1
			} else {
				move.Second = i + 1
			}
		}
	}
	return move
}

// String produces a debugging synopsis.
func (s *State) String() string {
	var b strings.Builder
	if s.engineTurn {
		b.WriteString("crossout: engine to move, remaining:")
	} else {
		b.WriteString("crossout: opponent to move, remaining:")
	}
	remaining := 0
	for i, present := range s.tray {
		if present {
			fmt.Fprintf(&b, " %d", i+1)
			remaining++
		}
	}
	if remaining == 0 {
		b.WriteString(" (none)")
	}
	fmt.Fprintf(&b, " (sum bound %d)", s.bound)
	return b.String()
}

func (s *State) cacheHash() {
	h := game.NewHasher()
	h.WriteBool(s.engineTurn)
	h.WriteInt(s.bound)
	for _, present := range s.tray {
		h.WriteBool(present)
	}
	s.hash = h.Sum()
}
