// Package kayles models positions of the pin-toppling game Kayles. A move
// topples one or two adjacent pins from a single group, which may split the
// remainder of the group in two. The player left without pins to topple loses.
package kayles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/solb/cs4gamesolver/game"
)

const (
	// MinTaken is the fewest pins a player may topple per turn.
	MinTaken = 1
	// MaxTaken is the most pins a player may topple per turn.
	MaxTaken = 2
)

// State is an immutable Kayles position: one pin count per live group, in
// order. Groups of zero pins are never stored.
type State struct {
	pins       []int
	engineTurn bool
	hash       game.StateHash
}

// Move topples Taken pins from the group at index Group, starting at the
// 0-based offset Pin within that group.
type Move struct {
	Group int
	Pin   int
	Taken int
}

func (m Move) String() string {
	return fmt.Sprintf("topple %d pin(s) from group %d starting at pin %d", m.Taken, m.Group, m.Pin)
}

// New builds a root position. The caller is trusted to supply only positive
// group counts; the slice is copied, never aliased.
func New(pins []int, engineTurn bool) *State {
	s := &State{
		pins:       slices.Clone(pins),
		engineTurn: engineTurn,
	}
	s.cacheHash()
	return s
}

// Play builds the position resulting from m. The pin span must be
// structurally addressable within an existing group; Play panics otherwise.
// It does not check that Taken respects the per-turn limit - only Successors
// guarantees fully legal derivations. The turn flips unconditionally.
func (s *State) Play(m Move) *State {
	if m.Group < 0 || m.Group >= len(s.pins) {
		panic(fmt.Sprintf("kayles: group %d out of range [0,%d)", m.Group, len(s.pins)))
	}
	count := s.pins[m.Group]
	if m.Pin < 0 || m.Taken < 1 || m.Pin+m.Taken > count {
		panic(fmt.Sprintf("kayles: cannot topple %d pin(s) at offset %d of a group of %d", m.Taken, m.Pin, count))
	}

	left, right := m.Pin, count-m.Pin-m.Taken
	pins := make([]int, 0, len(s.pins)+1)
	pins = append(pins, s.pins[:m.Group]...)
	if left > 0 {
		pins = append(pins, left)
	}
	if right > 0 {
		pins = append(pins, right)
	}
	pins = append(pins, s.pins[m.Group+1:]...)

	next := &State{pins: pins, engineTurn: !s.engineTurn}
	next.cacheHash()
	return next
}

// EngineTurn reports whether the engine side is up.
func (s *State) EngineTurn() bool {
	return s.engineTurn
}

// GameOver reports whether every pin has been toppled.
func (s *State) GameOver() bool {
	return len(s.pins) == 0
}

// Score applies the normal-play convention: whoever faces an empty table has
// no move and loses.
func (s *State) Score() game.Score {
	if !s.GameOver() {
		return game.Undecided
	}
	if s.engineTurn {
		return game.OpponentWin
	}
	return game.EngineWin
}

// Groups counts the live pin groups.
func (s *State) Groups() int {
	return len(s.pins)
}

// PinsInGroup counts the pins in one group, or -1 if the group doesn't exist.
func (s *State) PinsInGroup(group int) int {
	if group < 0 || group >= len(s.pins) {
		return -1
	}
	return s.pins[group]
}

// Successors returns every position reachable in one legal move: for each
// group in order, every contiguous removal of 1 then 2 pins by increasing
// offset. Distinct moves yielding equal positions each appear once.
func (s *State) Successors() []game.State {
	var successors []game.State
	for group, count := range s.pins {
		for taken := MinTaken; taken <= MaxTaken; taken++ {
			for pin := 0; pin+taken <= count; pin++ {
				successors = append(successors, s.Play(Move{Group: group, Pin: pin, Taken: taken}))
			}
		}
	}
	return successors
}

// Hash returns the transposition key cached at construction.
func (s *State) Hash() game.StateHash {
	return s.hash
}

// Equal reports whether the turns and pin groups match.
func (s *State) Equal(other game.State) bool {
	o, ok := other.(*State)
	if !ok {
		return false
	}
	return s.engineTurn == o.engineTurn && slices.Equal(s.pins, o.pins)
}

// Subsequent reports whether next could have resulted from exactly one legal
// move applied to s.
func (s *State) Subsequent(next game.State) bool {
	n, ok := next.(*State)
	if !ok {
		return false
	}
	_, ok = reconstruct(s, n)
	return ok
}

// Diff finds the move made to get between two positions. It panics unless
// the positions are exactly one legal move apart.
func (s *State) Diff(next game.State) game.Move {
	n, ok := next.(*State)
	if !ok {
		panic("kayles: diff against a state of a different game")
	}
	move, ok := reconstruct(s, n)
	if !ok {
		panic("kayles: states are not one move apart")
	}
	return move
}

// reconstruct recovers the single move separating first from next, if any.
// Exactly one group may differ, and its replacement must be consistent with
// one contiguous removal: a shrink from either end, a whole-group removal, or
// a two-way split.
func reconstruct(first, next *State) (Move, bool) {
	if first.engineTurn == next.engineTurn {
		return Move{}, false
	}
	delta := len(next.pins) - len(first.pins)
	if delta < -1 || delta > 1 {
		return Move{}, false
	}

	// Locate the first group the move touched.
	group := 0
	for group < len(first.pins) && group < len(next.pins) && first.pins[group] == next.pins[group] {
		group++
	}

	switch delta {
	case -1: // whole group toppled
		if group >= len(first.pins) || !slices.Equal(first.pins[group+1:], next.pins[group:]) {
			return Move{}, false
		}
		taken := first.pins[group]
		if taken < MinTaken || taken > MaxTaken {
			return Move{}, false
		}
		return Move{Group: group, Pin: 0, Taken: taken}, true
	case 0: // group shrank without splitting
		if group >= len(first.pins) || !slices.Equal(first.pins[group+1:], next.pins[group+1:]) {
			return Move{}, false
		}
		taken := first.pins[group] - next.pins[group]
		if taken < MinTaken || taken > MaxTaken {
			return Move{}, false
		}
		return Move{Group: group, Pin: 0, Taken: taken}, true
	default: // group split in two
		if group >= len(first.pins) || group+1 >= len(next.pins) ||
			!slices.Equal(first.pins[group+1:], next.pins[group+2:]) {
			return Move{}, false
		}
		left, right := next.pins[group], next.pins[group+1]
		taken := first.pins[group] - left - right
		if taken < MinTaken || taken > MaxTaken {
			return Move{}, false
		}
		return Move{Group: group, Pin: left, Taken: taken}, true
	}
}

// String produces a debugging synopsis.
func (s *State) String() string {
	var b strings.Builder
	if s.engineTurn {
		b.WriteString("kayles: engine to move, pins:")
	} else {
		b.WriteString("kayles: opponent to move, pins:")
	}
	for _, count := range s.pins {
		fmt.Fprintf(&b, " %d", count)
	}
	if len(s.pins) == 0 {
		b.WriteString(" (none)")
	}
	return b.String()
}

func (s *State) cacheHash() {
	h := game.NewHasher()
	h.WriteBool(s.engineTurn)
	for _, count := range s.pins {
		h.WriteInt(count)
	}
	s.hash = h.Sum()
}
