package game

import "fmt"

// Score is the outcome of a match from the engine's point of view.
type Score int

const (
	OpponentWin Score = -1
	Undecided   Score = 0
	EngineWin   Score = 1
)

func (s Score) String() string {
	switch s {
	case OpponentWin:
		return "opponent wins"
	case EngineWin:
		return "engine wins"
	default:
		return "undecided"
	}
}

// StateHash is a transposition key. Equal states always hash identically;
// unequal states may collide, so any cache keyed by StateHash must confirm
// candidates with Equal before trusting them.
type StateHash uint64

// Move identifies the transition between two subsequent states. The concrete
// shape is variant-specific; every descriptor prints a human-readable form.
type Move interface {
	fmt.Stringer
}

// State is an immutable snapshot of one game at a fixed point in time,
// including whose turn it is. Operations never mutate a State - derived
// states are fresh, independently owned values.
type State interface {
	// EngineTurn reports whether the engine side is up.
	EngineTurn() bool
	// GameOver reports whether no legal move remains, or (for board games
	// with a win condition) a winner has already been decided.
	GameOver() bool
	// Score is only meaningful once GameOver reports true, except for
	// variants that cache a decided outcome eagerly.
	Score() Score
	// Successors returns the complete, order-significant set of states
	// reachable in exactly one legal move, each with the turn flipped.
	// The slice is a fully materialized snapshot the caller may keep.
	Successors() []State
	// Hash returns the transposition key cached at construction.
	Hash() StateHash
	// Equal compares logical state only: turn owner plus the full board or
	// tray representation. Cached hashes and outcomes are not considered.
	// States of different game variants are never equal.
	Equal(State) bool
	// Subsequent reports whether next could have resulted from exactly one
	// legal move applied to the receiver.
	Subsequent(next State) bool
	// Diff reconstructs the move that transforms the receiver into next.
	// It panics unless Subsequent(next) holds.
	Diff(next State) Move
	// String produces a debugging synopsis. It is not a stable
	// serialization format.
	String() string
}

// Evaluate scores a non-terminal state between -1 and 1 indicating how
// favorable the position is to an engine (positive) win.
type Evaluate func(State) float64
