// Package engine runs local matches between two agents over the shared
// game.State contract.
package engine

import (
	"golang.org/x/exp/rand"

	"github.com/solb/cs4gamesolver/game"
	"github.com/solb/cs4gamesolver/solver"
)

// MaxMoves stops a runaway match; no supported game comes near it.
const MaxMoves = 10000

// Agent picks the next position from the current one. A nil result means the
// agent has no move to make.
type Agent interface {
	Choose(state game.State) game.State
}

// SolverAgent plays whichever successor the solver values best for the side
// to move.
type SolverAgent struct {
	solver *solver.Solver
}

func NewSolverAgent(s *solver.Solver) *SolverAgent {
	return &SolverAgent{solver: s}
}

func (a *SolverAgent) Choose(state game.State) game.State {
	successor, _, _ := a.solver.BestSuccessor(state)
	return successor
}

// RandomAgent plays a uniformly random successor.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Choose(state game.State) game.State {
	successors := state.Successors()
	if len(successors) == 0 {
		return nil
	}
	return successors[a.rng.Intn(len(successors))]
}
