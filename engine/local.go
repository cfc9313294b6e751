package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/solb/cs4gamesolver/game"
)

// Engine drives one local match. The engine-side agent moves whenever the
// state reports the engine's turn; the opponent agent moves otherwise.
type Engine struct {
	State    game.State
	engine   Agent
	opponent Agent
}

func Local(start game.State, engineSide, opponentSide Agent) *Engine {
	if start == nil {
		panic("need a starting state")
	}
	if engineSide == nil || opponentSide == nil {
		panic("need an agent for each side")
	}
	return &Engine{State: start, engine: engineSide, opponent: opponentSide}
}

// Run executes the match until it is decided, verifying each chosen position
// against the previous one and logging the reconstructed move. It returns
// the final score.
func (e *Engine) Run() game.Score {
	log.Info().Msgf("starting match: %s", e.State)

	moves := 0
	for !e.State.GameOver() && moves < MaxMoves {
		agent := e.opponent
		side := "opponent"
		if e.State.EngineTurn() {
			agent = e.engine
			side = "engine"
		}

		next := agent.Choose(e.State)
		if next == nil {
			log.Warn().Msgf("%s has no move in a non-terminal state: %s", side, e.State)
			break
		}
		if !e.State.Subsequent(next) {
			panic("agent chose a position not reachable in one move")
		}
		log.Info().Msgf("%s: %s", side, e.State.Diff(next))

		e.State = next
		moves++
	}

	score := e.State.Score()
	log.Info().Msgf("match over after %d moves: %s", moves, score)
	return score
}
