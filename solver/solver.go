// Package solver picks moves by depth-limited minimax with alpha-beta pruning
// over the shared game.State contract, memoizing searched positions in a
// transposition table keyed by state hash.
package solver

import (
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/solb/cs4gamesolver/game"
)

// MaxDepth is the default search horizon, deep enough to exhaust the small
// games this solver is pointed at.
const MaxDepth = 64

type Option func(*Solver)

func WithDepth(depth int) Option {
	return func(s *Solver) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluation(evaluate game.Evaluate) Option {
	return func(s *Solver) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = NewCollector()
	}
}

type Solver struct {
	goroutines int
	depth      int
	evaluate   game.Evaluate
	table      *table
	metrics    Collector
}

func New(goroutines int, options ...Option) *Solver {
	if goroutines < 1 {
		panic("Must search with at least one goroutine")
	}
	s := &Solver{ // Default values
		goroutines: goroutines,
		depth:      MaxDepth,
		evaluate:   neutralEvaluation,
		table:      newTable(),
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// neutralEvaluation scores every cutoff position as a likely tie.
func neutralEvaluation(game.State) float64 {
	return 0
}

// BestSuccessor searches the position and returns the successor most
// favorable to the side whose turn it is, with its engine-perspective value.
// A terminal position yields a nil successor and its final score. Root
// successors are searched in parallel across the solver's goroutines; the
// transposition table is shared between searches and between calls.
func (s *Solver) BestSuccessor(state game.State) (game.State, float64, SearchMetric) {
	s.metrics.Start(s.goroutines, s.depth)
	if state.GameOver() {
		return nil, float64(state.Score()), s.metrics.Complete()
	}
	successors := state.Successors()
	if len(successors) == 0 {
		return nil, float64(state.Score()), s.metrics.Complete()
	}

	values := make([]float64, len(successors))
	task := make(chan int, len(successors))
	for i := range successors {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				values[i] = s.search(successors[i], s.depth-1, -valueBound, valueBound)
			}
		}()
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(values); i++ {
		if state.EngineTurn() && values[i] > values[best] {
			best = i
		} else if !state.EngineTurn() && values[i] < values[best] {
			best = i
		}
	}

	metric := s.metrics.Complete()
	log.Debug().Msgf("searched %d successors in %s: %d nodes, %d table hits, %d cutoff evaluations",
		len(successors), metric.Duration, metric.Nodes, metric.TableHits, metric.LeafEvals)
	return successors[best], values[best], metric
}

// valueBound sits outside the [-1, 1] score range so it never collides with
// a real value.
const valueBound = 2.0

func (s *Solver) search(state game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if state.GameOver() {
		return float64(state.Score())
	}
	if depth <= 0 {
		s.metrics.AddLeafEval()
		return s.evaluate(state)
	}

	if e, ok := s.table.probe(state, depth); ok {
		s.metrics.AddTableHit()
		switch e.flag {
		case flagExact:
			return e.value
		case flagLower:
			alpha = math.Max(alpha, e.value)
		case flagUpper:
			beta = math.Min(beta, e.value)
		}
		if alpha >= beta {
			return e.value
		}
	}

	alphaOrig, betaOrig := alpha, beta
	var value float64
	if state.EngineTurn() {
		value = -valueBound
		for _, successor := range state.Successors() {
			value = math.Max(value, s.search(successor, depth-1, alpha, beta))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
	} else {
		value = valueBound
		for _, successor := range state.Successors() {
			value = math.Min(value, s.search(successor, depth-1, alpha, beta))
			beta = math.Min(beta, value)
			if alpha >= beta {
				break
			}
		}
	}

	f := flagExact
	if value <= alphaOrig {
		f = flagUpper
	} else if value >= betaOrig {
		f = flagLower
	}
	s.table.store(state, depth, value, f)
	return value
}
