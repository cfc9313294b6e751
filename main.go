package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/solb/cs4gamesolver/connect"
	"github.com/solb/cs4gamesolver/crossout"
	"github.com/solb/cs4gamesolver/engine"
	"github.com/solb/cs4gamesolver/game"
	"github.com/solb/cs4gamesolver/kayles"
	"github.com/solb/cs4gamesolver/solver"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	pins := []int{3, 4, 5}
	if len(os.Args) > 1 {
		parsed, err := parsePins(os.Args[1:])
		if err != nil {
			log.Fatal().Err(err).Msg("invalid pin arrangement")
		}
		pins = parsed
	}

	fmt.Println("Kayles, engine up first:")
	runMatch(kayles.New(pins, true))

	fmt.Println("Crossout with numbers 1-7 and sum bound 3, engine up first:")
	runMatch(crossout.New(3, 7, true))

	fmt.Println("Connect-3 on a 4x3 board, opponent up first:")
	runMatch(connect.New(4, 3, nil, false))
}

// runMatch plays the solver against a random opponent from the given start.
func runMatch(start game.State) {
	s := solver.New(8, solver.WithMetrics())
	random := engine.NewRandomAgent(uint64(time.Now().UnixNano()))
	e := engine.Local(start, engine.NewSolverAgent(s), random)
	fmt.Printf("result: %s\n\n", e.Run())
}

// parsePins converts command-line arguments into an initial Kayles layout.
func parsePins(args []string) ([]int, error) {
	pins := make([]int, 0, len(args))
	for _, arg := range args {
		count, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "bad pin count %q", arg)
		}
		if count < 1 {
			return nil, errors.Errorf("pin count %d is not positive", count)
		}
		pins = append(pins, count)
	}
	return pins, nil
}
