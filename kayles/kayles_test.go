package kayles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solb/cs4gamesolver/game"
)

func TestSuccessors(t *testing.T) {
	t.Run("single group of three", func(t *testing.T) {
		state := New([]int{3}, true)

		got := state.Successors()

		want := []*State{
			New([]int{2}, false),    // topple first pin
			New([]int{1, 1}, false), // topple middle pin, splitting
			New([]int{2}, false),    // topple last pin
			New([]int{1}, false),    // topple first two pins
			New([]int{1}, false),    // topple last two pins
		}
		require.Len(t, got, len(want), "Every 1- and 2-pin removal should appear")
		for i := range want {
			require.True(t, want[i].Equal(got[i]), "Successor %d should be %v, got %v", i, want[i], got[i])
		}
	})

	t.Run("groups enumerate in order", func(t *testing.T) {
		state := New([]int{1, 2}, false)

		got := state.Successors()

		want := []*State{
			New([]int{2}, true),    // group 0 toppled
			New([]int{1, 1}, true), // group 1, first pin
			New([]int{1, 1}, true), // group 1, last pin
			New([]int{1}, true),    // group 1 toppled
		}
		require.Len(t, got, len(want))
		for i := range want {
			require.True(t, want[i].Equal(got[i]), "Successor %d should be %v, got %v", i, want[i], got[i])
		}
	})

	t.Run("every successor follows from one move", func(t *testing.T) {
		state := New([]int{3, 4}, true)

		for _, successor := range state.Successors() {
			require.True(t, state.Subsequent(successor), "Successor %v should be subsequent to %v", successor, state)
			require.False(t, successor.EngineTurn(), "Successor should flip the turn")
		}
	})

	t.Run("exhausted table has no successors", func(t *testing.T) {
		require.Empty(t, New(nil, true).Successors())
	})
}

func TestPlay(t *testing.T) {
	t.Run("interior removal splits the group", func(t *testing.T) {
		state := New([]int{5}, true)

		next := state.Play(Move{Group: 0, Pin: 1, Taken: 2})

		require.True(t, New([]int{1, 2}, false).Equal(next), "Got %v", next)
		require.Equal(t, 5, state.PinsInGroup(0), "Base state should be untouched")
	})

	t.Run("whole group disappears", func(t *testing.T) {
		state := New([]int{2, 4}, false)

		next := state.Play(Move{Group: 0, Pin: 0, Taken: 2})

		require.True(t, New([]int{4}, true).Equal(next), "Got %v", next)
	})

	t.Run("panics on a group that does not exist", func(t *testing.T) {
		state := New([]int{3}, true)

		require.Panics(t, func() { state.Play(Move{Group: 1, Pin: 0, Taken: 1}) })
		require.Panics(t, func() { state.Play(Move{Group: -1, Pin: 0, Taken: 1}) })
	})

	t.Run("panics on a pin span that does not fit", func(t *testing.T) {
		state := New([]int{3}, true)

		require.Panics(t, func() { state.Play(Move{Group: 0, Pin: 2, Taken: 2}) })
		require.Panics(t, func() { state.Play(Move{Group: 0, Pin: 0, Taken: 0}) })
	})

	t.Run("tolerates an over-limit take but still flips the turn", func(t *testing.T) {
		state := New([]int{4}, true)

		var next *State
		require.NotPanics(t, func() { next = state.Play(Move{Group: 0, Pin: 0, Taken: 3}) })
		require.True(t, New([]int{1}, false).Equal(next), "Got %v", next)
	})
}

func TestScore(t *testing.T) {
	t.Run("terminal on the engine's turn is an opponent win", func(t *testing.T) {
		require.Equal(t, game.OpponentWin, New(nil, true).Score())
	})

	t.Run("terminal on the opponent's turn is an engine win", func(t *testing.T) {
		require.Equal(t, game.EngineWin, New(nil, false).Score())
	})

	t.Run("undecided while pins remain", func(t *testing.T) {
		state := New([]int{1}, true)
		require.False(t, state.GameOver())
		require.Equal(t, game.Undecided, state.Score())
	})
}

func TestDiff(t *testing.T) {
	t.Run("round trips through every successor", func(t *testing.T) {
		state := New([]int{3, 4}, true)

		for _, successor := range state.Successors() {
			move := state.Diff(successor).(Move)
			require.True(t, state.Play(move).Equal(successor),
				"Replaying %v onto %v should reproduce %v", move, state, successor)
		}
	})

	t.Run("recovers a whole-group removal", func(t *testing.T) {
		first := New([]int{1, 2}, true)
		next := New([]int{2}, false)

		require.True(t, first.Subsequent(next))
		require.Equal(t, Move{Group: 0, Pin: 0, Taken: 1}, first.Diff(next))
	})

	t.Run("recovers a split", func(t *testing.T) {
		first := New([]int{5}, false)
		next := New([]int{2, 2}, true)

		require.True(t, first.Subsequent(next))
		require.Equal(t, Move{Group: 0, Pin: 2, Taken: 1}, first.Diff(next))
	})

	t.Run("panics when states are not one move apart", func(t *testing.T) {
		first := New([]int{3}, true)

		require.Panics(t, func() { first.Diff(New([]int{3}, true)) })
		require.Panics(t, func() { first.Diff(New(nil, false)) })
	})
}

func TestSubsequent(t *testing.T) {
	t.Run("rejects an unflipped turn", func(t *testing.T) {
		require.False(t, New([]int{3}, true).Subsequent(New([]int{2}, true)))
	})

	t.Run("rejects removing more than two pins", func(t *testing.T) {
		require.False(t, New([]int{5}, true).Subsequent(New([]int{2}, false)))
	})

	t.Run("rejects touching two groups at once", func(t *testing.T) {
		require.False(t, New([]int{2, 2}, true).Subsequent(New([]int{1, 1}, false)))
	})

	t.Run("rejects a split that removes no pins", func(t *testing.T) {
		require.False(t, New([]int{2}, true).Subsequent(New([]int{1, 1}, false)))
	})

	t.Run("accepts a legal shrink", func(t *testing.T) {
		require.True(t, New([]int{2, 2}, true).Subsequent(New([]int{2, 1}, false)))
	})
}

func TestQueries(t *testing.T) {
	state := New([]int{3, 1}, true)

	require.Equal(t, 2, state.Groups())
	require.Equal(t, 3, state.PinsInGroup(0))
	require.Equal(t, 1, state.PinsInGroup(1))
	require.Equal(t, -1, state.PinsInGroup(2), "A group that does not exist should report -1")
	require.Equal(t, -1, state.PinsInGroup(-1), "A group that does not exist should report -1")
}

func TestHashAndEquality(t *testing.T) {
	t.Run("equal states hash identically", func(t *testing.T) {
		derived := New([]int{3}, true).Play(Move{Group: 0, Pin: 0, Taken: 1})
		direct := New([]int{2}, false)

		require.True(t, direct.Equal(derived))
		require.Equal(t, direct.Hash(), derived.Hash())
	})

	t.Run("turn owner participates in equality", func(t *testing.T) {
		require.False(t, New([]int{3}, true).Equal(New([]int{3}, false)))
	})

	t.Run("group order participates in equality", func(t *testing.T) {
		require.False(t, New([]int{1, 2}, true).Equal(New([]int{2, 1}, true)))
	})
}
