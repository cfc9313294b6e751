// Package connect models positions of Connect-3, a drop-a-mark board game. A
// move drops the mover's mark into the lowest open slot of a chosen column;
// three of one side's marks in a row, column, or diagonal win the game.
package connect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/solb/cs4gamesolver/game"
)

// Connectable is how many marks must line up to win.
const Connectable = 3

// Mark is one side's symbol on the board.
type Mark uint8

const (
	EngineMark Mark = iota + 1
	OpponentMark
)

func (m Mark) String() string {
	switch m {
	case EngineMark:
		return "X"
	case OpponentMark:
		return "O"
	default:
		return "."
	}
}

// State is an immutable Connect-3 position: a column-major board where each
// column stores its placed marks bottom-up, plus the turn owner. The column
// count and height never change after construction. The winner, if already
// decided, is computed eagerly at construction and cached.
type State struct {
	columns    int
	height     int
	board      [][]Mark
	engineTurn bool
	outcome    game.Score
	hash       game.StateHash
}

// Move drops the mover's mark into the column at index Column.
type Move struct {
	Column int
}

func (m Move) String() string {
	return fmt.Sprintf("drop a mark into column %d", m.Column)
}

// New builds a root position. The caller is trusted to supply a column-major
// board within bounds whose columns are bottom-filled with no gaps; a nil
// board means an empty one. The outcome is computed by a full-board scan.
func New(columns, height int, board [][]Mark, engineTurn bool) *State {
	s := &State{
		columns:    columns,
		height:     height,
		board:      make([][]Mark, columns),
		engineTurn: engineTurn,
	}
	for col := range s.board {
		if col < len(board) {
			s.board[col] = slices.Clone(board[col])
		}
	}
	s.outcome = s.scanWinner()
	s.cacheHash()
	return s
}

// Play builds the position resulting from m. The column must exist and have
// room for another mark; Play panics otherwise. The dropped mark belongs to
// the side whose turn it is, the turn flips, and the outcome is recomputed by
// scanning only the lines through the new cell.
func (s *State) Play(m Move) *State {
	if m.Column < 0 || m.Column >= s.columns {
		panic(fmt.Sprintf("connect: column %d out of range [0,%d)", m.Column, s.columns))
	}
	if len(s.board[m.Column]) >= s.height {
		panic(fmt.Sprintf("connect: column %d is already full", m.Column))
	}

	mark := OpponentMark
	if s.engineTurn {
		mark = EngineMark
	}

	board := make([][]Mark, s.columns)
	for col := range board {
		board[col] = slices.Clone(s.board[col])
	}
	board[m.Column] = append(board[m.Column], mark)

	next := &State{
		columns:    s.columns,
		height:     s.height,
		board:      board,
		engineTurn: !s.engineTurn,
	}
	next.outcome = next.winnerThrough(m.Column, len(board[m.Column])-1)
	next.cacheHash()
	return next
}

// EngineTurn reports whether the engine side is up.
func (s *State) EngineTurn() bool {
	return s.engineTurn
}

// GameOver reports whether someone has won or the board is full.
func (s *State) GameOver() bool {
	if s.outcome != game.Undecided {
		return true
	}
	for col := range s.board {
		if len(s.board[col]) < s.height {
			return false
		}
	}
	return true
}

// Score reports the cached outcome: the side that completed a line, or
// Undecided for an ongoing game or a full board with no line.
func (s *State) Score() game.Score {
	return s.outcome
}

// HasSpaceAt reports whether another mark fits in the column, or false if no
// such column exists.
func (s *State) HasSpaceAt(column int) bool {
	if column < 0 || column >= s.columns {
		return false
	}
	return len(s.board[column]) < s.height
}

// ColumnMarks returns a copy of one column's marks bottom-up, or nil if no
// such column exists.
func (s *State) ColumnMarks(column int) []Mark {
	if column < 0 || column >= s.columns {
		return nil
	}
	return slices.Clone(s.board[column])
}

// Successors returns one position per non-full column, in column order.
func (s *State) Successors() []game.State {
	var successors []game.State
	for col := 0; col < s.columns; col++ {
		if len(s.board[col]) < s.height {
			successors = append(successors, s.Play(Move{Column: col}))
		}
	}
	return successors
}

// Hash returns the transposition key cached at construction.
func (s *State) Hash() game.StateHash {
	return s.hash
}

// Equal reports whether the dimensions, boards, and turns match. The cached
// outcome is derived from the board and not compared.
func (s *State) Equal(other game.State) bool {
	o, ok := other.(*State)
	if !ok {
		return false
	}
	if s.columns != o.columns || s.height != o.height || s.engineTurn != o.engineTurn {
		return false
	}
	for col := range s.board {
		if !slices.Equal(s.board[col], o.board[col]) {
			return false
		}
	}
	return true
}

// Subsequent reports whether next could have resulted from exactly one legal
// move applied to s: the turn flipped and exactly one column grew by exactly
// one mark belonging to s's mover, with every other column untouched.
func (s *State) Subsequent(next game.State) bool {
	n, ok := next.(*State)
	if !ok {
		return false
	}
	_, ok = reconstruct(s, n)
	return ok
}

// Diff finds the column played to get between two positions. It panics
// unless the positions are exactly one legal move apart.
func (s *State) Diff(next game.State) game.Move {
	n, ok := next.(*State)
	if !ok {
		panic("connect: diff against a state of a different game")
	}
	move, ok := reconstruct(s, n)
	if !ok {
		panic("connect: states are not one move apart")
	}
	return move
}

func reconstruct(first, next *State) (Move, bool) {
	if first.columns != next.columns || first.height != next.height ||
		first.engineTurn == next.engineTurn {
		return Move{}, false
	}

	mark := OpponentMark
	if first.engineTurn {
		mark = EngineMark
	}

	grown := -1
	for col := 0; col < first.columns; col++ {
		from, to := first.board[col], next.board[col]
		switch {
		case slices.Equal(from, to):
			continue
		case grown == -1 && len(to) == len(from)+1 &&
			slices.Equal(from, to[:len(from)]) && to[len(from)] == mark:
			grown = col
		default:
			return Move{}, false
		}
	}
	if grown == -1 {
		return Move{}, false
	}
	return Move{Column: grown}, true
}

// String renders the board top-down with the turn owner, for debugging.
func (s *State) String() string {
	var b strings.Builder
	if s.engineTurn {
		b.WriteString("connect: engine (X) to move\n")
	} else {
		b.WriteString("connect: opponent (O) to move\n")
	}
	for row := s.height - 1; row >= 0; row-- {
		for col := 0; col < s.columns; col++ {
			b.WriteByte('|')
			if row < len(s.board[col]) {
				b.WriteString(s.board[col][row].String())
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(strings.Repeat("-", 2*s.columns+1))
	return b.String()
}

func (s *State) cacheHash() {
	h := game.NewHasher()
	h.WriteBool(s.engineTurn)
	h.WriteInt(s.columns)
	h.WriteInt(s.height)
	for col := range s.board {
		h.WriteInt(len(s.board[col]))
		for _, mark := range s.board[col] {
			h.WriteInt(int(mark))
		}
	}
	s.hash = h.Sum()
}
