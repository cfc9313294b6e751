package connect

import "github.com/solb/cs4gamesolver/game"

// The four line directions; their negations are covered by sliding the
// alignment window rather than scanning both ways.
var directions = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // rising diagonal
	{1, -1}, // falling diagonal
}

// at returns the mark occupying a cell, or 0 for an empty or out-of-bounds
// cell.
func (s *State) at(col, row int) Mark {
	if col < 0 || col >= s.columns || row < 0 || row >= s.height {
		return 0
	}
	if row >= len(s.board[col]) {
		return 0
	}
	return s.board[col][row]
}

func scoreFor(mark Mark) game.Score {
	if mark == EngineMark {
		return game.EngineWin
	}
	return game.OpponentWin
}

// winnerThrough checks only the alignments passing through one cell: each of
// the four directions, sliding the length-Connectable window across every
// placement that includes the cell. Sufficient after a move, since any new
// line must use the new mark.
func (s *State) winnerThrough(col, row int) game.Score {
	mark := s.at(col, row)
	if mark == 0 {
		return game.Undecided
	}
	for _, dir := range directions {
		for offset := 1 - Connectable; offset <= 0; offset++ {
			aligned := true
			for k := 0; k < Connectable; k++ {
				if s.at(col+(offset+k)*dir[0], row+(offset+k)*dir[1]) != mark {
					aligned = false
					break
				}
			}
			if aligned {
				return scoreFor(mark)
			}
		}
	}
	return game.Undecided
}

// scanWinner checks the entire board. It must agree with winnerThrough on
// every reachable position; the incremental path is preferred after a move
// and this one validates root constructions.
func (s *State) scanWinner() game.Score {
	for col := 0; col < s.columns; col++ {
		for row := range s.board[col] {
			mark := s.board[col][row]
			for _, dir := range directions {
				aligned := true
				for k := 0; k < Connectable; k++ {
					if s.at(col+k*dir[0], row+k*dir[1]) != mark {
						aligned = false
						break
					}
				}
				if aligned {
					return scoreFor(mark)
				}
			}
		}
	}
	return game.Undecided
}
