package dooz

import (
	"math"

	"github.com/elimu-ai/Dooz/internal/entity"
)

const (
	// winScore dominates every heuristic sum a leaf can produce.
	winScore = 1_000_000

	// runWeight scales the per-run heuristic at the leaves.
	runWeight = 10

	// fullSearchLimit is the endgame size searched to the last cell;
	// bigger positions get a bounded lookahead of searchDepthCap plies.
	fullSearchLimit = 9
	searchDepthCap  = 4
)

// selectMinimax - the hard tier: immediate wins and blocks are taken
// outright, everything else goes through alpha-beta minimax.
func selectMinimax(game *entity.Game, mark string) *entity.Cell {
	board := game.Board

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return nil
	}

	opponent := game.OpponentMark(mark)
	winLength := game.WinLength

	if cell := winningCellFor(board, winLength, mark); cell != nil {
		return cell
	}

	if cell := winningCellFor(board, winLength, opponent); cell != nil {
		return cell
	}

	depth := searchDepth(board)
	alpha, beta := math.MinInt32, math.MaxInt32

	var best *entity.Cell
	bestScore := math.MinInt32

	for _, cell := range candidateCells(board) {
		cell.Mark = mark
		score := minimax(board, winLength, depth-1, alpha, beta, false, mark, opponent)
		cell.Mark = entity.EmptyMark

		if score > bestScore {
			bestScore = score
			best = cell
		}

		if score > alpha {
			alpha = score
		}
	}

	return best
}

// minimax walks the game tree down to depth plies, pruning with alpha-beta.
// Wins found higher in the tree score better than deeper ones, so the bot
// closes games out instead of stalling.
func minimax(board *entity.Board, winLength, depth, alpha, beta int, maximizing bool, mark, opponent string) int {
	moves := candidateCells(board)
	if depth <= 0 || len(moves) == 0 {
		return scoreBoard(board, winLength, mark, opponent)
	}

	if maximizing {
		best := math.MinInt32

		for _, cell := range moves {
			cell.Mark = mark
			if winsAt(board, cell.Row, cell.Col, winLength) {
				cell.Mark = entity.EmptyMark
				return winScore + depth
			}

			score := minimax(board, winLength, depth-1, alpha, beta, false, mark, opponent)
			cell.Mark = entity.EmptyMark

			if score > best {
				best = score
			}

			if score > alpha {
				alpha = score
			}

			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt32

	for _, cell := range moves {
		cell.Mark = opponent
		if winsAt(board, cell.Row, cell.Col, winLength) {
			cell.Mark = entity.EmptyMark
			return -winScore - depth
		}

		score := minimax(board, winLength, depth-1, alpha, beta, true, mark, opponent)
		cell.Mark = entity.EmptyMark

		if score < best {
			best = score
		}

		if score < beta {
			beta = score
		}

		if beta <= alpha {
			break
		}
	}

	return best
}

// candidateCells - the cells worth searching: every empty cell on small
// boards, only the empty cells touching an occupied one on big boards. A
// big empty board opens on the centre.
func candidateCells(board *entity.Board) []*entity.Cell {
	empty := board.EmptyCells()
	if board.Size <= 3 {
		return empty
	}

	if board.Filled() == 0 {
		return []*entity.Cell{board.At(board.Size/2, board.Size/2)}
	}

	near := make([]*entity.Cell, 0, len(empty))
	for _, cell := range empty {
		if hasOccupiedNeighbor(board, cell.Row, cell.Col) {
			near = append(near, cell)
		}
	}

	if len(near) == 0 {
		return empty
	}

	return near
}

func hasOccupiedNeighbor(board *entity.Board, row, col int) bool {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}

			if board.MarkAt(row+deltaRow, col+deltaCol) != entity.EmptyMark {
				return true
			}
		}
	}

	return false
}

// searchDepth - exhausts small endgames, bounds everything else.
func searchDepth(board *entity.Board) int {
	empty := len(board.EmptyCells())
	if empty <= fullSearchLimit {
		return empty
	}

	return searchDepthCap
}

// scoreBoard - the leaf heuristic: the side's run score minus the
// opponent's, so positions with longer live runs for mark score higher.
func scoreBoard(board *entity.Board, winLength int, mark, opponent string) int {
	return sideScore(board, winLength, mark) - sideScore(board, winLength, opponent)
}

// sideScore sums every run the side owns, weighting length quadratically.
// Runs walled in with no room left to reach winLength count for nothing.
func sideScore(board *entity.Board, winLength int, mark string) int {
	score := 0

	for _, dir := range lineDirections {
		for row := 0; row < board.Size; row++ {
			for col := 0; col < board.Size; col++ {
				if board.MarkAt(row, col) != mark {
					continue
				}

				if board.MarkAt(row-dir[0], col-dir[1]) == mark {
					continue
				}

				length := runLength(board, row, col, dir[0], dir[1], mark)
				if length >= winLength {
					score += winScore
					continue
				}

				if length+roomToGrow(board, row, col, dir, length) < winLength {
					continue
				}

				score += length * length * runWeight
			}
		}
	}

	return score
}

// roomToGrow counts the contiguous empty cells on both ends of the run,
// capped at the board size per end.
func roomToGrow(board *entity.Board, row, col int, dir [2]int, length int) int {
	room := 0

	r, c := row+dir[0]*length, col+dir[1]*length
	for steps := 0; steps < board.Size && board.At(r, c) != nil && board.At(r, c).IsEmpty(); steps++ {
		room++
		r += dir[0]
		c += dir[1]
	}

	r, c = row-dir[0], col-dir[1]
	for steps := 0; steps < board.Size && board.At(r, c) != nil && board.At(r, c).IsEmpty(); steps++ {
		room++
		r -= dir[0]
		c -= dir[1]
	}

	return room
}
