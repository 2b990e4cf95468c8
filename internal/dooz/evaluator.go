package dooz

import (
	"github.com/elimu-ai/Dooz/internal/entity"
)

// The four line families scanned for winning runs: row, column and the two
// diagonals. The opposite directions are covered by walking runs from their
// first cell only.
var lineDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Outcome is the terminal evaluation of a board. Winner is the winning
// mark, entity.PlayerTie for a draw, or empty while the game can continue.
// WinningCells is the union of every completed run, for highlighting.
type Outcome struct {
	Winner       string        `json:"winner,omitempty"`
	WinningCells []entity.Cell `json:"winning_cells,omitempty"`
}

func (that Outcome) Decided() bool {
	return that.Winner != entity.EmptyMark
}

// EvaluateBoard - scans the whole board once: a winner if any run of
// winLength cells shares one owner, a tie when the board is full without
// one, an empty outcome otherwise.
func EvaluateBoard(board *entity.Board, winLength int) Outcome {
	winner, cells := FindWinner(board, winLength)
	if winner != entity.EmptyMark {
		return Outcome{Winner: winner, WinningCells: cells}
	}

	if board.IsFull() {
		return Outcome{Winner: entity.PlayerTie}
	}

	return Outcome{}
}

// FindWinner - returns the owner of the first winning run in scan order
// together with the cells of ALL completed runs that owner holds; a move
// can finish several lines at once and every one of them gets highlighted.
func FindWinner(board *entity.Board, winLength int) (string, []entity.Cell) {
	mark := firstWinningMark(board, winLength)
	if mark == entity.EmptyMark {
		return entity.EmptyMark, nil
	}

	return mark, collectWinningCells(board, winLength, mark)
}

// IsDraw - true iff nobody has won and no cell is left unowned.
func IsDraw(board *entity.Board, winLength int) bool {
	return firstWinningMark(board, winLength) == entity.EmptyMark && board.IsFull()
}

// firstWinningMark walks every maximal run once per direction and returns
// the owner of the first run long enough to win. Win lengths below 2 never
// produce a winner: a single-cell "line" is no line at all.
func firstWinningMark(board *entity.Board, winLength int) string {
	if winLength < 2 {
		return entity.EmptyMark
	}

	for _, dir := range lineDirections {
		for row := 0; row < board.Size; row++ {
			for col := 0; col < board.Size; col++ {
				mark := board.MarkAt(row, col)
				if mark == entity.EmptyMark {
					continue
				}

				// only walk runs from their first cell
				if board.MarkAt(row-dir[0], col-dir[1]) == mark {
					continue
				}

				if runLength(board, row, col, dir[0], dir[1], mark) >= winLength {
					return mark
				}
			}
		}
	}

	return entity.EmptyMark
}

// collectWinningCells gathers the union of every winLength-or-longer run
// owned by mark, in row-major order without duplicates.
func collectWinningCells(board *entity.Board, winLength int, mark string) []entity.Cell {
	seen := make(map[int]bool)

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
				if length < winLength {
					continue
				}

				for i := 0; i < length; i++ {
					seen[(row+i*dir[0])*board.Size+(col+i*dir[1])] = true
				}
			}
		}
	}

	cells := make([]entity.Cell, 0, len(seen))
	for i := range board.Cells {
		if seen[i] {
			cells = append(cells, entity.Cell{Row: i / board.Size, Col: i % board.Size, Mark: mark})
		}
	}

	return cells
}

// runLength counts consecutive cells owned by mark starting at (row, col)
// and walking in the given direction; off-board cells end the run.
func runLength(board *entity.Board, row, col, deltaRow, deltaCol int, mark string) int {
	length := 0
	for r, c := row, col; board.MarkAt(r, c) == mark; r, c = r+deltaRow, c+deltaCol {
		length++
	}

	return length
}

// winsAt - reports whether the run passing through (row, col) reaches
// winLength in any direction. Cheaper than a whole-board scan when a single
// probe move was just placed.
func winsAt(board *entity.Board, row, col, winLength int) bool {
	if winLength < 2 {
		return false
	}

	mark := board.MarkAt(row, col)
	if mark == entity.EmptyMark {
		return false
	}

	for _, dir := range lineDirections {
		count := 1
		count += runLength(board, row+dir[0], col+dir[1], dir[0], dir[1], mark)
		count += runLength(board, row-dir[0], col-dir[1], -dir[0], -dir[1], mark)

		if count >= winLength {
			return true
		}
	}

	return false
}
