package dooz

import (
	"math/rand"

	"github.com/elimu-ai/Dooz/internal/entity"
)

// SelectMove - picks the next cell for mark according to the session
// difficulty. Returns nil only when no empty cell is left.
func SelectMove(game *entity.Game, mark string) *entity.Cell {
	switch game.Difficulty {
	case entity.DifficultyMedium:
		return selectTactical(game, mark)
	case entity.DifficultyHard:
		return selectMinimax(game, mark)
	default:
		return selectRandom(game.Board)
	}
}

// selectRandom - the easy tier: any empty cell, uniformly.
func selectRandom(board *entity.Board) *entity.Cell {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return nil
	}

	return empty[rand.Intn(len(empty))] //nolint: gosec // it's ok
}

// selectTactical - the medium tier: take an immediate win, otherwise block
// the opponent's, otherwise grab the centre, otherwise play at random.
func selectTactical(game *entity.Game, mark string) *entity.Cell {
	board := game.Board

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return nil
	}

	if cell := winningCellFor(board, game.WinLength, mark); cell != nil {
		return cell
	}

	if cell := winningCellFor(board, game.WinLength, game.OpponentMark(mark)); cell != nil {
		return cell
	}

	if center := board.At(board.Size/2, board.Size/2); center != nil && center.IsEmpty() {
		return center
	}

	return empty[rand.Intn(len(empty))] //nolint: gosec // it's ok
}

// winningCellFor - finds a cell that completes a winning run for mark right
// now, probing each empty cell on the live board and undoing the probe.
func winningCellFor(board *entity.Board, winLength int, mark string) *entity.Cell {
	for _, cell := range board.EmptyCells() {
		cell.Mark = mark
		won := winsAt(board, cell.Row, cell.Col, winLength)
		cell.Mark = entity.EmptyMark

		if won {
			return cell
		}
	}

	return nil
}
