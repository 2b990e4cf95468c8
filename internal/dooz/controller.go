package dooz

import (
	"github.com/elimu-ai/Dooz/internal/entity"
)

// MoveResult describes what a single ApplyMove call did to the session.
// Moved is false whenever the move was ignored; the remaining fields always
// reflect the state after the call.
type MoveResult struct {
	Moved        bool          `json:"moved"`
	Status       string        `json:"status"`
	Turn         string        `json:"turn,omitempty"`
	Winner       string        `json:"winner,omitempty"`
	WinningCells []entity.Cell `json:"winning_cells,omitempty"`
}

// StartResult reports the settled opening rolls of a fresh game: each seat's
// die value keyed by mark, and the mark that won the opening.
type StartResult struct {
	Rolls map[string]int `json:"rolls"`
	First string         `json:"first"`
}

// StartGame - resets the session to a fresh board of the same size, rolls
// a die for each seat and puts the winner of the roll on turn. Equal rolls
// keep the first seat on turn.
func StartGame(game *entity.Game) StartResult {
	size := 0
	if game.Board != nil {
		size = game.Board.Size
	}

	game.Board = entity.NewBoard(size)
	game.Winner = entity.EmptyMark
	game.WinningCells = nil
	game.Status = entity.StatusOngoing

	result := StartResult{Rolls: make(map[string]int)}

	if len(game.Players) >= 2 {
		first, second := game.Players[0], game.Players[1]
		first.Dice = RollDie()
		second.Dice = RollDie()

		game.Turn = FirstPlayer(first, second).Mark
		result.Rolls[first.Mark] = first.Dice
		result.Rolls[second.Mark] = second.Dice
	} else {
		// seatless sessions open with X
		game.Turn = entity.DefaultMarkX
	}

	result.First = game.Turn

	return result
}

// ApplyMove - claims (row, col) for the player on turn, flips the turn and
// settles the outcome. Moves that cannot be played, because the session is
// not ongoing, the cell is off the board or already owned, are ignored
// without an error: the caller reads Moved to tell the difference.
func ApplyMove(game *entity.Game, row, col int) MoveResult {
	if !game.IsOngoing() {
		return resultFor(game, false)
	}

	// a board that is already decided never accepts another move, even if
	// the session flags have not caught up yet
	if settleOutcome(game) {
		return resultFor(game, false)
	}

	cell := game.Board.At(row, col)
	if cell == nil || !cell.IsEmpty() {
		return resultFor(game, false)
	}

	mark := game.Turn
	if mark == entity.EmptyMark {
		return resultFor(game, false)
	}

	cell.Mark = mark
	game.Turn = game.OpponentMark(mark)

	settleOutcome(game)

	return resultFor(game, true)
}

// settleOutcome - evaluates the board and locks the session into its
// terminal state when it is decided. Safe to call repeatedly: a finished
// session is reported as settled without being touched again.
func settleOutcome(game *entity.Game) bool {
	if game.IsFinished() {
		return true
	}

	outcome := EvaluateBoard(game.Board, game.WinLength)
	if !outcome.Decided() {
		return false
	}

	game.Winner = outcome.Winner
	game.WinningCells = outcome.WinningCells
	game.Status = entity.StatusFinished
	game.Turn = entity.EmptyMark

	return true
}

func resultFor(game *entity.Game, moved bool) MoveResult {
	result := MoveResult{
		Moved:  moved,
		Status: game.Status,
		Turn:   game.Turn,
		Winner: game.Winner,
	}

	if len(game.WinningCells) > 0 {
		result.WinningCells = append([]entity.Cell(nil), game.WinningCells...)
	}

	return result
}
