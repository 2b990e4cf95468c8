package dooz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/elimu-ai/Dooz/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame builds a two-seat session that is ready to start.
func newTestGame(size, winLength int) *entity.Game {
	game := entity.NewGame("test-game", size, winLength)
	game.Players = []*entity.Player{
		entity.NewPlayer("Alice", entity.DefaultMarkX),
		entity.NewPlayer("Bob", entity.DefaultMarkO),
	}

	return game
}

func TestStartGame(t *testing.T) {
	t.Run("Fresh session", func(t *testing.T) {
		// Given: a new two-seat session
		game := newTestGame(3, 3)

		// When: the game is started
		result := StartGame(game)

		// Then: the board is empty and the session is ongoing
		require.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, 9, len(game.Board.EmptyCells()))
		assert.Empty(t, game.Winner)
		assert.Empty(t, game.WinningCells)

		// Then: both seats rolled a die and the roll winner is on turn
		require.Len(t, result.Rolls, 2)
		for _, roll := range result.Rolls {
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, 6)
		}
		assert.Equal(t, game.Turn, result.First)
		assert.Equal(t, FirstPlayer(game.Players[0], game.Players[1]).Mark, game.Turn)
	})

	t.Run("Restart wipes a finished session", func(t *testing.T) {
		// Given: a session that already finished with a winner
		game := newTestGame(3, 3)
		StartGame(game)
		game.Board.At(0, 0).Mark = entity.DefaultMarkX
		game.Board.At(0, 1).Mark = entity.DefaultMarkX
		game.Board.At(0, 2).Mark = entity.DefaultMarkX
		settleOutcome(game)
		require.True(t, game.IsFinished())

		// When: the game is started again
		StartGame(game)

		// Then: board, winner and highlight are wiped, the session is ongoing
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, 9, len(game.Board.EmptyCells()))
		assert.Empty(t, game.Winner)
		assert.Empty(t, game.WinningCells)
		assert.NotEmpty(t, game.Turn)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Move claims the cell and flips the turn", func(t *testing.T) {
		// Given: an ongoing session
		game := newTestGame(3, 3)
		StartGame(game)
		mark := game.Turn

		// When: the player on turn claims a cell
		result := ApplyMove(game, 1, 1)

		// Then: the cell is owned and the other seat is on turn
		require.True(t, result.Moved)
		assert.Equal(t, mark, game.Board.MarkAt(1, 1))
		assert.Equal(t, game.OpponentMark(mark), game.Turn)
		assert.Equal(t, entity.StatusOngoing, result.Status)
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: a session with one claimed cell
		game := newTestGame(3, 3)
		StartGame(game)
		require.True(t, ApplyMove(game, 1, 1).Moved)

		before := game.Snapshot()

		// When: the other player tries the same cell
		result := ApplyMove(game, 1, 1)

		// Then: nothing moved and nothing changed
		assert.False(t, result.Moved)
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Off-board cells are ignored", func(t *testing.T) {
		// Given: an ongoing session
		game := newTestGame(3, 3)
		StartGame(game)

		before := game.Snapshot()

		// When: moves land outside the board
		outside := ApplyMove(game, 3, 3)
		negative := ApplyMove(game, -1, 0)

		// Then: both are ignored without touching the session
		assert.False(t, outside.Moved)
		assert.False(t, negative.Moved)
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Waiting session is ignored", func(t *testing.T) {
		// Given: a session that was never started
		game := newTestGame(3, 3)

		// When: a move comes in
		result := ApplyMove(game, 0, 0)

		// Then: it is ignored and the session stays waiting
		assert.False(t, result.Moved)
		assert.Equal(t, entity.StatusWaiting, game.Status)
		assert.Equal(t, entity.EmptyMark, game.Board.MarkAt(0, 0))
	})

	t.Run("Completing a run finishes the game", func(t *testing.T) {
		// Given: X on turn holding two cells of the top row
		game := newTestGame(3, 3)
		StartGame(game)
		game.Board.At(0, 0).Mark = entity.DefaultMarkX
		game.Board.At(0, 1).Mark = entity.DefaultMarkX
		game.Board.At(1, 0).Mark = entity.DefaultMarkO
		game.Board.At(1, 1).Mark = entity.DefaultMarkO
		game.Turn = entity.DefaultMarkX

		// When: X completes the row
		result := ApplyMove(game, 0, 2)

		// Then: the move lands and the session finishes with the row highlighted
		require.True(t, result.Moved)
		assert.Equal(t, entity.StatusFinished, result.Status)
		assert.Equal(t, entity.DefaultMarkX, result.Winner)
		assert.Equal(t, []entity.Cell{
			{Row: 0, Col: 0, Mark: "X"},
			{Row: 0, Col: 1, Mark: "X"},
			{Row: 0, Col: 2, Mark: "X"},
		}, result.WinningCells)

		// Then: the session mirrors the result and nobody is on turn
		assert.True(t, game.HasWinner())
		assert.Equal(t, entity.EmptyMark, game.Turn)
	})

	t.Run("Filling the last cell without a run is a draw", func(t *testing.T) {
		// Given: a full board short one cell, no run possible
		game := newTestGame(3, 3)
		StartGame(game)
		layout := [][]string{
			{"O", "X", "O"},
			{"O", "X", "X"},
			{"X", "O", ""},
		}
		for r, row := range layout {
			for c, mark := range row {
				game.Board.At(r, c).Mark = mark
			}
		}
		game.Turn = entity.DefaultMarkX

		// When: the last cell is filled
		result := ApplyMove(game, 2, 2)

		// Then: the game ends in a tie with no highlighted cells
		require.True(t, result.Moved)
		assert.Equal(t, entity.StatusFinished, result.Status)
		assert.Equal(t, entity.PlayerTie, result.Winner)
		assert.Empty(t, result.WinningCells)
		assert.True(t, game.IsDraw())
	})

	t.Run("Finished session ignores further moves", func(t *testing.T) {
		// Given: a finished session
		game := newTestGame(3, 3)
		StartGame(game)
		game.Board.At(0, 0).Mark = entity.DefaultMarkX
		game.Board.At(0, 1).Mark = entity.DefaultMarkX
		game.Turn = entity.DefaultMarkX
		require.True(t, ApplyMove(game, 0, 2).Moved)
		require.True(t, game.IsFinished())

		before := game.Snapshot()

		// When: another move comes in
		result := ApplyMove(game, 2, 2)

		// Then: it is ignored and the terminal state survives untouched
		assert.False(t, result.Moved)
		assert.Equal(t, entity.DefaultMarkX, result.Winner)
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Decided board settles before accepting a move", func(t *testing.T) {
		// Given: a session whose flags lag behind a decided board
		game := newTestGame(3, 3)
		StartGame(game)
		game.Board.At(0, 0).Mark = entity.DefaultMarkO
		game.Board.At(1, 1).Mark = entity.DefaultMarkO
		game.Board.At(2, 2).Mark = entity.DefaultMarkO
		require.Equal(t, entity.StatusOngoing, game.Status)

		// When: a move comes in
		result := ApplyMove(game, 0, 1)

		// Then: the move is rejected and the session settles into the win
		assert.False(t, result.Moved)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.DefaultMarkO, game.Winner)
		assert.Equal(t, entity.EmptyMark, game.Board.MarkAt(0, 1))
	})

	t.Run("Single cell board fills to a draw", func(t *testing.T) {
		// Given: a 1x1 session, where no run can ever be completed
		game := newTestGame(1, 1)
		StartGame(game)

		// When: the only cell is claimed
		result := ApplyMove(game, 0, 0)

		// Then: the game is a draw, not a win
		require.True(t, result.Moved)
		assert.Equal(t, entity.PlayerTie, result.Winner)
		assert.True(t, game.IsDraw())
	})
}

func TestApplyMove_RandomLegalSequences(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 5} {
		t.Run(fmt.Sprintf("%dx%d board", size, size), func(t *testing.T) {
			// Given: a fresh game played with random legal moves
			game := newTestGame(size, size)
			StartGame(game)

			owners := make(map[int]string)

			for game.IsOngoing() {
				empty := game.Board.EmptyCells()
				require.NotEmpty(t, empty)

				target := empty[rand.Intn(len(empty))]
				mark := game.Turn

				// When: the player on turn claims a random empty cell
				result := ApplyMove(game, target.Row, target.Col)
				require.True(t, result.Moved)

				// Then: the cell belongs to that player from now on
				assert.Equal(t, mark, game.Board.MarkAt(target.Row, target.Col))
				owners[target.Row*game.Board.Size+target.Col] = mark

				for index, owner := range owners {
					require.Equal(t, owner, game.Board.Cells[index].Mark)
				}

				// Then: the turn alternated strictly, unless the game just ended
				if game.IsOngoing() {
					require.Equal(t, game.OpponentMark(mark), game.Turn)
				}
			}

			// Then: the game ended in exactly one terminal state
			require.True(t, game.IsFinished())

			if game.IsDraw() {
				assert.True(t, game.Board.IsFull())
				assert.Empty(t, game.WinningCells)
			} else {
				assert.True(t, game.HasWinner())
				assert.NotEmpty(t, game.WinningCells)
			}
		})
	}
}

func TestSettleOutcome_Idempotent(t *testing.T) {
	// Given: a session settled into a win
	game := newTestGame(3, 3)
	StartGame(game)
	game.Board.At(2, 0).Mark = entity.DefaultMarkX
	game.Board.At(2, 1).Mark = entity.DefaultMarkX
	game.Board.At(2, 2).Mark = entity.DefaultMarkX
	require.True(t, settleOutcome(game))

	before := game.Snapshot()

	// When: the outcome is settled again
	settled := settleOutcome(game)

	// Then: it reports terminal without mutating anything
	assert.True(t, settled)
	assert.Equal(t, before, game.Snapshot())
}
