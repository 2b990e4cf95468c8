package dooz

import (
	"testing"

	"github.com/elimu-ai/Dooz/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBoard lays out a square board from row strings, '.' meaning empty.
func buildBoard(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board := entity.NewBoard(len(rows))
	for r, row := range rows {
		require.Len(t, row, len(rows), "board rows must be square")

		for c, ch := range row {
			if ch == '.' {
				continue
			}
			board.At(r, c).Mark = string(ch)
		}
	}

	return board
}

func TestEvaluateBoard(t *testing.T) {
	t.Run("Winner on a row", func(t *testing.T) {
		// Given: player X holds the whole top row
		board := buildBoard(t,
			"XXX",
			"OO.",
			"...",
		)

		// When: the board is evaluated
		outcome := EvaluateBoard(board, 3)

		// Then: X wins with exactly the top row highlighted
		require.Equal(t, entity.DefaultMarkX, outcome.Winner)
		assert.Equal(t, []entity.Cell{
			{Row: 0, Col: 0, Mark: "X"},
			{Row: 0, Col: 1, Mark: "X"},
			{Row: 0, Col: 2, Mark: "X"},
		}, outcome.WinningCells)
	})

	t.Run("Winner on a column", func(t *testing.T) {
		// Given: player O holds the middle column
		board := buildBoard(t,
			"XOX",
			".O.",
			"XO.",
		)

		// When: the board is evaluated
		outcome := EvaluateBoard(board, 3)

		// Then: O wins on the middle column
		require.Equal(t, entity.DefaultMarkO, outcome.Winner)
		assert.Equal(t, []entity.Cell{
			{Row: 0, Col: 1, Mark: "O"},
			{Row: 1, Col: 1, Mark: "O"},
			{Row: 2, Col: 1, Mark: "O"},
		}, outcome.WinningCells)
	})

	t.Run("Winner on the diagonals", func(t *testing.T) {
		// Given: X on the main diagonal, and a second board with X on the anti diagonal
		main := buildBoard(t,
			"XO.",
			"OX.",
			"..X",
		)
		anti := buildBoard(t,
			"O.X",
			".X.",
			"XO.",
		)

		// Then: both diagonals count as winning runs
		assert.Equal(t, entity.DefaultMarkX, EvaluateBoard(main, 3).Winner)
		assert.Equal(t, entity.DefaultMarkX, EvaluateBoard(anti, 3).Winner)
	})

	t.Run("Ongoing game has an empty outcome", func(t *testing.T) {
		// Given: a board with no completed run and empty cells left
		board := buildBoard(t,
			"XOX",
			".O.",
			"X..",
		)

		// When: the board is evaluated
		outcome := EvaluateBoard(board, 3)

		// Then: nobody has won and the game can continue
		assert.False(t, outcome.Decided())
		assert.Empty(t, outcome.WinningCells)
	})

	t.Run("Tie on a full board", func(t *testing.T) {
		// Given: a full board without a completed run
		board := buildBoard(t,
			"OXO",
			"OXX",
			"XOX",
		)

		// When: the board is evaluated
		outcome := EvaluateBoard(board, 3)

		// Then: the game is a tie
		assert.Equal(t, entity.PlayerTie, outcome.Winner)
		assert.Empty(t, outcome.WinningCells)
		assert.True(t, IsDraw(board, 3))
	})

	t.Run("Longer run than needed wins on a big board", func(t *testing.T) {
		// Given: a 7x7 board where X holds five cells in a row with win length four
		board := entity.NewBoard(7)
		for col := 1; col <= 5; col++ {
			board.At(3, col).Mark = entity.DefaultMarkX
		}

		// When: the board is evaluated
		outcome := EvaluateBoard(board, 4)

		// Then: X wins and the whole five-cell run is highlighted
		require.Equal(t, entity.DefaultMarkX, outcome.Winner)
		assert.Len(t, outcome.WinningCells, 5)
	})
}

func TestFindWinner_CollectsEveryRun(t *testing.T) {
	// Given: one X move completed a row and a column at the same time
	board := buildBoard(t,
		"XXX",
		"XOO",
		"XOO",
	)

	// When: the winner is looked up
	winner, cells := FindWinner(board, 3)

	// Then: the union of both runs comes back, in row-major order, no duplicates
	require.Equal(t, entity.DefaultMarkX, winner)
	assert.Equal(t, []entity.Cell{
		{Row: 0, Col: 0, Mark: "X"},
		{Row: 0, Col: 1, Mark: "X"},
		{Row: 0, Col: 2, Mark: "X"},
		{Row: 1, Col: 0, Mark: "X"},
		{Row: 2, Col: 0, Mark: "X"},
	}, cells)
}

func TestEvaluateBoard_DegenerateWinLength(t *testing.T) {
	t.Run("Single cell board fills to a tie", func(t *testing.T) {
		// Given: a 1x1 board with its only cell taken
		board := entity.NewBoard(1)
		board.At(0, 0).Mark = entity.DefaultMarkX

		// When: the board is evaluated with win length one
		outcome := EvaluateBoard(board, 1)

		// Then: a single cell never makes a run, the full board is a tie
		assert.Equal(t, entity.PlayerTie, outcome.Winner)
	})

	t.Run("Win length below two never finds a winner", func(t *testing.T) {
		// Given: a board with stones on it
		board := buildBoard(t,
			"XX.",
			".O.",
			"...",
		)

		// When: the winner is looked up with win length one
		winner, cells := FindWinner(board, 1)

		// Then: no winner, no cells
		assert.Equal(t, entity.EmptyMark, winner)
		assert.Nil(t, cells)
	})
}
