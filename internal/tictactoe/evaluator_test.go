package tictactoe

import (
	"fmt"
	"testing"

	"github.com/solvekit/tictactoe-solo/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinner_EveryLine(t *testing.T) {
	// Given: each of the eight lines, completed by each mark in turn
	for _, combo := range WinCombos {
		for _, mark := range []string{entity.PlayerX, entity.PlayerO} {
			name := fmt.Sprintf("line %v owned by %s", combo, mark)
			t.Run(name, func(t *testing.T) {
				board := entity.Board{}
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: evaluating the board
				winner := Winner(board)

				// Then: the owning mark wins
				require.Equal(t, mark, winner)
			})
		}
	}
}

func TestWinner(t *testing.T) {
	t.Run("No winner on empty board", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// Then: no winner
		assert.Equal(t, entity.EmptyCell, Winner(board))
	})

	t.Run("No winner without a complete line", func(t *testing.T) {
		// Given: an ongoing board with no complete line
		board := entity.Board{entity.PlayerX, entity.PlayerO, entity.PlayerX, "", entity.PlayerO, "", entity.PlayerX, "", ""}

		// Then: no winner
		assert.Equal(t, entity.EmptyCell, Winner(board))
	})

	t.Run("First line in declaration order wins", func(t *testing.T) {
		// Given: an illegally reached board where both the top row (X)
		// and the bottom row (O) are complete
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			"", "", "",
			entity.PlayerO, entity.PlayerO, entity.PlayerO,
		}

		// When: evaluating
		winner := Winner(board)

		// Then: rows are checked top to bottom, so X wins
		assert.Equal(t, entity.PlayerX, winner)
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Full board with no line is a draw", func(t *testing.T) {
		// Given: a saturated board without a complete line
		board := entity.Board{
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
		}

		// Then: it is a draw and there is no winner
		require.True(t, IsDraw(board))
		assert.Equal(t, entity.EmptyCell, Winner(board))
	})

	t.Run("Ongoing board is not a draw", func(t *testing.T) {
		// Given: a board with free cells
		board := entity.Board{entity.PlayerX, entity.PlayerO}

		// Then: not a draw
		assert.False(t, IsDraw(board))
	})

	t.Run("Won board is not a draw", func(t *testing.T) {
		// Given: a full board where the diagonal belongs to X
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
		}

		// Then: not a draw, X wins
		require.False(t, IsDraw(board))
		assert.Equal(t, entity.PlayerX, Winner(board))
	})
}
