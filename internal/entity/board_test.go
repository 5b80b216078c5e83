package entity

import (
	"testing"

	"github.com/solvekit/tictactoe-solo/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Get(t *testing.T) {
	t.Run("Returns the placed mark", func(t *testing.T) {
		// Given: a board with X at cell 4
		board := Board{}
		require.NoError(t, board.Place(4, PlayerX))

		// When: reading cell 4
		mark, err := board.Get(4)

		// Then: the mark should be X
		require.NoError(t, err)
		assert.Equal(t, PlayerX, mark)
	})

	t.Run("Returns error for out of range index", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: reading cells outside 0-8
		_, errHigh := board.Get(9)
		_, errLow := board.Get(-1)

		// Then: both reads should fail with ErrInvalidCell
		assert.ErrorIs(t, errHigh, apperror.ErrInvalidCell)
		assert.ErrorIs(t, errLow, apperror.ErrInvalidCell)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X at cell 0
		board := Board{}
		require.NoError(t, board.Place(0, PlayerX))

		// When: placing O on the same cell
		err := board.Place(0, PlayerO)

		// Then: ErrCellOccupied is returned and the cell keeps its mark
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, Board{PlayerX, "", "", "", "", "", "", "", ""}, board)
	})

	t.Run("Error on out of range index", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: placing outside 0-8
		err := board.Place(20, PlayerX)

		// Then: ErrInvalidCell is returned and the board stays empty
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty and partially filled boards are not full", func(t *testing.T) {
		// Given: an empty board and one with a single mark
		empty := Board{}
		partial := Board{PlayerX}

		// Then: neither is full
		assert.False(t, empty.IsFull())
		assert.False(t, partial.IsFull())
	})

	t.Run("Saturated board is full", func(t *testing.T) {
		// Given: a board with all nine cells marked
		board := Board{PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerX, PlayerX, PlayerO, PlayerX}

		// Then: the board is full
		assert.True(t, board.IsFull())
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Returns all indices for an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// Then: all nine indices come back in ascending order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.EmptyCells())
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with marks at cells 0, 4 and 8
		board := Board{PlayerX, "", "", "", PlayerO, "", "", "", PlayerX}

		// Then: only the free indices remain
		assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, board.EmptyCells())
	})

	t.Run("Returns nothing for a full board", func(t *testing.T) {
		// Given: a saturated board
		board := Board{PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerX, PlayerX, PlayerO, PlayerX}

		// Then: no empty cells are reported
		assert.Empty(t, board.EmptyCells())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with several marks
	board := Board{PlayerX, PlayerO, "", PlayerX, "", "", "", PlayerO, ""}

	// When: resetting
	board.Reset()

	// Then: all nine cells are empty again
	assert.Equal(t, Board{}, board)
	assert.False(t, board.IsFull())
	assert.Len(t, board.EmptyCells(), BoardSize)
}
