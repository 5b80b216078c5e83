package entity

import (
	"fmt"

	"github.com/solvekit/tictactoe-solo/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 9
)

// Board is the sole source of truth for placed marks, indexed 0-8
// row-major: row = index / 3, column = index % 3.
type Board [BoardSize]string

// Get - returns the mark occupying the cell.
func (that *Board) Get(cell int) (string, error) {
	if cell < 0 || cell >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that[cell], nil
}

// Place - writes a mark into an empty cell. A cell never changes again
// once marked; only Reset clears it.
func (that *Board) Place(cell int, mark string) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

// IsFull - reports whether every cell is occupied.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - returns the indices of unoccupied cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Reset - clears all nine cells at once.
func (that *Board) Reset() {
	*that = Board{}
}
