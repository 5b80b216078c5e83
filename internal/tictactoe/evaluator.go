package tictactoe

import "github.com/solvekit/tictactoe-solo/internal/entity"

// WinCombos are the eight lines that decide a game: rows top to bottom,
// columns left to right, then the main and anti diagonals. Winner checks
// them in this order, so on an illegally reached board with two complete
// lines the first one listed wins.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner - returns the mark owning the first complete line, or an empty
// string when no line is complete.
func Winner(board entity.Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// IsDraw - reports a saturated board with no winner.
func IsDraw(board entity.Board) bool {
	return board.IsFull() && Winner(board) == entity.EmptyCell
}
