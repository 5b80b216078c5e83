package tictactoe

import (
	"fmt"

	"github.com/solvekit/tictactoe-solo/internal/entity"
)

const (
	msgDraw     = "It's a draw!"
	msgYourTurn = "Your turn!"
	msgThinking = "Computer is thinking..."
)

// DescribeState - projects the game state into the text the UI displays.
// Pure read; never mutates the game.
func DescribeState(game *entity.Game) string {
	if game.IsFinished() {
		if game.Winner == entity.PlayerTie {
			return msgDraw
		}

		return fmt.Sprintf("Player %s wins!", game.Winner)
	}

	if game.Turn == entity.PlayerO {
		return msgThinking
	}

	return msgYourTurn
}
