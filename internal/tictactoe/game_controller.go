package tictactoe

import (
	"fmt"

	"github.com/solvekit/tictactoe-solo/internal/apperror"
	"github.com/solvekit/tictactoe-solo/internal/entity"
)

// Outcome tells the caller what the game expects next after a move.
type Outcome string

const (
	// OutcomeBotPending - the human move stood, the computer turn is due.
	OutcomeBotPending Outcome = "bot_pending"
	// OutcomeHumanPending - the computer moved, the human is to play.
	OutcomeHumanPending Outcome = "human_pending"
	OutcomeWon          Outcome = "won"
	OutcomeDraw         Outcome = "draw"
)

type cellPicker interface {
	ChooseCell(board entity.Board) (int, error)
}

// GameController is the only writer of the game it wraps. It enforces the
// turn order: the human (X) moves first, the move is evaluated, and only on
// a non-terminal result may the computer (O) move.
type GameController struct {
	game *entity.Game
	bot  cellPicker
}

func NewGameController(game *entity.Game, bot cellPicker) *GameController {
	return &GameController{
		game: game,
		bot:  bot,
	}
}

// Game - exposes the wrapped game for rendering; callers must not mutate it.
func (that *GameController) Game() *entity.Game {
	return that.game
}

// SubmitHumanMove - places X on the given cell. Rejections leave the board
// and state untouched.
func (that *GameController) SubmitHumanMove(cell int) (Outcome, error) {
	if that.game.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	if that.game.Turn != entity.PlayerX {
		return "", apperror.ErrNotYourTurn
	}

	if err := that.game.Board.Place(cell, entity.PlayerX); err != nil {
		return "", fmt.Errorf("invalid turn: %w", err)
	}

	return that.settle(entity.PlayerO, OutcomeBotPending), nil
}

// RunComputerTurn - asks the bot for a cell and places O. A no-op unless the
// game is ongoing with O to move, so a stale call scheduled before a reset
// or after a human win is rejected without touching the fresh state.
func (that *GameController) RunComputerTurn() (Outcome, error) {
	if that.game.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	if that.game.Turn != entity.PlayerO {
		return "", apperror.ErrNotYourTurn
	}

	cell, err := that.bot.ChooseCell(that.game.Board)
	if err != nil {
		return "", fmt.Errorf("bot failed to choose cell: %w", err)
	}

	if err = that.game.Board.Place(cell, entity.PlayerO); err != nil {
		return "", fmt.Errorf("bot chose unplayable cell: %w", err)
	}

	return that.settle(entity.PlayerX, OutcomeHumanPending), nil
}

// Reset - clears the board and returns to the initial state.
func (that *GameController) Reset() {
	that.game.Reset()
}

// settle - evaluates the board after a placed mark and either finishes the
// game or hands the turn over.
func (that *GameController) settle(nextTurn string, pending Outcome) Outcome {
	if winner := Winner(that.game.Board); winner != entity.EmptyCell {
		that.game.Winner = winner
		that.game.Status = entity.StatusFinished
		that.game.Turn = ""

		return OutcomeWon
	}

	if that.game.Board.IsFull() {
		that.game.Winner = entity.PlayerTie
		that.game.Status = entity.StatusFinished
		that.game.Turn = ""

		return OutcomeDraw
	}

	that.game.Turn = nextTurn

	return pending
}
