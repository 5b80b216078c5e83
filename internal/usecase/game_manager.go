package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/solvekit/tictactoe-solo/internal/entity"
	"github.com/solvekit/tictactoe-solo/internal/service"
	"github.com/solvekit/tictactoe-solo/internal/tictactoe"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager orchestrates one game per player session: it loads the game,
// drives the controller, and persists the result of every transition.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	bot        service.BotService
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, bot service.BotService) *GameManager {
	return &GameManager{
		logger:     logger,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		bot:        bot,
	}
}

// GetOrCreatePlayer - returns the player for a session ID, creating a new
// session when the ID is empty.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		return that.createPlayer(ctx)
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// GetOrCreateGame - returns the player's current game, starting a fresh one
// when none exists. The human always plays X and moves first.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		game, err := that.createGame(ctx, player)
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		return game, nil
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// SubmitHumanMove - places the human's X and persists the evaluated game.
// Rejected moves leave the stored game untouched.
func (that *GameManager) SubmitHumanMove(ctx context.Context, playerID string, cell int) (*entity.Game, tictactoe.Outcome, error) {
	game, err := that.gameForPlayer(ctx, playerID)
	if err != nil {
		return nil, "", err
	}

	controller := tictactoe.NewGameController(game, that.bot)

	outcome, err := controller.SubmitHumanMove(cell)
	if err != nil {
		return game, "", fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, "", err
	}

	return game, outcome, nil
}

// RunComputerTurn - plays the bot's O and persists the evaluated game.
func (that *GameManager) RunComputerTurn(ctx context.Context, playerID string) (*entity.Game, tictactoe.Outcome, error) {
	game, err := that.gameForPlayer(ctx, playerID)
	if err != nil {
		return nil, "", err
	}

	controller := tictactoe.NewGameController(game, that.bot)

	outcome, err := controller.RunComputerTurn()
	if err != nil {
		return game, "", fmt.Errorf("failed to run computer turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, "", err
	}

	return game, outcome, nil
}

// ResetGame - restores the player's game to the initial state in place.
func (that *GameManager) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gameForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	controller := tictactoe.NewGameController(game, that.bot)
	controller.Reset()

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID:   uuid.NewString(),
		Mark: entity.PlayerX,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	that.logger.Info("player created", "playerID", player.ID)

	return player, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	player.GameID = game.ID
	player.Mark = entity.PlayerX
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return game, nil
}

func (that *GameManager) gameForPlayer(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
