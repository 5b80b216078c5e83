package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/solvekit/tictactoe-solo/internal/apperror"
	"github.com/solvekit/tictactoe-solo/internal/entity"
	"github.com/solvekit/tictactoe-solo/internal/repository"
	"github.com/solvekit/tictactoe-solo/internal/tictactoe"
)

const sessionCookieName = "player_session"

type gameManager interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	SubmitHumanMove(ctx context.Context, playerID string, cell int) (*entity.Game, tictactoe.Outcome, error)
	RunComputerTurn(ctx context.Context, playerID string) (*entity.Game, tictactoe.Outcome, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
}

type handlers struct {
	logger  *slog.Logger
	manager gameManager
}

func newHandlers(logger *slog.Logger, manager gameManager) *handlers {
	return &handlers{
		logger:  logger,
		manager: manager,
	}
}

type gameResponse struct {
	Game    *entity.Game      `json:"game"`
	Message string            `json:"message"`
	Outcome tictactoe.Outcome `json:"outcome,omitempty"`
}

type turnRequest struct {
	Cell int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// StartSession - establishes a session cookie and returns the player's
// current or fresh game.
func (that *handlers) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	player, err := that.manager.GetOrCreatePlayer(ctx, sessionID)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		// stale cookie from an expired session; issue a new one
		player, err = that.manager.GetOrCreatePlayer(ctx, "")
	}

	if err != nil {
		that.writeError(w, err)
		return
	}

	if player.ID != sessionID {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    player.ID,
			Expires:  time.Now().Add(24 * time.Hour),
			Path:     "/",
			HttpOnly: true,
		})
	}

	game, err := that.manager.GetOrCreateGame(ctx, player.ID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeGame(w, http.StatusOK, game, "")
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.sessionID(w, r)
	if !ok {
		return
	}

	game, err := that.manager.GetOrCreateGame(r.Context(), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeGame(w, http.StatusOK, game, "")
}

// SubmitTurn - applies the human move. Rejected moves return 409 with the
// game left exactly as it was.
func (that *handlers) SubmitTurn(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.sessionID(w, r)
	if !ok {
		return
	}

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, outcome, err := that.manager.SubmitHumanMove(r.Context(), playerID, req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeGame(w, http.StatusOK, game, outcome)
}

// RunBotTurn - invoked by the UI after its "thinking" delay. A stale call
// (game reset or already finished) is rejected without side effects.
func (that *handlers) RunBotTurn(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.sessionID(w, r)
	if !ok {
		return
	}

	game, outcome, err := that.manager.RunComputerTurn(r.Context(), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeGame(w, http.StatusOK, game, outcome)
}

func (that *handlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.sessionID(w, r)
	if !ok {
		return
	}

	game, err := that.manager.ResetGame(r.Context(), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeGame(w, http.StatusOK, game, "")
}

func (that *handlers) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		that.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no session"})
		return "", false
	}

	return cookie.Value, true
}

func (that *handlers) writeGame(w http.ResponseWriter, status int, game *entity.Game, outcome tictactoe.Outcome) {
	that.writeJSON(w, status, gameResponse{
		Game:    game,
		Message: tictactoe.DescribeState(game),
		Outcome: outcome,
	})
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCell.Error()})
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		that.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrPlayerNotFound),
		errors.Is(err, repository.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
