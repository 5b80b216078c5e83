package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	handlers *handlers
}

func New(logger *slog.Logger, manager gameManager) *Server {
	return &Server{
		logger:   logger,
		handlers: newHandlers(logger, manager),
	}
}

// Router - wires all routes and returns the handler, also used directly by
// transport tests.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Get("/ping", that.handlers.Ping)

	router.Route("/api/game", func(router chi.Router) {
		router.Post("/", that.handlers.StartSession)
		router.Get("/", that.handlers.GetGame)
		router.Post("/turn", that.handlers.SubmitTurn)
		router.Post("/bot-turn", that.handlers.RunBotTurn)
		router.Post("/reset", that.handlers.ResetGame)
	})

	return router
}

// Start - runs the HTTP server until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("component", "rest")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		log.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
