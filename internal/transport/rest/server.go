package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elimu-ai/Dooz/internal/entity"
)

type matchService interface {
	Recent(ctx context.Context, limit int) ([]*entity.Match, error)
}

type Server struct {
	logger       *slog.Logger
	matchService matchService
}

func New(logger *slog.Logger, matchService matchService) *Server {
	return &Server{
		logger:       logger.With("component", "restServer"),
		matchService: matchService,
	}
}

// Handler - the routed HTTP handler, exposed separately so tests can
// drive it without a listener.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Get("/ping", that.handlePing)
	router.Get("/matches", that.handleMatches)

	return router
}

// Start - starts the REST server and shuts it down when ctx ends.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
