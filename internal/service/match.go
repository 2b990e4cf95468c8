package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/elimu-ai/Dooz/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished")

const defaultRecentMatches = 10

type matchRepo interface {
	Save(ctx context.Context, match *entity.Match) error
	Recent(ctx context.Context, limit int) ([]*entity.Match, error)
}

type MatchService interface {
	Record(ctx context.Context, game *entity.Game) error
	Recent(ctx context.Context, limit int) ([]*entity.Match, error)
}

type matchService struct {
	logger    *slog.Logger
	matchRepo matchRepo
}

func NewMatchService(logger *slog.Logger, matchRepo matchRepo) MatchService {
	return &matchService{
		logger:    logger.With("component", "matchService"),
		matchRepo: matchRepo,
	}
}

// Record - archives a finished game.
func (that *matchService) Record(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return ErrGameNotFinished
	}

	match := &entity.Match{
		ID:         game.ID,
		Mode:       game.Mode,
		Difficulty: game.Difficulty,
		BoardSize:  game.Board.Size,
		WinLength:  game.WinLength,
		Winner:     game.Winner,
		Moves:      game.Board.Filled(),
		FinishedAt: time.Now().UTC(),
	}

	if err := that.matchRepo.Save(ctx, match); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	that.logger.Info("match recorded", "gameID", match.ID, "winner", match.Winner, "moves", match.Moves)

	return nil
}

// Recent - the latest finished games, newest first.
func (that *matchService) Recent(ctx context.Context, limit int) ([]*entity.Match, error) {
	if limit <= 0 {
		limit = defaultRecentMatches
	}

	matches, err := that.matchRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent matches: %w", err)
	}

	return matches, nil
}
