package service

import (
	"log/slog"

	"github.com/elimu-ai/Dooz/internal/apperror"
	"github.com/elimu-ai/Dooz/internal/dooz"
	"github.com/elimu-ai/Dooz/internal/entity"
)

type BotService interface {
	MakeTurn(game *entity.Game) (dooz.MoveResult, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "botService"),
	}
}

// MakeTurn - lets the bot seat play its move at the session difficulty.
// The caller decides when the bot is due; this only refuses to play out of
// turn or without a bot seat.
func (that *botService) MakeTurn(game *entity.Game) (dooz.MoveResult, error) {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return dooz.MoveResult{}, apperror.ErrBotNotFound
	}

	if !game.IsOngoing() || game.Turn != botPlayer.Mark {
		return dooz.MoveResult{}, apperror.ErrNotYourTurn
	}

	cell := dooz.SelectMove(game, botPlayer.Mark)
	if cell == nil {
		return dooz.MoveResult{}, apperror.ErrNoAvailableMoves
	}

	result := dooz.ApplyMove(game, cell.Row, cell.Col)
	if !result.Moved {
		that.logger.Warn("bot move was ignored", "gameID", game.ID, "row", cell.Row, "col", cell.Col)
	}

	return result, nil
}
