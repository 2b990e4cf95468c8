package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/elimu-ai/Dooz/internal/apperror"
	"github.com/elimu-ai/Dooz/internal/dooz"
	"github.com/elimu-ai/Dooz/internal/entity"
)

type GamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, dooz.StartResult, error)
	MakeTurn(ctx context.Context, row, col int) (*entity.Game, dooz.MoveResult, error)
	CurrentGame(ctx context.Context) (*entity.Game, error)
}

// gamePlayService owns the single active session. The mutex keeps a human
// move and the bot reply it triggers together as one step, so observers
// never see the board between the two.
type gamePlayService struct {
	logger *slog.Logger

	mu   sync.Mutex
	game *entity.Game

	settingsService SettingsService
	botService      BotService
	matchService    MatchService
}

func NewGamePlayService(logger *slog.Logger, settingsService SettingsService, botService BotService, matchService MatchService) GamePlayService {
	return &gamePlayService{
		logger:          logger.With("component", "gamePlayService"),
		settingsService: settingsService,
		botService:      botService,
		matchService:    matchService,
	}
}

// NewGame - builds a fresh session from the current settings, rolls the
// dice and, when the bot seat wins the opening roll, lets the bot move
// before anyone sees the board. Starting over mid-game is always allowed.
func (that *gamePlayService) NewGame(ctx context.Context) (*entity.Game, dooz.StartResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	settings := that.settingsService.Current(ctx)

	game := entity.NewGame(uuid.NewString(), settings.BoardSize, settings.WinLength)
	game.Mode = settings.Mode
	game.Difficulty = settings.Difficulty
	game.Players = buildPlayers(settings)

	start := dooz.StartGame(game)

	if game.IsWithBot() {
		if current := game.CurrentPlayer(); current != nil && current.IsBot() {
			if _, err := that.botService.MakeTurn(game); err != nil {
				return nil, start, fmt.Errorf("bot failed to make opening turn: %w", err)
			}
		}
	}

	// a one-cell board is already settled after the opening move
	if game.IsFinished() {
		that.recordMatch(ctx, game)
	}

	that.game = game
	that.logger.Info("new game started", "gameID", game.ID, "mode", game.Mode, "boardSize", settings.BoardSize, "first", start.First)

	return game.Snapshot(), start, nil
}

// MakeTurn - applies a human move to the active session. In bot mode the
// bot answers inside the same call, so the returned state already includes
// its reply. A move the board ignores comes back with Moved false and no
// error.
func (that *gamePlayService) MakeTurn(ctx context.Context, row, col int) (*entity.Game, dooz.MoveResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := that.game
	if game == nil {
		return nil, dooz.MoveResult{}, apperror.ErrNoActiveGame
	}

	result := dooz.ApplyMove(game, row, col)
	if !result.Moved {
		return game.Snapshot(), result, nil
	}

	if game.IsWithBot() && game.IsOngoing() {
		if current := game.CurrentPlayer(); current != nil && current.IsBot() {
			botResult, err := that.botService.MakeTurn(game)
			if err != nil {
				return nil, result, fmt.Errorf("bot failed to make turn: %w", err)
			}

			result.Status = botResult.Status
			result.Turn = botResult.Turn
			result.Winner = botResult.Winner
			result.WinningCells = botResult.WinningCells
		}
	}

	if game.IsFinished() {
		that.recordMatch(ctx, game)
	}

	return game.Snapshot(), result, nil
}

// CurrentGame - a snapshot of the active session.
func (that *gamePlayService) CurrentGame(_ context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	return that.game.Snapshot(), nil
}

// recordMatch archives the finished game; history is advisory and never
// fails the move that ended the game.
func (that *gamePlayService) recordMatch(ctx context.Context, game *entity.Game) {
	if that.matchService == nil {
		return
	}

	if err := that.matchService.Record(ctx, game); err != nil {
		that.logger.Error("failed to record match", "gameID", game.ID, "error", err)
	}
}

// buildPlayers seats the two players for the configured mode. The first
// seat keeps the opening-roll tie, matching how the dice resolve.
func buildPlayers(settings GameSettings) []*entity.Player {
	first := entity.NewPlayer(settings.Player1Name, settings.Player1Mark)

	var second *entity.Player
	if settings.Mode == entity.ModeWithBot {
		second = entity.NewBotPlayer(settings.Player2Name, settings.Player2Mark)
	} else {
		second = entity.NewPlayer(settings.Player2Name, settings.Player2Mark)
	}

	return []*entity.Player{first, second}
}
