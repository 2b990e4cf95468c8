package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/elimu-ai/Dooz/internal/apperror"
	"github.com/elimu-ai/Dooz/internal/entity"
)

// Setting keys understood by the provider. Hosts may store any subset;
// missing keys fall back to the configured defaults.
const (
	SettingBoardSize   = "board-size"
	SettingWinLength   = "win-length"
	SettingPlayMode    = "play-mode"
	SettingDifficulty  = "difficulty"
	SettingPlayer1Name = "player1-name"
	SettingPlayer2Name = "player2-name"
	SettingPlayer1Mark = "player1-mark"
	SettingPlayer2Mark = "player2-mark"
)

// Board sizes the session accepts. Size 1 is legal and always ends in a
// draw; sizes above the cap get clamped back.
const (
	MinBoardSize = 1
	MaxBoardSize = 10
)

// settingsProvider is the storage contract the service reads through. A
// missing key comes back as apperror.ErrSettingNotFound and never fails a
// game: the configured default takes over.
type settingsProvider interface {
	GetInt(ctx context.Context, key string) (int, error)
	GetString(ctx context.Context, key string) (string, error)

	SetInt(ctx context.Context, key string, value int) error
	SetString(ctx context.Context, key, value string) error
}

// GameSettings is the resolved, validated bundle a new game is built from.
type GameSettings struct {
	BoardSize   int    `json:"board_size"`
	WinLength   int    `json:"win_length"`
	Mode        string `json:"mode"`
	Difficulty  string `json:"difficulty"`
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`
	Player1Mark string `json:"player1_mark"`
	Player2Mark string `json:"player2_mark"`
}

type SettingsService interface {
	Current(ctx context.Context) GameSettings
	Update(ctx context.Context, settings GameSettings) (GameSettings, error)
}

type settingsService struct {
	logger   *slog.Logger
	provider settingsProvider
	defaults GameSettings
}

func NewSettingsService(logger *slog.Logger, provider settingsProvider, defaults GameSettings) SettingsService {
	return &settingsService{
		logger:   logger.With("component", "settingsService"),
		provider: provider,
		defaults: normalizeSettings(defaults, fallbackSettings()),
	}
}

// Current - resolves every setting through the provider, falling back to
// the defaults key by key. Storage trouble never blocks a game.
func (that *settingsService) Current(ctx context.Context) GameSettings {
	settings := GameSettings{
		BoardSize:   that.intSetting(ctx, SettingBoardSize, that.defaults.BoardSize),
		WinLength:   that.intSetting(ctx, SettingWinLength, that.defaults.WinLength),
		Mode:        that.stringSetting(ctx, SettingPlayMode, that.defaults.Mode),
		Difficulty:  that.stringSetting(ctx, SettingDifficulty, that.defaults.Difficulty),
		Player1Name: that.stringSetting(ctx, SettingPlayer1Name, that.defaults.Player1Name),
		Player2Name: that.stringSetting(ctx, SettingPlayer2Name, that.defaults.Player2Name),
		Player1Mark: that.stringSetting(ctx, SettingPlayer1Mark, that.defaults.Player1Mark),
		Player2Mark: that.stringSetting(ctx, SettingPlayer2Mark, that.defaults.Player2Mark),
	}

	return normalizeSettings(settings, that.defaults)
}

// Update - validates the incoming settings and persists them. The stored
// values are already normalized, so Current and Update agree on what the
// next game looks like.
func (that *settingsService) Update(ctx context.Context, settings GameSettings) (GameSettings, error) {
	normalized := normalizeSettings(settings, that.defaults)

	if err := that.provider.SetInt(ctx, SettingBoardSize, normalized.BoardSize); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingBoardSize, err)
	}

	if err := that.provider.SetInt(ctx, SettingWinLength, normalized.WinLength); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingWinLength, err)
	}

	if err := that.provider.SetString(ctx, SettingPlayMode, normalized.Mode); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingPlayMode, err)
	}

	if err := that.provider.SetString(ctx, SettingDifficulty, normalized.Difficulty); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingDifficulty, err)
	}

	if err := that.provider.SetString(ctx, SettingPlayer1Name, normalized.Player1Name); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingPlayer1Name, err)
	}

	if err := that.provider.SetString(ctx, SettingPlayer2Name, normalized.Player2Name); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingPlayer2Name, err)
	}

	if err := that.provider.SetString(ctx, SettingPlayer1Mark, normalized.Player1Mark); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingPlayer1Mark, err)
	}

	if err := that.provider.SetString(ctx, SettingPlayer2Mark, normalized.Player2Mark); err != nil {
		return normalized, fmt.Errorf("failed to store %s: %w", SettingPlayer2Mark, err)
	}

	return normalized, nil
}

func (that *settingsService) intSetting(ctx context.Context, key string, fallback int) int {
	value, err := that.provider.GetInt(ctx, key)
	if err != nil {
		if !errors.Is(err, apperror.ErrSettingNotFound) {
			that.logger.Warn("failed to read setting", "key", key, "error", err)
		}

		return fallback
	}

	return value
}

func (that *settingsService) stringSetting(ctx context.Context, key string, fallback string) string {
	value, err := that.provider.GetString(ctx, key)
	if err != nil {
		if !errors.Is(err, apperror.ErrSettingNotFound) {
			that.logger.Warn("failed to read setting", "key", key, "error", err)
		}

		return fallback
	}

	return value
}

// normalizeSettings clamps and defaults a settings bundle so a game can
// always be built from it.
func normalizeSettings(settings, defaults GameSettings) GameSettings {
	out := settings

	// zero means the field was never set; only real values get clamped
	if out.BoardSize == 0 {
		out.BoardSize = defaults.BoardSize
	}

	if out.BoardSize < MinBoardSize {
		out.BoardSize = MinBoardSize
	}

	if out.BoardSize > MaxBoardSize {
		out.BoardSize = MaxBoardSize
	}

	if out.WinLength == 0 {
		out.WinLength = defaults.WinLength
	}

	if out.WinLength < 1 || out.WinLength > out.BoardSize {
		out.WinLength = out.BoardSize
	}

	switch out.Mode {
	case entity.ModePvP, entity.ModeWithBot:
	default:
		out.Mode = defaults.Mode
	}

	switch out.Difficulty {
	case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
	default:
		out.Difficulty = defaults.Difficulty
	}

	if strings.TrimSpace(out.Player1Name) == "" {
		out.Player1Name = defaults.Player1Name
	}

	if strings.TrimSpace(out.Player2Name) == "" {
		out.Player2Name = defaults.Player2Name
	}

	out.Player1Mark = normalizeMark(out.Player1Mark, defaults.Player1Mark)
	out.Player2Mark = normalizeMark(out.Player2Mark, defaults.Player2Mark)

	if out.Player1Mark == out.Player2Mark {
		out.Player1Mark = defaults.Player1Mark
		out.Player2Mark = defaults.Player2Mark
	}

	return out
}

func normalizeMark(mark, fallback string) string {
	mark = strings.TrimSpace(mark)
	if mark == "" {
		return fallback
	}

	return mark
}

// fallbackSettings is the last line of defence when even the configured
// defaults are unusable.
func fallbackSettings() GameSettings {
	return GameSettings{
		BoardSize:   3,
		WinLength:   3,
		Mode:        entity.ModePvP,
		Difficulty:  entity.DifficultyEasy,
		Player1Name: "Player 1",
		Player2Name: "Player 2",
		Player1Mark: entity.DefaultMarkX,
		Player2Mark: entity.DefaultMarkO,
	}
}
