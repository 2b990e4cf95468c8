package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/elimu-ai/Dooz/internal/apperror"
)

// SettingsRepository stores the host's game settings as flat typed keys. A
// key that was never written comes back as apperror.ErrSettingNotFound.
type SettingsRepository interface {
	GetInt(ctx context.Context, key string) (int, error)
	GetString(ctx context.Context, key string) (string, error)

	SetInt(ctx context.Context, key string, value int) error
	SetString(ctx context.Context, key, value string) error
}

type dbSettings struct {
	client *redis.Client
}

func NewSettingsRepository(client *redis.Client) SettingsRepository {
	return &dbSettings{
		client: client,
	}
}

func settingKey(key string) string {
	return "setting:" + key
}

func (that *dbSettings) GetInt(ctx context.Context, key string) (int, error) {
	value, err := that.client.Get(ctx, settingKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, apperror.ErrSettingNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, nil
}

func (that *dbSettings) GetString(ctx context.Context, key string) (string, error) {
	value, err := that.client.Get(ctx, settingKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrSettingNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, nil
}

func (that *dbSettings) SetInt(ctx context.Context, key string, value int) error {
	if err := that.client.Set(ctx, settingKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	return nil
}

func (that *dbSettings) SetString(ctx context.Context, key, value string) error {
	if err := that.client.Set(ctx, settingKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	return nil
}
