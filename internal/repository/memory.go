package repository

import (
	"context"
	"sync"

	"github.com/elimu-ai/Dooz/internal/apperror"
)

// memorySettings keeps settings in process memory. It backs the game when
// no Redis is reachable; values are lost on restart.
type memorySettings struct {
	mu      sync.RWMutex
	ints    map[string]int
	strings map[string]string
}

func NewMemorySettings() SettingsRepository {
	return &memorySettings{
		ints:    make(map[string]int),
		strings: make(map[string]string),
	}
}

func (that *memorySettings) GetInt(_ context.Context, key string) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.ints[key]
	if !ok {
		return 0, apperror.ErrSettingNotFound
	}

	return value, nil
}

func (that *memorySettings) GetString(_ context.Context, key string) (string, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.strings[key]
	if !ok {
		return "", apperror.ErrSettingNotFound
	}

	return value, nil
}

func (that *memorySettings) SetInt(_ context.Context, key string, value int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.ints[key] = value

	return nil
}

func (that *memorySettings) SetString(_ context.Context, key, value string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.strings[key] = value

	return nil
}
