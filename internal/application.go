package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/elimu-ai/Dooz/internal/config"
	"github.com/elimu-ai/Dooz/internal/repository"
	"github.com/elimu-ai/Dooz/internal/repository/storage"
	"github.com/elimu-ai/Dooz/internal/service"
	"github.com/elimu-ai/Dooz/internal/transport/rest"
	"github.com/elimu-ai/Dooz/internal/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// settings live in redis; without it the game still runs, settings just
	// do not survive a restart
	var settingsRepo repository.SettingsRepository

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("could not connect to redis, keeping settings in memory", "error", err)

		settingsRepo = repository.NewMemorySettings()
	} else {
		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		settingsRepo = repository.NewSettingsRepository(redisStorage.Connection)
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open match storage: %w", err)
	}

	defer func() {
		if closeErr := sqliteStorage.Close(); closeErr != nil {
			log.Error("could not close match storage", "error", closeErr)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init match storage: %w", err)
	}

	settingsService := service.NewSettingsService(logger, settingsRepo, defaultSettings(conf))
	matchService := service.NewMatchService(logger, repository.NewMatchRepository(sqliteStorage.Connection))
	gamePlayService := service.NewGamePlayService(logger, settingsService, service.NewBotService(logger), matchService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, matchService)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gamePlayService, settingsService)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func defaultSettings(conf *config.Config) service.GameSettings {
	return service.GameSettings{
		BoardSize:   conf.Game.BoardSize,
		WinLength:   conf.Game.WinLength,
		Mode:        conf.Game.Mode,
		Difficulty:  conf.Game.Difficulty,
		Player1Name: conf.Game.Player1Name,
		Player2Name: conf.Game.Player2Name,
		Player1Mark: conf.Game.Player1Mark,
		Player2Mark: conf.Game.Player2Mark,
	}
}
