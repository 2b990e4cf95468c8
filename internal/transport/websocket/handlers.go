package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elimu-ai/Dooz/internal/apperror"
	"github.com/elimu-ai/Dooz/internal/service"
)

// handleNewGame - starts a fresh game with the stored settings and pushes
// it to every connected client.
func (that *Server) handleNewGame(ctx context.Context, cl *client, message *Message) error {
	log := that.logger.With("method", "handleNewGame")

	game, start, err := that.gamePlayService.NewGame(ctx)
	if err != nil {
		log.Error("failed to start game", "error", err)
		return that.sendErrorResponse(cl, message.Action, "failed to start game")
	}

	that.broadcast(message.Action, Payload{Game: game, Start: &start})

	return nil
}

// handleGameTurn - applies one move. Accepted moves go out to everyone;
// rejected ones only resync the sender.
func (that *Server) handleGameTurn(ctx context.Context, cl *client, message *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	var turn TurnPayload
	if err := json.Unmarshal(message.Payload, &turn); err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(cl, message.Action, "invalid payload")
	}

	game, result, err := that.gamePlayService.MakeTurn(ctx, turn.Row, turn.Col)
	if err != nil {
		if errors.Is(err, apperror.ErrNoActiveGame) {
			return that.sendErrorResponse(cl, message.Action, "no active game")
		}

		log.Error("failed to make turn", "error", err)

		return that.sendErrorResponse(cl, message.Action, "failed to make turn")
	}

	payload := Payload{Game: game, Result: &result}

	if !result.Moved {
		if err = that.sendMessage(cl, message.Action, payload); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}

		return nil
	}

	that.broadcast(message.Action, payload)

	return nil
}

// handleGameState - replies with the current game so a reconnecting
// client can redraw the board.
func (that *Server) handleGameState(ctx context.Context, cl *client, message *Message) error {
	game, err := that.gamePlayService.CurrentGame(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNoActiveGame) {
			return that.sendErrorResponse(cl, message.Action, "no active game")
		}

		return fmt.Errorf("failed to get current game: %w", err)
	}

	if err = that.sendMessage(cl, message.Action, Payload{Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) handleSettingsGet(ctx context.Context, cl *client, message *Message) error {
	settings := that.settingsService.Current(ctx)

	if err := that.sendMessage(cl, message.Action, Payload{Settings: &settings}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// handleSettingsUpdate - validates and stores new settings, then replies
// with the normalized bundle the next game will use.
func (that *Server) handleSettingsUpdate(ctx context.Context, cl *client, message *Message) error {
	log := that.logger.With("method", "handleSettingsUpdate")

	var incoming service.GameSettings
	if err := json.Unmarshal(message.Payload, &incoming); err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(cl, message.Action, "invalid payload")
	}

	settings, err := that.settingsService.Update(ctx, incoming)
	if err != nil {
		log.Error("failed to update settings", "error", err)
		return that.sendErrorResponse(cl, message.Action, "failed to update settings")
	}

	if err = that.sendMessage(cl, message.Action, Payload{Settings: &settings}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
