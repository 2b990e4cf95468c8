package websocket

import (
	"encoding/json"

	"github.com/elimu-ai/Dooz/internal/dooz"
	"github.com/elimu-ai/Dooz/internal/entity"
	"github.com/elimu-ai/Dooz/internal/service"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries every response field; only the parts relevant to the
// action are set.
type Payload struct {
	Game     *entity.Game          `json:"game,omitempty"`
	Start    *dooz.StartResult     `json:"start,omitempty"`
	Result   *dooz.MoveResult      `json:"result,omitempty"`
	Settings *service.GameSettings `json:"settings,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// TurnPayload is the request body of a game:turn action.
type TurnPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
