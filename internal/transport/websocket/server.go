package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/elimu-ai/Dooz/internal/service"
)

// client is one connected frontend. The write lock serializes frames,
// because a move by one client triggers pushes to all of them.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (that *client) send(message *Message) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

type Server struct {
	logger *slog.Logger

	gamePlayService service.GamePlayService
	settingsService service.SettingsService

	upgrader websocket.Upgrader

	clientsMutex sync.RWMutex
	clients      map[*client]struct{}

	handlers map[string]func(ctx context.Context, cl *client, message *Message) error
}

func New(logger *slog.Logger, gamePlayService service.GamePlayService, settingsService service.SettingsService) *Server {
	server := &Server{
		logger: logger.With("component", "websocketServer"),

		gamePlayService: gamePlayService,
		settingsService: settingsService,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},

		clients:  make(map[*client]struct{}),
		handlers: make(map[string]func(context.Context, *client, *Message) error),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:state"] = server.handleGameState
	server.handlers["settings:get"] = server.handleSettingsGet
	server.handlers["settings:update"] = server.handleSettingsUpdate

	return server
}

// Handler - the HTTP handler serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(r.Context(), w, r)
	})

	return mux
}

// Start - starts the WebSocket server and shuts it down when ctx ends.
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

// upgradeToWebSocket - upgrades the connection and serves it until the
// client goes away.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	cl := &client{conn: conn}

	that.clientsMutex.Lock()
	that.clients[cl] = struct{}{}
	that.clientsMutex.Unlock()

	defer func() {
		that.clientsMutex.Lock()
		delete(that.clients, cl)
		that.clientsMutex.Unlock()

		_ = conn.Close()
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(ctx, cl)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, cl *client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(cl, "error", "malformed message"); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(cl, message.Action, "unknown action"); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		if err = handler(ctx, cl, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendMessage(cl *client, action string, payload Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return cl.send(&Message{Action: action, Payload: raw})
}

func (that *Server) sendErrorResponse(cl *client, action, errorMsg string) error {
	if err := that.sendMessage(cl, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

// broadcast pushes one message to every connected client, so every open
// frontend window shows the same board.
func (that *Server) broadcast(action string, payload Payload) {
	log := that.logger.With("method", "broadcast")

	that.clientsMutex.RLock()
	clients := make([]*client, 0, len(that.clients))
	for cl := range that.clients {
		clients = append(clients, cl)
	}
	that.clientsMutex.RUnlock()

	for _, cl := range clients {
		if err := that.sendMessage(cl, action, payload); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}
}
