package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"football-quiz/internal/app"
	"football-quiz/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.QuizService
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option *int `json:"option"`
}

type joinedPayload struct {
	PlayerID string          `json:"playerId"`
	View     domain.GameView `json:"view"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}
}

// ServeWS upgrades HTTP requests to websockets. Clients may pass playerId to
// resume a game; connections sharing an ID share the game. Without one an ID
// is assigned.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		playerID = uuid.NewString()
	}
	logger := h.logger.With("player", playerID)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	joined, err := h.service.Enter(ctx, playerID)
	if err != nil {
		logger.Error("enter quiz failed", "error", err)
		_ = conn.WriteJSON(errorMessage(err.Error()))
		return
	}
	defer h.service.Leave(ctx, playerID)

	updates, cancel, err := h.service.Subscribe(ctx, playerID)
	if err != nil {
		_ = conn.WriteJSON(errorMessage(err.Error()))
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// Only the writer goroutine touches conn for writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug("ws write error", "error", err)
				return
			}
		}
	}()

	// push gives up once the writer is gone so the handler can always return.
	push := func(msg outboundMessage[any]) bool {
		select {
		case send <- msg:
			return true
		case <-writerDone:
			return false
		}
	}

	connected := push(outboundMessage[any]{Type: "joined", Payload: joinedPayload{PlayerID: playerID, View: joined}})

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: update}:
				case <-writerDone:
					return
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	logger.Info("player connected")
	if connected {
		for {
			var inbound inboundMessage
			if err := conn.ReadJSON(&inbound); err != nil {
				break
			}
			if reply, ok := h.handle(ctx, playerID, inbound); ok && !push(reply) {
				break
			}
		}
	}
	logger.Info("player disconnected")

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// handle applies one inbound message. State changes reach the client through
// the subscription, so only answers and failures get a direct reply.
func (h *WSHandler) handle(ctx context.Context, playerID string, inbound inboundMessage) (outboundMessage[any], bool) {
	var err error
	switch inbound.Type {
	case "start":
		_, err = h.service.Start(ctx, playerID)
	case "restart":
		_, err = h.service.Restart(ctx, playerID)
	case "home":
		_, err = h.service.Home(ctx, playerID)
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.Option == nil {
			return errorMessage("invalid answer payload"), true
		}
		outcome, err := h.service.Answer(ctx, playerID, *payload.Option)
		if err != nil {
			return errorMessage(err.Error()), true
		}
		return outboundMessage[any]{Type: "answerResult", Payload: outcome}, true
	default:
		return errorMessage("unsupported message type"), true
	}
	if err != nil {
		return errorMessage(err.Error()), true
	}
	return outboundMessage[any]{}, false
}
