package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/handlers/api"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/services/game"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilGameService   = errors.New("game service cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")

	errUnknownMessage = apperr.New(apperr.KindInvalidArgument, "unknown message type")
	errBadMessage     = apperr.New(apperr.KindInvalidArgument, "message is not valid JSON")
	errNotInRoom      = apperr.New(apperr.KindForbidden, "join the session's room first")
)

// operationTimeout bounds the service call behind one client message
const operationTimeout = 10 * time.Second

type Config struct {
	GameService   game.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Handler upgrades authenticated requests to websockets and relays
// client messages to the game service
type Handler struct {
	games    game.Service
	clock    clock.Clock
	uuid     uuid.UUID
	upgrader websocket.Upgrader
}

func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Handler{
		games: cfg.GameService,
		clock: cfg.Clock,
		uuid:  cfg.UUIDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// ServeWS must run behind api.RequireAuth
func (h *Handler) ServeWS(c *gin.Context) {
	userID := api.UserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for user %s: %v", userID, err)
		return
	}

	cl := newClient(h.uuid.NewUUID(), userID, conn)
	log.Printf("Client %s connected for user %s", cl.id, userID)

	go cl.writePump()
	h.readPump(cl)
}

// readPump dispatches messages in arrival order until the socket closes
func (h *Handler) readPump(cl *client) {
	defer func() {
		for sessionID := range cl.sessions {
			if err := h.games.DisconnectRoom(context.Background(), &game.DisconnectRoomInput{
				SessionID:  sessionID,
				Connection: cl,
			}); err != nil {
				log.Printf("Failed to remove connection %s from session %s: %v", cl.id, sessionID, err)
			}
		}
		cl.close()
		log.Printf("Client %s disconnected for user %s", cl.id, cl.userID)
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Unexpected close on connection %s: %v", cl.id, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.replyError(cl, &msg, errBadMessage)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
		if err := h.dispatch(ctx, cl, &msg); err != nil {
			h.replyError(cl, &msg, err)
		}
		cancel()
	}
}

func (h *Handler) dispatch(ctx context.Context, cl *client, msg *ClientMessage) error {
	switch msg.Type {
	case MessagePing:
		h.reply(cl, ReplyPong, msg.SessionID, nil)
		return nil

	case MessageJoinGame:
		out, err := h.games.ConnectRoom(ctx, &game.ConnectRoomInput{SessionID: msg.SessionID, Connection: cl})
		if err != nil {
			return err
		}
		cl.sessions[msg.SessionID] = struct{}{}
		h.reply(cl, ReplyRoomJoined, msg.SessionID, out.Session)
		return nil

	case MessageLeaveGame:
		if err := h.games.DisconnectRoom(ctx, &game.DisconnectRoomInput{SessionID: msg.SessionID, Connection: cl}); err != nil {
			return err
		}
		delete(cl.sessions, msg.SessionID)
		h.reply(cl, ReplyRoomLeft, msg.SessionID, nil)
		return nil
	}

	// everything below acts inside a room this socket joined
	if _, ok := cl.sessions[msg.SessionID]; !ok {
		if msg.Type.known() {
			return errNotInRoom
		}
		return errUnknownMessage
	}

	err := h.act(ctx, cl, msg)
	if errors.Is(err, game.ErrNotAMember) || errors.Is(err, game.ErrGameNotFound) {
		// a REST leave already evicted this socket from the hub room
		delete(cl.sessions, msg.SessionID)
		h.reply(cl, ReplyRoomLeft, msg.SessionID, nil)
	}
	return err
}

// act runs a room message for a socket that joined the room
func (h *Handler) act(ctx context.Context, cl *client, msg *ClientMessage) error {
	switch msg.Type {
	case MessageGameAction:
		_, err := h.games.BroadcastAction(ctx, &game.BroadcastActionInput{
			SessionID:    msg.SessionID,
			UserID:       cl.userID,
			ConnectionID: cl.id,
			Action:       msg.Payload,
		})
		return err

	case MessageRollDice:
		var p RollDicePayload
		if err := decode(msg.Payload, &p); err != nil {
			return err
		}
		_, err := h.games.RollDice(ctx, &game.RollDiceInput{
			SessionID:   msg.SessionID,
			UserID:      cl.userID,
			CharacterID: p.CharacterID,
			DiceType:    p.DiceType,
			Count:       p.Count,
			Modifier:    p.Modifier,
			Notation:    p.Notation,
			RollType:    p.RollType,
		})
		return err

	case MessageChatMessage:
		var p ChatMessagePayload
		if err := decode(msg.Payload, &p); err != nil {
			return err
		}
		_, err := h.games.SendMessage(ctx, &game.SendMessageInput{
			SessionID:    msg.SessionID,
			UserID:       cl.userID,
			Content:      p.Content,
			ConnectionID: cl.id,
		})
		return err

	case MessageCharacterUpdate:
		var p CharacterUpdatePayload
		if err := decode(msg.Payload, &p); err != nil {
			return err
		}
		_, err := h.games.BroadcastCharacterUpdate(ctx, &game.BroadcastCharacterUpdateInput{
			SessionID:    msg.SessionID,
			UserID:       cl.userID,
			ConnectionID: cl.id,
			CharacterID:  p.CharacterID,
			Changes:      p.Changes,
		})
		return err
	}

	return errUnknownMessage
}

func (t MessageType) known() bool {
	switch t {
	case MessageJoinGame, MessageLeaveGame, MessageGameAction, MessageRollDice,
		MessageChatMessage, MessageCharacterUpdate, MessagePing:
		return true
	}
	return false
}

func decode(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return errBadMessage
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errBadMessage
	}
	return nil
}

// reply writes an envelope to this socket only
func (h *Handler) reply(cl *client, eventType, sessionID string, payload any) {
	data, err := json.Marshal(&hub.Event{
		Type:      hub.EventType(eventType),
		SessionID: sessionID,
		UserID:    cl.userID,
		Payload:   payload,
		Timestamp: h.clock.Now(),
	})
	if err != nil {
		log.Printf("Failed to encode %s reply: %v", eventType, err)
		return
	}
	if err := cl.Send(data); err != nil {
		log.Printf("Failed to queue %s reply on connection %s: %v", eventType, cl.id, err)
	}
}

func (h *Handler) replyError(cl *client, msg *ClientMessage, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		log.Printf("%s from user %s in session %s failed: %v", msg.Type, cl.userID, msg.SessionID, err)
	}
	h.reply(cl, ReplyError, msg.SessionID, &ErrorPayload{
		Request: msg.Type,
		Error:   apperr.MessageOf(err),
		Code:    string(kind),
	})
}
