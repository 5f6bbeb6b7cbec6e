package hub

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/KirkDiggler/tavern/internal/common/clock"
)

var ErrNilClock = errors.New("clock cannot be nil")

type Config struct {
	Clock clock.Clock
}

// room serializes its own fan-out so members see events in Broadcast order
type room struct {
	mu      sync.Mutex
	members map[string]Connection
}

// Hub manages rooms keyed by session ID. Lock order is Hub.mu then room.mu.
type Hub struct {
	clock clock.Clock

	mu          sync.RWMutex
	rooms       map[string]*room
	memberships map[string]map[string]struct{} // connection ID -> session IDs

	obsMu     sync.RWMutex
	observers []Observer
}

// New creates a new Hub
func New(cfg *Config) (*Hub, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &Hub{
		clock:       cfg.Clock,
		rooms:       make(map[string]*room),
		memberships: make(map[string]map[string]struct{}),
	}, nil
}

// AddObserver registers o for every future event
func (h *Hub) AddObserver(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	h.observers = append(h.observers, o)
}

// JoinRoom adds conn to the session's room. Joining twice is a no-op.
func (h *Hub) JoinRoom(conn Connection, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[sessionID]
	if !ok {
		r = &room{members: make(map[string]Connection)}
		h.rooms[sessionID] = r
	}

	r.mu.Lock()
	r.members[conn.ID()] = conn
	r.mu.Unlock()

	if _, ok := h.memberships[conn.ID()]; !ok {
		h.memberships[conn.ID()] = make(map[string]struct{})
	}
	h.memberships[conn.ID()][sessionID] = struct{}{}
}

// LeaveRoom removes conn from the session's room
func (h *Hub) LeaveRoom(conn Connection, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(conn.ID(), sessionID)
}

// LeaveAll removes conn from every room, used when a socket closes
func (h *Hub) LeaveAll(conn Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID := range h.memberships[conn.ID()] {
		h.leaveLocked(conn.ID(), sessionID)
	}
	delete(h.memberships, conn.ID())
}

// EvictUser removes every connection userID holds in the session's room
func (h *Hub) EvictUser(sessionID, userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[sessionID]
	if !ok {
		return 0
	}

	r.mu.Lock()
	var ids []string
	for id, conn := range r.members {
		if conn.UserID() == userID {
			ids = append(ids, id)
		}
	}
	r.mu.Unlock()

	for _, id := range ids {
		h.leaveLocked(id, sessionID)
	}
	return len(ids)
}

// leaveLocked requires h.mu held for writing
func (h *Hub) leaveLocked(connID, sessionID string) {
	if r, ok := h.rooms[sessionID]; ok {
		r.mu.Lock()
		delete(r.members, connID)
		empty := len(r.members) == 0
		r.mu.Unlock()
		if empty {
			delete(h.rooms, sessionID)
		}
	}

	if sessions, ok := h.memberships[connID]; ok {
		delete(sessions, sessionID)
		if len(sessions) == 0 {
			delete(h.memberships, connID)
		}
	}
}

// RoomSize returns how many connections are in the session's room
func (h *Hub) RoomSize(sessionID string) int {
	h.mu.RLock()
	r, ok := h.rooms[sessionID]
	h.mu.RUnlock()
	if !ok {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Broadcast stamps the event with the hub clock, encodes it once and hands
// the same bytes to every eligible member. A failing connection is logged
// and skipped.
func (h *Hub) Broadcast(input *BroadcastInput) *BroadcastOutput {
	event := &Event{
		Type:      input.Type,
		SessionID: input.SessionID,
		UserID:    input.UserID,
		Payload:   input.Payload,
		Timestamp: h.clock.Now(),
	}
	out := &BroadcastOutput{Event: event}

	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for session %s: %v", event.Type, event.SessionID, err)
		return out
	}

	excluded := make(map[string]bool, len(input.Exclude)+1)
	for _, id := range input.Exclude {
		excluded[id] = true
	}
	excludeActor := input.Type.ExcludesOrigin() && input.OriginConnectionID == "" && input.UserID != ""
	if input.Type.ExcludesOrigin() && input.OriginConnectionID != "" {
		excluded[input.OriginConnectionID] = true
	}

	h.mu.RLock()
	r, ok := h.rooms[input.SessionID]
	h.mu.RUnlock()

	if ok {
		r.mu.Lock()
		for id, conn := range r.members {
			if excluded[id] || (excludeActor && conn.UserID() == input.UserID) {
				continue
			}
			if err := conn.Send(message); err != nil {
				log.Printf("Failed to deliver %s to connection %s (user %s) in session %s: %v",
					event.Type, id, conn.UserID(), input.SessionID, err)
				out.Failed++
				continue
			}
			out.Delivered++
		}
		h.notify(event)
		r.mu.Unlock()
	} else {
		h.notify(event)
	}

	return out
}

func (h *Hub) notify(event *Event) {
	h.obsMu.RLock()
	defer h.obsMu.RUnlock()
	for _, o := range h.observers {
		o.OnEvent(event)
	}
}
