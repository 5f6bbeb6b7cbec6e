package hub

import (
	"time"
)

// EventType names a realtime event
type EventType string

const (
	EventPlayerJoined             EventType = "player_joined"
	EventPlayerLeft               EventType = "player_left"
	EventGameActionBroadcast      EventType = "game_action_broadcast"
	EventDiceRollResult           EventType = "dice_roll_result"
	EventChatMessageBroadcast     EventType = "chat_message_broadcast"
	EventChatMessageDeleted       EventType = "chat_message_deleted"
	EventCharacterUpdateBroadcast EventType = "character_update_broadcast"
	EventGameStatusChanged        EventType = "game_status_changed"
	EventGameStateUpdated         EventType = "game_state_updated"
)

// excludeOrigin lists the event types the originator does not receive.
// Everything else echoes back to the sender.
var excludeOrigin = map[EventType]bool{
	EventPlayerJoined:             true,
	EventPlayerLeft:               true,
	EventGameActionBroadcast:      true,
	EventCharacterUpdateBroadcast: true,
}

// ExcludesOrigin reports whether t is withheld from its originator
func (t EventType) ExcludesOrigin() bool {
	return excludeOrigin[t]
}

// Event is the envelope every room member receives
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// BroadcastInput describes one fan-out
type BroadcastInput struct {
	SessionID string
	Type      EventType
	Payload   any

	// UserID is the actor. With no origin connection, excluding the
	// origin excludes every connection this user holds in the room.
	UserID string

	// OriginConnectionID is the socket the action arrived on, if any
	OriginConnectionID string

	// Exclude lists connection IDs that never receive this event
	Exclude []string
}

// BroadcastOutput reports what happened to one fan-out
type BroadcastOutput struct {
	Event     *Event
	Delivered int
	Failed    int
}
