package models

import "time"

// MessageType tells clients how to render a chat message
type MessageType string

const (
	MessageTypePlayer MessageType = "player"
	MessageTypeDM     MessageType = "dm"
	MessageTypeSystem MessageType = "system"
)

const MaxChatMessageLength = 2000

// ChatMessage is an append-only chat line in a session
type ChatMessage struct {
	ID     string `json:"id"`
	GameID string `json:"game_id"`

	// UserID is empty for system messages
	UserID string `json:"user_id,omitempty"`

	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}
