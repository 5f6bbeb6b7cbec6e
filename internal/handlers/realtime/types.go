package realtime

import "encoding/json"

// MessageType names a message a client sends
type MessageType string

const (
	MessageJoinGame        MessageType = "join_game"
	MessageLeaveGame       MessageType = "leave_game"
	MessageGameAction      MessageType = "game_action"
	MessageRollDice        MessageType = "roll_dice"
	MessageChatMessage     MessageType = "chat_message"
	MessageCharacterUpdate MessageType = "character_update"
	MessagePing            MessageType = "ping"
)

// Replies sent only to the socket that asked
const (
	ReplyRoomJoined = "room_joined"
	ReplyRoomLeft   = "room_left"
	ReplyPong       = "pong"
	ReplyError      = "error"
)

// ClientMessage is what a client writes to the socket
type ClientMessage struct {
	Type      MessageType     `json:"type"`
	SessionID string          `json:"session_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type RollDicePayload struct {
	CharacterID string `json:"character_id"`
	DiceType    string `json:"dice_type"`
	Count       int    `json:"count"`
	Modifier    int    `json:"modifier"`
	Notation    string `json:"notation"`
	RollType    string `json:"roll_type"`
}

type ChatMessagePayload struct {
	Content string `json:"content"`
}

type CharacterUpdatePayload struct {
	CharacterID string          `json:"character_id"`
	Changes     json.RawMessage `json:"changes,omitempty"`
}

// ErrorPayload carries a failed request back to its sender
type ErrorPayload struct {
	// Request is the message type that failed
	Request MessageType `json:"request,omitempty"`
	Error   string      `json:"error"`
	Code    string      `json:"code"`
}
