package game

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/password"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/dice"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/models"
	characterRepo "github.com/KirkDiggler/tavern/internal/repositories/character"
	chatRepo "github.com/KirkDiggler/tavern/internal/repositories/chat"
	rollRepo "github.com/KirkDiggler/tavern/internal/repositories/dice_roll"
	gameRepo "github.com/KirkDiggler/tavern/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/tavern/internal/repositories/player"
	"github.com/KirkDiggler/tavern/internal/services/messaging"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// DefaultMaxPlayers is used when a session is created without a cap
	DefaultMaxPlayers = 6
)

// Config holds the dependencies for the game service
type Config struct {
	GameRepo      gameRepo.Repository
	PlayerRepo    playerRepo.Repository
	CharacterRepo characterRepo.Repository
	ChatRepo      chatRepo.Repository
	DiceRollRepo  rollRepo.Repository

	// Broadcaster fans events out to the session's live connections
	Broadcaster hub.Broadcaster

	// Messaging writes the system chat lines for lifecycle events
	Messaging messaging.Service

	Hasher        password.Hasher
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SessionView is the public shape of a session. The password hash never leaves the service.
type SessionView struct {
	ID             string            `json:"id"`
	DMUserID       string            `json:"dm_user_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	MaxPlayers     int               `json:"max_players"`
	CurrentPlayers int               `json:"current_players"`
	Status         models.GameStatus `json:"status"`
	HasPassword    bool              `json:"has_password"`
	GameState      json.RawMessage   `json:"game_state,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func newSessionView(session *models.GameSession, currentPlayers int) *SessionView {
	return &SessionView{
		ID:             session.ID,
		DMUserID:       session.DMUserID,
		Name:           session.Name,
		Description:    session.Description,
		MaxPlayers:     session.MaxPlayers,
		CurrentPlayers: currentPlayers,
		Status:         session.Status,
		HasPassword:    session.HasPassword(),
		GameState:      session.GameState,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}

// Pagination selects a slice of a listing. Page starts at 1.
type Pagination struct {
	Page  int
	Limit int
}

// normalize fills defaults and clamps the limit
func (p Pagination) normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p Pagination) offset() int {
	return (p.Page - 1) * p.Limit
}

// CreateGameInput contains parameters for creating a session
type CreateGameInput struct {
	// UserID becomes the DM
	UserID      string
	Name        string
	Description string

	// MaxPlayers defaults to DefaultMaxPlayers when zero
	MaxPlayers int

	// Password protects the session when set
	Password string
}

// CreateGameOutput contains the new session and the DM's roster entry
type CreateGameOutput struct {
	Session *SessionView
	DM      *models.GamePlayer
}

// ListGamesInput contains parameters for browsing sessions
type ListGamesInput struct {
	Status models.GameStatus
	Pagination
}

type ListGamesOutput struct {
	Sessions []*SessionView
	Total    int
	Page     int
	Limit    int
}

type GetGameInput struct {
	SessionID string
}

// GetGameOutput contains a session and its roster
type GetGameOutput struct {
	Session *SessionView
	Players []*models.GamePlayer
}

type ListMyGamesInput struct {
	UserID string
}

type ListMyGamesOutput struct {
	Sessions []*SessionView
}

// JoinGameInput contains parameters for joining a session
type JoinGameInput struct {
	SessionID   string
	UserID      string
	CharacterID string
	Password    string
}

type JoinGameOutput struct {
	Session *SessionView
	Player  *models.GamePlayer
}

type LeaveGameInput struct {
	SessionID string
	UserID    string
}

// LeaveGameOutput reports the roster after leaving
type LeaveGameOutput struct {
	Session          *SessionView
	RemainingPlayers int

	// AutoPaused is set when this leave emptied an active session
	AutoPaused bool
}

type StartGameInput struct {
	SessionID string
	UserID    string
}

type StartGameOutput struct {
	Session *SessionView
}

type PauseGameInput struct {
	SessionID string
	UserID    string
}

type PauseGameOutput struct {
	Session *SessionView
}

type ResumeGameInput struct {
	SessionID string
	UserID    string
}

type ResumeGameOutput struct {
	Session *SessionView
}

type EndGameInput struct {
	SessionID string
	UserID    string
}

type EndGameOutput struct {
	Session *SessionView
}

type CancelGameInput struct {
	SessionID string
	UserID    string
}

type CancelGameOutput struct {
	Session *SessionView
}

// UpdateGameInput carries the DM's edits. Nil fields are left alone.
type UpdateGameInput struct {
	SessionID   string
	UserID      string
	Name        *string
	Description *string
	MaxPlayers  *int
	GameState   json.RawMessage
}

type UpdateGameOutput struct {
	Session *SessionView
}

// RollDiceInput describes a roll. Notation, when set, takes precedence over
// DiceType, Count and Modifier.
type RollDiceInput struct {
	// SessionID is empty for a standalone roll
	SessionID   string
	UserID      string
	CharacterID string

	DiceType string
	Count    int
	Modifier int
	Notation string

	RollType string
}

type RollDiceOutput struct {
	Roll *models.DiceRoll

	// Message is the human-readable result line
	Message        string
	IsCriticalHit  bool
	IsCriticalFail bool
}

// ListRollsInput selects from a session's roll log
type ListRollsInput struct {
	SessionID string
	UserID    string

	// RollerID narrows the log to one user
	RollerID string
	Pagination
}

type ListRollsOutput struct {
	Rolls []*models.DiceRoll
	Total int
	Page  int
	Limit int
}

type ListMessagesInput struct {
	SessionID string
	UserID    string
	Pagination
}

// ListMessagesOutput holds a page of chat in reading order, oldest first
type ListMessagesOutput struct {
	Messages []*models.ChatMessage
	Total    int
	Page     int
	Limit    int
}

type SendMessageInput struct {
	SessionID string
	UserID    string
	Content   string

	// ConnectionID is set when the message arrived over a socket
	ConnectionID string
}

type SendMessageOutput struct {
	Message *models.ChatMessage
}

type DeleteMessageInput struct {
	SessionID string
	UserID    string
	MessageID string
}

type DeleteMessageOutput struct{}

// ConnectRoomInput attaches a live connection to a session's room
type ConnectRoomInput struct {
	SessionID  string
	Connection hub.Connection
}

type ConnectRoomOutput struct {
	Session *SessionView
}

type DisconnectRoomInput struct {
	SessionID  string
	Connection hub.Connection
}

// BroadcastActionInput relays an arbitrary game action to the room
type BroadcastActionInput struct {
	SessionID    string
	UserID       string
	ConnectionID string
	Action       json.RawMessage
}

type BroadcastActionOutput struct {
	Delivered int
}

// BroadcastCharacterUpdateInput relays a character change to the room
type BroadcastCharacterUpdateInput struct {
	SessionID    string
	UserID       string
	ConnectionID string
	CharacterID  string
	Changes      json.RawMessage
}

type BroadcastCharacterUpdateOutput struct {
	Delivered int
}

// Event payloads

type PlayerJoinedPayload struct {
	Player         *models.GamePlayer `json:"player"`
	CurrentPlayers int                `json:"current_players"`
}

type PlayerLeftPayload struct {
	UserID           string            `json:"user_id"`
	RemainingPlayers int               `json:"remaining_players"`
	Status           models.GameStatus `json:"status"`
}

type StatusChangedPayload struct {
	From    models.GameStatus `json:"from"`
	To      models.GameStatus `json:"to"`
	Session *SessionView      `json:"session"`
}

type GameActionPayload struct {
	Action json.RawMessage `json:"action"`
}

type CharacterUpdatePayload struct {
	Character *models.Character `json:"character"`
	Changes   json.RawMessage   `json:"changes,omitempty"`
}

type ChatDeletedPayload struct {
	MessageID string `json:"message_id"`
}
