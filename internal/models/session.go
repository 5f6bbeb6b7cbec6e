package models

import (
	"encoding/json"
	"time"
)

const (
	MinPlayers = 1
	MaxPlayers = 8
)

// GameSession is a table of players run by a single DM
type GameSession struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// DMUserID is the user who created and runs the session
	DMUserID string `json:"dm_user_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// MaxPlayers caps the roster, DM included
	MaxPlayers int `json:"max_players"`

	// Status is the current lifecycle state
	Status GameStatus `json:"status"`

	// PasswordHash is empty for open sessions
	PasswordHash string `json:"password_hash,omitempty"`

	// GameState is an opaque blob owned by the DM's client
	GameState json.RawMessage `json:"game_state,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPassword reports whether joining requires a password
func (g *GameSession) HasPassword() bool {
	return g.PasswordHash != ""
}

// IsDM reports whether userID runs this session
func (g *GameSession) IsDM(userID string) bool {
	return g.DMUserID == userID
}
