package models

import (
	"time"
)

// PlayerRole represents what a roster member may do in a session
type PlayerRole string

const (
	// PlayerRoleDM is the session creator
	PlayerRoleDM PlayerRole = "dm"

	// PlayerRolePlayer is a regular participant with a character
	PlayerRolePlayer PlayerRole = "player"

	// PlayerRoleCoDM is reserved and not assigned by any operation yet
	PlayerRoleCoDM PlayerRole = "co_dm"

	// PlayerRoleObserver is reserved and not assigned by any operation yet
	PlayerRoleObserver PlayerRole = "observer"
)

// GamePlayer is one roster entry. A user appears at most once per session.
type GamePlayer struct {
	GameID string `json:"game_id"`
	UserID string `json:"user_id"`

	// CharacterID is empty for the DM
	CharacterID string `json:"character_id,omitempty"`

	Role     PlayerRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}
