package messaging

import (
	"github.com/KirkDiggler/tavern/internal/dice"
	"github.com/KirkDiggler/tavern/internal/models"
)

// GetPlayerJoinedMessageInput contains parameters for a join line
type GetPlayerJoinedMessageInput struct {
	// PlayerName is whoever joined, usually the character name
	PlayerName string

	// PlayerCount is the roster size after joining
	PlayerCount int
	MaxPlayers  int
}

type GetPlayerJoinedMessageOutput struct {
	Message string
}

// GetPlayerLeftMessageInput contains parameters for a leave line
type GetPlayerLeftMessageInput struct {
	PlayerName string
	WasDM      bool

	// AutoPaused is set when the last player leaving paused the session
	AutoPaused bool
}

type GetPlayerLeftMessageOutput struct {
	Message string
}

// GetGameStatusMessageInput contains parameters for a transition line
type GetGameStatusMessageInput struct {
	SessionName string
	From        models.GameStatus
	To          models.GameStatus
}

type GetGameStatusMessageOutput struct {
	Message string
}

// GetRollResultMessageInput contains the roll to describe
type GetRollResultMessageInput struct {
	PlayerName  string
	Description string
	Rolls       []int
	Sides       int
	Total       int
	RollType    string
}

type GetRollResultMessageOutput struct {
	Message string

	// IsCriticalHit is a natural 20 on a single d20
	IsCriticalHit bool

	// IsCriticalFail is a natural 1 on a single d20
	IsCriticalFail bool
}

// Config contains configuration for the messaging service
type Config struct {
	// Roller picks between message variants
	Roller dice.Roller
}
