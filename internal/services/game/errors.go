package game

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/models"
)

// Configuration errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilGameRepo      = errors.New("game repository cannot be nil")
	ErrNilPlayerRepo    = errors.New("player repository cannot be nil")
	ErrNilCharacterRepo = errors.New("character repository cannot be nil")
	ErrNilChatRepo      = errors.New("chat repository cannot be nil")
	ErrNilDiceRollRepo  = errors.New("dice roll repository cannot be nil")
	ErrNilBroadcaster   = errors.New("broadcaster cannot be nil")
	ErrNilMessaging     = errors.New("messaging service cannot be nil")
	ErrNilHasher        = errors.New("password hasher cannot be nil")
	ErrNilDiceRoller    = errors.New("dice roller cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
	ErrNilInput         = apperr.New(apperr.KindInvalidArgument, "input cannot be nil")
)

// Operation errors
var (
	ErrGameNotFound          = apperr.New(apperr.KindNotFound, "game session not found")
	ErrNameRequired          = apperr.New(apperr.KindInvalidArgument, "session name is required")
	ErrInvalidMaxPlayers     = apperr.New(apperr.KindInvalidArgument, fmt.Sprintf("max players must be between %d and %d", models.MinPlayers, models.MaxPlayers))
	ErrMaxPlayersBelowRoster = apperr.New(apperr.KindInvalidArgument, "max players cannot be lower than the current roster")
	ErrInvalidGameState      = apperr.New(apperr.KindInvalidArgument, "game state must be valid JSON")
	ErrInvalidStatusFilter   = apperr.New(apperr.KindInvalidArgument, "unknown status filter")

	ErrGameNotJoinable   = apperr.New(apperr.KindInvalidTransition, "game session has finished and cannot be joined")
	ErrAlreadyJoined     = apperr.New(apperr.KindConflict, "already joined this game session")
	ErrSessionFull       = apperr.New(apperr.KindSessionFull, "game session is full")
	ErrPasswordRequired  = apperr.New(apperr.KindPasswordRequired, "this game session requires a password")
	ErrInvalidPassword   = apperr.New(apperr.KindInvalidPassword, "invalid session password")
	ErrCharacterRequired = apperr.New(apperr.KindInvalidArgument, "a character is required to join")
	ErrCharacterNotFound = apperr.New(apperr.KindNotFound, "character not found")

	ErrPlayerNotInGame   = apperr.New(apperr.KindNotFound, "not a player in this game session")
	ErrNotAMember        = apperr.New(apperr.KindForbidden, "not a player in this game session")
	ErrNotDM             = apperr.New(apperr.KindForbidden, "only the DM can do that")
	ErrInvalidTransition = apperr.New(apperr.KindInvalidTransition, "invalid game status transition")

	ErrInvalidMessage  = apperr.New(apperr.KindInvalidArgument, fmt.Sprintf("message must be between 1 and %d characters", models.MaxChatMessageLength))
	ErrMessageNotFound = apperr.New(apperr.KindNotFound, "chat message not found")
	ErrForbidden       = apperr.New(apperr.KindForbidden, "not allowed")
	ErrInvalidAction   = apperr.New(apperr.KindInvalidArgument, "action must be a JSON value")
)
