package character

import (
	"errors"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
)

var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilCharacterRepo = errors.New("character repository cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
)

var (
	ErrNilInput          = apperr.New(apperr.KindInvalidArgument, "input cannot be nil")
	ErrCharacterNotFound = apperr.New(apperr.KindNotFound, "character not found")
	ErrInvalidSkill      = apperr.New(apperr.KindInvalidArgument, "skill names cannot be empty")
)
