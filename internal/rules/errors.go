package rules

import "github.com/KirkDiggler/tavern/internal/common/apperr"

var (
	ErrNilCharacter           = apperr.New(apperr.KindInvalidArgument, "character cannot be nil")
	ErrInvalidName            = apperr.New(apperr.KindInvalidArgument, "character name is required")
	ErrInvalidClass           = apperr.New(apperr.KindInvalidArgument, "unknown character class")
	ErrInvalidRace            = apperr.New(apperr.KindInvalidArgument, "unknown character race")
	ErrInvalidAbilityScore    = apperr.New(apperr.KindInvalidArgument, "ability scores must be at least 1")
	ErrInvalidAmount          = apperr.New(apperr.KindInvalidArgument, "amount must be positive")
	ErrInvalidRestType        = apperr.New(apperr.KindInvalidArgument, "rest type must be short or long")
	ErrInvalidItem            = apperr.New(apperr.KindInvalidArgument, "item needs a name, a positive quantity and non-negative weight and value")
	ErrItemNotFound           = apperr.New(apperr.KindNotFound, "item not found")
	ErrMaxLevelReached        = apperr.New(apperr.KindMaxLevelReached, "character is already at max level")
	ErrInsufficientExperience = apperr.New(apperr.KindInsufficientExperience, "not enough experience to level up")
	ErrInvariantViolated      = apperr.New(apperr.KindInternal, "character invariant violated")
)
