package dice_roll

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tavern/internal/repositories/dice_roll Repository

import (
	"context"

	"github.com/KirkDiggler/tavern/internal/models"
)

// Repository defines the interface for the per-session roll log
type Repository interface {
	// AddRoll appends a roll to its session's log
	AddRoll(ctx context.Context, input *AddRollInput) error

	// GetRoll retrieves a roll by ID
	GetRoll(ctx context.Context, input *GetRollInput) (*models.DiceRoll, error)

	// GetRollsForGame retrieves the most recent rolls of a session, newest first
	GetRollsForGame(ctx context.Context, input *GetRollsForGameInput) (*GetRollsForGameOutput, error)
}
