package character

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tavern/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/tavern/internal/models"
)

// Repository defines the interface for character persistence
type Repository interface {
	// SaveCharacter creates or replaces a character
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) error

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error)

	// GetCharactersForUser retrieves every character a user owns, oldest first
	GetCharactersForUser(ctx context.Context, input *GetCharactersForUserInput) ([]*models.Character, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error
}
