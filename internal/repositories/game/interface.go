package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tavern/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/tavern/internal/models"
)

// Repository defines the interface for game session persistence
type Repository interface {
	// SaveSession creates or replaces a session and keeps the indexes in sync
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// GetSessions retrieves several sessions, skipping IDs that no longer exist
	GetSessions(ctx context.Context, input *GetSessionsInput) ([]*models.GameSession, error)

	// ListSessions pages through sessions newest first, optionally by status
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// DeleteSession removes a session and its index entries
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
