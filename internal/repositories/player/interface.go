package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tavern/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/tavern/internal/models"
)

// Repository defines the interface for session roster persistence
type Repository interface {
	// AddPlayer enrolls a user in a session. A second enrollment fails.
	AddPlayer(ctx context.Context, input *AddPlayerInput) error

	// RemovePlayer removes a user from a session and reports who is left
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// GetPlayer retrieves a single roster entry
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.GamePlayer, error)

	// GetPlayersInGame retrieves the roster ordered by join time
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)

	// CountPlayers returns the roster size
	CountPlayers(ctx context.Context, input *CountPlayersInput) (int, error)

	// GetUserGames lists the sessions a user is enrolled in
	GetUserGames(ctx context.Context, input *GetUserGamesInput) ([]string, error)
}
