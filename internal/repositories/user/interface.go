package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tavern/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/tavern/internal/models"
)

// Repository defines the interface for account persistence
type Repository interface {
	// CreateUser stores a new account. Username and email are unique.
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// GetUser retrieves an account by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetUserByLogin retrieves an account by username or email
	GetUserByLogin(ctx context.Context, input *GetUserByLoginInput) (*models.User, error)
}
