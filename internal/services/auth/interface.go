package auth

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tavern/internal/services/auth Service

import "context"

// Service issues and checks the bearer tokens the transports accept
type Service interface {
	// Register creates an account and signs a token for it
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login checks a username or email against its password
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a token to the caller. Any failure is ErrUnauthenticated.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
