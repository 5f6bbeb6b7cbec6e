package auth

import (
	"time"

	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/password"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/models"
	userRepo "github.com/KirkDiggler/tavern/internal/repositories/user"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	DefaultIssuer   = "tavern"
)

// Config holds the dependencies for the auth service
type Config struct {
	UserRepo      userRepo.Repository
	Hasher        password.Hasher
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Secret signs tokens with HS256
	Secret string

	// TokenTTL defaults to DefaultTokenTTL
	TokenTTL time.Duration
	Issuer   string
}

// Claims is the token payload
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type RegisterOutput struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type LoginInput struct {
	// Login is a username or an email
	Login    string
	Password string
}

type LoginOutput struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type AuthenticateInput struct {
	Token string
}

type AuthenticateOutput struct {
	UserID string
	Role   models.UserRole
}
