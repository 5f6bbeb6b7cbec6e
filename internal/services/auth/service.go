package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/common/clock"
	"github.com/KirkDiggler/tavern/internal/common/password"
	"github.com/KirkDiggler/tavern/internal/common/uuid"
	"github.com/KirkDiggler/tavern/internal/models"
	userRepo "github.com/KirkDiggler/tavern/internal/repositories/user"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

const minPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

type service struct {
	repo     userRepo.Repository
	hasher   password.Hasher
	clock    clock.Clock
	uuid     uuid.UUID
	validate *validator.Validate
	secret   []byte
	ttl      time.Duration
	issuer   string
}

// NewService creates a new auth service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.Hasher == nil {
		return nil, ErrNilHasher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}

	return &service{
		repo:     cfg.UserRepo,
		hasher:   cfg.Hasher,
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
		validate: validator.New(),
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
		issuer:   issuer,
	}, nil
}

func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	username := strings.TrimSpace(input.Username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate.Var(email, "required,email,max=255"); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	now := s.clock.Now()
	user := &models.User{
		ID:           s.uuid.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Role:         models.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateUser(ctx, &userRepo.CreateUserInput{User: user}); err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	token, expiresAt, err := s.sign(user)
	if err != nil {
		return nil, err
	}

	log.Printf("Registered user %s (%s)", user.Username, user.ID)

	return &RegisterOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	login := strings.TrimSpace(input.Login)
	if login == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByLogin(ctx, &userRepo.GetUserByLoginInput{Login: login})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.Internal("failed to look up user", err)
	}
	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.sign(user)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Authenticate(_ context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrUnauthenticated
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(input.Token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil, ErrUnauthenticated
	}

	role := claims.Role
	if role == "" {
		role = models.UserRoleUser
	}

	return &AuthenticateOutput{UserID: claims.UserID, Role: role}, nil
}

func (s *service) sign(user *models.User) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   user.ID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperr.Internal("failed to sign token", err)
	}

	return signed, expiresAt, nil
}
