package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tavern/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when no account matches
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when the username or email is taken
	ErrUserExists = errors.New("username or email already registered")
)

// Config holds configuration for the gorm user repository
type Config struct {
	DB *gorm.DB
}

type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new SQL-backed user repository
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// CreateUser inserts an account, rejecting duplicate usernames and emails
func (r *gormRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}
	u := input.User

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", u.Username, u.Email).
			Count(&n).Error
		if err != nil {
			return fmt.Errorf("failed to check existing user: %w", err)
		}
		if n > 0 {
			return ErrUserExists
		}

		if err := tx.Create(u).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// GetUser retrieves an account by ID
func (r *gormRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// GetUserByLogin retrieves an account by username or email
func (r *gormRepository) GetUserByLogin(ctx context.Context, input *GetUserByLoginInput) (*models.User, error) {
	if input == nil || input.Login == "" {
		return nil, errors.New("input and login cannot be empty")
	}

	var u models.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", input.Login, input.Login).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
