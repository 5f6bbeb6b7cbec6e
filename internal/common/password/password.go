package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_hasher.go github.com/KirkDiggler/tavern/internal/common/password Hasher

// Hasher produces and checks one-way password digests
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

var ErrEmptySecret = errors.New("secret cannot be empty")

type Config struct {
	// Cost is the bcrypt work factor, bcrypt.DefaultCost when zero
	Cost int
}

type BcryptHasher struct {
	cost int
}

func New(cfg *Config) *BcryptHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Cost != 0 {
		cost = cfg.Cost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(secret, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
