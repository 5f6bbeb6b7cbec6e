package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/tavern/internal/common/uuid UUID

// UUID generates identifiers for sessions, characters, items, rolls and messages
type UUID interface {
	NewUUID() string
}

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a random v4 UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Valid reports whether s parses as a UUID
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
