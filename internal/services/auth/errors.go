package auth

import (
	"errors"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
)

var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilUserRepo      = errors.New("user repository cannot be nil")
	ErrNilHasher        = errors.New("hasher cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
	ErrMissingSecret    = errors.New("signing secret cannot be empty")
)

var (
	ErrNilInput           = apperr.New(apperr.KindInvalidArgument, "input cannot be nil")
	ErrInvalidUsername    = apperr.New(apperr.KindInvalidArgument, "username must be 3 to 50 letters, digits, '-' or '_'")
	ErrInvalidEmail       = apperr.New(apperr.KindInvalidArgument, "email address is invalid")
	ErrWeakPassword       = apperr.New(apperr.KindInvalidArgument, "password must be at least 8 characters")
	ErrUserExists         = apperr.New(apperr.KindConflict, "username or email already registered")
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "invalid username or password")
	ErrUnauthenticated    = apperr.New(apperr.KindUnauthenticated, "missing or invalid token")
)
