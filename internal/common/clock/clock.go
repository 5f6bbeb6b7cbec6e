package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/tavern/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock in UTC so stored timestamps compare cleanly
type DefaultClock struct{}

func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current UTC time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
