package models

// GameStatus represents the current state of a game session
type GameStatus string

const (
	// GameStatusWaiting indicates a session is gathering players
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates play is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusPaused indicates play is suspended and may resume
	GameStatusPaused GameStatus = "paused"

	// GameStatusCompleted indicates the session ended normally
	GameStatusCompleted GameStatus = "completed"

	// GameStatusCancelled indicates the session was abandoned
	GameStatusCancelled GameStatus = "cancelled"
)

// statusTransitions is the full lifecycle graph. Terminal states have no edges.
var statusTransitions = map[GameStatus][]GameStatus{
	GameStatusWaiting: {GameStatusActive, GameStatusCompleted, GameStatusCancelled},
	GameStatusActive:  {GameStatusPaused, GameStatusCompleted, GameStatusCancelled},
	GameStatusPaused:  {GameStatusActive, GameStatusCompleted, GameStatusCancelled},
}

// Valid reports whether s is one of the known statuses
func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusWaiting, GameStatusActive, GameStatusPaused, GameStatusCompleted, GameStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusCompleted || s == GameStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next
func (s GameStatus) CanTransitionTo(next GameStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
