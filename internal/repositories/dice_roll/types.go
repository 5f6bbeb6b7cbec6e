package dice_roll

import "github.com/KirkDiggler/tavern/internal/models"

// AddRollInput contains the roll to record
type AddRollInput struct {
	Roll *models.DiceRoll
}

// GetRollInput identifies a single roll
type GetRollInput struct {
	RollID string
}

// GetRollsForGameInput selects rolls from a session's log
type GetRollsForGameInput struct {
	GameID string

	// UserID narrows the log to one roller when set
	UserID string

	Offset int
	Limit  int
}

// GetRollsForGameOutput contains the selected rolls and the log size
type GetRollsForGameOutput struct {
	Rolls []*models.DiceRoll
	Total int
}
