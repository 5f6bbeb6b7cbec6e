package player

import "github.com/KirkDiggler/tavern/internal/models"

// AddPlayerInput contains the roster entry to add
type AddPlayerInput struct {
	Player *models.GamePlayer
}

// RemovePlayerInput identifies the roster entry to remove
type RemovePlayerInput struct {
	GameID string
	UserID string
}

// RemovePlayerOutput reports the roster size after removal
type RemovePlayerOutput struct {
	Remaining int
}

// GetPlayerInput identifies a single roster entry
type GetPlayerInput struct {
	GameID string
	UserID string
}

// GetPlayersInGameInput contains parameters for retrieving a roster
type GetPlayersInGameInput struct {
	GameID string
}

// GetPlayersInGameOutput contains the roster
type GetPlayersInGameOutput struct {
	Players []*models.GamePlayer
}

type CountPlayersInput struct {
	GameID string
}

type GetUserGamesInput struct {
	UserID string
}
