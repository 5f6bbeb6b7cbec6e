package game

import "github.com/KirkDiggler/tavern/internal/models"

type SaveSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionsInput struct {
	SessionIDs []string
}

type DeleteSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
	// Status filters by lifecycle state when set
	Status models.GameStatus
	Offset int
	Limit  int
}

type ListSessionsOutput struct {
	Sessions []*models.GameSession
	Total    int
}
