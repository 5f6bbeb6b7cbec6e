package chat

import "github.com/KirkDiggler/tavern/internal/models"

type AddMessageInput struct {
	Message *models.ChatMessage
}

type GetMessageInput struct {
	MessageID string
}

type GetMessagesForGameInput struct {
	GameID string
	Offset int
	Limit  int
}

type GetMessagesForGameOutput struct {
	Messages []*models.ChatMessage
	Total    int
}

type DeleteMessageInput struct {
	GameID    string
	MessageID string
}
