package chat

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tavern/internal/repositories/chat Repository

import (
	"context"

	"github.com/KirkDiggler/tavern/internal/models"
)

// Repository defines the interface for session chat persistence
type Repository interface {
	// AddMessage appends a message to its session's chat
	AddMessage(ctx context.Context, input *AddMessageInput) error

	// GetMessage retrieves a message by ID
	GetMessage(ctx context.Context, input *GetMessageInput) (*models.ChatMessage, error)

	// GetMessagesForGame retrieves a page of chat, newest first
	GetMessagesForGame(ctx context.Context, input *GetMessagesForGameInput) (*GetMessagesForGameOutput, error)

	// DeleteMessage removes a message from its session's chat
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) error
}
