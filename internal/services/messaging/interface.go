package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tavern/internal/services/messaging Service

import "context"

// Service writes the system chat lines posted for session events
type Service interface {
	// GetPlayerJoinedMessage returns the line posted when someone joins
	GetPlayerJoinedMessage(ctx context.Context, input *GetPlayerJoinedMessageInput) (*GetPlayerJoinedMessageOutput, error)

	// GetPlayerLeftMessage returns the line posted when someone leaves
	GetPlayerLeftMessage(ctx context.Context, input *GetPlayerLeftMessageInput) (*GetPlayerLeftMessageOutput, error)

	// GetGameStatusMessage returns the line posted on a lifecycle transition
	GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error)

	// GetRollResultMessage describes a roll, with flavour for natural 20s and 1s
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)
}
