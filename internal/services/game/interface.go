package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tavern/internal/services/game Service

import "context"

// Service defines the interface for game session operations
type Service interface {
	// CreateGame creates a session with the caller as DM
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// ListGames pages through sessions newest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// GetGame returns a session and its roster
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListMyGames returns the sessions the caller is enrolled in
	ListMyGames(ctx context.Context, input *ListMyGamesInput) (*ListMyGamesOutput, error)

	// JoinGame adds the caller and a character to a session
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// LeaveGame removes the caller from a session
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*LeaveGameOutput, error)

	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)
	PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error)
	ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error)
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)
	CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error)

	// UpdateGame applies the DM's edits to a live session
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*UpdateGameOutput, error)

	// RollDice rolls, and records and broadcasts the roll inside a session
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ListRolls returns a session's recent rolls
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)

	// ListMessages returns a page of chat, oldest first
	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)

	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) (*DeleteMessageOutput, error)

	// ConnectRoom puts a member's live connection in the session's room
	ConnectRoom(ctx context.Context, input *ConnectRoomInput) (*ConnectRoomOutput, error)

	// DisconnectRoom takes a connection out of the session's room
	DisconnectRoom(ctx context.Context, input *DisconnectRoomInput) error

	// BroadcastAction relays a game action to everyone else in the room
	BroadcastAction(ctx context.Context, input *BroadcastActionInput) (*BroadcastActionOutput, error)

	// BroadcastCharacterUpdate relays the caller's character to everyone else in the room
	BroadcastCharacterUpdate(ctx context.Context, input *BroadcastCharacterUpdateInput) (*BroadcastCharacterUpdateOutput, error)
}
