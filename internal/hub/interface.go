package hub

//go:generate mockgen -package=mocks -destination=mocks/mock_hub.go github.com/KirkDiggler/tavern/internal/hub Broadcaster,Connection

// Connection is one realtime client socket
type Connection interface {
	ID() string
	UserID() string

	// Send queues bytes for the client. It must not block.
	Send(message []byte) error
}

// Broadcaster is what the lifecycle controller needs from the hub
type Broadcaster interface {
	JoinRoom(conn Connection, sessionID string)
	LeaveRoom(conn Connection, sessionID string)
	EvictUser(sessionID, userID string) int
	Broadcast(input *BroadcastInput) *BroadcastOutput
}

// Observer sees every event after room delivery. It must not block.
type Observer interface {
	OnEvent(event *Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(event *Event)

func (f ObserverFunc) OnEvent(event *Event) {
	f(event)
}
