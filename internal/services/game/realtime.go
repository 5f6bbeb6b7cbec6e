package game

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/tavern/internal/hub"
)

// ConnectRoom puts a member's live connection in the session's room
func (s *service) ConnectRoom(ctx context.Context, input *ConnectRoomInput) (*ConnectRoomOutput, error) {
	if input == nil || input.Connection == nil {
		return nil, ErrNilInput
	}

	session, _, err := s.member(ctx, input.SessionID, input.Connection.UserID())
	if err != nil {
		return nil, err
	}

	count, err := s.countPlayers(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	s.broadcaster.JoinRoom(input.Connection, session.ID)

	return &ConnectRoomOutput{Session: newSessionView(session, count)}, nil
}

// DisconnectRoom takes a connection out of the session's room
func (s *service) DisconnectRoom(ctx context.Context, input *DisconnectRoomInput) error {
	if input == nil || input.Connection == nil {
		return ErrNilInput
	}

	s.broadcaster.LeaveRoom(input.Connection, input.SessionID)
	return nil
}

// BroadcastAction relays a game action to everyone else in the room
func (s *service) BroadcastAction(ctx context.Context, input *BroadcastActionInput) (*BroadcastActionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Action) == 0 || !json.Valid(input.Action) {
		return nil, ErrInvalidAction
	}

	if _, _, err := s.member(ctx, input.SessionID, input.UserID); err != nil {
		return nil, err
	}

	out := s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID:          input.SessionID,
		Type:               hub.EventGameActionBroadcast,
		UserID:             input.UserID,
		OriginConnectionID: input.ConnectionID,
		Payload:            &GameActionPayload{Action: input.Action},
	})

	return &BroadcastActionOutput{Delivered: out.Delivered}, nil
}

// BroadcastCharacterUpdate relays the caller's stored character, with the
// client's description of what changed, to everyone else in the room
func (s *service) BroadcastCharacterUpdate(ctx context.Context, input *BroadcastCharacterUpdateInput) (*BroadcastCharacterUpdateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Changes) > 0 && !json.Valid(input.Changes) {
		return nil, ErrInvalidAction
	}

	if _, _, err := s.member(ctx, input.SessionID, input.UserID); err != nil {
		return nil, err
	}

	character, err := s.ownedCharacter(ctx, input.CharacterID, input.UserID)
	if err != nil {
		return nil, err
	}

	out := s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID:          input.SessionID,
		Type:               hub.EventCharacterUpdateBroadcast,
		UserID:             input.UserID,
		OriginConnectionID: input.ConnectionID,
		Payload:            &CharacterUpdatePayload{Character: character, Changes: input.Changes},
	})

	return &BroadcastCharacterUpdateOutput{Delivered: out.Delivered}, nil
}
