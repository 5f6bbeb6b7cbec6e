package game

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/hub"
	"github.com/KirkDiggler/tavern/internal/models"
	chatRepo "github.com/KirkDiggler/tavern/internal/repositories/chat"
)

// ListMessages returns a page of chat in reading order. Pages are counted
// from the newest message, so page 1 is the latest conversation.
func (s *service) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if _, _, err := s.member(ctx, input.SessionID, input.UserID); err != nil {
		return nil, err
	}

	page := input.Pagination.normalize()
	listed, err := s.chatRepo.GetMessagesForGame(ctx, &chatRepo.GetMessagesForGameInput{
		GameID: input.SessionID,
		Offset: page.offset(),
		Limit:  page.Limit,
	})
	if err != nil {
		return nil, apperr.Internal("failed to list messages", err)
	}

	messages := listed.Messages
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return &ListMessagesOutput{
		Messages: messages,
		Total:    listed.Total,
		Page:     page.Page,
		Limit:    page.Limit,
	}, nil
}

// SendMessage posts a chat line from a member. The DM's lines are typed as DM messages.
func (s *service) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	content := strings.TrimSpace(input.Content)
	if content == "" || utf8.RuneCountInString(content) > models.MaxChatMessageLength {
		return nil, ErrInvalidMessage
	}

	session, _, err := s.member(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	messageType := models.MessageTypePlayer
	if session.IsDM(input.UserID) {
		messageType = models.MessageTypeDM
	}

	message := &models.ChatMessage{
		ID:        s.uuid.NewUUID(),
		GameID:    session.ID,
		UserID:    input.UserID,
		Content:   content,
		Type:      messageType,
		CreatedAt: s.clock.Now(),
	}
	if err := s.chatRepo.AddMessage(ctx, &chatRepo.AddMessageInput{Message: message}); err != nil {
		return nil, apperr.Internal("failed to save message", err)
	}

	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID:          session.ID,
		Type:               hub.EventChatMessageBroadcast,
		UserID:             input.UserID,
		OriginConnectionID: input.ConnectionID,
		Payload:            message,
	})

	return &SendMessageOutput{Message: message}, nil
}

// DeleteMessage removes a chat line. Only its author or the DM may do so.
func (s *service) DeleteMessage(ctx context.Context, input *DeleteMessageInput) (*DeleteMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	message, err := s.chatRepo.GetMessage(ctx, &chatRepo.GetMessageInput{MessageID: input.MessageID})
	if err != nil {
		if errors.Is(err, chatRepo.ErrMessageNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, apperr.Internal("failed to get message", err)
	}
	if message.GameID != session.ID {
		return nil, ErrMessageNotFound
	}

	if message.UserID != input.UserID && !session.IsDM(input.UserID) {
		return nil, ErrForbidden
	}

	if err := s.chatRepo.DeleteMessage(ctx, &chatRepo.DeleteMessageInput{
		GameID:    session.ID,
		MessageID: message.ID,
	}); err != nil {
		if errors.Is(err, chatRepo.ErrMessageNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, apperr.Internal("failed to delete message", err)
	}

	s.broadcaster.Broadcast(&hub.BroadcastInput{
		SessionID: session.ID,
		Type:      hub.EventChatMessageDeleted,
		UserID:    input.UserID,
		Payload:   &ChatDeletedPayload{MessageID: message.ID},
	})

	return &DeleteMessageOutput{}, nil
}
