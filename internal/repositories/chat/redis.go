package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	messageKeyPrefix  = "chat_message:"
	gameChatKeyPrefix = "game_chat:"
	gameChatSeqPrefix = "game_chat_seq:"
)

// ErrMessageNotFound is returned when a chat message is not found
var ErrMessageNotFound = errors.New("chat message not found")

// Config holds configuration for the Redis chat repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed chat repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func messageKey(id string) string {
	return messageKeyPrefix + id
}

func gameChatKey(gameID string) string {
	return gameChatKeyPrefix + gameID
}

// AddMessage appends a message, scored by a per-session sequence
func (r *redisRepository) AddMessage(ctx context.Context, input *AddMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}
	msg := input.Message
	if msg.ID == "" || msg.GameID == "" {
		return errors.New("message ID and game ID cannot be empty")
	}

	msgJSON, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	seq, err := r.client.Incr(ctx, gameChatSeqPrefix+msg.GameID).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate chat sequence: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, messageKey(msg.ID), msgJSON, 0)
	pipe.ZAdd(ctx, gameChatKey(msg.GameID), redis.Z{Score: float64(seq), Member: msg.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add chat message: %w", err)
	}

	return nil
}

// GetMessage retrieves a message by ID
func (r *redisRepository) GetMessage(ctx context.Context, input *GetMessageInput) (*models.ChatMessage, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	msgJSON, err := r.client.Get(ctx, messageKey(input.MessageID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get chat message: %w", err)
	}

	var msg models.ChatMessage
	if err := json.Unmarshal([]byte(msgJSON), &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat message: %w", err)
	}

	return &msg, nil
}

// GetMessagesForGame retrieves a page of chat, newest first
func (r *redisRepository) GetMessagesForGame(ctx context.Context, input *GetMessagesForGameInput) (*GetMessagesForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}
	if input.Limit <= 0 || input.Offset < 0 {
		return nil, errors.New("limit must be positive and offset non-negative")
	}

	indexKey := gameChatKey(input.GameID)

	pipe := r.client.Pipeline()
	countCmd := pipe.ZCard(ctx, indexKey)
	idsCmd := pipe.ZRevRange(ctx, indexKey, int64(input.Offset), int64(input.Offset+input.Limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get chat IDs for game: %w", err)
	}

	ids := idsCmd.Val()
	messages := make([]*models.ChatMessage, 0, len(ids))
	if len(ids) == 0 {
		return &GetMessagesForGameOutput{Messages: messages, Total: int(countCmd.Val())}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = messageKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat message %s: %w", ids[i], err)
		}
		messages = append(messages, &msg)
	}

	return &GetMessagesForGameOutput{
		Messages: messages,
		Total:    int(countCmd.Val()),
	}, nil
}

// DeleteMessage removes a message from the session chat
func (r *redisRepository) DeleteMessage(ctx context.Context, input *DeleteMessageInput) error {
	if input == nil || input.GameID == "" || input.MessageID == "" {
		return errors.New("input, game ID and message ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	removed := pipe.ZRem(ctx, gameChatKey(input.GameID), input.MessageID)
	pipe.Del(ctx, messageKey(input.MessageID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete chat message: %w", err)
	}

	if removed.Val() == 0 {
		return ErrMessageNotFound
	}

	return nil
}
