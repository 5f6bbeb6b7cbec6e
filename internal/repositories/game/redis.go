package game

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
	sessionKeyPrefix     = "session:"
	sessionsIndexKey     = "sessions:index"
	statusIndexKeyPrefix = "sessions:status:"
)

var allStatuses = []models.GameStatus{
	models.GameStatusWaiting,
	models.GameStatusActive,
	models.GameStatusPaused,
	models.GameStatusCompleted,
	models.GameStatusCancelled,
}

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func statusIndexKey(status models.GameStatus) string {
	return statusIndexKeyPrefix + string(status)
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	session := input.Session
	if session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	score := float64(session.CreatedAt.UnixMilli())

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), sessionJSON, 0)
	pipe.ZAdd(ctx, sessionsIndexKey, redis.Z{Score: score, Member: session.ID})

	// a session lives in exactly one status index
	for _, status := range allStatuses {
		if status == session.Status {
			pipe.ZAdd(ctx, statusIndexKey(status), redis.Z{Score: score, Member: session.ID})
		} else {
			pipe.ZRem(ctx, statusIndexKey(status), session.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.GameSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetSessions retrieves sessions in the order of the given IDs
func (r *redisRepository) GetSessions(ctx context.Context, input *GetSessionsInput) ([]*models.GameSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if len(input.SessionIDs) == 0 {
		return []*models.GameSession{}, nil
	}

	keys := make([]string, len(input.SessionIDs))
	for i, id := range input.SessionIDs {
		keys[i] = sessionKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.GameSession, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// deleted between index read and fetch
			continue
		}
		var session models.GameSession
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", input.SessionIDs[i], err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

// ListSessions pages through the session index newest first
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	if input.Offset < 0 {
		return nil, errors.New("offset cannot be negative")
	}

	indexKey := sessionsIndexKey
	if input.Status != "" {
		indexKey = statusIndexKey(input.Status)
	}

	pipe := r.client.Pipeline()
	countCmd := pipe.ZCard(ctx, indexKey)
	idsCmd := pipe.ZRevRange(ctx, indexKey, int64(input.Offset), int64(input.Offset+input.Limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions, err := r.GetSessions(ctx, &GetSessionsInput{SessionIDs: idsCmd.Val()})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{
		Sessions: sessions,
		Total:    int(countCmd.Val()),
	}, nil
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	delCmd := pipe.Del(ctx, sessionKey(input.SessionID))
	pipe.ZRem(ctx, sessionsIndexKey, input.SessionID)
	for _, status := range allStatuses {
		pipe.ZRem(ctx, statusIndexKey(status), input.SessionID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if delCmd.Val() == 0 {
		return ErrSessionNotFound
	}

	return nil
}
