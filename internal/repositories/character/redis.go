package character

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
	characterKeyPrefix      = "character:"
	userCharactersKeyPrefix = "user_characters:"
)

// ErrCharacterNotFound is returned when a character is not found
var ErrCharacterNotFound = errors.New("character not found")

// Config holds configuration for the Redis character repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed character repository
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

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func userCharactersKey(userID string) string {
	return userCharactersKeyPrefix + userID
}

// SaveCharacter persists a character to Redis
func (r *redisRepository) SaveCharacter(ctx context.Context, input *SaveCharacterInput) error {
	if input == nil || input.Character == nil {
		return errors.New("input and character cannot be nil")
	}
	c := input.Character
	if c.ID == "" || c.UserID == "" {
		return errors.New("character ID and user ID cannot be empty")
	}

	characterJSON, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(c.ID), characterJSON, 0)
	pipe.ZAdd(ctx, userCharactersKey(c.UserID), redis.Z{
		Score:  float64(c.CreatedAt.UnixMilli()),
		Member: c.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// GetCharacter retrieves a character by ID from Redis
func (r *redisRepository) GetCharacter(ctx context.Context, input *GetCharacterInput) (*models.Character, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	characterJSON, err := r.client.Get(ctx, characterKey(input.CharacterID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var c models.Character
	if err := json.Unmarshal([]byte(characterJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &c, nil
}

// GetCharactersForUser retrieves a user's characters in creation order
func (r *redisRepository) GetCharactersForUser(ctx context.Context, input *GetCharactersForUserInput) ([]*models.Character, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ids, err := r.client.ZRange(ctx, userCharactersKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get character IDs for user: %w", err)
	}

	characters := make([]*models.Character, 0, len(ids))
	if len(ids) == 0 {
		return characters, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = characterKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get characters: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var c models.Character
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character %s: %w", ids[i], err)
		}
		characters = append(characters, &c)
	}

	return characters, nil
}

// DeleteCharacter removes a character from Redis
func (r *redisRepository) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) error {
	if input == nil || input.CharacterID == "" {
		return errors.New("input and character ID cannot be empty")
	}

	c, err := r.GetCharacter(ctx, &GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(c.ID))
	pipe.ZRem(ctx, userCharactersKey(c.UserID), c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
