package dice_roll

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
	rollKeyPrefix       = "roll:"
	gameRollsKeyPrefix  = "game_rolls:"
	gameRollSeqPrefix   = "game_rolls_seq:"
	playerRollsKeyInfix = ":user:"
)

// ErrRollNotFound is returned when a roll is not found
var ErrRollNotFound = errors.New("dice roll not found")

// Config holds configuration for the Redis roll log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Rolls are scored by a per-session sequence so the log keeps insert order.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roll log repository
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

func gameRollsKey(gameID string) string {
	return gameRollsKeyPrefix + gameID
}

func playerRollsKey(gameID, userID string) string {
	return gameRollsKeyPrefix + gameID + playerRollsKeyInfix + userID
}

// AddRoll appends a roll to the session log
func (r *redisRepository) AddRoll(ctx context.Context, input *AddRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	roll := input.Roll
	if roll.ID == "" || roll.GameID == "" {
		return errors.New("roll ID and game ID cannot be empty")
	}

	rollJSON, err := json.Marshal(roll)
	if err != nil {
		return fmt.Errorf("failed to marshal dice roll: %w", err)
	}

	seq, err := r.client.Incr(ctx, gameRollSeqPrefix+roll.GameID).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate roll sequence: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, rollKeyPrefix+roll.ID, rollJSON, 0)
	pipe.ZAdd(ctx, gameRollsKey(roll.GameID), redis.Z{Score: float64(seq), Member: roll.ID})
	if roll.UserID != "" {
		pipe.ZAdd(ctx, playerRollsKey(roll.GameID, roll.UserID), redis.Z{Score: float64(seq), Member: roll.ID})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add dice roll: %w", err)
	}

	return nil
}

// GetRoll retrieves a roll by ID
func (r *redisRepository) GetRoll(ctx context.Context, input *GetRollInput) (*models.DiceRoll, error) {
	if input == nil || input.RollID == "" {
		return nil, errors.New("input and roll ID cannot be empty")
	}

	rollJSON, err := r.client.Get(ctx, rollKeyPrefix+input.RollID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRollNotFound
		}
		return nil, fmt.Errorf("failed to get dice roll: %w", err)
	}

	var roll models.DiceRoll
	if err := json.Unmarshal([]byte(rollJSON), &roll); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dice roll: %w", err)
	}

	return &roll, nil
}

// GetRollsForGame retrieves a page of a session's rolls, newest first
func (r *redisRepository) GetRollsForGame(ctx context.Context, input *GetRollsForGameInput) (*GetRollsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}
	if input.Limit <= 0 || input.Offset < 0 {
		return nil, errors.New("limit must be positive and offset non-negative")
	}

	indexKey := gameRollsKey(input.GameID)
	if input.UserID != "" {
		indexKey = playerRollsKey(input.GameID, input.UserID)
	}

	pipe := r.client.Pipeline()
	countCmd := pipe.ZCard(ctx, indexKey)
	idsCmd := pipe.ZRevRange(ctx, indexKey, int64(input.Offset), int64(input.Offset+input.Limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get roll IDs for game: %w", err)
	}

	ids := idsCmd.Val()
	rolls := make([]*models.DiceRoll, 0, len(ids))
	if len(ids) == 0 {
		return &GetRollsForGameOutput{Rolls: rolls, Total: int(countCmd.Val())}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = rollKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get dice rolls: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var roll models.DiceRoll
		if err := json.Unmarshal([]byte(raw), &roll); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dice roll %s: %w", ids[i], err)
		}
		rolls = append(rolls, &roll)
	}

	return &GetRollsForGameOutput{
		Rolls: rolls,
		Total: int(countCmd.Val()),
	}, nil
}
