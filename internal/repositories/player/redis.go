package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gamePlayersKeyPrefix = "game_players:"
	userGamesKeyPrefix   = "user_games:"
)

var (
	// ErrPlayerNotInGame is returned when a roster entry does not exist
	ErrPlayerNotInGame = errors.New("player not in game")

	// ErrPlayerAlreadyInGame is returned when a user is enrolled twice
	ErrPlayerAlreadyInGame = errors.New("player already in game")
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Each roster is a hash of user ID to entry JSON.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository
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

func gamePlayersKey(gameID string) string {
	return gamePlayersKeyPrefix + gameID
}

func userGamesKey(userID string) string {
	return userGamesKeyPrefix + userID
}

// AddPlayer enrolls a user, relying on HSETNX for (game, user) uniqueness
func (r *redisRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}
	p := input.Player
	if p.GameID == "" || p.UserID == "" {
		return errors.New("game ID and user ID cannot be empty")
	}

	playerJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.TxPipeline()
	added := pipe.HSetNX(ctx, gamePlayersKey(p.GameID), p.UserID, playerJSON)
	pipe.SAdd(ctx, userGamesKey(p.UserID), p.GameID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}

	if !added.Val() {
		return ErrPlayerAlreadyInGame
	}

	return nil
}

// RemovePlayer removes a roster entry
func (r *redisRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	removed := pipe.HDel(ctx, gamePlayersKey(input.GameID), input.UserID)
	pipe.SRem(ctx, userGamesKey(input.UserID), input.GameID)
	remaining := pipe.HLen(ctx, gamePlayersKey(input.GameID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to remove player: %w", err)
	}

	if removed.Val() == 0 {
		return nil, ErrPlayerNotInGame
	}

	return &RemovePlayerOutput{
		Remaining: int(remaining.Val()),
	}, nil
}

// GetPlayer retrieves a single roster entry
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.GamePlayer, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	playerJSON, err := r.client.HGet(ctx, gamePlayersKey(input.GameID), input.UserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotInGame
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var p models.GamePlayer
	if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &p, nil
}

// GetPlayersInGame retrieves the roster ordered by join time
func (r *redisRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	entries, err := r.client.HGetAll(ctx, gamePlayersKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players in game: %w", err)
	}

	players := make([]*models.GamePlayer, 0, len(entries))
	for userID, playerJSON := range entries {
		var p models.GamePlayer
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", userID, err)
		}
		players = append(players, &p)
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].UserID < players[j].UserID
		}
		return players[i].JoinedAt.Before(players[j].JoinedAt)
	})

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}

// CountPlayers returns the roster size
func (r *redisRepository) CountPlayers(ctx context.Context, input *CountPlayersInput) (int, error) {
	if input == nil || input.GameID == "" {
		return 0, errors.New("input and game ID cannot be empty")
	}

	n, err := r.client.HLen(ctx, gamePlayersKey(input.GameID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}

	return int(n), nil
}

// GetUserGames lists the sessions a user is enrolled in
func (r *redisRepository) GetUserGames(ctx context.Context, input *GetUserGamesInput) ([]string, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, userGamesKey(input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user games: %w", err)
	}
	sort.Strings(ids)

	return ids, nil
}
