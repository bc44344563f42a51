package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mafia/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	activeGamesKey = "active_games"
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires snapshots of abandoned sessions; zero keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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
		ttl:    cfg.TTL,
	}, nil
}

func gameKey(sessionID string) string {
	return fmt.Sprintf("%s%s", gameKeyPrefix, sessionID)
}

// SaveGame writes the snapshot as JSON and maintains the active set
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.SessionID == "" || input.State == nil {
		return ErrInvalidInput
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(input.SessionID), stateJSON, r.ttl)

	if isActive(input.State) {
		pipe.SAdd(ctx, activeGamesKey, input.SessionID)
	} else {
		pipe.SRem(ctx, activeGamesKey, input.SessionID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame reads a snapshot
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	stateJSON, err := r.client.Get(ctx, gameKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &state, nil
}

// DeleteGame removes a snapshot and its active set entry
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, gameKey(input.SessionID))
	pipe.SRem(ctx, activeGamesKey, input.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if del.Val() == 0 {
		return ErrGameNotFound
	}

	return nil
}

// GetActiveGames lists sessions in the active set whose snapshot still exists
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	sessionIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &GetActiveGamesOutput{SessionIDs: []string{}}, nil
	}

	pipe := r.client.Pipeline()
	exists := make(map[string]*redis.IntCmd, len(sessionIDs))
	for _, id := range sessionIDs {
		exists[id] = pipe.Exists(ctx, gameKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to check active games: %w", err)
	}

	ids := make([]string, 0, len(sessionIDs))
	var expired []interface{}
	for id, cmd := range exists {
		if cmd.Val() == 0 {
			// Snapshot expired; the set entry has no TTL of its own.
			expired = append(expired, id)
			continue
		}
		ids = append(ids, id)
	}

	if len(expired) > 0 {
		if err := r.client.SRem(ctx, activeGamesKey, expired...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune active games: %w", err)
		}
	}

	sort.Strings(ids)
	return &GetActiveGamesOutput{SessionIDs: ids}, nil
}
