package game

import (
	"context"
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru"

	"github.com/KirkDiggler/mafia/internal/models"
)

// MemoryConfig holds configuration for the in-process game repository
type MemoryConfig struct {
	// Size is the maximum number of sessions kept
	Size int
}

// memoryRepository implements the Repository interface on an ARC cache
type memoryRepository struct {
	cache *lru.ARCCache
}

// NewMemory creates a bounded in-process game repository
func NewMemory(cfg *MemoryConfig) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	c, err := lru.NewARC(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("lru new instance of lru arc cache: %v", err)
	}

	return &memoryRepository{cache: c}, nil
}

// SaveGame stores a copy of the snapshot
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.SessionID == "" || input.State == nil {
		return ErrInvalidInput
	}

	r.cache.Add(input.SessionID, input.State.Clone())
	return nil
}

// GetGame returns a copy of the stored snapshot
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	value, ok := r.cache.Get(input.SessionID)
	if !ok {
		return nil, ErrGameNotFound
	}

	return value.(*models.GameState).Clone(), nil
}

// DeleteGame removes the snapshot
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	if !r.cache.Contains(input.SessionID) {
		return ErrGameNotFound
	}

	r.cache.Remove(input.SessionID)
	return nil
}

// GetActiveGames lists sessions still in play
func (r *memoryRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	ids := []string{}
	for _, key := range r.cache.Keys() {
		value, ok := r.cache.Peek(key)
		if !ok {
			continue
		}
		if isActive(value.(*models.GameState)) {
			ids = append(ids, key.(string))
		}
	}

	sort.Strings(ids)
	return &GetActiveGamesOutput{SessionIDs: ids}, nil
}
