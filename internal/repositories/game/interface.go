package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafia/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Repository defines the interface for game snapshot persistence
type Repository interface {
	// SaveGame stores the latest snapshot of a session
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves the snapshot of a session
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error)

	// DeleteGame removes a session's snapshot
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames lists sessions whose game has not reached results
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
