package game

import (
	"errors"

	"github.com/KirkDiggler/mafia/internal/models"
)

var (
	// ErrGameNotFound is returned when no snapshot exists for a session
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidInput is returned for nil inputs, empty ids or nil states
	ErrInvalidInput = errors.New("input, session ID and state cannot be empty")
)

func isActive(state *models.GameState) bool {
	return state.Phase != models.PhaseResults
}
