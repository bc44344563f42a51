package session

import (
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	gameRepo "github.com/KirkDiggler/mafia/internal/repositories/game"
)

// Updater computes the next state from the current one. Returning an error
// leaves the session untouched.
type Updater func(state *models.GameState) (*models.GameState, error)

// Config holds configuration for the session service
type Config struct {
	// Repository stores snapshots
	Repository gameRepo.Repository

	// UUIDGenerator issues session ids
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
}

// CreateSessionOutput contains the new session
type CreateSessionOutput struct {
	SessionID string
	State     *models.GameState
}

// GetStateInput contains parameters for reading a session
type GetStateInput struct {
	SessionID string
}

// GetStateOutput contains the session's snapshot
type GetStateOutput struct {
	State *models.GameState
}

// UpdateGameStateInput contains parameters for mutating a session
type UpdateGameStateInput struct {
	SessionID string
	Updater   Updater
}

// UpdateGameStateOutput contains the stored state
type UpdateGameStateOutput struct {
	State *models.GameState
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	Success bool
}

// ListActiveSessionsInput contains parameters for listing sessions
type ListActiveSessionsInput struct {
}

// ListActiveSessionsOutput contains the active session ids
type ListActiveSessionsOutput struct {
	SessionIDs []string
}
