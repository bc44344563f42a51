package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafia/internal/services/session Service

import "context"

// Service owns running games. All writes to a session go through
// UpdateGameState, which applies them one at a time.
type Service interface {
	// CreateSession stores a new game in setup
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetState returns the current snapshot of a session
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// UpdateGameState replaces a session's state with the updater's result
	UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*UpdateGameStateOutput, error)

	// EndSession discards a session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// ListActiveSessions returns sessions whose game is still in play
	ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error)
}
