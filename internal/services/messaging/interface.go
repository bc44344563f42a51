package messaging

import "context"

// Service is the interface for the narration service
type Service interface {
	// GetPhaseMessage returns a banner for the phase the game just entered
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetNightKillMessage announces the mafia's victim to the town
	GetNightKillMessage(ctx context.Context, input *GetNightKillMessageInput) (*GetNightKillMessageOutput, error)

	// GetEliminationMessage announces the player removed by vote
	GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error)

	// GetGameOverMessage announces the winning faction
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
