package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafia/internal/services/game Service

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Service defines the transitions of a game. Every method takes the current
// state and returns a new one; the input state is never modified.
type Service interface {
	// StartGame deals roles to ten names and opens the first night
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// ChooseMafiaTarget kills a town player during the night
	ChooseMafiaTarget(ctx context.Context, input *ChooseMafiaTargetInput) (*ChooseMafiaTargetOutput, error)

	// Investigate lets the sheriff learn whether a player is mafia-aligned
	Investigate(ctx context.Context, input *InvestigateInput) (*InvestigateOutput, error)

	// AcknowledgeInvestigation closes the night once the sheriff has seen the result
	AcknowledgeInvestigation(ctx context.Context, input *AcknowledgeInvestigationInput) (*AcknowledgeInvestigationOutput, error)

	// StartVoting ends the day discussion
	StartVoting(ctx context.Context, input *StartVotingInput) (*StartVotingOutput, error)

	// CastVote records a normal or runoff ballot
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// CastConfirmationVote records an exile or keep ballot
	CastConfirmationVote(ctx context.Context, input *CastConfirmationVoteInput) (*CastConfirmationVoteOutput, error)

	// AcknowledgeResults moves from the voting results to the next night
	AcknowledgeResults(ctx context.Context, input *AcknowledgeResultsInput) (*AcknowledgeResultsOutput, error)

	// PlayAgain deals a fresh game to the same names
	PlayAgain(ctx context.Context, input *PlayAgainInput) (*PlayAgainOutput, error)

	// Apply dispatches an Action to the matching transition
	Apply(ctx context.Context, state *models.GameState, action Action) (*models.GameState, error)
}
