package game

import (
	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/roles"
	"github.com/KirkDiggler/mafia/internal/services/voting"
)

// NightStep is the part of the night waiting for input
type NightStep string

const (
	// NightStepMafia waits for the mafia to pick a victim
	NightStepMafia NightStep = "mafia"

	// NightStepSheriff waits for the sheriff to investigate
	NightStepSheriff NightStep = "sheriff"

	// NightStepAcknowledge waits for the sheriff to read the investigation result
	NightStepAcknowledge NightStep = "acknowledge"

	// NightStepNone is returned outside the night
	NightStepNone NightStep = ""
)

// Config holds configuration for the game service
type Config struct {
	// Service dependencies
	RoleAssigner  roles.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// State must be in setup
	State *models.GameState

	// Names are the ten player names in seating order
	Names []string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	State *models.GameState
}

// ChooseMafiaTargetInput contains parameters for the mafia kill
type ChooseMafiaTargetInput struct {
	State *models.GameState

	// TargetID is the town player to kill
	TargetID string
}

// ChooseMafiaTargetOutput contains the result of the mafia kill
type ChooseMafiaTargetOutput struct {
	State *models.GameState

	// GameOver is set when the kill ended the game
	GameOver bool
}

// InvestigateInput contains parameters for the sheriff's check
type InvestigateInput struct {
	State *models.GameState

	// TargetID is the player being checked
	TargetID string
}

// InvestigateOutput contains the result of the sheriff's check
type InvestigateOutput struct {
	State *models.GameState

	// IsMafia is true when the target is mafia or don
	IsMafia bool
}

// AcknowledgeInvestigationInput contains parameters for closing the night
type AcknowledgeInvestigationInput struct {
	State *models.GameState
}

// AcknowledgeInvestigationOutput contains the state after the night
type AcknowledgeInvestigationOutput struct {
	State *models.GameState
}

// StartVotingInput contains parameters for ending the day
type StartVotingInput struct {
	State *models.GameState
}

// StartVotingOutput contains the state at the start of voting
type StartVotingOutput struct {
	State *models.GameState
}

// CastVoteInput contains a normal or runoff ballot
type CastVoteInput struct {
	State *models.GameState

	// VoterID is the alive player casting the ballot
	VoterID string

	// TargetID is the player voted for
	TargetID string
}

// CastVoteOutput contains the result of a ballot
type CastVoteOutput struct {
	State *models.GameState

	// SelfVote is set when the voter named themselves
	SelfVote bool

	// Outcome is set when this ballot completed the round
	Outcome *voting.Outcome
}

// CastConfirmationVoteInput contains an exile or keep ballot
type CastConfirmationVoteInput struct {
	State *models.GameState

	// VoterID is the alive player casting the ballot
	VoterID string

	// Exile is true to exile the candidate, false to keep them
	Exile bool
}

// CastConfirmationVoteOutput contains the result of a confirmation ballot
type CastConfirmationVoteOutput struct {
	State *models.GameState

	// Outcome is set when this ballot completed the round
	Outcome *voting.Outcome
}

// AcknowledgeResultsInput contains parameters for leaving the results screen
type AcknowledgeResultsInput struct {
	State *models.GameState
}

// AcknowledgeResultsOutput contains the state of the next night
type AcknowledgeResultsOutput struct {
	State *models.GameState
}

// PlayAgainInput contains parameters for a rematch
type PlayAgainInput struct {
	State *models.GameState
}

// PlayAgainOutput contains the fresh game
type PlayAgainOutput struct {
	State *models.GameState
}
