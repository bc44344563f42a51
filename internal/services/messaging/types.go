package messaging

import (
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain, informative tone
	ToneNeutral MessageTone = "neutral"

	// ToneDramatic is the narrator's default
	ToneDramatic MessageTone = "dramatic"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// Config holds configuration for the narration service
type Config struct {
	// Random picks among message variants
	Random random.Source
}

// GetPhaseMessageInput contains parameters for a phase banner
type GetPhaseMessageInput struct {
	// Phase is the phase just entered
	Phase models.Phase

	// VotingType is the active voting round when Phase is voting
	VotingType models.VotingType

	// Round is the current round
	Round int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetPhaseMessageOutput contains a phase banner
type GetPhaseMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetNightKillMessageInput contains parameters for the night kill announcement
type GetNightKillMessageInput struct {
	PlayerName string
}

// GetNightKillMessageOutput contains the night kill announcement
type GetNightKillMessageOutput struct {
	Message string
}

// GetEliminationMessageInput contains parameters for the vote elimination announcement
type GetEliminationMessageInput struct {
	PlayerName string

	// Votes is the number of ballots that removed the player
	Votes int
}

// GetEliminationMessageOutput contains the vote elimination announcement
type GetEliminationMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains parameters for the winner announcement
type GetGameOverMessageInput struct {
	Winner models.Winner
}

// GetGameOverMessageOutput contains the winner announcement
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for a friendly error
type GetErrorMessageInput struct {
	// Err is the error returned by a game or session operation
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains a friendly error
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
