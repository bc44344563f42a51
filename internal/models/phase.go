package models

// Phase is the top-level state of a game
type Phase string

const (
	// PhaseSetup indicates player names are being collected
	PhaseSetup Phase = "setup"

	// PhaseNight indicates the mafia and sheriff are acting
	PhaseNight Phase = "night"

	// PhaseDay indicates the town is discussing last night's events
	PhaseDay Phase = "day"

	// PhaseVoting indicates ballots are being cast
	PhaseVoting Phase = "voting"

	// PhaseResults indicates the game is over
	PhaseResults Phase = "results"
)

var phaseTransitions = map[Phase][]Phase{
	PhaseSetup:   {PhaseNight},
	PhaseNight:   {PhaseNight, PhaseDay, PhaseResults},
	PhaseDay:     {PhaseVoting, PhaseResults},
	PhaseVoting:  {PhaseVoting, PhaseNight, PhaseResults},
	PhaseResults: {PhaseNight},
}

// CanTransitionTo checks if moving from p to target is a legal edge of the game
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether p is a known phase
func (p Phase) IsValid() bool {
	_, ok := phaseTransitions[p]
	return ok
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// VotingType is the sub-state of the voting phase
type VotingType string

const (
	// VotingTypeNormal is the first ballot of a day, any alive player may be named
	VotingTypeNormal VotingType = "normal"

	// VotingTypeRunoff restricts targets to the players tied after a normal vote
	VotingTypeRunoff VotingType = "runoff"

	// VotingTypeConfirmation is an exile/keep vote on a single tied player
	VotingTypeConfirmation VotingType = "confirmation"
)

// String returns the string representation of the voting type
func (v VotingType) String() string {
	return string(v)
}
