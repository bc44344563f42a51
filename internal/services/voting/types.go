package voting

import "github.com/KirkDiggler/mafia/internal/models"

// OutcomeKind is what a resolved ballot leads to
type OutcomeKind string

const (
	// OutcomeElimination removes TargetID from the game
	OutcomeElimination OutcomeKind = "elimination"

	// OutcomeRunoff sends the tied leaders to a runoff
	OutcomeRunoff OutcomeKind = "runoff"

	// OutcomeConfirmation sends one tied leader to an exile/keep vote
	OutcomeConfirmation OutcomeKind = "confirmation"

	// OutcomeNoElimination is a failed confirmation vote
	OutcomeNoElimination OutcomeKind = "no_elimination"

	// OutcomeNoBallots means nothing was cast; callers leave state untouched
	OutcomeNoBallots OutcomeKind = "no_ballots"
)

// Ballot is a single normal or runoff vote
type Ballot struct {
	// VoterID is the player casting the ballot
	VoterID string

	// TargetID is the player named on the ballot
	TargetID string
}

// ResolveInput contains everything needed to resolve a voting sub-round
type ResolveInput struct {
	// Ballots are normal or runoff ballots in casting order
	Ballots []Ballot

	// ConfirmationVotes maps voter id to true (exile) or false (keep)
	ConfirmationVotes map[string]bool

	// VotingType is the sub-round being resolved
	VotingType models.VotingType

	// TiedPlayerIDs are the runoff candidates, or the confirmation candidate first
	TiedPlayerIDs []string
}

// Outcome is the verdict for a voting sub-round
type Outcome struct {
	// Kind is what happens next
	Kind OutcomeKind

	// VotingType is the sub-round that was resolved
	VotingType models.VotingType

	// TargetID is the eliminated player, or the kept confirmation candidate
	TargetID string

	// TiedPlayerIDs are the candidates for the next sub-round on escalation
	TiedPlayerIDs []string

	// LeaderIDs are every target at MaxCount, in order of their first ballot
	LeaderIDs []string

	// MaxCount is the highest number of ballots any target received
	MaxCount int

	// Counts maps target id to ballots received
	Counts map[string]int

	// ExileVotes is the number of exile ballots in a confirmation vote
	ExileVotes int

	// TotalVotes is the number of ballots considered
	TotalVotes int
}

// ExileRatio is ExileVotes / TotalVotes, zero when nothing was cast
func (o *Outcome) ExileRatio() float64 {
	if o.TotalVotes == 0 {
		return 0
	}
	return float64(o.ExileVotes) / float64(o.TotalVotes)
}

// ExilePercentage is ExileRatio rounded to a whole percentage
func (o *Outcome) ExilePercentage() int {
	if o.TotalVotes == 0 {
		return 0
	}
	return (o.ExileVotes*100 + o.TotalVotes/2) / o.TotalVotes
}
