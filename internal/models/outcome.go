package models

// Winner is the faction that won the game
type Winner string

const (
	// WinnerMafia means the mafia matched or outnumbered the town
	WinnerMafia Winner = "mafia"

	// WinnerTown means every mafia-aligned player was eliminated
	WinnerTown Winner = "town"
)

// Title returns the capitalized faction name used in announcements
func (w Winner) Title() string {
	switch w {
	case WinnerMafia:
		return "Mafia"
	case WinnerTown:
		return "Town"
	}
	return ""
}

// WinResult is the verdict of the win-condition check
type WinResult struct {
	// Over is true when the game has ended
	Over bool `json:"over"`

	// Winner is set only when Over is true
	Winner Winner `json:"winner,omitempty"`
}

// VoteSummary describes the last resolved ballot for the results screen
type VoteSummary struct {
	// VotingType is the sub-round that was resolved
	VotingType VotingType `json:"votingType"`

	// Counts maps target id to ballots received (normal and runoff)
	Counts map[string]int `json:"counts,omitempty"`

	// TotalVotes is the number of ballots cast
	TotalVotes int `json:"totalVotes"`

	// ExileVotes is the number of exile ballots (confirmation only)
	ExileVotes int `json:"exileVotes,omitempty"`

	// TargetID is the confirmation candidate, or the eliminated player
	TargetID string `json:"targetId,omitempty"`

	// EliminatedID is the player removed by this vote, empty when nobody was
	EliminatedID string `json:"eliminatedId,omitempty"`
}

// Clone returns a deep copy of the summary
func (v *VoteSummary) Clone() *VoteSummary {
	if v == nil {
		return nil
	}
	clone := *v
	if v.Counts != nil {
		clone.Counts = make(map[string]int, len(v.Counts))
		for k, c := range v.Counts {
			clone.Counts[k] = c
		}
	}
	return &clone
}

// Percentage returns count as a whole percentage of TotalVotes
func (v *VoteSummary) Percentage(count int) int {
	if v == nil || v.TotalVotes == 0 {
		return 0
	}
	return (count*100 + v.TotalVotes/2) / v.TotalVotes
}
