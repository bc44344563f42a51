// Package voting tallies ballots and decides between elimination,
// runoff and confirmation. Everything here is pure: the same input always
// produces the same Outcome.
package voting

import (
	"sort"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Resolve decides the outcome of a completed voting sub-round
func Resolve(input *ResolveInput) (*Outcome, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	switch input.VotingType {
	case models.VotingTypeNormal, models.VotingTypeRunoff:
		return resolvePlurality(input), nil
	case models.VotingTypeConfirmation:
		return resolveConfirmation(input)
	default:
		return nil, ErrUnknownVotingType
	}
}

func resolvePlurality(input *ResolveInput) *Outcome {
	counts, leaders, maxCount := Tally(input.Ballots)

	outcome := &Outcome{
		VotingType: input.VotingType,
		Counts:     counts,
		LeaderIDs:  leaders,
		MaxCount:   maxCount,
		TotalVotes: len(input.Ballots),
	}

	switch {
	case maxCount == 0:
		outcome.Kind = OutcomeNoBallots
	case len(leaders) == 1:
		outcome.Kind = OutcomeElimination
		outcome.TargetID = leaders[0]
	case input.VotingType == models.VotingTypeNormal:
		outcome.Kind = OutcomeRunoff
		outcome.TiedPlayerIDs = append([]string{}, leaders...)
	default:
		// Still tied after a runoff: only the first leader goes to confirmation.
		outcome.Kind = OutcomeConfirmation
		outcome.TiedPlayerIDs = []string{leaders[0]}
	}

	return outcome
}

func resolveConfirmation(input *ResolveInput) (*Outcome, error) {
	if len(input.TiedPlayerIDs) == 0 {
		return nil, ErrMissingConfirmationTarget
	}

	outcome := &Outcome{
		VotingType: input.VotingType,
		TargetID:   input.TiedPlayerIDs[0],
		TotalVotes: len(input.ConfirmationVotes),
	}
	for _, exile := range input.ConfirmationVotes {
		if exile {
			outcome.ExileVotes++
		}
	}

	switch {
	case outcome.TotalVotes == 0:
		outcome.Kind = OutcomeNoBallots
	case outcome.ExileVotes*2 > outcome.TotalVotes:
		outcome.Kind = OutcomeElimination
	default:
		outcome.Kind = OutcomeNoElimination
	}

	return outcome, nil
}

// Tally counts ballots per target. Leaders are the targets at the maximum
// count, ordered by the first ballot that named them.
func Tally(ballots []Ballot) (map[string]int, []string, int) {
	counts := make(map[string]int)
	var firstSeen []string

	for _, ballot := range ballots {
		if _, ok := counts[ballot.TargetID]; !ok {
			firstSeen = append(firstSeen, ballot.TargetID)
		}
		counts[ballot.TargetID]++
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	var leaders []string
	for _, target := range firstSeen {
		if counts[target] == maxCount {
			leaders = append(leaders, target)
		}
	}

	return counts, leaders, maxCount
}

// OrderedBallots flattens a votes map into ballots following order.
// Voters missing from order are appended sorted by id.
func OrderedBallots(votes map[string]string, order []string) []Ballot {
	ballots := make([]Ballot, 0, len(votes))
	seen := make(map[string]bool, len(votes))

	for _, voterID := range order {
		target, ok := votes[voterID]
		if !ok || seen[voterID] {
			continue
		}
		seen[voterID] = true
		ballots = append(ballots, Ballot{VoterID: voterID, TargetID: target})
	}

	var rest []string
	for voterID := range votes {
		if !seen[voterID] {
			rest = append(rest, voterID)
		}
	}
	sort.Strings(rest)
	for _, voterID := range rest {
		ballots = append(ballots, Ballot{VoterID: voterID, TargetID: votes[voterID]})
	}

	return ballots
}
