package game

import (
	"github.com/KirkDiggler/mafia/internal/models"
)

// CurrentNightStep derives which night action is awaited from the recorded
// night actions. It returns NightStepNone outside the night.
func CurrentNightStep(state *models.GameState) NightStep {
	if state == nil || state.Phase != models.PhaseNight {
		return NightStepNone
	}

	if state.NightAction[models.NightActionMafia] == "" {
		return NightStepMafia
	}

	if _, ok := state.AliveSheriff(); ok && state.NightAction[models.NightActionSheriff] == "" {
		return NightStepSheriff
	}

	return NightStepAcknowledge
}

// NextVoter returns the first alive player in seating order who has not yet
// voted in the current voting round
func NextVoter(state *models.GameState) (*models.Player, bool) {
	if state == nil || state.Phase != models.PhaseVoting || state.ShowVotingResults {
		return nil, false
	}

	for _, p := range state.AlivePlayers() {
		if !hasVoted(state, p.ID) {
			return p, true
		}
	}

	return nil, false
}

// EligibleTargets lists the players that the awaited action may name
func EligibleTargets(state *models.GameState) []*models.Player {
	if state == nil {
		return nil
	}

	var targets []*models.Player
	switch state.Phase {
	case models.PhaseNight:
		step := CurrentNightStep(state)
		for _, p := range state.AlivePlayers() {
			switch {
			case step == NightStepMafia && !p.Role.IsMafia():
				targets = append(targets, p)
			case step == NightStepSheriff && p.Role != models.RoleSheriff:
				targets = append(targets, p)
			}
		}
	case models.PhaseVoting:
		if state.ShowVotingResults {
			return nil
		}
		for _, p := range state.AlivePlayers() {
			if isEligibleTarget(state, p.ID) {
				targets = append(targets, p)
			}
		}
	}

	return targets
}

func hasVoted(state *models.GameState, playerID string) bool {
	if state.VotingType == models.VotingTypeConfirmation {
		_, ok := state.ConfirmationVotes[playerID]
		return ok
	}

	_, ok := state.Votes[playerID]
	return ok
}

func isEligibleTarget(state *models.GameState, playerID string) bool {
	p, ok := state.FindPlayer(playerID)
	if !ok || !p.IsAlive {
		return false
	}

	switch state.VotingType {
	case models.VotingTypeRunoff, models.VotingTypeConfirmation:
		for _, id := range state.TiedPlayerIDs {
			if id == playerID {
				return true
			}
		}
		return false
	default:
		return true
	}
}
