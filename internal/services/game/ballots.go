package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/eventlog"
	"github.com/KirkDiggler/mafia/internal/services/voting"
)

// StartVoting ends the day discussion
func (s *service) StartVoting(ctx context.Context, input *StartVotingInput) (*StartVotingOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkPhase(input.State, models.PhaseDay); err != nil {
		return nil, err
	}

	next := input.State.Clone()
	resetBallots(next)
	next.VotingType = models.VotingTypeNormal
	next.TiedPlayerIDs = []string{}
	next.ShowVotingResults = false
	next.LastVote = nil
	next.Phase = models.PhaseVoting

	s.record(next, eventlog.Event{
		Round:  next.Round,
		Phase:  models.PhaseDay,
		Kind:   models.EventKindPhaseChange,
		Action: "Day discussion ended. Voting phase started.",
	})

	logging.FromContext(ctx).Debugw("voting started", "round", next.Round)

	return &StartVotingOutput{State: next}, nil
}

// CastVote records a normal or runoff ballot
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkBallot(input.State, input.VoterID, false); err != nil {
		return nil, err
	}

	if _, ok := input.State.FindPlayer(input.TargetID); !ok {
		return nil, ErrPlayerNotFound
	}

	if !isEligibleTarget(input.State, input.TargetID) {
		return nil, ErrNotEligibleTarget
	}

	next := input.State.Clone()
	next.Votes[input.VoterID] = input.TargetID
	next.VoteOrder = append(next.VoteOrder, input.VoterID)

	s.record(next, eventlog.Event{
		Round:    next.Round,
		Phase:    models.PhaseVoting,
		Kind:     models.EventKindVoteCast,
		Action:   fmt.Sprintf("%s voted for %s.", next.PlayerName(input.VoterID), next.PlayerName(input.TargetID)),
		ActorID:  input.VoterID,
		TargetID: input.TargetID,
	})

	output := &CastVoteOutput{
		State:    next,
		SelfVote: input.VoterID == input.TargetID,
	}

	if len(next.Votes) < len(next.AlivePlayers()) {
		return output, nil
	}

	outcome, err := voting.Resolve(&voting.ResolveInput{
		Ballots:       voting.OrderedBallots(next.Votes, next.VoteOrder),
		VotingType:    next.VotingType,
		TiedPlayerIDs: next.TiedPlayerIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vote: %w", err)
	}

	output.Outcome = outcome
	s.applyOutcome(ctx, next, outcome)

	return output, nil
}

// CastConfirmationVote records an exile or keep ballot
func (s *service) CastConfirmationVote(ctx context.Context, input *CastConfirmationVoteInput) (*CastConfirmationVoteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkBallot(input.State, input.VoterID, true); err != nil {
		return nil, err
	}

	next := input.State.Clone()
	next.ConfirmationVotes[input.VoterID] = input.Exile

	var candidateID string
	if len(next.TiedPlayerIDs) > 0 {
		candidateID = next.TiedPlayerIDs[0]
	}

	decision := "keep"
	if input.Exile {
		decision = "exile"
	}

	s.record(next, eventlog.Event{
		Round:    next.Round,
		Phase:    models.PhaseVoting,
		Kind:     models.EventKindVoteCast,
		Action:   fmt.Sprintf("%s voted to %s %s.", next.PlayerName(input.VoterID), decision, next.PlayerName(candidateID)),
		ActorID:  input.VoterID,
		TargetID: candidateID,
	})

	output := &CastConfirmationVoteOutput{State: next}

	if len(next.ConfirmationVotes) < len(next.AlivePlayers()) {
		return output, nil
	}

	outcome, err := voting.Resolve(&voting.ResolveInput{
		ConfirmationVotes: next.ConfirmationVotes,
		VotingType:        models.VotingTypeConfirmation,
		TiedPlayerIDs:     next.TiedPlayerIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve confirmation vote: %w", err)
	}

	output.Outcome = outcome
	s.applyOutcome(ctx, next, outcome)

	return output, nil
}

// AcknowledgeResults moves from the voting results to the next night
func (s *service) AcknowledgeResults(ctx context.Context, input *AcknowledgeResultsInput) (*AcknowledgeResultsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkPhase(input.State, models.PhaseVoting); err != nil {
		return nil, err
	}

	if !input.State.ShowVotingResults {
		return nil, ErrNoResults
	}

	next := input.State.Clone()
	next.Round++
	resetBallots(next)
	next.TiedPlayerIDs = []string{}
	next.NightAction = map[string]string{}
	next.VotingType = models.VotingTypeNormal
	next.ShowVotingResults = false
	next.Phase = models.PhaseNight

	logging.FromContext(ctx).Debugw("round started", "round", next.Round)

	return &AcknowledgeResultsOutput{State: next}, nil
}

func checkBallot(state *models.GameState, voterID string, confirmation bool) error {
	if err := checkPhase(state, models.PhaseVoting); err != nil {
		return err
	}

	if state.ShowVotingResults {
		return ErrResultsPending
	}

	if (state.VotingType == models.VotingTypeConfirmation) != confirmation {
		return ErrWrongVotingType
	}

	if _, err := lookupAlive(state, voterID); err != nil {
		return err
	}

	if hasVoted(state, voterID) {
		return ErrAlreadyVoted
	}

	return nil
}

func resetBallots(state *models.GameState) {
	state.Votes = map[string]string{}
	state.VoteOrder = []string{}
	state.ConfirmationVotes = map[string]bool{}
}

// applyOutcome writes a resolved round into state, which the caller owns
func (s *service) applyOutcome(ctx context.Context, state *models.GameState, outcome *voting.Outcome) {
	logger := logging.FromContext(ctx)

	summary := &models.VoteSummary{
		VotingType: outcome.VotingType,
		Counts:     outcome.Counts,
		TotalVotes: outcome.TotalVotes,
		ExileVotes: outcome.ExileVotes,
		TargetID:   outcome.TargetID,
	}

	event := eventlog.Event{
		Round: state.Round,
		Phase: models.PhaseVoting,
	}

	switch outcome.Kind {
	case voting.OutcomeNoBallots:
		logger.Warnw("vote resolved with no ballots, state left unchanged",
			"round", state.Round,
			"votingType", outcome.VotingType,
		)
		return

	case voting.OutcomeRunoff:
		names := make([]string, 0, len(outcome.TiedPlayerIDs))
		for _, id := range outcome.TiedPlayerIDs {
			names = append(names, state.PlayerName(id))
		}

		event.Kind = models.EventKindEscalation
		first, second := event, event
		first.Action = "No clear majority. Starting runoff vote between tied players."
		second.Action = fmt.Sprintf("Tied players with %d votes each: %s", outcome.MaxCount, strings.Join(names, ", "))
		s.record(state, first, second)

		resetBallots(state)
		state.VotingType = models.VotingTypeRunoff
		state.TiedPlayerIDs = append([]string{}, outcome.TiedPlayerIDs...)
		state.LastVote = summary

		logger.Debugw("vote escalated to runoff", "round", state.Round, "tied", outcome.TiedPlayerIDs)

	case voting.OutcomeConfirmation:
		event.Kind = models.EventKindEscalation
		event.Action = "Still tied after runoff. Starting confirmation vote (exile or keep)."
		event.TargetID = outcome.TiedPlayerIDs[0]
		s.record(state, event)

		resetBallots(state)
		state.VotingType = models.VotingTypeConfirmation
		state.TiedPlayerIDs = append([]string{}, outcome.TiedPlayerIDs...)
		state.LastVote = summary

		logger.Debugw("vote escalated to confirmation", "round", state.Round, "candidate", outcome.TiedPlayerIDs[0])

	case voting.OutcomeNoElimination:
		name := state.PlayerName(outcome.TargetID)
		result, decision := event, event
		result.Kind = models.EventKindConfirmation
		result.TargetID = outcome.TargetID
		result.Action = confirmationResultText(outcome, name)
		decision.Kind = models.EventKindNoElimination
		decision.TargetID = outcome.TargetID
		decision.Action = fmt.Sprintf("Not enough votes to exile %s. The town continues with no elimination.", name)
		s.record(state, result, decision)

		state.ShowVotingResults = true
		state.LastVote = summary

		logger.Debugw("confirmation vote kept candidate", "round", state.Round, "candidate", outcome.TargetID)

	case voting.OutcomeElimination:
		name := state.PlayerName(outcome.TargetID)
		votes := outcome.MaxCount

		if outcome.VotingType == models.VotingTypeConfirmation {
			votes = outcome.ExileVotes

			result, decision := event, event
			result.Kind = models.EventKindConfirmation
			result.TargetID = outcome.TargetID
			result.Action = confirmationResultText(outcome, name)
			decision.Kind = models.EventKindConfirmation
			decision.TargetID = outcome.TargetID
			decision.Action = fmt.Sprintf("The town has decided to exile %s.", name)
			s.record(state, result, decision)
		}

		if eliminate(state, outcome.TargetID) {
			event.Kind = models.EventKindElimination
			event.TargetID = outcome.TargetID
			event.Action = fmt.Sprintf("Voting complete. %s received %d votes and was eliminated.", name, votes)
			s.record(state, event)
			summary.EliminatedID = outcome.TargetID
		}

		state.ShowVotingResults = true
		state.LastVote = summary

		logger.Debugw("player eliminated by vote", "round", state.Round, "target", outcome.TargetID)

		s.endIfOver(ctx, state)
	}
}

func confirmationResultText(outcome *voting.Outcome, name string) string {
	return fmt.Sprintf("Confirmation vote result: %d out of %d (%d%%) voted to exile %s.",
		outcome.ExileVotes, outcome.TotalVotes, outcome.ExilePercentage(), name)
}
