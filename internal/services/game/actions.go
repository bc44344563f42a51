package game

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/models"
)

// Action is a request for one transition of the game
type Action interface {
	// Name identifies the action in logs
	Name() string
}

// StartGameAction starts a game with the given names
type StartGameAction struct {
	Names []string
}

// MafiaKillAction is the mafia's choice of victim
type MafiaKillAction struct {
	TargetID string
}

// InvestigateAction is the sheriff's choice of suspect
type InvestigateAction struct {
	TargetID string
}

// AcknowledgeInvestigationAction ends the night
type AcknowledgeInvestigationAction struct{}

// StartVotingAction ends the day discussion
type StartVotingAction struct{}

// CastVoteAction is a normal or runoff ballot
type CastVoteAction struct {
	VoterID  string
	TargetID string
}

// CastConfirmationVoteAction is an exile or keep ballot
type CastConfirmationVoteAction struct {
	VoterID string
	Exile   bool
}

// AcknowledgeResultsAction leaves the voting results
type AcknowledgeResultsAction struct{}

// PlayAgainAction deals a new game to the same names
type PlayAgainAction struct{}

func (StartGameAction) Name() string                { return "start_game" }
func (MafiaKillAction) Name() string                { return "mafia_kill" }
func (InvestigateAction) Name() string              { return "investigate" }
func (AcknowledgeInvestigationAction) Name() string { return "acknowledge_investigation" }
func (StartVotingAction) Name() string              { return "start_voting" }
func (CastVoteAction) Name() string                 { return "cast_vote" }
func (CastConfirmationVoteAction) Name() string     { return "cast_confirmation_vote" }
func (AcknowledgeResultsAction) Name() string       { return "acknowledge_results" }
func (PlayAgainAction) Name() string                { return "play_again" }

// Apply dispatches an Action to the matching transition
func (s *service) Apply(ctx context.Context, state *models.GameState, action Action) (*models.GameState, error) {
	switch a := action.(type) {
	case StartGameAction:
		out, err := s.StartGame(ctx, &StartGameInput{State: state, Names: a.Names})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case MafiaKillAction:
		out, err := s.ChooseMafiaTarget(ctx, &ChooseMafiaTargetInput{State: state, TargetID: a.TargetID})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case InvestigateAction:
		out, err := s.Investigate(ctx, &InvestigateInput{State: state, TargetID: a.TargetID})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case AcknowledgeInvestigationAction:
		out, err := s.AcknowledgeInvestigation(ctx, &AcknowledgeInvestigationInput{State: state})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case StartVotingAction:
		out, err := s.StartVoting(ctx, &StartVotingInput{State: state})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case CastVoteAction:
		out, err := s.CastVote(ctx, &CastVoteInput{State: state, VoterID: a.VoterID, TargetID: a.TargetID})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case CastConfirmationVoteAction:
		out, err := s.CastConfirmationVote(ctx, &CastConfirmationVoteInput{State: state, VoterID: a.VoterID, Exile: a.Exile})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case AcknowledgeResultsAction:
		out, err := s.AcknowledgeResults(ctx, &AcknowledgeResultsInput{State: state})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	case PlayAgainAction:
		out, err := s.PlayAgain(ctx, &PlayAgainInput{State: state})
		if err != nil {
			return nil, err
		}
		return out.State, nil

	default:
		return nil, ErrUnknownAction
	}
}
