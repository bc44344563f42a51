package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/eventlog"
)

// ChooseMafiaTarget kills a town player during the night
func (s *service) ChooseMafiaTarget(ctx context.Context, input *ChooseMafiaTargetInput) (*ChooseMafiaTargetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkNightStep(input.State, NightStepMafia); err != nil {
		return nil, err
	}

	target, err := lookupAlive(input.State, input.TargetID)
	if err != nil {
		return nil, err
	}

	if target.Role.IsMafia() {
		return nil, ErrInvalidTarget
	}

	next := input.State.Clone()
	next.NightAction[models.NightActionMafia] = target.ID

	if eliminate(next, target.ID) {
		s.record(next, eventlog.Event{
			Round:    next.Round,
			Phase:    models.PhaseNight,
			Kind:     models.EventKindNightKill,
			Action:   fmt.Sprintf("%s was eliminated during the night.", target.Name),
			TargetID: target.ID,
		})
	}

	logging.FromContext(ctx).Debugw("mafia target chosen", "round", next.Round, "target", target.ID)

	if s.endIfOver(ctx, next) {
		return &ChooseMafiaTargetOutput{State: next, GameOver: true}, nil
	}

	if _, ok := next.AliveSheriff(); !ok {
		next.Phase = models.PhaseDay
	}

	return &ChooseMafiaTargetOutput{State: next}, nil
}

// Investigate lets the sheriff learn whether a player is mafia-aligned
func (s *service) Investigate(ctx context.Context, input *InvestigateInput) (*InvestigateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkNightStep(input.State, NightStepSheriff); err != nil {
		return nil, err
	}

	target, err := lookupAlive(input.State, input.TargetID)
	if err != nil {
		return nil, err
	}

	if target.Role == models.RoleSheriff {
		return nil, ErrInvalidTarget
	}

	next := input.State.Clone()
	next.NightAction[models.NightActionSheriff] = target.ID

	sheriff, _ := next.AliveSheriff()
	finding := "an innocent citizen"
	if target.Role.IsMafia() {
		finding = "a Mafia member"
	}

	s.record(next, eventlog.Event{
		Round:    next.Round,
		Phase:    models.PhaseNight,
		Kind:     models.EventKindInvestigation,
		Action:   fmt.Sprintf("Sheriff investigated %s and found %s.", target.Name, finding),
		ActorID:  sheriff.ID,
		TargetID: target.ID,
	})

	logging.FromContext(ctx).Debugw("sheriff investigated", "round", next.Round, "target", target.ID)

	return &InvestigateOutput{
		State:   next,
		IsMafia: target.Role.IsMafia(),
	}, nil
}

// AcknowledgeInvestigation closes the night once the sheriff has seen the result
func (s *service) AcknowledgeInvestigation(ctx context.Context, input *AcknowledgeInvestigationInput) (*AcknowledgeInvestigationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkNightStep(input.State, NightStepAcknowledge); err != nil {
		return nil, err
	}

	next := input.State.Clone()
	next.Phase = models.PhaseDay

	logging.FromContext(ctx).Debugw("night ended", "round", next.Round)

	return &AcknowledgeInvestigationOutput{State: next}, nil
}

func checkNightStep(state *models.GameState, want NightStep) error {
	if err := checkPhase(state, models.PhaseNight); err != nil {
		return err
	}

	if CurrentNightStep(state) != want {
		return ErrWrongNightStep
	}

	return nil
}
