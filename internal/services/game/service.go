package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/eventlog"
	"github.com/KirkDiggler/mafia/internal/services/roles"
	"github.com/KirkDiggler/mafia/internal/services/wincondition"
)

// service implements the Service interface
type service struct {
	roleAssigner roles.Service
	recorder     *eventlog.Recorder
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoleAssigner == nil {
		return nil, ErrNilRoleAssigner
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	recorder, err := eventlog.New(&eventlog.Config{
		Clock:         cfg.Clock,
		UUIDGenerator: cfg.UUIDGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event recorder: %w", err)
	}

	return &service{
		roleAssigner: cfg.RoleAssigner,
		recorder:     recorder,
	}, nil
}

// StartGame deals roles to ten names and opens the first night
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := checkPhase(input.State, models.PhaseSetup); err != nil {
		return nil, err
	}

	names, err := normalizeNames(input.Names)
	if err != nil {
		return nil, err
	}

	players, err := s.deal(ctx, names)
	if err != nil {
		return nil, err
	}

	next := models.NewGameState()
	next.Players = players
	next.Round = 1
	next.Phase = models.PhaseNight

	s.record(next, eventlog.Event{
		Round:  1,
		Phase:  models.PhaseSetup,
		Kind:   models.EventKindGameStart,
		Action: fmt.Sprintf("Game started with %d players.", len(players)),
	})

	logging.FromContext(ctx).Debugw("game started", "players", len(players))

	return &StartGameOutput{State: next}, nil
}

// PlayAgain deals a fresh game to the same names
func (s *service) PlayAgain(ctx context.Context, input *PlayAgainInput) (*PlayAgainOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.State == nil {
		return nil, ErrNilState
	}

	if input.State.Phase != models.PhaseResults {
		return nil, ErrInvalidPhase
	}

	names := make([]string, 0, len(input.State.Players))
	for _, p := range input.State.Players {
		names = append(names, p.Name)
	}

	players, err := s.deal(ctx, names)
	if err != nil {
		return nil, err
	}

	next := models.NewGameState()
	next.Players = players
	next.Round = 1
	next.Phase = models.PhaseNight

	s.record(next, eventlog.Event{
		Round:  1,
		Phase:  models.PhaseNight,
		Kind:   models.EventKindGameStart,
		Action: "New game started with the same players.",
	})

	logging.FromContext(ctx).Debugw("game restarted", "previousWinner", input.State.Winner)

	return &PlayAgainOutput{State: next}, nil
}

func (s *service) deal(ctx context.Context, names []string) ([]*models.Player, error) {
	out, err := s.roleAssigner.AssignRoles(ctx, &roles.AssignRolesInput{Names: names})
	if err != nil {
		if errors.Is(err, roles.ErrInvalidPlayerCount) {
			return nil, ErrInvalidPlayerCount
		}
		return nil, fmt.Errorf("failed to assign roles: %w", err)
	}
	return out.Players, nil
}

func (s *service) record(state *models.GameState, events ...eventlog.Event) {
	state.GameLog = s.recorder.Append(state.GameLog, events...)
}

// eliminate marks a player dead. It reports false when the player was
// already dead so callers log an elimination at most once.
func eliminate(state *models.GameState, playerID string) bool {
	p, ok := state.FindPlayer(playerID)
	if !ok || !p.IsAlive {
		return false
	}
	p.IsAlive = false
	return true
}

// endIfOver moves the game to results when a faction has won
func (s *service) endIfOver(ctx context.Context, state *models.GameState) bool {
	result := wincondition.Evaluate(state.Players)
	if !result.Over {
		return false
	}

	s.record(state, eventlog.Event{
		Round:  state.Round,
		Phase:  state.Phase,
		Kind:   models.EventKindGameEnd,
		Action: fmt.Sprintf("Game Over! %s wins!", result.Winner.Title()),
	})

	state.Phase = models.PhaseResults
	state.Winner = result.Winner

	logging.FromContext(ctx).Debugw("game over", "winner", result.Winner, "round", state.Round)
	return true
}

func checkPhase(state *models.GameState, want models.Phase) error {
	if state == nil {
		return ErrNilState
	}

	if state.Phase == models.PhaseResults {
		return ErrGameOver
	}

	if state.Phase != want {
		return ErrInvalidPhase
	}

	return nil
}

func normalizeNames(names []string) ([]string, error) {
	if len(names) != roles.PlayerCount {
		return nil, ErrInvalidPlayerCount
	}

	result := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrEmptyName
		}

		key := strings.ToLower(name)
		if seen[key] {
			return nil, ErrDuplicateName
		}
		seen[key] = true

		result = append(result, name)
	}

	return result, nil
}

func lookupAlive(state *models.GameState, playerID string) (*models.Player, error) {
	p, ok := state.FindPlayer(playerID)
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if !p.IsAlive {
		return nil, ErrPlayerNotAlive
	}

	return p, nil
}
