package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/models"
	gameRepo "github.com/KirkDiggler/mafia/internal/repositories/game"
)

// service implements the Service interface
type service struct {
	repo          gameRepo.Repository
	uuidGenerator uuid.UUID

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		repo:          cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		locks:         make(map[string]*sync.Mutex),
	}, nil
}

func (s *service) lock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// CreateSession stores a new game in setup
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	sessionID := s.uuidGenerator.NewUUID()
	state := models.NewGameState()

	if err := s.repo.SaveGame(ctx, &gameRepo.SaveGameInput{SessionID: sessionID, State: state}); err != nil {
		return nil, fmt.Errorf("failed to save new session: %w", err)
	}

	logging.FromContext(ctx).Debugw("session created", "session", sessionID)

	return &CreateSessionOutput{
		SessionID: sessionID,
		State:     state,
	}, nil
}

// GetState returns the current snapshot of a session
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{State: state}, nil
}

// UpdateGameState replaces a session's state with the updater's result.
// Updates to the same session never interleave.
func (s *service) UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*UpdateGameStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Updater == nil {
		return nil, ErrNilUpdater
	}

	l := s.lock(input.SessionID)
	l.Lock()
	defer l.Unlock()

	current, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	next, err := input.Updater(current)
	if err != nil {
		return nil, err
	}

	if next == nil {
		return nil, ErrNilState
	}

	if err := s.repo.SaveGame(ctx, &gameRepo.SaveGameInput{SessionID: input.SessionID, State: next}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logging.FromContext(ctx).Debugw("session updated",
		"session", input.SessionID,
		"phase", next.Phase,
		"round", next.Round,
	)

	return &UpdateGameStateOutput{State: next}, nil
}

// EndSession discards a session
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	l := s.lock(input.SessionID)
	l.Lock()
	defer l.Unlock()

	err := s.repo.DeleteGame(ctx, &gameRepo.DeleteGameInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	s.mu.Lock()
	delete(s.locks, input.SessionID)
	s.mu.Unlock()

	logging.FromContext(ctx).Debugw("session ended", "session", input.SessionID)

	return &EndSessionOutput{Success: true}, nil
}

// ListActiveSessions returns sessions whose game is still in play
func (s *service) ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error) {
	out, err := s.repo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &ListActiveSessionsOutput{SessionIDs: out.SessionIDs}, nil
}

func (s *service) load(ctx context.Context, sessionID string) (*models.GameState, error) {
	state, err := s.repo.GetGame(ctx, &gameRepo.GetGameInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return state, nil
}
