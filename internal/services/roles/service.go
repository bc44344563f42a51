package roles

import (
	"context"

	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/random"
)

// service implements the Service interface
type service struct {
	random        random.Source
	uuidGenerator uuid.UUID
}

// New creates a new role service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		random:        cfg.Random,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// AssignRoles shuffles the fixed role set and deals it to the given names
func (s *service) AssignRoles(ctx context.Context, input *AssignRolesInput) (*AssignRolesOutput, error) {
	if input == nil || len(input.Names) != PlayerCount {
		return nil, ErrInvalidPlayerCount
	}

	deck := newDeck()
	random.Shuffle(s.random, deck)

	players := make([]*models.Player, 0, len(input.Names))
	for i, name := range input.Names {
		players = append(players, &models.Player{
			ID:      s.uuidGenerator.NewUUID(),
			Name:    name,
			Role:    deck[i],
			IsAlive: true,
		})
	}

	return &AssignRolesOutput{
		Players: players,
	}, nil
}

// SuggestNames picks distinct names from the default name pool
func (s *service) SuggestNames(ctx context.Context, input *SuggestNamesInput) (*SuggestNamesOutput, error) {
	if input == nil || input.Count <= 0 {
		return nil, ErrInvalidNameCount
	}

	if input.Count > len(DefaultNames) {
		return nil, ErrNotEnoughNames
	}

	pool := append([]string{}, DefaultNames...)
	random.Shuffle(s.random, pool)

	return &SuggestNamesOutput{
		Names: pool[:input.Count],
	}, nil
}

// newDeck lays out the role multiset in a fixed order before shuffling
func newDeck() []models.Role {
	order := []models.Role{models.RoleSheriff, models.RoleDon, models.RoleMafia, models.RoleCivilian}

	deck := make([]models.Role, 0, PlayerCount)
	for _, role := range order {
		for i := 0; i < Distribution[role]; i++ {
			deck = append(deck, role)
		}
	}
	return deck
}
