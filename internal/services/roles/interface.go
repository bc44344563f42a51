package roles

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafia/internal/services/roles Service

import "context"

// Service deals roles to a fixed table of players
type Service interface {
	// AssignRoles shuffles the fixed role set and deals it to the given names
	AssignRoles(ctx context.Context, input *AssignRolesInput) (*AssignRolesOutput, error)

	// SuggestNames picks distinct names from the default name pool
	SuggestNames(ctx context.Context, input *SuggestNamesInput) (*SuggestNamesOutput, error)
}
