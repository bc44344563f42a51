package roles

import (
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/random"
)

// PlayerCount is the only table size the game supports
const PlayerCount = 10

// Distribution is the role multiset dealt every game
var Distribution = map[models.Role]int{
	models.RoleSheriff:  1,
	models.RoleDon:      1,
	models.RoleMafia:    2,
	models.RoleCivilian: 6,
}

// DefaultNames is the pool SuggestNames draws from
var DefaultNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Riley",
	"Morgan", "Casey", "Jamie", "Quinn", "Avery",
	"Emma", "Liam", "Olivia", "Noah", "Sophia",
	"Jackson", "Ava", "Lucas", "Isabella", "Ethan",
	"Mia", "Mason", "Charlotte", "Aiden", "Amelia",
	"Michael", "Elena", "Daniel", "Sofia", "Nathan",
}

// Config holds configuration for the role service
type Config struct {
	// Random shuffles the role deck
	Random random.Source

	// UUIDGenerator issues player ids
	UUIDGenerator uuid.UUID
}

// AssignRolesInput contains parameters for dealing roles
type AssignRolesInput struct {
	// Names are the player names in seating order; must hold PlayerCount distinct names
	Names []string
}

// AssignRolesOutput contains the dealt roster
type AssignRolesOutput struct {
	// Players is the roster in the same order as the input names
	Players []*models.Player
}

// SuggestNamesInput contains parameters for suggesting names
type SuggestNamesInput struct {
	// Count is how many names to return
	Count int
}

// SuggestNamesOutput contains the suggested names
type SuggestNamesOutput struct {
	Names []string
}
