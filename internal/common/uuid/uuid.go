package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/mafia/internal/common/uuid UUID

// UUID generates identifiers for players, log entries and sessions
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random (v4) UUIDs
type DefaultUUID struct {
	short bool
}

// New returns a generator of canonical 36 character UUIDs
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewShort returns a generator of 32 character UUIDs without dashes,
// easier to read back in console output
func NewShort() *DefaultUUID {
	return &DefaultUUID{short: true}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	id := uuid.New().String()
	if d.short {
		return strings.ReplaceAll(id, "-", "")
	}
	return id
}
