// Package eventlog appends structured entries to a game log and offers
// read-side views over it. The stored order is always insertion order.
package eventlog

import (
	"github.com/KirkDiggler/mafia/internal/common/clock"
	"github.com/KirkDiggler/mafia/internal/common/uuid"
	"github.com/KirkDiggler/mafia/internal/models"
)

// Config holds the recorder dependencies
type Config struct {
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Event is a log entry before it receives an id and timestamp
type Event struct {
	Round    int
	Phase    models.Phase
	Kind     models.EventKind
	Action   string
	ActorID  string
	TargetID string
}

// Recorder stamps events and appends them to a log
type Recorder struct {
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new recorder
func New(cfg *Config) (*Recorder, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Recorder{
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Append returns a new log holding every entry of log followed by events.
// log itself is never written to.
func (r *Recorder) Append(log []models.LogEntry, events ...Event) []models.LogEntry {
	result := make([]models.LogEntry, len(log), len(log)+len(events))
	copy(result, log)

	var last int64
	if len(log) > 0 {
		last = log[len(log)-1].Timestamp
	}

	for _, event := range events {
		timestamp := r.clock.Now().UnixMilli()
		if timestamp < last {
			timestamp = last
		}
		last = timestamp

		result = append(result, models.LogEntry{
			ID:        r.uuidGenerator.NewUUID(),
			Round:     event.Round,
			Phase:     event.Phase,
			Action:    event.Action,
			Timestamp: timestamp,
			Kind:      event.Kind,
			ActorID:   event.ActorID,
			TargetID:  event.TargetID,
		})
	}

	return result
}
