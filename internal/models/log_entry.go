package models

// EventKind classifies a log entry so readers never parse Action text
type EventKind string

const (
	// EventKindGameStart marks a new game (or a replay with the same names)
	EventKindGameStart EventKind = "game_start"

	// EventKindNightKill marks the mafia's victim
	EventKindNightKill EventKind = "night_kill"

	// EventKindInvestigation marks the sheriff's check
	EventKindInvestigation EventKind = "investigation"

	// EventKindPhaseChange marks an operator-driven phase change
	EventKindPhaseChange EventKind = "phase_change"

	// EventKindVoteCast marks a single ballot
	EventKindVoteCast EventKind = "vote_cast"

	// EventKindEscalation marks a tie that sends the vote to a runoff or confirmation
	EventKindEscalation EventKind = "escalation"

	// EventKindConfirmation marks the result and decision of a confirmation vote
	EventKindConfirmation EventKind = "confirmation"

	// EventKindElimination marks a player removed by vote
	EventKindElimination EventKind = "elimination"

	// EventKindNoElimination marks a vote that removed nobody
	EventKindNoElimination EventKind = "no_elimination"

	// EventKindGameEnd marks the winner announcement
	EventKindGameEnd EventKind = "game_end"
)

// LogEntry is a single record in the game log
type LogEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// Round is the round the event happened in
	Round int `json:"round"`

	// Phase is the phase the event happened in
	Phase Phase `json:"phase"`

	// Action is the human-readable description
	Action string `json:"action"`

	// Timestamp is Unix milliseconds, never lower than the previous entry
	Timestamp int64 `json:"timestamp"`

	// Kind classifies the event
	Kind EventKind `json:"eventKind"`

	// ActorID is the player who acted, if any
	ActorID string `json:"actorId,omitempty"`

	// TargetID is the player acted upon, if any
	TargetID string `json:"targetId,omitempty"`
}
