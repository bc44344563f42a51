package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPlayerCount GameError = "game requires exactly 10 players"
	ErrDuplicateName      GameError = "player names must be unique"
	ErrEmptyName          GameError = "player names cannot be empty"
	ErrInvalidPhase       GameError = "action not allowed in the current phase"
	ErrGameOver           GameError = "game is over"
	ErrWrongNightStep     GameError = "action not allowed at this point of the night"
	ErrPlayerNotFound     GameError = "player not found"
	ErrPlayerNotAlive     GameError = "player is not alive"
	ErrInvalidTarget      GameError = "invalid target for this role"
	ErrAlreadyVoted       GameError = "player has already voted"
	ErrNotEligibleTarget  GameError = "player cannot be voted for in this round"
	ErrWrongVotingType    GameError = "wrong kind of vote for the current voting round"
	ErrResultsPending     GameError = "voting results must be acknowledged first"
	ErrNoResults          GameError = "no voting results to acknowledge"
	ErrUnknownAction      GameError = "unknown action"
	ErrNilState           GameError = "game state cannot be nil"
	ErrNilInput           GameError = "input cannot be nil"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilRoleAssigner    GameError = "role assigner cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
