package models

// Night action keys used in GameState.NightAction
const (
	// NightActionMafia holds the id of the player killed by the mafia this night
	NightActionMafia = "mafia"

	// NightActionSheriff holds the id of the player investigated this night
	NightActionSheriff = "sheriff"
)

// UnknownPlayerName is shown for ids that are not in the roster
const UnknownPlayerName = "Unknown"

// GameState is the complete snapshot of a running game.
// Transitions never modify a GameState in place; they return a new one.
type GameState struct {
	// Players is the roster in the order names were entered
	Players []*Player `json:"players"`

	// Phase is the current top-level state
	Phase Phase `json:"phase"`

	// Round starts at 1 when the game starts and increases after each vote
	Round int `json:"round"`

	// Votes maps voter id to target id for the active normal or runoff ballot
	Votes map[string]string `json:"votes"`

	// VoteOrder lists voter ids in the order their ballots were cast
	VoteOrder []string `json:"voteOrder"`

	// NightAction maps an acting role (NightActionMafia, NightActionSheriff) to its target id
	NightAction map[string]string `json:"nightAction"`

	// ConfirmationVotes maps voter id to true (exile) or false (keep)
	ConfirmationVotes map[string]bool `json:"confirmationVotes"`

	// VotingType is the active voting sub-round
	VotingType VotingType `json:"votingType"`

	// TiedPlayerIDs are the candidates of a runoff, or the single candidate of a confirmation vote
	TiedPlayerIDs []string `json:"tiedPlayerIds"`

	// GameLog is the append-only record of everything that happened
	GameLog []LogEntry `json:"gameLog"`

	// ShowVotingResults is set once a vote resolves and cleared when the results are acknowledged
	ShowVotingResults bool `json:"showVotingResults"`

	// LastVote summarizes the most recently resolved ballot
	LastVote *VoteSummary `json:"lastVote,omitempty"`

	// Winner is set when the game reaches PhaseResults
	Winner Winner `json:"winner,omitempty"`
}

// NewGameState returns an empty game waiting in setup
func NewGameState() *GameState {
	return &GameState{
		Players:           []*Player{},
		Phase:             PhaseSetup,
		Round:             0,
		Votes:             map[string]string{},
		VoteOrder:         []string{},
		NightAction:       map[string]string{},
		ConfirmationVotes: map[string]bool{},
		VotingType:        VotingTypeNormal,
		TiedPlayerIDs:     []string{},
		GameLog:           []LogEntry{},
	}
}

// Clone returns a deep copy that shares no memory with s
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	clone := &GameState{
		Players:           make([]*Player, 0, len(s.Players)),
		Phase:             s.Phase,
		Round:             s.Round,
		Votes:             make(map[string]string, len(s.Votes)),
		VoteOrder:         append([]string{}, s.VoteOrder...),
		NightAction:       make(map[string]string, len(s.NightAction)),
		ConfirmationVotes: make(map[string]bool, len(s.ConfirmationVotes)),
		VotingType:        s.VotingType,
		TiedPlayerIDs:     append([]string{}, s.TiedPlayerIDs...),
		GameLog:           append([]LogEntry{}, s.GameLog...),
		ShowVotingResults: s.ShowVotingResults,
		Winner:            s.Winner,
	}

	for _, p := range s.Players {
		player := *p
		clone.Players = append(clone.Players, &player)
	}
	for k, v := range s.Votes {
		clone.Votes[k] = v
	}
	for k, v := range s.NightAction {
		clone.NightAction[k] = v
	}
	for k, v := range s.ConfirmationVotes {
		clone.ConfirmationVotes[k] = v
	}
	if s.LastVote != nil {
		clone.LastVote = s.LastVote.Clone()
	}
	if clone.VotingType == "" {
		clone.VotingType = VotingTypeNormal
	}

	return clone
}

// FindPlayer returns the player with the given id
func (s *GameState) FindPlayer(id string) (*Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlayerName returns the name for id, or UnknownPlayerName
func (s *GameState) PlayerName(id string) string {
	if p, ok := s.FindPlayer(id); ok {
		return p.Name
	}
	return UnknownPlayerName
}

// AlivePlayers returns alive players in roster order
func (s *GameState) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.IsAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// AliveSheriff returns the sheriff if still alive
func (s *GameState) AliveSheriff() (*Player, bool) {
	for _, p := range s.Players {
		if p.Role == RoleSheriff && p.IsAlive {
			return p, true
		}
	}
	return nil, false
}

// IsOver reports whether the game has reached its terminal phase
func (s *GameState) IsOver() bool {
	return s.Phase == PhaseResults
}
