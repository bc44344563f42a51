package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mafia/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/mafia/internal/common/uuid/mocks"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/eventlog"
	"github.com/KirkDiggler/mafia/internal/services/roles"
	rolesMocks "github.com/KirkDiggler/mafia/internal/services/roles/mocks"
	"github.com/KirkDiggler/mafia/internal/services/voting"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRoles *rolesMocks.MockService
	mockClock *mocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	service   Service
	ctx       context.Context

	// Test data
	testTime time.Time
	names    []string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoles = rolesMocks.NewMockService(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.names = []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi", "Ivan", "Judy"}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-log-id").AnyTimes()

	svc, err := New(&Config{
		RoleAssigner:  s.mockRoles,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// roster is a fixed deal: Alice is the sheriff, Bob the don, Carol and Dave mafia
func (s *GameServiceTestSuite) roster() []*models.Player {
	rolesBySeat := []models.Role{
		models.RoleSheriff, models.RoleDon, models.RoleMafia, models.RoleMafia,
		models.RoleCivilian, models.RoleCivilian, models.RoleCivilian,
		models.RoleCivilian, models.RoleCivilian, models.RoleCivilian,
	}
	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10"}

	players := make([]*models.Player, 0, len(s.names))
	for i, name := range s.names {
		players = append(players, &models.Player{
			ID:      ids[i],
			Name:    name,
			Role:    rolesBySeat[i],
			IsAlive: true,
		})
	}
	return players
}

func (s *GameServiceTestSuite) expectDeal() {
	s.mockRoles.EXPECT().
		AssignRoles(gomock.Any(), &roles.AssignRolesInput{Names: s.names}).
		Return(&roles.AssignRolesOutput{Players: s.roster()}, nil)
}

func (s *GameServiceTestSuite) started() *models.GameState {
	s.expectDeal()
	out, err := s.service.StartGame(s.ctx, &StartGameInput{
		State: models.NewGameState(),
		Names: s.names,
	})
	s.Require().NoError(err)
	return out.State
}

// stateWith builds a game in phase where only the given players are alive
func (s *GameServiceTestSuite) stateWith(phase models.Phase, alive ...string) *models.GameState {
	state := models.NewGameState()
	state.Players = s.roster()
	state.Phase = phase
	state.Round = 2

	aliveSet := make(map[string]bool, len(alive))
	for _, id := range alive {
		aliveSet[id] = true
	}
	for _, p := range state.Players {
		p.IsAlive = aliveSet[p.ID]
	}
	return state
}

// votingState plays the first night (Eve killed, Bob investigated) and opens voting
func (s *GameServiceTestSuite) votingState() *models.GameState {
	state := s.started()
	state = s.apply(state, MafiaKillAction{TargetID: "p5"})
	state = s.apply(state, InvestigateAction{TargetID: "p2"})
	state = s.apply(state, AcknowledgeInvestigationAction{})
	return s.apply(state, StartVotingAction{})
}

func (s *GameServiceTestSuite) apply(state *models.GameState, action Action) *models.GameState {
	next, err := s.service.Apply(s.ctx, state, action)
	s.Require().NoError(err, action.Name())
	return next
}

// castAll casts ballots as voter/target pairs and returns the last output
func (s *GameServiceTestSuite) castAll(state *models.GameState, ballots ...[2]string) *CastVoteOutput {
	var out *CastVoteOutput
	for _, ballot := range ballots {
		var err error
		out, err = s.service.CastVote(s.ctx, &CastVoteInput{
			State:    state,
			VoterID:  ballot[0],
			TargetID: ballot[1],
		})
		s.Require().NoError(err, "ballot %v", ballot)
		state = out.State
	}
	return out
}

func (s *GameServiceTestSuite) confirmAll(state *models.GameState, exile map[string]bool, voters ...string) *CastConfirmationVoteOutput {
	var out *CastConfirmationVoteOutput
	for _, voter := range voters {
		var err error
		out, err = s.service.CastConfirmationVote(s.ctx, &CastConfirmationVoteInput{
			State:   state,
			VoterID: voter,
			Exile:   exile[voter],
		})
		s.Require().NoError(err, "voter %s", voter)
		state = out.State
	}
	return out
}

func actions(log []models.LogEntry) []string {
	result := make([]string, 0, len(log))
	for _, entry := range log {
		result = append(result, entry.Action)
	}
	return result
}

func (s *GameServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRoleAssigner)

	_, err = New(&Config{RoleAssigner: s.mockRoles, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{RoleAssigner: s.mockRoles, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *GameServiceTestSuite) TestStartGame() {
	setup := models.NewGameState()
	padded := append([]string{}, s.names...)
	padded[0] = "  Alice "

	s.expectDeal()
	out, err := s.service.StartGame(s.ctx, &StartGameInput{State: setup, Names: padded})
	s.Require().NoError(err)

	state := out.State
	s.Equal(models.PhaseNight, state.Phase)
	s.Equal(1, state.Round)
	s.Len(state.Players, 10)
	s.Require().Len(state.GameLog, 1)
	s.Equal("Game started with 10 players.", state.GameLog[0].Action)
	s.Equal(models.PhaseSetup, state.GameLog[0].Phase)
	s.Equal(1, state.GameLog[0].Round)
	s.Equal(models.EventKindGameStart, state.GameLog[0].Kind)
	s.Equal(s.testTime.UnixMilli(), state.GameLog[0].Timestamp)
	s.Equal(NightStepMafia, CurrentNightStep(state))

	s.Equal(models.PhaseSetup, setup.Phase)
	s.Empty(setup.GameLog)
}

func (s *GameServiceTestSuite) TestStartGameValidatesNames() {
	nine := s.names[:9]
	empty := append([]string{}, s.names...)
	empty[4] = "   "
	duplicate := append([]string{}, s.names...)
	duplicate[9] = "alice"

	testCases := []struct {
		name  string
		names []string
		err   error
	}{
		{"too few", nine, ErrInvalidPlayerCount},
		{"blank", empty, ErrEmptyName},
		{"duplicate ignoring case", duplicate, ErrDuplicateName},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.StartGame(s.ctx, &StartGameInput{State: models.NewGameState(), Names: tc.names})
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *GameServiceTestSuite) TestStartGameWrongPhase() {
	_, err := s.service.StartGame(s.ctx, &StartGameInput{State: s.stateWith(models.PhaseDay, "p1"), Names: s.names})
	s.ErrorIs(err, ErrInvalidPhase)

	_, err = s.service.StartGame(s.ctx, &StartGameInput{Names: s.names})
	s.ErrorIs(err, ErrNilState)

	_, err = s.service.StartGame(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *GameServiceTestSuite) TestStartGameRoleAssignerFailure() {
	s.mockRoles.EXPECT().AssignRoles(gomock.Any(), gomock.Any()).Return(nil, errors.New("deck jammed"))

	_, err := s.service.StartGame(s.ctx, &StartGameInput{State: models.NewGameState(), Names: s.names})
	s.Error(err)
	s.Contains(err.Error(), "failed to assign roles")
}

func (s *GameServiceTestSuite) TestNightWithSheriffInvestigatingDon() {
	state := s.started()

	killed, err := s.service.ChooseMafiaTarget(s.ctx, &ChooseMafiaTargetInput{State: state, TargetID: "p5"})
	s.Require().NoError(err)
	s.False(killed.GameOver)
	s.Equal(models.PhaseNight, killed.State.Phase)
	s.Equal(NightStepSheriff, CurrentNightStep(killed.State))
	s.Equal("p5", killed.State.NightAction[models.NightActionMafia])
	eve, _ := killed.State.FindPlayer("p5")
	s.False(eve.IsAlive)
	s.Contains(actions(killed.State.GameLog), "Eve was eliminated during the night.")

	investigated, err := s.service.Investigate(s.ctx, &InvestigateInput{State: killed.State, TargetID: "p2"})
	s.Require().NoError(err)
	s.True(investigated.IsMafia)
	s.Equal(NightStepAcknowledge, CurrentNightStep(investigated.State))
	last := investigated.State.GameLog[len(investigated.State.GameLog)-1]
	s.Equal("Sheriff investigated Bob and found a Mafia member.", last.Action)
	s.Equal(models.EventKindInvestigation, last.Kind)
	s.Equal("p1", last.ActorID)
	s.Equal("p2", last.TargetID)

	day, err := s.service.AcknowledgeInvestigation(s.ctx, &AcknowledgeInvestigationInput{State: investigated.State})
	s.Require().NoError(err)
	s.Equal(models.PhaseDay, day.State.Phase)

	kills := eventlog.NightKills(day.State.GameLog, 1)
	s.Require().Len(kills, 1)
	s.Equal("p5", kills[0].TargetID)

	// Earlier snapshots are untouched.
	s.Equal(models.PhaseNight, state.Phase)
	aliveEve, _ := state.FindPlayer("p5")
	s.True(aliveEve.IsAlive)
}

func (s *GameServiceTestSuite) TestInvestigateCivilian() {
	state := s.apply(s.started(), MafiaKillAction{TargetID: "p5"})

	out, err := s.service.Investigate(s.ctx, &InvestigateInput{State: state, TargetID: "p6"})
	s.Require().NoError(err)
	s.False(out.IsMafia)
	s.Equal("Sheriff investigated Frank and found an innocent citizen.", out.State.GameLog[len(out.State.GameLog)-1].Action)
}

func (s *GameServiceTestSuite) TestNightGuards() {
	state := s.started()

	testCases := []struct {
		name string
		run  func() error
		err  error
	}{
		{"mafia cannot kill mafia", func() error {
			_, err := s.service.ChooseMafiaTarget(s.ctx, &ChooseMafiaTargetInput{State: state, TargetID: "p3"})
			return err
		}, ErrInvalidTarget},
		{"mafia cannot kill unknown player", func() error {
			_, err := s.service.ChooseMafiaTarget(s.ctx, &ChooseMafiaTargetInput{State: state, TargetID: "nobody"})
			return err
		}, ErrPlayerNotFound},
		{"sheriff waits for the mafia", func() error {
			_, err := s.service.Investigate(s.ctx, &InvestigateInput{State: state, TargetID: "p2"})
			return err
		}, ErrWrongNightStep},
		{"night cannot end before the kill", func() error {
			_, err := s.service.AcknowledgeInvestigation(s.ctx, &AcknowledgeInvestigationInput{State: state})
			return err
		}, ErrWrongNightStep},
		{"voting needs the day", func() error {
			_, err := s.service.StartVoting(s.ctx, &StartVotingInput{State: state})
			return err
		}, ErrInvalidPhase},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.ErrorIs(tc.run(), tc.err)
		})
	}

	killed := s.apply(state, MafiaKillAction{TargetID: "p5"})

	_, err := s.service.ChooseMafiaTarget(s.ctx, &ChooseMafiaTargetInput{State: killed, TargetID: "p6"})
	s.ErrorIs(err, ErrWrongNightStep)

	_, err = s.service.Investigate(s.ctx, &InvestigateInput{State: killed, TargetID: "p1"})
	s.ErrorIs(err, ErrInvalidTarget)

	_, err = s.service.Investigate(s.ctx, &InvestigateInput{State: killed, TargetID: "p5"})
	s.ErrorIs(err, ErrPlayerNotAlive)
}

func (s *GameServiceTestSuite) TestKillingSheriffSkipsInvestigation() {
	out, err := s.service.ChooseMafiaTarget(s.ctx, &ChooseMafiaTargetInput{State: s.started(), TargetID: "p1"})
	s.Require().NoError(err)
	s.Equal(models.PhaseDay, out.State.Phase)
	s.Equal(NightStepNone, CurrentNightStep(out.State))
}

func (s *GameServiceTestSuite) TestNightKillEndsGame() {
	state := s.stateWith(models.PhaseNight, "p2", "p3", "p5", "p6", "p7")

	out, err := s.service.ChooseMafiaTarget(s.ctx, &ChooseMafiaTargetInput{State: state, TargetID: "p5"})
	s.Require().NoError(err)
	s.True(out.GameOver)
	s.Equal(models.PhaseResults, out.State.Phase)
	s.Equal(models.WinnerMafia, out.State.Winner)

	last := out.State.GameLog[len(out.State.GameLog)-1]
	s.Equal("Game Over! Mafia wins!", last.Action)
	s.Equal(models.EventKindGameEnd, last.Kind)
}

func (s *GameServiceTestSuite) TestClearElimination() {
	state := s.votingState()
	s.Equal(models.VotingTypeNormal, state.VotingType)
	s.Contains(actions(state.GameLog), "Day discussion ended. Voting phase started.")

	voter, ok := NextVoter(state)
	s.Require().True(ok)
	s.Equal("p1", voter.ID)

	out := s.castAll(state,
		[2]string{"p1", "p3"}, [2]string{"p2", "p6"}, [2]string{"p3", "p3"},
		[2]string{"p4", "p6"}, [2]string{"p6", "p3"}, [2]string{"p7", "p3"},
		[2]string{"p8", "p3"}, [2]string{"p9", "p6"}, [2]string{"p10", "p3"},
	)

	s.Require().NotNil(out.Outcome)
	s.Equal(voting.OutcomeElimination, out.Outcome.Kind)

	result := out.State
	s.True(result.ShowVotingResults)
	s.Equal(models.PhaseVoting, result.Phase)
	carol, _ := result.FindPlayer("p3")
	s.False(carol.IsAlive)
	s.Contains(actions(result.GameLog), "Carol voted for Carol.")
	s.Contains(actions(result.GameLog), "Voting complete. Carol received 6 votes and was eliminated.")

	s.Require().NotNil(result.LastVote)
	s.Equal("p3", result.LastVote.EliminatedID)
	s.Equal(6, result.LastVote.Counts["p3"])
	s.Equal(3, result.LastVote.Counts["p6"])
	s.Equal(67, result.LastVote.Percentage(6))

	_, ok = NextVoter(result)
	s.False(ok)

	_, err := s.service.CastVote(s.ctx, &CastVoteInput{State: result, VoterID: "p1", TargetID: "p2"})
	s.ErrorIs(err, ErrResultsPending)

	night, err := s.service.AcknowledgeResults(s.ctx, &AcknowledgeResultsInput{State: result})
	s.Require().NoError(err)
	s.Equal(models.PhaseNight, night.State.Phase)
	s.Equal(2, night.State.Round)
	s.Empty(night.State.Votes)
	s.Empty(night.State.VoteOrder)
	s.Empty(night.State.NightAction)
	s.Empty(night.State.TiedPlayerIDs)
	s.False(night.State.ShowVotingResults)
	s.Equal(NightStepMafia, CurrentNightStep(night.State))

	order := eventlog.EliminationOrder(night.State.GameLog)
	s.Require().Len(order, 2)
	s.Equal("p5", order[0].TargetID)
	s.Equal("p3", order[1].TargetID)
}

func (s *GameServiceTestSuite) TestSelfVoteIsFlagged() {
	out, err := s.service.CastVote(s.ctx, &CastVoteInput{State: s.votingState(), VoterID: "p4", TargetID: "p4"})
	s.Require().NoError(err)
	s.True(out.SelfVote)
	s.Nil(out.Outcome)
}

func (s *GameServiceTestSuite) TestTiesEscalateToConfirmation() {
	state := s.votingState()

	// Heidi, Ivan and Judy take three votes each.
	runoff := s.castAll(state,
		[2]string{"p1", "p8"}, [2]string{"p2", "p9"}, [2]string{"p3", "p10"},
		[2]string{"p4", "p8"}, [2]string{"p6", "p9"}, [2]string{"p7", "p10"},
		[2]string{"p8", "p9"}, [2]string{"p9", "p10"}, [2]string{"p10", "p8"},
	)
	s.Equal(voting.OutcomeRunoff, runoff.Outcome.Kind)
	s.Equal(models.VotingTypeRunoff, runoff.State.VotingType)
	s.Equal([]string{"p8", "p9", "p10"}, runoff.State.TiedPlayerIDs)
	s.Empty(runoff.State.Votes)
	s.Contains(actions(runoff.State.GameLog), "No clear majority. Starting runoff vote between tied players.")
	s.Contains(actions(runoff.State.GameLog), "Tied players with 3 votes each: Heidi, Ivan, Judy")

	_, err := s.service.CastVote(s.ctx, &CastVoteInput{State: runoff.State, VoterID: "p1", TargetID: "p2"})
	s.ErrorIs(err, ErrNotEligibleTarget)
	s.Len(EligibleTargets(runoff.State), 3)

	// Still tied; Judy is named first so she faces the confirmation vote.
	confirmation := s.castAll(runoff.State,
		[2]string{"p1", "p10"}, [2]string{"p2", "p8"}, [2]string{"p3", "p9"},
		[2]string{"p4", "p10"}, [2]string{"p6", "p8"}, [2]string{"p7", "p9"},
		[2]string{"p8", "p10"}, [2]string{"p9", "p8"}, [2]string{"p10", "p9"},
	)
	s.Equal(voting.OutcomeConfirmation, confirmation.Outcome.Kind)
	s.Equal(models.VotingTypeConfirmation, confirmation.State.VotingType)
	s.Equal([]string{"p10"}, confirmation.State.TiedPlayerIDs)
	s.Contains(actions(confirmation.State.GameLog), "Still tied after runoff. Starting confirmation vote (exile or keep).")

	_, err = s.service.CastVote(s.ctx, &CastVoteInput{State: confirmation.State, VoterID: "p1", TargetID: "p10"})
	s.ErrorIs(err, ErrWrongVotingType)

	voters := []string{"p1", "p2", "p3", "p4", "p6", "p7", "p8", "p9", "p10"}

	s.Run("majority exiles", func() {
		exile := map[string]bool{"p1": true, "p2": true, "p3": true, "p4": true, "p6": true}
		out := s.confirmAll(confirmation.State, exile, voters...)

		s.Equal(voting.OutcomeElimination, out.Outcome.Kind)
		log := actions(out.State.GameLog)
		s.Contains(log, "Alice voted to exile Judy.")
		s.Contains(log, "Ivan voted to keep Judy.")
		s.Contains(log, "Confirmation vote result: 5 out of 9 (56%) voted to exile Judy.")
		s.Contains(log, "The town has decided to exile Judy.")
		s.Contains(log, "Voting complete. Judy received 5 votes and was eliminated.")

		eliminations := 0
		for _, entry := range eventlog.Filter(out.State.GameLog, models.EventKindElimination) {
			if entry.TargetID == "p10" {
				eliminations++
			}
		}
		s.Equal(1, eliminations)

		judy, _ := out.State.FindPlayer("p10")
		s.False(judy.IsAlive)
		s.Equal("p10", out.State.LastVote.EliminatedID)
		s.Equal(5, out.State.LastVote.ExileVotes)
	})

	s.Run("minority keeps", func() {
		exile := map[string]bool{"p1": true, "p2": true, "p3": true, "p4": true}
		out := s.confirmAll(confirmation.State, exile, voters...)

		s.Equal(voting.OutcomeNoElimination, out.Outcome.Kind)
		log := actions(out.State.GameLog)
		s.Contains(log, "Confirmation vote result: 4 out of 9 (44%) voted to exile Judy.")
		s.Contains(log, "Not enough votes to exile Judy. The town continues with no elimination.")
		s.True(out.State.ShowVotingResults)
		s.Empty(out.State.LastVote.EliminatedID)

		judy, _ := out.State.FindPlayer("p10")
		s.True(judy.IsAlive)
	})
}

func (s *GameServiceTestSuite) TestBallotGuards() {
	state := s.votingState()

	_, err := s.service.CastVote(s.ctx, &CastVoteInput{State: state, VoterID: "p5", TargetID: "p2"})
	s.ErrorIs(err, ErrPlayerNotAlive)

	_, err = s.service.CastVote(s.ctx, &CastVoteInput{State: state, VoterID: "p1", TargetID: "p5"})
	s.ErrorIs(err, ErrNotEligibleTarget)

	_, err = s.service.CastVote(s.ctx, &CastVoteInput{State: state, VoterID: "p1", TargetID: "ghost"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.service.CastConfirmationVote(s.ctx, &CastConfirmationVoteInput{State: state, VoterID: "p1", Exile: true})
	s.ErrorIs(err, ErrWrongVotingType)

	_, err = s.service.AcknowledgeResults(s.ctx, &AcknowledgeResultsInput{State: state})
	s.ErrorIs(err, ErrNoResults)

	voted, err := s.service.CastVote(s.ctx, &CastVoteInput{State: state, VoterID: "p1", TargetID: "p2"})
	s.Require().NoError(err)

	_, err = s.service.CastVote(s.ctx, &CastVoteInput{State: voted.State, VoterID: "p1", TargetID: "p3"})
	s.ErrorIs(err, ErrAlreadyVoted)

	// The input snapshot never sees the ballot.
	s.Empty(state.Votes)
	s.Equal(len(state.GameLog)+1, len(voted.State.GameLog))
}

func (s *GameServiceTestSuite) TestVoteEndsGameForMafia() {
	state := s.stateWith(models.PhaseVoting, "p1", "p2", "p3", "p5", "p6")

	out := s.castAll(state,
		[2]string{"p1", "p1"}, [2]string{"p2", "p1"}, [2]string{"p3", "p1"},
		[2]string{"p5", "p1"}, [2]string{"p6", "p1"},
	)

	s.Equal(models.PhaseResults, out.State.Phase)
	s.Equal(models.WinnerMafia, out.State.Winner)
	s.Equal("Game Over! Mafia wins!", out.State.GameLog[len(out.State.GameLog)-1].Action)

	_, err := s.service.AcknowledgeResults(s.ctx, &AcknowledgeResultsInput{State: out.State})
	s.ErrorIs(err, ErrGameOver)

	_, err = s.service.Apply(s.ctx, out.State, StartVotingAction{})
	s.ErrorIs(err, ErrGameOver)

	_, err = s.service.Apply(s.ctx, out.State, MafiaKillAction{TargetID: "p5"})
	s.ErrorIs(err, ErrGameOver)
}

func (s *GameServiceTestSuite) TestVoteEndsGameForTown() {
	state := s.stateWith(models.PhaseVoting, "p1", "p2", "p5", "p6")

	out := s.castAll(state,
		[2]string{"p1", "p2"}, [2]string{"p2", "p5"}, [2]string{"p5", "p2"}, [2]string{"p6", "p2"},
	)

	s.Equal(models.PhaseResults, out.State.Phase)
	s.Equal(models.WinnerTown, out.State.Winner)
	s.Equal("Game Over! Town wins!", out.State.GameLog[len(out.State.GameLog)-1].Action)
}

func (s *GameServiceTestSuite) TestPlayAgain() {
	_, err := s.service.PlayAgain(s.ctx, &PlayAgainInput{State: s.stateWith(models.PhaseDay, "p1")})
	s.ErrorIs(err, ErrInvalidPhase)

	finished := s.stateWith(models.PhaseResults, "p2", "p3")
	finished.Winner = models.WinnerMafia
	finished.GameLog = []models.LogEntry{{ID: "old", Action: "Game Over! Mafia wins!"}}

	s.expectDeal()
	out, err := s.service.PlayAgain(s.ctx, &PlayAgainInput{State: finished})
	s.Require().NoError(err)

	state := out.State
	s.Equal(models.PhaseNight, state.Phase)
	s.Equal(1, state.Round)
	s.Empty(state.Winner)
	s.Len(state.AlivePlayers(), 10)
	s.Require().Len(state.GameLog, 1)
	s.Equal("New game started with the same players.", state.GameLog[0].Action)
	s.Equal(models.PhaseNight, state.GameLog[0].Phase)
}

type unknownAction struct{}

func (unknownAction) Name() string { return "unknown" }

func (s *GameServiceTestSuite) TestApplyUnknownAction() {
	_, err := s.service.Apply(s.ctx, s.started(), unknownAction{})
	s.ErrorIs(err, ErrUnknownAction)
}

func (s *GameServiceTestSuite) TestEligibleTargetsAtNight() {
	state := s.started()

	mafiaTargets := EligibleTargets(state)
	s.Len(mafiaTargets, 7)
	for _, p := range mafiaTargets {
		s.False(p.Role.IsMafia())
	}

	state = s.apply(state, MafiaKillAction{TargetID: "p5"})
	sheriffTargets := EligibleTargets(state)
	s.Len(sheriffTargets, 8)
	for _, p := range sheriffTargets {
		s.NotEqual(models.RoleSheriff, p.Role)
	}

	s.Empty(EligibleTargets(s.stateWith(models.PhaseDay, "p1", "p2")))
}
