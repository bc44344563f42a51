package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mafia/internal/models"
	randomMocks "github.com/KirkDiggler/mafia/internal/random/mocks"
	"github.com/KirkDiggler/mafia/internal/services/game"
	gameMocks "github.com/KirkDiggler/mafia/internal/services/game/mocks"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
	"github.com/KirkDiggler/mafia/internal/services/roles"
	rolesMocks "github.com/KirkDiggler/mafia/internal/services/roles/mocks"
	"github.com/KirkDiggler/mafia/internal/services/session"
	sessionMocks "github.com/KirkDiggler/mafia/internal/services/session/mocks"
)

type ConsoleTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGame     *gameMocks.MockService
	mockSessions *sessionMocks.MockService
	mockRoles    *rolesMocks.MockService
	mockRandom   *randomMocks.MockSource
	out          *bytes.Buffer
	console      *Console
	ctx          context.Context

	// Test data
	testSessionID string
	names         []string
}

func (s *ConsoleTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.mockRoles = rolesMocks.NewMockService(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()

	s.testSessionID = "test-session-id"
	s.names = []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi", "Ivan", "Judy"}

	s.mockRandom.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	messages, err := messaging.New(&messaging.Config{Random: s.mockRandom})
	s.Require().NoError(err)

	s.console = s.newConsole("", messages)
	s.console.sessionID = s.testSessionID
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) newConsole(input string, messages messaging.Service) *Console {
	console, err := New(&Config{
		In:               strings.NewReader(input),
		Out:              s.out,
		GameService:      s.mockGame,
		SessionService:   s.mockSessions,
		RoleAssigner:     s.mockRoles,
		MessagingService: messages,
	})
	s.Require().NoError(err)
	return console
}

// table seats the fixed roster: Alice sheriff, Bob don, Carol and Dave mafia
func (s *ConsoleTestSuite) table(phase models.Phase) *models.GameState {
	state := models.NewGameState()
	state.Phase = phase
	state.Round = 1
	for i, name := range s.names {
		role := models.RoleCivilian
		switch i {
		case 0:
			role = models.RoleSheriff
		case 1:
			role = models.RoleDon
		case 2, 3:
			role = models.RoleMafia
		}
		state.Players = append(state.Players, &models.Player{
			ID:      "p" + string(rune('a'+i)),
			Name:    name,
			Role:    role,
			IsAlive: true,
		})
	}
	return state
}

func (s *ConsoleTestSuite) expectGetState(state *models.GameState) {
	s.mockSessions.EXPECT().
		GetState(gomock.Any(), &session.GetStateInput{SessionID: s.testSessionID}).
		Return(&session.GetStateOutput{State: state}, nil)
}

// expectUpdate runs the console's updater against state
func (s *ConsoleTestSuite) expectUpdate(state *models.GameState) {
	s.mockSessions.EXPECT().
		UpdateGameState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *session.UpdateGameStateInput) (*session.UpdateGameStateOutput, error) {
			s.Equal(s.testSessionID, input.SessionID)
			next, err := input.Updater(state)
			if err != nil {
				return nil, err
			}
			return &session.UpdateGameStateOutput{State: next}, nil
		})
}

func (s *ConsoleTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out})
	s.Error(err)

	_, err = New(&Config{
		In:             strings.NewReader(""),
		Out:            s.out,
		GameService:    s.mockGame,
		SessionService: s.mockSessions,
		RoleAssigner:   s.mockRoles,
	})
	s.Error(err)
}

func (s *ConsoleTestSuite) TestRegisterCommandRejectsDuplicates() {
	err := s.console.RegisterCommand(&HelpCommand{BaseCommand{Name: "HELP"}})
	s.Error(err)
}

func (s *ConsoleTestSuite) TestHelpListsCommands() {
	s.NoError(s.console.Execute(s.ctx, "help"))

	for _, usage := range []string{"start [name, name, ...]", "kill <name>", "confirm [<voter>] exile|keep", "quit"} {
		s.Contains(s.out.String(), usage)
	}
}

func (s *ConsoleTestSuite) TestBlankAndUnknownCommands() {
	s.NoError(s.console.Execute(s.ctx, "   "))
	s.Empty(s.out.String())

	s.NoError(s.console.Execute(s.ctx, "dance now"))
	s.Contains(s.out.String(), `Unknown command "dance"`)
}

func (s *ConsoleTestSuite) TestStartWithNames() {
	setup := models.NewGameState()
	night := s.table(models.PhaseNight)

	s.expectUpdate(setup)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), setup, game.StartGameAction{Names: []string{"Alice", " Bob", " Carol"}}).
		Return(night, nil)

	s.NoError(s.console.Execute(s.ctx, "start Alice, Bob, Carol"))

	s.Contains(s.out.String(), "NIGHT 1")
	s.Contains(s.out.String(), "Mafia, choose a victim with `kill <name>`: Alice, Eve, Frank")
}

func (s *ConsoleTestSuite) TestStartWithoutNamesSuggestsThem() {
	setup := models.NewGameState()

	s.mockRoles.EXPECT().
		SuggestNames(gomock.Any(), &roles.SuggestNamesInput{Count: roles.PlayerCount}).
		Return(&roles.SuggestNamesOutput{Names: s.names}, nil)
	s.expectUpdate(setup)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), setup, game.StartGameAction{Names: s.names}).
		Return(s.table(models.PhaseNight), nil)

	s.NoError(s.console.Execute(s.ctx, "start"))
}

func (s *ConsoleTestSuite) TestStartAfterGameOverDealsFreshTable() {
	over := s.table(models.PhaseResults)
	over.Winner = models.WinnerTown

	s.expectUpdate(over)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, state *models.GameState, action game.Action) (*models.GameState, error) {
			s.Equal(models.PhaseSetup, state.Phase)
			s.Empty(state.Players)
			return s.table(models.PhaseNight), nil
		})

	s.NoError(s.console.Execute(s.ctx, "start A, B"))
}

func (s *ConsoleTestSuite) TestKillResolvesNamesIgnoringCase() {
	night := s.table(models.PhaseNight)

	s.expectGetState(night)
	s.expectUpdate(night)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), night, game.MafiaKillAction{TargetID: "pe"}).
		Return(night, nil)

	s.NoError(s.console.Execute(s.ctx, "kill  eVe "))
}

func (s *ConsoleTestSuite) TestUnknownNameIsRendered() {
	s.expectGetState(s.table(models.PhaseNight))

	s.NoError(s.console.Execute(s.ctx, "investigate Mallory"))
	s.Contains(s.out.String(), "Who? Nobody at this table goes by that name.")
}

func (s *ConsoleTestSuite) TestVoteDefaultsToNextVoter() {
	voting := s.table(models.PhaseVoting)
	voting.Votes["pa"] = "pb"

	s.expectGetState(voting)
	s.expectUpdate(voting)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), voting, game.CastVoteAction{VoterID: "pb", TargetID: "pc"}).
		Return(voting, nil)

	s.NoError(s.console.Execute(s.ctx, "vote carol"))
}

func (s *ConsoleTestSuite) TestVoteWithExplicitVoter() {
	voting := s.table(models.PhaseVoting)

	s.expectGetState(voting)
	s.expectUpdate(voting)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), voting, game.CastVoteAction{VoterID: "pj", TargetID: "pb"}).
		Return(voting, nil)

	s.NoError(s.console.Execute(s.ctx, "vote Judy for Bob"))
}

func (s *ConsoleTestSuite) TestVoteOutsideVotingIsRendered() {
	s.expectGetState(s.table(models.PhaseDay))

	s.NoError(s.console.Execute(s.ctx, "vote Bob"))
	s.Contains(s.out.String(), "That can't happen right now.")
}

func (s *ConsoleTestSuite) TestConfirmParsesVoterAndDecision() {
	confirmation := s.table(models.PhaseVoting)
	confirmation.VotingType = models.VotingTypeConfirmation
	confirmation.TiedPlayerIDs = []string{"pj"}

	s.expectGetState(confirmation)
	s.expectUpdate(confirmation)
	s.mockGame.EXPECT().
		Apply(gomock.Any(), confirmation, game.CastConfirmationVoteAction{VoterID: "pd", Exile: false}).
		Return(confirmation, nil)

	s.NoError(s.console.Execute(s.ctx, "confirm dave KEEP"))
}

func (s *ConsoleTestSuite) TestConfirmRejectsUnknownDecision() {
	s.expectGetState(s.table(models.PhaseVoting))

	s.NoError(s.console.Execute(s.ctx, "confirm maybe"))
	s.Contains(s.out.String(), "`confirm exile` or `confirm keep`")
}

func (s *ConsoleTestSuite) TestContinueFollowsThePhase() {
	night := s.table(models.PhaseNight)
	s.expectGetState(night)
	s.expectUpdate(night)
	s.mockGame.EXPECT().Apply(gomock.Any(), night, game.AcknowledgeInvestigationAction{}).Return(s.table(models.PhaseDay), nil)

	s.NoError(s.console.Execute(s.ctx, "continue"))
	s.Contains(s.out.String(), "DAY 1")

	voting := s.table(models.PhaseVoting)
	voting.ShowVotingResults = true
	s.expectGetState(voting)
	s.expectUpdate(voting)
	s.mockGame.EXPECT().Apply(gomock.Any(), voting, game.AcknowledgeResultsAction{}).Return(s.table(models.PhaseNight), nil)

	s.NoError(s.console.Execute(s.ctx, "continue"))
}

func (s *ConsoleTestSuite) TestRuleErrorsAreRendered() {
	s.expectUpdate(s.table(models.PhaseDay))
	s.mockGame.EXPECT().Apply(gomock.Any(), gomock.Any(), game.PlayAgainAction{}).Return(nil, game.ErrInvalidPhase)

	s.NoError(s.console.Execute(s.ctx, "again"))
	s.Contains(s.out.String(), "That can't happen right now.")
}

func (s *ConsoleTestSuite) TestVoteResultsAreRendered() {
	voting := s.table(models.PhaseVoting)
	next := voting.Clone()
	next.ShowVotingResults = true
	next.Players[1].IsAlive = false
	next.LastVote = &models.VoteSummary{
		VotingType:   models.VotingTypeNormal,
		Counts:       map[string]int{"pb": 6, "pc": 4},
		TotalVotes:   10,
		TargetID:     "pb",
		EliminatedID: "pb",
	}
	next.GameLog = append(next.GameLog, models.LogEntry{
		ID:       "entry",
		Round:    1,
		Phase:    models.PhaseVoting,
		Kind:     models.EventKindElimination,
		Action:   "Voting complete. Bob received 6 votes and was eliminated.",
		TargetID: "pb",
	})

	s.expectUpdate(voting)
	s.mockGame.EXPECT().Apply(gomock.Any(), voting, gomock.Any()).Return(next, nil)

	_, err := s.console.apply(s.ctx, game.CastVoteAction{VoterID: "pj", TargetID: "pb"})
	s.Require().NoError(err)

	out := s.out.String()
	s.Contains(out, "The town has spoken. Bob is out with 6 votes.")
	s.Contains(out, "Bob          ###### 6 (60%)")
	s.Contains(out, "Carol        #### 4 (40%)")
	s.Contains(out, "Type `continue` to move on to the next night.")
}

func (s *ConsoleTestSuite) TestRunEndsSessionOnQuit() {
	console := s.newConsole("help\nquit\nstatus\n", s.console.messages)

	s.mockSessions.EXPECT().
		CreateSession(gomock.Any(), &session.CreateSessionInput{}).
		Return(&session.CreateSessionOutput{SessionID: s.testSessionID, State: models.NewGameState()}, nil)
	s.mockSessions.EXPECT().
		EndSession(gomock.Any(), &session.EndSessionInput{SessionID: s.testSessionID}).
		Return(&session.EndSessionOutput{Success: true}, nil)

	s.NoError(console.Run(s.ctx))

	s.Equal(s.testSessionID, console.SessionID())
	s.Contains(s.out.String(), "Welcome to Mafia")
	s.Contains(s.out.String(), "Goodbye.")
}

func (s *ConsoleTestSuite) TestRunStopsAtEndOfInput() {
	console := s.newConsole("", s.console.messages)

	s.mockSessions.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(&session.CreateSessionOutput{SessionID: s.testSessionID, State: models.NewGameState()}, nil)
	s.mockSessions.EXPECT().
		EndSession(gomock.Any(), gomock.Any()).
		Return(&session.EndSessionOutput{Success: true}, nil)

	s.NoError(console.Run(s.ctx))
}
