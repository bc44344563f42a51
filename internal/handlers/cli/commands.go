package cli

import (
	"context"
	"strings"

	"github.com/enescakir/emoji"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/roles"
)

func defaultCommands() []CommandHandler {
	return []CommandHandler{
		&StartCommand{BaseCommand{Name: "start", Args: "[name, name, ...]", Description: "deal roles to ten players, random names if none given"}},
		&TargetCommand{
			BaseCommand: BaseCommand{Name: "kill", Args: "<name>", Description: "the mafia chooses tonight's victim"},
			action:      func(id string) game.Action { return game.MafiaKillAction{TargetID: id} },
		},
		&TargetCommand{
			BaseCommand: BaseCommand{Name: "investigate", Args: "<name>", Description: "the sheriff checks one player"},
			action:      func(id string) game.Action { return game.InvestigateAction{TargetID: id} },
		},
		&ContinueCommand{BaseCommand{Name: "continue", Description: "end the night, or leave the vote results"}},
		&BallotCommand{BaseCommand{Name: "ballot", Description: "end the day discussion and open the vote"}},
		&VoteCommand{BaseCommand{Name: "vote", Args: "[<voter> for] <name>", Description: "cast a ballot, the next voter by default"}},
		&ConfirmCommand{BaseCommand{Name: "confirm", Args: "[<voter>] exile|keep", Description: "cast an exile or keep ballot"}},
		&StatusCommand{BaseCommand{Name: "status", Description: "show the table and what the game is waiting for"}},
		&RolesCommand{BaseCommand{Name: "roles", Description: "show every secret role, moderator eyes only"}},
		&LogCommand{BaseCommand{Name: "log", Description: "show the game log, newest round first"}},
		&AgainCommand{BaseCommand{Name: "again", Description: "play again with the same names"}},
		&HelpCommand{BaseCommand{Name: "help", Description: "list commands"}},
		&QuitCommand{BaseCommand{Name: "quit", Description: "end the session"}},
	}
}

// StartCommand deals a new game
type StartCommand struct {
	BaseCommand
}

func (cmd *StartCommand) Handle(ctx context.Context, c *Console, args string) error {
	var names []string
	if args == "" {
		suggested, err := c.roles.SuggestNames(ctx, &roles.SuggestNamesInput{Count: roles.PlayerCount})
		if err != nil {
			return err
		}
		names = suggested.Names
	} else {
		names = strings.Split(args, ",")
	}

	_, err := c.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		// A finished game may be replaced by a fresh table.
		if state.IsOver() {
			state = models.NewGameState()
		}
		return c.games.Apply(ctx, state, game.StartGameAction{Names: names})
	})
	return err
}

// TargetCommand applies a night action against a named player
type TargetCommand struct {
	BaseCommand
	action func(targetID string) game.Action
}

func (cmd *TargetCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	target, err := findPlayer(state, args)
	if err != nil {
		return err
	}

	_, err = c.apply(ctx, cmd.action(target.ID))
	return err
}

// ContinueCommand acknowledges whatever the table is looking at
type ContinueCommand struct {
	BaseCommand
}

func (cmd *ContinueCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	var action game.Action
	switch {
	case state.Phase == models.PhaseVoting:
		action = game.AcknowledgeResultsAction{}
	default:
		action = game.AcknowledgeInvestigationAction{}
	}

	_, err = c.apply(ctx, action)
	return err
}

// BallotCommand ends the day discussion
type BallotCommand struct {
	BaseCommand
}

func (cmd *BallotCommand) Handle(ctx context.Context, c *Console, args string) error {
	_, err := c.apply(ctx, game.StartVotingAction{})
	return err
}

// VoteCommand casts a normal or runoff ballot
type VoteCommand struct {
	BaseCommand
}

func (cmd *VoteCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	voterName, targetName, explicit := strings.Cut(args, " for ")
	if !explicit {
		targetName = voterName
	}

	voter, err := resolveVoter(state, voterName, explicit)
	if err != nil {
		return err
	}

	target, err := findPlayer(state, targetName)
	if err != nil {
		return err
	}

	_, err = c.apply(ctx, game.CastVoteAction{VoterID: voter.ID, TargetID: target.ID})
	return err
}

// ConfirmCommand casts an exile or keep ballot
type ConfirmCommand struct {
	BaseCommand
}

func (cmd *ConfirmCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	voterName, decision := "", args
	if i := strings.LastIndex(args, " "); i >= 0 {
		voterName, decision = args[:i], args[i+1:]
	}

	var exile bool
	switch strings.ToLower(decision) {
	case "exile", "yes":
		exile = true
	case "keep", "no":
		exile = false
	default:
		c.printf("%s Say `confirm exile` or `confirm keep`.\n", emoji.CrossMark)
		return nil
	}

	voter, err := resolveVoter(state, voterName, voterName != "")
	if err != nil {
		return err
	}

	_, err = c.apply(ctx, game.CastConfirmationVoteAction{VoterID: voter.ID, Exile: exile})
	return err
}

// StatusCommand shows the table
type StatusCommand struct {
	BaseCommand
}

func (cmd *StatusCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	c.renderStatus(state, state.IsOver())
	c.renderPrompt(state)
	return nil
}

// RolesCommand reveals every role to the moderator
type RolesCommand struct {
	BaseCommand
}

func (cmd *RolesCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	c.renderStatus(state, true)
	return nil
}

// LogCommand prints the game log grouped by round
type LogCommand struct {
	BaseCommand
}

func (cmd *LogCommand) Handle(ctx context.Context, c *Console, args string) error {
	state, err := c.state(ctx)
	if err != nil {
		return err
	}

	c.renderLog(state)
	return nil
}

// AgainCommand replays with the same names
type AgainCommand struct {
	BaseCommand
}

func (cmd *AgainCommand) Handle(ctx context.Context, c *Console, args string) error {
	_, err := c.apply(ctx, game.PlayAgainAction{})
	return err
}

// HelpCommand lists the registered commands
type HelpCommand struct {
	BaseCommand
}

func (cmd *HelpCommand) Handle(ctx context.Context, c *Console, args string) error {
	c.println("Commands:")
	for _, name := range c.order {
		c.printf("  %s\n", c.commands[name].GetUsage())
	}
	return nil
}

// QuitCommand ends the session
type QuitCommand struct {
	BaseCommand
}

func (cmd *QuitCommand) Handle(ctx context.Context, c *Console, args string) error {
	c.printf("%s Goodbye.\n", emoji.ChequeredFlag)
	return ErrQuit
}

// resolveVoter returns the named voter, or the next voter in seating order
func resolveVoter(state *models.GameState, name string, explicit bool) (*models.Player, error) {
	if explicit {
		return findPlayer(state, name)
	}

	voter, ok := game.NextVoter(state)
	if !ok {
		if state.Phase != models.PhaseVoting {
			return nil, game.ErrInvalidPhase
		}
		return nil, game.ErrResultsPending
	}
	return voter, nil
}
