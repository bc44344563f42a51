package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/enescakir/emoji"

	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
	"github.com/KirkDiggler/mafia/internal/services/roles"
	"github.com/KirkDiggler/mafia/internal/services/session"
)

// ErrQuit stops the command loop
var ErrQuit = errors.New("quit")

// Console is a line-oriented moderator console for one session
type Console struct {
	in  io.Reader
	out io.Writer

	games    game.Service
	sessions session.Service
	roles    roles.Service
	messages messaging.Service

	commands map[string]CommandHandler
	order    []string

	sessionID string
}

// Config holds the configuration for the console
type Config struct {
	// In is read one command per line
	In io.Reader

	// Out receives everything the console prints
	Out io.Writer

	GameService      game.Service
	SessionService   session.Service
	RoleAssigner     roles.Service
	MessagingService messaging.Service
}

// New creates a console with every command registered
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.RoleAssigner == nil {
		return nil, errors.New("role assigner cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	c := &Console{
		in:       cfg.In,
		out:      cfg.Out,
		games:    cfg.GameService,
		sessions: cfg.SessionService,
		roles:    cfg.RoleAssigner,
		messages: cfg.MessagingService,
		commands: make(map[string]CommandHandler),
	}

	for _, cmd := range defaultCommands() {
		if err := c.RegisterCommand(cmd); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RegisterCommand adds a command to the console
func (c *Console) RegisterCommand(cmd CommandHandler) error {
	name := strings.ToLower(cmd.GetName())
	if _, exists := c.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	c.commands[name] = cmd
	c.order = append(c.order, name)
	return nil
}

// SessionID returns the session the console drives, empty before Run
func (c *Console) SessionID() string {
	return c.sessionID
}

// Run opens a session and executes commands until quit, end of input or
// ctx is cancelled. The session is ended on the way out.
func (c *Console) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	created, err := c.sessions.CreateSession(ctx, &session.CreateSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	c.sessionID = created.SessionID

	defer func() {
		if _, err := c.sessions.EndSession(context.WithoutCancel(ctx), &session.EndSessionInput{
			SessionID: c.sessionID,
		}); err != nil {
			logger.Warnw("failed to end session", "sessionID", c.sessionID, "error", err)
		}
	}()

	logger.Debugw("console session started", "sessionID", c.sessionID)

	c.printf("%s Welcome to Mafia. Type `help` for commands.\n", emoji.GameDie)
	c.renderBanner(ctx, created.State)
	c.renderPrompt(created.State)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := c.Execute(ctx, line); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// Execute runs a single command line. Game and session errors are rendered
// and swallowed; only ErrQuit is returned.
func (c *Console) Execute(ctx context.Context, line string) error {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return nil
	}

	cmd, ok := c.commands[strings.ToLower(name)]
	if !ok {
		c.printf("%s Unknown command %q. Type `help` for commands.\n", emoji.CrossMark, name)
		return nil
	}

	err := cmd.Handle(ctx, c, strings.TrimSpace(args))
	if err == nil || errors.Is(err, ErrQuit) {
		return err
	}

	logging.FromContext(ctx).Debugw("command failed", "command", cmd.GetName(), "error", err)
	c.renderError(ctx, err)
	return nil
}

// state returns the current snapshot of the session
func (c *Console) state(ctx context.Context) (*models.GameState, error) {
	out, err := c.sessions.GetState(ctx, &session.GetStateInput{SessionID: c.sessionID})
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

// update runs fn under the session lock and narrates what changed
func (c *Console) update(ctx context.Context, fn func(state *models.GameState) (*models.GameState, error)) (*models.GameState, error) {
	var prev *models.GameState
	out, err := c.sessions.UpdateGameState(ctx, &session.UpdateGameStateInput{
		SessionID: c.sessionID,
		Updater: func(state *models.GameState) (*models.GameState, error) {
			prev = state
			return fn(state)
		},
	})
	if err != nil {
		return nil, err
	}

	c.narrate(ctx, prev, out.State)
	return out.State, nil
}

// apply sends one action through the rules engine
func (c *Console) apply(ctx context.Context, action game.Action) (*models.GameState, error) {
	logging.FromContext(ctx).Debugw("applying action", "action", action.Name(), "sessionID", c.sessionID)

	return c.update(ctx, func(state *models.GameState) (*models.GameState, error) {
		return c.games.Apply(ctx, state, action)
	})
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

// findPlayer resolves a typed name against the roster, ignoring case
func findPlayer(state *models.GameState, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	for _, p := range state.Players {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, game.ErrPlayerNotFound
}
