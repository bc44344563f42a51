package cli

import (
	"context"
	"fmt"
)

// CommandHandler defines the interface for console commands
type CommandHandler interface {
	// GetName returns the word that invokes the command
	GetName() string

	// GetUsage returns a one-line help entry
	GetUsage() string

	// Handle runs the command with everything typed after its name
	Handle(ctx context.Context, c *Console, args string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Args        string
	Description string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetUsage returns the command's help entry
func (c *BaseCommand) GetUsage() string {
	usage := c.Name
	if c.Args != "" {
		usage = fmt.Sprintf("%s %s", c.Name, c.Args)
	}
	return fmt.Sprintf("%-28s %s", usage, c.Description)
}
