package cli

import (
	"context"
	"strings"

	"timetracker/internal/errors"
)

// maxCommandArgs is the number of arguments a command may take after its name
const maxCommandArgs = 1

const dateUsage = "<date> can be 'today', 'yesterday', number of day in week (e.g. show 2 for Tuesday) or a date in following format: 20161231"

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandSpec describes how a command is exposed on the command line
type CommandSpec struct {
	Name    string
	Use     string
	Short   string
	Long    string
	Command Command
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
	specs    []CommandSpec
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register(CommandSpec{
		Name:    "start",
		Use:     "start",
		Short:   "Start tracking work time",
		Long:    "Append a start mark for the current minute unless tracking is already running.",
		Command: NewStartCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "stop",
		Use:     "stop",
		Short:   "Stop tracking and show today's total",
		Long:    "Append a stop mark for the current minute if tracking is running, then print the total for today.",
		Command: NewStopCommand(app),
	})
	registry.Register(CommandSpec{
		Name:  "show",
		Use:   "show [date]",
		Short: "Show the total for a day",
		Long: `Print the time tracked on a day.

<date> can be:
  today, yesterday       relative to the current day (default: today)
  1..7                   day of the current week, 1 = Monday
  YYYYMMDD               an explicit date, e.g. 20161231`,
		Command: NewShowCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "show-week",
		Use:     "show-week",
		Short:   "Show the total for the current week",
		Long:    "Print the time tracked in the current ISO week (Monday to Sunday).",
		Command: NewShowWeekCommand(app),
	})
	registry.Register(CommandSpec{
		Name:    "current",
		Use:     "current",
		Short:   "Show the running session",
		Long:    "Print when the running session started and how long it has been running.",
		Command: NewCurrentCommand(app),
	})

	return registry
}

// Register adds a command to the registry, replacing any command of the same name
func (r *CommandRegistry) Register(spec CommandSpec) {
	r.commands[spec.Name] = spec.Command
	for i := range r.specs {
		if r.specs[i].Name == spec.Name {
			r.specs[i] = spec
			return
		}
	}
	r.specs = append(r.specs, spec)
}

// Get returns the command registered under name
func (r *CommandRegistry) Get(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Specs returns the registered commands in registration order
func (r *CommandRegistry) Specs() []CommandSpec {
	return r.specs
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.specs))
	for _, spec := range r.specs {
		names = append(names, spec.Use)
	}
	return "Available commands:\n" +
		strings.Join(names, ", ") + ".\n" +
		dateUsage
}
