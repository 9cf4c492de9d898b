package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"timetracker/internal/api"
	"timetracker/internal/config"
)

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	out         io.Writer
	registry    *CommandRegistry
}

// NewApp creates a new CLI application instance writing to stdout
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	return NewAppWithOutput(businessAPI, cfg, os.Stdout)
}

// NewAppWithOutput creates a new CLI application instance writing to out
func NewAppWithOutput(businessAPI api.BusinessAPI, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Registry returns the commands known to the application
func (a *App) Registry() *CommandRegistry {
	return a.registry
}

// Run executes the command named by args[0]. A missing or unknown command,
// or more arguments than a command takes, prints the usage text and is not
// an error.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > maxCommandArgs+1 {
		return a.printUsage()
	}

	commandName := args[0]
	if _, ok := a.registry.Get(commandName); !ok {
		fmt.Fprintf(a.out, "Unknown command: %s\n", commandName)
		return a.printUsage()
	}

	return a.registry.Execute(ctx, commandName, args[1:])
}

func (a *App) printUsage() error {
	_, err := fmt.Fprintln(a.out, a.registry.GetUsage())
	return err
}

func (a *App) printer() *ReportPrinter {
	return NewReportPrinter(a.out, a.config.Output.Format)
}
