package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"timetracker/internal/api"
	"timetracker/internal/config"
	"timetracker/internal/logging"
	"timetracker/internal/repository"
)

const annotationNeedsStore = "tt/needs-store"

// StoreFactory opens the log store described by cfg
type StoreFactory func(cfg *config.Config) (repository.LogStore, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	factory StoreFactory
	newAPI  func(repository.LogStore) api.BusinessAPI
	store   repository.LogStore
}

// NewRootCommand creates the root cobra command with global flags.
// The store is opened by factory only when a tracking command runs.
func NewRootCommand(factory StoreFactory) *RootCommand {
	root := &RootCommand{
		app:     NewApp(nil, config.NewConfig()),
		factory: factory,
		newAPI:  api.NewBusinessAPI,
	}

	root.cmd = &cobra.Command{
		Use:   "tt",
		Short: "A command-line work time tracker",
		Long: `Time Tracker (tt) records when you start and stop working and adds up the
time spent per day or per week.

EXAMPLES:
  tt start                                 # Start tracking
  tt stop                                  # Stop tracking and print today's total
  tt show                                  # Total for today
  tt show yesterday                        # Total for yesterday
  tt show 2                                # Total for Tuesday of this week
  tt show 20161231                         # Total for 31 December 2016
  tt show-week                             # Total for the current ISO week
  tt current                               # Show the running session

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Log Configuration:
    TT_LOG_DIR                             Log directory (default: home directory)
    TT_LOG_FILENAME                        Log filename (default: timetracker.txt)
    TT_LOG_DIR_PERMISSIONS                 Permissions for a new log directory (default: 755)

  Storage Configuration:
    TT_STORAGE_BACKEND                     file or sqlite (default: file)
    TT_DB_FILENAME                         SQLite filename inside the log directory (default: timetracker.db)
    TT_STORAGE_LOCKING                     Advisory file locking (default: true)

  Application Configuration:
    TT_APP_TIMEOUT                         Application timeout (default: 30s)
    TT_APP_VERBOSE                         Enable verbose output (default: false)
    TT_OUTPUT_FORMAT                       text or json (default: text)
    TT_DEBUG                               Print debug output to stderr when set

GETTING HELP:
  tt [command] --help                      # Get help for any specific command
  tt completion bash                       # Generate bash completion script`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNeedsStore] != "true" {
				return nil
			}
			return root.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root.app.out = cmd.OutOrStdout()
			return root.app.Run(cmd.Context(), args)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command and closes the store afterwards
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.closeStore()
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Log configuration
	flags.String("log-dir", "", "Log directory (overrides TT_LOG_DIR)")
	flags.String("log-file", "", "Log filename (overrides TT_LOG_FILENAME)")

	// Storage configuration
	flags.String("backend", "", "Storage backend: file or sqlite (overrides TT_STORAGE_BACKEND)")
	flags.String("db-file", "", "SQLite filename (overrides TT_DB_FILENAME)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TT_APP_VERBOSE)")
	flags.String("output", "", "Output format: text or json (overrides TT_OUTPUT_FORMAT)")
}

// addSubcommands builds one cobra command per registered command.
// Argument counts are checked by App.Run, which prints usage instead of failing.
func (r *RootCommand) addSubcommands() {
	for _, spec := range r.app.registry.Specs() {
		name := spec.Name
		r.cmd.AddCommand(&cobra.Command{
			Use:         spec.Use,
			Short:       spec.Short,
			Long:        spec.Long,
			Args:        cobra.ArbitraryArgs,
			Annotations: map[string]string{annotationNeedsStore: "true"},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
				defer cancel()

				return r.app.Run(ctx, append([]string{name}, args...))
			},
		})
	}
}

// prepare loads the configuration, opens the store and wires the API
func (r *RootCommand) prepare(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithOverrides(getOverridesFromFlags(cmd.Flags()))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Application.Verbose {
		logging.EnableDebug(true)
	}
	if cfg.Output.Format == config.OutputJSON {
		logging.SetOutput(cmd.ErrOrStderr(), logging.FormatJSON)
	}
	logging.Debugln("configuration loaded",
		logging.F("backend", cfg.Storage.Backend),
		logging.F("log", cfg.GetLogPath()),
		logging.F("output", cfg.Output.Format))

	store, err := r.factory(cfg)
	if err != nil {
		return err
	}

	r.store = store
	r.app.businessAPI = r.newAPI(store)
	r.app.config = cfg
	r.app.out = cmd.OutOrStdout()
	return nil
}

func (r *RootCommand) closeStore() {
	if r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		logging.Debugln("failed to close store", logging.F("error", err.Error()))
	}
	r.store = nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil && r.app.config.Application.Timeout > 0 {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// getOverridesFromFlags collects the flags that were set explicitly
func getOverridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		overrides.LogDir = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		overrides.LogFilename = &v
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("db-file") {
		v, _ := flags.GetString("db-file")
		overrides.DBFilename = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		overrides.OutputFormat = &v
	}

	return overrides
}
