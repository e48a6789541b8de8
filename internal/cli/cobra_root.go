package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	config  *config.Config
	build   AppBuilder
	version string
}

// NewRootCommand creates the root cobra command with global flags.
// build wires the application once configuration is resolved.
func NewRootCommand(build AppBuilder, version string) *RootCommand {
	root := &RootCommand{
		loader:  config.NewLoader(),
		build:   build,
		version: version,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "An interactive task manager",
		Long: `Task Manager (tm) is an interactive menu for keeping a short list of tasks.

FEATURES:
  • Add tasks with an optional description
  • List, edit, complete and remove tasks by their number in the list
  • Keep tasks in memory or in a SQLite database

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file:
    TM_CONFIG                              YAML config file (same as --config)

  Store Configuration:
    TM_STORE_BACKEND                       Task store: memory or sqlite (default: memory)
    TM_SQLITE_DSN                          SQLite data source (default: :memory:)

  Validation Configuration:
    TM_VALIDATION_TASK_NAME_MAX            Max task name length, 0 for no limit (default: 0)

  Display Configuration:
    TM_DISPLAY_EMOJI                       Emoji output: auto, always or never (default: auto)
    TM_DISPLAY_SEPARATOR_WIDTH             Task list separator width (default: 40)

  Application Configuration:
    TM_APP_TIMEOUT                         Timeout for each menu action (default: 10s)
    TM_DEBUG                               Print debug traces to stderr

GETTING HELP:
  tm [command] --help                      # Get help for any specific command
  tm completion bash                       # Generate bash completion script`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runMenu(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the resolved configuration, nil before a command has run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file (overrides TM_CONFIG)")

	// Store configuration
	flags.String("store", "", "Task store backend: memory or sqlite (overrides TM_STORE_BACKEND)")
	flags.String("sqlite-dsn", "", "SQLite data source name (overrides TM_SQLITE_DSN)")

	// Validation configuration
	flags.Int("task-name-max-length", 0, "Maximum task name length, 0 for no limit (overrides TM_VALIDATION_TASK_NAME_MAX)")

	// Display configuration
	flags.Bool("plain", false, "Disable emoji output (overrides TM_DISPLAY_EMOJI)")
	flags.Int("separator-width", 0, "Task list separator width (overrides TM_DISPLAY_SEPARATOR_WIDTH)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout for each menu action (overrides TM_APP_TIMEOUT)")
	flags.Bool("debug", false, "Print debug traces to stderr (overrides TM_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tm version %s\n", r.version)
			return nil
		},
	}

	r.cmd.AddCommand(versionCmd)
}

// runMenu wires the application and runs the interactive menu
func (r *RootCommand) runMenu(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	app, err := r.build(ctx, r.config, out)
	if err != nil {
		return NewErrorHandler().Handle("start task manager", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logging.Debugf("failed to close task store: %v\n", closeErr)
		}
	}()

	return NewMenu(app, cmd.InOrStdin(), out).Run(ctx)
}

// loadConfig resolves configuration from defaults, file, environment and flags
func (r *RootCommand) loadConfig() error {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return err
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return NewErrorHandler().Handle("load configuration", err)
	}

	r.config = cfg
	if cfg.Application.Debug {
		logging.EnableDebug(true)
	}
	logging.Debugf("config: store=%s emoji=%s timeout=%s\n", cfg.Store.Backend, cfg.Display.Emoji, cfg.Application.Timeout)
	return nil
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		path, err := flags.GetString("config")
		if err != nil {
			return nil, err
		}
		overrides.ConfigFile = &path
	}

	// Store configuration
	if flags.Changed("store") {
		backend, err := flags.GetString("store")
		if err != nil {
			return nil, err
		}
		overrides.StoreBackend = &backend
	}
	if flags.Changed("sqlite-dsn") {
		dsn, err := flags.GetString("sqlite-dsn")
		if err != nil {
			return nil, err
		}
		overrides.SQLiteDSN = &dsn
	}

	// Validation configuration
	if flags.Changed("task-name-max-length") {
		maxLength, err := flags.GetInt("task-name-max-length")
		if err != nil {
			return nil, err
		}
		overrides.TaskNameMaxLength = &maxLength
	}

	// Display configuration
	if plain, _ := flags.GetBool("plain"); plain {
		never := config.EmojiNever
		overrides.Emoji = &never
	}
	if flags.Changed("separator-width") {
		width, err := flags.GetInt("separator-width")
		if err != nil {
			return nil, err
		}
		overrides.SeparatorWidth = &width
	}

	// Application configuration
	if flags.Changed("app-timeout") {
		timeout, err := flags.GetDuration("app-timeout")
		if err != nil {
			return nil, err
		}
		overrides.Timeout = &timeout
	}
	if flags.Changed("debug") {
		debug, err := flags.GetBool("debug")
		if err != nil {
			return nil, err
		}
		overrides.Debug = &debug
	}

	return overrides, nil
}
