// Package commands implements the CLI commands for mcphub.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd"
	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/market"
	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/server"
	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/update"
	"github.com/thoreinstein/mcphub/internal/config"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/logging"
)

// skipConfigCheck marks commands that run even when the config file is
// invalid, so the user can find and repair it.
const skipConfigCheck = "mcphub/skip-config-check"

// debugEnv enables debug logging when no -v flag is given.
const debugEnv = "MCPHUB_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("mcphub version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(market.Cmd)
	rootCmd.AddCommand(server.Cmd)
	rootCmd.AddCommand(update.Cmd)
}

func initConfig() {
	config.Init()
	var cfg *config.Config
	cfg, configLoadErr = config.Load("")
	if configLoadErr == nil {
		flags.SetConfig(cfg)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcphub",
	Short: "Configure MCP integrations from a template marketplace",
	Long: `mcphub manages Model Context Protocol (MCP) server integrations.

Browse a marketplace of integration templates, fill in the fields a template
asks for, and mcphub writes the resulting server configuration to your
settings file. Configured servers can be listed with their last known
availability, refreshed, inspected and removed.

mcphub can also check whether a newer release is available, either directly
or through a small HTTP service.`,
	Example: `  # Browse the marketplace
  mcphub market list

  # Add the GitHub integration
  mcphub market install github

  # List configured servers and their availability
  mcphub server list

  # Check for a newer release
  mcphub update check

  See Also: mcphub config, mcphub serve`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	cfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		cfg.File = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a config load failure for every command except the
// ones that must work without a valid config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version":
		return nil
	}
	if cmd.Annotations[skipConfigCheck] == "true" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
