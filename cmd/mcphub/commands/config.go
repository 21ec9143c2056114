package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/config"
	"github.com/thoreinstein/mcphub/internal/editor"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/paths"
	"github.com/thoreinstein/mcphub/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the mcphub configuration",
	Long: `Inspect and create the mcphub configuration file.

Configuration is read from config.yaml in the current directory, then
$MCPHUB_CONFIG_DIR, then the XDG config directory. Every key can be
overridden with an MCPHUB_ environment variable, for example
MCPHUB_SERVE_ADDR or MCPHUB_PROBE_TIMEOUT.`,
	Example: `  # Show the effective configuration
  mcphub config show

  # Print the config file location
  mcphub config path

  # Write a config file with default values
  mcphub config init

  # Open the config file in $EDITOR
  mcphub config edit`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file location",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		path := config.FileUsed()
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with default values",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	RunE:        runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Long: `Open the config file in $MCPHUB_EDITOR, $EDITOR or $VISUAL, then
validate it. Run 'mcphub config init' first if no config file exists.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	RunE:        runConfigEdit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if path := config.FileUsed(); path != "" {
		fmt.Fprintf(w, "# %s\n", path)
	} else {
		fmt.Fprintln(w, "# no config file found, defaults in effect")
	}

	data, err := yaml.Marshal(flags.Config())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := config.DefaultPath()

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrAlreadyExists, "config file %s", path),
			"Use --force to overwrite it",
		)
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := config.FileUsed()
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "config file %s", path),
			"Run 'mcphub config init' to create it",
		)
	}

	if err := editor.Open(cmd.Context(), path); err != nil {
		return err
	}

	config.Init()
	if _, err := config.Load(path); err != nil {
		return errors.NewConfigError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}
