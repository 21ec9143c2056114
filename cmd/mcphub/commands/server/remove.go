package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/store"
)

var removeForce bool

func init() {
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "Skip confirmation prompt")
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a configured MCP server",
	Long: `Remove an MCP server from the settings file.

A confirmation prompt is shown before removal unless --force is specified.`,
	Example: `  # Remove a server (with confirmation)
  mcphub server remove github

  # Remove a server without confirmation
  mcphub server remove github --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := flags.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		return runRemoveWithIO(cmd.Context(), s, args[0], cmd.OutOrStdout(), os.Stdin)
	},
}

// runRemoveWithIO allows injecting a store and IO for testing.
func runRemoveWithIO(ctx context.Context, s store.Store, name string, w io.Writer, r io.Reader) error {
	settings, err := s.Settings(ctx)
	if err != nil {
		return errors.Wrap(err, "reading settings")
	}

	if _, ok := settings.Servers().Get(name); !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "server %q", name),
			"Run 'mcphub server list' to see configured servers",
		)
	}

	if !removeForce && !confirmRemoval(w, r, name) {
		fmt.Fprintln(w, "removal cancelled")
		return nil
	}

	settings.Servers().Delete(name)
	if err := s.UpdateSettings(ctx, settings); err != nil {
		return errors.Wrap(err, "Failed to delete server")
	}

	fmt.Fprintf(w, "Server %q deleted successfully\n", name)
	return nil
}

// confirmRemoval prompts the user to confirm server removal.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirmRemoval(w io.Writer, r io.Reader, name string) bool {
	fmt.Fprintf(w, "Remove MCP server %q? [y/N]: ", name)

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
