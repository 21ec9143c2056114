package server

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/store"
)

func init() {
	Cmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Check the availability of every configured server",
	Long: `Probe every configured server and record whether it is reachable.

Local (stdio) servers are available when their command is found on PATH.
Remote servers are available when their URL answers with a status below 500.
If the check cannot complete, previously recorded statuses are kept.`,
	Example: `  # Refresh and list
  mcphub server refresh`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := flags.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		return runRefreshWithWriter(cmd.Context(), s, cmd.OutOrStdout())
	},
}

// runRefreshWithWriter allows injecting a store and writer for testing.
func runRefreshWithWriter(ctx context.Context, s store.Store, w io.Writer) error {
	if err := s.CheckAvailability(ctx); err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "Failed to check server availability"),
			"Previous availability results were kept",
		)
	}
	return runListWithWriter(ctx, s, w)
}
