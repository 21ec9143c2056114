// Package update provides the update command group.
package update

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/api"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/release"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(checkCmd)
}

// Cmd is the update command that groups release-related subcommands.
var Cmd = &cobra.Command{
	Use:   "update",
	Short: "Check for mcphub releases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a newer release is available",
	Long: `Compare the running version with the latest published release.

The release tag may carry a leading "v"; versions are compared component by
component as dotted numbers, with missing components treated as zero.`,
	Example: `  # Check for updates
  mcphub update check

  # Same result as the HTTP action
  mcphub update check --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	checker, err := flags.NewChecker()
	if err != nil {
		return err
	}

	result, err := checker.Check(cmd.Context())
	if err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "Failed to check for updates"),
			"Check your network connection and the release.owner and release.repo settings",
		)
	}

	if checkJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(api.NewUpdateResponse(result))
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, r release.Result) {
	switch {
	case r.LatestVersion == "":
		fmt.Fprintln(w, r.Message)
	case r.UpdateAvailable:
		fmt.Fprintf(w, "%s %s -> %s\n", color.New(color.FgYellow, color.Bold).Sprint("Update available:"),
			r.CurrentVersion, r.LatestVersion)
		if r.ReleaseURL != "" {
			fmt.Fprintf(w, "  Release:   %s\n", r.ReleaseURL)
		}
		if !r.PublishedAt.IsZero() {
			fmt.Fprintf(w, "  Published: %s\n", r.PublishedAt.Format("2006-01-02"))
		}
		if notes := strings.TrimSpace(r.ReleaseNotes); notes != "" {
			fmt.Fprintf(w, "\n%s\n", notes)
		}
	default:
		fmt.Fprintf(w, "%s mcphub %s is the latest version\n", color.GreenString("✓"), r.CurrentVersion)
	}
}
