package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/mcp"
	"github.com/thoreinstein/mcphub/internal/redact"
	"github.com/thoreinstein/mcphub/internal/store"
	"github.com/thoreinstein/mcphub/internal/view"
)

// maxSummary is the widest endpoint shown in the table.
const maxSummary = 50

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured MCP servers",
	Long: `List configured MCP servers in the order they were added, with the
availability recorded by the last 'mcphub server refresh'.

Servers that have never been checked are shown as unavailable.`,
	Example: `  # List servers
  mcphub server list

  # Output as JSON
  mcphub server list --json

  See Also:
    mcphub server refresh  - Check availability now`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := flags.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		return runListWithWriter(cmd.Context(), s, cmd.OutOrStdout())
	},
}

// entryJSON is one server in JSON output.
type entryJSON struct {
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Transport string   `json:"transport"`
	Summary   string   `json:"summary"`
	Status    string   `json:"status"`
	Tools     []string `json:"tools,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// listJSONOutput is the JSON document printed by --json.
type listJSONOutput struct {
	AvailableCount int         `json:"availableCount"`
	Servers        []entryJSON `json:"servers"`
}

// runListWithWriter allows injecting a store and writer for testing.
func runListWithWriter(ctx context.Context, s store.Store, w io.Writer) error {
	servers, err := s.Servers(ctx)
	if err != nil {
		return errors.Wrap(err, "listing servers")
	}
	list := view.Build(servers)

	if listJSON {
		return outputJSON(w, list)
	}
	return outputTabular(w, list)
}

func outputJSON(w io.Writer, list view.List) error {
	out := listJSONOutput{
		AvailableCount: list.AvailableCount,
		Servers:        make([]entryJSON, 0, len(list.Entries)),
	}
	for _, e := range list.Entries {
		out.Servers = append(out.Servers, entryJSON{
			Name:      e.Name,
			Icon:      string(e.Icon),
			Transport: string(e.Transport),
			Summary:   redact.URL(e.Summary),
			Status:    string(e.Status),
			Tools:     e.Tools,
			Error:     e.Error,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputTabular(w io.Writer, list view.List) error {
	fmt.Fprintln(w, color.New(color.Bold).Sprint(list.Badge()))

	if list.Empty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No MCP servers configured")
		fmt.Fprintln(w, "Run 'mcphub market list' to browse integrations")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tKIND\tTRANSPORT\tCOMMAND/URL\tSTATUS\tTOOLS")
	for _, e := range list.Entries {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			e.Icon,
			e.Transport,
			truncate(redact.URL(e.Summary), maxSummary),
			statusColor(e.Status).Sprint(e.Status),
			toolsColumn(e),
		)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flushing tabwriter")
	}

	for _, e := range list.Entries {
		if e.Error != "" {
			fmt.Fprintf(w, "  %s: %s\n", e.Name, e.Error)
		}
	}
	return nil
}

func statusColor(s mcp.Status) *color.Color {
	switch s {
	case mcp.StatusAvailable:
		return color.New(color.FgGreen)
	case mcp.StatusError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func toolsColumn(e view.Entry) string {
	if len(e.Tools) == 0 {
		return "-"
	}
	return strings.Join(e.Tools, ", ")
}

// truncate shortens s to n runes, ending with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
