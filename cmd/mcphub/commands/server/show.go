package server

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/mcp"
	"github.com/thoreinstein/mcphub/internal/redact"
	"github.com/thoreinstein/mcphub/internal/store"
)

var (
	showFormat      string
	showShowSecrets bool
)

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "", "Print the configuration as json, yaml or toml")
	showCmd.Flags().BoolVar(&showShowSecrets, "show-secrets", false, "Reveal masked headers and environment values")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show details of a configured MCP server",
	Long: `Show a configured MCP server's configuration and last known availability.

With --format the configuration is printed in the settings file layout,
ready to paste into another MCP client. Header and environment values that
look secret are masked unless --show-secrets is given.`,
	Example: `  # Show a server
  mcphub server show github

  # Export as TOML
  mcphub server show github --format toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := flags.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		return runShowWithWriter(cmd.Context(), s, args[0], cmd.OutOrStdout())
	},
}

// runShowWithWriter allows injecting a store and writer for testing.
func runShowWithWriter(ctx context.Context, s store.Store, name string, w io.Writer) error {
	var format mcp.Format
	if showFormat != "" {
		f, err := mcp.ParseFormat(showFormat)
		if err != nil {
			return errors.NewUserError(err, "Use --format json, yaml or toml")
		}
		format = f
	}

	servers, err := s.Servers(ctx)
	if err != nil {
		return errors.Wrap(err, "listing servers")
	}
	idx := slices.IndexFunc(servers, func(srv mcp.Server) bool { return srv.Name == name })
	if idx < 0 {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "server %q", name),
			"Run 'mcphub server list' to see configured servers",
		)
	}
	srv := servers[idx]

	cfg := srv.Config
	if !showShowSecrets {
		cfg = redactConfig(cfg)
	}

	if format != "" {
		return mcp.Encode(w, format, map[string]mcp.ServerConfig{srv.Name: cfg})
	}
	printServer(w, srv, cfg)
	return nil
}

func printServer(w io.Writer, srv mcp.Server, cfg mcp.ServerConfig) {
	fmt.Fprintf(w, "Name:      %s\n", srv.Name)
	fmt.Fprintf(w, "Transport: %s\n", cfg.Transport())

	switch c := cfg.(type) {
	case *mcp.StdioConfig:
		fmt.Fprintf(w, "Command:   %s\n", c.Command)
		if len(c.Args) > 0 {
			fmt.Fprintf(w, "Args:      %s\n", strings.Join(c.Args, " "))
		}
		printMap(w, "Env", c.Env)
	case *mcp.RemoteConfig:
		fmt.Fprintf(w, "URL:       %s\n", c.URL)
		printMap(w, "Headers", c.Headers)
	}

	fmt.Fprintf(w, "Status:    %s\n", srv.Status)
	if srv.Available() {
		if tools := srv.ToolNames(); len(tools) > 0 {
			fmt.Fprintf(w, "Tools:     %s\n", strings.Join(tools, ", "))
		}
	} else if srv.Error != "" {
		fmt.Fprintf(w, "Error:     %s\n", srv.Error)
	}
}

func printMap(w io.Writer, title string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(w, "  %s: %s\n", k, m[k])
	}
}

// redactConfig returns a copy of cfg with secret-looking values masked.
func redactConfig(cfg mcp.ServerConfig) mcp.ServerConfig {
	switch c := cfg.Clone().(type) {
	case *mcp.StdioConfig:
		c.Env = redact.Map(c.Env)
		return c
	case *mcp.RemoteConfig:
		c.URL = redact.URL(c.URL)
		c.Headers = redact.Map(c.Headers)
		return c
	default:
		return cfg
	}
}
