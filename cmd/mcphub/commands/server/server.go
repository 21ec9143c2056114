// Package server provides the server command group for managing configured
// MCP servers.
package server

import "github.com/spf13/cobra"

// Cmd is the server command that groups all configured-server subcommands.
var Cmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"servers"},
	Short:   "Manage configured MCP servers",
	Long: `Manage the MCP servers in your settings file.

Servers are added from marketplace templates with 'mcphub market install'.
This command group lists them with their last known availability, refreshes
availability, shows a single server's configuration, and removes servers.`,
	Example: `  # List configured servers
  mcphub server list

  # Re-check availability of every server
  mcphub server refresh

  # Show a server's configuration as YAML
  mcphub server show github --format yaml

  # Remove a server
  mcphub server remove github

  See Also:
    mcphub server list     - List configured servers
    mcphub server show     - Show server details
    mcphub server refresh  - Check server availability
    mcphub server remove   - Remove a server`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
