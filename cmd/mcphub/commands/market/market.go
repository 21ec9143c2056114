// Package market provides the market command group for browsing integration
// templates and configuring servers from them.
package market

import "github.com/spf13/cobra"

// Cmd is the market command that groups all marketplace subcommands.
var Cmd = &cobra.Command{
	Use:     "market",
	Aliases: []string{"marketplace"},
	Short:   "Browse integration templates and add servers from them",
	Long: `Browse the marketplace of MCP integration templates.

Each template describes a server and the values it needs, such as an API key
or a project URL. Installing a template asks for those values and writes the
resulting server configuration to your settings file.`,
	Example: `  # List every template
  mcphub market list

  # Search within a category
  mcphub market list deploy --category development

  # Show what a template needs
  mcphub market show stripe

  # Add a server from a template
  mcphub market install stripe

  See Also:
    mcphub market list     - List templates
    mcphub market show     - Show template details
    mcphub market install  - Add a server from a template`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
