package market

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/internal/catalog"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/view"
)

func init() {
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show an integration template",
	Long:  `Show an integration template: its base configuration and the fields it asks for.`,
	Example: `  mcphub market show posthog`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowWithWriter(cmd.OutOrStdout(), catalog.Default(), args[0])
	},
}

// runShowWithWriter allows injecting a writer and catalog for testing.
func runShowWithWriter(w io.Writer, templates []catalog.Template, id string) error {
	t, err := catalog.Lookup(templates, id)
	if err != nil {
		return errors.NewUserError(err, "Run 'mcphub market list' to see available templates")
	}

	fmt.Fprintf(w, "%s (%s)\n", t.Name, t.ID)
	fmt.Fprintf(w, "  %s\n\n", t.Description)
	fmt.Fprintf(w, "Category:  %s\n", t.Category.Label())
	fmt.Fprintf(w, "Transport: %s\n", t.Config.Transport())
	fmt.Fprintf(w, "Endpoint:  %s\n", view.Summary(t.Config))

	if len(t.Fields) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nFields:")
	for _, f := range t.Fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(w, "  %-14s %s (%s, %s)", f.Key, f.Label, f.Kind, req)
		if f.Placeholder != "" {
			fmt.Fprintf(w, " e.g. %s", f.Placeholder)
		}
		fmt.Fprintln(w)
	}
	return nil
}
