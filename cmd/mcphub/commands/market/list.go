package market

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/internal/catalog"
	"github.com/thoreinstein/mcphub/internal/errors"
)

var (
	listCategory string
	listJSON     bool
)

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only show templates in this category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls", "search"},
	Short:   "List integration templates",
	Long: `List integration templates in marketplace order.

The optional query matches template names and descriptions, ignoring case.
--category limits results to one category.`,
	Example: `  # List everything
  mcphub market list

  # Search by name or description
  mcphub market list payment

  # Only AI templates
  mcphub market list --category ai`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) > 0 {
			query = args[0]
		}
		return runListWithWriter(cmd.OutOrStdout(), catalog.Default(), query)
	},
}

// templateJSON is one template in JSON output.
type templateJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Transport   string `json:"transport"`
}

// runListWithWriter allows injecting a writer and catalog for testing.
func runListWithWriter(w io.Writer, templates []catalog.Template, query string) error {
	category := catalog.Category(strings.ToLower(strings.TrimSpace(listCategory)))
	if category != "" && !category.Valid() {
		return errors.NewUserError(
			errors.Newf("unknown category %q", listCategory),
			"Valid categories: "+strings.Join(categoryNames(catalog.Categories(templates)), ", "),
		)
	}

	matches := catalog.Filter(templates, query, category)

	if listJSON {
		out := make([]templateJSON, 0, len(matches))
		for _, t := range matches {
			out = append(out, templateJSON{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Category:    string(t.Category),
				Transport:   string(t.Config.Transport()),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	labels := make([]string, 0, len(catalog.Categories(templates)))
	for _, c := range catalog.Categories(templates) {
		labels = append(labels, c.Label())
	}
	fmt.Fprintf(w, "%s %s\n\n", color.New(color.Bold).Sprint("Categories:"), strings.Join(labels, ", "))

	if len(matches) == 0 {
		fmt.Fprintln(w, "No integrations found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tDESCRIPTION")
	for _, t := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Category.Label(), t.Description)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flushing tabwriter")
	}
	return nil
}

func categoryNames(cats []catalog.Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
