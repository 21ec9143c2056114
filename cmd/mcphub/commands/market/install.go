package market

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/catalog"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/logging"
	"github.com/thoreinstein/mcphub/internal/mcp"
	"github.com/thoreinstein/mcphub/internal/store"
	"github.com/thoreinstein/mcphub/internal/synth"
)

// maxAttempts bounds how often an invalid answer is asked for again.
const maxAttempts = 3

var (
	installName  string
	installSet   []string
	installForce bool
	installCheck bool
)

// errCancelled is returned when the user aborts the template picker.
var errCancelled = errors.New("installation cancelled")

func init() {
	installCmd.Flags().StringVarP(&installName, "name", "n", "", "Server name")
	installCmd.Flags().StringArrayVar(&installSet, "set", nil, "Field value as key=value (repeatable)")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Replace an existing server with the same name")
	installCmd.Flags().BoolVar(&installCheck, "check", false, "Validate the configuration without saving it")
	Cmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:     "install [template]",
	Aliases: []string{"add"},
	Short:   "Add a server from an integration template",
	Long: `Add an MCP server to your settings from a marketplace template.

Without a template argument an interactive picker is shown. Values the
template needs are taken from --name and --set, and anything missing is asked
for on the terminal. Secret fields are read without echo.

When stdin is not a terminal nothing is asked for, so every required value
must be given with flags.`,
	Example: `  # Pick a template interactively
  mcphub market install

  # Answer the prompts for Stripe
  mcphub market install stripe

  # Non-interactive
  mcphub market install posthog --name analytics \
    --set projectApiKey=phc_xxx --set host=https://eu.posthog.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

// pickTemplate selects a template interactively. Tests replace it.
var pickTemplate = func(templates []catalog.Template) (catalog.Template, error) {
	idx, err := fuzzyfinder.Find(
		templates,
		func(i int) string {
			return fmt.Sprintf("%s  %s", templates[i].Name, templates[i].Category.Label())
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			t := templates[i]
			var b strings.Builder
			fmt.Fprintf(&b, "%s\n\n%s\n\nFields:\n", t.Name, t.Description)
			for _, f := range t.Fields {
				fmt.Fprintf(&b, "  %s\n", f.Label)
			}
			return b.String()
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return catalog.Template{}, errCancelled
		}
		return catalog.Template{}, errors.Wrap(err, "selecting template")
	}
	return templates[idx], nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	templates := catalog.Default()

	var (
		t   catalog.Template
		err error
	)
	if len(args) == 0 {
		t, err = pickTemplate(templates)
		if errors.Is(err, errCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), errCancelled.Error())
			return nil
		}
	} else {
		t, err = catalog.Lookup(templates, args[0])
		if err != nil {
			err = errors.NewUserError(err, "Run 'mcphub market list' to see available templates")
		}
	}
	if err != nil {
		return err
	}

	var p prompter
	if term.IsTerminal(int(os.Stdin.Fd())) {
		p = newLinePrompter(cmd.OutOrStdout(), os.Stdin)
	}

	s, err := flags.OpenStore(cmd.Context())
	if err != nil {
		return err
	}
	return runInstallWithIO(cmd.Context(), s, t, cmd.OutOrStdout(), p)
}

// runInstallWithIO adds a server from t. A nil prompter disables prompting.
func runInstallWithIO(ctx context.Context, s store.Store, t catalog.Template, w io.Writer, p prompter) error {
	values, err := parseSet(t, installSet)
	if err != nil {
		return err
	}

	name, err := collect(t, installName, values, w, p)
	if err != nil {
		return err
	}

	cfg, err := synthesize(t, name, values, w, p)
	if err != nil {
		return errors.NewUserError(err, "Provide it with --name or --set key=value")
	}
	name = strings.TrimSpace(name)

	if err := mcp.Validate(cfg); err != nil {
		return errors.NewUserError(errors.Wrap(err, "Connection test failed"), "Check the template's values")
	}
	if installCheck {
		fmt.Fprintf(w, "Configuration for %q is valid (not saved)\n", name)
		return nil
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to add server")
	}
	if _, exists := settings.Servers().Get(name); exists && !installForce {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrAlreadyExists, "Failed to add server: %q", name),
			"Choose another --name or pass --force to replace it",
		)
	}
	settings.Servers().Set(name, cfg)

	if err := s.UpdateSettings(ctx, settings); err != nil {
		return errors.Wrap(err, "Failed to add server")
	}

	logging.FromContext(ctx).Debug("server added", "name", name, "template", t.ID)
	fmt.Fprintf(w, "Server %q added successfully\n", name)
	return nil
}

// collect prompts for the name and every field that has no value yet.
func collect(t catalog.Template, name string, values map[string]string, w io.Writer, p prompter) (string, error) {
	if p == nil {
		return name, nil
	}

	fmt.Fprintf(w, "Configure %s\n", t.Name)
	if strings.TrimSpace(name) == "" {
		answer, err := p.Prompt("Server name", t.ID, false)
		if err != nil {
			return "", err
		}
		name = answer
	}
	for _, f := range t.Fields {
		if values[f.Key] != "" {
			continue
		}
		answer, err := p.Prompt(f.Label, f.Placeholder, f.Kind == catalog.InputPassword)
		if err != nil {
			return "", err
		}
		values[f.Key] = answer
	}
	return name, nil
}

// synthesize builds the configuration. On a validation failure it reports
// the problem and asks again for just the offending value, keeping every
// other answer.
func synthesize(t catalog.Template, name string, values map[string]string, w io.Writer, p prompter) (cfg mcp.ServerConfig, err error) {
	for attempt := 1; ; attempt++ {
		cfg, err = synth.Synthesize(t, name, values)
		if err == nil {
			return cfg, nil
		}

		var vErr *synth.ValidationError
		if p == nil || attempt >= maxAttempts || !errors.As(err, &vErr) {
			return nil, err
		}
		fmt.Fprintln(w, vErr.Error())

		if vErr.Code == synth.CodeNameRequired {
			if name, err = p.Prompt("Server name", t.ID, false); err != nil {
				return nil, err
			}
			continue
		}
		idx := slices.IndexFunc(t.Fields, func(f catalog.Field) bool { return f.Label == vErr.Field })
		if idx < 0 {
			return nil, err
		}
		f := t.Fields[idx]
		answer, promptErr := p.Prompt(f.Label, f.Placeholder, f.Kind == catalog.InputPassword)
		if promptErr != nil {
			return nil, promptErr
		}
		values[f.Key] = answer
	}
}

// parseSet turns key=value flags into field values, rejecting keys the
// template does not declare.
func parseSet(t catalog.Template, pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(t.Fields))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.NewUserError(
				errors.Newf("invalid --set %q", pair),
				"Use --set key=value",
			)
		}
		key = strings.TrimSpace(key)
		if !slices.ContainsFunc(t.Fields, func(f catalog.Field) bool { return f.Key == key }) {
			return nil, errors.NewUserError(
				errors.Newf("template %s has no field %q", t.ID, key),
				"Run 'mcphub market show "+t.ID+"' to see its fields",
			)
		}
		values[key] = value
	}
	return values, nil
}
