package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcphub/cmd"
	"github.com/thoreinstein/mcphub/cmd/mcphub/commands/flags"
	"github.com/thoreinstein/mcphub/internal/api"
	"github.com/thoreinstein/mcphub/internal/logging"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from serve.addr)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the update-check action over HTTP",
	Long: `Serve the update-check action and Prometheus metrics over HTTP.

  POST /api/update   compare the running version with the latest release
  GET  /metrics      Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	Example: `  # Serve on the configured address
  mcphub serve

  # Serve on all interfaces
  mcphub serve --addr :8787`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(c *cobra.Command, _ []string) error {
	addr := serveAddr
	if addr == "" {
		addr = flags.Config().Serve.Addr
	}

	checker, err := flags.NewChecker()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.FromContext(ctx)
	a := api.New(checker, cmd.Version, api.NewMetrics(cmd.Version), logger)
	return a.Serve(ctx, addr)
}
