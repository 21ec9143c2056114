// Package editor launches the user's text editor on a file.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/logging"
)

// EnvEditor overrides $EDITOR and $VISUAL for mcphub only.
const EnvEditor = "MCPHUB_EDITOR"

// Detect returns the editor command line. The fallback chain is
// $MCPHUB_EDITOR, $EDITOR, $VISUAL, nano, vi. Empty variables count as unset.
func Detect() string {
	for _, env := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}

// Open runs the editor on path with the terminal attached and waits for it to
// exit. The editor command may carry arguments, e.g. "code --wait".
func Open(ctx context.Context, path string) error {
	argv := strings.Fields(Detect())
	logging.FromContext(ctx).Debug("opening editor", "editor", argv[0], "path", path)

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}
