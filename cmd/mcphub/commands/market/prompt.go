package market

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// prompter asks the user for one value.
type prompter interface {
	Prompt(label, placeholder string, secret bool) (string, error)
}

// linePrompter reads answers line by line. When in is a terminal, secret
// answers are read without echo.
type linePrompter struct {
	w      io.Writer
	in     *bufio.Reader
	fd     int
	isTerm bool
}

func newLinePrompter(w io.Writer, r io.Reader) *linePrompter {
	p := &linePrompter{w: w, in: bufio.NewReader(r)}
	if f, ok := r.(*os.File); ok {
		p.fd = int(f.Fd())
		p.isTerm = term.IsTerminal(p.fd)
	}
	return p
}

// Prompt implements prompter. A trailing newline is stripped; an empty
// answer is returned as "".
func (p *linePrompter) Prompt(label, placeholder string, secret bool) (string, error) {
	if placeholder != "" {
		fmt.Fprintf(p.w, "%s (e.g. %s): ", label, placeholder)
	} else {
		fmt.Fprintf(p.w, "%s: ", label)
	}

	if secret && p.isTerm {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.w)
		if err != nil {
			return "", errors.Wrap(err, "reading secret")
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", errors.Wrap(err, "reading answer")
	}
	return strings.TrimSpace(line), nil
}
