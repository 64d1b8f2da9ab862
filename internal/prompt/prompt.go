// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/joomcode/errorx"
	"golang.org/x/term"
)

// runFormFunc is swapped in tests to avoid driving a real terminal.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirmer asks the user for an explicit go-ahead before the installer
// mutates the system.
type Confirmer struct {
	in         io.Reader
	out        io.Writer
	isTerminal func() bool
}

type ConfirmerOption func(*Confirmer)

// WithInput overrides the reader used on the non-interactive path.
func WithInput(in io.Reader) ConfirmerOption {
	return func(c *Confirmer) {
		c.in = in
	}
}

// WithOutput overrides the writer the question is printed to.
func WithOutput(out io.Writer) ConfirmerOption {
	return func(c *Confirmer) {
		c.out = out
	}
}

// WithTerminalCheck overrides interactive terminal detection.
func WithTerminalCheck(check func() bool) ConfirmerOption {
	return func(c *Confirmer) {
		c.isTerminal = check
	}
}

func NewConfirmer(opts ...ConfirmerOption) *Confirmer {
	c := &Confirmer{
		in:         os.Stdin,
		out:        os.Stdout,
		isTerminal: stdinIsTerminal,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Confirm asks the given question and reports whether the user agreed.
// On a terminal it renders an interactive form; otherwise it falls back to
// reading a single line from input where only "y" or "Y" counts as consent.
func (c *Confirmer) Confirm(title string) (bool, error) {
	if c.isTerminal() {
		var agreed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Affirmative("Yes").
					Negative("No").
					Value(&agreed),
			),
		)

		if err := runFormFunc(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return false, errorx.ExternalError.Wrap(err, "confirmation prompt failed")
		}

		return agreed, nil
	}

	_, _ = fmt.Fprintf(c.out, "%s [y/N]: ", title)
	return ReadAnswer(c.in)
}

// ReadAnswer reads one line from in and reports consent. Only "y" and "Y"
// count as yes; every other answer, including an empty line, is a no.
func ReadAnswer(in io.Reader) (bool, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errorx.ExternalError.Wrap(err, "failed to read confirmation answer")
	}

	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}
