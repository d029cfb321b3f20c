package prompt

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when a prompt is needed but stdin or stderr
// is not attached to a terminal.
var ErrNotTerminal = errors.New("interactive prompt requires a terminal")

// IsInteractive reports whether stdin and stderr are terminals.
// Stdout is not checked; it is usually captured by the shell hook.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Terminal runs prompts on the controlling terminal.
type Terminal struct{}

// Select runs [Select] after checking for a terminal.
func (Terminal) Select(req Request) (Result, error) {
	if !IsInteractive() {
		return Result{Index: -1}, ErrNotTerminal
	}
	return Select(req)
}

// Confirm runs [Confirm] after checking for a terminal.
func (Terminal) Confirm(prompt string) (ConfirmResult, error) {
	if !IsInteractive() {
		return ConfirmResult{}, ErrNotTerminal
	}
	return Confirm(prompt)
}
