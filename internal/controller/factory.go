package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Output describes what a command's standard output is used for.
type Output struct {
	// Terminal is set when stdout is an interactive terminal.
	Terminal bool
	// Data is set when stdout carries source text (rename --stdin, scrub).
	// Status output then moves to stderr as plain text and the full-screen
	// TUI is never started, even on a terminal.
	Data bool
}

// OutputOf inspects the stdout of cmd.
func OutputOf(cmd *cobra.Command, data bool) Output {
	return Output{Terminal: IsTTY(cmd.OutOrStdout()), Data: data}
}

// NewUI picks the TUI for interactive terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, out Output) UI {
	switch {
	case out.Data:
		ui := NewSimpleUI(cmd)
		ui.out = cmd.ErrOrStderr()

		return ui
	case out.Terminal:
		return NewTUI(cmd.OutOrStdout())
	default:
		return NewSimpleUI(cmd)
	}
}

// IsTTY reports whether w is an interactive terminal. Pipes, regular files
// and other character devices such as /dev/null are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
