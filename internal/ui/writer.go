// Package ui holds terminal output helpers shared by commands.
//
// The pager runs whatever command $PAGER names, the same way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Writer prints to out and pages long output when out is a terminal.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	envGetter     func(string) string
	isTerminal    func(io.Writer) bool
	run           func(name string, args []string, content string) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled(disabled bool) WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = disabled
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// WithTerminalCheck overrides how the Writer decides out is a terminal.
func WithTerminalCheck(fn func(io.Writer) bool) WriterOption {
	return func(w *Writer) {
		w.isTerminal = fn
	}
}

// WithRunner replaces the pager process runner.
func WithRunner(fn func(name string, args []string, content string) error) WriterOption {
	return func(w *Writer) {
		w.run = fn
	}
}

// NewWriterTo creates a Writer that writes to out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: isTerminal,
		run:        runPager,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled → direct output
//  2. out not a TTY → direct output
//  3. $LUVR_PAGER, then $PAGER; "cat" bypasses
//  4. Default: "less -FRSX"
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	name, args := "less", []string{"-FRSX"}
	for _, env := range []string{"LUVR_PAGER", "PAGER"} {
		if v := strings.TrimSpace(w.envGetter(env)); v != "" {
			parts := strings.Fields(v)
			name, args = parts[0], parts[1:]
			break
		}
	}

	if name == "cat" {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	if err := w.run(name, args, content); err != nil {
		_, _ = fmt.Fprint(w.out, content)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runPager(name string, args []string, content string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
