package preference

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// EnvVar forces the detected color scheme ("dark" or "light").
const EnvVar = "LUVR_COLOR_SCHEME"

const commandTimeout = time.Second

// Detector reads the OS color-scheme preference from one source.
type Detector interface {
	// Name identifies the source in logs and `luvr theme show`.
	Name() string

	// Detect returns the preference and whether this source could answer.
	Detect() (prefersDark bool, ok bool)
}

// CommandRunner runs an external command and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func runWithTimeout(run CommandRunner, name string, args ...string) ([]byte, error) {
	if run == nil {
		run = runCommand
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return run(ctx, name, args...)
}

// EnvDetector answers from the LUVR_COLOR_SCHEME variable.
type EnvDetector struct {
	Getenv func(string) string
}

func (EnvDetector) Name() string { return "env" }

func (d EnvDetector) Detect() (bool, bool) {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	switch strings.ToLower(strings.TrimSpace(getenv(EnvVar))) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// GSettingsDetector asks GNOME for org.gnome.desktop.interface color-scheme.
type GSettingsDetector struct {
	Run  CommandRunner
	GOOS string
}

func (GSettingsDetector) Name() string { return "gsettings" }

func (d GSettingsDetector) Detect() (bool, bool) {
	if goos(d.GOOS) != "linux" {
		return false, false
	}

	out, err := runWithTimeout(d.Run, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}

	switch strings.Trim(strings.TrimSpace(string(out)), "'\"") {
	case "prefer-dark":
		return true, true
	case "prefer-light", "default":
		return false, true
	}
	return false, false
}

// MacOSDetector reads AppleInterfaceStyle from the global defaults domain.
// The key only exists while dark mode is on.
type MacOSDetector struct {
	Run  CommandRunner
	GOOS string
}

func (MacOSDetector) Name() string { return "macos" }

func (d MacOSDetector) Detect() (bool, bool) {
	if goos(d.GOOS) != "darwin" {
		return false, false
	}

	out, err := runWithTimeout(d.Run, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, true
		}
		return false, false
	}
	return strings.Contains(strings.ToLower(string(out)), "dark"), true
}

// TerminalDetector infers the preference from the terminal background.
// The terminal is queried once; later calls return the first answer.
type TerminalDetector struct {
	IsTerminal        func() bool
	HasDarkBackground func() bool

	once   sync.Once
	dark   bool
	answer bool
}

// NewTerminalDetector creates a TerminalDetector bound to stdout.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{}
}

func (*TerminalDetector) Name() string { return "terminal" }

func (d *TerminalDetector) Detect() (bool, bool) {
	d.once.Do(func() {
		isTerminal := d.IsTerminal
		if isTerminal == nil {
			isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
		}
		if !isTerminal() {
			return
		}

		hasDark := d.HasDarkBackground
		if hasDark == nil {
			hasDark = termenv.HasDarkBackground
		}
		d.dark = hasDark()
		d.answer = true
	})
	return d.dark, d.answer
}

// Chain asks detectors in order; the first that answers wins.
type Chain []Detector

// DefaultChain returns the detectors used by the CLI, highest priority first.
func DefaultChain() Chain {
	return Chain{
		EnvDetector{},
		GSettingsDetector{},
		MacOSDetector{},
		NewTerminalDetector(),
	}
}

// Detect returns the first answer and the name of the detector that gave it.
// With no answer it reports light and an empty source.
func (c Chain) Detect() (prefersDark bool, source string) {
	for _, d := range c {
		if d == nil {
			continue
		}
		if dark, ok := d.Detect(); ok {
			return dark, d.Name()
		}
	}
	return false, ""
}

func goos(override string) string {
	if override != "" {
		return override
	}
	return runtime.GOOS
}
