package theme

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

type Deps struct {
	Theme       domain.ThemeController
	Notifier    domain.Notifier
	Sink        *style.Sink
	Out         io.Writer
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
	StorageKey  string
	Backend     string
	Source      func() string
	PrefersDark func() bool
	IsTerminal  func() bool
	RunProgram  func(tea.Model) (tea.Model, error)
	Watch       func(context.Context)
}

func DefaultDeps(a *app.App) Deps {
	sink, _ := a.Sink.(*style.Sink)
	return Deps{
		Theme:       a.Theme,
		Notifier:    a.Notifier,
		Sink:        sink,
		Out:         a.Output,
		Printf:      func(format string, args ...any) (int, error) { return fmt.Fprintf(a.Output, format, args...) },
		Println:     func(args ...any) (int, error) { return fmt.Fprintln(a.Output, args...) },
		StorageKey:  a.Engine.StorageKey(),
		Backend:     a.Backend,
		Source:      a.Watcher.Source,
		PrefersDark: a.Signal.PrefersDark,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
		Watch: a.StartWatching,
	}
}

// modeLabel is the English label used in terminal views.
func modeLabel(m domain.ThemeMode) string {
	switch m {
	case domain.ModeLight:
		return "Light"
	case domain.ModeDark:
		return "Dark"
	default:
		return "System"
	}
}
