package theme

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	themeengine "github.com/zWesleyDavid/prototipo-luvr/internal/theme"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

// stateBuffer bounds how many resolutions can queue up between redraws.
const stateBuffer = 16

// Watch follows the theme live. On a terminal it opens an interactive view;
// otherwise it prints one line per resolution until ctx is done.
func Watch(ctx context.Context, a *app.App) error {
	return watch(ctx, DefaultDeps(a))
}

func watch(ctx context.Context, deps Deps) error {
	// Subscribers run on the engine's goroutine and must not block or call
	// SetMode, so they only forward to a buffered channel.
	states := make(chan domain.ThemeState, stateBuffer)
	cancel := deps.Theme.Subscribe(func(s domain.ThemeState) {
		select {
		case states <- s:
		default:
		}
	})
	defer cancel()

	if deps.Watch != nil {
		deps.Watch(ctx)
	}

	if !deps.IsTerminal() {
		return stream(ctx, deps, states)
	}

	done := make(chan struct{})
	defer close(done)

	_, err := deps.RunProgram(newWatchModel(deps.Theme, states, done))
	return err
}

func stream(ctx context.Context, deps Deps, states <-chan domain.ThemeState) error {
	printState := func(s domain.ThemeState) {
		_, _ = deps.Printf("%s mode=%s applied=%s\n", time.Now().Format("15:04:05"), s.Mode, s.Applied)
	}

	printState(deps.Theme.Resolved())
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-states:
			printState(s)
		}
	}
}

//
// Messages
//

type stateMsg domain.ThemeState

// waitForState returns nil once done is closed so the pending command does
// not outlive the program.
func waitForState(states <-chan domain.ThemeState, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-states:
			return stateMsg(s)
		case <-done:
			return nil
		}
	}
}

//
// Model
//

type watchKeys struct {
	Toggle key.Binding
	Cycle  key.Binding
	Quit   key.Binding
}

func defaultWatchKeys() watchKeys {
	return watchKeys{
		Toggle: key.NewBinding(key.WithKeys("t", "alt+t"), key.WithHelp("t", "toggle")),
		Cycle:  key.NewBinding(key.WithKeys("T", "alt+T"), key.WithHelp("T", "cycle")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type watchModel struct {
	theme  domain.ThemeController
	states <-chan domain.ThemeState
	done   <-chan struct{}

	state   domain.ThemeState
	changes int
	last    string

	keys watchKeys
	help help.Model
}

func newWatchModel(c domain.ThemeController, states <-chan domain.ThemeState, done <-chan struct{}) watchModel {
	return watchModel{
		theme:  c,
		states: states,
		done:   done,
		state:  c.Resolved(),
		keys:   defaultWatchKeys(),
		help:   help.New(),
	}
}

//
// Bubble Tea lifecycle
//

func (m watchModel) Init() tea.Cmd {
	return waitForState(m.states, m.done)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = domain.ThemeState(msg)
		m.changes++
		return m, waitForState(m.states, m.done)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			mode := themeengine.Toggle(m.theme)
			m.last = "toggle → " + string(mode)
		case key.Matches(msg, m.keys.Cycle):
			mode := themeengine.Cycle(m.theme)
			m.last = "cycle → " + string(mode)
		}
		m.state = m.theme.Resolved()
	}
	return m, nil
}

//
// View
//

func (m watchModel) View() string {
	p := style.PaletteFor(m.state.Applied)

	title := lipgloss.NewStyle().Bold(true).Render("luvr theme")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	var body strings.Builder
	fmt.Fprintf(&body, "mode     %s\n", modeLabel(m.state.Mode))
	fmt.Fprintf(&body, "applied  %s\n", m.state.Applied)
	if m.state.Mode == domain.ModeSystem {
		body.WriteString(muted.Render("following the OS color scheme") + "\n")
	} else {
		body.WriteString(muted.Render("OS changes are ignored until mode is system") + "\n")
	}
	fmt.Fprintf(&body, "\n%s", muted.Render(fmt.Sprintf("%d updates", m.changes)))
	if m.last != "" {
		body.WriteString(muted.Render("  ·  " + m.last))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Info)).
		Padding(0, 1).
		Render(body.String())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", renderPreviewCard(m.state.Applied, p)),
		"",
		m.help.ShortHelpView([]key.Binding{m.keys.Toggle, m.keys.Cycle, m.keys.Quit}),
	)
}
