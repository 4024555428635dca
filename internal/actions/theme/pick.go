package theme

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	themeengine "github.com/zWesleyDavid/prototipo-luvr/internal/theme"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
	"github.com/zWesleyDavid/prototipo-luvr/internal/usage"
)

//
// Public API
//

func Pick(a *app.App) error {
	return pick(DefaultDeps(a))
}

//
// Entrypoint
//

func pick(deps Deps) error {
	// Bubble Tea needs a real terminal
	if !deps.IsTerminal() {
		return usage.NotATerminal("theme pick")
	}

	current := deps.Theme.Resolved().Mode
	m := newPickModel(current, deps.PrefersDark())

	final, err := deps.RunProgram(m)
	if err != nil {
		return err
	}

	fm := final.(pickModel)
	switch {
	case fm.cancelled:
		_, _ = deps.Println("Cancelled")
	case fm.chosen == current:
		deps.Theme.SetMode(current)
		_, _ = deps.Printf("Theme is already %s\n", deps.Sink.Info(string(current)))
	case fm.chosen != "":
		deps.Theme.SetMode(fm.chosen)
		deps.Notifier.ThemeChanged(fm.chosen)
	}
	return nil
}

//
// Model
//

type pickKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultPickKeys() pickKeys {
	return pickKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

type pickModel struct {
	modes       []domain.ThemeMode
	cursor      int
	current     domain.ThemeMode
	prefersDark bool
	chosen      domain.ThemeMode
	cancelled   bool
	keys        pickKeys
	help        help.Model
}

func newPickModel(current domain.ThemeMode, prefersDark bool) pickModel {
	m := pickModel{
		modes:       domain.ThemeModes,
		current:     current,
		prefersDark: prefersDark,
		keys:        defaultPickKeys(),
		help:        help.New(),
	}
	for i, mode := range m.modes {
		if mode == current {
			m.cursor = i
		}
	}
	return m
}

//
// Bubble Tea lifecycle
//

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(k, m.keys.Up):
		m.cursor = (m.cursor + len(m.modes) - 1) % len(m.modes)
	case key.Matches(k, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.modes)
	case key.Matches(k, m.keys.Select):
		m.chosen = m.modes[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

//
// View
//

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString("Select a theme mode:\n\n")

	left := make([]string, len(m.modes))
	for i, mode := range m.modes {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}
		selected := "  "
		if mode == m.current {
			selected = "✓ "
		}

		name := lipgloss.NewStyle().Width(10)
		if i == m.cursor {
			name = name.Bold(true)
		}
		left[i] = cursor + selected + name.Render(modeLabel(mode))
	}

	applied := themeengine.Resolve(m.modes[m.cursor], m.prefersDark)

	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		strings.Join(left, "\n"),
		"    ",
		renderPreviewCard(applied, style.PaletteFor(applied)),
	))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Quit}))

	return b.String()
}

//
// Preview rendering
//

// renderPreviewCard draws a small room board in the palette of a.
func renderPreviewCard(a domain.Appearance, p style.Palette) string {
	bg, fg := lipgloss.Color("255"), lipgloss.Color("235")
	if a == domain.AppearanceDark {
		bg, fg = lipgloss.Color("235"), lipgloss.Color("252")
	}

	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	colored := func(text, color string) string {
		return base.Foreground(lipgloss.Color(color)).Render(text)
	}

	lines := []string{
		base.Bold(true).Render("Preview: " + string(a)),
		"",
		colored("■ 101 available", p.Available),
		colored("■ 102 occupied", p.Occupied),
		colored("■ 103 cleaning", p.Cleaning),
		colored("■ 104 maintenance", p.Maintenance),
		colored("■ 105 reserved", p.Reserved),
		"",
		colored("✓ saved", p.Success) + base.Render("  ") + colored("! warning", p.Warning),
	}

	return base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Muted)).
		Padding(0, 1).
		Width(26).
		Render(strings.Join(lines, "\n"))
}
