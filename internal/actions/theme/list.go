package theme

import (
	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

func List(a *app.App) error {
	return list(DefaultDeps(a))
}

func list(deps Deps) error {
	current := deps.Theme.Resolved()

	_, _ = deps.Println("Theme modes (* = current)")
	_, _ = deps.Println("")

	for _, mode := range domain.ThemeModes {
		marker := "  "
		if mode == current.Mode {
			marker = deps.Sink.Success("* ")
		}

		note := ""
		if mode == domain.ModeSystem {
			note = deps.Sink.Muted("follows the OS, now " + string(current.Applied))
		}
		_, _ = deps.Printf("%s%-8s %s\n", marker, mode, note)
	}

	_, _ = deps.Println("")
	for _, a := range []domain.Appearance{domain.AppearanceLight, domain.AppearanceDark} {
		_, _ = deps.Printf("  %-6s %s\n", a, renderPalette(deps.Sink, style.PaletteFor(a)))
	}

	_, _ = deps.Println("")
	_, _ = deps.Println("Use 'luvr theme set <mode>', 'luvr theme toggle' or 'luvr theme pick' to change")
	return nil
}

// renderPalette returns swatches for the room status colors of p.
func renderPalette(sink *style.Sink, p style.Palette) string {
	if !sink.Enabled() {
		return "available occupied cleaning maintenance reserved"
	}
	out := ""
	for _, c := range []struct{ name, color string }{
		{"available", p.Available},
		{"occupied", p.Occupied},
		{"cleaning", p.Cleaning},
		{"maintenance", p.Maintenance},
		{"reserved", p.Reserved},
	} {
		out += sink.Swatch(c.color) + " " + c.name + " "
	}
	return out
}
