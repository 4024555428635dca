package style

import (
	"os"
	"strings"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// Palette holds the colors for one appearance.
// Values are ANSI color numbers (0-255) or "bold" for bold styling.
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string

	// Room status colors.
	Available   string
	Occupied    string
	Cleaning    string
	Maintenance string
	Reserved    string
}

// Palettes contains the built-in palette for each appearance.
// Dark uses bright colors, light uses dark saturated ones.
var Palettes = map[domain.Appearance]Palette{
	domain.AppearanceDark: {
		Success:     "10",  // bright green
		Warning:     "11",  // bright yellow
		Error:       "9",   // bright red
		Info:        "14",  // bright cyan
		Muted:       "245", // medium gray
		Header:      "bold",
		Available:   "48",  // teal
		Occupied:    "203", // coral
		Cleaning:    "221", // soft yellow
		Maintenance: "246", // gray
		Reserved:    "111", // sky blue
	},
	domain.AppearanceLight: {
		Success:     "28",  // dark green
		Warning:     "130", // dark orange
		Error:       "124", // dark red
		Info:        "27",  // dark blue
		Muted:       "243", // medium-dark gray
		Header:      "bold",
		Available:   "29",  // deep teal
		Occupied:    "160", // red
		Cleaning:    "136", // dark yellow
		Maintenance: "240", // dark gray
		Reserved:    "25",  // navy
	},
}

// paletteRoles maps the LUVR_COLOR_* suffix to a palette field.
var paletteRoles = []string{
	"success", "warning", "error", "info", "muted", "header",
	"available", "occupied", "cleaning", "maintenance", "reserved",
}

// PaletteFor returns the palette for a, with LUVR_COLOR_<ROLE> environment
// overrides applied. Unknown appearances get the light palette.
func PaletteFor(a domain.Appearance) Palette {
	p, ok := Palettes[a]
	if !ok {
		p = Palettes[domain.AppearanceLight]
	}
	for _, role := range paletteRoles {
		if v := os.Getenv("LUVR_COLOR_" + strings.ToUpper(role)); v != "" {
			setRole(&p, role, v)
		}
	}
	return p
}

func setRole(p *Palette, role, value string) {
	switch role {
	case "success":
		p.Success = value
	case "warning":
		p.Warning = value
	case "error":
		p.Error = value
	case "info":
		p.Info = value
	case "muted":
		p.Muted = value
	case "header":
		p.Header = value
	case "available":
		p.Available = value
	case "occupied":
		p.Occupied = value
	case "cleaning":
		p.Cleaning = value
	case "maintenance":
		p.Maintenance = value
	case "reserved":
		p.Reserved = value
	}
}
