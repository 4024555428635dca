package settings

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/ui"
)

// ShowOptions controls `luvr settings show`.
type ShowOptions struct {
	JSON    bool
	NoPager bool
}

func Show(a *app.App, opts ShowOptions) error {
	deps := DefaultDeps(a)
	deps.Page = ui.NewWriterTo(a.Output, ui.WithPagerDisabled(opts.NoPager)).Pager
	return show(opts, deps)
}

func show(opts ShowOptions, deps Deps) error {
	current := deps.Settings.Current()

	if opts.JSON {
		enc := json.NewEncoder(deps.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(current)
	}

	sections := []struct {
		name  string
		value any
	}{
		{"notifications", current.Notifications},
		{"theme", current.Theme},
		{"system", current.System},
		{"business", current.Business},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		data, err := yaml.Marshal(s.value)
		if err != nil {
			return err
		}
		b.WriteString(deps.Styler.Header(s.name) + "\n")
		b.WriteString(indent(string(data)))
	}

	if deps.Page == nil {
		_, _ = deps.Printf("%s", b.String())
		return nil
	}
	deps.Page(b.String())
	return nil
}

func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
