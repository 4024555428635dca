package theme

import (
	"encoding/json"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
)

// ShowOptions controls `luvr theme show`.
type ShowOptions struct {
	JSON bool
}

type themeStatus struct {
	Mode       string `json:"mode"`
	Applied    string `json:"applied"`
	StorageKey string `json:"storageKey"`
	Backend    string `json:"backend"`
	Source     string `json:"source,omitempty"`
}

func Show(a *app.App, opts ShowOptions) error {
	return show(opts, DefaultDeps(a))
}

func show(opts ShowOptions, deps Deps) error {
	s := deps.Theme.Resolved()
	status := themeStatus{
		Mode:       string(s.Mode),
		Applied:    string(s.Applied),
		StorageKey: deps.StorageKey,
		Backend:    deps.Backend,
	}
	if deps.Source != nil {
		status.Source = deps.Source()
	}

	if opts.JSON {
		enc := json.NewEncoder(deps.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	source := status.Source
	if source == "" {
		source = "none (defaults to light)"
	}

	_, _ = deps.Printf("%s  %s\n", deps.Sink.Header("mode:   "), status.Mode)
	_, _ = deps.Printf("%s  %s\n", deps.Sink.Header("applied:"), status.Applied)
	_, _ = deps.Printf("%s  %s\n", deps.Sink.Muted("storage:"), deps.Sink.Muted(status.Backend+" ("+status.StorageKey+")"))
	_, _ = deps.Printf("%s  %s\n", deps.Sink.Muted("os pref:"), deps.Sink.Muted(source))
	return nil
}
