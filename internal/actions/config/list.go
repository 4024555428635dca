package config

import (
	"encoding/json"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
)

// ListOptions controls `luvr config list`.
type ListOptions struct {
	JSON bool
}

type entry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Section string `json:"section"`
}

func List(opts ListOptions) error {
	return list(opts, DefaultDeps())
}

func list(opts ListOptions, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	// Only show visible (non-hidden) keys
	if opts.JSON {
		var entries []entry
		for _, key := range domain.VisibleConfigKeys() {
			entries = append(entries, entry{Key: key.Name, Value: configMap[key.Name], Section: key.Section})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	for _, key := range domain.VisibleConfigKeys() {
		if value, exists := configMap[key.Name]; exists {
			_, _ = deps.Printf("%s=%s\n", key.Name, value)
		}
	}

	return nil
}
