package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// BackupVersion is written into every exported backup.
const BackupVersion = "2.0.0"

// ErrInvalidBackup is returned when a backup decodes but carries no settings.
var ErrInvalidBackup = errors.New("invalid backup: missing settings")

// Format is a backup encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// DefaultBackupName returns luvr-backup-<date>.<ext>.
func DefaultBackupName(now time.Time, format Format) string {
	ext := "json"
	if format == FormatYAML {
		ext = "yaml"
	}
	return fmt.Sprintf("luvr-backup-%s.%s", now.Format("2006-01-02"), ext)
}

// Backup is the exported envelope.
type Backup struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Settings  *Settings `json:"settings" yaml:"settings"`
	AppState  any       `json:"appState,omitempty" yaml:"appState,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Version   string    `json:"version" yaml:"version"`
}

func encodeBackup(w io.Writer, b Backup, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	return fmt.Errorf("unknown backup format %q", format)
}

// decodeBackup fills settings fields missing from the file with defaults.
func decodeBackup(r io.Reader, format Format) (Backup, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON, "":
		return decodeJSON(r)
	}
	return Backup{}, fmt.Errorf("unknown backup format %q", format)
}

func decodeJSON(r io.Reader) (Backup, error) {
	var raw struct {
		ID        string          `json:"id"`
		Settings  json.RawMessage `json:"settings"`
		AppState  any             `json:"appState"`
		Timestamp time.Time       `json:"timestamp"`
		Version   string          `json:"version"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Backup{}, fmt.Errorf("decode backup: %w", err)
	}
	if len(raw.Settings) == 0 || string(raw.Settings) == "null" {
		return Backup{}, ErrInvalidBackup
	}

	s := Defaults()
	if err := json.Unmarshal(raw.Settings, &s); err != nil {
		return Backup{}, fmt.Errorf("decode backup settings: %w", err)
	}
	return Backup{ID: raw.ID, Settings: &s, AppState: raw.AppState, Timestamp: raw.Timestamp, Version: raw.Version}, nil
}

func decodeYAML(r io.Reader) (Backup, error) {
	var raw struct {
		ID        string    `yaml:"id"`
		Settings  yaml.Node `yaml:"settings"`
		AppState  any       `yaml:"appState"`
		Timestamp time.Time `yaml:"timestamp"`
		Version   string    `yaml:"version"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return Backup{}, fmt.Errorf("decode backup: %w", err)
	}
	if raw.Settings.Kind == 0 || raw.Settings.Tag == "!!null" {
		return Backup{}, ErrInvalidBackup
	}

	s := Defaults()
	if err := raw.Settings.Decode(&s); err != nil {
		return Backup{}, fmt.Errorf("decode backup settings: %w", err)
	}
	return Backup{ID: raw.ID, Settings: &s, AppState: raw.AppState, Timestamp: raw.Timestamp, Version: raw.Version}, nil
}
