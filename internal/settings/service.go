package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/log"
)

// Service owns the in-memory settings bundle. The theme mode inside the
// bundle mirrors the theme controller, which stays the source of truth.
type Service struct {
	storage domain.Storage
	theme   domain.ThemeController
	logger  domain.Logger

	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	current Settings
}

// NewService creates a Service holding Defaults until Load is called.
func NewService(storage domain.Storage, theme domain.ThemeController, logger domain.Logger) *Service {
	if logger == nil {
		logger = log.NopLogger{}
	}
	s := &Service{
		storage: storage,
		theme:   theme,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
		current: Defaults(),
	}
	s.current.Theme.Mode = theme.Resolved().Mode
	return s
}

// Load reads the stored bundle over the defaults. A missing or corrupt bundle
// leaves the defaults in place; only storage read errors are returned.
func (s *Service) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := Defaults()
	raw, ok, err := s.storage.GetItem(domain.SettingsStorageKey)
	switch {
	case err != nil:
		return s.syncedLocked(loaded), fmt.Errorf("read settings: %w", err)
	case ok:
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			s.logger.Warn("settings: ignoring corrupt %q: %v", domain.SettingsStorageKey, err)
			loaded = Defaults()
		}
	}
	return s.syncedLocked(loaded), nil
}

func (s *Service) syncedLocked(loaded Settings) Settings {
	loaded.Theme.Mode = s.theme.Resolved().Mode
	s.current = loaded
	return loaded
}

// Current returns a copy of the in-memory bundle.
func (s *Service) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Theme.Mode = s.theme.Resolved().Mode
	return s.current
}

// Update edits the in-memory bundle. A changed, valid theme mode is applied
// right away; everything else waits for Save.
func (s *Service) Update(fn func(*Settings)) Settings {
	s.mu.Lock()
	before := s.theme.Resolved().Mode
	next := s.current
	next.Theme.Mode = before
	fn(&next)

	mode, valid := domain.ParseThemeMode(string(next.Theme.Mode))
	if !valid {
		s.logger.Warn("settings: ignoring theme mode %q", next.Theme.Mode)
		mode = before
	}
	next.Theme.Mode = mode
	s.current = next
	s.mu.Unlock()

	if mode != before {
		s.theme.SetMode(mode)
	}
	return next
}

// ChangeThemeMode sets the mode in the bundle and on the theme controller.
func (s *Service) ChangeThemeMode(mode domain.ThemeMode) {
	mode = domain.MustThemeMode(mode)

	s.mu.Lock()
	s.current.Theme.Mode = mode
	s.mu.Unlock()

	s.theme.SetMode(mode)
}

// Save persists the bundle as JSON.
func (s *Service) Save() error {
	return s.persist(s.Current())
}

// Reset restores the defaults, switches the theme to system and persists.
func (s *Service) Reset() (Settings, error) {
	s.theme.SetMode(domain.ModeSystem)

	s.mu.Lock()
	s.current = Defaults()
	current := s.current
	s.mu.Unlock()

	return current, s.persist(current)
}

// Export writes a backup with the current bundle and the stored app state.
func (s *Service) Export(w io.Writer, format Format) (Backup, error) {
	current := s.Current()
	b := Backup{
		ID:        s.newID(),
		Settings:  &current,
		Timestamp: s.now().UTC(),
		Version:   BackupVersion,
	}

	raw, ok, err := s.storage.GetItem(domain.AppDataStorageKey)
	if err != nil {
		return Backup{}, fmt.Errorf("read app state: %w", err)
	}
	if ok {
		var state any
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			s.logger.Warn("settings: app state is not JSON, exporting as text: %v", err)
			state = raw
		}
		b.AppState = state
	}

	if err := encodeBackup(w, b, format); err != nil {
		return Backup{}, fmt.Errorf("encode backup: %w", err)
	}
	s.logger.Info("settings: exported backup %s", b.ID)
	return b, nil
}

// Import reads a backup, persists its settings and applies its theme mode
// when that mode is valid. App state in the backup is not restored.
func (s *Service) Import(r io.Reader, format Format) (Backup, error) {
	b, err := decodeBackup(r, format)
	if err != nil {
		return Backup{}, err
	}

	imported := *b.Settings
	mode, valid := domain.ParseThemeMode(string(imported.Theme.Mode))
	if valid {
		imported.Theme.Mode = mode
	} else {
		s.logger.Warn("settings: backup %s has theme mode %q, keeping current", b.ID, imported.Theme.Mode)
		imported.Theme.Mode = s.theme.Resolved().Mode
	}

	s.mu.Lock()
	s.current = imported
	s.mu.Unlock()

	if err := s.persist(imported); err != nil {
		return Backup{}, err
	}

	if valid {
		s.theme.SetMode(mode)
	}

	s.logger.Info("settings: imported backup %s (version %s)", b.ID, b.Version)
	return b, nil
}

// ClearAll removes every stored key, including the theme mode.
func (s *Service) ClearAll() error {
	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	s.logger.Info("settings: storage cleared")
	return nil
}

func (s *Service) persist(v Settings) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.storage.SetItem(domain.SettingsStorageKey, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
