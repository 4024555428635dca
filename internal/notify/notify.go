// Package notify prints short localized status messages, the CLI
// counterpart of the web front end's toasts.
package notify

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/log"
)

// Message IDs.
const (
	ThemeChanged   = "theme.changed"
	SettingsSaved  = "settings.saved"
	SettingsReset  = "settings.reset"
	BackupExported = "backup.exported"
	BackupImported = "backup.imported"
	BackupInvalid  = "backup.invalid"
	BackupFailed   = "backup.failed"
	DataCleared    = "data.cleared"
)

// DefaultLanguage is used when no language is configured.
var DefaultLanguage = language.BrazilianPortuguese

//go:embed locales/*.toml
var localeFS embed.FS

// NewBundle loads the embedded message files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return bundle, nil
}

// Notifier writes one line per message to out.
type Notifier struct {
	mu        sync.Mutex
	out       io.Writer
	styler    domain.Styler
	logger    domain.Logger
	localizer *i18n.Localizer
	quiet     bool
}

// Options configures a Notifier.
type Options struct {
	Out      io.Writer
	Styler   domain.Styler
	Logger   domain.Logger
	Language string // BCP 47 tag, e.g. "pt-BR" or "en"
	Quiet    bool
}

// New creates a Notifier. Unknown languages fall back to pt-BR.
func New(opts Options) (*Notifier, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	n := &Notifier{
		out:       opts.Out,
		styler:    opts.Styler,
		logger:    opts.Logger,
		localizer: i18n.NewLocalizer(bundle, opts.Language, DefaultLanguage.String()),
		quiet:     opts.Quiet,
	}
	if n.out == nil {
		n.out = io.Discard
	}
	if n.logger == nil {
		n.logger = log.NopLogger{}
	}
	return n, nil
}

// Message localizes id. Missing translations return id itself.
func (n *Notifier) Message(id string, data map[string]any) string {
	msg, err := n.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		n.logger.Debug("notify: localize %q: %v", id, err)
		return id
	}
	return msg
}

// ModeLabel returns the localized name of a theme mode.
func (n *Notifier) ModeLabel(mode domain.ThemeMode) string {
	return n.Message("mode."+string(mode), nil)
}

// ThemeChanged reports a mode change.
func (n *Notifier) ThemeChanged(mode domain.ThemeMode) {
	n.Success(ThemeChanged, map[string]any{"Mode": n.ModeLabel(mode)})
}

// Success prints a success message.
func (n *Notifier) Success(id string, data map[string]any) {
	msg := n.Message(id, data)
	n.logger.Info("notify: %s", msg)
	n.print(func(s domain.Styler) string { return s.Success("✓") }, msg)
}

// Error prints an error message.
func (n *Notifier) Error(id string, data map[string]any) {
	msg := n.Message(id, data)
	n.logger.Warn("notify: %s", msg)
	n.print(func(s domain.Styler) string { return s.Error("✗") }, msg)
}

func (n *Notifier) print(icon func(domain.Styler) string, msg string) {
	if n.quiet {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	prefix := ""
	if n.styler != nil {
		prefix = icon(n.styler) + " "
	}
	_, _ = fmt.Fprintln(n.out, prefix+msg)
}

// Discard is a Notifier stand-in that drops everything.
type Discard struct{}

func (Discard) Success(string, map[string]any) {}
func (Discard) Error(string, map[string]any)   {}
func (Discard) ThemeChanged(domain.ThemeMode)  {}

var (
	_ domain.Notifier = (*Notifier)(nil)
	_ domain.Notifier = Discard{}
)
