package settings

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zWesleyDavid/prototipo-luvr/internal/app"
	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/settings"
)

// Service is the part of settings.Service these commands use.
type Service interface {
	Current() settings.Settings
	Reset() (settings.Settings, error)
	Export(w io.Writer, format settings.Format) (settings.Backup, error)
	Import(r io.Reader, format settings.Format) (settings.Backup, error)
	ClearAll() error
}

type Deps struct {
	Settings Service
	Notifier domain.Notifier
	Styler   domain.Styler
	Out      io.Writer
	Printf   func(string, ...any) (int, error)
	Page     func(string)
	Create   func(string) (io.WriteCloser, error)
	Open     func(string) (io.ReadCloser, error)
	Remove   func(string) error
	Now      func() time.Time
}

func DefaultDeps(a *app.App) Deps {
	return Deps{
		Settings: a.Settings,
		Notifier: a.Notifier,
		Styler:   a.Styler,
		Out:      a.Output,
		Printf:   func(format string, args ...any) (int, error) { return fmt.Fprintf(a.Output, format, args...) },
		Create: func(path string) (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		},
		Open:   func(path string) (io.ReadCloser, error) { return os.Open(path) },
		Remove: os.Remove,
		Now:    time.Now,
	}
}
