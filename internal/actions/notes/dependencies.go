package notes

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/gnote-tools/cli/internal/config"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/editor"
	"github.com/gnote-tools/cli/internal/paths"
	"github.com/gnote-tools/cli/internal/prefs"
	"github.com/gnote-tools/cli/internal/session"
	"github.com/gnote-tools/cli/internal/ui"
)

// EditSession is one editor session over a note's text.
type EditSession struct {
	Title string
	Text  string
	Ext   string

	// SaveUnchanged saves the text once even if it was not modified.
	SaveUnchanged bool

	Save editor.SaveFunc
}

// EditFunc opens the editor and calls e.Save as the file changes.
type EditFunc func(ctx context.Context, e EditSession) error

type Deps struct {
	Session  *session.Session
	Cache    domain.Cache
	Out      domain.OutputWriter
	In       io.Reader
	Styler   domain.Styler
	Terminal domain.Terminal
	Progress domain.Progress
	Logger   domain.Logger
	Settings config.Settings

	Host     string
	Now      func() time.Time
	Location *time.Location

	Edit     EditFunc
	ReadFile func(path string) ([]byte, error)
	IsFile   func(path string) bool

	// Render formats note text for display; nil prints it as is.
	Render func(text string) string
}

func NewDeps(app *domain.Application) Deps {
	settings, err := config.Load(app.Config)
	if err != nil {
		app.Logger.Warn("notes: %v, using defaults", err)
		settings = config.DefaultSettings()
	}

	deps := Deps{
		Session:  session.New(app),
		Cache:    app.Cache,
		Out:      app.Output,
		In:       app.Input,
		Styler:   app.Styler,
		Terminal: app.Terminal,
		Progress: app.Progress,
		Logger:   app.Logger,
		Settings: settings,
		Host:     app.Host,
		Now:      app.Now,
		Location: app.Location,
		ReadFile: os.ReadFile,
		IsFile:   isFile,
	}
	deps.Edit = openEditor(app.Cache, app.Logger, settings.AutosaveInterval)
	if settings.RenderMarkdown && app.Styler.Enabled() {
		deps.Render = renderMarkdown(app.Logger)
	}
	return deps
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// openEditor runs the configured editor on a temp file in the edit dir.
func openEditor(cache domain.Cache, logger domain.Logger, interval time.Duration) EditFunc {
	return func(ctx context.Context, e EditSession) error {
		p, err := prefs.Load(cache)
		if err != nil {
			return err
		}
		command := editor.Resolve(p.Editor, os.Getenv, runtime.GOOS)

		s, err := editor.New(paths.EditDir(), e.Title, e.Ext, e.Text, command, editor.WithLogger(logger))
		if err != nil {
			return err
		}
		opts := editor.WatchOptions{Interval: interval, SaveUnchanged: e.SaveUnchanged}
		return s.Watch(ctx, opts, e.Save)
	}
}

func renderMarkdown(logger domain.Logger) func(string) string {
	return func(text string) string {
		out, err := ui.RenderMarkdown(text, ui.TermWidth())
		if err != nil {
			logger.Warn("render note: %v", err)
			return text
		}
		return out
	}
}

func (d Deps) now() time.Time {
	return d.Now().In(d.Location)
}
