package app

import (
	"fmt"
	"os"
	"time"

	"github.com/gnote-tools/cli/internal/config"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
	"github.com/gnote-tools/cli/internal/notestore"
	"github.com/gnote-tools/cli/internal/paths"
	"github.com/gnote-tools/cli/internal/secret"
	"github.com/gnote-tools/cli/internal/store"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/ui/style"
)

// Version is set at build time.
var Version = "dev"

// Options configures the application factory.
type Options struct {
	PagerDisabled bool
	StyleEnabled  bool

	Config  domain.ConfigProvider
	Keyring secret.KeyringAPI
}

// DefaultOptions returns the options for a normal run on the rc file.
func DefaultOptions() Options {
	return Options{
		StyleEnabled: ui.IsTerminal(os.Stdout),
		Config:       config.NewProvider(),
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	if opts.Config == nil {
		opts.Config = config.NewProvider()
	}

	settings, settingsErr := config.Load(opts.Config)
	if settingsErr != nil {
		settings = config.DefaultSettings()
	}

	logger, err := log.Open(paths.LogFilePath(), settings.EnableLog, settings.LogLevel)
	if err != nil {
		logger = log.NopLogger{}
	}
	log.SetDefault(logger)
	if settingsErr != nil {
		logger.Warn("app: %v, using defaults", settingsErr)
	}

	cache, err := store.New(store.DBPath())
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	all, _ := opts.Config.GetAll()
	style.Init(opts.StyleEnabled, all)
	styler := style.NewStyler()

	writerOpts := []ui.WriterOption{ui.WithPager(settings.Pager)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}

	progress := ui.NewProgress(os.Stderr)
	prompterOpts := []ui.PrompterOption{ui.WithProgress(progress)}
	if ui.Interactive() {
		prompterOpts = append(prompterOpts, ui.WithPicker(ui.Pick))
	}

	secretOpts := []secret.Option{secret.WithLogger(named(logger, "secret"))}
	if opts.Keyring != nil {
		secretOpts = append(secretOpts, secret.WithKeyring(opts.Keyring))
	}

	serviceLogger := named(logger, "notestore")
	connect := func(token string) domain.NoteService {
		return notestore.New(notestore.Config{
			Endpoint:         notestore.Endpoint(settings.ServiceHost),
			Token:            token,
			UserAgent:        "gnote/" + Version,
			MaxRetries:       settings.MaxRetries,
			SleepOnRateLimit: settings.SleepOnRateLimit,
			Timeout:          settings.RequestTimeout,
		},
			notestore.WithLogger(serviceLogger),
			notestore.WithNotify(func(msg string) {
				progress.Stop()
				fmt.Fprintln(os.Stderr, styler.Warning(msg))
			}),
		)
	}

	return &domain.Application{
		Config:   opts.Config,
		Cache:    cache,
		Secrets:  secret.New(cache, secretOpts...),
		Logger:   logger,
		Output:   ui.NewWriter(writerOpts...),
		ErrOut:   os.Stderr,
		Input:    os.Stdin,
		Styler:   styler,
		Progress: progress,
		Terminal: ui.NewPrompter(os.Stdin, os.Stdout, os.Stderr, prompterOpts...),
		Connect:  connect,
		Host:     settings.ServiceHost,
		Version:  Version,
		Now:      time.Now,
		Location: time.Local,
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Progress != nil {
		app.Progress.Stop()
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Cache != nil {
		return app.Cache.Close()
	}
	return nil
}

func named(logger domain.Logger, component string) domain.Logger {
	if l, ok := logger.(interface {
		Named(string) domain.Logger
	}); ok {
		return l.Named(component)
	}
	return logger
}
