package user

import (
	"os"
	"runtime"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/paths"
	"github.com/gnote-tools/cli/internal/session"
)

type Deps struct {
	Session  *session.Session
	Cache    domain.Cache
	Secrets  domain.SecretStore
	Connect  func(token string) domain.NoteService
	Out      domain.OutputWriter
	Styler   domain.Styler
	Terminal domain.Terminal
	Progress domain.Progress
	Logger   domain.Logger

	Version string
	AppDir  string
	LogPath string
	Getenv  func(string) string
	GOOS    string
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		Session:  session.New(app),
		Cache:    app.Cache,
		Secrets:  app.Secrets,
		Connect:  app.Connect,
		Out:      app.Output,
		Styler:   app.Styler,
		Terminal: app.Terminal,
		Progress: app.Progress,
		Logger:   app.Logger,
		Version:  app.Version,
		AppDir:   paths.AppDataDir(),
		LogPath:  paths.LogFilePath(),
		Getenv:   os.Getenv,
		GOOS:     runtime.GOOS,
	}
}
