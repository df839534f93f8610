package dirsync

import (
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
	"github.com/gnote-tools/cli/internal/session"
)

type Deps struct {
	Session  *session.Session
	Cache    domain.Cache
	Out      domain.OutputWriter
	Styler   domain.Styler
	Progress domain.Progress
	Logger   domain.Logger

	// OpenLog opens the log file given by --logpath.
	OpenLog func(path string) (domain.Logger, error)
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		Session:  session.New(app),
		Cache:    app.Cache,
		Out:      app.Output,
		Styler:   app.Styler,
		Progress: app.Progress,
		Logger:   app.Logger,
		OpenLog:  openLog,
	}
}

func openLog(path string) (domain.Logger, error) {
	l, err := log.New(path, log.LevelInfo)
	if err != nil {
		return nil, err
	}
	return l, nil
}
