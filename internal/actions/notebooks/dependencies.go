package notebooks

import (
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/session"
)

type Deps struct {
	Session  *session.Session
	Cache    domain.Cache
	Out      domain.OutputWriter
	Styler   domain.Styler
	Terminal domain.Terminal
	Progress domain.Progress
	Logger   domain.Logger
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		Session:  session.New(app),
		Cache:    app.Cache,
		Out:      app.Output,
		Styler:   app.Styler,
		Terminal: app.Terminal,
		Progress: app.Progress,
		Logger:   app.Logger,
	}
}
