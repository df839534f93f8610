package config

import "github.com/gnote-tools/cli/internal/domain"

type Deps struct {
	Config domain.ConfigProvider
	Out    domain.OutputWriter
	Styler domain.Styler
	Logger domain.Logger
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		Config: app.Config,
		Out:    app.Output,
		Styler: app.Styler,
		Logger: app.Logger,
	}
}
