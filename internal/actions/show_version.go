package actions

import (
	"context"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/domain"
)

type versionDeps struct {
	Out     domain.OutputWriter
	Version string
}

func ShowVersion(ctx context.Context, app *domain.Application, req commands.VersionRequest) error {
	return showVersion(ctx, req, versionDeps{Out: app.Output, Version: app.Version})
}

func showVersion(_ context.Context, _ commands.VersionRequest, d versionDeps) error {
	_, _ = d.Out.Printf("gnote version %s\n", d.Version)
	return nil
}
