package completions

import (
	"context"
	"os"

	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/completions"
	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/usage"
)

type Deps struct {
	Out    domain.OutputWriter
	Getenv func(string) string
	Home   string
	Binary string
}

func NewDeps(app *domain.Application) Deps {
	home, _ := os.UserHomeDir()
	_, bin := completions.Binary()
	return Deps{
		Out:    app.Output,
		Getenv: os.Getenv,
		Home:   home,
		Binary: bin,
	}
}

// Completions prints the completion script, or how to install it.
func Completions(ctx context.Context, app *domain.Application, req commands.CompletionRequest) error {
	return completionsCmd(ctx, req, NewDeps(app))
}

func completionsCmd(_ context.Context, req commands.CompletionRequest, d Deps) error {
	var shell completions.Shell
	if req.Shell != "" {
		var err error
		if shell, err = completions.ParseShell(req.Shell); err != nil {
			return usage.InvalidValue("%v", err)
		}
	} else {
		shell = completions.RunningShell(d.Getenv)
		if shell == "" {
			return usage.InvalidValue("could not detect shell, specify one: %s completion <bash|zsh|fish>", d.Binary)
		}
	}

	if req.Script {
		return completions.PrintScript(d.Out, shell, d.Binary)
	}

	printInstructions(shell, d)
	return nil
}

func printInstructions(shell completions.Shell, d Deps) {
	autoPath := completions.AutoInstallPath(shell, d.Home, d.Binary)

	_, _ = d.Out.Println("To enable completions, choose one of the following:")
	_, _ = d.Out.Println()

	option := 1
	if autoPath != "" {
		_, _ = d.Out.Printf("%d. Write to auto-load directory:\n", option)
		_, _ = d.Out.Printf("   %s completion %s --script > %s\n", d.Binary, shell, autoPath)
		_, _ = d.Out.Println()
		option++
	}

	_, _ = d.Out.Printf("%d. Add to %s:\n", option, completions.RcFile(shell))
	_, _ = d.Out.Printf("   %s\n", completions.SourceInstructions(shell, d.Binary))
	_, _ = d.Out.Println()

	_, _ = d.Out.Println("Then restart your shell or run: exec $SHELL")
}
