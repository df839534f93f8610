package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnote-tools/cli/internal/app"
	"github.com/gnote-tools/cli/internal/cli"
	"github.com/gnote-tools/cli/internal/commands"
	"github.com/gnote-tools/cli/internal/dispatchers"
	"github.com/gnote-tools/cli/internal/ui"
	"github.com/gnote-tools/cli/internal/ui/style"
	"github.com/gnote-tools/cli/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	parser := dispatchers.NewParser(cli.BuildTable(),
		dispatchers.WithOutput(stdout),
		dispatchers.WithAbout(func(w io.Writer) { ui.PrintAbout(w, app.Version) }),
	)

	result, err := parser.Parse(args)
	if err != nil {
		return report(stderr, err)
	}

	req, err := commands.Decode(result)
	if err != nil {
		return report(stderr, err)
	}

	application, err := app.New(app.DefaultOptions())
	if err != nil {
		return report(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, application, req); err != nil {
		application.Progress.Stop()
		application.Logger.Debug("%s: %v", result.Command, err)
		return report(stderr, err)
	}
	return 0
}

// report prints err unless it was already shown and returns the exit code.
func report(w io.Writer, err error) int {
	if errors.Is(err, dispatchers.ErrNoCommand) || errors.Is(err, dispatchers.ErrCompletion) {
		return 0
	}
	// Help was printed instead of running a command.
	if errors.Is(err, dispatchers.ErrHelp) {
		return 1
	}

	var uerr *usage.Error
	if errors.As(err, &uerr) {
		if !uerr.Shown {
			fmt.Fprintln(w, uerr.Error())
		}
		return uerr.GetExitCode()
	}

	if errors.Is(err, context.Canceled) {
		return 1
	}
	fmt.Fprintln(w, style.Error(err.Error()))
	return 1
}
