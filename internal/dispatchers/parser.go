// Package dispatchers implements the table-driven command grammar: a
// declarative Table of commands is used to parse an argument vector into
// normalized Options, to render help and to answer shell completion.
package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
	"github.com/gnote-tools/cli/internal/usage"
)

const (
	// CompletionKeyword switches the parser into completion mode.
	CompletionKeyword = "autocomplete"
	// HelpKeyword requests help, general or for the selected command.
	HelpKeyword = "--help"
)

var (
	// ErrNoCommand is returned when no token was given.
	ErrNoCommand = errors.New("no command")
	// ErrHelp is returned after help was printed on request.
	ErrHelp = errors.New("help requested")
	// ErrCompletion is returned after a completion line was printed.
	ErrCompletion = errors.New("completion printed")
)

// Result is a successfully parsed invocation.
type Result struct {
	Command string
	Options Options
}

// Parser parses argument vectors against a Table. A Parser holds no
// per-call state and may be reused.
type Parser struct {
	table  *Table
	out    io.Writer
	logger domain.Logger
	about  func(io.Writer)
}

// Option configures a Parser.
type Option func(*Parser)

// WithOutput sets where help, diagnostics and completion lines go.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.out = w }
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(l domain.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithAbout sets the message printed when no command is given.
func WithAbout(about func(io.Writer)) Option {
	return func(p *Parser) { p.about = about }
}

// NewParser returns a parser over table. Output defaults to stdout.
func NewParser(table *Table, opts ...Option) *Parser {
	p := &Parser{
		table:  table,
		out:    os.Stdout,
		logger: log.NopLogger{},
		about:  func(io.Writer) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the table the parser was built with.
func (p *Parser) Table() *Table {
	return p.table
}

// Parse selects the command named by the first token and parses the rest.
//
// ErrNoCommand, ErrHelp and ErrCompletion report that something was printed
// and nothing should run. Grammar failures are *usage.Error values with
// Shown set: the diagnostic and the matching help were already printed.
func (p *Parser) Parse(tokens []string) (Result, error) {
	if len(tokens) == 0 {
		p.about(p.out)
		return Result{}, ErrNoCommand
	}

	name, rest := tokens[0], tokens[1:]

	if name == CompletionKeyword {
		fmt.Fprintln(p.out, strings.Join(p.Complete(rest), " "))
		return Result{}, ErrCompletion
	}

	if name == HelpKeyword {
		p.table.WriteGeneralHelp(p.out)
		return Result{}, ErrHelp
	}

	cmd, ok := p.table.Lookup(name)
	if !ok {
		err := usage.UnknownCommand(name, FindSimilarCommands(name, p.table.Names(), 3)...)
		p.logger.Debug("dispatch: unknown command %q", name)
		return Result{}, p.fail(err, p.table.WriteGeneralHelp)
	}

	if slices.Contains(rest, HelpKeyword) {
		cmd.WriteHelp(p.out)
		return Result{}, ErrHelp
	}

	opts, err := cmd.scan(rest)
	if err != nil {
		p.logger.Debug("dispatch: %s: %s", name, err.Message)
		return Result{}, p.fail(err, cmd.WriteHelp)
	}

	p.logger.Debug("dispatch: %s %v", name, opts)
	return Result{Command: name, Options: opts}, nil
}

func (p *Parser) fail(err *usage.Error, help func(io.Writer)) error {
	fmt.Fprintln(p.out, err.Message)
	help(p.out)
	err.Shown = true
	return err
}
