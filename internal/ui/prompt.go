package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/ui/style"
)

// Prompter implements domain.Terminal on a line-oriented input. The
// progress indicator is stopped before every prompt.
type Prompter struct {
	in       *bufio.Reader
	inFile   *os.File
	out      io.Writer
	errOut   io.Writer
	progress domain.Progress
	picker   func(title string, labels []string) (int, error)
}

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithProgress sets the indicator paused around prompts.
func WithProgress(p domain.Progress) PrompterOption {
	return func(t *Prompter) {
		if p != nil {
			t.progress = p
		}
	}
}

// WithPicker replaces the numbered prompt of Select.
func WithPicker(fn func(title string, labels []string) (int, error)) PrompterOption {
	return func(t *Prompter) {
		t.picker = fn
	}
}

// NewPrompter reads answers from in and writes prompts to out, complaints
// to errOut. Passwords are read without echo when in is a terminal.
func NewPrompter(in io.Reader, out, errOut io.Writer, opts ...PrompterOption) *Prompter {
	t := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		errOut:   errOut,
		progress: nopProgress{},
	}
	if f, ok := in.(*os.File); ok {
		t.inFile = f
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ReadLine prints prompt and returns the answer without the newline.
// EOF with no answer is io.EOF.
func (t *Prompter) ReadLine(prompt string) (string, error) {
	t.progress.Stop()
	fmt.Fprint(t.out, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword is ReadLine without echo on a terminal.
func (t *Prompter) ReadPassword(prompt string) (string, error) {
	if t.inFile == nil || !term.IsTerminal(int(t.inFile.Fd())) {
		return t.ReadLine(prompt)
	}

	t.progress.Stop()
	fmt.Fprint(t.out, prompt)
	data, err := term.ReadPassword(int(t.inFile.Fd()))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Confirm prints message and asks until the answer is yes or no.
func (t *Prompter) Confirm(message string) (bool, error) {
	t.progress.Stop()
	fmt.Fprintln(t.out, message)

	for {
		answer, err := t.ReadLine("Yes/No: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "yes", "ye", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(t.errOut, style.Error(fmt.Sprintf("Incorrect answer \"%s\", please try again:\n", answer)))
	}
}

// Select prints labels numbered from 1 and asks for a number; 0 or q
// cancels and yields -1. A configured picker replaces the prompt.
func (t *Prompter) Select(title string, labels []string) (int, error) {
	t.progress.Stop()
	if t.picker != nil {
		return t.picker(title, labels)
	}

	if title != "" {
		fmt.Fprintln(t.out, title)
	}
	for i, label := range labels {
		fmt.Fprintf(t.out, "%s : %s\n", rjust(strconv.Itoa(i+1), 3), label)
	}
	fmt.Fprintln(t.out, "  0 : -Cancel-")

	for {
		answer, err := t.ReadLine(": ")
		if err != nil {
			return -1, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "0" || answer == "q" {
			return -1, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		fmt.Fprintln(t.errOut, style.Error(fmt.Sprintf("Incorrect number \"%s\", please try again:\n", answer)))
	}
}

type nopProgress struct{}

func (nopProgress) SetMessage(string) {}
func (nopProgress) Stop()             {}

var _ domain.Terminal = (*Prompter)(nil)
