package testutil

import (
	"errors"
	"io"

	"github.com/gnote-tools/cli/internal/domain"
)

// ErrNoAnswer is returned by FakeTerminal when a script ran out.
var ErrNoAnswer = errors.New("no scripted answer")

// FakeTerminal answers prompts from scripts and records what was asked.
type FakeTerminal struct {
	Lines    []string
	Confirms []bool
	Selects  []int

	Prompts    []string
	Questions  []string
	Selections [][]string
}

func (t *FakeTerminal) Confirm(message string) (bool, error) {
	t.Questions = append(t.Questions, message)
	if len(t.Confirms) == 0 {
		return false, ErrNoAnswer
	}
	answer := t.Confirms[0]
	t.Confirms = t.Confirms[1:]
	return answer, nil
}

func (t *FakeTerminal) ReadLine(prompt string) (string, error) {
	t.Prompts = append(t.Prompts, prompt)
	if len(t.Lines) == 0 {
		return "", io.EOF
	}
	line := t.Lines[0]
	t.Lines = t.Lines[1:]
	return line, nil
}

func (t *FakeTerminal) ReadPassword(prompt string) (string, error) {
	return t.ReadLine(prompt)
}

func (t *FakeTerminal) Select(_ string, labels []string) (int, error) {
	t.Selections = append(t.Selections, labels)
	if len(t.Selects) == 0 {
		return -1, ErrNoAnswer
	}
	i := t.Selects[0]
	t.Selects = t.Selects[1:]
	return i, nil
}

// MemSecrets is a domain.SecretStore in memory.
type MemSecrets struct {
	Value string
	Err   error
}

func (m *MemSecrets) Token() (string, error) { return m.Value, m.Err }

func (m *MemSecrets) SetToken(token string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Value = token
	return nil
}

func (m *MemSecrets) DeleteToken() error {
	m.Value = ""
	return m.Err
}

// Progress records the messages shown.
type Progress struct {
	Messages []string
	Stops    int
}

func (p *Progress) SetMessage(message string) { p.Messages = append(p.Messages, message) }
func (p *Progress) Stop()                     { p.Stops++ }

var (
	_ domain.Terminal    = (*FakeTerminal)(nil)
	_ domain.SecretStore = (*MemSecrets)(nil)
	_ domain.Progress    = (*Progress)(nil)
)
