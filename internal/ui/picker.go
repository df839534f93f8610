package ui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gnote-tools/cli/internal/ui/style"
)

// ErrNotInteractive is returned by Pick without a terminal.
var ErrNotInteractive = errors.New("picker requires an interactive terminal")

type pickerKeys struct {
	Up, Down, Top, Bottom, Choose, Cancel key.Binding
}

var defaultPickerKeys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// Pick lets the user choose one of labels with the arrow keys. It returns
// the index of the choice, or -1 when cancelled.
func Pick(title string, labels []string) (int, error) {
	if !Interactive() {
		return -1, ErrNotInteractive
	}

	p := tea.NewProgram(newPicker(title, labels), tea.WithOutput(os.Stdout))
	final, err := p.Run()
	if err != nil {
		return -1, err
	}
	return final.(picker).chosen, nil
}

type picker struct {
	title  string
	labels []string
	cursor int
	chosen int
	done   bool
	keys   pickerKeys
}

func newPicker(title string, labels []string) picker {
	return picker{title: title, labels: labels, chosen: -1, keys: defaultPickerKeys}
}

func (m picker) Init() tea.Cmd {
	return nil
}

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if len(m.labels) == 0 {
		m.done = true
		return m, tea.Quit
	}

	last := len(m.labels) - 1
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = m.cursor
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = last
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < last {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		m.cursor = last
	}
	return m, nil
}

func (m picker) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(style.Header(m.title) + "\n\n")
	}

	selected := lipgloss.NewStyle().Bold(true)
	for i, label := range m.labels {
		if i == m.cursor {
			b.WriteString(" → " + selected.Render(label) + "\n")
		} else {
			b.WriteString("   " + label + "\n")
		}
	}

	var help []string
	for _, k := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Cancel} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n" + style.Muted(strings.Join(help, " • ")))
	return b.String()
}
