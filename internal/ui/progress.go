package ui

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/ui/style"
)

var progressSpinner = spinner.Spinner{
	Frames: []string{">  ", ">> ", ">>>", " >>", "  >", "   "},
	FPS:    300 * time.Millisecond,
}

// Progress is a one-line spinner with a message, drawn by a bubbletea
// program while remote calls run. It does nothing when out is not a
// terminal.
type Progress struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
	message string
	program *tea.Program
	done    chan struct{}
}

// NewProgress creates a Progress drawing on out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{out: out, enabled: IsTerminal(out)}
}

// NewProgressFor is NewProgress with terminal detection overridden.
func NewProgressFor(out io.Writer, enabled bool) *Progress {
	return &Progress{out: out, enabled: enabled}
}

// Message returns the last message set.
func (p *Progress) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

// SetMessage shows the spinner with message, starting it if needed.
func (p *Progress) SetMessage(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.message = message
	if !p.enabled {
		return
	}
	if p.program == nil {
		p.start()
	}
	p.program.Send(messageMsg(message))
}

// Stop clears the spinner line. The next SetMessage shows it again.
func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program == nil {
		return
	}
	p.program.Send(stopMsg{})
	<-p.done
	p.program = nil
}

func (p *Progress) start() {
	m := progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(progressSpinner),
			spinner.WithStyle(style.MutedStyle()),
		),
		message: p.message,
	}

	p.program = tea.NewProgram(m,
		tea.WithOutput(p.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	p.done = make(chan struct{})

	program, done := p.program, p.done
	go func() {
		defer close(done)
		_, _ = program.Run()
	}()
}

type (
	messageMsg string
	stopMsg    struct{}
)

type progressModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messageMsg:
		m.message = string(msg)
		return m, nil
	case stopMsg:
		// An empty last frame clears the line.
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " : " + m.message
}

var _ domain.Progress = (*Progress)(nil)
