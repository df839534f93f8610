package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/gnote-tools/cli/internal/ui/style"
)

// DefaultTermWidth is used when the terminal size is unknown.
const DefaultTermWidth = 80

// TermWidth returns the width of stdout, or DefaultTermWidth.
func TermWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}

// RenderMarkdown renders note text for the terminal. Styling follows the
// terminal background; without styling the plain notty style is used.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	name := "notty"
	if style.Enabled() {
		name = "light"
		if style.IsDarkBackground() {
			name = "dark"
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(name),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n") + "\n", nil
}
