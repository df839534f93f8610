// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error...) rather than visual.
// When disabled, every helper returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init sets up styling from the configuration. NO_COLOR and GNOTE_NO_COLOR
// disable it regardless of enable. A nil cfg uses the default theme.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("GNOTE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the active colors; empty when styling is off.
func GetColors() ColorConfig {
	return colors
}

func initStyles(colors ColorConfig) {
	// ANSI256 regardless of TTY detection, so 0-255 overrides always apply.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// makeStyle reads "bold" or an ANSI color number.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is on.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles confirmations such as "Note successfully saved."
func Success(text string) string { return render(successStyle, text) }

// Warning styles prompts and recoverable problems.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles failure messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles neutral notices.
func Info(text string) string { return render(infoStyle, text) }

// Header styles separators and titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary columns such as dates and GUIDs.
func Muted(text string) string { return render(mutedStyle, text) }

// MutedStyle is the lipgloss style behind Muted, for bubbles components.
// It is unstyled when styling is off.
func MutedStyle() lipgloss.Style {
	if !enabled {
		return lipgloss.NewStyle()
	}
	return mutedStyle
}
