// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All
// styling is semantic (Success, Error, Header, ...) rather than visual.
// When disabled, every helper returns the input string unchanged with
// no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	// Pre-created styles, only used when enabled is true.
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	keyStyle     lipgloss.Style
	valueStyle   lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// DK_NO_COLOR environment variables; if either is set (to any non-empty
// value), styling stays disabled regardless of the enable parameter.
//
// Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("DK_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles()
	}
}

// initStyles creates the lipgloss styles. The ANSI 256-color profile is
// forced so output is stable regardless of lipgloss's own TTY
// detection.
func initStyles() {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Key styles an entry name.
func Key(text string) string {
	if !enabled {
		return text
	}
	return keyStyle.Render(text)
}

// Value styles an entry value.
func Value(text string) string {
	if !enabled {
		return text
	}
	return valueStyle.Render(text)
}
