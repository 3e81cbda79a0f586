// Package style provides shared UI styling primitives including colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Header renders a section header for plan and status output.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Teal)

// Muted renders secondary detail text.
var Muted = lipgloss.NewStyle().Foreground(Slate)

// OKStyle renders success markers.
var OKStyle = lipgloss.NewStyle().Foreground(Green)

// FailStyle renders failure markers.
var FailStyle = lipgloss.NewStyle().Foreground(Red)

// WarnStyle renders warning markers.
var WarnStyle = lipgloss.NewStyle().Foreground(Yellow)
