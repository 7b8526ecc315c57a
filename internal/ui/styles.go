package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for in-progress
	ColorBlue      = lipgloss.Color("75")  // Blue for todo

	// Prompt shown by the interactive shell
	StylePrompt = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// Styles is a palette bound to one renderer, so color decisions follow the
// writer being printed to rather than the process stdout.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Primary  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Todo     lipgloss.Style
	Progress lipgloss.Style
	Done     lipgloss.Style
}

// NewStyles builds the palette for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:    r.NewStyle().Foreground(ColorText).Bold(true),
		Subtle:   r.NewStyle().Foreground(ColorSecondary),
		Primary:  r.NewStyle().Foreground(ColorPrimary),
		Success:  r.NewStyle().Foreground(ColorSuccess),
		Error:    r.NewStyle().Foreground(ColorError).Bold(true),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Todo:     r.NewStyle().Foreground(ColorBlue),
		Progress: r.NewStyle().Foreground(ColorCyan),
		Done:     r.NewStyle().Foreground(ColorSuccess),
	}
}
