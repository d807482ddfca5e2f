// Package styles defines the visual styling for claude-profiles terminal
// output. Styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes; color is disabled automatically when
// stdout is not a terminal.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var registry = map[string]lipgloss.Style{
	"Error": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"}),
	"Success": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#2ECC71"}),
	"Warning": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#F39C12"}),
	"ProfileName": lipgloss.NewStyle().
		Bold(true),
	"Category": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1F618D", Dark: "#5DADE2"}),
	"Muted": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#95A5A6"}),
}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// GetStyle returns the style registered under the given semantic name,
// or a zero style for unknown names so callers can render unconditionally.
func GetStyle(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
