package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Matched    lipgloss.Style
	Mismatched lipgloss.Style
	Unmatched  lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Success    lipgloss.Style
	Info       lipgloss.Style
}

// DefaultStyles returns the styles used when color output is enabled.
func DefaultStyles() Styles {
	return Styles{
		Matched:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Mismatched: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Unmatched:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Dim:        lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// PlainStyles returns styles that render text unmodified, for non-terminal
// output or when color is disabled.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Matched:    plain,
		Mismatched: plain,
		Unmatched:  plain,
		Dim:        plain,
		Error:      plain,
		Warning:    plain,
		Success:    plain,
		Info:       plain,
	}
}

// ColorEnabled decides whether styled output should be used for a file,
// honoring the configured color mode: "always" and "never" are absolute,
// anything else enables color only when the file is a terminal.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
