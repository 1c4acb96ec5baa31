// Package styles provides the colour theme and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the TUI colour palette.
type Theme struct {
	// Primary is the accent colour for titles and the selection bar.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for secondary text such as slugs and help lines.
	Muted lipgloss.Color

	// Error is for failure messages.
	Error lipgloss.Color

	// Border is the border colour for input fields.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#326CE5"), // Kubernetes blue
		Foreground: lipgloss.Color("#D8DEE9"),
		Muted:      lipgloss.Color("#616E88"),
		Error:      lipgloss.Color("#BF616A"),
		Border:     lipgloss.Color("#3B4252"),
	}
}

// Styles contains the pre-configured lipgloss styles used by the views.
type Styles struct {
	theme *Theme

	// Title style for view headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for secondary text.
	Muted lipgloss.Style

	// Selected style for the highlighted topic row.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Help style for the help footer.
	Help lipgloss.Style

	// InputField style for the filter input.
	InputField lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
