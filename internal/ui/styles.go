package ui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Styles holds the lipgloss styles of the countdown view.
type Styles struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// NewStyles returns the styles for a light or dark terminal.
func NewStyles(dark bool) Styles {
	main := lipgloss.Color("#1B998B")
	secondary := lipgloss.Color("#F58F29")
	hint := lipgloss.Color("#6C757D")

	if dark {
		main = lipgloss.Color("#B0DB43")
		secondary = lipgloss.Color("#12EAEA")
		hint = lipgloss.Color("#A0A0A0")
	}

	return Styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(main).MarginRight(1),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
	}
}
