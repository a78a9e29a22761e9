package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	MonthHeader lipgloss.Style
	Weekday     lipgloss.Style
	Day         lipgloss.Style
	RangeEdge   lipgloss.Style
	InRange     lipgloss.Style
	Preview     lipgloss.Style
	DragPreview lipgloss.Style
	Invalid     lipgloss.Style
	Summary     lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Actions     lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		MonthHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Weekday:     lipgloss.NewStyle().Faint(true),
		Day:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RangeEdge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		InRange:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Preview:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true), // yellow
		DragPreview: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Background(lipgloss.Color("24")),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Summary:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1),
		Actions:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
