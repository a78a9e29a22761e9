package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CellKind describes how a calendar day relates to the selection.
type CellKind uint8

const (
	CellSelected CellKind = 1 << iota
	CellRangeStart
	CellRangeEnd
	CellInRange
	CellPreview
	CellDragPreview
	CellInvalid
)

// Has reports whether all flags in f are set.
func (k CellKind) Has(f CellKind) bool {
	return k&f == f
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Month          time.Time // first day of the displayed month
	DaysInMonth    int
	LeadingDays    int // blank cells before the first day
	Active         time.Time
	Today          time.Time
	FirstDayOfWeek time.Weekday
	Classify       func(time.Time) CellKind
	Summary        string
	Valid          bool
	StatusMessage  string
	StatusIsError  bool
	Pending        bool
	Dragging       bool
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

var weekdayNames = [...]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")
	content.WriteString(r.RenderMonth(state))
	content.WriteString("\n\n")

	summary := r.styles.Summary
	if !state.Valid {
		summary = r.styles.Invalid
	}
	content.WriteString(summary.Render(state.Summary))

	if state.Pending {
		content.WriteString("\n")
		content.WriteString(r.styles.Actions.Render("[a] apply  [esc] cancel"))
	}
	if state.Dragging {
		content.WriteString("\n")
		content.WriteString(r.styles.Actions.Render("moving range: [m] drop  [esc] cancel move"))
	}

	if state.StatusMessage != "" {
		status := r.styles.Status
		if state.StatusIsError {
			status = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(status.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

// RenderMonth renders the month header, weekday names and day grid.
func (r *Renderer) RenderMonth(state ViewState) string {
	var b strings.Builder

	header := fmt.Sprintf("%s %d", state.Month.Month(), state.Month.Year())
	// Center over the 20 column grid
	b.WriteString(lipgloss.PlaceHorizontal(20, lipgloss.Center, r.styles.MonthHeader.Render(header)))
	b.WriteString("\n")

	names := make([]string, 7)
	for i := range names {
		names[i] = weekdayNames[(int(state.FirstDayOfWeek)+i)%7]
	}
	b.WriteString(r.styles.Weekday.Render(strings.Join(names, " ")))
	b.WriteString("\n")

	cells := make([]string, 0, 42)
	for i := 0; i < state.LeadingDays; i++ {
		cells = append(cells, "  ")
	}
	for d := 1; d <= state.DaysInMonth; d++ {
		date := state.Month.AddDate(0, 0, d-1)
		cells = append(cells, r.renderDay(state, date))
	}

	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		b.WriteString(strings.Join(cells[i:end], " "))
		if end < len(cells) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderDay(state ViewState, date time.Time) string {
	var kind CellKind
	if state.Classify != nil {
		kind = state.Classify(date)
	}

	style := r.styles.Day
	switch {
	case kind.Has(CellInvalid):
		style = r.styles.Invalid
	case kind.Has(CellDragPreview):
		style = r.styles.DragPreview
	case kind.Has(CellSelected), kind.Has(CellRangeStart), kind.Has(CellRangeEnd):
		style = r.styles.RangeEdge
	case kind.Has(CellInRange):
		style = r.styles.InRange
	case kind.Has(CellPreview):
		style = r.styles.Preview
	}

	if sameDay(date, state.Today) {
		style = style.Underline(true)
	}
	if sameDay(date, state.Active) {
		style = style.Reverse(true)
	}
	return style.Render(fmt.Sprintf("%2d", date.Day()))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
