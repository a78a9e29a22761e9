// Package strategy computes how a date range responds to user gestures:
// finishing a selection, previewing while the cursor moves and dragging an
// existing range. Strategies hold no state; callers commit the ranges they
// return to a selection model.
package strategy

import (
	"datepick/internal/dateadapter"
	"datepick/internal/selection"
)

// RangeStrategy decides the range that results from a gesture.
type RangeStrategy[D any] interface {
	// SelectionFinished returns the range after the user picks date.
	SelectionFinished(date *D, current selection.DateRange[D]) selection.DateRange[D]
	// CreatePreview returns the range to show while active is focused or
	// hovered. The empty range means no preview.
	CreatePreview(active *D, current selection.DateRange[D]) selection.DateRange[D]
	// CreateDrag returns the range after dragging from origin to newDate.
	// It reports false when original is not complete.
	CreateDrag(origin D, original selection.DateRange[D], newDate D) (selection.DateRange[D], bool)
}

// Default extends an open range forward and otherwise starts a new one.
type Default[D any] struct {
	adapter dateadapter.Adapter[D]
}

var _ RangeStrategy[int] = (*Default[int])(nil)

// NewDefault returns the default strategy using adapter.
func NewDefault[D any](adapter dateadapter.Adapter[D]) *Default[D] {
	return &Default[D]{adapter: adapter}
}

// SelectionFinished sets the end of an open range when date is on or after
// its start. In every other case it starts a new range at date, so a date
// before the start restarts rather than inverting the range.
func (s *Default[D]) SelectionFinished(date *D, current selection.DateRange[D]) selection.DateRange[D] {
	start, end := current.Start, current.End
	switch {
	case start == nil:
		start = date
	case end == nil && date != nil && s.adapter.Compare(*date, *start) >= 0:
		end = date
	default:
		start, end = date, nil
	}
	return selection.NewDateRange(start, end)
}

// CreatePreview spans from the start of an open range to active. The
// preview is not reordered and may be inverted.
func (s *Default[D]) CreatePreview(active *D, current selection.DateRange[D]) selection.DateRange[D] {
	if current.Start != nil && current.End == nil && active != nil {
		return selection.NewDateRange(current.Start, active)
	}
	return selection.DateRange[D]{}
}

// CreateDrag moves the handle under origin to newDate, or shifts the whole
// range when origin is not a handle of a multi day range. A handle dragged
// past the other end pushes it by the same calendar delta.
func (s *Default[D]) CreateDrag(origin D, original selection.DateRange[D], newDate D) (selection.DateRange[D], bool) {
	if !original.IsComplete() {
		return selection.DateRange[D]{}, false
	}
	a := s.adapter
	start, end := *original.Start, *original.End
	d := deltaBetween(a, origin, newDate)
	isRange := a.Compare(start, end) != 0

	switch {
	case isRange && a.SameDate(origin, start):
		start = newDate
		if a.Compare(newDate, end) > 0 {
			end = shift(a, end, d)
		}
	case isRange && a.SameDate(origin, end):
		end = newDate
		if a.Compare(newDate, start) < 0 {
			start = shift(a, start, d)
		}
	default:
		start = shift(a, start, d)
		end = shift(a, end, d)
	}
	return selection.NewDateRange(&start, &end), true
}
