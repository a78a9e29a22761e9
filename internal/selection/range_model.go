package selection

import "datepick/internal/dateadapter"

// RangeModel selects a start and an end date. Dates are filled in the order
// they are added: start, then end, then the next Add starts over.
type RangeModel[D any] struct {
	state[DateRange[D], D]
}

var _ Model[DateRange[int], int] = (*RangeModel[int])(nil)

// NewRangeModel creates an empty range model.
func NewRangeModel[D any](adapter dateadapter.Adapter[D]) *RangeModel[D] {
	return &RangeModel[D]{state: newState(DateRange[D]{}, adapter)}
}

// Add sets the start if unset, otherwise the end if unset, otherwise starts
// a new range at date. The end is stored even when it is before the start.
func (m *RangeModel[D]) Add(date *D) {
	start, end := m.selection.Start, m.selection.End
	switch {
	case start == nil:
		start = date
	case end == nil:
		end = date
	default:
		start, end = date, nil
	}
	m.UpdateSelection(NewDateRange(start, end), m)
}

// IsValid reports whether every set endpoint is a valid date and, for a
// complete range, whether start is not after end. The empty range is valid.
func (m *RangeModel[D]) IsValid() bool {
	start, end := m.selection.Start, m.selection.End
	switch {
	case start == nil && end == nil:
		return true
	case start != nil && end != nil:
		return m.isValidDate(start) && m.isValidDate(end) &&
			m.adapter.Compare(*start, *end) <= 0
	case start != nil:
		return m.isValidDate(start)
	default:
		return m.isValidDate(end)
	}
}

// IsComplete reports whether both endpoints are set. A complete range may
// still be invalid.
func (m *RangeModel[D]) IsComplete() bool {
	return m.selection.IsComplete()
}

func (m *RangeModel[D]) Clone() Model[DateRange[D], D] {
	c := NewRangeModel(m.adapter)
	c.UpdateSelection(m.selection, m)
	return c
}
