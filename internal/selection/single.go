package selection

import "datepick/internal/dateadapter"

// SingleModel selects at most one date.
type SingleModel[D any] struct {
	state[*D, D]
}

var _ Model[*int, int] = (*SingleModel[int])(nil)

// NewSingleModel creates an empty single date model.
func NewSingleModel[D any](adapter dateadapter.Adapter[D]) *SingleModel[D] {
	return &SingleModel[D]{state: newState[*D](nil, adapter)}
}

// Add replaces the selection with date.
func (m *SingleModel[D]) Add(date *D) {
	m.UpdateSelection(date, m)
}

// IsValid reports whether a date is selected and the adapter considers it
// a valid date.
func (m *SingleModel[D]) IsValid() bool {
	return m.isValidDate(m.selection)
}

// IsComplete reports whether a date is selected.
func (m *SingleModel[D]) IsComplete() bool {
	return m.selection != nil
}

func (m *SingleModel[D]) Clone() Model[*D, D] {
	c := NewSingleModel(m.adapter)
	c.UpdateSelection(m.selection, m)
	return c
}
