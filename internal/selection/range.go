// Package selection holds the state of a date picker's current selection:
// a single date or a date range, with change notification.
package selection

import "datepick/internal/dateadapter"

// DateRange is an immutable pair of optional dates. A nil endpoint is unset.
// Start is expected to be on or before End when both are set, but inverted
// ranges are representable.
type DateRange[D any] struct {
	Start *D
	End   *D
}

// NewDateRange returns a range over the given endpoints.
func NewDateRange[D any](start, end *D) DateRange[D] {
	return DateRange[D]{Start: start, End: end}
}

// IsEmpty reports whether neither endpoint is set.
func (r DateRange[D]) IsEmpty() bool {
	return r.Start == nil && r.End == nil
}

// IsComplete reports whether both endpoints are set.
func (r DateRange[D]) IsComplete() bool {
	return r.Start != nil && r.End != nil
}

// Contains reports whether d lies within a complete range, inclusive.
func (r DateRange[D]) Contains(a dateadapter.Adapter[D], d D) bool {
	if !r.IsComplete() {
		return false
	}
	return a.Compare(*r.Start, d) <= 0 && a.Compare(d, *r.End) <= 0
}

// Equal reports whether both ranges have the same endpoints according to a.
func (r DateRange[D]) Equal(a dateadapter.Adapter[D], o DateRange[D]) bool {
	return sameOptional(a, r.Start, o.Start) && sameOptional(a, r.End, o.End)
}

func sameOptional[D any](a dateadapter.Adapter[D], x, y *D) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return a.SameDate(*x, *y)
}

// Ptr returns a pointer to a copy of d, for building ranges from values.
func Ptr[D any](d D) *D {
	return &d
}
