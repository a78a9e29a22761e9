package ui

import (
	"fmt"
	"time"

	"datepick/internal/dateadapter"
	"datepick/internal/selection"
	"datepick/internal/strategy"
	"datepick/internal/ui/views"
)

// selector adapts one of the selection model variants to the picker.
type selector interface {
	// pick commits a user selection of d.
	pick(d time.Time)
	// hover updates previews for the active date.
	hover(active time.Time)
	clear()
	classify(d time.Time) views.CellKind
	complete() bool
	valid() bool
	summary(layout string) string
	// apply pushes buffered edits to the global model.
	apply()
	// cancel discards buffered edits.
	cancel()
	buffered() bool
	result() Result
	close()
}

// Result is the committed selection when the picker finished.
type Result struct {
	Start     *time.Time
	End       *time.Time
	Cancelled bool
}

type rangeModel = selection.Model[selection.DateRange[time.Time], time.Time]

type rangeSelector struct {
	adapter     dateadapter.Adapter[time.Time]
	strategy    strategy.RangeStrategy[time.Time]
	global      rangeModel
	pending     *selection.Pending[selection.DateRange[time.Time], time.Time]
	showPreview bool

	preview     selection.DateRange[time.Time]
	dragOrigin  *time.Time
	dragPreview selection.DateRange[time.Time]
}

func newRangeSelector(a dateadapter.Adapter[time.Time], s strategy.RangeStrategy[time.Time], global rangeModel, useActions, showPreview bool) *rangeSelector {
	rs := &rangeSelector{adapter: a, strategy: s, global: global, showPreview: showPreview}
	if useActions {
		rs.pending = selection.NewPending(global)
	}
	return rs
}

// model returns the model edits go to.
func (s *rangeSelector) model() rangeModel {
	if s.pending != nil && !s.pending.Done() {
		return s.pending.Working()
	}
	return s.global
}

func (s *rangeSelector) pick(d time.Time) {
	m := s.model()
	m.UpdateSelection(s.strategy.SelectionFinished(&d, m.Selection()), s)
	s.hover(d)
}

func (s *rangeSelector) hover(active time.Time) {
	current := s.model().Selection()
	s.preview = selection.DateRange[time.Time]{}
	if s.showPreview {
		s.preview = s.strategy.CreatePreview(&active, current)
	}
	if s.dragOrigin != nil {
		if r, ok := s.strategy.CreateDrag(*s.dragOrigin, current, active); ok {
			s.dragPreview = r
		}
	}
}

// grab starts moving the range from origin. It fails unless the range is
// complete.
func (s *rangeSelector) grab(origin time.Time) bool {
	if !s.model().Selection().IsComplete() {
		return false
	}
	s.dragOrigin = &origin
	s.dragPreview = s.model().Selection()
	return true
}

// drop commits the move to at.
func (s *rangeSelector) drop(at time.Time) {
	if s.dragOrigin == nil {
		return
	}
	m := s.model()
	if r, ok := s.strategy.CreateDrag(*s.dragOrigin, m.Selection(), at); ok {
		m.UpdateSelection(r, s)
	}
	s.cancelDrag()
}

func (s *rangeSelector) cancelDrag() {
	s.dragOrigin = nil
	s.dragPreview = selection.DateRange[time.Time]{}
}

func (s *rangeSelector) dragging() bool {
	return s.dragOrigin != nil
}

func (s *rangeSelector) clear() {
	s.cancelDrag()
	s.preview = selection.DateRange[time.Time]{}
	s.model().UpdateSelection(selection.DateRange[time.Time]{}, s)
}

func (s *rangeSelector) classify(d time.Time) views.CellKind {
	var kind views.CellKind
	r := s.model().Selection()
	if r.Start != nil && s.adapter.SameDate(*r.Start, d) {
		kind |= views.CellRangeStart
	}
	if r.End != nil && s.adapter.SameDate(*r.End, d) {
		kind |= views.CellRangeEnd
	}
	if r.Contains(s.adapter, d) {
		kind |= views.CellInRange
	}
	if s.preview.Contains(s.adapter, d) {
		kind |= views.CellPreview
	}
	if s.dragOrigin != nil && s.dragPreview.Contains(s.adapter, d) {
		kind |= views.CellDragPreview
	}
	if r.IsComplete() && !s.model().IsValid() && kind&(views.CellRangeStart|views.CellRangeEnd) != 0 {
		kind |= views.CellInvalid
	}
	return kind
}

func (s *rangeSelector) complete() bool { return s.model().IsComplete() }
func (s *rangeSelector) valid() bool    { return s.model().IsValid() }

func (s *rangeSelector) summary(layout string) string {
	r := s.model().Selection()
	return fmt.Sprintf("%s → %s", formatOptional(r.Start, layout, "start"), formatOptional(r.End, layout, "end"))
}

func (s *rangeSelector) apply() {
	if s.pending != nil {
		s.pending.Apply(s)
	}
}

func (s *rangeSelector) cancel() {
	if s.pending != nil {
		s.pending.Cancel()
	}
}

func (s *rangeSelector) buffered() bool {
	return s.pending != nil && !s.pending.Done()
}

func (s *rangeSelector) result() Result {
	r := s.global.Selection()
	return Result{Start: r.Start, End: r.End}
}

func (s *rangeSelector) close() {
	s.cancel()
	s.global.Close()
}

type singleModel = selection.Model[*time.Time, time.Time]

type singleSelector struct {
	adapter dateadapter.Adapter[time.Time]
	global  singleModel
	pending *selection.Pending[*time.Time, time.Time]
}

func newSingleSelector(a dateadapter.Adapter[time.Time], global singleModel, useActions bool) *singleSelector {
	ss := &singleSelector{adapter: a, global: global}
	if useActions {
		ss.pending = selection.NewPending(global)
	}
	return ss
}

func (s *singleSelector) model() singleModel {
	if s.pending != nil && !s.pending.Done() {
		return s.pending.Working()
	}
	return s.global
}

func (s *singleSelector) pick(d time.Time) {
	s.model().Add(&d)
}

func (s *singleSelector) hover(time.Time) {}

func (s *singleSelector) clear() {
	s.model().UpdateSelection(nil, s)
}

func (s *singleSelector) classify(d time.Time) views.CellKind {
	sel := s.model().Selection()
	if sel == nil || !s.adapter.SameDate(*sel, d) {
		return 0
	}
	if !s.model().IsValid() {
		return views.CellSelected | views.CellInvalid
	}
	return views.CellSelected
}

func (s *singleSelector) complete() bool { return s.model().IsComplete() }
func (s *singleSelector) valid() bool    { return s.model().IsValid() }

func (s *singleSelector) summary(layout string) string {
	return formatOptional(s.model().Selection(), layout, "no date")
}

func (s *singleSelector) apply() {
	if s.pending != nil {
		s.pending.Apply(s)
	}
}

func (s *singleSelector) cancel() {
	if s.pending != nil {
		s.pending.Cancel()
	}
}

func (s *singleSelector) buffered() bool {
	return s.pending != nil && !s.pending.Done()
}

func (s *singleSelector) result() Result {
	return Result{Start: s.global.Selection()}
}

func (s *singleSelector) close() {
	s.cancel()
	s.global.Close()
}

func formatOptional(d *time.Time, layout, placeholder string) string {
	if d == nil {
		return "…" + placeholder
	}
	return d.Format(layout)
}
