package selection

import (
	"datepick/internal/dateadapter"
	"datepick/internal/eventbus"
)

// Change is published whenever a model's selection is replaced.
type Change[S any] struct {
	Selection S
	// Source identifies who made the change, for example the model itself
	// for Add or a UI component for UpdateSelection.
	Source   any
	OldValue S
}

// Model holds the current selection S over dates of type D.
type Model[S any, D any] interface {
	Selection() S
	// UpdateSelection replaces the selection and notifies subscribers
	// before returning. No validation is performed.
	UpdateSelection(value S, source any)
	// Add applies a date to the selection in a variant specific way.
	Add(date *D)
	IsValid() bool
	IsComplete() bool
	// Clone returns an independent model with the same selection and adapter.
	Clone() Model[S, D]
	// Subscribe registers fn for changes and returns a function that removes it.
	Subscribe(fn func(Change[S])) func()
	// Close stops change notification. Safe to call more than once.
	Close()
	Adapter() dateadapter.Adapter[D]
}

// state is the part shared by both variants: the selection value, the
// adapter and the change emitter.
type state[S any, D any] struct {
	selection S
	adapter   dateadapter.Adapter[D]
	changes   *eventbus.Emitter[Change[S]]
}

func newState[S any, D any](selection S, adapter dateadapter.Adapter[D]) state[S, D] {
	return state[S, D]{
		selection: selection,
		adapter:   adapter,
		changes:   eventbus.New[Change[S]](),
	}
}

func (s *state[S, D]) Selection() S {
	return s.selection
}

func (s *state[S, D]) UpdateSelection(value S, source any) {
	old := s.selection
	s.selection = value
	s.changes.Publish(Change[S]{Selection: value, Source: source, OldValue: old})
}

func (s *state[S, D]) Subscribe(fn func(Change[S])) func() {
	return s.changes.Subscribe(fn)
}

func (s *state[S, D]) Close() {
	s.changes.Close()
}

func (s *state[S, D]) Adapter() dateadapter.Adapter[D] {
	return s.adapter
}

func (s *state[S, D]) isValidDate(d *D) bool {
	return d != nil && dateadapter.IsValidDate(s.adapter, *d)
}
