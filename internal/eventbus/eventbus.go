// Package eventbus provides a synchronous, closeable multicast used to
// broadcast selection changes to subscribers.
package eventbus

import "sync"

// Handler receives a published event.
type Handler[T any] func(T)

type subscription[T any] struct {
	id      uint64
	handler Handler[T]
}

// Emitter delivers each published event to every current subscriber, in
// subscription order, before Publish returns. Late subscribers do not see
// earlier events. A panicking handler propagates to the publisher.
type Emitter[T any] struct {
	mu     sync.Mutex
	subs   []subscription[T]
	nextID uint64
	closed bool
}

// New creates a new emitter.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe registers handler and returns a function that removes it.
// Subscribing to a closed emitter is a no-op.
func (e *Emitter[T]) Subscribe(handler Handler[T]) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscription[T]{id: id, handler: handler})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				break
			}
		}
	}
}

// Publish calls every subscriber with event. It does nothing once the
// emitter is closed.
func (e *Emitter[T]) Publish(event T) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	// Copy so handlers may subscribe or unsubscribe while being called.
	subs := make([]subscription[T], len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Close drops all subscribers and stops further delivery. It is safe to
// call more than once.
func (e *Emitter[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.subs = nil
}
