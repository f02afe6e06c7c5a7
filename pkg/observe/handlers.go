// Package observe provides the callback primitives used by the docking
// engine: ordered handler lists, change notifiers, and a boolean whose
// notifications can be coalesced across multi-step operations.
//
// Everything in this package is synchronous and single-threaded; the
// only guarantee beyond that is invocation in registration order.
package observe

// handlerEntry pairs a callback with the registration id used for removal.
type handlerEntry[T any] struct {
	id int
	fn func(T)
}

// Handlers is an explicit ordered list of registered callbacks.
// The zero value is ready to use.
type Handlers[T any] struct {
	entries []handlerEntry[T]
	nextID  int
}

// Add registers a callback and returns an unsubscribe function.
// Callbacks are invoked in registration order.
func (h *Handlers[T]) Add(fn func(T)) func() {
	h.nextID++
	id := h.nextID
	h.entries = append(h.entries, handlerEntry[T]{id: id, fn: fn})
	return func() {
		for i, e := range h.entries {
			if e.id == id {
				h.entries = append(h.entries[:i], h.entries[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of registered callbacks.
func (h *Handlers[T]) Len() int {
	return len(h.entries)
}

// Notify invokes every registered callback with v, in registration order.
// Callbacks registered or removed during notification take effect for
// the next Notify call, not the current one.
func (h *Handlers[T]) Notify(v T) {
	entries := make([]handlerEntry[T], len(h.entries))
	copy(entries, h.entries)
	for _, e := range entries {
		e.fn(v)
	}
}
