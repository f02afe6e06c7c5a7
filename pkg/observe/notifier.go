package observe

// Notifier holds a current value and notifies listeners when it changes.
type Notifier[T comparable] struct {
	value    T
	handlers Handlers[T]
}

// NewNotifier creates a Notifier with the given initial value.
func NewNotifier[T comparable](initial T) *Notifier[T] {
	return &Notifier[T]{value: initial}
}

// Value returns the current value.
func (n *Notifier[T]) Value() T {
	return n.value
}

// Set updates the value and notifies listeners if it changed.
func (n *Notifier[T]) Set(v T) {
	if n.value == v {
		return
	}
	n.value = v
	n.handlers.Notify(v)
}

// AddListener registers a callback fired on every change.
// Returns an unsubscribe function.
func (n *Notifier[T]) AddListener(fn func(T)) func() {
	return n.handlers.Add(fn)
}
