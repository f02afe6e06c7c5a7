package observe

// TransactionalBool is a boolean notifier whose emissions can be
// bracketed: inside a Begin/End pair intermediate values are
// suppressed, and a single notification fires at the outermost End iff
// the net value differs from the value at the matching Begin.
//
// Brackets may nest; the depth counter tracks the outermost pair.
type TransactionalBool struct {
	value    bool
	depth    int
	opening  bool // value recorded at the outermost Begin
	handlers Handlers[bool]
}

// Value returns the current value.
func (t *TransactionalBool) Value() bool {
	return t.value
}

// Set updates the value. Outside a transaction a change notifies
// immediately; inside, notification is deferred to the outermost End.
func (t *TransactionalBool) Set(v bool) {
	if t.value == v {
		return
	}
	t.value = v
	if t.depth == 0 {
		t.handlers.Notify(v)
	}
}

// Begin opens a transaction bracket.
func (t *TransactionalBool) Begin() {
	if t.depth == 0 {
		t.opening = t.value
	}
	t.depth++
}

// End closes a transaction bracket. Closing the outermost bracket
// emits one notification if the value changed net over the bracket.
// End without a matching Begin panics.
func (t *TransactionalBool) End() {
	if t.depth == 0 {
		panic("observe: TransactionalBool.End without Begin")
	}
	t.depth--
	if t.depth == 0 && t.value != t.opening {
		t.handlers.Notify(t.value)
	}
}

// AddListener registers a callback fired on effective changes.
// Returns an unsubscribe function.
func (t *TransactionalBool) AddListener(fn func(bool)) func() {
	return t.handlers.Add(fn)
}
