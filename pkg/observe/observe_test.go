package observe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestHandlers_Notify_RegistrationOrder verifies that callbacks run in
// the order they were registered.
func TestHandlers_Notify_RegistrationOrder(t *testing.T) {
	var h Handlers[int]
	var order []string

	h.Add(func(int) { order = append(order, "a") })
	h.Add(func(int) { order = append(order, "b") })
	h.Add(func(int) { order = append(order, "c") })
	h.Notify(0)

	if diff := cmp.Diff([]string{"a", "b", "c"}, order); diff != "" {
		t.Errorf("notification order mismatch (-want +got):\n%s", diff)
	}
}

// TestHandlers_Add_Unsubscribe verifies that the returned function
// removes the callback without disturbing the others.
func TestHandlers_Add_Unsubscribe(t *testing.T) {
	var h Handlers[int]
	var order []string

	h.Add(func(int) { order = append(order, "a") })
	unsub := h.Add(func(int) { order = append(order, "b") })
	h.Add(func(int) { order = append(order, "c") })

	unsub()
	h.Notify(0)

	if diff := cmp.Diff([]string{"a", "c"}, order); diff != "" {
		t.Errorf("notification order mismatch (-want +got):\n%s", diff)
	}
	if h.Len() != 2 {
		t.Errorf("expected 2 handlers after unsubscribe, got %d", h.Len())
	}
}

// TestHandlers_Add_UnsubscribeTwice verifies that calling an
// unsubscribe function twice is harmless.
func TestHandlers_Add_UnsubscribeTwice(t *testing.T) {
	var h Handlers[int]
	unsub := h.Add(func(int) {})
	unsub()
	unsub()

	if h.Len() != 0 {
		t.Errorf("expected 0 handlers, got %d", h.Len())
	}
}

// TestHandlers_Notify_RemoveDuringNotify verifies that removal during
// notification takes effect for the next Notify, not the current one.
func TestHandlers_Notify_RemoveDuringNotify(t *testing.T) {
	var h Handlers[int]
	calls := 0

	var unsubB func()
	h.Add(func(int) { unsubB() })
	unsubB = h.Add(func(int) { calls++ })

	h.Notify(0)
	if calls != 1 {
		t.Errorf("expected handler to run during the notify that removed it, got %d calls", calls)
	}

	h.Notify(0)
	if calls != 1 {
		t.Errorf("expected removed handler to stay silent, got %d calls", calls)
	}
}

// TestNotifier_Set_NotifiesOnChangeOnly verifies that listeners fire
// only when the value actually changes.
func TestNotifier_Set_NotifiesOnChangeOnly(t *testing.T) {
	n := NewNotifier(10)
	var got []int
	n.AddListener(func(v int) { got = append(got, v) })

	n.Set(10)
	n.Set(20)
	n.Set(20)
	n.Set(10)

	if diff := cmp.Diff([]int{20, 10}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
	if n.Value() != 10 {
		t.Errorf("expected value 10, got %d", n.Value())
	}
}

// TestTransactionalBool_Set_ImmediateOutsideTransaction verifies that
// changes outside a bracket notify right away.
func TestTransactionalBool_Set_ImmediateOutsideTransaction(t *testing.T) {
	var b TransactionalBool
	var got []bool
	b.AddListener(func(v bool) { got = append(got, v) })

	b.Set(true)
	b.Set(false)

	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

// TestTransactionalBool_End_CoalescesToOneNotification verifies that a
// bracket with several intermediate changes emits exactly once.
func TestTransactionalBool_End_CoalescesToOneNotification(t *testing.T) {
	var b TransactionalBool
	var got []bool
	b.AddListener(func(v bool) { got = append(got, v) })

	b.Begin()
	b.Set(true)
	b.Set(false)
	b.Set(true)
	b.End()

	if diff := cmp.Diff([]bool{true}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

// TestTransactionalBool_End_NoNetChangeIsSilent verifies that a bracket
// whose value ends where it began emits nothing.
func TestTransactionalBool_End_NoNetChangeIsSilent(t *testing.T) {
	var b TransactionalBool
	calls := 0
	b.AddListener(func(bool) { calls++ })

	b.Begin()
	b.Set(true)
	b.Set(false)
	b.End()

	if calls != 0 {
		t.Errorf("expected no notification for a net no-op, got %d", calls)
	}
}

// TestTransactionalBool_End_NestedBracketsEmitAtOutermost verifies that
// nested brackets defer the notification to the outermost End.
func TestTransactionalBool_End_NestedBracketsEmitAtOutermost(t *testing.T) {
	var b TransactionalBool
	var got []bool
	b.AddListener(func(v bool) { got = append(got, v) })

	b.Begin()
	b.Begin()
	b.Set(true)
	b.End()
	if len(got) != 0 {
		t.Fatal("inner End should not notify")
	}
	b.End()

	if diff := cmp.Diff([]bool{true}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

// TestTransactionalBool_End_WithoutBeginPanics verifies the unmatched
// End panic.
func TestTransactionalBool_End_WithoutBeginPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic from End without Begin")
		}
	}()
	var b TransactionalBool
	b.End()
}
