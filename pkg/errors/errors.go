// Package errors provides structured error reporting for the Moor
// docking engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBackend indicates a window-backend failure (stage creation, show).
	KindBackend
	// KindPlacement indicates a failed placement operation.
	KindPlacement
	// KindTree indicates an inconsistency detected in the zone tree.
	KindTree
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBackend:
		return "backend"
	case KindPlacement:
		return "placement"
	case KindTree:
		return "tree"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MoorError represents a structured error in the docking engine.
type MoorError struct {
	// Op is the operation that failed (e.g., "dock.ToFloating").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// ViewID identifies the affected dockable, if applicable.
	ViewID string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MoorError) Error() string {
	if e.ViewID != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.ViewID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MoorError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dock.Close handler").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the docking engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MoorError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
