// Package window abstracts the host window system consumed by the
// docking engine. The engine only creates, shows, resizes and closes
// top-level stages through the Backend interface; all real windowing
// (and everything drawn inside a stage) belongs to the embedding
// application.
package window

import "github.com/go-moor/moor/pkg/geometry"

// Window is an opaque handle to a host top-level window. Owner windows
// are passed through to the backend and never inspected by the engine.
type Window any

// Stage is one top-level window hosting floating content.
type Stage interface {
	// Show makes the stage visible at the given bounds.
	Show(bounds geometry.Rect)

	// Close hides and disposes the stage. A closed stage is not reused.
	Close()

	// Bounds returns the current stage bounds.
	Bounds() geometry.Rect

	// SetBounds moves and resizes the stage.
	SetBounds(bounds geometry.Rect)

	// AddResizeListener registers a callback fired when the stage size
	// changes, whether programmatically or by the user. Returns an
	// unsubscribe function.
	AddResizeListener(fn func(geometry.Size)) func()
}

// StageOptions configure stage creation.
type StageOptions struct {
	// Title is the stage's window title.
	Title string

	// Owner is the owning host window, if any.
	Owner Window

	// ShowCloseButton controls whether the stage decoration offers a
	// close control.
	ShowCloseButton bool

	// OnCloseRequest is invoked when the user asks the window system to
	// close the stage. The engine routes this to the hosted dockable's
	// close path; the backend must not close the stage itself.
	OnCloseRequest func()
}

// Backend creates top-level stages on behalf of the docking engine.
type Backend interface {
	CreateStage(opts StageOptions) (Stage, error)
}

var backend Backend = NewHeadless()

// SetBackend installs the process-wide stage backend.
// Pass nil to restore the headless backend.
func SetBackend(b Backend) {
	if b == nil {
		backend = NewHeadless()
		return
	}
	backend = b
}

// GetBackend returns the process-wide stage backend.
func GetBackend() Backend {
	return backend
}
