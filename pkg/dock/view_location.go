package dock

import (
	"github.com/go-moor/moor/pkg/geometry"
	"github.com/go-moor/moor/pkg/window"
)

// ViewLocation is a remembered placement a caller may snapshot via
// Dockable.Location and later feed to Dockable.TryMakeVisible. This is
// a sealed union of DockLocation and FloatingLocation; its on-disk
// encoding is up to the application.
type ViewLocation interface {
	viewLocation()
}

// DockLocation remembers a tab dock host as the placement target.
// It becomes stale if the host is later removed from its tree.
type DockLocation struct {
	Host *TabDockHost
}

func (DockLocation) viewLocation() {}

// FloatingLocation remembers floating bounds and the owner window.
// Floating locations never go stale; restoring one opens a new stage.
type FloatingLocation struct {
	Bounds geometry.Rect
	Owner  window.Window
}

func (FloatingLocation) viewLocation() {}
