package dock

import (
	"github.com/go-moor/moor/pkg/geometry"
	"github.com/go-moor/moor/pkg/window"
)

// FloatingStage is an independent top-level window hosting exactly one
// Dockable. It is created by ToFloating and disposed only through the
// dockable's detach path, never directly by application code.
type FloatingStage struct {
	dockable *Dockable
	owner    window.Window
	stage    window.Stage
}

// newFloatingStage creates the backing window for a floating dockable.
// The window's close control routes through the dockable's close path
// so close vetoes and handlers apply to floating views too.
func newFloatingStage(d *Dockable, owner window.Window) (*FloatingStage, error) {
	stage, err := window.GetBackend().CreateStage(window.StageOptions{
		Title:           d.Title(),
		Owner:           owner,
		ShowCloseButton: d.ShowCloseButton(),
		OnCloseRequest:  func() { d.Close() },
	})
	if err != nil {
		return nil, err
	}
	return &FloatingStage{dockable: d, owner: owner, stage: stage}, nil
}

// Dockable returns the dockable hosted by this stage.
func (f *FloatingStage) Dockable() *Dockable {
	return f.dockable
}

// Owner returns the owner window the stage was created for.
func (f *FloatingStage) Owner() window.Window {
	return f.owner
}

// Stage returns the backing window-system stage.
func (f *FloatingStage) Stage() window.Stage {
	return f.stage
}

// Bounds returns the stage's current bounds.
func (f *FloatingStage) Bounds() geometry.Rect {
	return f.stage.Bounds()
}

// SetBounds moves and resizes the stage.
func (f *FloatingStage) SetBounds(bounds geometry.Rect) {
	f.stage.SetBounds(bounds)
}

// AddResizeListener registers a callback fired when the stage size
// changes. Returns an unsubscribe function.
func (f *FloatingStage) AddResizeListener(fn func(geometry.Size)) func() {
	return f.stage.AddResizeListener(fn)
}

func (f *FloatingStage) show(bounds geometry.Rect) {
	f.stage.Show(bounds)
}

func (f *FloatingStage) dispose() {
	f.stage.Close()
}
