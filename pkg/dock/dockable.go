package dock

import (
	goerrors "errors"

	"github.com/google/uuid"

	"github.com/go-moor/moor/pkg/errors"
	"github.com/go-moor/moor/pkg/geometry"
	"github.com/go-moor/moor/pkg/observe"
	"github.com/go-moor/moor/pkg/window"
)

// View is the application content wrapped by a Dockable. The engine
// manages only placement and never inspects the view.
type View any

// FocusTarget is a sub-element of a view that should receive input
// focus instead of the docking tab itself.
type FocusTarget interface {
	RequestFocus()
}

// DefaultFloatingSize is used for the first float of a dockable whose
// default size was not configured.
var DefaultFloatingSize = geometry.Size{Width: 800, Height: 600}

// Dockable wraps one application view with identity, capabilities and
// lifecycle, and is the application-facing surface for all placement
// operations.
//
// A dockable is created by the application at view creation time and
// discarded when the view's lifetime ends. Closing does not destroy
// the dockable: a reusable view survives Close and can be docked or
// floated again later.
//
// At any time a dockable holds exactly one current representation —
// none, a tab slot, or a floating stage — and the Docked, Floating and
// Visible flags are derived from it.
type Dockable struct {
	view            View
	viewID          string
	title           string
	showCloseButton bool
	floatable       bool
	data            any
	focusDelegate   FocusTarget

	defaultSize      geometry.Size
	lastFloatingSize *geometry.Size

	rep      Representation
	docked   bool
	floating bool
	visible  observe.TransactionalBool

	onCloseRequest     func(*Dockable) bool
	beforeClosing      observe.Handlers[*Dockable]
	closedHandlers     observe.Handlers[*Dockable]
	beforeRepDisposing observe.Handlers[*Dockable]
	repInstalled       observe.Handlers[*Dockable]

	unsubTabSelected func()
	unsubStageResize func()
}

// NewDockable wraps a view. viewID is the stable identity used by the
// application (e.g. for remembered layouts); title is the display name
// shown on tabs and floating stages.
func NewDockable(view View, viewID, title string, showCloseButton bool) *Dockable {
	return &Dockable{
		view:            view,
		viewID:          viewID,
		title:           title,
		showCloseButton: showCloseButton,
		floatable:       true,
		defaultSize:     DefaultFloatingSize,
	}
}

// View returns the wrapped application view.
func (d *Dockable) View() View {
	return d.view
}

// ViewID returns the stable view identity.
func (d *Dockable) ViewID() string {
	return d.viewID
}

// Title returns the display title.
func (d *Dockable) Title() string {
	return d.title
}

// SetTitle updates the display title.
func (d *Dockable) SetTitle(title string) {
	d.title = title
}

// ShowCloseButton reports whether hosts should offer a close control
// for this dockable.
func (d *Dockable) ShowCloseButton() bool {
	return d.showCloseButton
}

// Floatable reports whether the dockable may be detached into a
// floating stage.
func (d *Dockable) Floatable() bool {
	return d.floatable
}

// SetFloatable updates the floatable capability.
func (d *Dockable) SetFloatable(floatable bool) {
	d.floatable = floatable
}

// Data returns the free-form application data slot.
func (d *Dockable) Data() any {
	return d.data
}

// SetData stores free-form application data on the dockable.
func (d *Dockable) SetData(data any) {
	d.data = data
}

// FocusDelegate returns the optional focus target, if set.
func (d *Dockable) FocusDelegate() FocusTarget {
	return d.focusDelegate
}

// SetFocusDelegate sets the sub-element that should receive input
// focus instead of the docking tab.
func (d *Dockable) SetFocusDelegate(target FocusTarget) {
	d.focusDelegate = target
}

// DefaultSize returns the floating size used before any float happened.
func (d *Dockable) DefaultSize() geometry.Size {
	return d.defaultSize
}

// SetDefaultSize configures the size of the first floating stage.
func (d *Dockable) SetDefaultSize(size geometry.Size) {
	d.defaultSize = size
}

// LastFloatingSize returns the most recent floating size and whether
// one has been remembered yet.
func (d *Dockable) LastFloatingSize() (geometry.Size, bool) {
	if d.lastFloatingSize == nil {
		return geometry.Size{}, false
	}
	return *d.lastFloatingSize, true
}

// Docked reports whether the dockable currently occupies a tab slot.
func (d *Dockable) Docked() bool {
	return d.docked
}

// Floating reports whether the dockable currently lives in a floating
// stage.
func (d *Dockable) Floating() bool {
	return d.floating
}

// Visible reports whether the view is currently visible: floating, or
// the selected tab of its host.
func (d *Dockable) Visible() bool {
	return d.visible.Value()
}

// AddVisibleListener registers a callback fired when the effective
// visibility changes. Multi-step placement operations coalesce to at
// most one notification. Returns an unsubscribe function.
func (d *Dockable) AddVisibleListener(fn func(bool)) func() {
	return d.visible.AddListener(fn)
}

// Representation returns the current placement.
func (d *Dockable) Representation() Representation {
	return d.rep
}

// SetOnCloseRequest registers the single close-veto handler. A handler
// returning false cancels Close before any callbacks fire.
func (d *Dockable) SetOnCloseRequest(fn func(*Dockable) bool) {
	d.onCloseRequest = fn
}

// AddOnBeforeClosing registers a callback fired before an accepted
// close detaches the view. Returns an unsubscribe function.
func (d *Dockable) AddOnBeforeClosing(fn func(*Dockable)) func() {
	return d.beforeClosing.Add(fn)
}

// AddOnClosed registers a callback fired after an accepted close has
// detached the view. Returns an unsubscribe function.
func (d *Dockable) AddOnClosed(fn func(*Dockable)) func() {
	return d.closedHandlers.Add(fn)
}

// AddOnBeforeRepresentationDisposing registers a callback fired just
// before the current representation is torn down. Returns an
// unsubscribe function.
func (d *Dockable) AddOnBeforeRepresentationDisposing(fn func(*Dockable)) func() {
	return d.beforeRepDisposing.Add(fn)
}

// AddOnRepresentationInstalled registers a callback fired after a new
// representation has been installed. Returns an unsubscribe function.
func (d *Dockable) AddOnRepresentationInstalled(fn func(*Dockable)) func() {
	return d.repInstalled.Add(fn)
}

// Location returns a snapshot of the current placement for later use
// with TryMakeVisible, or false if the dockable has no placement.
func (d *Dockable) Location() (ViewLocation, bool) {
	switch d.rep.kind {
	case RepresentationTab:
		return DockLocation{Host: d.rep.tab.Host()}, true
	case RepresentationFloating:
		stage := d.rep.stage
		return FloatingLocation{Bounds: stage.Bounds(), Owner: stage.Owner()}, true
	}
	return nil, false
}

// RequestFocus asks the focus delegate to take input focus. Returns
// false if no delegate is set.
func (d *Dockable) RequestFocus() bool {
	if d.focusDelegate == nil {
		return false
	}
	d.focusDelegate.RequestFocus()
	return true
}

// DockLast docks this dockable as the last tab of host.
func (d *Dockable) DockLast(host *TabDockHost) *Tab {
	return d.DockAt(host, host.TabCount())
}

// DockAt docks this dockable at the given tab position of host,
// detaching it from its former placement first.
//
// If the dockable is already docked at host and the requested index is
// effectively the same slot once the removal shift is accounted for,
// nothing moves; the tab is just selected.
func (d *Dockable) DockAt(host *TabDockHost, beforePosition int) *Tab {
	currentPosition := host.DockPosition(d.rep)
	if currentPosition != -1 {
		if currentPosition == beforePosition || currentPosition+1 == beforePosition {
			// Already at that slot, just select it.
			host.SelectDockable(d)
			return d.rep.tab
		}
		if currentPosition < beforePosition {
			// The removal below shifts everything after the current
			// slot one to the left.
			beforePosition--
		}
	}

	d.visible.Begin()
	d.Detach()
	tab := host.AddDockable(d, beforePosition)
	d.installTab(tab)
	d.checkVisible()
	d.visible.End()
	d.repInstalled.Notify(d)
	return tab
}

// DockAtSide splits zone along side and docks this dockable as the
// sole tab of the fresh host, generating zone IDs for the new zones.
func (d *Dockable) DockAtSide(zone Zone, side DockSide) *Tab {
	return d.DockAtSideWithIDs(zone, side, uuid.NewString(), uuid.NewString())
}

// DockAtSideWithIDs splits zone along side and docks this dockable as
// the sole tab of the fresh host. newZoneID names the fresh host,
// newParentZoneID the sash taking the target zone's former place.
//
// If zone is a tab dock host whose only tab is this dockable, there is
// nothing to split into and the existing representation is returned
// unchanged. If zone is a sash that has already been superseded —
// possibly by this very call's detach step — it is resolved through
// its replacement pointer before splitting.
func (d *Dockable) DockAtSideWithIDs(zone Zone, side DockSide, newZoneID, newParentZoneID string) *Tab {
	if host, ok := zone.(*TabDockHost); ok {
		if host.IsSingleChild(d.rep) {
			// Degenerate split: the dockable already occupies the
			// requested place alone. Detaching cannot invalidate the
			// host in any other situation, so no resolution is needed
			// for tab-host targets.
			return d.rep.tab
		}
	}

	d.visible.Begin()

	// Detaching may collapse a sash elsewhere in the tree — including
	// the target zone itself when this dockable was the single tab of
	// one of its children. Resolve stale sash references afterwards.
	d.Detach()
	if sash, ok := zone.(*SashDockHost); ok {
		zone = sash.ReplacementOrSelf()
	}

	newHost := zone.Split(side, newZoneID, newParentZoneID, GetHostFactory())
	tab := newHost.AddDockable(d, 0)
	d.installTab(tab)
	d.checkVisible()
	d.visible.End()
	d.repInstalled.Notify(d)
	return tab
}

// ToFloating detaches this dockable into a floating stage at the given
// position, sized from the last remembered floating size or the
// default size.
func (d *Dockable) ToFloating(owner window.Window, x, y float64) *FloatingStage {
	size := d.defaultSize
	if d.lastFloatingSize != nil {
		size = *d.lastFloatingSize
	}
	return d.ToFloatingSized(owner, x, y, size.Width, size.Height)
}

// ToFloatingSized detaches this dockable into a floating stage with
// explicit geometry.
//
// Returns nil without touching the current placement if the dockable
// is not floatable, or if the window backend fails (reported through
// the errors package). If the dockable is already floating, the
// existing stage is returned unchanged.
func (d *Dockable) ToFloatingSized(owner window.Window, x, y, w, h float64) *FloatingStage {
	if !d.floatable {
		return nil
	}
	if d.rep.kind == RepresentationFloating {
		// Already floating.
		return d.rep.stage
	}

	stage, err := newFloatingStage(d, owner)
	if err != nil {
		errors.Report(&errors.MoorError{
			Op:     "dock.ToFloating",
			Kind:   errors.KindBackend,
			Err:    err,
			ViewID: d.viewID,
		})
		return nil
	}

	d.visible.Begin()
	d.Detach()
	stage.show(geometry.RectFromLTWH(x, y, w, h))
	d.rep = floatingRepresentation(stage)
	d.floating = true

	size := geometry.Size{Width: w, Height: h}
	d.lastFloatingSize = &size
	d.unsubStageResize = stage.AddResizeListener(func(newSize geometry.Size) {
		remembered := newSize
		d.lastFloatingSize = &remembered
	})

	d.checkVisible()
	d.visible.End()
	d.repInstalled.Notify(d)
	return stage
}

// Detach removes the view from its current placement, leaving the
// dockable with no representation. Idempotent: a detached dockable is
// left untouched. The dockable may be docked or floated again later.
func (d *Dockable) Detach() {
	if d.rep.IsNone() {
		return
	}
	d.beforeRepDisposing.Notify(d)
	d.visible.Begin()
	if d.unsubTabSelected != nil {
		d.unsubTabSelected()
		d.unsubTabSelected = nil
	}
	if d.unsubStageResize != nil {
		d.unsubStageResize()
		d.unsubStageResize = nil
	}
	d.rep.dispose()
	d.rep = Representation{}
	d.docked = false
	d.floating = false
	d.checkVisible()
	d.visible.End()
}

// Close runs the close lifecycle: the close-request handler may veto,
// otherwise before-closing handlers fire, the view is detached, and
// closed handlers fire. The dockable itself stays usable; a reusable
// view is revived by docking or floating it again.
func (d *Dockable) Close() {
	if d.onCloseRequest != nil && !d.onCloseRequest(d) {
		// Vetoed.
		return
	}
	d.beforeClosing.Notify(d)
	d.Detach()
	d.closedHandlers.Notify(d)
}

// TryMakeVisible restores a remembered placement. Docking into a
// remembered tab host fails with false if that host has since been
// removed from its tree; a floating location always succeeds by
// opening a new stage at the remembered bounds.
func (d *Dockable) TryMakeVisible(location ViewLocation) bool {
	switch loc := location.(type) {
	case DockLocation:
		if loc.Host == nil || !loc.Host.Alive() {
			return false
		}
		d.DockLast(loc.Host)
		return true
	case FloatingLocation:
		bounds := loc.Bounds
		d.ToFloatingSized(loc.Owner, bounds.Left, bounds.Top, bounds.Width(), bounds.Height())
		return true
	}
	errors.Report(&errors.MoorError{
		Op:     "dock.TryMakeVisible",
		Kind:   errors.KindPlacement,
		Err:    goerrors.New("unknown view location variant"),
		ViewID: d.viewID,
	})
	return false
}

// installTab records a fresh tab slot as the current representation
// and keeps visibility tracking the tab's selection for the lifetime
// of that representation.
func (d *Dockable) installTab(tab *Tab) {
	d.rep = tabRepresentation(tab)
	d.docked = true
	d.floating = false
	d.unsubTabSelected = tab.AddSelectedListener(func(bool) {
		d.checkVisible()
	})
}

// checkVisible re-derives visibility from the current representation:
// floating stages are always visible, tab slots iff selected.
func (d *Dockable) checkVisible() {
	switch d.rep.kind {
	case RepresentationFloating:
		d.visible.Set(true)
	case RepresentationTab:
		d.visible.Set(d.rep.tab.Selected())
	default:
		d.visible.Set(false)
	}
}
