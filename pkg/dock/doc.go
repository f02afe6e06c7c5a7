// Package dock implements the window-docking layout engine: a tree of
// splittable regions hosting application views as tabs, plus the
// floating-window lifecycle for detached views.
//
// # Core Types
//
// Dockable wraps one application view and is the entire API surface for
// placement. Application code holds a Dockable and moves its view
// between placements without knowing the current layout:
//
//	d := dock.NewDockable(view, "plan-editor", "Plan", true)
//	d.DockLast(area.RootTabDockHost())
//	d.DockAtSide(someZone, dock.SideRight)
//	d.ToFloating(owner, 120, 80)
//	d.Close()
//
// Zone is a node in the layout tree, either a TabDockHost (leaf,
// hosting tabs with single selection) or a SashDockHost (internal,
// exactly two children split along an axis). DockArea owns the root of
// one zone tree.
//
// A Dockable has at most one Representation at a time: a tab slot in a
// TabDockHost or a FloatingStage. The Docked, Floating and Visible
// flags are derived from it and always consistent with it.
//
// # Tree Consistency
//
// A TabDockHost that loses its last tab is removed from the tree
// immediately; its parent sash collapses and is replaced by the
// surviving sibling. A collapsed sash keeps a forwarding pointer to
// the zone that took its place, so operations holding a stale zone
// reference resolve through ReplacementOrSelf to the live successor.
//
// # Threading
//
// The engine is single-threaded and synchronous: every placement
// operation runs to completion on the UI thread, and all callbacks
// fire synchronously in registration order. Visibility changes are
// coalesced so observers see at most one notification per logical
// operation.
package dock
