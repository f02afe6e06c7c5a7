package dock

import "github.com/go-moor/moor/pkg/observe"

// TabDockHost is the leaf zone of the layout tree: an ordered set of
// docked Dockables shown as tabs, exactly one selected at a time.
//
// Hosts are created by the HostFactory during splits or by DockArea
// for the root zone; application code reaches them through Zone
// references and tab representations.
type TabDockHost struct {
	zoneID   string
	parent   ZoneParent
	tabs     []*Tab
	selected int // -1 while empty
	alive    bool

	selectionHandlers observe.Handlers[int]
}

// NewTabDockHost creates an empty, alive tab dock host. Most callers
// never construct hosts directly; splits and DockArea do.
func NewTabDockHost(zoneID string) *TabDockHost {
	return &TabDockHost{
		zoneID:   zoneID,
		selected: -1,
		alive:    true,
	}
}

// ZoneID returns the stable identifier of this zone.
func (h *TabDockHost) ZoneID() string {
	return h.zoneID
}

// Parent returns the sash or dock area owning this host's slot.
func (h *TabDockHost) Parent() ZoneParent {
	return h.parent
}

func (h *TabDockHost) setParent(p ZoneParent) {
	h.parent = p
}

// Split divides this host's slot along the given side.
func (h *TabDockHost) Split(side DockSide, newZoneID, newParentZoneID string, factory HostFactory) *TabDockHost {
	return splitZone(h, side, newZoneID, newParentZoneID, factory)
}

// Alive reports whether this host is still part of a tree. A host
// removed by zone replacement is dead and rejects new tabs; remembered
// locations pointing at it fail in TryMakeVisible.
func (h *TabDockHost) Alive() bool {
	return h.alive
}

// Tabs returns the tabs in order.
func (h *TabDockHost) Tabs() []*Tab {
	tabs := make([]*Tab, len(h.tabs))
	copy(tabs, h.tabs)
	return tabs
}

// TabCount returns the number of tabs.
func (h *TabDockHost) TabCount() int {
	return len(h.tabs)
}

// SelectedIndex returns the selected tab index, or -1 while empty.
func (h *TabDockHost) SelectedIndex() int {
	return h.selected
}

// SelectedTab returns the selected tab, or nil while empty.
func (h *TabDockHost) SelectedTab() *Tab {
	if h.selected < 0 || h.selected >= len(h.tabs) {
		return nil
	}
	return h.tabs[h.selected]
}

// SelectIndex selects the tab at index, clamped to the valid range.
// A no-op while empty.
func (h *TabDockHost) SelectIndex(index int) {
	if len(h.tabs) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(h.tabs) {
		index = len(h.tabs) - 1
	}
	if index == h.selected {
		return
	}
	h.applySelection(index)
	h.selectionHandlers.Notify(index)
}

// SelectDockable selects the tab hosting d, if present.
func (h *TabDockHost) SelectDockable(d *Dockable) {
	for i, tab := range h.tabs {
		if tab.dockable == d {
			h.SelectIndex(i)
			return
		}
	}
}

// AddSelectionListener registers a callback fired with the new selected
// index whenever the selection or its position changes. Returns an
// unsubscribe function.
func (h *TabDockHost) AddSelectionListener(fn func(int)) func() {
	return h.selectionHandlers.Add(fn)
}

// AddDockable inserts d as a tab at beforePosition (clamped to the
// valid range), selects it and returns the tab slot. Called by the
// Dockable placement operations; the Dockable stores the returned tab
// as its representation.
func (h *TabDockHost) AddDockable(d *Dockable, beforePosition int) *Tab {
	if !h.alive {
		panic("dock: AddDockable on a tab dock host that was removed from its tree")
	}
	if beforePosition < 0 {
		beforePosition = 0
	}
	if beforePosition > len(h.tabs) {
		beforePosition = len(h.tabs)
	}

	tab := &Tab{host: h, dockable: d, selected: observe.NewNotifier(false)}
	h.tabs = append(h.tabs[:beforePosition], append([]*Tab{tab}, h.tabs[beforePosition:]...)...)
	h.applySelection(beforePosition)
	h.selectionHandlers.Notify(beforePosition)
	return tab
}

// DockPosition returns the tab index of the given representation in
// this host, or -1 if it is not hosted here. Used by Dockable to
// detect "already docked at this host".
func (h *TabDockHost) DockPosition(rep Representation) int {
	if rep.kind != RepresentationTab || rep.tab.host != h {
		return -1
	}
	return h.indexOf(rep.tab)
}

// IsSingleChild reports whether the representation is this host's only
// tab. Used to suppress degenerate splits.
func (h *TabDockHost) IsSingleChild(rep Representation) bool {
	return len(h.tabs) == 1 && rep.kind == RepresentationTab && h.tabs[0] == rep.tab
}

// removeTab detaches a tab slot. Removing the last tab triggers the
// required empty notification to the parent, which performs zone
// replacement.
func (h *TabDockHost) removeTab(tab *Tab) {
	index := h.indexOf(tab)
	if index < 0 {
		return
	}
	h.tabs = append(h.tabs[:index], h.tabs[index+1:]...)
	tab.selected.Set(false)

	if len(h.tabs) == 0 {
		h.selected = -1
		h.selectionHandlers.Notify(-1)
		h.parent.childEmptied(h)
		return
	}

	if index <= h.selected {
		newSelected := h.selected
		if index < h.selected {
			// Same tab stays selected, its index shifted down.
			newSelected = h.selected - 1
		} else if newSelected >= len(h.tabs) {
			newSelected = len(h.tabs) - 1
		}
		h.applySelection(newSelected)
		h.selectionHandlers.Notify(newSelected)
	}
}

// applySelection sets the selected index and syncs every tab's
// selected notifier. Notifiers fire only for tabs whose state changed.
func (h *TabDockHost) applySelection(index int) {
	h.selected = index
	for i, tab := range h.tabs {
		tab.selected.Set(i == index)
	}
}

// markRemoved flags this host dead after zone replacement.
func (h *TabDockHost) markRemoved() {
	h.alive = false
	h.parent = nil
}

func (h *TabDockHost) indexOf(tab *Tab) int {
	for i, t := range h.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}

// Tab is the tab slot hosting a docked Dockable inside a TabDockHost.
// It is the dockable's representation while docked.
type Tab struct {
	host     *TabDockHost
	dockable *Dockable
	selected *observe.Notifier[bool]
}

// Host returns the tab dock host owning this slot.
func (t *Tab) Host() *TabDockHost {
	return t.host
}

// Dockable returns the dockable occupying this slot.
func (t *Tab) Dockable() *Dockable {
	return t.dockable
}

// Index returns this tab's position in its host, or -1 after removal.
func (t *Tab) Index() int {
	return t.host.indexOf(t)
}

// Selected reports whether this tab is its host's selected tab.
func (t *Tab) Selected() bool {
	return t.selected.Value()
}

// AddSelectedListener registers a callback fired when this tab gains
// or loses selection. Returns an unsubscribe function.
func (t *Tab) AddSelectedListener(fn func(bool)) func() {
	return t.selected.AddListener(fn)
}
