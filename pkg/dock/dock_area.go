package dock

// DockArea is the root container owning one zone tree, typically
// embedded in an application's main window. It implements the zone
// parent contract for the root slot.
//
// An area always keeps at least one zone: when the last remaining tab
// host at the root empties there is no sibling to substitute, so the
// empty host is retained alive as the default dock target.
type DockArea struct {
	root Zone
}

// NewDockArea creates an area whose root is a fresh empty TabDockHost
// with the given zone ID, built through the current host factory.
func NewDockArea(rootZoneID string) *DockArea {
	area := &DockArea{}
	host := GetHostFactory().NewTabDockHost(rootZoneID)
	host.setParent(area)
	area.root = host
	return area
}

// Root returns the root zone of this area.
func (a *DockArea) Root() Zone {
	return a.root
}

// RootTabDockHost returns the root zone as a TabDockHost, or nil if
// the root has been split into a sash.
func (a *DockArea) RootTabDockHost() *TabDockHost {
	host, _ := a.root.(*TabDockHost)
	return host
}

// FindTabDockHost returns the tab dock host with the given zone ID, or
// nil if no such host is reachable from the root.
func (a *DockArea) FindTabDockHost(zoneID string) *TabDockHost {
	return findTabDockHost(a.root, zoneID)
}

// VisitTabDockHosts calls visit for every tab dock host reachable from
// the root, in first-child-first order, until visit returns false.
func (a *DockArea) VisitTabDockHosts(visit func(*TabDockHost) bool) {
	visitTabDockHosts(a.root, visit)
}

func (a *DockArea) replaceChild(old, replacement Zone) {
	if a.root != old {
		panic("dock: zone is not the root of this area")
	}
	a.root = replacement
}

// childEmptied keeps an emptied root-level host in place: with no
// sibling to substitute, the empty host stays as the area's root zone.
func (a *DockArea) childEmptied(child *TabDockHost) {}

func findTabDockHost(zone Zone, zoneID string) *TabDockHost {
	var found *TabDockHost
	visitTabDockHosts(zone, func(h *TabDockHost) bool {
		if h.ZoneID() == zoneID {
			found = h
			return false
		}
		return true
	})
	return found
}

func visitTabDockHosts(zone Zone, visit func(*TabDockHost) bool) bool {
	switch z := zone.(type) {
	case *TabDockHost:
		return visit(z)
	case *SashDockHost:
		if !visitTabDockHosts(z.First(), visit) {
			return false
		}
		return visitTabDockHosts(z.Second(), visit)
	}
	return true
}
