package dock

// DockSide identifies the edge of a zone targeted by a split.
type DockSide int

const (
	// SideTop docks above the target zone.
	SideTop DockSide = iota
	// SideBottom docks below the target zone.
	SideBottom
	// SideLeft docks left of the target zone.
	SideLeft
	// SideRight docks right of the target zone.
	SideRight
)

func (s DockSide) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "invalid"
	}
}

// orientation returns the sash orientation implied by the side.
func (s DockSide) orientation() Orientation {
	if s == SideLeft || s == SideRight {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// newChildFirst reports whether the fresh tab host produced by a split
// takes the first child slot of the new sash.
func (s DockSide) newChildFirst() bool {
	return s == SideTop || s == SideLeft
}

// Orientation is the axis along which a sash arranges its children.
type Orientation int

const (
	// OrientationHorizontal places children side by side.
	OrientationHorizontal Orientation = iota
	// OrientationVertical places children on top of each other.
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Zone is a node in the layout tree: a TabDockHost leaf or a
// SashDockHost internal node.
type Zone interface {
	// ZoneID returns the stable identifier of this zone.
	ZoneID() string

	// Parent returns the sash or dock area owning this zone's slot.
	// Nil for zones removed from the tree.
	Parent() ZoneParent

	// Split divides this zone into two along the given side. A fresh
	// TabDockHost takes the slot implied by side, a new SashDockHost
	// takes this zone's place in its parent, and this zone becomes the
	// sash's other child. Returns the fresh host.
	Split(side DockSide, newZoneID, newParentZoneID string, factory HostFactory) *TabDockHost

	// sealed
	setParent(p ZoneParent)
}

// ZoneParent is the owner of a zone slot: a SashDockHost or the
// DockArea root. This is a sealed interface.
type ZoneParent interface {
	// replaceChild substitutes replacement into the slot currently
	// occupied by old. Panics if old is not a child.
	replaceChild(old, replacement Zone)

	// childEmptied is the required notification a TabDockHost sends
	// when its last tab is removed, so the parent can perform zone
	// replacement.
	childEmptied(child *TabDockHost)
}

// splitZone is the shared structural split used by both zone kinds.
func splitZone(zone Zone, side DockSide, newZoneID, newParentZoneID string, factory HostFactory) *TabDockHost {
	parent := zone.Parent()
	if parent == nil {
		panic("dock: split of a zone that is not in a tree")
	}

	sash := factory.NewSashDockHost(newParentZoneID, side.orientation())
	parent.replaceChild(zone, sash)
	sash.setParent(parent)

	host := factory.NewTabDockHost(newZoneID)
	if side.newChildFirst() {
		sash.first, sash.second = host, zone
	} else {
		sash.first, sash.second = zone, host
	}
	zone.setParent(sash)
	host.setParent(sash)
	return host
}
