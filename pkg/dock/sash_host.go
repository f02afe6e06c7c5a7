package dock

import (
	"github.com/go-moor/moor/pkg/geometry"
	"github.com/go-moor/moor/pkg/observe"
)

// Divider positions are kept away from the extremes so both children
// stay visible.
const (
	dividerMin = 0.05
	dividerMax = 0.95
)

// SashDockHost is an internal zone: exactly two child zones separated
// by a movable divider along one axis.
//
// A sash whose child empties removes itself from its own parent and is
// replaced there by the surviving child. The removed sash becomes a
// tombstone carrying a forwarding pointer to the live zone that took
// its place, so operations holding a stale reference still resolve to
// the correct zone via ReplacementOrSelf.
type SashDockHost struct {
	zoneID      string
	parent      ZoneParent
	orientation Orientation
	first       Zone
	second      Zone
	divider     *observe.Notifier[float64]

	// replacement points at the final live successor once this sash has
	// been collapsed; forwarded lists the tombstones currently resolving
	// to this sash, so a later collapse can re-point them in one step.
	replacement Zone
	forwarded   []*SashDockHost
}

// NewSashDockHost creates a sash with no children. The split code
// assigns children immediately after construction; most callers never
// construct sashes directly.
func NewSashDockHost(zoneID string, orientation Orientation) *SashDockHost {
	return &SashDockHost{
		zoneID:      zoneID,
		orientation: orientation,
		divider:     observe.NewNotifier(0.5),
	}
}

// ZoneID returns the stable identifier of this zone.
func (s *SashDockHost) ZoneID() string {
	return s.zoneID
}

// Parent returns the sash or dock area owning this sash's slot.
func (s *SashDockHost) Parent() ZoneParent {
	return s.parent
}

func (s *SashDockHost) setParent(p ZoneParent) {
	s.parent = p
}

// Orientation returns the axis along which the children are arranged.
func (s *SashDockHost) Orientation() Orientation {
	return s.orientation
}

// First returns the first child zone (left or top).
func (s *SashDockHost) First() Zone {
	return s.first
}

// Second returns the second child zone (right or bottom).
func (s *SashDockHost) Second() Zone {
	return s.second
}

// DividerPosition returns the normalized divider position in (0, 1),
// measured as the fraction taken by the first child.
func (s *SashDockHost) DividerPosition() float64 {
	return s.divider.Value()
}

// SetDividerPosition moves the divider, clamped so both children keep
// a visible share.
func (s *SashDockHost) SetDividerPosition(pos float64) {
	s.divider.Set(geometry.Clamp(pos, dividerMin, dividerMax))
}

// AddDividerListener registers a callback fired when the divider
// moves. Returns an unsubscribe function.
func (s *SashDockHost) AddDividerListener(fn func(float64)) func() {
	return s.divider.AddListener(fn)
}

// Split divides this sash's slot along the given side.
func (s *SashDockHost) Split(side DockSide, newZoneID, newParentZoneID string, factory HostFactory) *TabDockHost {
	return splitZone(s, side, newZoneID, newParentZoneID, factory)
}

// ReplacementOrSelf returns the zone live in this sash's former
// position if the sash has been collapsed, or the sash itself while it
// is part of a tree. Forwarding pointers are flattened eagerly at each
// collapse, so one lookup always reaches the live zone.
func (s *SashDockHost) ReplacementOrSelf() Zone {
	if s.replacement != nil {
		return s.replacement
	}
	return s
}

// replaceChild substitutes replacement into the slot occupied by old.
func (s *SashDockHost) replaceChild(old, replacement Zone) {
	switch old {
	case s.first:
		s.first = replacement
	case s.second:
		s.second = replacement
	default:
		panic("dock: zone is not a child of this sash")
	}
}

// childEmptied collapses this sash: the surviving child takes the
// sash's slot in its parent and the sash becomes a tombstone. Collapse
// propagates exactly one level; stale references across a chain of
// collapses resolve through the forwarding pointers instead.
func (s *SashDockHost) childEmptied(child *TabDockHost) {
	var survivor Zone
	switch child {
	case s.first:
		survivor = s.second
	case s.second:
		survivor = s.first
	default:
		panic("dock: emptied zone is not a child of this sash")
	}

	child.markRemoved()

	parent := s.parent
	parent.replaceChild(s, survivor)
	survivor.setParent(parent)

	s.recordReplacement(survivor)
	s.parent = nil
	s.first = nil
	s.second = nil
}

// recordReplacement installs the forwarding pointer and flattens the
// chain: every tombstone that resolved to this sash now resolves to
// the survivor directly.
func (s *SashDockHost) recordReplacement(survivor Zone) {
	s.replacement = survivor
	for _, tombstone := range s.forwarded {
		tombstone.replacement = survivor
	}
	if next, ok := survivor.(*SashDockHost); ok {
		next.forwarded = append(next.forwarded, s)
		next.forwarded = append(next.forwarded, s.forwarded...)
	}
	s.forwarded = nil
}
