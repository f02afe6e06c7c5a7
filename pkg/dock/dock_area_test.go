package dock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewDockArea_RootHost verifies the initial single-host tree.
func TestNewDockArea_RootHost(t *testing.T) {
	area := NewDockArea("root")

	host := area.RootTabDockHost()
	if host == nil {
		t.Fatal("expected a tab dock host at the root")
	}
	if host.ZoneID() != "root" {
		t.Errorf("unexpected zone ID %q", host.ZoneID())
	}
	if !host.Alive() || host.TabCount() != 0 {
		t.Error("expected an empty, alive root host")
	}
	if host.Parent() != ZoneParent(area) {
		t.Error("expected the area as the root host's parent")
	}
}

// TestDockArea_EmptyRootHostIsRetained verifies that emptying the last
// root-level host keeps it in place as the default dock target.
func TestDockArea_EmptyRootHostIsRetained(t *testing.T) {
	area := NewDockArea("root")
	root := area.RootTabDockHost()
	d := NewDockable(nil, "a", "A", true)
	d.DockLast(root)

	d.Detach()

	if area.RootTabDockHost() != root {
		t.Fatal("expected the empty root host retained")
	}
	if !root.Alive() {
		t.Error("expected the root host still alive")
	}

	// And it still accepts tabs.
	d.DockLast(root)
	if root.TabCount() != 1 {
		t.Errorf("expected 1 tab after re-dock, got %d", root.TabCount())
	}
}

// TestDockArea_RootTabDockHost_NilAfterSplit verifies the typed root
// accessor once the root is a sash.
func TestDockArea_RootTabDockHost_NilAfterSplit(t *testing.T) {
	area := NewDockArea("root")
	root := area.RootTabDockHost()
	NewDockable(nil, "a", "A", true).DockLast(root)
	NewDockable(nil, "b", "B", true).DockAtSideWithIDs(root, SideRight, "side", "sash")

	if area.RootTabDockHost() != nil {
		t.Error("expected nil once the root is a sash")
	}
	if _, ok := area.Root().(*SashDockHost); !ok {
		t.Errorf("expected a sash at the root, got %T", area.Root())
	}
}

// TestDockArea_FindTabDockHost verifies lookup by zone ID across a
// split tree.
func TestDockArea_FindTabDockHost(t *testing.T) {
	area := NewDockArea("root")
	root := area.RootTabDockHost()
	NewDockable(nil, "a", "A", true).DockLast(root)
	b := NewDockable(nil, "b", "B", true)
	sideHost := b.DockAtSideWithIDs(root, SideRight, "side", "sash").Host()

	if area.FindTabDockHost("root") != root {
		t.Error("expected to find the original host")
	}
	if area.FindTabDockHost("side") != sideHost {
		t.Error("expected to find the side host")
	}
	if area.FindTabDockHost("missing") != nil {
		t.Error("expected nil for an unknown zone ID")
	}
}

// TestDockArea_VisitTabDockHosts_Order verifies first-child-first
// traversal and early termination.
func TestDockArea_VisitTabDockHosts_Order(t *testing.T) {
	area := NewDockArea("root")
	root := area.RootTabDockHost()
	NewDockable(nil, "a", "A", true).DockLast(root)
	b := NewDockable(nil, "b", "B", true)
	b.DockAtSideWithIDs(root, SideRight, "right", "sash1")
	c := NewDockable(nil, "c", "C", true)
	c.DockAtSideWithIDs(root, SideTop, "top", "sash2")

	// Tree: sash1( sash2(top, root), right )
	var visited []string
	area.VisitTabDockHosts(func(h *TabDockHost) bool {
		visited = append(visited, h.ZoneID())
		return true
	})
	if diff := cmp.Diff([]string{"top", "root", "right"}, visited); diff != "" {
		t.Errorf("traversal order mismatch (-want +got):\n%s", diff)
	}

	visited = nil
	area.VisitTabDockHosts(func(h *TabDockHost) bool {
		visited = append(visited, h.ZoneID())
		return false
	})
	if diff := cmp.Diff([]string{"top"}, visited); diff != "" {
		t.Errorf("early-stop traversal mismatch (-want +got):\n%s", diff)
	}
}

// stubFactory counts factory calls and builds plain hosts.
type stubFactory struct {
	tabHosts  int
	sashHosts int
}

func (f *stubFactory) NewTabDockHost(zoneID string) *TabDockHost {
	f.tabHosts++
	return NewTabDockHost(zoneID)
}

func (f *stubFactory) NewSashDockHost(zoneID string, orientation Orientation) *SashDockHost {
	f.sashHosts++
	return NewSashDockHost(zoneID, orientation)
}

// TestSetHostFactory_UsedForAreaAndSplits verifies the installed
// factory builds every host.
func TestSetHostFactory_UsedForAreaAndSplits(t *testing.T) {
	factory := &stubFactory{}
	SetHostFactory(factory)
	t.Cleanup(func() { SetHostFactory(nil) })

	area := NewDockArea("root")
	root := area.RootTabDockHost()
	NewDockable(nil, "a", "A", true).DockLast(root)
	NewDockable(nil, "b", "B", true).DockAtSideWithIDs(root, SideRight, "side", "sash")

	if factory.tabHosts != 2 {
		t.Errorf("expected 2 tab hosts from the factory, got %d", factory.tabHosts)
	}
	if factory.sashHosts != 1 {
		t.Errorf("expected 1 sash host from the factory, got %d", factory.sashHosts)
	}
}

// TestSetHostFactory_NilRestoresDefault verifies the default-restoring
// contract of SetHostFactory.
func TestSetHostFactory_NilRestoresDefault(t *testing.T) {
	SetHostFactory(&stubFactory{})
	SetHostFactory(nil)

	if _, ok := GetHostFactory().(defaultHostFactory); !ok {
		t.Errorf("expected the default factory, got %T", GetHostFactory())
	}
}
