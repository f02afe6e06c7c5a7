package dock

// RepresentationKind discriminates the placement variants of a Dockable.
type RepresentationKind int

const (
	// RepresentationNone means the dockable currently has no placement.
	RepresentationNone RepresentationKind = iota
	// RepresentationTab means the dockable occupies a tab slot in a
	// TabDockHost.
	RepresentationTab
	// RepresentationFloating means the dockable lives in its own
	// FloatingStage.
	RepresentationFloating
)

func (k RepresentationKind) String() string {
	switch k {
	case RepresentationTab:
		return "tab"
	case RepresentationFloating:
		return "floating"
	default:
		return "none"
	}
}

// Representation is the concrete placement currently hosting a
// Dockable. It is a tagged union: at most one of the tab slot or the
// floating stage is set, and the zero value means "no placement".
type Representation struct {
	kind  RepresentationKind
	tab   *Tab
	stage *FloatingStage
}

func tabRepresentation(t *Tab) Representation {
	return Representation{kind: RepresentationTab, tab: t}
}

func floatingRepresentation(s *FloatingStage) Representation {
	return Representation{kind: RepresentationFloating, stage: s}
}

// Kind returns the variant of this representation.
func (r Representation) Kind() RepresentationKind {
	return r.kind
}

// IsNone reports whether the dockable has no placement.
func (r Representation) IsNone() bool {
	return r.kind == RepresentationNone
}

// Tab returns the tab slot, or nil if the kind is not RepresentationTab.
func (r Representation) Tab() *Tab {
	return r.tab
}

// FloatingStage returns the floating stage, or nil if the kind is not
// RepresentationFloating.
func (r Representation) FloatingStage() *FloatingStage {
	return r.stage
}

// dispose tears down the concrete placement: the tab is removed from
// its host (which may collapse part of the tree), or the floating
// stage is closed.
func (r Representation) dispose() {
	switch r.kind {
	case RepresentationTab:
		r.tab.host.removeTab(r.tab)
	case RepresentationFloating:
		r.stage.dispose()
	}
}
