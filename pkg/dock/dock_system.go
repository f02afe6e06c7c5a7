package dock

// HostFactory supplies host instances when zones are split, decoupling
// the tree manipulation from concrete construction. Embedders that
// wrap hosts in their own UI controls install a factory producing
// pre-wired instances.
type HostFactory interface {
	NewTabDockHost(zoneID string) *TabDockHost
	NewSashDockHost(zoneID string, orientation Orientation) *SashDockHost
}

// defaultHostFactory builds plain hosts.
type defaultHostFactory struct{}

func (defaultHostFactory) NewTabDockHost(zoneID string) *TabDockHost {
	return NewTabDockHost(zoneID)
}

func (defaultHostFactory) NewSashDockHost(zoneID string, orientation Orientation) *SashDockHost {
	return NewSashDockHost(zoneID, orientation)
}

var hostFactory HostFactory = defaultHostFactory{}

// SetHostFactory installs the process-wide host factory.
// Pass nil to restore the default factory.
func SetHostFactory(f HostFactory) {
	if f == nil {
		hostFactory = defaultHostFactory{}
		return
	}
	hostFactory = f
}

// GetHostFactory returns the process-wide host factory.
func GetHostFactory() HostFactory {
	return hostFactory
}
