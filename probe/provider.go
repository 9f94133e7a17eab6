package probe

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glstate"
)

// adapterInfo is the optional interface a host's adapter can implement
// to expose identification strings. gpucontext.Adapter itself carries
// no methods, so the assertion is best effort.
type adapterInfo interface {
	Name() string
	Vendor() string
	Driver() string
}

// FromProvider derives a capability profile from a host application's
// GPU context provider. When the provider's adapter exposes
// identification strings they feed the same mapping Probe uses;
// otherwise a generic desktop baseline profile is returned.
func FromProvider(p gpucontext.DeviceProvider) glstate.Profile {
	if p != nil {
		if info, ok := p.Adapter().(adapterInfo); ok {
			return profileFromStrings(info.Name(), info.Vendor(), info.Driver())
		}
	}
	glstate.Logger().Warn("probe: provider adapter exposes no identification, using generic profile")
	return genericProfile()
}
