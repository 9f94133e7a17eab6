//go:build !nogpu

package probe

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/glstate"
)

// ErrNoAdapter is returned when the GPU stack has no usable adapter.
var ErrNoAdapter = errors.New("probe: no suitable GPU adapter")

// Probe requests an adapter from the local GPU stack and derives a
// capability profile from it. The adapter is released before returning;
// no device is created.
func Probe() (glstate.Profile, error) {
	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	instance := core.NewInstance(desc)

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return glstate.Profile{}, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	defer func() {
		if !adapterID.IsZero() {
			_ = core.AdapterDrop(adapterID)
		}
	}()

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return glstate.Profile{}, fmt.Errorf("probe: adapter info: %w", err)
	}

	glstate.Logger().Info("adapter probed",
		"name", info.Name,
		"vendor", info.Vendor,
		"deviceType", fmt.Sprint(info.DeviceType),
		"backend", fmt.Sprint(info.Backend),
		"driver", info.Driver)

	return profileFromStrings(info.Name, info.Vendor, info.Driver), nil
}
