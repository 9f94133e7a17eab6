// Package glstate resolves OpenGL state entry points against the
// capabilities of a concrete context.
//
// # Overview
//
// glstate is a capability dispatch layer for the GL family of APIs
// (desktop GL, OpenGL ES and WebGL). A Context is created once from a
// Profile describing the driver: target, version, extension list,
// vendor strings and context flags. At creation every operation slot
// is resolved to exactly one implementation variant through an ordered
// rule list, and the extensions that decided the outcome are recorded.
// After that, invoking an operation is a plain function call with no
// capability checks left on the hot path.
//
// # Quick Start
//
//	import "github.com/gogpu/glstate"
//
//	profile, _ := glstate.PresetByName(glstate.PresetDesktopCore)
//	ctx, err := glstate.NewContext(profile)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := glstate.NewRenderer(ctx, api)
//	r.ClearDepthf(1)
//	if r.SupportsPolygonMode() {
//		r.SetPolygonMode(glstate.PolygonModeLine)
//	}
//
// # Resolution
//
// Resolution is total and deterministic: every slot ends up either
// bound to a variant or explicitly unsupported, and the same profile
// always yields the same bindings. Optional operations expose a
// Supports method; calling an unsupported operation without checking
// panics.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Profile, Renderer, RendererState
//   - dispatch: the generic slot resolution engine
//   - probe: builds a Profile from the local GPU via gogpu/wgpu
//   - cmd/glstateinfo: inspects profiles and resolved bindings
package glstate

// Version information
const (
	// Release is the current version of the library
	Release = "0.1.0-alpha.1"
)
