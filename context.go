package glstate

import (
	"fmt"
	"slices"
)

// Context holds the capability facts of one GL context and the renderer
// state resolved from them. It is built once from a Profile; the
// capability set, version, flags and detected driver never change
// afterwards. The only mutable structure is the append-only registry of
// used capabilities, written during the single resolution pass that
// happens inside NewContext.
//
// After construction a Context is read-only and may be shared between
// goroutines. The Renderer front-end bound to it is not: it caches
// pixel storage state.
type Context struct {
	target      Target
	version     Version
	flags       ContextFlags
	coreProfile bool
	driver      DetectedDriver

	supported           [extensionCount]bool
	disabledWorkarounds map[string]struct{}

	// used is append-only, in resolution order, deduplicated.
	used []string

	state *RendererState
}

// NewContext builds a context from a capability profile and resolves
// the full renderer state. Resolution is total: it never fails, and
// every operation slot ends up bound, possibly as unsupported. The only
// errors are malformed profiles.
func NewContext(p Profile) (*Context, error) {
	target, err := ParseTarget(p.Target)
	if err != nil {
		return nil, err
	}
	version, err := ParseVersion(p.Version, target)
	if err != nil {
		return nil, err
	}

	c := &Context{
		target:      target,
		version:     version,
		coreProfile: target.ES() || !p.CompatibilityProfile,
		driver:      DetectDriver(p.Vendor, p.Renderer, p.VersionString),
	}

	for _, name := range p.Flags {
		flag, ok := parseContextFlag(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown flag %q", ErrInvalidProfile, name)
		}
		c.flags |= flag
	}

	log := Logger()
	for _, name := range p.Extensions {
		ext, ok := ExtensionByName(name)
		if !ok {
			log.Debug("ignoring unknown extension", "extension", name)
			continue
		}
		if !ext.Targets().Has(target) {
			log.Debug("ignoring extension not applicable to target",
				"extension", name, "target", target.String())
			continue
		}
		c.supported[ext] = true
	}

	if len(p.DisabledWorkarounds) > 0 {
		c.disabledWorkarounds = make(map[string]struct{}, len(p.DisabledWorkarounds))
		for _, name := range p.DisabledWorkarounds {
			c.disabledWorkarounds[name] = struct{}{}
		}
	}

	c.state = newRendererState(c)

	log.Info("context resolved",
		"target", target.String(),
		"version", version.String(),
		"driver", c.driver.String(),
		"flags", c.flags.String(),
		"usedExtensions", len(c.used))

	return c, nil
}

// Target returns the platform class the context was created for.
func (c *Context) Target() Target { return c.target }

// Version returns the context version.
func (c *Context) Version() Version { return c.version }

// IsVersionSupported reports whether the context version is at least v.
func (c *Context) IsVersionSupported(v Version) bool { return c.version >= v }

// IsExtensionSupported reports whether the context reported e.
func (c *Context) IsExtensionSupported(e Extension) bool {
	return e < extensionCount && c.supported[e]
}

// DetectedDriver returns the driver families recognized from the
// profile's vendor, renderer and version strings.
func (c *Context) DetectedDriver() DetectedDriver { return c.driver }

// Flags returns the context creation flags.
func (c *Context) Flags() ContextFlags { return c.flags }

// IsCoreProfile reports whether the context uses the core profile.
// ES and WebGL contexts always do.
func (c *Context) IsCoreProfile() bool { return c.coreProfile }

// IsDriverWorkaroundDisabled reports whether the named workaround was
// explicitly disabled in the profile. Rule conditions consult this so a
// workaround can be switched off without rebuilding rule lists.
func (c *Context) IsDriverWorkaroundDisabled(name string) bool {
	_, ok := c.disabledWorkarounds[name]
	return ok
}

// RecordUsedCapability appends a capability name to the used registry.
// It implements dispatch.Recorder. Duplicates are kept out so the
// registry reads as "the set of extensions this context relies on", in
// first-use order.
func (c *Context) RecordUsedCapability(name string) {
	if slices.Contains(c.used, name) {
		return
	}
	c.used = append(c.used, name)
}

// UsedExtensions returns the names of the extensions resolution
// actually relied on, in resolution order. Extensions that are reported
// by the driver but never won a rule do not appear.
func (c *Context) UsedExtensions() []string {
	return slices.Clone(c.used)
}

// State returns the resolved renderer state.
func (c *Context) State() *RendererState { return c.state }
