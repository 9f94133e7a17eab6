package glstate

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative description of the capabilities a GL context
// reports. Profiles are what the resolver consumes: they come from a
// live driver, from a probe, from a YAML file, or from one of the
// built-in presets, and the resulting Context behaves identically in
// all cases.
type Profile struct {
	// Target is the platform class: "gl", "gles2", "gles3", "webgl1"
	// or "webgl2".
	Target string `yaml:"target"`

	// Version is the context version as "major.minor". Empty means the
	// target's baseline (2.1 for gl, 2.0 for gles2/webgl1, 3.0 for
	// gles3/webgl2).
	Version string `yaml:"version,omitempty"`

	// Vendor, Renderer and VersionString are the raw GL_VENDOR,
	// GL_RENDERER and GL_VERSION strings, used for driver detection.
	Vendor        string `yaml:"vendor,omitempty"`
	Renderer      string `yaml:"renderer,omitempty"`
	VersionString string `yaml:"version_string,omitempty"`

	// CompatibilityProfile marks a desktop context created with the
	// compatibility profile. Ignored on ES and WebGL targets.
	CompatibilityProfile bool `yaml:"compatibility_profile,omitempty"`

	// Flags are context attributes: "forward-compatible", "debug",
	// "no-error".
	Flags []string `yaml:"flags,omitempty"`

	// Extensions are the reported extension strings. Strings the
	// catalog does not know, or that cannot exist on the target, are
	// ignored.
	Extensions []string `yaml:"extensions,omitempty"`

	// DisabledWorkarounds names driver workarounds that must not be
	// applied even when their conditions hold, e.g.
	// "mesa-forward-compatible-line-width-range".
	DisabledWorkarounds []string `yaml:"disabled_workarounds,omitempty"`
}

// ParseProfile parses a YAML profile.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return p, nil
}

// LoadProfile reads and parses a YAML profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("glstate: reading profile: %w", err)
	}
	return ParseProfile(data)
}

// Marshal serializes the profile as YAML.
func (p Profile) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("glstate: marshaling profile: %w", err)
	}
	return data, nil
}

// Built-in preset names.
const (
	PresetDesktopCore           = "desktop-core"
	PresetDesktopCompatibility  = "desktop-compatibility"
	PresetMesaForwardCompatible = "mesa-forward-compatible"
	PresetANGLE                 = "angle"
	PresetGLES2                 = "gles2"
	PresetGLES3                 = "gles3"
	PresetWebGL2                = "webgl2"
)

// presets are capability profiles for common driver configurations,
// handy for tests and for the glstateinfo CLI.
var presets = map[string]Profile{
	PresetDesktopCore: {
		Target:  "gl",
		Version: "4.6",
		Vendor:  "NVIDIA Corporation",
		Extensions: []string{
			"GL_ARB_robustness",
			"GL_ARB_ES2_compatibility",
			"GL_NV_depth_buffer_float",
			"GL_ARB_compressed_texture_pixel_storage",
		},
	},
	PresetDesktopCompatibility: {
		Target:               "gl",
		Version:              "4.6",
		Vendor:               "NVIDIA Corporation",
		CompatibilityProfile: true,
		Extensions: []string{
			"GL_ARB_robustness",
			"GL_ARB_ES2_compatibility",
			"GL_NV_depth_buffer_float",
			"GL_ARB_compressed_texture_pixel_storage",
		},
	},
	PresetMesaForwardCompatible: {
		Target:        "gl",
		Version:       "4.6",
		Vendor:        "Intel",
		Renderer:      "Mesa Intel(R) Xe Graphics",
		VersionString: "4.6 (Core Profile) Mesa 24.0.3",
		Flags:         []string{"forward-compatible"},
		Extensions: []string{
			"GL_ARB_robustness",
			"GL_ARB_ES2_compatibility",
			"GL_ARB_compressed_texture_pixel_storage",
		},
	},
	PresetANGLE: {
		Target:   "gles3",
		Version:  "3.0",
		Vendor:   "Google Inc.",
		Renderer: "ANGLE (Intel, Vulkan)",
		Extensions: []string{
			"GL_EXT_robustness",
			"GL_ANGLE_polygon_mode",
			"GL_OES_sample_shading",
		},
	},
	PresetGLES2: {
		Target:   "gles2",
		Version:  "2.0",
		Vendor:   "Qualcomm",
		Renderer: "Adreno (TM) 640",
		Extensions: []string{
			"GL_EXT_robustness",
			"GL_EXT_unpack_subimage",
			"GL_NV_pack_subimage",
		},
	},
	PresetGLES3: {
		Target:  "gles3",
		Version: "3.2",
		Vendor:  "Qualcomm",
		Extensions: []string{
			"GL_EXT_robustness",
			"GL_OES_sample_shading",
			"GL_EXT_tessellation_shader",
			"GL_EXT_draw_buffers_indexed",
		},
	},
	PresetWebGL2: {
		Target:   "webgl2",
		Version:  "3.0",
		Vendor:   "WebKit",
		Renderer: "WebKit WebGL",
		Extensions: []string{
			"WEBGL_polygon_mode",
		},
	},
}

// PresetByName returns a built-in profile preset.
func PresetByName(name string) (Profile, error) {
	p, ok := presets[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
