package probe

import "github.com/gogpu/glstate"

// profileFromStrings maps adapter identification strings onto a
// capability profile. A wgpu adapter exposes no GL extension list, so
// the profile carries the baseline every driver of the detected family
// ships rather than the full set a live GL context would report.
func profileFromStrings(name, vendor, driver string) glstate.Profile {
	detected := glstate.DetectDriver(vendor, name, driver)

	// ANGLE and SwiftShader adapters present ES semantics.
	if detected&(glstate.DriverAngle|glstate.DriverSwiftShader) != 0 {
		return glstate.Profile{
			Target:        "gles3",
			Version:       "3.0",
			Vendor:        vendor,
			Renderer:      name,
			VersionString: driver,
			Extensions: []string{
				"GL_EXT_robustness",
				"GL_ANGLE_polygon_mode",
			},
		}
	}

	p := glstate.Profile{
		Target:        "gl",
		Version:       "4.6",
		Vendor:        vendor,
		Renderer:      name,
		VersionString: driver,
		Extensions: []string{
			"GL_ARB_ES2_compatibility",
			"GL_ARB_robustness",
			"GL_ARB_compressed_texture_pixel_storage",
		},
	}
	if detected&glstate.DriverNVidia != 0 {
		p.Extensions = append(p.Extensions, "GL_NV_depth_buffer_float")
	}
	return p
}

// genericProfile is the fallback when an adapter exposes nothing to
// detect a driver family from.
func genericProfile() glstate.Profile {
	return glstate.Profile{
		Target:  "gl",
		Version: "4.1",
		Extensions: []string{
			"GL_ARB_ES2_compatibility",
		},
	}
}
