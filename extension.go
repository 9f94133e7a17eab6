package glstate

import "fmt"

// Extension identifies an OpenGL extension the renderer state can
// dispatch on. The catalog is intentionally small: it lists exactly the
// extensions that appear in a dispatch rule or a pixel-storage
// configuration decision.
type Extension uint8

const (
	// NVDepthBufferFloat is GL_NV_depth_buffer_float: double-precision
	// depth clear and range entry points.
	NVDepthBufferFloat Extension = iota

	// ARBES2Compatibility is GL_ARB_ES2_compatibility: the float depth
	// entry points on desktop GL.
	ARBES2Compatibility

	// ARBRobustness is GL_ARB_robustness: graphics reset status queries
	// on desktop GL.
	ARBRobustness

	// EXTRobustness is GL_EXT_robustness: graphics reset status queries
	// on ES, also exposed by ANGLE on desktop.
	EXTRobustness

	// EXTUnpackSubimage is GL_EXT_unpack_subimage: unpack row length on
	// ES 2.
	EXTUnpackSubimage

	// NVPackSubimage is GL_NV_pack_subimage: pack row length on ES 2.
	NVPackSubimage

	// ARBCompressedTexturePixelStorage is
	// GL_ARB_compressed_texture_pixel_storage: block-size aware pixel
	// store on desktop GL. Notably absent on macOS.
	ARBCompressedTexturePixelStorage

	// OESSampleShading is GL_OES_sample_shading: minimum sample shading
	// on ES before 3.2.
	OESSampleShading

	// EXTTessellationShader is GL_EXT_tessellation_shader: patch
	// parameters on ES before 3.2.
	EXTTessellationShader

	// EXTDrawBuffersIndexed is GL_EXT_draw_buffers_indexed: per draw
	// buffer blend and mask state on ES before 3.2.
	EXTDrawBuffersIndexed

	// NVPolygonMode is GL_NV_polygon_mode.
	NVPolygonMode

	// ANGLEPolygonMode is GL_ANGLE_polygon_mode.
	ANGLEPolygonMode

	// WEBGLPolygonMode is WEBGL_polygon_mode.
	WEBGLPolygonMode

	extensionCount
)

// extensionInfo ties an extension to its reported string and the
// targets it can exist on at all. Extensions reported outside their
// target set are ignored when a context is built.
type extensionInfo struct {
	name    string
	targets TargetMask
}

var extensions = [extensionCount]extensionInfo{
	NVDepthBufferFloat:               {"GL_NV_depth_buffer_float", maskGL},
	ARBES2Compatibility:              {"GL_ARB_ES2_compatibility", maskGL},
	ARBRobustness:                    {"GL_ARB_robustness", maskGL},
	EXTRobustness:                    {"GL_EXT_robustness", maskGL | maskES},
	EXTUnpackSubimage:                {"GL_EXT_unpack_subimage", maskGLES2},
	NVPackSubimage:                   {"GL_NV_pack_subimage", maskGLES2},
	ARBCompressedTexturePixelStorage: {"GL_ARB_compressed_texture_pixel_storage", maskGL},
	OESSampleShading:                 {"GL_OES_sample_shading", maskGLES3},
	EXTTessellationShader:            {"GL_EXT_tessellation_shader", maskGLES3},
	EXTDrawBuffersIndexed:            {"GL_EXT_draw_buffers_indexed", maskGLES3},
	NVPolygonMode:                    {"GL_NV_polygon_mode", maskES},
	ANGLEPolygonMode:                 {"GL_ANGLE_polygon_mode", maskES},
	WEBGLPolygonMode:                 {"WEBGL_polygon_mode", maskWebGL},
}

// String returns the extension string as reported by the driver.
func (e Extension) String() string {
	if e < extensionCount {
		return extensions[e].name
	}
	return fmt.Sprintf("Extension(%d)", uint8(e))
}

// Targets returns the targets the extension can exist on.
func (e Extension) Targets() TargetMask {
	if e < extensionCount {
		return extensions[e].targets
	}
	return 0
}

// ExtensionByName looks up a catalog extension by its reported string.
func ExtensionByName(name string) (Extension, bool) {
	for e := Extension(0); e < extensionCount; e++ {
		if extensions[e].name == name {
			return e, true
		}
	}
	return 0, false
}

// Extensions returns the full catalog in index order.
func Extensions() []Extension {
	all := make([]Extension, extensionCount)
	for e := Extension(0); e < extensionCount; e++ {
		all[e] = e
	}
	return all
}
