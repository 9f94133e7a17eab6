package glstate

import "fmt"

// ResetStatus is the result of a graphics reset status query.
type ResetStatus uint32

const (
	// ResetStatusNoError means no reset occurred, or the context cannot
	// report resets at all.
	ResetStatusNoError ResetStatus = 0

	// ResetStatusGuilty means a reset attributable to this context.
	ResetStatusGuilty ResetStatus = 0x8253

	// ResetStatusInnocent means a reset not attributable to this context.
	ResetStatusInnocent ResetStatus = 0x8254

	// ResetStatusUnknown means a reset with unknown cause.
	ResetStatusUnknown ResetStatus = 0x8255
)

// String returns a short status name.
func (s ResetStatus) String() string {
	switch s {
	case ResetStatusNoError:
		return "no-error"
	case ResetStatusGuilty:
		return "guilty-context-reset"
	case ResetStatusInnocent:
		return "innocent-context-reset"
	case ResetStatusUnknown:
		return "unknown-context-reset"
	}
	return fmt.Sprintf("ResetStatus(0x%x)", uint32(s))
}

// PolygonMode selects how polygons are rasterized.
type PolygonMode uint32

const (
	// PolygonModePoint rasterizes polygon vertices as points.
	PolygonModePoint PolygonMode = 0x1B00

	// PolygonModeLine rasterizes polygon edges as lines.
	PolygonModeLine PolygonMode = 0x1B01

	// PolygonModeFill fills polygons. The initial GL state.
	PolygonModeFill PolygonMode = 0x1B02
)

// PatchParameter is a tessellation patch parameter name.
type PatchParameter uint32

// PatchVertices is the number of vertices per tessellation patch.
const PatchVertices PatchParameter = 0x8E72

// IndexedFeature is a capability that can be enabled per draw buffer.
type IndexedFeature uint32

// FeatureBlend is per-draw-buffer blending.
const FeatureBlend IndexedFeature = 0x0BE2

// BlendFunction is a blend factor.
type BlendFunction uint32

// Blend factors used with per-draw-buffer blend functions.
const (
	BlendZero             BlendFunction = 0
	BlendOne              BlendFunction = 1
	BlendSrcAlpha         BlendFunction = 0x0302
	BlendOneMinusSrcAlpha BlendFunction = 0x0303
	BlendDstAlpha         BlendFunction = 0x0304
)

// BlendEquation combines source and destination blend results.
type BlendEquation uint32

// Blend equations used with per-draw-buffer blend state.
const (
	BlendAdd             BlendEquation = 0x8006
	BlendMin             BlendEquation = 0x8007
	BlendMax             BlendEquation = 0x8008
	BlendSubtract        BlendEquation = 0x800A
	BlendReverseSubtract BlendEquation = 0x800B
)

// PixelStoreParameter is a glPixelStorei parameter name. The EXT and NV
// row length parameters on ES 2 share values with the core ones, so one
// set of constants serves every target.
type PixelStoreParameter uint32

// Pixel storage parameters.
const (
	UnpackAlignment   PixelStoreParameter = 0x0CF5
	PackAlignment     PixelStoreParameter = 0x0D05
	UnpackRowLength   PixelStoreParameter = 0x0CF2
	PackRowLength     PixelStoreParameter = 0x0D02
	UnpackImageHeight PixelStoreParameter = 0x806E
	PackImageHeight   PixelStoreParameter = 0x806C
	UnpackSkipPixels  PixelStoreParameter = 0x0CF4
	PackSkipPixels    PixelStoreParameter = 0x0D04
	UnpackSkipRows    PixelStoreParameter = 0x0CF3
	PackSkipRows      PixelStoreParameter = 0x0D03
	UnpackSkipImages  PixelStoreParameter = 0x806D
	PackSkipImages    PixelStoreParameter = 0x806B

	UnpackCompressedBlockWidth  PixelStoreParameter = 0x9127
	UnpackCompressedBlockHeight PixelStoreParameter = 0x9128
	UnpackCompressedBlockDepth  PixelStoreParameter = 0x9129
	UnpackCompressedBlockSize   PixelStoreParameter = 0x912A
	PackCompressedBlockWidth    PixelStoreParameter = 0x912B
	PackCompressedBlockHeight   PixelStoreParameter = 0x912C
	PackCompressedBlockDepth    PixelStoreParameter = 0x912D
	PackCompressedBlockSize     PixelStoreParameter = 0x912E
)

// capPointSprite is GL_POINT_SPRITE, enabled explicitly on
// compatibility profiles so gl_PointCoord works. Not present in core
// profile headers, hence a raw value.
const capPointSprite uint32 = 0x8861

// API is the set of GL entry points the renderer state dispatches over.
// It is a seam, not a loader: a real implementation forwards to a GL
// binding, tests use a recording fake. Each method corresponds to one
// concrete entry point, including the vendor-suffixed ones, mirroring
// how drivers expose the same operation under several names.
type API interface {
	// glClearDepth / glClearDepthf / glClearDepthdNV
	ClearDepth(depth float64)
	ClearDepthf(depth float32)
	ClearDepthNV(depth float64)

	// glDepthRange / glDepthRangef / glDepthRangedNV
	DepthRange(near, far float64)
	DepthRangef(near, far float32)
	DepthRangeNV(near, far float64)

	// glGetGraphicsResetStatusARB / glGetGraphicsResetStatusEXT
	GraphicsResetStatusARB() ResetStatus
	GraphicsResetStatusEXT() ResetStatus

	// glGet(GL_ALIASED_LINE_WIDTH_RANGE)
	LineWidthRange() (smallest, largest float32)

	// glMinSampleShading / glMinSampleShadingOES
	MinSampleShading(value float32)
	MinSampleShadingOES(value float32)

	// glPatchParameteri / glPatchParameteriEXT
	PatchParameteri(parameter PatchParameter, value int32)
	PatchParameteriEXT(parameter PatchParameter, value int32)

	// glEnablei family and the EXT_draw_buffers_indexed equivalents
	Enablei(feature IndexedFeature, drawBuffer uint32)
	EnableiEXT(feature IndexedFeature, drawBuffer uint32)
	Disablei(feature IndexedFeature, drawBuffer uint32)
	DisableiEXT(feature IndexedFeature, drawBuffer uint32)
	ColorMaski(drawBuffer uint32, r, g, b, a bool)
	ColorMaskiEXT(drawBuffer uint32, r, g, b, a bool)
	BlendFunci(drawBuffer uint32, src, dst BlendFunction)
	BlendFunciEXT(drawBuffer uint32, src, dst BlendFunction)
	BlendFuncSeparatei(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha BlendFunction)
	BlendFuncSeparateiEXT(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha BlendFunction)
	BlendEquationi(drawBuffer uint32, equation BlendEquation)
	BlendEquationiEXT(drawBuffer uint32, equation BlendEquation)
	BlendEquationSeparatei(drawBuffer uint32, rgb, alpha BlendEquation)
	BlendEquationSeparateiEXT(drawBuffer uint32, rgb, alpha BlendEquation)

	// glPolygonMode and the NV/ANGLE/WEBGL variants
	PolygonMode(mode PolygonMode)
	PolygonModeNV(mode PolygonMode)
	PolygonModeANGLE(mode PolygonMode)
	PolygonModeWEBGL(mode PolygonMode)

	// glPixelStorei
	PixelStore(parameter PixelStoreParameter, value int32)

	// glEnable
	Enable(capability uint32)
}
