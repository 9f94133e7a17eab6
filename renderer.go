package glstate

import (
	"github.com/gogpu/glstate/dispatch"
)

// Stable operation slot identifiers.
const (
	SlotClearDepth         = "clear-depth"
	SlotClearDepthf        = "clear-depthf"
	SlotDepthRange         = "depth-range"
	SlotDepthRangef        = "depth-rangef"
	SlotResetStatus        = "reset-status"
	SlotLineWidthRange     = "line-width-range"
	SlotMinSampleShading   = "min-sample-shading"
	SlotPatchParameteri    = "patch-parameteri"
	SlotDrawBuffersIndexed = "draw-buffers-indexed"
	SlotPolygonMode        = "polygon-mode"
)

// WorkaroundMesaForwardCompatibleLineWidth names the Mesa line width
// clamp applied on forward-compatible contexts. Listing it in a
// profile's DisabledWorkarounds turns it off.
const WorkaroundMesaForwardCompatibleLineWidth = "mesa-forward-compatible-line-width-range"

// Implementation shapes for the operation slots. Every variant receives
// the API explicitly so resolved state carries no reference to a
// binding and stays trivially shareable.
type (
	// ClearDepthFunc sets the double-precision depth clear value.
	ClearDepthFunc func(api API, depth float64)

	// ClearDepthfFunc sets the single-precision depth clear value.
	ClearDepthfFunc func(api API, depth float32)

	// DepthRangeFunc sets the double-precision depth range.
	DepthRangeFunc func(api API, near, far float64)

	// DepthRangefFunc sets the single-precision depth range.
	DepthRangefFunc func(api API, near, far float32)

	// ResetStatusFunc queries the graphics reset status.
	ResetStatusFunc func(api API) ResetStatus

	// LineWidthRangeFunc queries the supported line width range.
	LineWidthRangeFunc func(api API) (smallest, largest float32)

	// SampleShadingFunc sets the minimum sample shading fraction.
	SampleShadingFunc func(api API, value float32)

	// PatchParameterFunc sets a tessellation patch parameter.
	PatchParameterFunc func(api API, parameter PatchParameter, value int32)

	// PolygonModeFunc sets the polygon rasterization mode.
	PolygonModeFunc func(api API, mode PolygonMode)
)

// IndexedOps groups the per-draw-buffer state entry points. The whole
// family is selected together: a driver either has the core 3.2 entry
// points or the EXT_draw_buffers_indexed ones, never a mix.
type IndexedOps struct {
	Enable                func(api API, feature IndexedFeature, drawBuffer uint32)
	Disable               func(api API, feature IndexedFeature, drawBuffer uint32)
	ColorMask             func(api API, drawBuffer uint32, r, g, b, a bool)
	BlendFunc             func(api API, drawBuffer uint32, src, dst BlendFunction)
	BlendFuncSeparate     func(api API, drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha BlendFunction)
	BlendEquation         func(api API, drawBuffer uint32, equation BlendEquation)
	BlendEquationSeparate func(api API, drawBuffer uint32, rgb, alpha BlendEquation)
}

// Depth clear / range variants.
func clearDepthCore(api API, depth float64) { api.ClearDepth(depth) }
func clearDepthNV(api API, depth float64)   { api.ClearDepthNV(depth) }

func clearDepthfNative(api API, depth float32) { api.ClearDepthf(depth) }
func clearDepthfNV(api API, depth float32)     { api.ClearDepthNV(float64(depth)) }
func clearDepthfLifted(api API, depth float32) { api.ClearDepth(float64(depth)) }

func depthRangeCore(api API, near, far float64) { api.DepthRange(near, far) }
func depthRangeNV(api API, near, far float64)   { api.DepthRangeNV(near, far) }

func depthRangefNative(api API, near, far float32) { api.DepthRangef(near, far) }
func depthRangefNV(api API, near, far float32)     { api.DepthRangeNV(float64(near), float64(far)) }
func depthRangefLifted(api API, near, far float32) { api.DepthRange(float64(near), float64(far)) }

// Reset status variants. The default reports no error, which is the
// correct answer on contexts that cannot lose state.
func resetStatusARB(api API) ResetStatus { return api.GraphicsResetStatusARB() }
func resetStatusEXT(api API) ResetStatus { return api.GraphicsResetStatusEXT() }
func resetStatusNone(API) ResetStatus    { return ResetStatusNoError }

// Line width range variants. Mesa drivers restrict line width to 1.0 on
// forward-compatible contexts, so the clamped variant caps what the
// query reports.
func lineWidthRangeQuery(api API) (float32, float32) { return api.LineWidthRange() }
func lineWidthRangeMesaForwardCompatible(api API) (float32, float32) {
	smallest, largest := api.LineWidthRange()
	if largest > 1 {
		largest = 1
	}
	return smallest, largest
}

// Sample shading, patch parameter and polygon mode variants.
func minSampleShadingCore(api API, value float32) { api.MinSampleShading(value) }
func minSampleShadingOES(api API, value float32)  { api.MinSampleShadingOES(value) }

func patchParameteriCore(api API, parameter PatchParameter, value int32) {
	api.PatchParameteri(parameter, value)
}
func patchParameteriEXT(api API, parameter PatchParameter, value int32) {
	api.PatchParameteriEXT(parameter, value)
}

func polygonModeCore(api API, mode PolygonMode)  { api.PolygonMode(mode) }
func polygonModeNV(api API, mode PolygonMode)    { api.PolygonModeNV(mode) }
func polygonModeANGLE(api API, mode PolygonMode) { api.PolygonModeANGLE(mode) }
func polygonModeWEBGL(api API, mode PolygonMode) { api.PolygonModeWEBGL(mode) }

var indexedOpsCore = IndexedOps{
	Enable:  func(api API, f IndexedFeature, b uint32) { api.Enablei(f, b) },
	Disable: func(api API, f IndexedFeature, b uint32) { api.Disablei(f, b) },
	ColorMask: func(api API, b uint32, r, g, bl, a bool) {
		api.ColorMaski(b, r, g, bl, a)
	},
	BlendFunc: func(api API, b uint32, src, dst BlendFunction) {
		api.BlendFunci(b, src, dst)
	},
	BlendFuncSeparate: func(api API, b uint32, srcRGB, dstRGB, srcA, dstA BlendFunction) {
		api.BlendFuncSeparatei(b, srcRGB, dstRGB, srcA, dstA)
	},
	BlendEquation: func(api API, b uint32, eq BlendEquation) {
		api.BlendEquationi(b, eq)
	},
	BlendEquationSeparate: func(api API, b uint32, rgb, alpha BlendEquation) {
		api.BlendEquationSeparatei(b, rgb, alpha)
	},
}

var indexedOpsEXT = IndexedOps{
	Enable:  func(api API, f IndexedFeature, b uint32) { api.EnableiEXT(f, b) },
	Disable: func(api API, f IndexedFeature, b uint32) { api.DisableiEXT(f, b) },
	ColorMask: func(api API, b uint32, r, g, bl, a bool) {
		api.ColorMaskiEXT(b, r, g, bl, a)
	},
	BlendFunc: func(api API, b uint32, src, dst BlendFunction) {
		api.BlendFunciEXT(b, src, dst)
	},
	BlendFuncSeparate: func(api API, b uint32, srcRGB, dstRGB, srcA, dstA BlendFunction) {
		api.BlendFuncSeparateiEXT(b, srcRGB, dstRGB, srcA, dstA)
	},
	BlendEquation: func(api API, b uint32, eq BlendEquation) {
		api.BlendEquationiEXT(b, eq)
	},
	BlendEquationSeparate: func(api API, b uint32, rgb, alpha BlendEquation) {
		api.BlendEquationSeparateiEXT(b, rgb, alpha)
	},
}

// RendererState owns the resolved bindings of one context. It is
// created once per context, never re-resolved, and read-only for its
// whole lifetime; capabilities are fixed per context, so there is
// nothing to re-resolve.
type RendererState struct {
	ClearDepth       dispatch.Binding[ClearDepthFunc]
	ClearDepthf      dispatch.Binding[ClearDepthfFunc]
	DepthRange       dispatch.Binding[DepthRangeFunc]
	DepthRangef      dispatch.Binding[DepthRangefFunc]
	ResetStatus      dispatch.Binding[ResetStatusFunc]
	LineWidthRange   dispatch.Binding[LineWidthRangeFunc]
	MinSampleShading dispatch.Binding[SampleShadingFunc]
	PatchParameteri  dispatch.Binding[PatchParameterFunc]
	Indexed          dispatch.Binding[IndexedOps]
	PolygonMode      dispatch.Binding[PolygonModeFunc]

	// NeedsPointSpriteEnable is set on desktop compatibility profiles:
	// GL_POINT_SPRITE must be enabled explicitly for gl_PointCoord to
	// work there (NVidia at least; Mesa behaves as if always enabled).
	// On core profile the enum does not even exist and enabling it
	// would raise a GL error.
	NeedsPointSpriteEnable bool

	// Pixel storage reset values, resolved from capabilities: row
	// length resets to 0 instead of the disengaged marker when the
	// target cannot change it, so that state is never touched. Same
	// for compressed block sizes without
	// ARB_compressed_texture_pixel_storage (macOS).
	unpackRowLengthReset int32
	packRowLengthReset   int32
	blockSizeReset       int32
}

// predicate and rule helpers shared by the slot definitions.

func extWhen(e Extension) func(*Context) bool {
	return func(c *Context) bool { return c.IsExtensionSupported(e) }
}

func versionWhen(v Version) func(*Context) bool {
	return func(c *Context) bool { return c.IsVersionSupported(v) }
}

func extRule[T any](e Extension, variant string, impl T) dispatch.Rule[*Context, T] {
	return dispatch.Rule[*Context, T]{
		Capability: e.String(),
		When:       extWhen(e),
		Impl:       impl,
		Variant:    variant,
	}
}

func versionRule[T any](v Version, variant string, impl T) dispatch.Rule[*Context, T] {
	return dispatch.Rule[*Context, T]{
		When:    versionWhen(v),
		Impl:    impl,
		Variant: variant,
	}
}

// newRendererState resolves every operation slot for c. The rule lists
// are ported driver-compatibility data: the declared order per slot is
// authoritative and must not be rearranged.
func newRendererState(c *Context) *RendererState {
	s := &RendererState{}
	target := c.target

	// Depth clear value / range. If NV_depth_buffer_float is present,
	// prefer it for both the float and double variants to avoid
	// accidents. Otherwise use the native float variant if available
	// and fall back to lifting through the double one.
	{
		slot := dispatch.Slot[*Context, ClearDepthFunc]{Name: SlotClearDepth}
		if target == TargetGL {
			slot.Rules = []dispatch.Rule[*Context, ClearDepthFunc]{
				extRule(NVDepthBufferFloat, "NV", ClearDepthFunc(clearDepthNV)),
			}
			slot.Fallback = dispatch.Fallback(ClearDepthFunc(clearDepthCore))
			slot.FallbackVariant = "core"
		}
		s.ClearDepth = dispatch.Resolve(c, c, slot)
	}
	{
		slot := dispatch.Slot[*Context, DepthRangeFunc]{Name: SlotDepthRange}
		if target == TargetGL {
			slot.Rules = []dispatch.Rule[*Context, DepthRangeFunc]{
				extRule(NVDepthBufferFloat, "NV", DepthRangeFunc(depthRangeNV)),
			}
			slot.Fallback = dispatch.Fallback(DepthRangeFunc(depthRangeCore))
			slot.FallbackVariant = "core"
		}
		s.DepthRange = dispatch.Resolve(c, c, slot)
	}
	{
		slot := dispatch.Slot[*Context, ClearDepthfFunc]{Name: SlotClearDepthf}
		if target == TargetGL {
			slot.Rules = []dispatch.Rule[*Context, ClearDepthfFunc]{
				extRule(NVDepthBufferFloat, "NV", ClearDepthfFunc(clearDepthfNV)),
				extRule(ARBES2Compatibility, "core", ClearDepthfFunc(clearDepthfNative)),
			}
			slot.Fallback = dispatch.Fallback(ClearDepthfFunc(clearDepthfLifted))
			slot.FallbackVariant = "default"
		} else {
			slot.Fallback = dispatch.Fallback(ClearDepthfFunc(clearDepthfNative))
			slot.FallbackVariant = "core"
		}
		s.ClearDepthf = dispatch.Resolve(c, c, slot)
	}
	{
		slot := dispatch.Slot[*Context, DepthRangefFunc]{Name: SlotDepthRangef}
		if target == TargetGL {
			slot.Rules = []dispatch.Rule[*Context, DepthRangefFunc]{
				extRule(NVDepthBufferFloat, "NV", DepthRangefFunc(depthRangefNV)),
				extRule(ARBES2Compatibility, "core", DepthRangefFunc(depthRangefNative)),
			}
			slot.Fallback = dispatch.Fallback(DepthRangefFunc(depthRangefLifted))
			slot.FallbackVariant = "default"
		} else {
			slot.Fallback = dispatch.Fallback(DepthRangefFunc(depthRangefNative))
			slot.FallbackVariant = "core"
		}
		s.DepthRangef = dispatch.Resolve(c, c, slot)
	}

	// Graphics reset status. ARB_robustness on desktop, EXT_robustness
	// on ES; ANGLE also exposes the EXT form on desktop, hence both in
	// one list with ARB preferred. WebGL has no reset queries.
	{
		slot := dispatch.Slot[*Context, ResetStatusFunc]{
			Name:            SlotResetStatus,
			Fallback:        dispatch.Fallback(ResetStatusFunc(resetStatusNone)),
			FallbackVariant: "default",
		}
		switch target {
		case TargetGL:
			slot.Rules = []dispatch.Rule[*Context, ResetStatusFunc]{
				extRule(ARBRobustness, "ARB", ResetStatusFunc(resetStatusARB)),
				extRule(EXTRobustness, "EXT", ResetStatusFunc(resetStatusEXT)),
			}
		case TargetGLES2, TargetGLES3:
			slot.Rules = []dispatch.Rule[*Context, ResetStatusFunc]{
				extRule(EXTRobustness, "EXT", ResetStatusFunc(resetStatusEXT)),
			}
		}
		s.ResetStatus = dispatch.Resolve(c, c, slot)
	}

	// Line width range. The Mesa rule is compound: the driver fact, the
	// context flag and the workaround switch are all re-checked at
	// resolution time, so a disabled workaround falls through to the
	// plain query even on an affected driver.
	{
		slot := dispatch.Slot[*Context, LineWidthRangeFunc]{
			Name:            SlotLineWidthRange,
			Fallback:        dispatch.Fallback(LineWidthRangeFunc(lineWidthRangeQuery)),
			FallbackVariant: "default",
		}
		if target == TargetGL {
			slot.Rules = []dispatch.Rule[*Context, LineWidthRangeFunc]{
				{
					When: func(c *Context) bool {
						return c.DetectedDriver()&DriverMesa != 0 &&
							c.Flags()&FlagForwardCompatible != 0 &&
							!c.IsDriverWorkaroundDisabled(WorkaroundMesaForwardCompatibleLineWidth)
					},
					Impl:    lineWidthRangeMesaForwardCompatible,
					Variant: "mesaForwardCompatible",
				},
			}
		}
		s.LineWidthRange = dispatch.Resolve(c, c, slot)
	}

	// Minimum sample shading. Core since ES 3.2, OES extension before
	// that, always present on desktop, absent on ES 2 and WebGL.
	{
		slot := dispatch.Slot[*Context, SampleShadingFunc]{Name: SlotMinSampleShading}
		switch target {
		case TargetGL:
			slot.Fallback = dispatch.Fallback(SampleShadingFunc(minSampleShadingCore))
			slot.FallbackVariant = "core"
		case TargetGLES3:
			slot.Rules = []dispatch.Rule[*Context, SampleShadingFunc]{
				versionRule(GLES320, "core", SampleShadingFunc(minSampleShadingCore)),
				extRule(OESSampleShading, "OES", SampleShadingFunc(minSampleShadingOES)),
			}
		}
		s.MinSampleShading = dispatch.Resolve(c, c, slot)
	}

	// Tessellation patch parameters. On ES below 3.2 the EXT entry
	// point is bound unconditionally without recording the extension:
	// tessellation is not an optional nicety there, the entry point is
	// simply null when the extension is missing and callers gate on
	// the extension themselves.
	{
		slot := dispatch.Slot[*Context, PatchParameterFunc]{Name: SlotPatchParameteri}
		switch target {
		case TargetGL:
			slot.Fallback = dispatch.Fallback(PatchParameterFunc(patchParameteriCore))
			slot.FallbackVariant = "core"
		case TargetGLES3:
			slot.Rules = []dispatch.Rule[*Context, PatchParameterFunc]{
				versionRule(GLES320, "core", PatchParameterFunc(patchParameteriCore)),
			}
			slot.Fallback = dispatch.Fallback(PatchParameterFunc(patchParameteriEXT))
			slot.FallbackVariant = "EXT"
		}
		s.PatchParameteri = dispatch.Resolve(c, c, slot)
	}

	// Per-draw-buffer state. Same shape as patch parameters; browsers
	// do not expose the EXT entry points, so WebGL 2 stays unsupported.
	{
		slot := dispatch.Slot[*Context, IndexedOps]{Name: SlotDrawBuffersIndexed}
		switch target {
		case TargetGL:
			slot.Fallback = dispatch.Fallback(indexedOpsCore)
			slot.FallbackVariant = "core"
		case TargetGLES3:
			slot.Rules = []dispatch.Rule[*Context, IndexedOps]{
				versionRule(GLES320, "core", indexedOpsCore),
			}
			slot.Fallback = dispatch.Fallback(indexedOpsEXT)
			slot.FallbackVariant = "EXT"
		}
		s.Indexed = dispatch.Resolve(c, c, slot)
	}

	// Polygon mode. Core on desktop; NV preferred over ANGLE on ES;
	// WEBGL_polygon_mode in browsers that ship it.
	{
		slot := dispatch.Slot[*Context, PolygonModeFunc]{Name: SlotPolygonMode}
		switch target {
		case TargetGL:
			slot.Fallback = dispatch.Fallback(PolygonModeFunc(polygonModeCore))
			slot.FallbackVariant = "core"
		case TargetGLES2, TargetGLES3:
			slot.Rules = []dispatch.Rule[*Context, PolygonModeFunc]{
				extRule(NVPolygonMode, "NV", PolygonModeFunc(polygonModeNV)),
				extRule(ANGLEPolygonMode, "ANGLE", PolygonModeFunc(polygonModeANGLE)),
			}
		case TargetWebGL1, TargetWebGL2:
			slot.Rules = []dispatch.Rule[*Context, PolygonModeFunc]{
				extRule(WEBGLPolygonMode, "WEBGL", PolygonModeFunc(polygonModeWEBGL)),
			}
		}
		s.PolygonMode = dispatch.Resolve(c, c, slot)
	}

	// Pixel storage reset values. Where the row length cannot be
	// changed the cached value stays constantly 0 so that state is
	// never modified.
	s.unpackRowLengthReset = DisengagedValue
	s.packRowLengthReset = DisengagedValue
	switch target {
	case TargetGLES2:
		if !c.IsExtensionSupported(EXTUnpackSubimage) {
			s.unpackRowLengthReset = 0
		}
		if !c.IsExtensionSupported(NVPackSubimage) {
			s.packRowLengthReset = 0
		}
	case TargetWebGL1:
		s.unpackRowLengthReset = 0
		s.packRowLengthReset = 0
	}

	// Compressed block properties are only settable with
	// ARB_compressed_texture_pixel_storage; keeping them constantly 0
	// otherwise avoids touching that state (macOS has no support).
	s.blockSizeReset = 0
	if target == TargetGL && c.IsExtensionSupported(ARBCompressedTexturePixelStorage) {
		s.blockSizeReset = DisengagedValue
	}

	s.NeedsPointSpriteEnable = target == TargetGL && !c.IsCoreProfile()

	return s
}

// BindingInfo describes one resolved slot for diagnostics.
type BindingInfo struct {
	Slot      string
	Variant   string
	Supported bool
}

// Bindings lists every slot with its resolved variant, in declaration
// order. Used by the glstateinfo tool and by tests that assert on the
// whole table.
func (s *RendererState) Bindings() []BindingInfo {
	return []BindingInfo{
		{SlotClearDepth, s.ClearDepth.Variant(), s.ClearDepth.Supported()},
		{SlotClearDepthf, s.ClearDepthf.Variant(), s.ClearDepthf.Supported()},
		{SlotDepthRange, s.DepthRange.Variant(), s.DepthRange.Supported()},
		{SlotDepthRangef, s.DepthRangef.Variant(), s.DepthRangef.Supported()},
		{SlotResetStatus, s.ResetStatus.Variant(), s.ResetStatus.Supported()},
		{SlotLineWidthRange, s.LineWidthRange.Variant(), s.LineWidthRange.Supported()},
		{SlotMinSampleShading, s.MinSampleShading.Variant(), s.MinSampleShading.Supported()},
		{SlotPatchParameteri, s.PatchParameteri.Variant(), s.PatchParameteri.Supported()},
		{SlotDrawBuffersIndexed, s.Indexed.Variant(), s.Indexed.Supported()},
		{SlotPolygonMode, s.PolygonMode.Variant(), s.PolygonMode.Supported()},
	}
}

// Renderer invokes resolved implementations against a concrete API.
// Optional operations have a Supports method; invoking one that is
// unsupported without checking is a programming error and panics.
//
// Renderer is NOT safe for concurrent use: it caches pixel storage
// state. Create one Renderer per goroutine, or use external
// synchronization.
type Renderer struct {
	ctx    *Context
	api    API
	unpack PixelStore
	pack   PixelStore
}

// NewRenderer binds a context's resolved state to a concrete API and
// applies the initial state fixups the context class needs.
func NewRenderer(ctx *Context, api API) *Renderer {
	r := &Renderer{
		ctx:    ctx,
		api:    api,
		unpack: newPixelStore(ctx.state.unpackRowLengthReset, ctx.state.blockSizeReset),
		pack:   newPixelStore(ctx.state.packRowLengthReset, ctx.state.blockSizeReset),
	}
	if ctx.state.NeedsPointSpriteEnable {
		api.Enable(capPointSprite)
	}
	return r
}

// Context returns the context the renderer was created for.
func (r *Renderer) Context() *Context { return r.ctx }

// SupportsClearDepth reports whether the double-precision depth clear
// value is available (desktop GL only).
func (r *Renderer) SupportsClearDepth() bool { return r.ctx.state.ClearDepth.Supported() }

// ClearDepth sets the double-precision depth clear value.
func (r *Renderer) ClearDepth(depth float64) { r.ctx.state.ClearDepth.Must()(r.api, depth) }

// ClearDepthf sets the depth clear value. Available on every target.
func (r *Renderer) ClearDepthf(depth float32) { r.ctx.state.ClearDepthf.Must()(r.api, depth) }

// SupportsDepthRange reports whether the double-precision depth range
// is available (desktop GL only).
func (r *Renderer) SupportsDepthRange() bool { return r.ctx.state.DepthRange.Supported() }

// DepthRange sets the double-precision depth range.
func (r *Renderer) DepthRange(near, far float64) { r.ctx.state.DepthRange.Must()(r.api, near, far) }

// DepthRangef sets the depth range. Available on every target.
func (r *Renderer) DepthRangef(near, far float32) {
	r.ctx.state.DepthRangef.Must()(r.api, near, far)
}

// GraphicsResetStatus queries the reset status. Contexts without a
// robustness extension always report ResetStatusNoError.
func (r *Renderer) GraphicsResetStatus() ResetStatus {
	return r.ctx.state.ResetStatus.Must()(r.api)
}

// LineWidthRange returns the supported line width range, with driver
// workarounds applied.
func (r *Renderer) LineWidthRange() (smallest, largest float32) {
	return r.ctx.state.LineWidthRange.Must()(r.api)
}

// SupportsMinSampleShading reports whether minimum sample shading can
// be set on this context.
func (r *Renderer) SupportsMinSampleShading() bool {
	return r.ctx.state.MinSampleShading.Supported()
}

// SetMinSampleShading sets the minimum fraction of samples shaded per
// fragment.
func (r *Renderer) SetMinSampleShading(value float32) {
	r.ctx.state.MinSampleShading.Must()(r.api, value)
}

// SupportsPatchParameters reports whether tessellation patch parameters
// can be set on this context.
func (r *Renderer) SupportsPatchParameters() bool {
	return r.ctx.state.PatchParameteri.Supported()
}

// SetPatchVertexCount sets the number of vertices per tessellation
// patch.
func (r *Renderer) SetPatchVertexCount(count int32) {
	r.ctx.state.PatchParameteri.Must()(r.api, PatchVertices, count)
}

// SupportsIndexedDrawBuffers reports whether per-draw-buffer blend and
// mask state is available.
func (r *Renderer) SupportsIndexedDrawBuffers() bool { return r.ctx.state.Indexed.Supported() }

// EnableBlend enables blending for one draw buffer.
func (r *Renderer) EnableBlend(drawBuffer uint32) {
	r.ctx.state.Indexed.Must().Enable(r.api, FeatureBlend, drawBuffer)
}

// DisableBlend disables blending for one draw buffer.
func (r *Renderer) DisableBlend(drawBuffer uint32) {
	r.ctx.state.Indexed.Must().Disable(r.api, FeatureBlend, drawBuffer)
}

// SetColorMask sets the color write mask for one draw buffer.
func (r *Renderer) SetColorMask(drawBuffer uint32, red, green, blue, alpha bool) {
	r.ctx.state.Indexed.Must().ColorMask(r.api, drawBuffer, red, green, blue, alpha)
}

// SetBlendFunction sets the blend factors for one draw buffer.
func (r *Renderer) SetBlendFunction(drawBuffer uint32, src, dst BlendFunction) {
	r.ctx.state.Indexed.Must().BlendFunc(r.api, drawBuffer, src, dst)
}

// SetBlendFunctionSeparate sets RGB and alpha blend factors separately
// for one draw buffer.
func (r *Renderer) SetBlendFunctionSeparate(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha BlendFunction) {
	r.ctx.state.Indexed.Must().BlendFuncSeparate(r.api, drawBuffer, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

// SetBlendEquation sets the blend equation for one draw buffer.
func (r *Renderer) SetBlendEquation(drawBuffer uint32, equation BlendEquation) {
	r.ctx.state.Indexed.Must().BlendEquation(r.api, drawBuffer, equation)
}

// SetBlendEquationSeparate sets RGB and alpha blend equations
// separately for one draw buffer.
func (r *Renderer) SetBlendEquationSeparate(drawBuffer uint32, rgb, alpha BlendEquation) {
	r.ctx.state.Indexed.Must().BlendEquationSeparate(r.api, drawBuffer, rgb, alpha)
}

// SupportsPolygonMode reports whether the polygon rasterization mode
// can be changed on this context.
func (r *Renderer) SupportsPolygonMode() bool { return r.ctx.state.PolygonMode.Supported() }

// SetPolygonMode sets the polygon rasterization mode.
func (r *Renderer) SetPolygonMode(mode PolygonMode) {
	r.ctx.state.PolygonMode.Must()(r.api, mode)
}
