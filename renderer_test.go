package glstate

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// fakeAPI records every entry point invocation as a formatted string so
// tests can assert on exactly which variant was called, in which order.
type fakeAPI struct {
	calls []string

	resetARB  ResetStatus
	resetEXT  ResetStatus
	lineWidth [2]float32
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{lineWidth: [2]float32{1, 10}}
}

func (f *fakeAPI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) ClearDepth(depth float64)  { f.record("ClearDepth(%v)", depth) }
func (f *fakeAPI) ClearDepthf(depth float32) { f.record("ClearDepthf(%v)", depth) }
func (f *fakeAPI) ClearDepthNV(depth float64) {
	f.record("ClearDepthNV(%v)", depth)
}

func (f *fakeAPI) DepthRange(near, far float64)  { f.record("DepthRange(%v,%v)", near, far) }
func (f *fakeAPI) DepthRangef(near, far float32) { f.record("DepthRangef(%v,%v)", near, far) }
func (f *fakeAPI) DepthRangeNV(near, far float64) {
	f.record("DepthRangeNV(%v,%v)", near, far)
}

func (f *fakeAPI) GraphicsResetStatusARB() ResetStatus {
	f.record("GraphicsResetStatusARB()")
	return f.resetARB
}

func (f *fakeAPI) GraphicsResetStatusEXT() ResetStatus {
	f.record("GraphicsResetStatusEXT()")
	return f.resetEXT
}

func (f *fakeAPI) LineWidthRange() (float32, float32) {
	f.record("LineWidthRange()")
	return f.lineWidth[0], f.lineWidth[1]
}

func (f *fakeAPI) MinSampleShading(value float32)    { f.record("MinSampleShading(%v)", value) }
func (f *fakeAPI) MinSampleShadingOES(value float32) { f.record("MinSampleShadingOES(%v)", value) }

func (f *fakeAPI) PatchParameteri(p PatchParameter, v int32) {
	f.record("PatchParameteri(0x%X,%d)", uint32(p), v)
}

func (f *fakeAPI) PatchParameteriEXT(p PatchParameter, v int32) {
	f.record("PatchParameteriEXT(0x%X,%d)", uint32(p), v)
}

func (f *fakeAPI) Enablei(feat IndexedFeature, b uint32)    { f.record("Enablei(0x%X,%d)", uint32(feat), b) }
func (f *fakeAPI) EnableiEXT(feat IndexedFeature, b uint32) { f.record("EnableiEXT(0x%X,%d)", uint32(feat), b) }
func (f *fakeAPI) Disablei(feat IndexedFeature, b uint32)   { f.record("Disablei(0x%X,%d)", uint32(feat), b) }
func (f *fakeAPI) DisableiEXT(feat IndexedFeature, b uint32) {
	f.record("DisableiEXT(0x%X,%d)", uint32(feat), b)
}

func (f *fakeAPI) ColorMaski(b uint32, r, g, bl, a bool) {
	f.record("ColorMaski(%d,%v,%v,%v,%v)", b, r, g, bl, a)
}

func (f *fakeAPI) ColorMaskiEXT(b uint32, r, g, bl, a bool) {
	f.record("ColorMaskiEXT(%d,%v,%v,%v,%v)", b, r, g, bl, a)
}

func (f *fakeAPI) BlendFunci(b uint32, src, dst BlendFunction) {
	f.record("BlendFunci(%d,0x%X,0x%X)", b, uint32(src), uint32(dst))
}

func (f *fakeAPI) BlendFunciEXT(b uint32, src, dst BlendFunction) {
	f.record("BlendFunciEXT(%d,0x%X,0x%X)", b, uint32(src), uint32(dst))
}

func (f *fakeAPI) BlendFuncSeparatei(b uint32, srcRGB, dstRGB, srcA, dstA BlendFunction) {
	f.record("BlendFuncSeparatei(%d)", b)
}

func (f *fakeAPI) BlendFuncSeparateiEXT(b uint32, srcRGB, dstRGB, srcA, dstA BlendFunction) {
	f.record("BlendFuncSeparateiEXT(%d)", b)
}

func (f *fakeAPI) BlendEquationi(b uint32, eq BlendEquation) {
	f.record("BlendEquationi(%d,0x%X)", b, uint32(eq))
}

func (f *fakeAPI) BlendEquationiEXT(b uint32, eq BlendEquation) {
	f.record("BlendEquationiEXT(%d,0x%X)", b, uint32(eq))
}

func (f *fakeAPI) BlendEquationSeparatei(b uint32, rgb, alpha BlendEquation) {
	f.record("BlendEquationSeparatei(%d)", b)
}

func (f *fakeAPI) BlendEquationSeparateiEXT(b uint32, rgb, alpha BlendEquation) {
	f.record("BlendEquationSeparateiEXT(%d)", b)
}

func (f *fakeAPI) PolygonMode(m PolygonMode)      { f.record("PolygonMode(0x%X)", uint32(m)) }
func (f *fakeAPI) PolygonModeNV(m PolygonMode)    { f.record("PolygonModeNV(0x%X)", uint32(m)) }
func (f *fakeAPI) PolygonModeANGLE(m PolygonMode) { f.record("PolygonModeANGLE(0x%X)", uint32(m)) }
func (f *fakeAPI) PolygonModeWEBGL(m PolygonMode) { f.record("PolygonModeWEBGL(0x%X)", uint32(m)) }

func (f *fakeAPI) PixelStore(p PixelStoreParameter, v int32) {
	f.record("PixelStore(0x%X,%d)", uint32(p), v)
}

func (f *fakeAPI) Enable(capability uint32) { f.record("Enable(0x%X)", capability) }

func mustContext(t *testing.T, p Profile) *Context {
	t.Helper()
	ctx, err := NewContext(p)
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	return ctx
}

func mustPreset(t *testing.T, name string) *Context {
	t.Helper()
	p, err := PresetByName(name)
	if err != nil {
		t.Fatalf("PresetByName(%q) = %v", name, err)
	}
	return mustContext(t, p)
}

func TestBindingsPerPreset(t *testing.T) {
	tests := []struct {
		preset string
		want   []BindingInfo
	}{
		{
			preset: PresetDesktopCore,
			want: []BindingInfo{
				{SlotClearDepth, "NV", true},
				{SlotClearDepthf, "NV", true},
				{SlotDepthRange, "NV", true},
				{SlotDepthRangef, "NV", true},
				{SlotResetStatus, "ARB", true},
				{SlotLineWidthRange, "default", true},
				{SlotMinSampleShading, "core", true},
				{SlotPatchParameteri, "core", true},
				{SlotDrawBuffersIndexed, "core", true},
				{SlotPolygonMode, "core", true},
			},
		},
		{
			preset: PresetGLES3,
			want: []BindingInfo{
				{SlotClearDepth, "unsupported", false},
				{SlotClearDepthf, "core", true},
				{SlotDepthRange, "unsupported", false},
				{SlotDepthRangef, "core", true},
				{SlotResetStatus, "EXT", true},
				{SlotLineWidthRange, "default", true},
				{SlotMinSampleShading, "core", true},
				{SlotPatchParameteri, "core", true},
				{SlotDrawBuffersIndexed, "core", true},
				{SlotPolygonMode, "unsupported", false},
			},
		},
		{
			preset: PresetANGLE,
			want: []BindingInfo{
				{SlotClearDepth, "unsupported", false},
				{SlotClearDepthf, "core", true},
				{SlotDepthRange, "unsupported", false},
				{SlotDepthRangef, "core", true},
				{SlotResetStatus, "EXT", true},
				{SlotLineWidthRange, "default", true},
				{SlotMinSampleShading, "OES", true},
				{SlotPatchParameteri, "EXT", true},
				{SlotDrawBuffersIndexed, "EXT", true},
				{SlotPolygonMode, "ANGLE", true},
			},
		},
		{
			preset: PresetGLES2,
			want: []BindingInfo{
				{SlotClearDepth, "unsupported", false},
				{SlotClearDepthf, "core", true},
				{SlotDepthRange, "unsupported", false},
				{SlotDepthRangef, "core", true},
				{SlotResetStatus, "EXT", true},
				{SlotLineWidthRange, "default", true},
				{SlotMinSampleShading, "unsupported", false},
				{SlotPatchParameteri, "unsupported", false},
				{SlotDrawBuffersIndexed, "unsupported", false},
				{SlotPolygonMode, "unsupported", false},
			},
		},
		{
			preset: PresetWebGL2,
			want: []BindingInfo{
				{SlotClearDepth, "unsupported", false},
				{SlotClearDepthf, "core", true},
				{SlotDepthRange, "unsupported", false},
				{SlotDepthRangef, "core", true},
				{SlotResetStatus, "default", true},
				{SlotLineWidthRange, "default", true},
				{SlotMinSampleShading, "unsupported", false},
				{SlotPatchParameteri, "unsupported", false},
				{SlotDrawBuffersIndexed, "unsupported", false},
				{SlotPolygonMode, "WEBGL", true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			ctx := mustPreset(t, tt.preset)
			got := ctx.State().Bindings()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bindings() mismatch\n got: %v\nwant: %v", got, tt.want)
			}
		})
	}
}

func TestResetStatusPrefersARBOverEXT(t *testing.T) {
	// ANGLE on desktop reports both robustness extensions; the ARB
	// form must win regardless of reporting order.
	ctx := mustContext(t, Profile{
		Target:     "gl",
		Version:    "4.5",
		Extensions: []string{"GL_EXT_robustness", "GL_ARB_robustness"},
	})
	if got := ctx.State().ResetStatus.Variant(); got != "ARB" {
		t.Errorf("ResetStatus variant = %q, want ARB", got)
	}
	if got := ctx.UsedExtensions(); !contains(got, "GL_ARB_robustness") {
		t.Errorf("UsedExtensions() = %v, want GL_ARB_robustness present", got)
	}
}

func TestResetStatusEXTWithoutARB(t *testing.T) {
	ctx := mustContext(t, Profile{
		Target:     "gl",
		Version:    "4.5",
		Extensions: []string{"GL_EXT_robustness"},
	})
	if got := ctx.State().ResetStatus.Variant(); got != "EXT" {
		t.Errorf("ResetStatus variant = %q, want EXT", got)
	}

	api := newFakeAPI()
	api.resetEXT = ResetStatusInnocent
	r := NewRenderer(ctx, api)
	if got := r.GraphicsResetStatus(); got != ResetStatusInnocent {
		t.Errorf("GraphicsResetStatus() = %v, want %v", got, ResetStatusInnocent)
	}
	if !containsCall(api.calls, "GraphicsResetStatusEXT()") {
		t.Errorf("calls = %v, want GraphicsResetStatusEXT", api.calls)
	}
}

func TestResetStatusDefaultReportsNoError(t *testing.T) {
	ctx := mustContext(t, Profile{Target: "gl", Version: "4.5"})
	api := newFakeAPI()
	r := NewRenderer(ctx, api)
	if got := r.GraphicsResetStatus(); got != ResetStatusNoError {
		t.Errorf("GraphicsResetStatus() = %v, want no-error", got)
	}
	if len(api.calls) != 0 {
		t.Errorf("default reset status should not call the API, got %v", api.calls)
	}
}

func TestLineWidthRangeMesaForwardCompatible(t *testing.T) {
	base := Profile{
		Target:        "gl",
		Version:       "4.6",
		Vendor:        "Intel",
		Renderer:      "Mesa Intel(R) Xe Graphics",
		VersionString: "4.6 (Core Profile) Mesa 24.0.3",
		Flags:         []string{"forward-compatible"},
	}

	tests := []struct {
		name        string
		mutate      func(*Profile)
		wantVariant string
		wantLargest float32
	}{
		{
			name:        "all conditions hold",
			mutate:      func(*Profile) {},
			wantVariant: "mesaForwardCompatible",
			wantLargest: 1,
		},
		{
			name: "not forward compatible",
			mutate: func(p *Profile) {
				p.Flags = nil
			},
			wantVariant: "default",
			wantLargest: 10,
		},
		{
			name: "not Mesa",
			mutate: func(p *Profile) {
				p.Vendor = "NVIDIA Corporation"
				p.Renderer = "NVIDIA GeForce RTX 4080"
				p.VersionString = "4.6.0 NVIDIA 550.54"
			},
			wantVariant: "default",
			wantLargest: 10,
		},
		{
			name: "workaround disabled",
			mutate: func(p *Profile) {
				p.DisabledWorkarounds = []string{WorkaroundMesaForwardCompatibleLineWidth}
			},
			wantVariant: "default",
			wantLargest: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			ctx := mustContext(t, p)
			if got := ctx.State().LineWidthRange.Variant(); got != tt.wantVariant {
				t.Fatalf("LineWidthRange variant = %q, want %q", got, tt.wantVariant)
			}

			api := newFakeAPI()
			api.lineWidth = [2]float32{1, 10}
			r := NewRenderer(ctx, api)
			smallest, largest := r.LineWidthRange()
			if smallest != 1 || largest != tt.wantLargest {
				t.Errorf("LineWidthRange() = (%v, %v), want (1, %v)", smallest, largest, tt.wantLargest)
			}
		})
	}
}

func TestUsedExtensionsDesktopCore(t *testing.T) {
	ctx := mustPreset(t, PresetDesktopCore)
	got := ctx.UsedExtensions()
	want := []string{"GL_NV_depth_buffer_float", "GL_ARB_robustness"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UsedExtensions() = %v, want %v", got, want)
	}
}

func TestUsedExtensionsOmitsPreemptedRules(t *testing.T) {
	// ARB_ES2_compatibility is reported, but NV_depth_buffer_float
	// preempts it on both float depth slots, so it must not appear as
	// used.
	ctx := mustPreset(t, PresetDesktopCore)
	if contains(ctx.UsedExtensions(), "GL_ARB_ES2_compatibility") {
		t.Errorf("UsedExtensions() = %v, should not include preempted GL_ARB_ES2_compatibility",
			ctx.UsedExtensions())
	}
}

func TestDepthLiftedFallback(t *testing.T) {
	// Plain GL 2.1: no NV_depth_buffer_float, no ARB_ES2_compatibility.
	// The float variants lift through the double entry points.
	ctx := mustContext(t, Profile{Target: "gl", Version: "2.1"})
	api := newFakeAPI()
	r := NewRenderer(ctx, api)

	r.ClearDepthf(0.5)
	r.DepthRangef(0, 0.5)

	want := []string{"ClearDepth(0.5)", "DepthRange(0,0.5)"}
	if !reflect.DeepEqual(api.calls, want) {
		t.Errorf("calls = %v, want %v", api.calls, want)
	}
}

func TestDepthNVVariantCalls(t *testing.T) {
	ctx := mustPreset(t, PresetDesktopCore)
	api := newFakeAPI()
	r := NewRenderer(ctx, api)

	r.ClearDepth(1)
	r.ClearDepthf(0.25)
	r.DepthRange(0, 1)
	r.DepthRangef(0, 0.25)

	want := []string{
		"ClearDepthNV(1)",
		"ClearDepthNV(0.25)",
		"DepthRangeNV(0,1)",
		"DepthRangeNV(0,0.25)",
	}
	if !reflect.DeepEqual(api.calls, want) {
		t.Errorf("calls = %v, want %v", api.calls, want)
	}
}

func TestIndexedOpsEXTVariant(t *testing.T) {
	ctx := mustPreset(t, PresetANGLE)
	api := newFakeAPI()
	r := NewRenderer(ctx, api)

	r.EnableBlend(2)
	r.SetBlendFunction(2, BlendSrcAlpha, BlendOneMinusSrcAlpha)
	r.SetBlendEquation(2, BlendAdd)

	for _, call := range api.calls {
		if !strings.Contains(call, "EXT") {
			t.Errorf("call %q should use the EXT entry point", call)
		}
	}
}

func TestMustPanicsOnUnsupportedOperation(t *testing.T) {
	ctx := mustPreset(t, PresetGLES2)
	api := newFakeAPI()
	r := NewRenderer(ctx, api)

	if r.SupportsMinSampleShading() {
		t.Fatal("min sample shading should be unsupported on ES 2")
	}

	defer func() {
		if recover() == nil {
			t.Error("SetMinSampleShading on an unsupported context should panic")
		}
	}()
	r.SetMinSampleShading(0.5)
}

func TestPointSpriteEnableOnCompatibilityProfile(t *testing.T) {
	tests := []struct {
		preset string
		want   bool
	}{
		{PresetDesktopCompatibility, true},
		{PresetDesktopCore, false},
		{PresetGLES3, false},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			ctx := mustPreset(t, tt.preset)
			if got := ctx.State().NeedsPointSpriteEnable; got != tt.want {
				t.Fatalf("NeedsPointSpriteEnable = %v, want %v", got, tt.want)
			}

			api := newFakeAPI()
			NewRenderer(ctx, api)
			enabled := containsCall(api.calls, "Enable(0x8861)")
			if enabled != tt.want {
				t.Errorf("Enable(GL_POINT_SPRITE) called = %v, want %v", enabled, tt.want)
			}
		})
	}
}

func TestSetPatchVertexCount(t *testing.T) {
	ctx := mustPreset(t, PresetGLES3)
	api := newFakeAPI()
	r := NewRenderer(ctx, api)

	r.SetPatchVertexCount(3)
	want := []string{"PatchParameteri(0x8E72,3)"}
	if !reflect.DeepEqual(api.calls, want) {
		t.Errorf("calls = %v, want %v", api.calls, want)
	}
}

func TestPolygonModeVariants(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{
			name:    "desktop core",
			profile: Profile{Target: "gl", Version: "4.6"},
			want:    "PolygonMode(0x1B01)",
		},
		{
			name: "NV preferred over ANGLE",
			profile: Profile{
				Target:     "gles3",
				Extensions: []string{"GL_ANGLE_polygon_mode", "GL_NV_polygon_mode"},
			},
			want: "PolygonModeNV(0x1B01)",
		},
		{
			name: "ANGLE without NV",
			profile: Profile{
				Target:     "gles3",
				Extensions: []string{"GL_ANGLE_polygon_mode"},
			},
			want: "PolygonModeANGLE(0x1B01)",
		},
		{
			name: "WebGL",
			profile: Profile{
				Target:     "webgl2",
				Extensions: []string{"WEBGL_polygon_mode"},
			},
			want: "PolygonModeWEBGL(0x1B01)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := mustContext(t, tt.profile)
			api := newFakeAPI()
			r := NewRenderer(ctx, api)
			r.SetPolygonMode(PolygonModeLine)
			if !containsCall(api.calls, tt.want) {
				t.Errorf("calls = %v, want %v", api.calls, tt.want)
			}
		})
	}
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

func containsCall(calls []string, call string) bool {
	return contains(calls, call)
}
