package glstate

import "fmt"

// Target identifies the class of OpenGL platform a context was created
// for. It is the build-time configuration of the original C and C++
// renderers made explicit: instead of preprocessor switches removing
// branches, the target simply yields fewer dispatch rules, so every
// configuration is testable from the same binary.
type Target int

const (
	// TargetGL is desktop OpenGL.
	TargetGL Target = iota

	// TargetGLES2 is OpenGL ES 2.0.
	TargetGLES2

	// TargetGLES3 is OpenGL ES 3.0 and newer.
	TargetGLES3

	// TargetWebGL1 is WebGL 1.0 (OpenGL ES 2.0 semantics in browsers).
	TargetWebGL1

	// TargetWebGL2 is WebGL 2.0 (OpenGL ES 3.0 semantics in browsers).
	TargetWebGL2
)

var targetNames = map[Target]string{
	TargetGL:     "gl",
	TargetGLES2:  "gles2",
	TargetGLES3:  "gles3",
	TargetWebGL1: "webgl1",
	TargetWebGL2: "webgl2",
}

// String returns the lowercase target name used in profiles.
func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// ES reports whether the target follows OpenGL ES semantics.
// WebGL targets do: they expose ES 2.0/3.0 behavior in browsers.
func (t Target) ES() bool { return t != TargetGL }

// WebGL reports whether the target runs in a browser.
func (t Target) WebGL() bool { return t == TargetWebGL1 || t == TargetWebGL2 }

// ParseTarget parses a profile target name ("gl", "gles2", "gles3",
// "webgl1", "webgl2").
func ParseTarget(name string) (Target, error) {
	for t, n := range targetNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown target %q", ErrInvalidProfile, name)
}

// TargetMask is a set of targets, used to mark which platforms an
// extension can exist on at all.
type TargetMask uint8

// Mask returns the single-target mask for t.
func (t Target) Mask() TargetMask { return 1 << uint(t) }

// Has reports whether the mask contains t.
func (m TargetMask) Has(t Target) bool { return m&t.Mask() != 0 }

// Target sets frequently used by the extension catalog.
const (
	maskGL     = TargetMask(1) << uint(TargetGL)
	maskGLES2  = TargetMask(1) << uint(TargetGLES2)
	maskGLES3  = TargetMask(1) << uint(TargetGLES3)
	maskWebGL1 = TargetMask(1) << uint(TargetWebGL1)
	maskWebGL2 = TargetMask(1) << uint(TargetWebGL2)
	maskES     = maskGLES2 | maskGLES3
	maskWebGL  = maskWebGL1 | maskWebGL2
	maskAll    = maskGL | maskES | maskWebGL
)
