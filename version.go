package glstate

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies an OpenGL or OpenGL ES version. Values are
// major*100 + minor*10, with a high bit distinguishing the ES space so
// that GL 3.0 and ES 3.0 never compare equal. Comparisons are only
// meaningful within one target; a context never mixes the two spaces.
type Version int

const versionES Version = 0x10000

// VersionNone is an unspecified version, ordered before every real one.
const VersionNone Version = 0

// Desktop OpenGL versions.
const (
	GL210 Version = 210
	GL300 Version = 300
	GL310 Version = 310
	GL320 Version = 320
	GL330 Version = 330
	GL400 Version = 400
	GL410 Version = 410
	GL420 Version = 420
	GL430 Version = 430
	GL440 Version = 440
	GL450 Version = 450
	GL460 Version = 460
)

// OpenGL ES versions. WebGL 1.0 and 2.0 report GLES200 and GLES300.
const (
	GLES200 Version = versionES | 200
	GLES300 Version = versionES | 300
	GLES310 Version = versionES | 310
	GLES320 Version = versionES | 320
)

// ES reports whether the version belongs to the OpenGL ES space.
func (v Version) ES() bool { return v&versionES != 0 }

// Major returns the major version number.
func (v Version) Major() int { return int(v&^versionES) / 100 }

// Minor returns the minor version number.
func (v Version) Minor() int { return int(v&^versionES) % 100 / 10 }

// String formats the version the way GL version strings do.
func (v Version) String() string {
	if v == VersionNone {
		return "none"
	}
	if v.ES() {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major(), v.Minor())
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major(), v.Minor())
}

// ParseVersion parses a "major.minor" profile version for the given
// target, e.g. ("4.6", TargetGL) or ("3.0", TargetGLES3). An empty
// string yields the target's baseline version.
func ParseVersion(s string, target Target) (Version, error) {
	if s == "" {
		return baselineVersion(target), nil
	}
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return VersionNone, fmt.Errorf("%w: malformed version %q", ErrInvalidProfile, s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return VersionNone, fmt.Errorf("%w: malformed version %q", ErrInvalidProfile, s)
	}
	min, err := strconv.Atoi(minor)
	if err != nil || min > 9 {
		return VersionNone, fmt.Errorf("%w: malformed version %q", ErrInvalidProfile, s)
	}
	v := Version(maj*100 + min*10)
	if target.ES() {
		v |= versionES
	}
	if err := checkVersion(v, target); err != nil {
		return VersionNone, err
	}
	return v, nil
}

// baselineVersion is the lowest version a target guarantees.
func baselineVersion(target Target) Version {
	switch target {
	case TargetGLES2, TargetWebGL1:
		return GLES200
	case TargetGLES3, TargetWebGL2:
		return GLES300
	default:
		return GL210
	}
}

// checkVersion rejects versions impossible on the target, such as an
// ES 3.1 WebGL context or an ES 2.0 version on a GLES3 target.
func checkVersion(v Version, target Target) error {
	base := baselineVersion(target)
	if v < base {
		return fmt.Errorf("%w: version %s below target baseline %s", ErrInvalidProfile, v, base)
	}
	switch target {
	case TargetGLES2, TargetWebGL1:
		if v != GLES200 {
			return fmt.Errorf("%w: version %s not valid for target %s", ErrInvalidProfile, v, target)
		}
	case TargetWebGL2:
		if v != GLES300 {
			return fmt.Errorf("%w: version %s not valid for target %s", ErrInvalidProfile, v, target)
		}
	}
	return nil
}
