package glstate

import "errors"

// Errors returned by profile handling and pixel storage application.
// Resolution itself never fails: a capability that is absent degrades
// to a fallback or an unsupported binding, not an error.
var (
	// ErrInvalidProfile is returned when a capability profile is
	// internally inconsistent or malformed.
	ErrInvalidProfile = errors.New("glstate: invalid profile")

	// ErrUnknownPreset is returned by PresetByName for names that are
	// not in the preset catalog.
	ErrUnknownPreset = errors.New("glstate: unknown preset")

	// ErrPixelStorageUnsupported is returned when a pixel storage
	// parameter has a non-default value the current target cannot
	// express.
	ErrPixelStorageUnsupported = errors.New("glstate: pixel storage parameter not supported on this target")
)
