package glstate

import "strings"

// DetectedDriver is a set of driver families recognized from the
// vendor, renderer and version strings a context reports. Several bits
// can be set at once: an ANGLE context on top of a Mesa driver reports
// both.
type DetectedDriver uint16

const (
	// DriverAmd is AMD's proprietary driver.
	DriverAmd DetectedDriver = 1 << iota

	// DriverAngle is the ANGLE GL-on-D3D/Vulkan/Metal translation layer.
	DriverAngle

	// DriverIntel is Intel's Windows driver.
	DriverIntel

	// DriverMesa covers all Mesa-based drivers.
	DriverMesa

	// DriverNVidia is NVidia's proprietary driver.
	DriverNVidia

	// DriverSwiftShader is Google's software Vulkan/GL implementation.
	DriverSwiftShader

	// DriverQualcommAdreno is Qualcomm's Adreno driver.
	DriverQualcommAdreno
)

var driverNames = []struct {
	bit  DetectedDriver
	name string
}{
	{DriverAmd, "amd"},
	{DriverAngle, "angle"},
	{DriverIntel, "intel"},
	{DriverMesa, "mesa"},
	{DriverNVidia, "nvidia"},
	{DriverSwiftShader, "swiftshader"},
	{DriverQualcommAdreno, "qualcomm-adreno"},
}

// String lists the detected driver families, or "unknown" if none.
func (d DetectedDriver) String() string {
	var parts []string
	for _, e := range driverNames {
		if d&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// DetectDriver recognizes driver families from the GL_VENDOR,
// GL_RENDERER and GL_VERSION strings. The heuristics match what the
// drivers actually report: Mesa puts its name into the version string,
// ANGLE and SwiftShader identify through the renderer string, vendors
// through the vendor string.
func DetectDriver(vendor, renderer, version string) DetectedDriver {
	var d DetectedDriver

	if strings.Contains(version, "Mesa") || strings.Contains(renderer, "Mesa") {
		d |= DriverMesa
	}
	if strings.Contains(renderer, "ANGLE") {
		d |= DriverAngle
	}
	if strings.Contains(renderer, "SwiftShader") {
		d |= DriverSwiftShader
	}
	switch {
	case strings.Contains(vendor, "NVIDIA"):
		d |= DriverNVidia
	case strings.Contains(vendor, "ATI Technologies"),
		strings.Contains(vendor, "Advanced Micro Devices"),
		strings.HasPrefix(vendor, "AMD"):
		d |= DriverAmd
	case strings.Contains(vendor, "Intel") && !strings.Contains(version, "Mesa"):
		d |= DriverIntel
	case strings.Contains(vendor, "Qualcomm"):
		d |= DriverQualcommAdreno
	}

	return d
}

// ContextFlags are boolean context attributes set at creation time.
type ContextFlags uint8

const (
	// FlagForwardCompatible marks a desktop context created without
	// deprecated functionality. Relevant for driver workarounds: Mesa
	// restricts line widths to 1.0 on such contexts.
	FlagForwardCompatible ContextFlags = 1 << iota

	// FlagDebug marks a debug context.
	FlagDebug

	// FlagNoError marks a context created with error reporting disabled.
	FlagNoError
)

var contextFlagNames = []struct {
	bit  ContextFlags
	name string
}{
	{FlagForwardCompatible, "forward-compatible"},
	{FlagDebug, "debug"},
	{FlagNoError, "no-error"},
}

// String lists the set flags, or "none".
func (f ContextFlags) String() string {
	var parts []string
	for _, e := range contextFlagNames {
		if f&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// parseContextFlag parses a profile flag name.
func parseContextFlag(name string) (ContextFlags, bool) {
	for _, e := range contextFlagNames {
		if e.name == name {
			return e.bit, true
		}
	}
	return 0, false
}
