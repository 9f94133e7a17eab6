// Package probe derives capability profiles from live GPU adapters.
//
// Probe asks the local gogpu/wgpu stack for an adapter and maps its
// identification strings onto a conservative glstate.Profile.
// FromProvider does the same for a host application that already owns a
// GPU context. Neither creates a device; probing is read-only.
//
// Build with the nogpu tag to exclude the wgpu-backed Probe entry
// point; FromProvider and the string mapping stay available.
package probe
