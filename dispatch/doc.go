// Package dispatch implements capability-resolved selection of
// operation implementations.
//
// Graphics drivers expose the same abstract operation through different
// entry points depending on which extensions, versions and vendor
// quirks a context reports. This package models each such operation as
// a [Slot] with a priority-ordered list of [Rule] candidates, and binds
// exactly one implementation per slot in a single [Resolve] pass.
//
// Resolution happens once, on the thread that owns the context, before
// any concurrent use begins. The resulting [Binding] values are
// read-only afterwards and may be read from multiple goroutines without
// locking.
//
// The package is generic over both the context type and the
// implementation type, so the same mechanism serves typed function
// bindings as well as grouped strategy structs.
package dispatch
