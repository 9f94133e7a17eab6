package dispatch

import "fmt"

// Recorder receives the names of capabilities that resolution actually
// relied upon. The context object typically implements it with an
// append-only list so that diagnostics can report which extensions a
// context really uses. A nil Recorder disables recording.
type Recorder interface {
	RecordUsedCapability(name string)
}

// Rule is one implementation candidate for a slot, paired with the
// condition under which it may be selected.
type Rule[C, T any] struct {
	// Capability is recorded through the Recorder when the rule is
	// selected. Leave it empty for rules keyed on versions, driver
	// facts or flags rather than a single named extension.
	Capability string

	// When reports whether the rule applies to ctx. It is evaluated in
	// full on every resolution, so compound conditions (extension
	// present AND profile flag set AND workaround not disabled) stay
	// correct even when the plain capability is reported as available.
	// A nil When always applies.
	When func(ctx C) bool

	// Impl is the implementation bound when the rule is selected.
	Impl T

	// Variant names Impl for diagnostics ("ARB", "EXT", "core", ...).
	Variant string
}

// Slot describes one abstract operation together with its candidate
// implementations in priority order. The declared order of Rules is the
// tie-break: when several capabilities could satisfy the slot, the rule
// listed first wins. That order encodes driver-compatibility knowledge
// and is authoritative data, never recomputed.
type Slot[C, T any] struct {
	// Name is the stable operation identifier ("reset-status",
	// "line-width-range", ...).
	Name string

	// Rules are evaluated top to bottom; the first match binds the slot.
	Rules []Rule[C, T]

	// Fallback binds the slot when no rule matches. A nil Fallback
	// resolves the slot as unsupported, which is a valid steady state,
	// not an error.
	Fallback        *T
	FallbackVariant string
}

// Binding is a resolved slot. The zero Binding is unresolved; Resolve
// always returns a resolved one, possibly unsupported.
type Binding[T any] struct {
	slot      string
	impl      T
	variant   string
	supported bool
	resolved  bool
}

// Resolved reports whether the binding went through resolution at all.
// A false value indicates the owning state object was never constructed
// properly, which is a programming error at the call site.
func (b Binding[T]) Resolved() bool { return b.resolved }

// Supported reports whether an implementation is bound. Call sites must
// branch on Supported before invoking a slot that has no guaranteed
// fallback.
func (b Binding[T]) Supported() bool { return b.supported }

// Variant returns the diagnostic name of the bound implementation, or
// "unsupported" when no rule matched and no fallback exists.
func (b Binding[T]) Variant() string { return b.variant }

// Slot returns the operation identifier this binding was resolved for.
func (b Binding[T]) Slot() string { return b.slot }

// Get returns the bound implementation and whether one is bound.
func (b Binding[T]) Get() (T, bool) { return b.impl, b.supported }

// Must returns the bound implementation and panics when the slot is
// unsupported or unresolved. Invoking an unsupported slot is a contract
// violation by the caller, equivalent to a failed precondition, so it
// is reported loudly rather than returned as a recoverable error.
func (b Binding[T]) Must() T {
	if !b.resolved {
		panic("dispatch: slot used before resolution")
	}
	if !b.supported {
		panic(fmt.Sprintf("dispatch: slot %q is not supported by this context", b.slot))
	}
	return b.impl
}

// VariantUnsupported is the diagnostic name of a slot that resolved
// without an implementation.
const VariantUnsupported = "unsupported"

// Resolve binds a slot by evaluating its rules top to bottom against
// ctx. The first rule whose When condition holds determines the bound
// implementation, and its Capability (when named) is appended to rec.
// When no rule matches, the slot binds to the fallback, or resolves as
// unsupported if there is none.
//
// Resolution is total and never fails: every call returns a resolved
// Binding. It is also deterministic; for a fixed set of reported
// capabilities the same slot always resolves to the same binding, and
// slots do not observe each other's resolution.
func Resolve[C, T any](ctx C, rec Recorder, slot Slot[C, T]) Binding[T] {
	for _, rule := range slot.Rules {
		if rule.When != nil && !rule.When(ctx) {
			continue
		}
		if rule.Capability != "" && rec != nil {
			rec.RecordUsedCapability(rule.Capability)
		}
		return Binding[T]{
			slot:      slot.Name,
			impl:      rule.Impl,
			variant:   rule.Variant,
			supported: true,
			resolved:  true,
		}
	}
	if slot.Fallback != nil {
		return Binding[T]{
			slot:      slot.Name,
			impl:      *slot.Fallback,
			variant:   slot.FallbackVariant,
			supported: true,
			resolved:  true,
		}
	}
	return Binding[T]{slot: slot.Name, variant: VariantUnsupported, resolved: true}
}

// Fallback wraps an implementation for use as a Slot fallback.
func Fallback[T any](impl T) *T { return &impl }
