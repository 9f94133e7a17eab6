package dispatch

import (
	"reflect"
	"testing"
)

// capSet is a minimal resolution context for tests: a plain set of
// capability names.
type capSet map[string]bool

func has(name string) func(capSet) bool {
	return func(c capSet) bool { return c[name] }
}

// recorder collects used capabilities in resolution order.
type recorder struct {
	used []string
}

func (r *recorder) RecordUsedCapability(name string) {
	r.used = append(r.used, name)
}

func testSlot() Slot[capSet, string] {
	return Slot[capSet, string]{
		Name: "reset-status",
		Rules: []Rule[capSet, string]{
			{Capability: "GL_ARB_robustness", When: has("GL_ARB_robustness"), Impl: "arb", Variant: "ARB"},
			{Capability: "GL_EXT_robustness", When: has("GL_EXT_robustness"), Impl: "ext", Variant: "EXT"},
		},
		Fallback:        Fallback("none"),
		FallbackVariant: "default",
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	tests := []struct {
		name        string
		caps        capSet
		wantImpl    string
		wantVariant string
	}{
		{"both supported", capSet{"GL_ARB_robustness": true, "GL_EXT_robustness": true}, "arb", "ARB"},
		{"only second supported", capSet{"GL_EXT_robustness": true}, "ext", "EXT"},
		{"none supported", capSet{}, "none", "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Resolve(tt.caps, nil, testSlot())
			impl, ok := b.Get()
			if !ok {
				t.Fatal("Get() reported unsupported")
			}
			if impl != tt.wantImpl {
				t.Errorf("impl = %q, want %q", impl, tt.wantImpl)
			}
			if b.Variant() != tt.wantVariant {
				t.Errorf("Variant() = %q, want %q", b.Variant(), tt.wantVariant)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	caps := capSet{"GL_EXT_robustness": true}
	first := Resolve(caps, nil, testSlot())
	for i := 0; i < 10; i++ {
		again := Resolve(caps, nil, testSlot())
		if again != first {
			t.Fatalf("resolution %d = %+v, want %+v", i, again, first)
		}
	}
}

func TestResolveIsTotal(t *testing.T) {
	// Every resolution ends in a resolved binding, even with no rules
	// and no fallback.
	slot := Slot[capSet, string]{Name: "polygon-mode"}
	b := Resolve(capSet{}, nil, slot)
	if !b.Resolved() {
		t.Error("Resolved() = false after Resolve")
	}
	if b.Supported() {
		t.Error("Supported() = true for empty slot without fallback")
	}
	if b.Variant() != VariantUnsupported {
		t.Errorf("Variant() = %q, want %q", b.Variant(), VariantUnsupported)
	}
}

func TestResolveMonotonic(t *testing.T) {
	// Adding a capability may only move the binding to an earlier rule
	// or leave it unchanged.
	slot := testSlot()
	ruleIndex := func(variant string) int {
		for i, r := range slot.Rules {
			if r.Variant == variant {
				return i
			}
		}
		return len(slot.Rules) // fallback sorts after every rule
	}

	base := capSet{"GL_EXT_robustness": true}
	before := Resolve(base, nil, slot)

	added := capSet{"GL_EXT_robustness": true, "GL_ARB_robustness": true}
	after := Resolve(added, nil, slot)

	if ruleIndex(after.Variant()) > ruleIndex(before.Variant()) {
		t.Errorf("binding moved to lower-priority rule: %q -> %q",
			before.Variant(), after.Variant())
	}
}

func TestResolveRecordsUsedCapability(t *testing.T) {
	rec := &recorder{}
	Resolve(capSet{"GL_ARB_robustness": true}, rec, testSlot())
	want := []string{"GL_ARB_robustness"}
	if !reflect.DeepEqual(rec.used, want) {
		t.Errorf("used = %v, want %v", rec.used, want)
	}
}

func TestResolveFallbackRecordsNothing(t *testing.T) {
	rec := &recorder{}
	Resolve(capSet{}, rec, testSlot())
	if len(rec.used) != 0 {
		t.Errorf("used = %v, want empty", rec.used)
	}
}

func TestResolveUnnamedRuleRecordsNothing(t *testing.T) {
	rec := &recorder{}
	slot := Slot[capSet, string]{
		Name: "line-width-range",
		Rules: []Rule[capSet, string]{
			// Keyed on a driver fact rather than a single extension.
			{When: func(capSet) bool { return true }, Impl: "clamped", Variant: "mesaForwardCompatible"},
		},
		Fallback:        Fallback("query"),
		FallbackVariant: "default",
	}
	b := Resolve(capSet{}, rec, slot)
	if b.Variant() != "mesaForwardCompatible" {
		t.Fatalf("Variant() = %q, want mesaForwardCompatible", b.Variant())
	}
	if len(rec.used) != 0 {
		t.Errorf("used = %v, want empty", rec.used)
	}
}

func TestResolveRecorderOrder(t *testing.T) {
	rec := &recorder{}
	caps := capSet{"GL_ARB_robustness": true, "GL_NV_depth_buffer_float": true}

	depth := Slot[capSet, string]{
		Name: "clear-depth",
		Rules: []Rule[capSet, string]{
			{Capability: "GL_NV_depth_buffer_float", When: has("GL_NV_depth_buffer_float"), Impl: "nv", Variant: "NV"},
		},
		Fallback:        Fallback("core"),
		FallbackVariant: "core",
	}

	// Slots resolve independently; the registry records in resolution
	// order.
	Resolve(caps, rec, depth)
	Resolve(caps, rec, testSlot())

	want := []string{"GL_NV_depth_buffer_float", "GL_ARB_robustness"}
	if !reflect.DeepEqual(rec.used, want) {
		t.Errorf("used = %v, want %v", rec.used, want)
	}
}

func TestResolveCompoundPredicate(t *testing.T) {
	// A capability reported as available is not enough when the rule
	// carries a compound condition; the full condition is re-checked.
	slot := Slot[capSet, string]{
		Name: "line-width-range",
		Rules: []Rule[capSet, string]{
			{
				When: func(c capSet) bool {
					return c["mesa"] && c["forward-compatible"] && !c["workaround-disabled"]
				},
				Impl:    "clamped",
				Variant: "mesaForwardCompatible",
			},
		},
		Fallback:        Fallback("query"),
		FallbackVariant: "default",
	}

	tests := []struct {
		name string
		caps capSet
		want string
	}{
		{"all conditions hold", capSet{"mesa": true, "forward-compatible": true}, "mesaForwardCompatible"},
		{"not mesa", capSet{"forward-compatible": true}, "default"},
		{"not forward compatible", capSet{"mesa": true}, "default"},
		{"workaround disabled", capSet{"mesa": true, "forward-compatible": true, "workaround-disabled": true}, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Resolve(tt.caps, nil, slot)
			if b.Variant() != tt.want {
				t.Errorf("Variant() = %q, want %q", b.Variant(), tt.want)
			}
		})
	}
}

func TestMustPanicsOnUnsupported(t *testing.T) {
	b := Resolve(capSet{}, nil, Slot[capSet, string]{Name: "polygon-mode"})

	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic for unsupported slot")
		}
	}()
	b.Must()
}

func TestMustPanicsOnUnresolved(t *testing.T) {
	var b Binding[string]

	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic for zero binding")
		}
	}()
	b.Must()
}

func TestMustReturnsImplementation(t *testing.T) {
	b := Resolve(capSet{"GL_EXT_robustness": true}, nil, testSlot())
	if got := b.Must(); got != "ext" {
		t.Errorf("Must() = %q, want %q", got, "ext")
	}
}
