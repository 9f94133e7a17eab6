package glstate

import (
	"errors"
	"testing"
)

func TestParseTargetRoundTrip(t *testing.T) {
	for _, target := range []Target{TargetGL, TargetGLES2, TargetGLES3, TargetWebGL1, TargetWebGL2} {
		got, err := ParseTarget(target.String())
		if err != nil {
			t.Errorf("ParseTarget(%q) = %v", target.String(), err)
			continue
		}
		if got != target {
			t.Errorf("ParseTarget(%q) = %v, want %v", target.String(), got, target)
		}
	}
}

func TestParseTargetUnknown(t *testing.T) {
	_, err := ParseTarget("metal")
	if !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("ParseTarget() err = %v, want ErrInvalidProfile", err)
	}
}

func TestTargetPredicates(t *testing.T) {
	tests := []struct {
		target Target
		es     bool
		webgl  bool
	}{
		{TargetGL, false, false},
		{TargetGLES2, true, false},
		{TargetGLES3, true, false},
		{TargetWebGL1, true, true},
		{TargetWebGL2, true, true},
	}
	for _, tt := range tests {
		if got := tt.target.ES(); got != tt.es {
			t.Errorf("%v.ES() = %v, want %v", tt.target, got, tt.es)
		}
		if got := tt.target.WebGL(); got != tt.webgl {
			t.Errorf("%v.WebGL() = %v, want %v", tt.target, got, tt.webgl)
		}
	}
}

func TestTargetMask(t *testing.T) {
	if !maskES.Has(TargetGLES2) || !maskES.Has(TargetGLES3) {
		t.Error("maskES should contain both ES targets")
	}
	if maskES.Has(TargetGL) || maskES.Has(TargetWebGL1) {
		t.Error("maskES should not contain GL or WebGL targets")
	}
	for _, target := range []Target{TargetGL, TargetGLES2, TargetGLES3, TargetWebGL1, TargetWebGL2} {
		if !maskAll.Has(target) {
			t.Errorf("maskAll should contain %v", target)
		}
	}
}
