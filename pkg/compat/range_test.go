package compat

import (
	"testing"
)

func TestNewRange_Invalid(t *testing.T) {
	_, err := NewRange("not a range")
	if err == nil {
		t.Error("NewRange(\"not a range\") should return error")
	}
}

func TestRange_Contains(t *testing.T) {
	r, err := NewRange(">= 2.0, < 3.0")
	if err != nil {
		t.Fatalf("NewRange() error: %v", err)
	}

	tests := []struct {
		v    Version
		want bool
	}{
		{Version{Major: 2}, true},
		{Version{Major: 2, Minor: 5, Patch: 1}, true},
		{Version{Major: 1, Minor: 5}, false},
		{Version{Major: 3}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRange_ContainsIgnoresQualifier(t *testing.T) {
	r, err := NewRange(">= 1.0")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Contains(Version{Major: 1, Minor: 2, Qualifier: "beta"}) {
		t.Error("qualifier should not affect range containment")
	}
}

func TestUnbounded(t *testing.T) {
	for _, v := range []Version{{}, {Major: 99, Minor: 99, Patch: 99}} {
		if !Unbounded().Contains(v) {
			t.Errorf("Unbounded().Contains(%s) = false", v)
		}
	}
	if got := Unbounded().String(); got != ">= 0" {
		t.Errorf("Unbounded().String() = %q, want %q", got, ">= 0")
	}
}

func TestRange_ZeroValueIsUnbounded(t *testing.T) {
	var r Range
	if !r.Contains(Version{Major: 42}) {
		t.Error("zero-value Range should accept everything")
	}
}
