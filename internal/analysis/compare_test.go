package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/banitsriram/young-modulus/internal/material"
)

func TestCompare(t *testing.T) {
	steel, err := material.Lookup("steel")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	out, err := Compare(210, steel)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if math.Abs(out.PercentDiff-5.0) > 1e-12 {
		t.Errorf("PercentDiff = %v, want 5.0", out.PercentDiff)
	}
	if out.Band != Good {
		t.Errorf("Band = %v, want good agreement", out.Band)
	}
	if out.Expected != 200 {
		t.Errorf("Expected = %v, want 200", out.Expected)
	}
}

func TestCompare_Undershoot(t *testing.T) {
	steel, _ := material.Lookup("steel")

	// 150 vs 200 is 25% off; the boundary still counts as moderate.
	out, err := Compare(150, steel)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if math.Abs(out.PercentDiff-25.0) > 1e-12 {
		t.Errorf("PercentDiff = %v, want 25.0", out.PercentDiff)
	}
	if out.Band != Moderate {
		t.Errorf("Band = %v, want moderate deviation", out.Band)
	}
}

func TestCompare_NonPositiveExpected(t *testing.T) {
	bogus := material.Material{Key: "bogus", Name: "Bogus", Modulus: 0}
	_, err := Compare(100, bogus)
	if err == nil {
		t.Fatal("expected error for zero reference modulus")
	}
	if !errors.Is(err, ErrNonPositiveExpected) {
		t.Errorf("error = %v, want ErrNonPositiveExpected", err)
	}
}

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		diff     float64
		expected Band
	}{
		{0, Good},
		{5, Good},
		{9.999, Good},
		{10, Moderate},
		{17.5, Moderate},
		{25, Moderate},
		{25.001, Large},
		{80, Large},
	}

	for _, tt := range tests {
		if got := Classify(tt.diff); got != tt.expected {
			t.Errorf("Classify(%v) = %v, want %v", tt.diff, got, tt.expected)
		}
	}
}

func TestBand_String(t *testing.T) {
	tests := []struct {
		band     Band
		expected string
	}{
		{Good, "good agreement"},
		{Moderate, "moderate deviation"},
		{Large, "large deviation"},
	}

	for _, tt := range tests {
		if got := tt.band.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
