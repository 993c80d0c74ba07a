package flexure

import (
	"errors"
	"math"
	"testing"
)

func TestMomentOfInertia(t *testing.T) {
	tests := []struct {
		name     string
		breadth  float64
		width    float64
		expected float64
	}{
		{"steel scenario (m)", 0.02, 0.003, 4.5e-11},
		{"unit square", 1, 1, 1.0 / 12.0},
		{"bench rod (cm)", 2.0, 0.3, 2.0 * 0.027 / 12.0},
		{"thick slab", 3.0, 0.5, 3.0 * 0.125 / 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MomentOfInertia(tt.breadth, tt.width)
			if err != nil {
				t.Fatalf("MomentOfInertia failed: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-15*math.Abs(tt.expected) {
				t.Errorf("MomentOfInertia(%v, %v) = %v, want %v", tt.breadth, tt.width, got, tt.expected)
			}
			if got <= 0 {
				t.Errorf("inertia must be strictly positive, got %v", got)
			}
		})
	}
}

func TestMomentOfInertia_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		breadth float64
		width   float64
	}{
		{"zero breadth", 0, 1},
		{"zero width", 1, 0},
		{"negative breadth", -2, 1},
		{"negative width", 1, -0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MomentOfInertia(tt.breadth, tt.width)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("error = %v, want ErrInvalidDimension", err)
			}
		})
	}
}

func TestDeflection(t *testing.T) {
	tests := []struct {
		initial  float64
		final    float64
		expected float64
	}{
		{0, 0.015, 0.015},
		{1.5, 1.25, -0.25},
		{2.5, 2.5, 0},
		{-0.5, 0.5, 1.0},
	}

	for _, tt := range tests {
		if got := Deflection(tt.initial, tt.final); got != tt.expected {
			t.Errorf("Deflection(%v, %v) = %v, want %v", tt.initial, tt.final, got, tt.expected)
		}
	}
}

func TestReading_Deflection(t *testing.T) {
	r := Reading{Load: 50, Initial: 3.2, Final: 3.215}
	got := r.Deflection()
	if math.Abs(got-0.015) > 1e-12 {
		t.Errorf("Deflection() = %v, want 0.015", got)
	}
}

func TestDimensions_Validate(t *testing.T) {
	valid := Dimensions{Length: 50, Breadth: 2, Width: 0.3}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid dimensions rejected: %v", err)
	}

	tests := []struct {
		name string
		dims Dimensions
	}{
		{"zero length", Dimensions{Length: 0, Breadth: 2, Width: 0.3}},
		{"negative breadth", Dimensions{Length: 50, Breadth: -2, Width: 0.3}},
		{"zero width", Dimensions{Length: 50, Breadth: 2, Width: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dims.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("error = %v, want ErrInvalidDimension", err)
			}
		})
	}
}

func TestParseBendingType(t *testing.T) {
	tests := []struct {
		in       string
		expected BendingType
	}{
		{"uniform", Uniform},
		{"Uniform", Uniform},
		{"distributed", Uniform},
		{"non-uniform", NonUniform},
		{"nonuniform", NonUniform},
		{"non_uniform", NonUniform},
		{"point", NonUniform},
		{" point ", NonUniform},
	}

	for _, tt := range tests {
		got, err := ParseBendingType(tt.in)
		if err != nil {
			t.Errorf("ParseBendingType(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseBendingType(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}

	if _, err := ParseBendingType("sideways"); !errors.Is(err, ErrInvalidBendingType) {
		t.Errorf("ParseBendingType(sideways) error = %v, want ErrInvalidBendingType", err)
	}
}

func TestBendingType_String(t *testing.T) {
	if Uniform.String() != "uniform" {
		t.Errorf("Uniform.String() = %q", Uniform.String())
	}
	if NonUniform.String() != "non-uniform" {
		t.Errorf("NonUniform.String() = %q", NonUniform.String())
	}
}
