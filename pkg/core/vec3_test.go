package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func vecEqual(a, b Vec3, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"add scalar", a.AddScalar(1), NewVec3(2, 3, 4)},
		{"clamp", b.Clamp(0, 5), NewVec3(4, 0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecEqual(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	if got := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6)); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(3, 4, 12)
	if !scalar.EqualWithinAbs(v.Length(), 13, 1e-12) {
		t.Errorf("Expected length 13, got %f", v.Length())
	}
	if v.LengthSquared() != 169 {
		t.Errorf("Expected squared length 169, got %f", v.LengthSquared())
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()
	if !vecEqual(v, NewVec3(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", v)
	}
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}
