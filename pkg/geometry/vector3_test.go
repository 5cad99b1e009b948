package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	normalized := Zero().Normalize()
	if normalized != Zero() {
		t.Errorf("Normalize of zero vector should stay zero, got %v", normalized)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Reciprocal(t *testing.T) {
	r := NewVector3(2, 0, -4).Reciprocal()

	if r.X != 0.5 {
		t.Errorf("Reciprocal X: expected 0.5, got %v", r.X)
	}
	if !math.IsInf(r.Y, 1) {
		t.Errorf("Reciprocal of +0 should be +Inf, got %v", r.Y)
	}
	if r.Z != -0.25 {
		t.Errorf("Reciprocal Z: expected -0.25, got %v", r.Z)
	}

	negZero := NewVector3(math.Copysign(0, -1), 1, 1).Reciprocal()
	if !math.IsInf(negZero.X, -1) {
		t.Errorf("Reciprocal of -0 should be -Inf, got %v", negZero.X)
	}
}

func TestVector3RotateY(t *testing.T) {
	v := NewVector3(1, 2, 0)
	rotated := v.RotateY(math.Pi / 2)

	// x' = x·cos + z·sin = 0, z' = -x·sin + z·cos = -1
	expected := NewVector3(0, 2, -1)
	if !rotated.ApproxEqual(expected, 1e-12) {
		t.Errorf("RotateY failed: expected %v, got %v", expected, rotated)
	}
}

func TestVector3RotateYRoundTrip(t *testing.T) {
	v := NewVector3(1.5, -2, 3.25)
	for _, angle := range []float64{0.1, 1, math.Pi / 3, -2.5, math.Pi} {
		back := v.RotateY(angle).RotateY(-angle)
		if !back.ApproxEqual(v, 1e-12) {
			t.Errorf("RotateY(%v) round trip: expected %v, got %v", angle, v, back)
		}
	}
}

func TestVector3RotateYAround(t *testing.T) {
	center := NewVector3(1, 0, 1)
	p := NewVector3(2, 5, 1)
	rotated := p.RotateYAround(center, math.Pi)

	expected := NewVector3(0, 5, 1)
	if !rotated.ApproxEqual(expected, 1e-12) {
		t.Errorf("RotateYAround failed: expected %v, got %v", expected, rotated)
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, -3)
	b := NewVector3(2, -1, 0)

	if got := a.Min(b); got != NewVector3(1, -1, -3) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := a.Max(b); got != NewVector3(2, 5, 0) {
		t.Errorf("Max failed: got %v", got)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("expected finite vector")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVector3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestVector3String(t *testing.T) {
	got := NewVector3(1, -2.5, 0).String()
	expected := "(1.000000, -2.500000, 0.000000)"
	if got != expected {
		t.Errorf("String failed: expected %q, got %q", expected, got)
	}
}
