package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox().
		Extend(NewVector3(1, 2, 3)).
		Extend(NewVector3(4, 5, 6)).
		Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if !NewBoundingBox().IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if BoundingBoxOf(NewVector3(1, 1, 1)).IsEmpty() {
		t.Error("box of one point should not be empty")
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := BoundingBoxOf(NewVector3(0, 0, 0), NewVector3(1, 1, 1))
	b := BoundingBoxOf(NewVector3(2, -1, 0), NewVector3(3, 0, 5))

	u := a.Union(b)
	if u.Min != NewVector3(0, -1, 0) || u.Max != NewVector3(3, 1, 5) {
		t.Errorf("Union failed: got %v..%v", u.Min, u.Max)
	}
	if got := NewBoundingBox().Union(a); got != a {
		t.Errorf("Union with empty box should return the other box, got %v", got)
	}
}

func TestBoundingBoxSizeCenter(t *testing.T) {
	bbox := BoundingBoxOf(NewVector3(0, 0, 0), NewVector3(10, 20, 30))

	if size := bbox.Size(); size != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: got %v", center)
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := BoundingBoxOf(NewVector3(0, 0, 0), NewVector3(2, 3, 4))

	volume := bbox.Volume()
	expected := 24.0 // 2 * 3 * 4 = 24

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expected, volume)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	bbox := BoundingBoxOf(NewVector3(0, 0, 0), NewVector3(1, 1, 1))

	if !bbox.Contains(NewVector3(1, 0.5, 0)) {
		t.Error("boundary point should be contained")
	}
	if bbox.Contains(NewVector3(1.01, 0.5, 0.5)) {
		t.Error("outside point should not be contained")
	}
}
