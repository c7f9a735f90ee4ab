package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.Empty() {
		t.Fatalf("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Empty() {
		t.Errorf("Empty failed: box with points reported empty")
	}
	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxCenterAndDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-2, -2, -2))
	bbox.Extend(NewVector3(2, 2, 2))

	if bbox.Center() != (Vector3{}) {
		t.Errorf("Center failed: expected origin, got %v", bbox.Center())
	}

	expected := math.Sqrt(48)
	if math.Abs(bbox.Diagonal()-expected) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", expected, bbox.Diagonal())
	}
}
