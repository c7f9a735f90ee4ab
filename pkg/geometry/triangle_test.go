package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()
	expected := [3]float64{3, 5, 4}

	for i := range expected {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if !center.ApproxEqual(expected, 1e-12) {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleFromVerticesNormal(t *testing.T) {
	tri := TriangleFromVertices(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	if tri.Normal != UnitZ {
		t.Errorf("Normal failed: expected %v, got %v", UnitZ, tri.Normal)
	}
}
