package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-2, -2, -2))
	bbox.Extend(geometry.NewVector3(2, 2, 3.15))
	cam := NewCamera(bbox)

	x, y, z := cam.Project(cam.Target, 800, 600)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
	assert.InDelta(t, cam.Distance, z, 1e-9)
}

func TestCameraUpIsScreenUp(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())

	_, yLow, _ := cam.Project(geometry.NewVector3(0, 0, -1), 800, 600)
	_, yHigh, _ := cam.Project(geometry.NewVector3(0, 0, 1), 800, 600)
	assert.Less(t, yHigh, yLow)
}

func TestCameraRotateClampsElevation(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	cam.Rotate(10, 0)

	assert.InDelta(t, math.Pi/2-0.1, cam.RotationX, 1e-12)
	assert.InDelta(t, cam.Distance, cam.Position.Distance(cam.Target), 1e-9)
}

func TestCameraZoomFloor(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	cam.Zoom(-0.9999)

	assert.GreaterOrEqual(t, cam.Distance, 0.1)
}

func TestProjectScene(t *testing.T) {
	s := scene.Catheter(catheter.New(), scene.DefaultOptions())
	cam := NewCamera(s.Bounds())

	frame := ProjectScene(s, cam, 800, 600)

	dots := 0
	segments := 0
	for _, p := range s.Parts {
		if p.Kind == scene.PointCloud {
			dots += p.Mesh.VertexCount()
		} else {
			segments += 3 * p.Mesh.TriangleCount()
		}
	}
	require.Len(t, frame.Dots, dots)
	require.Len(t, frame.Segments, segments)

	for i := 1; i < len(frame.Dots); i++ {
		assert.GreaterOrEqual(t, frame.Dots[i-1].Depth, frame.Dots[i].Depth)
	}
}

func TestShade(t *testing.T) {
	c := catheter.StrongColor

	assert.Equal(t, c, shade(c, 0, 0, 1))
	assert.Equal(t, uint8(102), shade(c, 1, 0, 1).R)
	assert.Equal(t, uint8(102), shade(c, 5, 0, 1).R)
	assert.Equal(t, c.A, shade(c, 0.5, 0, 1).A)
}
