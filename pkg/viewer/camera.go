package viewer

import (
	"math"

	"github.com/philipparndt/globesim/pkg/geometry"
)

// Camera is an orbit camera looking at a fixed target
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // elevation
	RotationY float64 // azimuth
}

// NewCamera creates a camera that frames a bounding box, looking down -Y
// with +Z up so the catheter hovers above the heart.
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := geometry.Vector3{}
	distance := 10.0
	if !bbox.Empty() {
		center = bbox.Center()
		distance = math.Max(bbox.Diagonal()*1.5, 1)
	}

	c := &Camera{
		Target:    center,
		Up:        geometry.UnitZ,
		FOV:       math.Pi / 4,
		Distance:  distance,
		RotationX: 0.3,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := -c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	z := c.Distance * math.Sin(c.RotationX)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp elevation to stay clear of the up vector
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project projects a 3D point to screen coordinates plus view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
