package viewer

import (
	"image/color"
	"sort"

	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/scene"
)

// Dot is a projected point-cloud vertex
type Dot struct {
	X, Y, Depth float64
	Color       color.RGBA
}

// Segment is a projected triangle edge
type Segment struct {
	X1, Y1, X2, Y2 float64
	Depth          float64
	Color          color.RGBA
}

// Frame is a scene projected to screen space, sorted back to front
type Frame struct {
	Dots     []Dot
	Segments []Segment
}

// ProjectScene projects every part of s through the camera
func ProjectScene(s scene.Scene, cam *Camera, width, height float64) Frame {
	var f Frame
	near, far := depthRange(s, cam, width, height)

	for _, part := range s.Parts {
		switch part.Kind {
		case scene.PointCloud:
			for _, v := range part.Mesh.Vertices {
				x, y, z := cam.Project(v, width, height)
				f.Dots = append(f.Dots, Dot{X: x, Y: y, Depth: z, Color: shade(part.Color, z, near, far)})
			}
		case scene.Surface:
			for _, t := range part.Mesh.Triangles() {
				vertices := [3]geometry.Vector3{t.V1, t.V2, t.V3}
				for i := 0; i < 3; i++ {
					x1, y1, z1 := cam.Project(vertices[i], width, height)
					x2, y2, z2 := cam.Project(vertices[(i+1)%3], width, height)
					z := (z1 + z2) / 2
					f.Segments = append(f.Segments, Segment{
						X1: x1, Y1: y1, X2: x2, Y2: y2,
						Depth: z,
						Color: shade(part.Color, z, near, far),
					})
				}
			}
		}
	}

	sort.SliceStable(f.Dots, func(i, j int) bool { return f.Dots[i].Depth > f.Dots[j].Depth })
	sort.SliceStable(f.Segments, func(i, j int) bool { return f.Segments[i].Depth > f.Segments[j].Depth })
	return f
}

func depthRange(s scene.Scene, cam *Camera, width, height float64) (float64, float64) {
	bbox := s.Bounds()
	if bbox.Empty() {
		return 0, 1
	}
	center := bbox.Center()
	_, _, z := cam.Project(center, width, height)
	radius := bbox.Diagonal() / 2
	return z - radius, z + radius
}

// shade darkens far geometry down to 40% brightness
func shade(c color.RGBA, depth, near, far float64) color.RGBA {
	t := 0.0
	if far > near {
		t = (depth - near) / (far - near)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	k := 1 - 0.6*t
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
