package mesh

import (
	"math"

	"github.com/philipparndt/globesim/pkg/geometry"
)

// BuildSphere samples a UV sphere: divisions+1 latitude rows (phi 0..π) of
// divisions+1 longitude columns (theta 0..2π), row-major. No indices are
// produced; the result is drawn as a point cloud.
func BuildSphere(center geometry.Vector3, radius float64, divisions int) Mesh {
	if divisions < 0 {
		return Mesh{}
	}

	vertices := make([]geometry.Vector3, 0, (divisions+1)*(divisions+1))
	for i := 0; i <= divisions; i++ {
		phi := math.Pi * fraction(i, divisions)
		for j := 0; j <= divisions; j++ {
			theta := 2 * math.Pi * fraction(j, divisions)

			vertices = append(vertices, geometry.NewVector3(
				center.X+radius*math.Sin(phi)*math.Cos(theta),
				center.Y+radius*math.Sin(phi)*math.Sin(theta),
				center.Z+radius*math.Cos(phi),
			))
		}
	}
	return Mesh{Vertices: vertices}
}

// BuildTube builds the side wall of a tube from p1 to p2 as 2*divisions
// triangles. The rings are offset by diameter, which acts as the ring radius.
func BuildTube(p1, p2 geometry.Vector3, diameter float64, divisions int) Mesh {
	var m Mesh
	if divisions <= 0 {
		return m
	}

	direction := p2.Sub(p1).Normalize()
	perp := Perpendicular(direction)
	perp2 := direction.Cross(perp)

	m.Vertices = make([]geometry.Vector3, 0, 6*divisions)
	m.Indices = make([]int, 0, 6*divisions)

	for i := 0; i < divisions; i++ {
		angle1 := 2 * math.Pi * float64(i) / float64(divisions)
		angle2 := 2 * math.Pi * float64(i+1) / float64(divisions)

		v1 := perp.Mul(math.Cos(angle1)).Add(perp2.Mul(math.Sin(angle1)))
		v2 := perp.Mul(math.Cos(angle2)).Add(perp2.Mul(math.Sin(angle2)))

		a1 := p1.Add(v1.Mul(diameter))
		a2 := p1.Add(v2.Mul(diameter))
		b1 := p2.Add(v1.Mul(diameter))
		b2 := p2.Add(v2.Mul(diameter))

		m.AddTriangle(a1, b1, a2)
		m.AddTriangle(a2, b1, b2)
	}
	return m
}

// Perpendicular returns a vector perpendicular to a unit direction. Nearly
// vertical directions (|x| and |y| both below 0.1) use the world Y axis.
// The in-plane result is not normalized.
func Perpendicular(direction geometry.Vector3) geometry.Vector3 {
	if math.Abs(direction.X) < 0.1 && math.Abs(direction.Y) < 0.1 {
		return geometry.UnitY
	}
	return geometry.NewVector3(-direction.Y, direction.X, 0)
}

func fraction(i, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(i) / float64(n)
}
