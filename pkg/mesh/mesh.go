// Package mesh builds the procedural geometry used to draw the catheter:
// UV-sphere point clouds and open tubes made of unshared triangles.
package mesh

import (
	"github.com/philipparndt/globesim/pkg/geometry"
)

// Mesh is an ordered list of vertices plus triangle indices into it.
// Indices holds three entries per triangle.
type Mesh struct {
	Vertices []geometry.Vector3
	Indices  []int
}

// AddTriangle appends three fresh vertices and their sequential indices
func (m *Mesh) AddTriangle(p1, p2, p3 geometry.Vector3) {
	index := len(m.Vertices)
	m.Vertices = append(m.Vertices, p1, p2, p3)
	m.Indices = append(m.Indices, index, index+1, index+2)
}

// Append adds all vertices and triangles of other, rebasing its indices
func (m *Mesh) Append(other Mesh) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// VertexCount returns the number of vertices
func (m Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsPointCloud reports whether the mesh has vertices but no triangles
func (m Mesh) IsPointCloud() bool {
	return len(m.Vertices) > 0 && len(m.Indices) == 0
}

// Triangles resolves the index list into facets with computed normals
func (m Mesh) Triangles() []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		triangles = append(triangles, geometry.TriangleFromVertices(
			m.Vertices[m.Indices[i]],
			m.Vertices[m.Indices[i+1]],
			m.Vertices[m.Indices[i+2]],
		))
	}
	return triangles
}

// Bounds returns the bounding box of all vertices
func (m Mesh) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
