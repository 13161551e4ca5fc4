// Package scene supplies the geometry that quadview rasterizes.
package scene

import (
	"github.com/taigrr/quadview/pkg/math3d"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []math3d.Vec3
	Faces    [][3]int // Indices into Vertices, drawn in order
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([][3]int, 0),
	}
}

// AddQuad appends the quad v0 v1 v2 v3 as the two triangles (v0, v1, v2) and
// (v0, v2, v3). Both triangles share the v0-v2 diagonal with the same winding,
// so the shared edge is covered without gaps.
func (m *Mesh) AddQuad(v0, v1, v2, v3 math3d.Vec3) {
	i := len(m.Vertices)
	m.Vertices = append(m.Vertices, v0, v1, v2, v3)
	m.Faces = append(m.Faces, [3]int{i, i + 1, i + 2}, [3]int{i, i + 2, i + 3})
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// GetFace returns the vertex indices of face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i]
}

// GetVertex returns the position of vertex i.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}
