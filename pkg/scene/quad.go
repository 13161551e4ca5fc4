package scene

import "github.com/taigrr/quadview/pkg/math3d"

// Corners of the default quad: a unit square in x/y tilted in depth, nearest
// at the top right and farthest at the bottom left.
var (
	QuadBottomRight = math3d.V3(1, -1, 1.5)
	QuadTopRight    = math3d.V3(1, 1, 1.1)
	QuadTopLeft     = math3d.V3(-1, 1, 1.5)
	QuadBottomLeft  = math3d.V3(-1, -1, 1.9)
)

// DefaultQuad returns the tilted quad split into two triangles sharing the
// bottom-right/top-left diagonal.
func DefaultQuad() *Mesh {
	m := NewMesh()
	m.AddQuad(QuadBottomRight, QuadTopRight, QuadTopLeft, QuadBottomLeft)
	return m
}
