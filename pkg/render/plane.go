package render

import (
	"github.com/taigrr/quadview/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// DepthPlane returns the plane through the projected vertices a, b and c.
// The normal is (b-a)×(c-a), unnormalized.
func DepthPlane(a, b, c math3d.Vec4) Plane {
	p := a.Vec3()
	n := b.Vec3().Sub(p).Cross(c.Vec3().Sub(p))
	return Plane{Normal: n, D: -n.Dot(p)}
}

// DepthAt solves the plane equation for z at (x, y).
func (p Plane) DepthAt(x, y float64) float64 {
	return (-p.Normal.X*x - p.Normal.Y*y - p.D) / p.Normal.Z
}

// Degenerate reports whether the plane cannot be solved for z, i.e. the
// triangle it was built from has zero screen-space area.
func (p Plane) Degenerate() bool {
	return p.Normal.Z == 0
}
