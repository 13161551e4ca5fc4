// Package math3d provides the vector and matrix primitives used by the
// quadview rasterizer.
package math3d

// Vec3 is a point or direction in view space. The camera sits at the origin
// looking down +Z.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// String implements fmt.Stringer.
func (a Vec3) String() string {
	return "x: " + ftoa(a.X) + " y: " + ftoa(a.Y) + " z: " + ftoa(a.Z)
}
