package math3d

// Mat4 is a 4x4 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
//
// Points are column vectors, so MulVec4 computes m * v.
type Mat4 [16]float64

// Frustum creates an off-center perspective projection for the viewing
// volume bounded by left/right, top/bottom and the near/far planes.
//
// The camera looks down +Z and clip-space W equals the input Z, so a point
// on the near plane projects to NDC depth -1 and one on the far plane to +1.
// Top maps to NDC y = -1 and bottom to +1, matching row 0 of the screen.
// The y offset term is therefore (top+bottom)/(top-bottom), the negation of
// the usual OpenGL form, and must stay that way for off-center frusta.
//
// The result is undefined when right == left, bottom == top or far == near.
func Frustum(left, right, top, bottom, near, far float64) Mat4 {
	return Mat4{
		2 * near / (right - left), 0, (left + right) / (left - right), 0,
		0, 2 * near / (bottom - top), (top + bottom) / (top - bottom), 0,
		0, 0, (far + near) / (far - near), 2 * near * far / (near - far),
		0, 0, 1, 0,
	}
}

// MulVec4 transforms a Vec4: four row dot products, no side effects.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Project transforms p as a point (w=1) into clip space.
func (m Mat4) Project(p Vec3) Vec4 {
	return m.MulVec4(V4FromV3(p, 1))
}
