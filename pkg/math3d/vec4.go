package math3d

import "strconv"

// Vec4 represents a homogeneous 3D point.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Normalize performs the perspective divide in place: every component,
// W included, is divided by the current W. Afterwards W is 1.
//
// W must not be zero. A zero W yields infinities or NaNs; callers that can
// see points on the camera plane check W before normalizing.
func (v *Vec4) Normalize() {
	w := v.W
	v.X /= w
	v.Y /= w
	v.Z /= w
	v.W /= w
}

// String implements fmt.Stringer.
func (v Vec4) String() string {
	return "x: " + ftoa(v.X) + " y: " + ftoa(v.Y) + " z: " + ftoa(v.Z) + " w: " + ftoa(v.W)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
