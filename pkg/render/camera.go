package render

import (
	"github.com/taigrr/quadview/pkg/math3d"
)

// Camera is a fixed viewer at the origin looking down +Z through the
// frustum left=-1, right=1, top=-1, bottom=1, near=1, far=2.
type Camera struct {
	proj math3d.Mat4
}

// NewCamera creates the fixed camera.
func NewCamera() *Camera {
	return &Camera{proj: math3d.Frustum(-1, 1, -1, 1, 1, 2)}
}

// Project transforms a point to normalized device coordinates.
// ok is false when the point lies on the camera plane (clip w == 0).
func (c *Camera) Project(p math3d.Vec3) (ndc math3d.Vec4, ok bool) {
	ndc = c.proj.Project(p)
	if ndc.W == 0 {
		return math3d.Vec4{}, false
	}
	ndc.Normalize()
	return ndc, true
}
