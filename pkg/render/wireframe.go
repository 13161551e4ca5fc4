package render

import (
	"github.com/taigrr/quadview/pkg/math3d"
)

// Wireframe draws triangle edges as lines of a fixed cell, ignoring and
// leaving untouched the depth buffer.
type Wireframe[T any] struct {
	camera *Camera
	fb     *Framebuffer[T]
	Line   T
}

// NewWireframe creates a wireframe renderer that draws with line.
func NewWireframe[T any](camera *Camera, fb *Framebuffer[T], line T) *Wireframe[T] {
	return &Wireframe[T]{
		camera: camera,
		fb:     fb,
		Line:   line,
	}
}

// DrawLine3D draws a line between two view-space points.
func (w *Wireframe[T]) DrawLine3D(p1, p2 math3d.Vec3) {
	a, ok1 := w.camera.Project(p1)
	b, ok2 := w.camera.Project(p2)
	if !ok1 || !ok2 {
		return
	}

	x1, y1 := w.toGrid(a)
	x2, y2 := w.toGrid(b)
	w.DrawLine(x1, y1, x2, y2)
}

// toGrid maps NDC to the nearest grid cell. Points off screen map outside
// the grid and are clipped per cell by DrawLine.
func (w *Wireframe[T]) toGrid(p math3d.Vec4) (int, int) {
	x := (p.X + 1) * float64(w.fb.Width-1) / 2
	y := (p.Y + 1) * float64(w.fb.Height-1) / 2
	return int(x + 0.5), int(y + 0.5)
}

// DrawLine draws a Bresenham line between two grid cells, inclusive.
// Cells outside the framebuffer are skipped.
func (w *Wireframe[T]) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= 0 && x0 < w.fb.Width && y0 >= 0 && y0 < w.fb.Height {
			w.fb.Set(x0, y0, w.Line)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTriangle outlines a triangle's three edges.
func (w *Wireframe[T]) DrawTriangle(tri Triangle) {
	for i := range 3 {
		w.DrawLine3D(tri.V[i], tri.V[(i+1)%3])
	}
}

// DrawMesh outlines every face of the mesh.
func (w *Wireframe[T]) DrawMesh(mesh MeshRenderer) {
	for i := 0; i < mesh.TriangleCount(); i++ {
		face := mesh.GetFace(i)
		w.DrawTriangle(Triangle{V: [3]math3d.Vec3{
			mesh.GetVertex(face[0]),
			mesh.GetVertex(face[1]),
			mesh.GetVertex(face[2]),
		}})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
