package render

import (
	"context"
	"log/slog"

	"github.com/taigrr/quadview/pkg/math3d"
	"golang.org/x/sync/errgroup"
)

// Shader maps an interpolated depth to the content of a cell. Shaders must
// be pure: they may be called any number of times, in any order, and from
// several goroutines at once.
type Shader[T any] func(depth float64) T

// Triangle represents a triangle to be rasterized.
type Triangle struct {
	V [3]math3d.Vec3
}

// MeshRenderer is implemented by indexed triangle meshes such as scene.Mesh.
// Defined here so the render package does not import the scene package.
type MeshRenderer interface {
	TriangleCount() int
	GetFace(i int) [3]int
	GetVertex(i int) math3d.Vec3
}

// RasterStats counts the work done by a Rasterizer.
type RasterStats struct {
	TrianglesDrawn   int // Triangles that reached the pixel scan
	TrianglesSkipped int // Degenerate triangles or triangles on the camera plane
	Fragments        int // Pixels scanned inside bounding boxes
	FragmentsInside  int // Scanned pixels inside their triangle
	FragmentsWritten int // Inside pixels that passed the depth test
}

// Add accumulates o into s.
func (s *RasterStats) Add(o RasterStats) {
	s.TrianglesDrawn += o.TrianglesDrawn
	s.TrianglesSkipped += o.TrianglesSkipped
	s.Fragments += o.Fragments
	s.FragmentsInside += o.FragmentsInside
	s.FragmentsWritten += o.FragmentsWritten
}

// Rasterizer draws triangles into a framebuffer through a fixed camera,
// shading every written cell with its shader.
type Rasterizer[T any] struct {
	camera *Camera
	fb     *Framebuffer[T]
	shader Shader[T]

	// Workers is the number of goroutines scanning the rows of one triangle.
	// Triangles are always drawn one after another in call order; values
	// below 2 scan on the calling goroutine.
	Workers int

	Stats RasterStats
}

// NewRasterizer creates a rasterizer. The framebuffer must be at least 2×2
// and the shader must not be nil.
func NewRasterizer[T any](camera *Camera, fb *Framebuffer[T], shader Shader[T]) *Rasterizer[T] {
	if fb.Width < 2 || fb.Height < 2 {
		panic("render: rasterizer needs a framebuffer of at least 2x2")
	}
	if shader == nil {
		panic("render: nil shader")
	}
	return &Rasterizer[T]{
		camera: camera,
		fb:     fb,
		shader: shader,
	}
}

// Framebuffer returns the target framebuffer.
func (r *Rasterizer[T]) Framebuffer() *Framebuffer[T] {
	return r.fb
}

// DrawTriangle rasterizes a single triangle.
//
// Triangles with a vertex on the camera plane or with zero projected area
// are skipped.
func (r *Rasterizer[T]) DrawTriangle(tri Triangle) {
	log := Logger()

	// Project to NDC
	var p [3]math3d.Vec4
	for i := range 3 {
		ndc, ok := r.camera.Project(tri.V[i])
		if !ok {
			r.Stats.TrianglesSkipped++
			log.Debug("skipping triangle on camera plane", "vertex", tri.V[i])
			return
		}
		p[i] = ndc
	}

	plane := DepthPlane(p[0], p[1], p[2])
	if plane.Degenerate() {
		r.Stats.TrianglesSkipped++
		log.Debug("skipping degenerate triangle", "v0", p[0], "v1", p[1], "v2", p[2])
		return
	}

	bb := BoundingBox(p[0], p[1], p[2], r.fb.Width, r.fb.Height)
	x0, x1, y0, y1 := bb.Span()

	var stats RasterStats
	stats.TrianglesDrawn = 1
	if x0 < x1 && y0 < y1 {
		stats.Add(r.scan(p, plane, x0, x1, y0, y1))
	}
	r.Stats.Add(stats)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("rasterized triangle",
			"bounds", bb,
			"fragments", stats.Fragments,
			"inside", stats.FragmentsInside,
			"written", stats.FragmentsWritten,
		)
	}
}

// scan walks rows [y0, y1), optionally spreading them over Workers
// goroutines. Rows touch disjoint cells, so each cell's depth test and write
// still happen exactly once and in triangle order.
func (r *Rasterizer[T]) scan(p [3]math3d.Vec4, plane Plane, x0, x1, y0, y1 int) RasterStats {
	if r.Workers < 2 || y1-y0 < 2 {
		var stats RasterStats
		for i := y0; i < y1; i++ {
			stats.Add(r.scanRow(p, plane, i, x0, x1))
		}
		return stats
	}

	rows := make([]RasterStats, y1-y0)
	var g errgroup.Group
	g.SetLimit(r.Workers)
	for i := y0; i < y1; i++ {
		g.Go(func() error {
			rows[i-y0] = r.scanRow(p, plane, i, x0, x1)
			return nil
		})
	}
	_ = g.Wait() // scanRow never fails

	var stats RasterStats
	for _, s := range rows {
		stats.Add(s)
	}
	return stats
}

func (r *Rasterizer[T]) scanRow(p [3]math3d.Vec4, plane Plane, i, x0, x1 int) RasterStats {
	var stats RasterStats
	mi := ToCartesian(i, r.fb.Height)
	for j := x0; j < x1; j++ {
		stats.Fragments++
		mj := ToCartesian(j, r.fb.Width)
		if !InsideTriangle(p[0], p[1], p[2], mj, mi) {
			continue
		}
		stats.FragmentsInside++

		d := plane.DepthAt(mj, mi)
		if c := r.fb.WriteIfNearer(j, i, d); c != nil {
			*c = r.shader(d)
			stats.FragmentsWritten++
		}
	}
	return stats
}

// DrawQuad draws a quad as the two triangles (v0, v1, v2) and (v0, v2, v3).
func (r *Rasterizer[T]) DrawQuad(v0, v1, v2, v3 math3d.Vec3) {
	r.DrawTriangle(Triangle{V: [3]math3d.Vec3{v0, v1, v2}})
	r.DrawTriangle(Triangle{V: [3]math3d.Vec3{v0, v2, v3}})
}

// DrawMesh draws every face of the mesh in order.
func (r *Rasterizer[T]) DrawMesh(mesh MeshRenderer) {
	for i := 0; i < mesh.TriangleCount(); i++ {
		face := mesh.GetFace(i)
		r.DrawTriangle(Triangle{V: [3]math3d.Vec3{
			mesh.GetVertex(face[0]),
			mesh.GetVertex(face[1]),
			mesh.GetVertex(face[2]),
		}})
	}
}
