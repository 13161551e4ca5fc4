// Package render provides software triangle rasterization into a
// depth-tested cell grid and its serialization to a terminal.
package render

import (
	"math"

	"github.com/taigrr/quadview/pkg/math3d"
)

// EdgeFunction returns the signed area spanned by the directed edge a→b and
// the point (x, y). Zero means the point lies on the line through a and b.
// Only the X and Y of the (perspective-divided) vertices are used.
func EdgeFunction(a, b math3d.Vec4, x, y float64) float64 {
	return (x-a.X)*(b.Y-a.Y) - (y-a.Y)*(b.X-a.X)
}

// InsideTriangle reports whether (x, y) lies on the non-negative side of all
// three directed edges b→a, c→b and a→c. Points exactly on an edge count as
// inside, so triangles sharing an edge with the same winding leave no gap
// between them.
//
// Triangles wound the other way contain no points at all.
func InsideTriangle(a, b, c math3d.Vec4, x, y float64) bool {
	return EdgeFunction(b, a, x, y) >= 0 &&
		EdgeFunction(c, b, x, y) >= 0 &&
		EdgeFunction(a, c, x, y) >= 0
}

// InterpolatedDepth returns the z of the plane through a, b and c at (x, y).
// The result is ±Inf or NaN when the triangle is degenerate; see
// DepthPlane and Plane.Degenerate.
func InterpolatedDepth(a, b, c math3d.Vec4, x, y float64) float64 {
	return DepthPlane(a, b, c).DepthAt(x, y)
}

// ToCartesian maps the grid index coord in [0, extent) to [-1, 1].
// extent must be at least 2.
func ToCartesian(coord, extent int) float64 {
	return float64(coord)*2/float64(extent-1) - 1
}

// Bounds is a screen-space rectangle in (fractional) pixel coordinates.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundingBox returns the screen-space bounding box of the projected
// triangle a, b, c on a width×height grid. The box is clamped to the visible
// NDC square [-1, 1]² before mapping to pixels with (ndc+1)*(extent-1)/2,
// so it never leaves [0, width-1]×[0, height-1].
func BoundingBox(a, b, c math3d.Vec4, width, height int) Bounds {
	minX := max(min(a.X, b.X, c.X), -1)
	maxX := min(max(a.X, b.X, c.X), 1)
	minY := max(min(a.Y, b.Y, c.Y), -1)
	maxY := min(max(a.Y, b.Y, c.Y), 1)

	sx := float64(width-1) / 2
	sy := float64(height-1) / 2
	return Bounds{
		MinX: (minX + 1) * sx,
		MaxX: (maxX + 1) * sx,
		MinY: (minY + 1) * sy,
		MaxY: (maxY + 1) * sy,
	}
}

// Span returns the integer pixel ranges covered by the box: columns
// [x0, x1) and rows [y0, y1). A pixel j is scanned iff MinX <= j < MaxX
// (after truncating MinX), and likewise for rows.
func (b Bounds) Span() (x0, x1, y0, y1 int) {
	x0 = int(b.MinX)
	x1 = int(math.Ceil(b.MaxX))
	y0 = int(b.MinY)
	y1 = int(math.Ceil(b.MaxY))
	return x0, x1, y0, y1
}

// Empty reports whether the box contains no scanned pixel.
func (b Bounds) Empty() bool {
	x0, x1, y0, y1 := b.Span()
	return x0 >= x1 || y0 >= y1
}
