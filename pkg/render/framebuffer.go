package render

import "fmt"

// Framebuffer is a fixed-size grid of cells with a parallel depth buffer.
// Cells are addressed by (x, y) with 0 <= x < Width and 0 <= y < Height;
// any other coordinate is a programming error and panics.
type Framebuffer[T any] struct {
	Width  int       // Width in cells
	Height int       // Height in cells
	Cells  []T       // Row-major cell data
	Depth  []float64 // Row-major depth values
	// written marks cells that passed a depth test since the last Clear.
	written []bool
}

// NewFramebuffer creates a framebuffer with every cell set to background
// and every depth set to 0.
func NewFramebuffer[T any](width, height int, background T) *Framebuffer[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid framebuffer size %dx%d", width, height))
	}
	fb := &Framebuffer[T]{
		Width:   width,
		Height:  height,
		Cells:   make([]T, width*height),
		Depth:   make([]float64, width*height),
		written: make([]bool, width*height),
	}
	fb.Clear(background)
	return fb
}

// Clear fills every cell with background and resets all depths to 0.
func (fb *Framebuffer[T]) Clear(background T) {
	for i := range fb.Cells {
		fb.Cells[i] = background
	}
	clear(fb.Depth)
	clear(fb.written)
}

func (fb *Framebuffer[T]) index(x, y int) int {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("render: cell (%d, %d) out of range %dx%d", x, y, fb.Width, fb.Height))
	}
	return y*fb.Width + x
}

// At returns the cell at (x, y).
func (fb *Framebuffer[T]) At(x, y int) T {
	return fb.Cells[fb.index(x, y)]
}

// Set overwrites the cell at (x, y) without touching its depth.
func (fb *Framebuffer[T]) Set(x, y int, c T) {
	fb.Cells[fb.index(x, y)] = c
}

// DepthAt returns the stored depth at (x, y).
func (fb *Framebuffer[T]) DepthAt(x, y int) float64 {
	return fb.Depth[fb.index(x, y)]
}

// WriteIfNearer runs the depth test for a fragment at (x, y) with the given
// depth. The test fails only when the fragment lies more than one unit
// beyond the stored depth (stored+1 < depth); every other fragment passes,
// including ones slightly farther than what is already drawn.
//
// On success the stored depth is replaced by depth and a pointer to the cell
// is returned for the caller to fill in. On failure nothing changes and nil
// is returned.
func (fb *Framebuffer[T]) WriteIfNearer(x, y int, depth float64) *T {
	i := fb.index(x, y)
	if fb.Depth[i]+1 < depth {
		return nil
	}
	fb.Depth[i] = depth
	fb.written[i] = true
	return &fb.Cells[i]
}

// Written reports whether any fragment passed the depth test at (x, y)
// since the last Clear.
func (fb *Framebuffer[T]) Written(x, y int) bool {
	return fb.written[fb.index(x, y)]
}

// WrittenCount returns the number of cells written since the last Clear.
func (fb *Framebuffer[T]) WrittenCount() int {
	n := 0
	for _, w := range fb.written {
		if w {
			n++
		}
	}
	return n
}

// Row returns the cells of row y. The slice aliases the framebuffer.
func (fb *Framebuffer[T]) Row(y int) []T {
	i := fb.index(0, y)
	return fb.Cells[i : i+fb.Width]
}
