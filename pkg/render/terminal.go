package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"
)

// Color is an alias for color.RGBA for convenience.
// A zero alpha means "no color": the terminal default is used.
type Color = color.RGBA

// Colors for convenience
var (
	ColorNone  = color.RGBA{}
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Gray creates an opaque gray from a single channel value.
func Gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 255}
}

// Cell is one character cell of the terminal grid.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// BlankCell is the default background: a space on black.
var BlankCell = Cell{Glyph: ' ', Fg: ColorBlack, Bg: ColorBlack}

// UV converts the cell to an ultraviolet cell.
func (c Cell) UV() *uv.Cell {
	glyph := c.Glyph
	if glyph == 0 {
		glyph = ' '
	}
	w := runewidth.RuneWidth(glyph)
	if w < 1 {
		w = 1
	}
	return &uv.Cell{
		Content: string(glyph),
		Width:   w,
		Style: uv.Style{
			Fg: rgbaToColor(c.Fg),
			Bg: rgbaToColor(c.Bg),
		},
	}
}

// Draw copies the framebuffer's cells onto the screen, one framebuffer cell
// per terminal cell, clipped to area.
func Draw(scr uv.Screen, area uv.Rectangle, fb *Framebuffer[Cell]) {
	for row := area.Min.Y; row < area.Max.Y && row < fb.Height; row++ {
		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			scr.SetCell(col, row, fb.At(col, row).UV())
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
