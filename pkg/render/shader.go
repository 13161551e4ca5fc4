package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// FullBlock is the glyph used by the color shaders.
const FullBlock = '█'

// DigitBackground is the background for DigitShader frames.
var DigitBackground = Cell{Glyph: '.'}

// GrayscaleShader paints a full block whose foreground and background are the
// gray level (d+1)*128, clamped to [0, 255].
func GrayscaleShader() Shader[Cell] {
	return func(d float64) Cell {
		c := Gray(channel((d + 1) * 128))
		return Cell{Glyph: FullBlock, Fg: c, Bg: c}
	}
}

// DigitShader writes the uncolored digit '0' + (d+1)*5. Depths in [-1, 1]
// give '0' to ':' with near surfaces drawing low digits.
func DigitShader() Shader[Cell] {
	return func(d float64) Cell {
		n := max(0, min(10, int(math.Trunc((d+1)*5))))
		return Cell{Glyph: rune('0' + n)}
	}
}

// GradientShader blends from near (d = -1) to far (d = 1) in CIE L*a*b*.
func GradientShader(near, far colorful.Color) Shader[Cell] {
	return func(d float64) Cell {
		t := max(0, min(1, (d+1)/2))
		r, g, b := near.BlendLab(far, t).Clamped().RGB255()
		c := RGB(r, g, b)
		return Cell{Glyph: FullBlock, Fg: c, Bg: c}
	}
}

// PaletteShader samples the middle row of tex, left edge for d = -1 and
// right edge for d = 1.
func PaletteShader(tex *Texture) Shader[Cell] {
	return func(d float64) Cell {
		c := tex.Sample((d+1)/2, 0.5)
		return Cell{Glyph: FullBlock, Fg: c, Bg: c}
	}
}

// ParseColor parses a hex color such as "#ff8800".
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// channel truncates v toward zero and clamps it to a color channel.
func channel(v float64) uint8 {
	return uint8(max(0, min(255, math.Trunc(v))))
}
