package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"math"
	"os"

	"golang.org/x/image/draw"
)

// WrapMode determines how texture coordinates outside [0,1] are handled.
type WrapMode int

const (
	WrapClamp  WrapMode = iota // Clamp to edge
	WrapRepeat                 // Tile the texture
)

// FilterMode determines how texture sampling is performed.
type FilterMode int

const (
	FilterNearest  FilterMode = iota // Nearest-neighbor
	FilterBilinear                   // Blend the four nearest texels
)

// Texture is an image sampled with normalized coordinates. PaletteShader
// uses one as a color ramp.
type Texture struct {
	img    *image.RGBA
	Wrap   WrapMode
	Filter FilterMode
}

// NewTexture creates a transparent texture.
func NewTexture(width, height int) *Texture {
	return &Texture{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// LoadTexture loads a texture from a PNG or JPEG file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage copies img into a new texture.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	tex := NewTexture(b.Dx(), b.Dy())
	draw.Draw(tex.img, tex.img.Bounds(), img, b.Min, draw.Src)
	return tex
}

// NewGradientTexture creates a texture fading from left to right.
func NewGradientTexture(width, height int, left, right Color) *Texture {
	tex := NewTexture(width, height)
	for x := range width {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		c := lerpColor(left, right, t)
		for y := range height {
			tex.img.SetRGBA(x, y, c)
		}
	}
	return tex
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.img.Rect.Dx() }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.img.Rect.Dy() }

// GetPixel returns a texel, or the zero color out of range.
func (t *Texture) GetPixel(x, y int) Color {
	return t.img.RGBAAt(x, y)
}

// Sample returns the color at (u, v), u running left to right and v top to
// bottom over [0, 1].
func (t *Texture) Sample(u, v float64) Color {
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return Color{}
	}
	u, v = t.Wrap.coord(u), t.Wrap.coord(v)

	if t.Filter == FilterBilinear {
		return t.bilinear(u*float64(w)-0.5, v*float64(h)-0.5)
	}
	return t.GetPixel(min(int(u*float64(w)), w-1), min(int(v*float64(h)), h-1))
}

// bilinear blends the texels around the continuous texel position (fx, fy).
func (t *Texture) bilinear(fx, fy float64) Color {
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0

	w, h := t.Width(), t.Height()
	xa, xb := t.Wrap.texel(int(x0), w), t.Wrap.texel(int(x0)+1, w)
	ya, yb := t.Wrap.texel(int(y0), h), t.Wrap.texel(int(y0)+1, h)

	top := lerpColor(t.GetPixel(xa, ya), t.GetPixel(xb, ya), tx)
	bot := lerpColor(t.GetPixel(xa, yb), t.GetPixel(xb, yb), tx)
	return lerpColor(top, bot, ty)
}

// coord maps a normalized coordinate into [0, 1].
func (m WrapMode) coord(c float64) float64 {
	if m == WrapRepeat {
		return c - math.Floor(c)
	}
	return max(0, min(1, c))
}

// texel maps a texel index into [0, n).
func (m WrapMode) texel(i, n int) int {
	if m == WrapRepeat {
		return (i%n + n) % n
	}
	return max(0, min(n-1, i))
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
