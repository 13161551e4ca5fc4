package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/image/draw"
)

// OutputOptions controls how a frame is serialized.
type OutputOptions struct {
	Border  bool                 // Surround the grid with a box border
	Profile colorprofile.Profile // Color capability of the destination; Unknown means TrueColor
}

// WriteFrame serializes the framebuffer as text: one line per row, each cell
// a glyph styled with its colors, every row terminated by a newline.
// Colors are downsampled (or stripped) to opts.Profile. An unset profile
// keeps full color; pass colorprofile.NoTTY for plain text.
func WriteFrame(w io.Writer, fb *Framebuffer[Cell], opts OutputOptions) error {
	frame := RenderFrame(fb, opts.Border)

	profile := opts.Profile
	if profile == colorprofile.Unknown {
		profile = colorprofile.TrueColor
	}
	cw := &colorprofile.Writer{Forward: w, Profile: profile}
	if _, err := io.WriteString(cw, frame+"\n"); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// RenderFrame returns the styled text of the framebuffer without a trailing
// newline. Colors are emitted in full 24-bit form.
func RenderFrame(fb *Framebuffer[Cell], border bool) string {
	scr := uv.NewScreenBuffer(fb.Width, fb.Height)
	Draw(scr, scr.Bounds(), fb)

	var sb strings.Builder
	for y := range fb.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range fb.Width {
			c := scr.CellAt(x, y)
			if c == nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cellStyle(c).Render(c.Content))
		}
	}

	if !border {
		return sb.String()
	}
	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Render(sb.String())
}

func cellStyle(c *uv.Cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.Style.Fg != nil {
		s = s.Foreground(c.Style.Fg)
	}
	if c.Style.Bg != nil {
		s = s.Background(c.Style.Bg)
	}
	return s
}

// ToImage converts the framebuffer to an image, one pixel per cell. A cell's
// pixel is its background color, or its foreground when it has none.
func ToImage(fb *Framebuffer[Cell]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			c := fb.At(x, y)
			px := c.Bg
			if px.A == 0 {
				px = c.Fg
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// SavePNG writes the framebuffer as a PNG. Each cell becomes scale pixels
// wide and 2*scale pixels tall, approximating a terminal cell's aspect.
func SavePNG(path string, fb *Framebuffer[Cell], scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := ToImage(fb)
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale*2))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
