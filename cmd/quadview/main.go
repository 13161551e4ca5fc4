// quadview - Terminal Triangle Rasterizer
// Projects a tilted quad through a fixed perspective frustum and draws it
// into the terminal, one depth-shaded character cell per pixel.
//
// Shaders:
//
//	gray      - Full blocks in gray levels, near is dark
//	digits    - ASCII digits 0-9 on a dotted background, near is low
//	gradient  - Full blocks blended between --near-color and --far-color
//	palette   - Full blocks sampled left to right from a --palette image
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/quadview/pkg/render"
	"github.com/taigrr/quadview/pkg/scene"
	"golang.org/x/term"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "quadview",
		Short: "Rasterize a depth-shaded quad into the terminal",
		Long: "quadview projects a tilted quad through a fixed perspective frustum\n" +
			"and prints it as a grid of character cells shaded by depth.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.Verbose {
				render.SetLogger(log)
				defer render.SetLogger(nil)
			}
			return run(cfg, cmd.OutOrStdout(), log)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.Width, "width", "W", cfg.Width, "grid width in cells")
	f.IntVarP(&cfg.Height, "height", "H", cfg.Height, "grid height in cells")
	f.StringVarP(&cfg.Shader, "shader", "s", cfg.Shader, "cell shader: gray, digits, gradient or palette")
	f.StringVar(&cfg.NearColor, "near-color", cfg.NearColor, "gradient color at the near plane (hex)")
	f.StringVar(&cfg.FarColor, "far-color", cfg.FarColor, "gradient color at the far plane (hex)")
	f.StringVar(&cfg.Palette, "palette", cfg.Palette, "PNG or JPEG ramp sampled by the palette shader")
	f.StringVar(&cfg.PaletteWrap, "palette-wrap", cfg.PaletteWrap, "palette sampling past its edges: clamp or repeat")
	f.StringVar(&cfg.PaletteFilter, "palette-filter", cfg.PaletteFilter, "palette sampling filter: nearest or bilinear")
	f.BoolVarP(&cfg.Border, "border", "b", cfg.Border, "draw a border around the grid")
	f.BoolVarP(&cfg.Wireframe, "wireframe", "x", cfg.Wireframe, "overlay triangle edges")
	f.StringVar(&cfg.PNGPath, "png", cfg.PNGPath, "also write the frame to this PNG file")
	f.IntVar(&cfg.PNGScale, "png-scale", cfg.PNGScale, "PNG pixels per cell column")
	f.IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "goroutines scanning rows of each triangle")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log raster statistics to stderr")

	return cmd
}

// newLogger logs warnings to w, or everything down to debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run renders the default scene with cfg and writes the frame to out.
func run(cfg Config, out io.Writer, log *slog.Logger) error {
	shade, bg, err := cfg.shader()
	if err != nil {
		return err
	}

	camera := render.NewCamera()
	fb := render.NewFramebuffer(cfg.Width, cfg.Height, bg)
	r := render.NewRasterizer(camera, fb, shade)
	r.Workers = cfg.Workers

	quad := scene.DefaultQuad()
	r.DrawMesh(quad)
	if cfg.Wireframe {
		render.NewWireframe(camera, fb, cfg.wireCell()).DrawMesh(quad)
	}

	log.Debug("frame rasterized",
		"size", fmt.Sprintf("%dx%d", fb.Width, fb.Height),
		"triangles", r.Stats.TrianglesDrawn,
		"skipped", r.Stats.TrianglesSkipped,
		"fragments", r.Stats.Fragments,
		"written", r.Stats.FragmentsWritten,
		"covered", fb.WrittenCount(),
	)

	checkTerminalWidth(out, cfg, log)

	opts := render.OutputOptions{
		Border:  cfg.Border,
		Profile: colorprofile.Detect(out, os.Environ()),
	}
	if err := render.WriteFrame(out, fb, opts); err != nil {
		return err
	}

	if cfg.PNGPath != "" {
		if err := render.SavePNG(cfg.PNGPath, fb, cfg.PNGScale); err != nil {
			return fmt.Errorf("save %s: %w", cfg.PNGPath, err)
		}
		log.Info("wrote png", "path", cfg.PNGPath)
	}
	return nil
}

// checkTerminalWidth warns when out is a terminal narrower than the grid.
func checkTerminalWidth(out io.Writer, cfg Config, log *slog.Logger) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		log.Debug("cannot read terminal size", "error", err)
		return
	}
	need := cfg.Width
	if cfg.Border {
		need += 2
	}
	if need > cols {
		log.Warn("grid is wider than the terminal", "grid", need, "terminal", cols)
	}
}
