package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taigrr/quadview/pkg/render"
)

// Shader names accepted by --shader.
const (
	ShaderGray     = "gray"
	ShaderDigits   = "digits"
	ShaderGradient = "gradient"
	ShaderPalette  = "palette"
)

var shaderNames = []string{ShaderGray, ShaderDigits, ShaderGradient, ShaderPalette}

// Palette sampling modes accepted by --palette-wrap and --palette-filter.
var (
	wrapModes = map[string]render.WrapMode{
		"clamp":  render.WrapClamp,
		"repeat": render.WrapRepeat,
	}
	filterModes = map[string]render.FilterMode{
		"nearest":  render.FilterNearest,
		"bilinear": render.FilterBilinear,
	}
)

var (
	ErrInvalidSize     = errors.New("width and height must be at least 2")
	ErrUnknownShader   = errors.New("unknown shader")
	ErrPaletteRequired = errors.New("palette shader requires --palette")
	ErrInvalidScale    = errors.New("png scale must be at least 1")
	ErrInvalidWorkers  = errors.New("workers must not be negative")
	ErrUnknownWrap     = errors.New("unknown palette wrap mode")
	ErrUnknownFilter   = errors.New("unknown palette filter")
)

// Config holds the parsed command line.
type Config struct {
	Width, Height int

	Shader    string
	NearColor string // Hex, gradient shader
	FarColor  string // Hex, gradient shader
	Palette   string // Ramp image, palette shader

	PaletteWrap   string // clamp or repeat
	PaletteFilter string // nearest or bilinear

	Border    bool
	Wireframe bool

	PNGPath  string
	PNGScale int

	Workers int
	Verbose bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Width:     150,
		Height:    50,
		Shader:    ShaderGray,
		NearColor: "#ffd75f",
		FarColor:  "#1c1c3a",

		PaletteWrap:   "clamp",
		PaletteFilter: "nearest",

		PNGScale: 4,
		Workers:  1,
	}
}

// Validate checks the configuration without touching the filesystem.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	switch c.Shader {
	case ShaderGray, ShaderDigits:
	case ShaderGradient:
		if _, err := render.ParseColor(c.NearColor); err != nil {
			return fmt.Errorf("near color: %w", err)
		}
		if _, err := render.ParseColor(c.FarColor); err != nil {
			return fmt.Errorf("far color: %w", err)
		}
	case ShaderPalette:
		if c.Palette == "" {
			return ErrPaletteRequired
		}
	default:
		return fmt.Errorf("%w %q (want one of %s)", ErrUnknownShader, c.Shader, strings.Join(shaderNames, ", "))
	}
	if _, ok := wrapModes[c.PaletteWrap]; !ok {
		return fmt.Errorf("%w %q (want clamp or repeat)", ErrUnknownWrap, c.PaletteWrap)
	}
	if _, ok := filterModes[c.PaletteFilter]; !ok {
		return fmt.Errorf("%w %q (want nearest or bilinear)", ErrUnknownFilter, c.PaletteFilter)
	}
	if c.PNGPath != "" && c.PNGScale < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidScale, c.PNGScale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// shader builds the configured shader and the background the frame starts
// from. Digits draw on dots; everything else on black.
func (c Config) shader() (render.Shader[render.Cell], render.Cell, error) {
	switch c.Shader {
	case ShaderGray:
		return render.GrayscaleShader(), render.BlankCell, nil
	case ShaderDigits:
		return render.DigitShader(), render.DigitBackground, nil
	case ShaderGradient:
		near, err := render.ParseColor(c.NearColor)
		if err != nil {
			return nil, render.Cell{}, err
		}
		far, err := render.ParseColor(c.FarColor)
		if err != nil {
			return nil, render.Cell{}, err
		}
		return render.GradientShader(near, far), render.BlankCell, nil
	case ShaderPalette:
		tex, err := render.LoadTexture(c.Palette)
		if err != nil {
			return nil, render.Cell{}, fmt.Errorf("load palette: %w", err)
		}
		tex.Wrap = wrapModes[c.PaletteWrap]
		tex.Filter = filterModes[c.PaletteFilter]
		return render.PaletteShader(tex), render.BlankCell, nil
	}
	return nil, render.Cell{}, fmt.Errorf("%w %q", ErrUnknownShader, c.Shader)
}

// wireCell is the cell wireframe edges are drawn with.
func (c Config) wireCell() render.Cell {
	if c.Shader == ShaderDigits {
		return render.Cell{Glyph: '+'}
	}
	return render.Cell{Glyph: '+', Fg: render.ColorWhite, Bg: render.ColorBlack}
}
