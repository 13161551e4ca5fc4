package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunDigits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shader = ShaderDigits
	cfg.Width, cfg.Height = 40, 16

	var out bytes.Buffer
	if err := run(cfg, &out, discardLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != cfg.Height {
		t.Fatalf("got %d lines, want %d", len(lines), cfg.Height)
	}
	digits := 0
	for i, line := range lines {
		if len(line) != cfg.Width {
			t.Errorf("line %d has %d cells, want %d", i, len(line), cfg.Width)
		}
		for _, r := range line {
			if r >= '0' && r <= ':' {
				digits++
			} else if r != '.' {
				t.Fatalf("unexpected glyph %q on line %d", r, i)
			}
		}
	}
	if digits == 0 {
		t.Error("no cells were shaded")
	}
}

func TestRunGrayWithBorderAndPNG(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 10
	cfg.Border = true
	cfg.Wireframe = true
	cfg.Workers = 3
	cfg.PNGPath = filepath.Join(t.TempDir(), "frame.png")
	cfg.PNGScale = 1

	var out bytes.Buffer
	if err := run(cfg, &out, discardLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	s := out.String()
	if !strings.HasPrefix(s, "┌") {
		t.Errorf("output should start with a border:\n%s", s)
	}
	if !strings.Contains(s, "█") || !strings.Contains(s, "+") {
		t.Errorf("output missing shaded or wireframe cells:\n%s", s)
	}
	if strings.Contains(s, "\x1b[") {
		t.Error("buffer output should have colors stripped")
	}

	if fi, err := os.Stat(cfg.PNGPath); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestRootCmdRejectsBadFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--width", "1"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Execute() = %v, want %v", err, ErrInvalidSize)
	}
}

func TestRootCmdVerbose(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-W", "12", "-H", "6", "--shader", "digits", "--verbose"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 6 {
		t.Errorf("got %d lines, want 6", got)
	}
	if !strings.Contains(errOut.String(), "frame rasterized") {
		t.Errorf("verbose log missing summary:\n%s", errOut.String())
	}
	if !strings.Contains(errOut.String(), "rasterized triangle") {
		t.Errorf("verbose log missing render package output:\n%s", errOut.String())
	}
}
