package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/taigrr/quadview/pkg/math3d"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs should return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup should return a nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	fb := NewFramebuffer(10, 10, 0)
	r := NewRasterizer(NewCamera(), fb, func(float64) int { return 1 })
	r.DrawTriangle(Triangle{V: [3]math3d.Vec3{
		math3d.V3(0, 0, 0), math3d.V3(1, 0, 1.5), math3d.V3(0, 1, 1.5),
	}})
	r.DrawTriangle(screenTriangle(1.5))

	out := buf.String()
	if !strings.Contains(out, "skipping triangle on camera plane") {
		t.Errorf("missing skip message in log:\n%s", out)
	}
	if !strings.Contains(out, "rasterized triangle") {
		t.Errorf("missing raster message in log:\n%s", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
