package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/drawgl"
)

func TestBackendRegistered(t *testing.T) {
	b, err := drawgl.NewBackend("raster")
	if err != nil {
		t.Fatalf("NewBackend(raster) error = %v", err)
	}
	rb, ok := b.(*Backend)
	if !ok {
		t.Fatalf("NewBackend(raster) returned %T, want *Backend", b)
	}
	if rb.Width() != DefaultWidth || rb.Height() != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", rb.Width(), rb.Height(), DefaultWidth, DefaultHeight)
	}
}

// lowerLeft is a triangle covering the lower left half of the default view.
var lowerLeft = drawgl.NewCoords([]float32{-1, -1, 0, 1, -1, 0, -1, 1, 0}, 3)

func TestTriangleFill(t *testing.T) {
	b := NewBackend(64, 64)
	d := drawgl.NewDrawer(b)
	red := drawgl.ElementColors([]float32{1, 0, 0})

	if err := d.DrawTriangles(lowerLeft, drawgl.Normals{}, red, 1); err != nil {
		t.Fatalf("DrawTriangles() error = %v", err)
	}

	if got, want := b.Image().RGBAAt(8, 56), (color.RGBA{255, 0, 0, 255}); got != want {
		t.Errorf("pixel inside = %v, want %v", got, want)
	}
	if got := b.Image().RGBAAt(56, 8); got != (color.RGBA{}) {
		t.Errorf("pixel outside = %v, want transparent", got)
	}
}

func TestTriangleAlpha(t *testing.T) {
	b := NewBackend(64, 64)
	d := drawgl.NewDrawer(b)
	red := drawgl.ElementColors([]float32{1, 0, 0})

	if err := d.DrawTriangles(lowerLeft, drawgl.Normals{}, red, 0.5); err != nil {
		t.Fatalf("DrawTriangles() error = %v", err)
	}

	got := b.Image().RGBAAt(8, 56)
	if got.A < 120 || got.A > 135 {
		t.Errorf("alpha = %d, want about 128", got.A)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("pixel = %v, want red only", got)
	}
}

func TestTriangleLighting(t *testing.T) {
	tests := []struct {
		name    string
		normal  []float32
		lit     bool
		wantMin uint8
		wantMax uint8
	}{
		{"unlit", []float32{1, 0, 0}, false, 255, 255},
		{"facing", []float32{0, 0, -2}, true, 255, 255},
		{"edge on", []float32{1, 0, 0}, true, 70, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBackend(64, 64, WithLighting(tt.lit))
			d := drawgl.NewDrawer(b)
			err := d.DrawTriangles(lowerLeft, drawgl.NewNormals(tt.normal), drawgl.NoColors(), 1)
			if err != nil {
				t.Fatalf("DrawTriangles() error = %v", err)
			}
			got := b.Image().RGBAAt(8, 56).R
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("red = %d, want in [%d, %d]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestLines(t *testing.T) {
	b := NewBackend(64, 64, WithLineWidth(3))
	d := drawgl.NewDrawer(b)
	coords := drawgl.NewCoords([]float32{-1, 0, 0, 1, 0, 0}, 2)

	if err := d.DrawLines(coords, drawgl.NoColors()); err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}

	if got, want := b.Image().RGBAAt(32, 32), (color.RGBA{255, 255, 255, 255}); got != want {
		t.Errorf("pixel on line = %v, want %v", got, want)
	}
	if got := b.Image().RGBAAt(32, 8); got != (color.RGBA{}) {
		t.Errorf("pixel off line = %v, want transparent", got)
	}
}

func TestPoints(t *testing.T) {
	b := NewBackend(64, 64, WithPointSize(4))
	d := drawgl.NewDrawer(b)
	green := drawgl.ElementColors([]float32{0, 1, 0})

	if err := d.DrawPoints(drawgl.NewPoints([]float32{0, 0, 0}), green, 1); err != nil {
		t.Fatalf("DrawPoints() error = %v", err)
	}

	if got, want := b.Image().RGBAAt(32, 32), (color.RGBA{0, 255, 0, 255}); got != want {
		t.Errorf("pixel at point = %v, want %v", got, want)
	}
	if got := b.Image().RGBAAt(40, 40); got != (color.RGBA{}) {
		t.Errorf("pixel away from point = %v, want transparent", got)
	}
}

func TestBackground(t *testing.T) {
	b := NewBackend(8, 8, WithBackground(color.White))
	if got, want := b.Image().RGBAAt(3, 3), (color.RGBA{255, 255, 255, 255}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
	b.Clear(color.Transparent)
	if got := b.Image().RGBAAt(3, 3); got != (color.RGBA{}) {
		t.Errorf("after Clear = %v, want transparent", got)
	}
}

func TestViews(t *testing.T) {
	b := NewBackend(64, 32)

	b.SetView(0, 0, 4, 2)
	if got, want := b.project(f32.Vec3{0, 2, 0}), (f32.Vec2{0, 0}); got != want {
		t.Errorf("SetView: project(top left) = %v, want %v", got, want)
	}
	if got, want := b.project(f32.Vec3{4, 0, 5}), (f32.Vec2{64, 32}); got != want {
		t.Errorf("SetView: project(bottom right) = %v, want %v", got, want)
	}

	b.FitView(f32.Vec3{0, 0, 0}, f32.Vec3{10, 10, 0}, 0)
	if got, want := b.project(f32.Vec3{5, 5, 0}), (f32.Vec2{32, 16}); got != want {
		t.Errorf("FitView: project(center) = %v, want %v", got, want)
	}
	if got, want := b.project(f32.Vec3{0, 0, 0}), (f32.Vec2{16, 32}); got != want {
		t.Errorf("FitView: project(lo) = %v, want %v", got, want)
	}
}

func TestIncompletePrimitiveLogged(t *testing.T) {
	var buf bytes.Buffer
	b := NewBackend(16, 16)
	b.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	b.Begin(drawgl.ModeTriangles)
	for range 4 {
		b.Vertex(f32.Vec3{})
	}
	b.End()

	if !strings.Contains(buf.String(), "incomplete primitive") {
		t.Errorf("log = %q, want incomplete primitive warning", buf.String())
	}
}

func TestWriteTo(t *testing.T) {
	b := NewBackend(16, 8)
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 16 || got.Y != 8 {
		t.Errorf("decoded size = %v, want 16x8", got)
	}
}

func TestSavePNG(t *testing.T) {
	b := NewBackend(4, 4)
	if err := b.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
	if err := b.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into missing directory succeeded")
	}
}
