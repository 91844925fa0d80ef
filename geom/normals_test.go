package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

func near(a, b f32.Vec3) bool {
	for k := range a {
		if math32.Abs(a[k]-b[k]) > 1e-5 {
			return false
		}
	}
	return true
}

func TestTriangleNormal(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c f32.Vec3
		want    f32.Vec3
	}{
		{"ccw xy", f32.Vec3{0, 0, 0}, f32.Vec3{1, 0, 0}, f32.Vec3{0, 1, 0}, f32.Vec3{0, 0, 1}},
		{"cw xy", f32.Vec3{0, 0, 0}, f32.Vec3{0, 1, 0}, f32.Vec3{1, 0, 0}, f32.Vec3{0, 0, -1}},
		{"scaled", f32.Vec3{0, 0, 0}, f32.Vec3{0, 5, 0}, f32.Vec3{0, 0, 5}, f32.Vec3{1, 0, 0}},
		{"degenerate", f32.Vec3{0, 0, 0}, f32.Vec3{1, 1, 1}, f32.Vec3{2, 2, 2}, f32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TriangleNormal(tt.a, tt.b, tt.c); !near(got, tt.want) {
				t.Errorf("TriangleNormal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonNormal(t *testing.T) {
	square := []f32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	if got := PolygonNormal(square); !near(got, f32.Vec3{0, 0, 1}) {
		t.Errorf("PolygonNormal(square) = %v, want (0, 0, 1)", got)
	}

	// Concave L shape, clockwise.
	ell := []f32.Vec3{{0, 0, 0}, {0, 2, 0}, {1, 2, 0}, {1, 1, 0}, {2, 1, 0}, {2, 0, 0}}
	if got := PolygonNormal(ell); !near(got, f32.Vec3{0, 0, -1}) {
		t.Errorf("PolygonNormal(ell) = %v, want (0, 0, -1)", got)
	}

	if got := PolygonNormal(square[:2]); got != (f32.Vec3{}) {
		t.Errorf("PolygonNormal(2 points) = %v, want zero", got)
	}
	if got := PolygonNormal(square[:3]); !near(got, f32.Vec3{0, 0, 1}) {
		t.Errorf("PolygonNormal(3 points) = %v, want (0, 0, 1)", got)
	}
}

func TestFaceNormals(t *testing.T) {
	data := []float32{
		0, 0, 0, 1, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 1, 0, 1, 0,
	}
	got := FaceNormals(data, 3)
	want := []float32{0, 0, 1, -1, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("FaceNormals() = %v, want %v", got, want)
	}
	for i := range want {
		if math32.Abs(got[i]-want[i]) > 1e-5 {
			t.Errorf("FaceNormals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if FaceNormals(data, 0) != nil {
		t.Error("FaceNormals(plex 0) should be nil")
	}
}

func TestLength(t *testing.T) {
	if got := Length(f32.Vec3{3, 4, 12}); got != 13 {
		t.Errorf("Length() = %v, want 13", got)
	}
}
