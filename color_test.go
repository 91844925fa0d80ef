package drawgl

import (
	"errors"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestColorsFromShape(t *testing.T) {
	tests := []struct {
		name     string
		data     []float32
		shape    []int
		wantKind ColorKind
		wantErr  error
	}{
		{"empty data", nil, []int{0, 3}, ColorNone, nil},
		{"no shape", []float32{1, 0, 0}, nil, ColorNone, nil},
		{"rank 1", []float32{1, 0, 0}, []int{3}, ColorUniform, nil},
		{"rank 2", make([]float32, 6), []int{2, 3}, ColorPerElement, nil},
		{"rank 3", make([]float32, 18), []int{2, 3, 3}, ColorPerVertex, nil},
		{"rgba", make([]float32, 8), []int{2, 4}, ColorNone, ErrColorsShape},
		{"short", make([]float32, 5), []int{2, 3}, ColorNone, ErrColorsShape},
		{"rank 4", make([]float32, 12), []int{2, 1, 2, 3}, ColorNone, ErrColorsShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ColorsFromShape(tt.data, tt.shape...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ColorsFromShape() error = %v, want %v", err, tt.wantErr)
			}
			if c.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", c.Kind(), tt.wantKind)
			}
		})
	}
}

func TestColorsAccessors(t *testing.T) {
	u := UniformColor(f32.Vec3{0.1, 0.2, 0.3})
	if got := u.Uniform(); got != (f32.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("Uniform() = %v", got)
	}

	e := ElementColors([]float32{1, 0, 0, 0, 1, 0})
	if got := e.Element(1); got != (f32.Vec3{0, 1, 0}) {
		t.Errorf("Element(1) = %v, want (0, 1, 0)", got)
	}

	v, err := ColorsFromShape([]float32{
		1, 0, 0, 0, 1, 0,
		0, 0, 1, 1, 1, 1,
	}, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Vertex(1, 0, 2); got != (f32.Vec3{0, 0, 1}) {
		t.Errorf("Vertex(1, 0) = %v, want (0, 0, 1)", got)
	}

	if ElementColors(nil).Kind() != ColorNone || VertexColors(nil, 3).Kind() != ColorNone {
		t.Error("empty buffers should yield ColorNone")
	}
}

func TestColorsValidate(t *testing.T) {
	tests := []struct {
		name    string
		colors  Colors
		nelems  int
		plex    int
		wantErr bool
	}{
		{"none", NoColors(), 5, 3, false},
		{"uniform", UniformColor(f32.Vec3{}), 5, 3, false},
		{"element", ElementColors(make([]float32, 15)), 5, 3, false},
		{"element short", ElementColors(make([]float32, 12)), 5, 3, true},
		{"vertex", VertexColors(make([]float32, 45), 3), 5, 3, false},
		{"vertex unknown plex", VertexColors(make([]float32, 45), 0), 5, 3, false},
		{"vertex plex mismatch", VertexColors(make([]float32, 30), 2), 5, 3, true},
		{"vertex long", VertexColors(make([]float32, 48), 3), 5, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.colors.validate(tt.nelems, tt.plex)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrColorsShape) {
				t.Errorf("validate() error = %v, want ErrColorsShape", err)
			}
		})
	}
}

// colorSink records the last color call.
type colorSink struct {
	nopBackend
	c3 []f32.Vec3
	c4 []f32.Vec4
}

func (s *colorSink) Color3(c f32.Vec3) { s.c3 = append(s.c3, c) }
func (s *colorSink) Color4(c f32.Vec4) { s.c4 = append(s.c4, c) }

func TestSetColor(t *testing.T) {
	s := &colorSink{}
	rgb := f32.Vec3{0.5, 0.25, 1}

	SetColor(s, rgb, 1)
	SetColor(s, rgb, 0.5)
	SetColor(s, rgb, 0)

	if len(s.c3) != 1 || s.c3[0] != rgb {
		t.Errorf("Color3 calls = %v, want [%v]", s.c3, rgb)
	}
	want := []f32.Vec4{{0.5, 0.25, 1, 0.5}, {0.5, 0.25, 1, 0}}
	if len(s.c4) != len(want) {
		t.Fatalf("Color4 calls = %v, want %v", s.c4, want)
	}
	for i := range want {
		if s.c4[i] != want[i] {
			t.Errorf("Color4 call %d = %v, want %v", i, s.c4[i], want[i])
		}
	}
}

func TestColorKindString(t *testing.T) {
	if got := ColorPerVertex.String(); got != "PerVertex" {
		t.Errorf("String() = %q, want PerVertex", got)
	}
	if got := ColorKind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}
