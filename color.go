package drawgl

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// ColorKind identifies the granularity of a color buffer.
type ColorKind uint8

const (
	// ColorNone leaves the backend's current color untouched.
	ColorNone ColorKind = iota
	// ColorUniform applies one RGB value to the whole draw call.
	ColorUniform
	// ColorPerElement applies one RGB value per element, held for all
	// of its vertices.
	ColorPerElement
	// ColorPerVertex applies one RGB value per vertex of each element.
	ColorPerVertex
)

var colorKindNames = [...]string{
	ColorNone:       "None",
	ColorUniform:    "Uniform",
	ColorPerElement: "PerElement",
	ColorPerVertex:  "PerVertex",
}

// String returns the kind name.
func (k ColorKind) String() string {
	if int(k) < len(colorKindNames) {
		return colorKindNames[k]
	}
	return "Unknown"
}

// Colors is a color specification resolved once at the call boundary.
// The zero value is ColorNone.
type Colors struct {
	kind ColorKind
	data []float32
	plex int // points per element for ColorPerVertex, 0 if not known
}

// NoColors returns the absent color specification.
func NoColors() Colors { return Colors{} }

// UniformColor returns a specification applying rgb to every element.
func UniformColor(rgb f32.Vec3) Colors {
	return Colors{kind: ColorUniform, data: []float32{rgb[0], rgb[1], rgb[2]}}
}

// ElementColors returns a per-element specification over data,
// one RGB triple per element. Empty data yields NoColors.
func ElementColors(data []float32) Colors {
	if len(data) == 0 {
		return Colors{}
	}
	return Colors{kind: ColorPerElement, data: data}
}

// VertexColors returns a per-vertex specification over data, plex RGB
// triples per element. Empty data yields NoColors.
func VertexColors(data []float32, plex int) Colors {
	if len(data) == 0 {
		return Colors{}
	}
	return Colors{kind: ColorPerVertex, data: data, plex: plex}
}

// ColorsFromShape builds a specification from a raw buffer and its shape,
// inferring the granularity from the rank:
//
//	rank 0 or empty data    ColorNone
//	[3]                     ColorUniform
//	[nelems, 3]             ColorPerElement
//	[nelems, nplex, 3]      ColorPerVertex
//
// The last dimension must be 3 and the shape must cover data exactly.
func ColorsFromShape(data []float32, shape ...int) (Colors, error) {
	if len(shape) == 0 || len(data) == 0 {
		return Colors{}, nil
	}
	size := 1
	for _, d := range shape {
		size *= d
	}
	if shape[len(shape)-1] != 3 || size != len(data) {
		return Colors{}, fmt.Errorf("%w: shape %v for %d values", ErrColorsShape, shape, len(data))
	}
	switch len(shape) {
	case 1:
		return UniformColor(f32.Vec3{data[0], data[1], data[2]}), nil
	case 2:
		return ElementColors(data), nil
	case 3:
		return VertexColors(data, shape[1]), nil
	default:
		return Colors{}, fmt.Errorf("%w: rank %d", ErrColorsShape, len(shape))
	}
}

// Kind returns the granularity of the specification.
func (c Colors) Kind() ColorKind { return c.kind }

// Uniform returns the single color of a ColorUniform specification.
func (c Colors) Uniform() f32.Vec3 { return c.rgb(0) }

// Element returns the color of element i of a ColorPerElement specification.
func (c Colors) Element(i int) f32.Vec3 { return c.rgb(i) }

// Vertex returns the color of point j of element i for a ColorPerVertex
// specification over elements of plex points.
func (c Colors) Vertex(i, j, plex int) f32.Vec3 { return c.rgb(i*plex + j) }

func (c Colors) rgb(k int) f32.Vec3 {
	o := 3 * k
	return f32.Vec3{c.data[o], c.data[o+1], c.data[o+2]}
}

func (c Colors) validate(nelems, plex int) error {
	var want int
	switch c.kind {
	case ColorNone:
		return nil
	case ColorUniform:
		want = 3
	case ColorPerElement:
		want = 3 * nelems
	case ColorPerVertex:
		if c.plex != 0 && c.plex != plex {
			return fmt.Errorf("%w: %d colors per element, want %d", ErrColorsShape, c.plex, plex)
		}
		want = 3 * plex * nelems
	}
	if len(c.data) != want {
		return fmt.Errorf("%w: %s colors with %d values, want %d", ErrColorsShape, c.kind, len(c.data), want)
	}
	return nil
}

// SetColor sets the current backend color to rgb with the given alpha.
// An alpha of exactly 1 submits an opaque 3-component color; any other
// value submits a 4-component color carrying the alpha.
func SetColor(b Backend, rgb f32.Vec3, alpha float32) {
	if alpha == 1 {
		b.Color3(rgb)
		return
	}
	b.Color4(f32.Vec4{rgb[0], rgb[1], rgb[2], alpha})
}
