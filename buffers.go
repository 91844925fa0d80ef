package drawgl

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Coords is a read-only view over a caller-owned coordinate buffer.
// The buffer holds Len elements of Plex points with 3 components each,
// stored row-major and contiguous. A shared-vertex buffer is a Coords
// with plex 1.
type Coords struct {
	data []float32
	plex int
}

// NewCoords returns a view over data grouped in elements of plex points.
// The data is not copied.
func NewCoords(data []float32, plex int) Coords {
	return Coords{data: data, plex: plex}
}

// NewPoints returns a view over a flat list of points (plex 1).
func NewPoints(data []float32) Coords {
	return Coords{data: data, plex: 1}
}

// Data returns the underlying buffer.
func (c Coords) Data() []float32 { return c.data }

// Plex returns the number of points per element.
func (c Coords) Plex() int { return c.plex }

// Len returns the number of elements.
func (c Coords) Len() int {
	if c.plex <= 0 {
		return 0
	}
	return len(c.data) / (c.plex * 3)
}

// NumPoints returns the total number of points in the buffer.
func (c Coords) NumPoints() int { return len(c.data) / 3 }

// Point returns the k-th point of the buffer, counting across elements.
func (c Coords) Point(k int) f32.Vec3 {
	o := 3 * k
	return f32.Vec3{c.data[o], c.data[o+1], c.data[o+2]}
}

// At returns point j of element i.
func (c Coords) At(i, j int) f32.Vec3 {
	return c.Point(i*c.plex + j)
}

// String returns a short description of the buffer shape.
func (c Coords) String() string {
	return fmt.Sprintf("Coords(%d x %d)", c.Len(), c.plex)
}

func (c Coords) validate(plex int) error {
	if c.plex <= 0 {
		return fmt.Errorf("%w: plex %d", ErrCoordsShape, c.plex)
	}
	if plex > 0 && c.plex != plex {
		return fmt.Errorf("%w: plex %d, want %d", ErrCoordsShape, c.plex, plex)
	}
	if len(c.data)%(c.plex*3) != 0 {
		return fmt.Errorf("%w: %d values is not a multiple of %d", ErrCoordsShape, len(c.data), c.plex*3)
	}
	return nil
}

// Elems is a read-only view over a caller-owned connectivity buffer:
// Len elements, each naming Plex positions in a shared-vertex Coords.
type Elems struct {
	data []int32
	plex int
}

// NewElems returns a view over data grouped in elements of plex indices.
func NewElems(data []int32, plex int) Elems {
	return Elems{data: data, plex: plex}
}

// Data returns the underlying buffer.
func (e Elems) Data() []int32 { return e.data }

// Plex returns the number of indices per element.
func (e Elems) Plex() int { return e.plex }

// Len returns the number of elements.
func (e Elems) Len() int {
	if e.plex <= 0 {
		return 0
	}
	return len(e.data) / e.plex
}

// At returns index j of element i.
func (e Elems) At(i, j int) int {
	return int(e.data[i*e.plex+j])
}

func (e Elems) validate(plex, npts int) error {
	if e.plex <= 0 {
		return fmt.Errorf("%w: plex %d", ErrElemsShape, e.plex)
	}
	if plex > 0 && e.plex != plex {
		return fmt.Errorf("%w: plex %d, want %d", ErrElemsShape, e.plex, plex)
	}
	if len(e.data)%e.plex != 0 {
		return fmt.Errorf("%w: %d values is not a multiple of %d", ErrElemsShape, len(e.data), e.plex)
	}
	for k, v := range e.data {
		if v < 0 || int(v) >= npts {
			return fmt.Errorf("%w: element %d refers to point %d of %d", ErrIndexRange, k/e.plex, v, npts)
		}
	}
	return nil
}

// Normals is a read-only view over one normal vector per element.
// An empty buffer means no normals were supplied.
type Normals struct {
	data []float32
}

// NewNormals returns a view over data, 3 components per element.
func NewNormals(data []float32) Normals {
	return Normals{data: data}
}

// Present reports whether any normals were supplied.
func (n Normals) Present() bool { return len(n.data) > 0 }

// Len returns the number of normals.
func (n Normals) Len() int { return len(n.data) / 3 }

// At returns the normal of element i.
func (n Normals) At(i int) f32.Vec3 {
	o := 3 * i
	return f32.Vec3{n.data[o], n.data[o+1], n.data[o+2]}
}

func (n Normals) validate(nelems int) error {
	if !n.Present() {
		return nil
	}
	if len(n.data) != 3*nelems {
		return fmt.Errorf("%w: %d values, want %d", ErrNormalsShape, len(n.data), 3*nelems)
	}
	return nil
}
