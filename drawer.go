package drawgl

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/drawgl/geom"
)

// Drawer streams batches of primitives to a Backend.
//
// Each draw call selects its emission pattern from the supplied buffers
// alone: whether normals are present and the granularity of the colors.
// A Drawer performs no allocation on its hot path unless lighting has to
// compute missing normals.
//
// A Drawer is not safe for concurrent use, and neither is the backend it
// draws to: callers must serialize draw calls against one backend.
type Drawer struct {
	backend Backend
	opts    drawerOptions
}

// NewDrawer creates a Drawer streaming to b.
func NewDrawer(b Backend, opts ...DrawerOption) *Drawer {
	o := defaultDrawerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Drawer{backend: b, opts: o}
}

// Backend returns the backend the Drawer streams to.
func (d *Drawer) Backend() Backend { return d.backend }

// pointFunc returns point j of element i.
type pointFunc func(i, j int) f32.Vec3

// batch opens a batch of the given mode, runs fn and closes the batch on
// every exit path, including a panic raised by fn.
func (d *Drawer) batch(mode Mode, fn func()) {
	d.backend.Begin(mode)
	defer d.backend.End()
	fn()
}

// emit streams nelems elements of plex points.
//
// Per element the stream is: element color, normal, then for each point
// its vertex color and the vertex itself. A uniform color is set once
// before the first batch.
func (d *Drawer) emit(mode Mode, nelems, plex int, point pointFunc, normals Normals, colors Colors, alpha float32) {
	if colors.kind == ColorUniform {
		SetColor(d.backend, colors.Uniform(), alpha)
	}
	if mode.PerElement() {
		for i := 0; i < nelems; i++ {
			d.batch(mode, func() {
				d.element(i, plex, point, normals, colors, alpha)
			})
		}
		return
	}
	d.batch(mode, func() {
		for i := 0; i < nelems; i++ {
			d.element(i, plex, point, normals, colors, alpha)
		}
	})
}

func (d *Drawer) element(i, plex int, point pointFunc, normals Normals, colors Colors, alpha float32) {
	b := d.backend
	if colors.kind == ColorPerElement {
		SetColor(b, colors.Element(i), alpha)
	}
	if normals.Present() {
		b.Normal(normals.At(i))
	}
	for j := 0; j < plex; j++ {
		if colors.kind == ColorPerVertex {
			SetColor(b, colors.Vertex(i, j, plex), alpha)
		}
		b.Vertex(point(i, j))
	}
}

// draw validates and emits a non-indexed draw. A plex of 0 accepts any
// coordinate plexitude.
func (d *Drawer) draw(mode Mode, coords Coords, plex int, normals Normals, colors Colors, alpha float32) error {
	if d.opts.validate {
		if err := coords.validate(plex); err != nil {
			return err
		}
		if err := d.check(coords.Len(), coords.Plex(), normals, colors, alpha); err != nil {
			return err
		}
	}
	n, p := coords.Len(), coords.Plex()
	if mode == ModeAuto {
		mode = ModeForPlex(p)
	}
	normals = d.lit(mode, normals, n, p, coords.At)
	d.trace(mode, n, p, normals, colors, alpha)
	d.emit(mode, n, p, coords.At, normals, colors, alpha)
	return nil
}

// drawElems validates and emits an indexed draw over a shared-vertex buffer.
func (d *Drawer) drawElems(mode Mode, vertices Coords, elems Elems, plex int, normals Normals, colors Colors, alpha float32) error {
	if d.opts.coordsOnly {
		normals, colors = Normals{}, Colors{}
	}
	if d.opts.validate {
		if err := vertices.validate(0); err != nil {
			return err
		}
		if err := elems.validate(plex, vertices.NumPoints()); err != nil {
			return err
		}
		if err := d.check(elems.Len(), elems.Plex(), normals, colors, alpha); err != nil {
			return err
		}
	}
	n, p := elems.Len(), elems.Plex()
	if mode == ModeAuto {
		mode = ModeForPlex(p)
	}
	point := func(i, j int) f32.Vec3 {
		return vertices.Point(elems.At(i, j))
	}
	if !d.opts.coordsOnly {
		normals = d.lit(mode, normals, n, p, point)
	}
	d.trace(mode, n, p, normals, colors, alpha)
	d.emit(mode, n, p, point, normals, colors, alpha)
	return nil
}

func (d *Drawer) check(nelems, plex int, normals Normals, colors Colors, alpha float32) error {
	if err := normals.validate(nelems); err != nil {
		return err
	}
	if err := colors.validate(nelems, plex); err != nil {
		return err
	}
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("%w: %v", ErrAlphaRange, alpha)
	}
	return nil
}

// lit returns normals, or computed face normals when lighting is enabled
// and the elements are drawn as filled polygons.
func (d *Drawer) lit(mode Mode, normals Normals, nelems, plex int, point pointFunc) Normals {
	if !d.opts.lighting || normals.Present() || !mode.Filled() || plex < 3 || nelems == 0 {
		return normals
	}
	data := make([]float32, 0, 3*nelems)
	pts := make([]f32.Vec3, plex)
	for i := 0; i < nelems; i++ {
		for j := range pts {
			pts[j] = point(i, j)
		}
		v := geom.PolygonNormal(pts)
		data = append(data, v[0], v[1], v[2])
	}
	return NewNormals(data)
}

func (d *Drawer) trace(mode Mode, nelems, plex int, normals Normals, colors Colors, alpha float32) {
	Logger().Debug("drawgl: draw",
		"mode", mode,
		"elems", nelems,
		"plex", plex,
		"normals", normals.Present(),
		"colors", colors.Kind(),
		"alpha", alpha)
}
