package drawgl

import "golang.org/x/image/math/f32"

// DrawPoints draws a collection of points in one ModePoints batch.
// colors may be absent, uniform or one color per point.
func (d *Drawer) DrawPoints(points Coords, colors Colors, alpha float32) error {
	return d.draw(ModePoints, points, 1, Normals{}, colors, alpha)
}

// DrawPolygons draws elements of any plexitude.
//
// ModeAuto selects the mode from the plexitude of coords (see ModeForPlex).
// Other modes draw the same points differently, for example ModeLineLoop
// draws the outline of each element. Strip, loop and polygon modes draw
// each element in its own batch.
func (d *Drawer) DrawPolygons(coords Coords, normals Normals, colors Colors, alpha float32, mode Mode) error {
	return d.draw(mode, coords, 0, normals, colors, alpha)
}

// PickPolygons mimics DrawPolygons for selection: every element is drawn
// coordinates only, in its own batch, bracketed by PushName(i) and PopName.
// The backend must implement Namer.
func (d *Drawer) PickPolygons(coords Coords, mode Mode) error {
	namer, ok := d.backend.(Namer)
	if !ok {
		return ErrPickingUnsupported
	}
	if d.opts.validate {
		if err := coords.validate(0); err != nil {
			return err
		}
	}
	d.pick(namer, mode, coords.Len(), coords.Plex(), coords.At)
	return nil
}

// PickPolygonElements is the indexed form of PickPolygons.
func (d *Drawer) PickPolygonElements(vertices Coords, elems Elems, mode Mode) error {
	namer, ok := d.backend.(Namer)
	if !ok {
		return ErrPickingUnsupported
	}
	if d.opts.validate {
		if err := vertices.validate(0); err != nil {
			return err
		}
		if err := elems.validate(0, vertices.NumPoints()); err != nil {
			return err
		}
	}
	d.pick(namer, mode, elems.Len(), elems.Plex(), func(i, j int) f32.Vec3 {
		return vertices.Point(elems.At(i, j))
	})
	return nil
}

func (d *Drawer) pick(namer Namer, mode Mode, nelems, plex int, point pointFunc) {
	if mode == ModeAuto {
		mode = ModeForPlex(plex)
	}
	Logger().Debug("drawgl: pick", "mode", mode, "elems", nelems, "plex", plex)
	for i := 0; i < nelems; i++ {
		namer.PushName(uint32(i))
		d.batch(mode, func() {
			for j := 0; j < plex; j++ {
				d.backend.Vertex(point(i, j))
			}
		})
		namer.PopName()
	}
}
