package drawgl

// DrawLines draws a collection of line segments in one ModeLines batch.
//
// coords holds 2 points per segment. colors may be absent, uniform, one
// color per segment (held for both endpoints) or one color per endpoint.
// Line colors are always opaque.
func (d *Drawer) DrawLines(coords Coords, colors Colors) error {
	return d.draw(ModeLines, coords, 2, Normals{}, colors, 1)
}
