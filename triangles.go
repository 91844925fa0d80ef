package drawgl

// DrawTriangles draws a collection of triangles in one ModeTriangles batch.
//
// coords holds 3 points per triangle. normals, if present, holds one normal
// per triangle: shading is flat. colors may be absent, uniform, one color
// per triangle or one color per vertex. Every color submission carries
// alpha unless it is exactly 1.
//
// Per triangle the backend receives:
//
//	normals  colors      stream
//	-        -           v v v
//	n        -           N v v v
//	-        element     C v v v
//	n        element     C N v v v
//	-        vertex      C v C v C v
//	n        vertex      N C v C v C v
func (d *Drawer) DrawTriangles(coords Coords, normals Normals, colors Colors, alpha float32) error {
	return d.draw(ModeTriangles, coords, 3, normals, colors, alpha)
}
