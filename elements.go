package drawgl

// DrawTriangleElements draws triangles defined by index triplets into a
// shared-vertex buffer, in one ModeTriangles batch.
//
// vertices is a point buffer and elems holds 3 indices per triangle.
// normals and colors are keyed by triangle, not by shared vertex, and are
// applied with the same rules as DrawTriangles. A Drawer created with
// WithCoordinateOnlyElements ignores them.
func (d *Drawer) DrawTriangleElements(vertices Coords, elems Elems, normals Normals, colors Colors, alpha float32) error {
	return d.drawElems(ModeTriangles, vertices, elems, 3, normals, colors, alpha)
}

// DrawPolygonElements draws elements of any plexitude defined by indices
// into a shared-vertex buffer. ModeAuto selects the mode from the element
// plexitude.
func (d *Drawer) DrawPolygonElements(vertices Coords, elems Elems, normals Normals, colors Colors, alpha float32, mode Mode) error {
	return d.drawElems(mode, vertices, elems, 0, normals, colors, alpha)
}
