// Package assemble expands the vertex sequence of one batch into list
// primitives: points, line segments and triangles, given as indices into
// the batch's vertices.
package assemble

import "github.com/gogpu/drawgl"

// Points returns the vertex indices of a ModePoints batch of n vertices.
// Other modes yield nil.
func Points(mode drawgl.Mode, n int) []int {
	if mode != drawgl.ModePoints {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Lines returns the segments of a line batch of n vertices.
// Trailing vertices that do not complete a segment are dropped.
func Lines(mode drawgl.Mode, n int) [][2]int {
	var out [][2]int
	switch mode {
	case drawgl.ModeLines:
		for i := 0; i+1 < n; i += 2 {
			out = append(out, [2]int{i, i + 1})
		}
	case drawgl.ModeLineStrip, drawgl.ModeLineLoop:
		for i := 0; i+1 < n; i++ {
			out = append(out, [2]int{i, i + 1})
		}
		if mode == drawgl.ModeLineLoop && n > 2 {
			out = append(out, [2]int{n - 1, 0})
		}
	}
	return out
}

// Triangles returns the triangles of a surface batch of n vertices.
// Quads split along their first diagonal and polygons fan out from their
// first vertex, both keeping the winding order.
func Triangles(mode drawgl.Mode, n int) [][3]int {
	var out [][3]int
	switch mode {
	case drawgl.ModeTriangles:
		for i := 0; i+2 < n; i += 3 {
			out = append(out, [3]int{i, i + 1, i + 2})
		}
	case drawgl.ModeQuads:
		for i := 0; i+3 < n; i += 4 {
			out = append(out, [3]int{i, i + 1, i + 2}, [3]int{i, i + 2, i + 3})
		}
	case drawgl.ModePolygon:
		for i := 1; i+1 < n; i++ {
			out = append(out, [3]int{0, i, i + 1})
		}
	}
	return out
}

// Leftover returns the number of trailing vertices of a batch that do not
// complete a primitive of the given mode.
func Leftover(mode drawgl.Mode, n int) int {
	switch mode {
	case drawgl.ModeLines:
		return n % 2
	case drawgl.ModeTriangles:
		return n % 3
	case drawgl.ModeQuads:
		return n % 4
	case drawgl.ModeLineStrip, drawgl.ModeLineLoop:
		if n == 1 {
			return 1
		}
	case drawgl.ModePolygon:
		if n < 3 {
			return n
		}
	}
	return 0
}
