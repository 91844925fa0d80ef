package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// TriangleNormal returns the unit normal of triangle (a, b, c), following
// the counter-clockwise winding. Degenerate triangles yield the zero vector.
func TriangleNormal(a, b, c f32.Vec3) f32.Vec3 {
	return normalize(cross(sub(c, b), sub(a, b)))
}

// PolygonNormal returns the unit normal of a planar polygon using Newell's
// method, which tolerates concave and slightly non-planar outlines.
// Fewer than 3 points or a degenerate outline yield the zero vector.
func PolygonNormal(pts []f32.Vec3) f32.Vec3 {
	switch {
	case len(pts) < 3:
		return f32.Vec3{}
	case len(pts) == 3:
		return TriangleNormal(pts[0], pts[1], pts[2])
	}
	var n f32.Vec3
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		n[0] += (p[1] - q[1]) * (p[2] + q[2])
		n[1] += (p[2] - q[2]) * (p[0] + q[0])
		n[2] += (p[0] - q[0]) * (p[1] + q[1])
	}
	return normalize(n)
}

// FaceNormals computes one normal per element of a coordinate buffer holding
// elements of plex points. The result has 3 values per element.
func FaceNormals(data []float32, plex int) []float32 {
	if plex <= 0 {
		return nil
	}
	n := len(data) / (plex * 3)
	out := make([]float32, 0, 3*n)
	pts := make([]f32.Vec3, plex)
	for i := 0; i < n; i++ {
		for j := range pts {
			o := (i*plex + j) * 3
			pts[j] = f32.Vec3{data[o], data[o+1], data[o+2]}
		}
		v := PolygonNormal(pts)
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Length returns the Euclidean length of v.
func Length(v f32.Vec3) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func sub(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v f32.Vec3) f32.Vec3 {
	l := Length(v)
	if l == 0 {
		return f32.Vec3{}
	}
	return f32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}
