package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Bounds returns the axis-aligned bounding box of the points in data
// (3 values per point). Empty data yields two zero vectors.
func Bounds(data []float32) (lo, hi f32.Vec3) {
	if len(data) < 3 {
		return lo, hi
	}
	lo = f32.Vec3{data[0], data[1], data[2]}
	hi = lo
	for o := 3; o+2 < len(data); o += 3 {
		for k := 0; k < 3; k++ {
			lo[k] = math32.Min(lo[k], data[o+k])
			hi[k] = math32.Max(hi[k], data[o+k])
		}
	}
	return lo, hi
}
