// Package raster provides a software rendering backend for drawgl.
//
// Batches are projected orthographically onto the XY plane (Z is ignored)
// and rasterized with golang.org/x/image/vector into an *image.RGBA:
// triangles are filled with the average of their vertex colors, lines are
// drawn as thin quads and points as small squares. Colors with alpha below 1
// are composited over what was drawn before.
//
// The raster backend serves multiple purposes:
//   - Preview images of geometry without a GPU
//   - Reference output for other backends
//   - Frames presented to a GPU window through gpucontext
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/drawgl/backend/raster"
//
//	b := raster.NewBackend(800, 600, raster.WithLighting(true))
//	b.SetView(-1, -1, 1, 1)
//	d := drawgl.NewDrawer(b)
//	d.DrawTriangles(coords, normals, colors, 1)
//	b.SavePNG("output.png")
package raster
