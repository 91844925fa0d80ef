// Package drawgl streams batches of geometry to an immediate-mode graphics
// backend.
//
// # Overview
//
// Callers hand drawgl flat float32 coordinate buffers, optionally with
// per-element normals, colors of varying granularity and index buffers.
// drawgl picks the emission pattern from the buffers alone and streams
// Begin / Normal / Color / Vertex / End calls to a [Backend].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/drawgl"
//	    "github.com/gogpu/drawgl/backend/raster"
//	)
//
//	b := raster.NewBackend(512, 512)
//	d := drawgl.NewDrawer(b)
//
//	tri := drawgl.NewCoords([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, 3)
//	red := drawgl.ElementColors([]float32{1, 0, 0})
//	if err := d.DrawTriangles(tri, drawgl.Normals{}, red, 0.5); err != nil {
//	    log.Fatal(err)
//	}
//	b.SavePNG("tri.png")
//
// # Color Granularity
//
// A color buffer is resolved once, at the call boundary, into a [Colors]
// value of one of four kinds: none, uniform, per element or per vertex.
// [ColorsFromShape] infers the kind from the rank of a raw buffer, so array
// based callers can keep passing shaped arrays.
//
// # Validation
//
// By default every draw call validates its buffers and returns an error
// before touching the backend. [WithValidation] turns this off for callers
// that guarantee well-formed input.
//
// # Backends
//
//   - recording: captures the call stream as typed commands (tests, replay)
//   - backend/mesh: builds GPU-ready interleaved vertex and index buffers
//   - backend/raster: software rasterizer producing images
//
// Backends register themselves by name on import; see [Register] and
// [NewBackend].
package drawgl
