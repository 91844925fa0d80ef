package drawgl

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Backend is the primitive-stream interface the emitters draw to.
// It mirrors the immediate-mode vertex submission of fixed-function OpenGL:
// a batch is opened with Begin, filled with Vertex calls (each vertex latches
// the current normal and color), and closed with End.
//
// Normal, Color3 and Color4 set persistent state. They may be called both
// inside and outside a batch.
//
// # Implementation Contract
//
// Each backend must:
//  1. Accept calls in strict sequence without being queried for state
//  2. Treat all calls as infallible; errors surface through backend-specific
//     accessors, never through these methods
//  3. Start with normal (0, 0, 1) and opaque white as current state
//
// Batches never nest. The Drawer guarantees a matching End for every Begin.
type Backend interface {
	// Begin opens a batch of primitives of the given mode.
	Begin(mode Mode)

	// Vertex submits one vertex with the current normal and color.
	Vertex(v f32.Vec3)

	// Normal sets the current normal.
	Normal(n f32.Vec3)

	// Color3 sets the current color to an opaque RGB value.
	Color3(c f32.Vec3)

	// Color4 sets the current color to an RGBA value.
	Color4(c f32.Vec4)

	// End closes the current batch.
	End()
}

// Namer is implemented by backends that support selection picking.
// Names bracket the batches of a pick pass so hits can be mapped back to
// element numbers.
type Namer interface {
	PushName(name uint32)
	PopName()
}

// Mode is the primitive kind of a batch.
type Mode uint8

const (
	// ModeAuto selects the mode from the element plexitude, see ModeForPlex.
	ModeAuto Mode = iota
	ModePoints
	ModeLines
	ModeLineStrip
	ModeLineLoop
	ModeTriangles
	ModeQuads
	ModePolygon
)

var modeNames = [...]string{
	ModeAuto:      "Auto",
	ModePoints:    "Points",
	ModeLines:     "Lines",
	ModeLineStrip: "LineStrip",
	ModeLineLoop:  "LineLoop",
	ModeTriangles: "Triangles",
	ModeQuads:     "Quads",
	ModePolygon:   "Polygon",
}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// ModeForPlex returns the natural mode for elements with plex points:
// 1 points, 2 lines, 3 triangles, 4 quads and polygons beyond that.
func ModeForPlex(plex int) Mode {
	switch {
	case plex <= 1:
		return ModePoints
	case plex == 2:
		return ModeLines
	case plex == 3:
		return ModeTriangles
	case plex == 4:
		return ModeQuads
	default:
		return ModePolygon
	}
}

// PerElement reports whether each element must be drawn in its own batch.
// Strips, loops and polygons connect every vertex of a batch, so several
// elements cannot share one.
func (m Mode) PerElement() bool {
	return m == ModeLineStrip || m == ModeLineLoop || m == ModePolygon
}

// Filled reports whether batches of this mode cover an area.
func (m Mode) Filled() bool {
	return m == ModeTriangles || m == ModeQuads || m == ModePolygon
}

// Topology returns the list topology a batch of this mode assembles into.
// Strips, loops, quads and polygons are expanded to lists by the consumer.
func (m Mode) Topology() gputypes.PrimitiveTopology {
	switch m {
	case ModePoints:
		return gputypes.PrimitiveTopologyPointList
	case ModeLines, ModeLineStrip, ModeLineLoop:
		return gputypes.PrimitiveTopologyLineList
	default:
		return gputypes.PrimitiveTopologyTriangleList
	}
}
