package mesh

import (
	"log/slog"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/drawgl"
	"github.com/gogpu/drawgl/internal/assemble"
)

func init() {
	drawgl.Register("mesh", func() drawgl.Backend {
		return NewBackend()
	})
}

// Batch is one closed batch, assembled into list topology.
type Batch struct {
	// Mode is the mode the batch was opened with.
	Mode drawgl.Mode
	// Topology is the list topology of Vertices.
	Topology gputypes.PrimitiveTopology
	// Vertices holds 1, 2 or 3 vertices per primitive.
	Vertices []Vertex
}

// PrimitiveState returns the pipeline primitive state for drawing b.
// Faces are not culled: flat-shaded input has no reliable winding.
func (b Batch) PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  b.Topology,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
}

// Backend collects primitive streams into batches of interleaved vertices.
// It implements drawgl.Backend.
//
// The Backend is not safe for concurrent use.
type Backend struct {
	normal  f32.Vec3
	color   f32.Vec4
	mode    drawgl.Mode
	pending []Vertex
	batches []Batch
	logger  *slog.Logger
}

var _ drawgl.Backend = (*Backend)(nil)

// NewBackend creates an empty mesh backend with normal (0, 0, 1) and
// opaque white as current state.
func NewBackend() *Backend {
	return &Backend{
		normal: f32.Vec3{0, 0, 1},
		color:  f32.Vec4{1, 1, 1, 1},
		logger: drawgl.Logger(),
	}
}

// SetLogger sets the logger used to report dropped primitives.
func (b *Backend) SetLogger(l *slog.Logger) {
	if l == nil {
		l = drawgl.Logger()
	}
	b.logger = l
}

// Begin implements drawgl.Backend.
func (b *Backend) Begin(mode drawgl.Mode) {
	b.mode = mode
	b.pending = b.pending[:0]
}

// Vertex implements drawgl.Backend.
func (b *Backend) Vertex(v f32.Vec3) {
	b.pending = append(b.pending, Vertex{Position: v, Normal: b.normal, Color: b.color})
}

// Normal implements drawgl.Backend.
func (b *Backend) Normal(n f32.Vec3) { b.normal = n }

// Color3 implements drawgl.Backend.
func (b *Backend) Color3(c f32.Vec3) { b.color = f32.Vec4{c[0], c[1], c[2], 1} }

// Color4 implements drawgl.Backend.
func (b *Backend) Color4(c f32.Vec4) { b.color = c }

// End implements drawgl.Backend. The pending vertices are assembled into
// list primitives; a batch yielding no primitive is discarded.
func (b *Backend) End() {
	n := len(b.pending)
	if left := assemble.Leftover(b.mode, n); left > 0 {
		b.logger.Warn("mesh: incomplete primitive dropped", "mode", b.mode, "vertices", left)
	}

	var out []Vertex
	switch b.mode.Topology() {
	case gputypes.PrimitiveTopologyPointList:
		for _, i := range assemble.Points(b.mode, n) {
			out = append(out, b.pending[i])
		}
	case gputypes.PrimitiveTopologyLineList:
		for _, l := range assemble.Lines(b.mode, n) {
			out = append(out, b.pending[l[0]], b.pending[l[1]])
		}
	default:
		for _, t := range assemble.Triangles(b.mode, n) {
			out = append(out, b.pending[t[0]], b.pending[t[1]], b.pending[t[2]])
		}
	}
	b.pending = b.pending[:0]
	if len(out) == 0 {
		return
	}
	b.batches = append(b.batches, Batch{Mode: b.mode, Topology: b.mode.Topology(), Vertices: out})
}

// Batches returns the closed batches in drawing order.
func (b *Backend) Batches() []Batch {
	return b.batches
}

// Vertices returns the vertices of all batches with the given topology,
// concatenated in drawing order.
func (b *Backend) Vertices(topology gputypes.PrimitiveTopology) []Vertex {
	var out []Vertex
	for _, bt := range b.batches {
		if bt.Topology == topology {
			out = append(out, bt.Vertices...)
		}
	}
	return out
}

// Reset discards all batches. The current normal and color are kept.
func (b *Backend) Reset() {
	b.batches = b.batches[:0]
	b.pending = b.pending[:0]
}
