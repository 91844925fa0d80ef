package mesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Vertex is one interleaved vertex.
type Vertex struct {
	Position f32.Vec3
	Normal   f32.Vec3
	Color    f32.Vec4
}

// VertexStride is the size of an encoded Vertex in bytes.
const VertexStride = 40

// Layout returns the vertex buffer layout of encoded vertices.
func Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
		},
	}
}

// VertexState returns the vertex stage description for a pipeline built
// from the compiled shader module.
func VertexState(module uintptr) gputypes.VertexState {
	return gputypes.VertexState{
		Module:     module,
		EntryPoint: "vs_main",
		Buffers:    []gputypes.VertexBufferLayout{Layout()},
	}
}

// Encode returns vs as little-endian bytes laid out as described by Layout.
func Encode(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	o := 0
	put := func(x float32) {
		binary.LittleEndian.PutUint32(buf[o:], math.Float32bits(x))
		o += 4
	}
	for _, v := range vs {
		put(v.Position[0])
		put(v.Position[1])
		put(v.Position[2])
		put(v.Normal[0])
		put(v.Normal[1])
		put(v.Normal[2])
		put(v.Color[0])
		put(v.Color[1])
		put(v.Color[2])
		put(v.Color[3])
	}
	return buf
}

// Indexed deduplicates vs into unique vertices and an index list that
// reproduces vs. The index format is the smallest that can address all
// unique vertices.
func Indexed(vs []Vertex) (unique []Vertex, indices []uint32, format gputypes.IndexFormat) {
	seen := make(map[Vertex]uint32, len(vs))
	indices = make([]uint32, 0, len(vs))
	for _, v := range vs {
		k, ok := seen[v]
		if !ok {
			k = uint32(len(unique))
			seen[v] = k
			unique = append(unique, v)
		}
		indices = append(indices, k)
	}
	format = gputypes.IndexFormatUint32
	if len(unique) <= math.MaxUint16 {
		format = gputypes.IndexFormatUint16
	}
	return unique, indices, format
}

// EncodeIndices returns indices as little-endian bytes in the given format.
// The buffer is padded to a multiple of 4 bytes as required for copies.
func EncodeIndices(indices []uint32, format gputypes.IndexFormat) []byte {
	size := int(format.Size())
	if size == 0 {
		return nil
	}
	n := len(indices) * size
	buf := make([]byte, (n+3)&^3)
	for i, v := range indices {
		switch format {
		case gputypes.IndexFormatUint16:
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
		default:
			binary.LittleEndian.PutUint32(buf[i*4:], v)
		}
	}
	return buf
}
