// Package mesh provides a drawgl backend that collects primitive streams
// into GPU-ready vertex data.
//
// Every batch is assembled into list topology (strips, loops, quads and
// polygons are expanded) and stored as interleaved vertices carrying the
// latched position, normal and color. The vertex layout is described with
// gputypes so the data can be uploaded as is by whoever owns the GPU device.
//
//	position  Float32x3  offset 0   @location(0)
//	normal    Float32x3  offset 12  @location(1)
//	color     Float32x4  offset 24  @location(2)
//
// A matching flat-shading WGSL shader is provided as ShaderWGSL and can be
// compiled to SPIR-V with CompileShader.
//
// Importing the package registers the "mesh" backend:
//
//	import _ "github.com/gogpu/drawgl/backend/mesh"
package mesh
