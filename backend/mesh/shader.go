package mesh

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/drawgl"
)

// ShaderWGSL is a flat-shading shader consuming the vertex layout of
// Layout. Positions are passed through unchanged; callers transform
// coordinates before drawing or replace the shader.
const ShaderWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(@location(0) pos: vec3<f32>, @location(1) normal: vec3<f32>, @location(2) col: vec4<f32>) -> VertexOutput {
    var output: VertexOutput;
    var shade: f32 = 0.5 + 0.5 * normal.z;
    output.position = vec4<f32>(pos.x, pos.y, pos.z, 1.0);
    output.color = vec4<f32>(col.x * shade, col.y * shade, col.z * shade, col.w);
    return output;
}

@fragment
fn fs_main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`

// CompileShader compiles ShaderWGSL to SPIR-V.
func CompileShader() ([]byte, error) {
	opts := naga.DefaultOptions()
	opts.Validate = false
	spirv, err := naga.CompileWithOptions(ShaderWGSL, opts)
	if err != nil {
		return nil, fmt.Errorf("mesh: failed to compile shader: %w", err)
	}
	drawgl.Logger().Info("mesh: shader compiled", "bytes", len(spirv))
	return spirv, nil
}
