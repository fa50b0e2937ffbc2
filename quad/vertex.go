package quad

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex and instance strides in bytes.
const (
	VertexStride   = 32
	InstanceStride = 48
)

// IndexFormat is the format of Batch.IndexBytes.
const IndexFormat = gputypes.IndexFormatUint32

// Vertex is one corner of a glyph quad. Color is straight-alpha RGBA in
// 0.0 to 1.0.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color [4]float32
}

// Batch holds the triangles of every quad sampling one atlas texture.
type Batch struct {
	Texture  int
	Vertices []Vertex
	Indices  []uint32
}

// Len returns the number of quads in the batch.
func (b *Batch) Len() int { return len(b.Vertices) / 4 }

// add appends q as the corners TR, TL, BR, BL and the triangles
// (TR, TL, BR) and (BR, TL, BL).
func (b *Batch) add(q Quad) {
	c := floatColor(vertexColor(q))
	x1, x2 := float32(q.Pos.X.Lo), float32(q.Pos.X.Hi)
	y1, y2 := float32(q.Pos.Y.Lo), float32(q.Pos.Y.Hi)
	u1, u2 := float32(q.UV.X.Lo), float32(q.UV.X.Hi)
	v1, v2 := float32(q.UV.Y.Lo), float32(q.UV.Y.Hi)

	base := uint32(len(b.Vertices)) //nolint:gosec // bounded by glyph count
	b.Vertices = append(b.Vertices,
		Vertex{X: x2, Y: y1, U: u2, V: v1, Color: c},
		Vertex{X: x1, Y: y1, U: u1, V: v1, Color: c},
		Vertex{X: x2, Y: y2, U: u2, V: v2, Color: c},
		Vertex{X: x1, Y: y2, U: u1, V: v2, Color: c},
	)
	b.Indices = append(b.Indices,
		base+0, base+1, base+2,
		base+2, base+1, base+3,
	)
}

// VertexBytes serializes the vertices for GPU upload, VertexStride bytes
// each, matching VertexLayout.
func (b *Batch) VertexBytes() []byte {
	if len(b.Vertices) == 0 {
		return nil
	}
	data := make([]byte, len(b.Vertices)*VertexStride)
	for i, v := range b.Vertices {
		putFloats(data[i*VertexStride:], v.X, v.Y, v.U, v.V, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return data
}

// IndexBytes serializes the indices as little-endian uint32.
func (b *Batch) IndexBytes() []byte {
	data := make([]byte, len(b.Indices)*4)
	for i, idx := range b.Indices {
		binary.LittleEndian.PutUint32(data[i*4:], idx)
	}
	return data
}

// VertexLayout returns the vertex buffer layout of Batch.VertexBytes:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
//	location 2: color (vec4<f32>)
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
			},
		},
	}
}

// InstanceLayout returns the per-instance buffer layout of InstanceBytes:
//
//	location 0: position (vec2<f32>)
//	location 1: size (vec2<f32>)
//	location 2: tex_coords (vec4<f32>, x1 y1 x2 y2)
//	location 3: color (vec4<f32>)
func InstanceLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: InstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
				{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},
			},
		},
	}
}

// InstanceBytes serializes instances for GPU upload, matching
// InstanceLayout.
func InstanceBytes(instances []Instance) []byte {
	if len(instances) == 0 {
		return nil
	}
	data := make([]byte, len(instances)*InstanceStride)
	for i, in := range instances {
		c := floatColor(in.Color)
		putFloats(data[i*InstanceStride:],
			float32(in.Pos.X), float32(in.Pos.Y),
			float32(in.Size.X), float32(in.Size.Y),
			float32(in.TexCoords.X.Lo), float32(in.TexCoords.Y.Lo),
			float32(in.TexCoords.X.Hi), float32(in.TexCoords.Y.Hi),
			c[0], c[1], c[2], c[3],
		)
	}
	return data
}

func putFloats(buf []byte, vals ...float32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

func floatColor(c color.NRGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
