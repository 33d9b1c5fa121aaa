// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"
)

// VertexStride is the byte stride of one stored vertex. Positions are
// padded to vec4 (w = 1) so that a compute kernel can view the buffer as
// array<vec4<f32>> and address every vertex by index.
const VertexStride = 16

// Vertex is a position in normalized device coordinates.
type Vertex = f32.Vec3

// Triangle is the initial vertex data drawn by the demo.
var Triangle = []Vertex{
	{-0.5, -0.5, 0},
	{0.5, -0.5, 0},
	{0, 0.5, 0},
}

// PackVertices serializes vertices at VertexStride.
func PackVertices(vertices []Vertex) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		writeVertex(buf[i*VertexStride:], f32.Vec4{v[0], v[1], v[2], 1})
	}
	return buf
}

// UnpackVertices is the inverse of PackVertices. Trailing bytes that do not
// form a full vertex are ignored.
func UnpackVertices(data []byte) []Vertex {
	n := len(data) / VertexStride
	out := make([]Vertex, n)
	for i := range out {
		b := data[i*VertexStride:]
		out[i] = Vertex{
			math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
			math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
			math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
		}
	}
	return out
}

func writeVertex(buf []byte, v f32.Vec4) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v[3]))
}
