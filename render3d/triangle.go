// seehuhn.de/go/termgl - a software rasterizer for ANSI terminals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render3d

import "seehuhn.de/go/termgl/linalg"

// Vertex is a corner of a mesh triangle.
type Vertex struct {
	Pos  linalg.Vec3
	U, V uint8
}

// Triangle is a mesh triangle in model coordinates.
type Triangle [3]Vertex

// ClipVertex is a triangle corner in homogeneous clip coordinates.
type ClipVertex struct {
	Pos  linalg.Vec4
	U, V uint8
}

// ClipTriangle is a triangle in homogeneous clip coordinates.
type ClipTriangle [3]ClipVertex

// VertexShader maps model coordinates to clip coordinates.
type VertexShader interface {
	Vertex(p linalg.Vec3) linalg.Vec4
}

// VertexShaderFunc adapts an ordinary function to the [VertexShader]
// interface.
type VertexShaderFunc func(p linalg.Vec3) linalg.Vec4

// Vertex calls f(p).
func (f VertexShaderFunc) Vertex(p linalg.Vec3) linalg.Vec4 {
	return f(p)
}

// MVP is the standard vertex shader. It applies the model transform
// followed by the projection. A nil Model is treated as the identity.
type MVP struct {
	Model      *Transform
	Projection linalg.Mat4
}

// Vertex implements the [VertexShader] interface.
func (s MVP) Vertex(p linalg.Vec3) linalg.Vec4 {
	if s.Model != nil {
		p = s.Model.Apply(p)
	}
	return s.Projection.MulVec(p)
}

// Cube returns the 12 triangles of the unit cube centred at the origin.
// Each face carries the full range of texture coordinates.
//
// Seen from outside, and projected with [Camera], every triangle is wound
// counter-clockwise on the canvas, so that back-face culling with default
// settings removes the hidden faces.
func Cube() []Triangle {
	const h = 0.5
	faces := [6][4]linalg.Vec3{
		{{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}},
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},
		{{-h, -h, -h}, {-h, h, -h}, {-h, h, h}, {-h, -h, h}},
		{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}},
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}},
		{{-h, h, -h}, {h, h, -h}, {h, h, h}, {-h, h, h}},
	}
	uv := [4][2]uint8{{0, 0}, {255, 0}, {255, 255}, {0, 255}}

	res := make([]Triangle, 0, 12)
	for _, f := range faces {
		var corners [4]Vertex
		for i, p := range f {
			corners[i] = Vertex{Pos: p, U: uv[i][0], V: uv[i][1]}
		}

		// The camera looks along +z with y up, so a face appears
		// counter-clockwise iff its right-handed normal points inwards.
		outward := f[0].Add(f[2]).Mul(0.5)
		n := f[1].Sub(f[0]).Cross(f[2].Sub(f[0]))
		if n.Dot(outward) > 0 {
			corners[1], corners[3] = corners[3], corners[1]
		}

		res = append(res,
			Triangle{corners[0], corners[1], corners[2]},
			Triangle{corners[0], corners[2], corners[3]},
		)
	}
	return res
}
