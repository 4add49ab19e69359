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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/linalg"
)

// Pipeline draws 3D triangles onto a canvas. Face culling is controlled by
// the [termgl.CullFace], [termgl.Clockwise] and [termgl.CullFront]
// capabilities of the canvas.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	Canvas *termgl.Canvas

	// Stats counts the triangles processed. Assign Stats{} to reset.
	Stats Stats

	// scratch lists for clipping
	work, next []ClipTriangle
}

// Stats records what happened to the triangles passed to a Pipeline.
type Stats struct {
	Submitted int // triangles passed to Draw
	Clipped   int // triangles completely outside the view frustum
	Culled    int // clipped triangles removed by face culling
	Drawn     int // triangles passed to the canvas
}

// NewPipeline returns a pipeline which draws onto c.
func NewPipeline(c *termgl.Canvas) *Pipeline {
	return &Pipeline{Canvas: c}
}

// Draw renders one triangle. The corners are mapped to clip space by vs,
// clipped against [FrustumPlanes], divided by w and mapped to the canvas.
// Each resulting triangle which survives face culling is drawn with the
// shader sh, filled if fill is true and as an outline otherwise. The
// depth of each corner is its z coordinate after the perspective divide.
func (p *Pipeline) Draw(tri Triangle, vs VertexShader, sh termgl.Shader, fill bool) {
	p.Stats.Submitted++

	var ct ClipTriangle
	for i, v := range tri {
		ct[i] = ClipVertex{Pos: vs.Vertex(v.Pos), U: v.U, V: v.V}
	}

	p.work = append(p.work[:0], ct)
	for _, pl := range FrustumPlanes {
		p.next = p.next[:0]
		for _, t := range p.work {
			out, n := pl.Clip(t)
			p.next = append(p.next, out[:n]...)
		}
		p.work, p.next = p.next, p.work
	}
	if len(p.work) == 0 {
		p.Stats.Clipped++
		return
	}

	c := p.Canvas
	w, h := float64(c.Width()), float64(c.Height())
	viewport := matrix.Matrix{w / 2, 0, 0, -h / 2, w / 2, h / 2}
	cull := c.Enabled(termgl.CullFace)
	frontNegative := c.Enabled(termgl.Clockwise) != c.Enabled(termgl.CullFront)

	for _, t := range p.work {
		var ndc [3]linalg.Vec3
		for i, v := range t {
			ndc[i] = linalg.Divide(v.Pos)
		}

		if cull {
			a := vec.Vec2{X: ndc[0].X, Y: ndc[0].Y}
			ab := vec.Vec2{X: ndc[1].X, Y: ndc[1].Y}.Sub(a)
			ac := vec.Vec2{X: ndc[2].X, Y: ndc[2].Y}.Sub(a)
			area := ab.X*ac.Y - ab.Y*ac.X
			if area == 0 || (area > 0) == frontNegative {
				p.Stats.Culled++
				continue
			}
		}

		var sv [3]termgl.Vertex
		for i, q := range ndc {
			sv[i] = termgl.Vertex{
				X: int(viewport[0]*q.X + viewport[2]*q.Y + viewport[4]),
				Y: int(viewport[1]*q.X + viewport[3]*q.Y + viewport[5]),
				Z: q.Z,
				U: t[i].U,
				V: t[i].V,
			}
		}
		if fill {
			c.FillTriangle(sv[0], sv[1], sv[2], sh)
		} else {
			c.Triangle(sv[0], sv[1], sv[2], sh)
		}
		p.Stats.Drawn++
	}
}

// DrawMesh renders all triangles of a mesh.
func (p *Pipeline) DrawMesh(mesh []Triangle, vs VertexShader, sh termgl.Shader, fill bool) {
	for _, tri := range mesh {
		p.Draw(tri, vs, sh, fill)
	}
}
