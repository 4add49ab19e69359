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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/render3d"
)

// Render draws the scene onto a new canvas of the scene's size.
func Render(tc TestCase) (*termgl.Canvas, error) {
	c, err := termgl.New(tc.Width, tc.Height, termgl.WithCapabilities(tc.Caps))
	if err != nil {
		return nil, err
	}
	Draw(c, tc)
	return c, nil
}

// Draw applies the operations of the scene to c.
func Draw(c *termgl.Canvas, tc TestCase) {
	var pipe *render3d.Pipeline
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case Line:
			c.Line(op.From, op.To, op.Shader)
		case Triangle:
			if op.Outline {
				c.Triangle(op.V[0], op.V[1], op.V[2], op.Shader)
			} else {
				c.FillTriangle(op.V[0], op.V[1], op.V[2], op.Shader)
			}
		case Fill:
			c.CTM = matrix.Identity
			if op.CTM != (matrix.Matrix{}) {
				c.CTM = op.CTM
			}
			c.PathDepth = op.Depth
			c.FillPath(op.Path, op.Rule, op.Shader)
		case Text:
			c.PutString(op.X, op.Y, op.S, op.Color)
		case Mesh:
			if pipe == nil {
				pipe = render3d.NewPipeline(c)
			}
			scale := op.Scale
			if scale == 0 {
				scale = 1
			}
			model := render3d.NewTransform()
			model.SetScale(scale, scale, scale)
			model.SetRotate(op.Rotate.X, op.Rotate.Y, op.Rotate.Z)
			model.SetTranslate(op.Translate.X, op.Translate.Y, op.Translate.Z)
			model.Update()
			vs := render3d.MVP{
				Model:      model,
				Projection: render3d.Camera(tc.Width, tc.Height, math.Pi/3, 0.1, 100),
			}
			pipe.DrawMesh(op.Triangles, vs, op.Shader, !op.Outline)
		}
	}
}
