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

import "seehuhn.de/go/termgl"

var depthCases = []TestCase{
	{
		// The far triangle is drawn last but stays hidden.
		Name:   "behind",
		Width:  40,
		Height: 20,
		Caps:   termgl.DepthTest,
		Ops: []Operation{
			Triangle{
				V:      zTriangle(4, 2, 30, 17, 0.5),
				Shader: flat('N', termgl.Green),
			},
			Triangle{
				V:      zTriangle(10, 4, 36, 19, -0.5),
				Shader: flat('F', termgl.Red),
			},
		},
	},
	{
		Name:   "no_depth_test",
		Width:  40,
		Height: 20,
		Ops: []Operation{
			Triangle{
				V:      zTriangle(4, 2, 30, 17, 0.5),
				Shader: flat('N', termgl.Green),
			},
			Triangle{
				V:      zTriangle(10, 4, 36, 19, -0.5),
				Shader: flat('F', termgl.Red),
			},
		},
	},
	{
		// Depth varies across both triangles, so they intersect.
		Name:   "intersecting",
		Width:  40,
		Height: 20,
		Caps:   termgl.DepthTest,
		Ops: []Operation{
			Triangle{
				V: [3]termgl.Vertex{
					{X: 2, Y: 2, Z: -1},
					{X: 37, Y: 2, Z: 1},
					{X: 20, Y: 18, Z: 0},
				},
				Shader: flat('a', termgl.Yellow),
			},
			Triangle{
				V: [3]termgl.Vertex{
					{X: 2, Y: 17, Z: 1},
					{X: 37, Y: 17, Z: -1},
					{X: 20, Y: 1, Z: 0},
				},
				Shader: flat('b', termgl.Blue | termgl.HighIntensity),
			},
		},
	},
	{
		Name:   "path_behind_triangle",
		Width:  40,
		Height: 20,
		Caps:   termgl.DepthTest,
		Ops: []Operation{
			Triangle{
				V:      zTriangle(4, 2, 30, 17, 0),
				Shader: flat('T', termgl.White),
			},
			Fill{
				Path:   circle(26, 10, 8),
				Rule:   termgl.NonZero,
				Depth:  -1,
				Shader: flat('o', termgl.Magenta),
			},
		},
	},
}

// zTriangle returns a right triangle spanning the given box at constant
// depth z.
func zTriangle(x0, y0, x1, y1 int, z float64) [3]termgl.Vertex {
	return [3]termgl.Vertex{
		{X: x0, Y: y0, Z: z},
		{X: x1, Y: y0, Z: z},
		{X: x0, Y: y1, Z: z},
	}
}
