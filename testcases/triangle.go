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

var triangleCases = []TestCase{
	{
		Name:   "outline",
		Width:  40,
		Height: 20,
		Ops: []Operation{Triangle{
			V:       [3]termgl.Vertex{vx(3, 17), vx(20, 2), vx(36, 17)},
			Outline: true,
			Shader:  flat('#', termgl.Green),
		}},
	},
	{
		Name:   "filled",
		Width:  40,
		Height: 20,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(3, 17), vx(20, 2), vx(36, 17)},
			Shader: flat('#', termgl.Green),
		}},
	},
	{
		Name:   "right_angle",
		Width:  10,
		Height: 10,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(0, 0), vx(4, 0), vx(0, 4)},
			Shader: flat('x', termgl.White),
		}},
	},
	{
		Name:   "flat_top",
		Width:  30,
		Height: 15,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(2, 2), vx(27, 2), vx(14, 12)},
			Shader: flat('v', termgl.Cyan),
		}},
	},
	{
		Name:   "flat_bottom",
		Width:  30,
		Height: 15,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(14, 2), vx(27, 12), vx(2, 12)},
			Shader: flat('^', termgl.Yellow),
		}},
	},
	{
		Name:   "sliver",
		Width:  40,
		Height: 10,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(1, 1), vx(38, 4), vx(2, 2)},
			Shader: flat('=', termgl.Red),
		}},
	},
	{
		Name:   "single_row",
		Width:  30,
		Height: 5,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(20, 2), vx(3, 2), vx(11, 2)},
			Shader: flat('-', termgl.Magenta),
		}},
	},
	{
		Name:   "outline_over_fill",
		Width:  40,
		Height: 20,
		Ops: []Operation{
			Triangle{
				V:      [3]termgl.Vertex{vx(5, 18), vx(30, 1), vx(38, 12)},
				Shader: flat('.', termgl.Blue),
			},
			Triangle{
				V:       [3]termgl.Vertex{vx(5, 18), vx(30, 1), vx(38, 12)},
				Outline: true,
				Shader:  flat('@', termgl.White | termgl.HighIntensity),
			},
		},
	},
	{
		Name:   "clamped",
		Width:  20,
		Height: 10,
		Ops: []Operation{Triangle{
			V:      [3]termgl.Vertex{vx(-10, -10), vx(40, 3), vx(5, 30)},
			Shader: flat('%', termgl.Green | termgl.BkgBlue),
		}},
	},
}
