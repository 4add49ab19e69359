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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/termgl"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   triangle(10, 28, 32, 3, 54, 28),
			Rule:   termgl.NonZero,
			Shader: flat('#', termgl.White),
		}},
	},
	{
		Name:   "triangle_evenodd",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   triangle(10, 28, 32, 3, 54, 28),
			Rule:   termgl.EvenOdd,
			Shader: flat('#', termgl.White),
		}},
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   fivePointStar(32, 16, 15),
			Rule:   termgl.NonZero,
			Shader: flat('*', termgl.Yellow | termgl.HighIntensity),
		}},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   fivePointStar(32, 16, 15),
			Rule:   termgl.EvenOdd,
			Shader: flat('*', termgl.Yellow | termgl.HighIntensity),
		}},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   rectangle(10, 6, 54, 26),
			Rule:   termgl.NonZero,
			Shader: flat('=', termgl.Cyan),
		}},
	},
	{
		Name:   "open_subpath",
		Width:  32,
		Height: 16,
		Ops: []Operation{Fill{
			Path: (&path.Data{}).
				MoveTo(pt(4, 2)).
				LineTo(pt(28, 2)).
				LineTo(pt(16, 14)),
			Rule:   termgl.NonZero,
			Shader: flat('o', termgl.Green),
		}},
	},
}
