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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/termgl"
)

var ctmCases = []TestCase{
	{
		Name:   "scale",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   rectangle(0, 0, 1, 1),
			CTM:    matrix.Scale(40, 20).Translate(12, 6),
			Rule:   termgl.NonZero,
			Shader: flat('s', termgl.Green),
		}},
	},
	{
		Name:   "rotate",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   rectangle(-12, -6, 12, 6),
			CTM:    matrix.RotateDeg(30).Translate(32, 16),
			Rule:   termgl.NonZero,
			Shader: flat('r', termgl.Yellow),
		}},
	},
	{
		Name:   "shear",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   rectangle(0, 0, 30, 20),
			CTM:    matrix.Matrix{1, 0, 0.8, 1, 8, 6},
			Rule:   termgl.NonZero,
			Shader: flat('/', termgl.Cyan),
		}},
	},
	{
		Name:   "flip",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   triangle(0, 0, 20, 0, 10, 20),
			CTM:    matrix.Scale(1.5, -1).Translate(20, 28),
			Rule:   termgl.NonZero,
			Shader: flat('v', termgl.Magenta),
		}},
	},
	{
		Name:   "aspect",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   circle(0, 0, 14),
			CTM:    matrix.Scale(2, 1).Translate(32, 16),
			Rule:   termgl.NonZero,
			Shader: flat('@', termgl.White),
		}},
	},
}
