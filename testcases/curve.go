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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path: (&path.Data{}).
				MoveTo(pt(4, 28)).
				QuadTo(pt(32, -20), pt(60, 28)).
				Close(),
			Rule:   termgl.NonZero,
			Shader: flat('q', termgl.Green),
		}},
	},
	{
		Name:   "cubic",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path: (&path.Data{}).
				MoveTo(pt(4, 16)).
				CubeTo(pt(20, -10), pt(44, 42), pt(60, 16)).
				LineTo(pt(60, 30)).
				LineTo(pt(4, 30)).
				Close(),
			Rule:   termgl.NonZero,
			Shader: flat('c', termgl.Cyan),
		}},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   circle(32, 16, 14),
			Rule:   termgl.NonZero,
			Shader: flat('O', termgl.Yellow),
		}},
	},
	{
		Name:   "ellipse",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   ellipse(32, 16, 28, 14),
			Rule:   termgl.NonZero,
			Shader: termgl.Linear2D{Gradient: termgl.GradientMin, Color: termgl.White, Base: 0, IU: 255, IV: 0},
		}},
	},
	{
		Name:   "loop",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path: (&path.Data{}).
				MoveTo(pt(8, 28)).
				CubeTo(pt(80, -10), pt(-16, -10), pt(56, 28)).
				Close(),
			Rule:   termgl.EvenOdd,
			Shader: flat('&', termgl.Magenta),
		}},
	},
}
