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

// Cells are covered if their centre lies inside the path. These scenes
// move a small rectangle across cell boundaries in quarter-cell steps.
var precisionCases = []TestCase{
	offsetCase("offset_0", 0),
	offsetCase("offset_25", 0.25),
	offsetCase("offset_50", 0.5),
	offsetCase("offset_75", 0.75),
	{
		Name:   "thin_horizontal",
		Width:  20,
		Height: 6,
		Ops: []Operation{Fill{
			Path:   rectangle(2, 2.4, 18, 2.6),
			Rule:   termgl.NonZero,
			Shader: flat('-', termgl.White),
		}},
	},
	{
		Name:   "thin_missed",
		Width:  20,
		Height: 6,
		Ops: []Operation{Fill{
			Path:   rectangle(2, 2.6, 18, 2.9),
			Rule:   termgl.NonZero,
			Shader: flat('-', termgl.White),
		}},
	},
}

func offsetCase(name string, d float64) TestCase {
	return TestCase{
		Name:   name,
		Width:  12,
		Height: 8,
		Ops: []Operation{Fill{
			Path:   rectangle(2+d, 2+d, 8+d, 6+d),
			Rule:   termgl.NonZero,
			Shader: flat('#', termgl.Green),
		}},
	}
}
