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

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 24,
		Ops: []Operation{Fill{
			Path: (&path.Data{}).
				MoveTo(pt(4, 20)).LineTo(pt(16, 3)).LineTo(pt(28, 20)).Close().
				MoveTo(pt(36, 20)).LineTo(pt(48, 3)).LineTo(pt(60, 20)).Close(),
			Rule:   termgl.NonZero,
			Shader: flat('A', termgl.Green),
		}},
	},
	{
		Name:   "overlap_nonzero",
		Width:  64,
		Height: 24,
		Ops: []Operation{Fill{
			Path:   overlappingRects(),
			Rule:   termgl.NonZero,
			Shader: flat('#', termgl.Blue | termgl.HighIntensity),
		}},
	},
	{
		Name:   "overlap_evenodd",
		Width:  64,
		Height: 24,
		Ops: []Operation{Fill{
			Path:   overlappingRects(),
			Rule:   termgl.EvenOdd,
			Shader: flat('#', termgl.Blue | termgl.HighIntensity),
		}},
	},
	{
		Name:   "ring_nonzero",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   ring(32, 16, 14, 7),
			Rule:   termgl.NonZero,
			Shader: flat('o', termgl.Red),
		}},
	},
	{
		Name:   "ring_evenodd",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path:   ring(32, 16, 14, 7),
			Rule:   termgl.EvenOdd,
			Shader: flat('o', termgl.Red),
		}},
	},
}

// overlappingRects builds two overlapping rectangles with the same
// orientation.
func overlappingRects() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(6, 3)).LineTo(pt(40, 3)).LineTo(pt(40, 18)).LineTo(pt(6, 18)).Close().
		MoveTo(pt(24, 7)).LineTo(pt(58, 7)).LineTo(pt(58, 21)).LineTo(pt(24, 21)).Close()
}

// ring builds an annulus whose inner circle has the same orientation as
// the outer one, so that only the even-odd rule leaves a hole.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := circle(cx, cy, outer)
	q := circle(cx, cy, inner)
	p.Cmds = append(p.Cmds, q.Cmds...)
	p.Coords = append(p.Coords, q.Coords...)
	return p
}
