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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/linalg"
	"seehuhn.de/go/termgl/render3d"
)

// largeCases use canvases the size of a full-screen terminal window on a
// high resolution display.
var largeCases = []TestCase{
	{
		Name:   "large_grid",
		Width:  240,
		Height: 80,
		Ops: []Operation{Fill{
			Path:   rectangleGrid(8, 16, 240, 80, 1),
			Rule:   termgl.NonZero,
			Shader: flat('#', termgl.Green),
		}},
	},
	{
		Name:   "large_concentric_nonzero",
		Width:  240,
		Height: 80,
		Ops: []Operation{Fill{
			Path:   concentricRectangles(120, 40, 100, 30),
			Rule:   termgl.NonZero,
			Shader: flat('=', termgl.Cyan),
		}},
	},
	{
		Name:   "large_concentric_evenodd",
		Width:  240,
		Height: 80,
		Ops: []Operation{Fill{
			Path:   concentricRectangles(120, 40, 100, 30),
			Rule:   termgl.EvenOdd,
			Shader: flat('=', termgl.Cyan),
		}},
	},
	{
		Name:   "large_diamond",
		Width:  240,
		Height: 80,
		Ops: []Operation{Fill{
			Path:   diamond(120, 40, 38),
			CTM:    matrix.Scale(2, 1).Translate(-120, 0),
			Rule:   termgl.NonZero,
			Shader: termgl.Linear2D{Gradient: termgl.GradientFull, Color: termgl.Yellow, Base: 32, IU: 111, IV: 111},
		}},
	},
	{
		Name:   "large_clipped",
		Width:  240,
		Height: 80,
		Ops: []Operation{Fill{
			Path:   rectangle(-100, 20, 400, 60),
			Rule:   termgl.NonZero,
			Shader: flat('%', termgl.Red),
		}},
	},
	{
		Name:   "large_triangles",
		Width:  240,
		Height: 80,
		Ops: []Operation{
			Triangle{
				V:      [3]termgl.Vertex{vuv(0, 79, 0, 255), vuv(120, 0, 128, 0), vuv(239, 79, 255, 255)},
				Shader: termgl.Linear2D{Gradient: termgl.GradientFull, Color: termgl.White, Base: 0, IU: 128, IV: 127},
			},
			Triangle{
				V:       [3]termgl.Vertex{vx(0, 79), vx(120, 0), vx(239, 79)},
				Outline: true,
				Shader:  flat('*', termgl.Red | termgl.HighIntensity),
			},
		},
	},
	{
		Name:   "large_cube",
		Width:  240,
		Height: 80,
		Caps:   termgl.DepthTest | termgl.CullFace,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Rotate:    linalg.Vec3{X: 0.5, Y: 0.7},
			Translate: linalg.Vec3{Z: 4},
			Shader:    termgl.Linear2D{Gradient: termgl.GradientFull, Color: termgl.Green, Base: 40, IU: 100, IV: 100},
		}},
	},
}

// rectangleGrid builds rows*cols rectangles covering the given area,
// separated by gap on each side.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}

// concentricRectangles builds two nested rectangles with the same
// orientation, centred at (cx, cy). The rectangles extend r1 and r2
// cells to each side horizontally and half as far vertically.
func concentricRectangles(cx, cy, r1, r2 float64) *path.Data {
	p := rectangle(cx-r1, cy-r1/2, cx+r1, cy+r1/2)
	q := rectangle(cx-r2, cy-r2/2, cx+r2, cy+r2/2)
	p.Cmds = append(p.Cmds, q.Cmds...)
	p.Coords = append(p.Coords, q.Coords...)
	return p
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}
