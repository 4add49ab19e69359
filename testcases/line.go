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

	"seehuhn.de/go/termgl"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  40,
		Height: 10,
		Ops:    []Operation{Line{From: vx(5, 5), To: vx(34, 5), Shader: flat('-', termgl.White)}},
	},
	{
		Name:   "vertical",
		Width:  40,
		Height: 20,
		Ops:    []Operation{Line{From: vx(20, 2), To: vx(20, 17), Shader: flat('|', termgl.Green)}},
	},
	{
		Name:   "diagonal",
		Width:  20,
		Height: 20,
		Ops:    []Operation{Line{From: vx(2, 2), To: vx(17, 17), Shader: flat('\\', termgl.Cyan)}},
	},
	{
		Name:   "shallow",
		Width:  40,
		Height: 10,
		Ops:    []Operation{Line{From: vx(2, 8), To: vx(37, 1), Shader: flat('*', termgl.Yellow)}},
	},
	{
		Name:   "steep",
		Width:  20,
		Height: 20,
		Ops:    []Operation{Line{From: vx(12, 1), To: vx(6, 18), Shader: flat('*', termgl.Magenta)}},
	},
	{
		Name:   "reversed",
		Width:  40,
		Height: 10,
		Ops:    []Operation{Line{From: vx(37, 1), To: vx(2, 8), Shader: flat('*', termgl.Yellow)}},
	},
	{
		Name:   "point",
		Width:  10,
		Height: 5,
		Ops:    []Operation{Line{From: vx(4, 2), To: vx(4, 2), Shader: flat('o', termgl.Red)}},
	},
	{
		Name:   "clamped",
		Width:  30,
		Height: 10,
		Ops:    []Operation{Line{From: vx(-20, -5), To: vx(50, 30), Shader: flat('#', termgl.Blue | termgl.HighIntensity)}},
	},
	{
		Name:   "gradient",
		Width:  72,
		Height: 3,
		Ops: []Operation{Line{
			From:   vuv(1, 1, 0, 0),
			To:     vuv(70, 1, 255, 0),
			Shader: termgl.Linear1D{Gradient: termgl.GradientFull, Color: termgl.White, I0: 0, I1: 255},
		}},
	},
	{
		Name:   "starburst",
		Width:  41,
		Height: 21,
		Ops:    starburst(20, 10, 18, 9, 16),
	},
}

// starburst builds n lines radiating from (cx, cy) to an ellipse with
// radii rx and ry, cycling through the ANSI colors.
func starburst(cx, cy int, rx, ry float64, n int) []Operation {
	ops := make([]Operation, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(math.Round(rx*math.Cos(angle)))
		y := cy + int(math.Round(ry*math.Sin(angle)))
		col := termgl.Color(i%7 + 1)
		ops[i] = Line{From: vx(cx, cy), To: vx(x, y), Shader: flat('+', col)}
	}
	return ops
}
