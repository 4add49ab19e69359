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
	"image"
	"image/color"

	"seehuhn.de/go/termgl"
)

var shadingCases = []TestCase{
	{
		Name:   "palette",
		Width:  64,
		Height: 18,
		Ops:    paletteOps(),
	},
	{
		Name:   "attributes",
		Width:  40,
		Height: 6,
		Ops: []Operation{
			Text{X: 1, Y: 1, S: "plain", Color: termgl.White},
			Text{X: 1, Y: 2, S: "bold", Color: termgl.White | termgl.Bold},
			Text{X: 1, Y: 3, S: "underline", Color: termgl.White | termgl.Underline},
			Text{X: 1, Y: 4, S: "both", Color: termgl.Yellow | termgl.Bold | termgl.Underline},
			Text{X: 20, Y: 1, S: "multi\nline\ntext", Color: termgl.Cyan | termgl.BkgBlue},
		},
	},
	{
		Name:   "gradient_full",
		Width:  72,
		Height: 4,
		Ops:    gradientRows(termgl.GradientFull, 72, 4),
	},
	{
		Name:   "gradient_min",
		Width:  40,
		Height: 4,
		Ops:    gradientRows(termgl.GradientMin, 40, 4),
	},
	{
		Name:   "linear2d_quad",
		Width:  64,
		Height: 32,
		Ops: []Operation{
			Triangle{
				V:      [3]termgl.Vertex{vuv(4, 2, 0, 0), vuv(59, 2, 255, 0), vuv(59, 29, 255, 255)},
				Shader: termgl.Linear2D{Gradient: termgl.GradientFull, Color: termgl.Green, Base: 0, IU: 128, IV: 127},
			},
			Triangle{
				V:      [3]termgl.Vertex{vuv(4, 2, 0, 0), vuv(59, 29, 255, 255), vuv(4, 29, 0, 255)},
				Shader: termgl.Linear2D{Gradient: termgl.GradientFull, Color: termgl.Green, Base: 0, IU: 128, IV: 127},
			},
		},
	},
	{
		Name:   "texture",
		Width:  64,
		Height: 32,
		Ops: []Operation{Fill{
			Path: rectangle(4, 2, 60, 30),
			Rule: termgl.NonZero,
			Shader: termgl.Texture{
				Image:    checkerboard(8, 8),
				Gradient: termgl.GradientMin,
				Attr:     termgl.BkgBlack,
			},
		}},
	},
}

// paletteOps fills one block per combination of foreground and background
// color, in normal and high intensity.
func paletteOps() []Operation {
	var ops []Operation
	for bg := range 8 {
		for fg := range 8 {
			col := termgl.Color(fg) | termgl.Color(bg)<<4
			x := 1 + fg*8
			y := 1 + bg*2
			ops = append(ops,
				Text{X: x, Y: y, S: "Aa#", Color: col},
				Text{X: x + 3, Y: y, S: "Aa#", Color: col | termgl.HighIntensity | termgl.HighIntensityBkg},
			)
		}
	}
	return ops
}

// gradientRows draws a horizontal intensity ramp over the full width of
// the canvas on every row.
func gradientRows(g termgl.Gradient, width, height int) []Operation {
	ops := make([]Operation, height)
	for y := range height {
		ops[y] = Line{
			From:   vuv(0, y, 0, 0),
			To:     vuv(width-1, y, 255, 0),
			Shader: termgl.Linear1D{Gradient: g, Color: termgl.White, I0: 0, I1: 255},
		}
	}
	return ops
}

// checkerboard returns an image with n×m squares in alternating colors.
func checkerboard(n, m int) image.Image {
	const size = 8
	img := image.NewRGBA(image.Rect(0, 0, n*size, m*size))
	colors := []color.RGBA{
		{205, 49, 49, 255},
		{229, 229, 229, 255},
		{36, 114, 200, 255},
		{20, 20, 20, 255},
	}
	for y := range m * size {
		for x := range n * size {
			i := (x/size + y/size) % 2
			if y >= m*size/2 {
				i += 2
			}
			img.SetRGBA(x, y, colors[i])
		}
	}
	return img
}
