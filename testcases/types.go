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

// Package testcases defines named scenes which exercise the termgl
// rasterizer. The scenes are shared by the tests, the benchmarks and the
// export command.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/linalg"
	"seehuhn.de/go/termgl/render3d"
)

// TestCase defines a single scene.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Width  int               // canvas width in cells
	Height int               // canvas height in cells
	Caps   termgl.Capability // capabilities enabled on the canvas
	Ops    []Operation       // drawing operations, applied in order
}

// Operation is a drawing operation within a scene.
type Operation interface {
	isOperation()
}

// Line draws a line using [termgl.Canvas.Line].
type Line struct {
	From, To termgl.Vertex
	Shader   termgl.Shader
}

func (Line) isOperation() {}

// Triangle draws a triangle using [termgl.Canvas.FillTriangle], or
// [termgl.Canvas.Triangle] if Outline is set.
type Triangle struct {
	V       [3]termgl.Vertex
	Outline bool
	Shader  termgl.Shader
}

func (Triangle) isOperation() {}

// Fill fills a path using [termgl.Canvas.FillPath].
type Fill struct {
	Path   *path.Data
	Rule   termgl.FillRule
	CTM    matrix.Matrix // zero-value means identity
	Depth  float64
	Shader termgl.Shader
}

func (Fill) isOperation() {}

// Text writes a string using [termgl.Canvas.PutString].
type Text struct {
	X, Y  int
	S     string
	Color termgl.Color
}

func (Text) isOperation() {}

// Mesh draws a triangle mesh through the 3D pipeline. The mesh is
// rotated, then moved by Translate and viewed by a camera with a 60
// degree field of view.
type Mesh struct {
	Triangles []render3d.Triangle
	Scale     float64 // zero-value means 1
	Rotate    linalg.Vec3
	Translate linalg.Vec3
	Outline   bool
	Shader    termgl.Shader
}

func (Mesh) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// vx is a helper to create a vertex without depth and texture coordinates.
func vx(x, y int) termgl.Vertex {
	return termgl.Vertex{X: x, Y: y}
}

// vuv is a helper to create a vertex with texture coordinates.
func vuv(x, y int, u, v uint8) termgl.Vertex {
	return termgl.Vertex{X: x, Y: y, U: u, V: v}
}

// flat is a helper to create a single-glyph shader.
func flat(glyph rune, c termgl.Color) termgl.Shader {
	return termgl.Flat{Glyph: glyph, Color: c}
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i := range 5 {
		angle := -math.Pi/2 + float64(i)*4*math.Pi/5
		q := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// ellipse builds an axis-aligned ellipse from four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx, ky := kappa*rx, kappa*ry
	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// circle builds a circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}
