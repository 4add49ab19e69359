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

package termgl

import (
	"math"
	"slices"
)

// Vertex is a corner of a 2D primitive, in cell coordinates.
// Z is used for depth testing; U and V are passed, interpolated, to the
// shader.
type Vertex struct {
	X, Y int
	Z    float64
	U, V uint8
}

// Point writes a single cell, subject to the depth test.
func (c *Canvas) Point(x, y int, z float64, glyph rune, col Color) {
	x, y = c.clamp(x, y)
	c.setPixel(x, y, z, glyph, col)
}

// PutChar writes a single cell, ignoring the depth buffer.
func (c *Canvas) PutChar(x, y int, glyph rune, col Color) {
	x, y = c.clamp(x, y)
	c.setPixelRaw(x, y, glyph, col)
}

// PutString writes s starting at (x, y), ignoring the depth buffer.
// A newline continues at column x of the next row. Characters beyond the
// edge of the canvas pile up in the last column.
func (c *Canvas) PutString(x, y int, s string, col Color) {
	curX := x
	for _, r := range s {
		if r == '\n' {
			curX = x
			y++
			continue
		}
		cx, cy := c.clamp(curX, y)
		c.setPixelRaw(cx, cy, r, col)
		curX++
	}
}

// Line draws the line from v0 to v1 using Bresenham's algorithm.
// U, V and Z are interpolated along the major axis of the line.
func (c *Canvas) Line(v0, v1 Vertex, sh Shader) {
	v0.X, v0.Y = c.clamp(v0.X, v0.Y)
	v1.X, v1.Y = c.clamp(v1.X, v1.Y)

	if v0.X == v1.X && v0.Y == v1.Y {
		glyph, col := sh.Shade(v0.U, v0.V)
		c.setPixel(v0.X, v0.Y, v0.Z, glyph, col)
		return
	}

	xMajor := abs(v1.Y-v0.Y) < abs(v1.X-v0.X)
	if xMajor && v0.X > v1.X || !xMajor && v0.Y > v1.Y {
		v0, v1 = v1, v0
	}

	var p0, den int
	if xMajor {
		p0, den = v0.X, v1.X-v0.X
	} else {
		p0, den = v0.Y, v1.Y-v0.Y
	}

	bresenham(v0.X, v0.Y, v1.X, v1.Y, func(x, y int) {
		k := y - p0
		if xMajor {
			k = x - p0
		}
		a := lerpVertex(v0, v1, k, den)
		glyph, col := sh.Shade(a.u, a.v)
		c.setPixel(x, y, a.z, glyph, col)
	})
}

// Triangle draws the outline of the triangle with corners v0, v1 and v2.
func (c *Canvas) Triangle(v0, v1, v2 Vertex, sh Shader) {
	c.Line(v0, v1, sh)
	c.Line(v0, v2, sh)
	c.Line(v1, v2, sh)
}

// FillTriangle fills the triangle with corners v0, v1 and v2.
//
// The triangle is filled one row at a time. The edges are traced with the
// same stepping as [Canvas.Line], so that the filled area always includes
// the outline drawn by [Canvas.Triangle]. U, V and Z are interpolated
// first along the bounding edges of each row, then across the row.
func (c *Canvas) FillTriangle(v0, v1, v2 Vertex, sh Shader) {
	v0.X, v0.Y = c.clamp(v0.X, v0.Y)
	v1.X, v1.Y = c.clamp(v1.X, v1.Y)
	v2.X, v2.Y = c.clamp(v2.X, v2.Y)

	// sort by y
	if v1.Y < v0.Y {
		v0, v1 = v1, v0
	}
	if v2.Y < v0.Y {
		v0, v2 = v2, v0
	}
	if v2.Y < v1.Y {
		v1, v2 = v2, v1
	}

	if v0.Y == v2.Y {
		left, right := v0, v0
		for _, v := range [2]Vertex{v1, v2} {
			if v.X < left.X {
				left = v
			}
			if v.X > right.X {
				right = v
			}
		}
		c.span(left.X, right.X, v0.Y, vertexAttrs(left), vertexAttrs(right), sh)
		return
	}

	top := v0.Y
	rows := v2.Y - top + 1
	c.longMin, c.longMax = resetExtents(c.longMin, c.longMax, rows)
	c.shortMin, c.shortMax = resetExtents(c.shortMin, c.shortMax, rows)

	record := func(mins, maxs []int) func(x, y int) {
		return func(x, y int) {
			r := y - top
			mins[r] = min(mins[r], x)
			maxs[r] = max(maxs[r], x)
		}
	}
	bresenham(v0.X, v0.Y, v2.X, v2.Y, record(c.longMin, c.longMax))
	shortEdge := record(c.shortMin, c.shortMax)
	bresenham(v0.X, v0.Y, v1.X, v1.Y, shortEdge)
	bresenham(v1.X, v1.Y, v2.X, v2.Y, shortEdge)

	for r := range rows {
		y := top + r
		lMin, lMax := c.longMin[r], c.longMax[r]
		sMin, sMax := c.shortMin[r], c.shortMax[r]

		long := lerpVertex(v0, v2, y-v0.Y, v2.Y-v0.Y)
		var short attrs
		switch {
		case y < v1.Y:
			short = lerpVertex(v0, v1, y-v0.Y, v1.Y-v0.Y)
		case v2.Y > v1.Y:
			short = lerpVertex(v1, v2, y-v1.Y, v2.Y-v1.Y)
		default:
			short = vertexAttrs(v1)
		}

		left, right := long, short
		if lMin+lMax > sMin+sMax {
			left, right = short, long
		}
		c.span(min(lMin, sMin), max(lMax, sMax), y, left, right, sh)
	}
}

// span fills the cells x0..x1 of row y, interpolating from a0 at x0 to
// a1 at x1.
func (c *Canvas) span(x0, x1, y int, a0, a1 attrs, sh Shader) {
	if x0 == x1 {
		glyph, col := sh.Shade(uint8(a0.u), uint8(a0.v))
		c.setPixel(x0, y, a0.z, glyph, col)
		return
	}
	dx := x1 - x0
	for x := x0; x <= x1; x++ {
		k := x - x0
		u := (k*int(a1.u) + (dx-k)*int(a0.u)) / dx
		v := (k*int(a1.v) + (dx-k)*int(a0.v)) / dx
		z := a0.z + (a1.z-a0.z)*float64(k)/float64(dx)
		glyph, col := sh.Shade(uint8(u), uint8(v))
		c.setPixel(x, y, z, glyph, col)
	}
}

// attrs are the interpolated vertex attributes at one cell.
type attrs struct {
	z    float64
	u, v uint8
}

func vertexAttrs(v Vertex) attrs {
	return attrs{z: v.Z, u: v.U, v: v.V}
}

// lerpVertex returns the attributes at step k of den steps from a to b.
// For den == 0 the attributes of a are returned.
func lerpVertex(a, b Vertex, k, den int) attrs {
	if den == 0 {
		return vertexAttrs(a)
	}
	return attrs{
		z: a.Z + (b.Z-a.Z)*float64(k)/float64(den),
		u: uint8((k*int(b.U) + (den-k)*int(a.U)) / den),
		v: uint8((k*int(b.V) + (den-k)*int(a.V)) / den),
	}
}

// bresenham calls emit for every cell of the line from (x0, y0) to
// (x1, y1), in order of increasing major coordinate. The x axis is the
// major axis iff |dy| < |dx|. The set of cells does not depend on the
// order of the end points.
func bresenham(x0, y0, x1, y1 int, emit func(x, y int)) {
	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		dx, dy := x1-x0, y1-y0
		yi := 1
		if dy < 0 {
			yi, dy = -1, -dy
		}
		d := 2*dy - dx
		y := y0
		for x := x0; x <= x1; x++ {
			emit(x, y)
			if d > 0 {
				y += yi
				d += 2 * (dy - dx)
			} else {
				d += 2 * dy
			}
		}
		return
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	dx, dy := x1-x0, y1-y0
	xi := 1
	if dx < 0 {
		xi, dx = -1, -dx
	}
	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		emit(x, y)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

// resetExtents prepares a pair of per-row extent buffers for n rows.
func resetExtents(mins, maxs []int, n int) ([]int, []int) {
	mins = slices.Grow(mins[:0], n)[:n]
	maxs = slices.Grow(maxs[:0], n)[:n]
	for i := range n {
		mins[i] = math.MaxInt
		maxs[i] = math.MinInt
	}
	return mins, maxs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
