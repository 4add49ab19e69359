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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how [Canvas.FillPath] decides which cells are inside
// a path.
type FillRule int

const (
	// NonZero fills cells with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills cells which are enclosed an odd number of times.
	EvenOdd
)

// edge is a path segment in cell coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// crossing is the intersection of an edge with the centre line of a row.
type crossing struct {
	x       float64
	winding int
}

// FillPath fills the path p, which may contain lines, quadratic and cubic
// Bézier curves. Path coordinates are mapped to cell coordinates by
// [Canvas.CTM], and curves are flattened to within [Canvas.Flatness]
// cells. A cell is covered iff its centre lies inside the path according
// to rule; there is no partial coverage.
//
// The shader receives the position of each cell within the bounding box of
// the transformed path, scaled to 0..255. All cells are written at depth
// [Canvas.PathDepth].
func (c *Canvas) FillPath(p *path.Data, rule FillRule, sh Shader) {
	if !c.collectPathEdges(p) {
		return
	}
	box := c.pathBox

	yMin := max(int(math.Floor(box.LLy)), 0)
	yMax := min(int(math.Ceil(box.URy)), c.height)
	if yMin >= yMax {
		return
	}

	slices.SortFunc(c.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	c.activeIdx = c.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		for nextEdge < len(c.edges) {
			e := &c.edges[nextEdge]
			if min(e.y0, e.y1) > yc {
				break
			}
			c.activeIdx = append(c.activeIdx, nextEdge)
			nextEdge++
		}

		c.crossings = c.crossings[:0]
		for i := 0; i < len(c.activeIdx); {
			e := &c.edges[c.activeIdx[i]]
			if max(e.y0, e.y1) <= yc {
				c.activeIdx[i] = c.activeIdx[len(c.activeIdx)-1]
				c.activeIdx = c.activeIdx[:len(c.activeIdx)-1]
				continue
			}
			winding := 1
			if e.y1 < e.y0 {
				winding = -1
			}
			c.crossings = append(c.crossings, crossing{
				x:       e.x0 + e.dxdy*(yc-e.y0),
				winding: winding,
			})
			i++
		}
		if len(c.crossings) < 2 {
			continue
		}
		slices.SortFunc(c.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		wind := 0
		for i := 0; i < len(c.crossings)-1; i++ {
			wind += c.crossings[i].winding
			inside := wind != 0
			if rule == EvenOdd {
				inside = wind%2 != 0
			}
			if !inside {
				continue
			}
			// cells whose centre x+0.5 lies in [xa, xb)
			xa := int(math.Ceil(c.crossings[i].x - 0.5))
			xb := int(math.Ceil(c.crossings[i+1].x-0.5)) - 1
			c.pathSpan(max(xa, 0), min(xb, c.maxX), y, &box, sh)
		}
	}
}

// pathSpan fills the cells x0..x1 of row y for FillPath.
func (c *Canvas) pathSpan(x0, x1, y int, box *rect.Rect, sh Shader) {
	v := boxParam(float64(y)+0.5, box.LLy, box.URy)
	for x := x0; x <= x1; x++ {
		u := boxParam(float64(x)+0.5, box.LLx, box.URx)
		glyph, col := sh.Shade(u, v)
		c.setPixel(x, y, c.PathDepth, glyph, col)
	}
}

// boxParam maps t in [lo, hi] to 0..255.
func boxParam(t, lo, hi float64) uint8 {
	if hi <= lo {
		return 0
	}
	s := (t - lo) / (hi - lo) * 255
	return uint8(max(min(s, 255), 0))
}

// collectPathEdges walks the path, transforms it to cell coordinates and
// builds the edge list. Open subpaths are closed implicitly. It returns
// false if the path has no non-horizontal edges.
func (c *Canvas) collectPathEdges(p *path.Data) bool {
	c.edges = c.edges[:0]
	c.pathBoxEmpty = true

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpath {
				c.addEdge(current, subpath)
			}
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			c.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			c.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], c.addEdge)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			c.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], c.addEdge)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				c.addEdge(current, subpath)
			}
			current = subpath
		}
	}
	if current != subpath {
		c.addEdge(current, subpath)
	}

	return len(c.edges) > 0
}

// addEdge transforms a segment to cell coordinates and appends it to the
// edge list.
func (c *Canvas) addEdge(p0, p1 vec.Vec2) {
	M := c.CTM
	x0 := M[0]*p0.X + M[2]*p0.Y + M[4]
	y0 := M[1]*p0.X + M[3]*p0.Y + M[5]
	x1 := M[0]*p1.X + M[2]*p1.Y + M[4]
	y1 := M[1]*p1.X + M[3]*p1.Y + M[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	c.edges = append(c.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if c.pathBoxEmpty {
		c.pathBox = rect.Rect{
			LLx: min(x0, x1), LLy: min(y0, y1),
			URx: max(x0, x1), URy: max(y0, y1),
		}
		c.pathBoxEmpty = false
	} else {
		c.pathBox.LLx = min(c.pathBox.LLx, x0, x1)
		c.pathBox.LLy = min(c.pathBox.LLy, y0, y1)
		c.pathBox.URx = max(c.pathBox.URx, x0, x1)
		c.pathBox.URy = max(c.pathBox.URy, y0, y1)
	}
}

// transformLinear applies the linear part of the CTM to a vector.
func (c *Canvas) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: c.CTM[0]*v.X + c.CTM[2]*v.Y,
		Y: c.CTM[1]*v.X + c.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, so that the error in cell coordinates stays below
// Flatness.
func (c *Canvas) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// maximal deviation from the chord is |P0 - 2*P1 + P2| / 4
	e := c.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if dev := e.Length(); dev > c.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / c.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments.  The number of segments is given by Wang's formula.
func (c *Canvas) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := c.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := c.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * c.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// horizontalEdgeThreshold is the minimum vertical extent of an edge.
// Flatter edges never cross a row centre line and are dropped.
const horizontalEdgeThreshold = 1e-10
