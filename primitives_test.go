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
	"bytes"
	"fmt"
	"testing"
)

// covered returns the set of cells whose glyph is not blank.
func covered(c *Canvas) map[[2]int]bool {
	res := make(map[[2]int]bool)
	for y := range c.height {
		for x := range c.width {
			if c.Cell(x, y).Glyph != ' ' {
				res[[2]int{x, y}] = true
			}
		}
	}
	return res
}

var hash = Flat{Glyph: '#', Color: White}

func TestLineEndpointsAndConnectivity(t *testing.T) {
	lines := []struct{ x0, y0, x1, y1 int }{
		{0, 0, 19, 0},
		{0, 0, 0, 9},
		{0, 0, 9, 9},
		{1, 8, 18, 2},
		{3, 0, 5, 9},
		{19, 9, 0, 4},
	}
	for _, l := range lines {
		t.Run(fmt.Sprintf("%d_%d_%d_%d", l.x0, l.y0, l.x1, l.y1), func(t *testing.T) {
			c, err := New(20, 10)
			if err != nil {
				t.Fatal(err)
			}
			c.Line(Vertex{X: l.x0, Y: l.y0}, Vertex{X: l.x1, Y: l.y1}, hash)
			cells := covered(c)

			if !cells[[2]int{l.x0, l.y0}] || !cells[[2]int{l.x1, l.y1}] {
				t.Error("end point not drawn")
			}
			major := max(abs(l.x1-l.x0), abs(l.y1-l.y0))
			if len(cells) != major+1 {
				t.Errorf("got %d cells, want %d", len(cells), major+1)
			}
			// every cell except the end points has exactly two 8-neighbours
			for p := range cells {
				n := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if (dx != 0 || dy != 0) && cells[[2]int{p[0] + dx, p[1] + dy}] {
							n++
						}
					}
				}
				end := p == [2]int{l.x0, l.y0} || p == [2]int{l.x1, l.y1}
				if end && n != 1 || !end && n != 2 {
					t.Errorf("cell %v has %d neighbours", p, n)
				}
			}
		})
	}
}

func TestLineSymmetric(t *testing.T) {
	for x1 := range 20 {
		for y1 := range 10 {
			a, _ := New(20, 10)
			b, _ := New(20, 10)
			a.Line(Vertex{X: 2, Y: 3}, Vertex{X: x1, Y: y1}, hash)
			b.Line(Vertex{X: x1, Y: y1}, Vertex{X: 2, Y: 3}, hash)
			ca, cb := covered(a), covered(b)
			if len(ca) != len(cb) {
				t.Fatalf("(%d,%d): %d vs %d cells", x1, y1, len(ca), len(cb))
			}
			for p := range ca {
				if !cb[p] {
					t.Fatalf("(%d,%d): cell %v only drawn in one direction", x1, y1, p)
				}
			}
		}
	}
}

func TestLineZeroLength(t *testing.T) {
	c, _ := New(5, 5)
	var gotU uint8
	sh := ShaderFunc(func(u, v uint8) (rune, Color) {
		gotU = u
		return 'o', Red
	})
	c.Line(Vertex{X: 2, Y: 2, U: 77}, Vertex{X: 2, Y: 2, U: 200}, sh)
	if n := len(covered(c)); n != 1 {
		t.Errorf("got %d cells, want 1", n)
	}
	if gotU != 77 {
		t.Errorf("u: got %d, want 77", gotU)
	}
}

func TestLineClamped(t *testing.T) {
	c, _ := New(10, 5)
	c.Line(Vertex{X: -100, Y: 2}, Vertex{X: 100, Y: 2}, hash)
	for x := range 10 {
		if c.Cell(x, 2).Glyph != '#' {
			t.Errorf("cell (%d,2) not drawn", x)
		}
	}
}

func TestLineInterpolation(t *testing.T) {
	c, _ := New(256, 1)
	c.Line(Vertex{X: 0, U: 0}, Vertex{X: 255, U: 255}, ShaderFunc(func(u, v uint8) (rune, Color) {
		return rune('a' + int(u)%26), White
	}))
	for x := range 256 {
		want := rune('a' + x%26)
		if got := c.Cell(x, 0).Glyph; got != want {
			t.Fatalf("cell %d: got %q, want %q", x, got, want)
		}
	}
}

func TestFillTriangleRightAngle(t *testing.T) {
	c, _ := New(5, 5)
	c.FillTriangle(Vertex{X: 0, Y: 0}, Vertex{X: 4, Y: 0}, Vertex{X: 0, Y: 4}, hash)
	for y := range 5 {
		for x := range 5 {
			want := x+y <= 4
			got := c.Cell(x, y).Glyph == '#'
			if got != want {
				t.Errorf("cell (%d,%d): covered=%t, want %t", x, y, got, want)
			}
		}
	}
}

func TestFillContainsOutline(t *testing.T) {
	tris := [][3]Vertex{
		{{X: 3, Y: 17}, {X: 20, Y: 2}, {X: 36, Y: 17}},
		{{X: 1, Y: 1}, {X: 38, Y: 4}, {X: 2, Y: 2}},
		{{X: 5, Y: 18}, {X: 30, Y: 1}, {X: 38, Y: 12}},
		{{X: 20, Y: 0}, {X: 0, Y: 19}, {X: 39, Y: 10}},
		{{X: 10, Y: 5}, {X: 10, Y: 15}, {X: 11, Y: 10}},
	}
	for i, v := range tris {
		outline, _ := New(40, 20)
		outline.Triangle(v[0], v[1], v[2], hash)
		fill, _ := New(40, 20)
		fill.FillTriangle(v[0], v[1], v[2], hash)
		fc := covered(fill)
		for p := range covered(outline) {
			if !fc[p] {
				t.Errorf("triangle %d: outline cell %v not filled", i, p)
			}
		}
	}
}

func TestFillTriangleVertexOrder(t *testing.T) {
	v := [3]Vertex{{X: 3, Y: 17}, {X: 20, Y: 2}, {X: 36, Y: 11}}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	var ref map[[2]int]bool
	for _, p := range perms {
		c, _ := New(40, 20)
		c.FillTriangle(v[p[0]], v[p[1]], v[p[2]], hash)
		cells := covered(c)
		if ref == nil {
			ref = cells
			continue
		}
		if len(cells) != len(ref) {
			t.Errorf("order %v: %d cells, want %d", p, len(cells), len(ref))
		}
	}
}

func TestFillTriangleSingleRow(t *testing.T) {
	c, _ := New(20, 3)
	c.FillTriangle(Vertex{X: 12, Y: 1}, Vertex{X: 3, Y: 1}, Vertex{X: 7, Y: 1}, hash)
	for x := range 20 {
		want := x >= 3 && x <= 12
		if got := c.Cell(x, 1).Glyph == '#'; got != want {
			t.Errorf("cell %d: covered=%t, want %t", x, got, want)
		}
	}
}

func TestFillTriangleDepth(t *testing.T) {
	c, _ := New(10, 10, WithCapabilities(DepthTest))
	near := Flat{Glyph: 'N', Color: Green}
	far := Flat{Glyph: 'F', Color: Red}
	c.FillTriangle(Vertex{X: 0, Y: 0, Z: 1}, Vertex{X: 9, Y: 0, Z: 1}, Vertex{X: 0, Y: 9, Z: 1}, near)
	c.FillTriangle(Vertex{X: 0, Y: 0, Z: -1}, Vertex{X: 9, Y: 0, Z: -1}, Vertex{X: 9, Y: 9, Z: -1}, far)
	if got := c.Cell(1, 1).Glyph; got != 'N' {
		t.Errorf("overlap: got %q, want 'N'", got)
	}
	if got := c.Cell(8, 7).Glyph; got != 'F' {
		t.Errorf("far only: got %q, want 'F'", got)
	}
	if d, _ := c.Depth(1, 1); d != 1 {
		t.Errorf("depth: got %g, want 1", d)
	}
}

func TestPutString(t *testing.T) {
	c, _ := New(6, 3)
	c.PutString(3, 0, "ab\ncdefg", Cyan)
	want := []string{
		"   ab ",
		"   cdg",
		"      ",
	}
	for y, row := range want {
		for x, r := range row {
			if got := c.Cell(x, y).Glyph; got != r {
				t.Errorf("cell (%d,%d): got %q, want %q", x, y, got, r)
			}
		}
	}
	if got := c.Cell(3, 1).Color; got != Cyan {
		t.Errorf("color: got %#04x, want %#04x", got, Cyan)
	}
}

func TestPutCharIgnoresDepth(t *testing.T) {
	c, _ := New(2, 1, WithCapabilities(DepthTest))
	c.Point(0, 0, 10, 'a', White)
	c.PutChar(0, 0, 'b', White)
	if got := c.Cell(0, 0).Glyph; got != 'b' {
		t.Errorf("got %q, want 'b'", got)
	}
}

func TestZeroWidthGlyphs(t *testing.T) {
	c, err := New(8, 1)
	if err != nil {
		t.Fatal(err)
	}
	glyphs := []struct {
		in, want rune
	}{
		{'\x00', ' '},
		{'\t', ' '},
		{'\x1b', ' '},
		{'\x7f', ' '},
		{'\u0085', ' '},
		{'\u0301', ' '},
		{'é', 'é'},
		{'#', '#'},
	}
	for x, g := range glyphs {
		c.PutChar(x, 0, g.in, White)
		if got := c.Cell(x, 0).Glyph; got != g.want {
			t.Errorf("PutChar(%q): stored %q, expected %q", g.in, got, g.want)
		}
	}
	c.Point(0, 0, 0, '\u0300', White)
	if got := c.Cell(0, 0).Glyph; got != ' ' {
		t.Errorf("Point: stored %q, expected ' '", got)
	}
}

func TestZeroWidthDoubleWidth(t *testing.T) {
	c, err := New(2, 1, WithCapabilities(DoubleWidth|Progressive))
	if err != nil {
		t.Fatal(err)
	}
	c.PutChar(0, 0, '\u0301', DefaultColor)
	c.PutChar(1, 0, 'a', DefaultColor)

	buf := &bytes.Buffer{}
	if err := c.Flush(buf); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[;H  aa\n\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
