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

package render3d

import (
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/termgl/linalg"
)

func cv(x, y, z float64, u, v uint8) ClipVertex {
	return ClipVertex{Pos: linalg.Vec4{X: x, Y: y, Z: z, W: 1}, U: u, V: v}
}

// area2 returns twice the signed area of the xy projection of t.
func area2(t ClipTriangle) float64 {
	a, b, c := t[0].Pos, t[1].Pos, t[2].Pos
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func TestClipTrivial(t *testing.T) {
	inside := ClipTriangle{cv(0, 0, 0, 0, 0), cv(0.5, 0, 0, 0, 0), cv(0, 0.5, 0, 0, 0)}
	for _, pl := range FrustumPlanes {
		out, n := pl.Clip(inside)
		if n != 1 || out[0] != inside {
			t.Errorf("%v: visible triangle changed", pl)
		}
	}

	outside := ClipTriangle{cv(-2, 0, 0, 0, 0), cv(-3, 0, 0, 0, 0), cv(-2, 1, 0, 0, 0)}
	if _, n := Left.Clip(outside); n != 0 {
		t.Errorf("hidden triangle: got %d triangles", n)
	}
}

func TestClipOneVisible(t *testing.T) {
	tri := ClipTriangle{cv(-3, 0, 0, 0, 0), cv(0, 0, 0, 255, 0), cv(-3, 2, 0, 0, 255)}
	out, n := Left.Clip(tri)
	if n != 1 {
		t.Fatalf("got %d triangles, want 1", n)
	}
	got := out[0]
	if got[1] != tri[1] {
		t.Errorf("visible corner moved: %v", got[1])
	}
	for _, i := range []int{0, 2} {
		if d := Left.Distance(got[i].Pos); math.Abs(d) > 1e-12 {
			t.Errorf("corner %d not on plane: distance %g", i, d)
		}
	}
	// (0,0)-(-3,0) crosses x=-1 a third of the way
	if got[0].U != 170 {
		t.Errorf("interpolated u: got %d, want 170", got[0].U)
	}
	if area2(got)*area2(tri) <= 0 {
		t.Error("winding order changed")
	}
}

func TestClipTwoVisible(t *testing.T) {
	tri := ClipTriangle{cv(0, 0, 0, 0, 0), cv(0.5, 0, 0, 0, 0), cv(0, 3, 0, 0, 254)}
	out, n := Top.Clip(tri)
	if n != 2 {
		t.Fatalf("got %d triangles, want 2", n)
	}
	total := 0.0
	for _, piece := range out[:n] {
		if area2(piece)*area2(tri) <= 0 {
			t.Error("winding order changed")
		}
		total += math.Abs(area2(piece))
		for _, v := range piece {
			if Top.Distance(v.Pos) < -1e-12 {
				t.Errorf("corner %v outside", v.Pos)
			}
		}
	}
	// the visible part is the trapezoid 0 <= y <= 1
	want := 2 * (0.5 + 0.5*2/3) / 2
	if math.Abs(total-want) > 1e-12 {
		t.Errorf("area: got %g, want %g", total/2, want/2)
	}
}

func TestClipRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return rng.Float64()*6 - 3 }
	for range 1000 {
		var tri ClipTriangle
		for i := range tri {
			tri[i] = cv(coord(), coord(), coord(), uint8(rng.IntN(256)), uint8(rng.IntN(256)))
		}
		a := area2(tri)
		if math.Abs(a) < 1e-3 {
			continue
		}
		for _, pl := range FrustumPlanes {
			out, n := pl.Clip(tri)
			for _, piece := range out[:n] {
				for _, v := range piece {
					if d := pl.Distance(v.Pos); d < -1e-9 {
						t.Fatalf("%v: corner outside, distance %g", pl, d)
					}
				}
				if b := area2(piece); math.Abs(b) > 1e-9 && b*a < 0 {
					t.Fatalf("%v: winding order changed", pl)
				}
			}
		}
	}
}
