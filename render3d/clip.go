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

	"seehuhn.de/go/termgl/linalg"
)

// Plane is a clip plane in homogeneous clip coordinates. A point p is on
// the visible side iff p.Dot3(Normal) >= 0.
type Plane struct {
	Normal linalg.Vec3
}

// The six planes of the view frustum.
var (
	Near   = Plane{Normal: linalg.Vec3{X: 0, Y: 0, Z: -1}}
	Far    = Plane{Normal: linalg.Vec3{X: 0, Y: 0, Z: 1}}
	Left   = Plane{Normal: linalg.Vec3{X: 1, Y: 0, Z: 0}}
	Right  = Plane{Normal: linalg.Vec3{X: -1, Y: 0, Z: 0}}
	Bottom = Plane{Normal: linalg.Vec3{X: 0, Y: 1, Z: 0}}
	Top    = Plane{Normal: linalg.Vec3{X: 0, Y: -1, Z: 0}}
)

// FrustumPlanes lists the planes used by [Pipeline.Draw], in the order
// they are applied.
var FrustumPlanes = [6]Plane{Near, Far, Left, Right, Bottom, Top}

// Distance returns the signed distance of p from the plane. Points on
// the visible side have non-negative distance.
func (pl Plane) Distance(p linalg.Vec4) float64 {
	return p.Dot3(pl.Normal)
}

// Clip clips t against the plane. It returns the number n of resulting
// triangles, which are stored in the first n elements of the array:
//
//   - no corner visible: n=0
//   - one corner visible: n=1, the visible corner and the two
//     intersection points
//   - two corners visible: n=2, the visible quadrilateral split in two
//   - all corners visible: n=1, t unchanged
//
// The winding order of t is preserved. Texture coordinates of new corners
// are interpolated along the clipped edges.
func (pl Plane) Clip(t ClipTriangle) ([2]ClipTriangle, int) {
	var out [2]ClipTriangle

	var d [3]float64
	inside := 0
	for i, v := range t {
		d[i] = pl.Distance(v.Pos)
		if d[i] >= 0 {
			inside++
		}
	}

	switch inside {
	case 0:
		return out, 0

	case 3:
		out[0] = t
		return out, 1

	case 1:
		i := 0
		for d[i] < 0 {
			i++
		}
		j, k := (i+1)%3, (i+2)%3
		out[0][i] = t[i]
		out[0][j] = intersect(t[i], t[j], d[i], d[j])
		out[0][k] = intersect(t[i], t[k], d[i], d[k])
		return out, 1

	default: // two corners visible
		k := 0
		for d[k] >= 0 {
			k++
		}
		i, j := (k+1)%3, (k+2)%3
		p1 := intersect(t[j], t[k], d[j], d[k])
		p2 := intersect(t[i], t[k], d[i], d[k])
		out[0] = ClipTriangle{t[i], t[j], p1}
		out[1] = ClipTriangle{t[i], p1, p2}
		return out, 2
	}
}

// intersect returns the point where the edge from the visible corner a
// to the hidden corner b crosses the plane, given the signed distances
// of the corners.
func intersect(a, b ClipVertex, da, db float64) ClipVertex {
	s := da / (da - db)
	return ClipVertex{
		Pos: a.Pos.Lerp(b.Pos, s),
		U:   lerpByte(a.U, b.U, s),
		V:   lerpByte(a.V, b.V, s),
	}
}

func lerpByte(a, b uint8, s float64) uint8 {
	x := float64(a) + (float64(b)-float64(a))*s
	return uint8(max(min(math.Round(x), 255), 0))
}
