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

package linalg

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec3(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %g, want 12", got)
	}
	if got := a.Cross(b); got != (Vec3{27, 6, -13}) {
		t.Errorf("Cross: got %v", got)
	}
	if got := a.Cross(b).Dot(a); got != 0 {
		t.Errorf("Cross not orthogonal: %g", got)
	}
	if got := a.MulElem(b); got != (Vec3{4, -10, 18}) {
		t.Errorf("MulElem: got %v", got)
	}
	if got := a.AddScalar(1).SubScalar(2); got != (Vec3{0, 1, 2}) {
		t.Errorf("AddScalar/SubScalar: got %v", got)
	}
	if got := (Vec3{2, 4, -0.5}).Inv(); got != (Vec3{0.5, 0.25, -2}) {
		t.Errorf("Inv: got %v", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length: got %g", got)
	}
	if got := (Vec3{0, 0, 7}).Normalize(); got != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize: got %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0): got %v", got)
	}
}

func TestVec4(t *testing.T) {
	a := Vec4{0, 2, 4, 1}
	b := Vec4{4, 2, 0, 3}
	if got := a.Lerp(b, 0.25); got != (Vec4{1, 2, 3, 1.5}) {
		t.Errorf("Lerp: got %v", got)
	}
	if got := a.Dot3(Vec3{0, 0, -1}); got != -3 {
		t.Errorf("Dot3: got %g, want -3", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Add/Sub: got %v", got)
	}
}

func TestMatrixProducts(t *testing.T) {
	p := Vec3{1, 2, 3}
	M := Translate(1, 0, 0).Mul(Scale(2, 3, 4))
	if got := M.Project(p); got != (Vec3{3, 6, 12}) {
		t.Errorf("translate after scale: got %v", got)
	}
	if got := Identity.Mul(M); got != M {
		t.Error("Identity·M != M")
	}
	if got := M.Mul(Identity); got != M {
		t.Error("M·Identity != M")
	}
}

func TestRotate(t *testing.T) {
	cases := []struct {
		x, y, z float64
		in, out Vec3
	}{
		{math.Pi / 2, 0, 0, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{0, math.Pi / 2, 0, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{0, 0, math.Pi / 2, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		// x first, then z
		{math.Pi / 2, 0, math.Pi / 2, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{math.Pi / 2, 0, math.Pi / 2, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		got := Rotate(tc.x, tc.y, tc.z).Project(tc.in)
		if !nearVec3(got, tc.out) {
			t.Errorf("Rotate(%g,%g,%g)·%v = %v, want %v", tc.x, tc.y, tc.z, tc.in, got, tc.out)
		}
	}

	R := Rotate(0.3, -1.2, 2.5)
	want := Rotate(0, 0, 2.5).Mul(Rotate(0, -1.2, 0)).Mul(Rotate(0.3, 0, 0))
	for i := range 4 {
		for j := range 4 {
			if !near(R[i][j], want[i][j]) {
				t.Fatalf("Rotate != Rz·Ry·Rx at (%d,%d)", i, j)
			}
		}
	}
}

func TestPerspective(t *testing.T) {
	const zNear, zFar = 0.5, 20.0
	P := Perspective(math.Pi/2, 2, zNear, zFar)

	q := P.MulVec(Vec3{0, 0, zNear})
	if !near(q.W, zNear) || !near(Divide(q).Z, 1) {
		t.Errorf("near plane: got %v", q)
	}
	q = P.MulVec(Vec3{0, 0, zFar})
	if !near(q.W, zFar) || !near(Divide(q).Z, -1) {
		t.Errorf("far plane: got %v", q)
	}

	// with a 90 degree field of view, y=z lies on the top plane
	if got := P.Project(Vec3{0, 3, 3}); !near(got.Y, 1) {
		t.Errorf("top: got %v", got)
	}
	// the aspect ratio widens the horizontal field of view
	if got := P.Project(Vec3{6, 0, 3}); !near(got.X, 1) {
		t.Errorf("right: got %v", got)
	}

	// depth decreases monotonically with distance
	prev := math.Inf(1)
	for z := zNear; z <= zFar; z += 0.5 {
		d := P.Project(Vec3{0, 0, z}).Z
		if d >= prev {
			t.Fatalf("depth not decreasing at z=%g", z)
		}
		prev = d
	}
}

func TestDivideZeroW(t *testing.T) {
	if got := Divide(Vec4{1, 2, 3, 0}); got != (Vec3{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}
