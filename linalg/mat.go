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

import "math"

// Mat4 is a 4x4 matrix, stored in row-major order.
// Matrices act on column vectors: the image of p is M·p.
type Mat4 [4][4]float64

// Identity is the 4x4 identity matrix.
var Identity = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Scale returns the matrix which scales by x, y and z along the axes.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns the matrix which moves points by (x, y, z).
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Rotate returns the matrix which rotates by x radians about the x axis,
// then by y about the y axis and finally by z about the z axis.
// This equals Rz·Ry·Rx.
func Rotate(x, y, z float64) Mat4 {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)
	return Mat4{
		{cy * cz, sx*sy*cz - cx*sz, cx*sy*cz + sx*sz, 0},
		{cy * sz, sx*sy*sz + cx*cz, cx*sy*sz - sx*cz, 0},
		{-sy, sx * cy, cx * cy, 0},
		{0, 0, 0, 1},
	}
}

// Perspective returns a perspective projection for a viewport of the
// given aspect ratio (width/height). fov is the vertical field of view in
// radians; near and far are the distances of the clip planes.
//
// Points in front of the camera have positive z. After projection, w is
// the input z and visible points satisfy -w <= x, y, z <= w.
func Perspective(fov, aspect, near, far float64) Mat4 {
	s := 1 / math.Tan(fov/2)
	a := 1 / (far - near)
	return Mat4{
		{s / aspect, 0, 0, 0},
		{0, s, 0, 0},
		{0, 0, -(far + near) * a, 2 * far * near * a},
		{0, 0, 1, 0},
	}
}

// Mul returns the matrix product M·N.
func (M Mat4) Mul(N Mat4) Mat4 {
	var res Mat4
	for i := range 4 {
		for j := range 4 {
			var s float64
			for k := range 4 {
				s += M[i][k] * N[k][j]
			}
			res[i][j] = s
		}
	}
	return res
}

// MulVec applies M to the point p, taking w=1.
func (M Mat4) MulVec(p Vec3) Vec4 {
	return Vec4{
		X: M[0][0]*p.X + M[0][1]*p.Y + M[0][2]*p.Z + M[0][3],
		Y: M[1][0]*p.X + M[1][1]*p.Y + M[1][2]*p.Z + M[1][3],
		Z: M[2][0]*p.X + M[2][1]*p.Y + M[2][2]*p.Z + M[2][3],
		W: M[3][0]*p.X + M[3][1]*p.Y + M[3][2]*p.Z + M[3][3],
	}
}

// Project applies M to the point p and divides by the resulting w.
// If w is zero, the division is skipped.
func (M Mat4) Project(p Vec3) Vec3 {
	return Divide(M.MulVec(p))
}

// Divide performs the perspective divide.
// If w is zero, the first three components are returned unchanged.
func Divide(v Vec4) Vec3 {
	if v.W == 0 {
		return v.XYZ()
	}
	return v.XYZ().Mul(1 / v.W)
}
