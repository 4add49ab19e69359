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

// Package linalg provides the small vectors and 4x4 matrices used by the
// 3D pipeline. All types are values; no function modifies its arguments.
package linalg

import "math"

// Vec3 is a vector in three-dimensional space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the scalar multiple s*v.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MulElem returns the element-wise product of v and w.
func (v Vec3) MulElem(w Vec3) Vec3 {
	return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// AddScalar adds s to every component of v.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar subtracts s from every component of v.
func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Inv returns the element-wise reciprocal of v.
func (v Vec3) Inv() Vec3 {
	return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

// Dot returns the scalar product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSq returns the squared Euclidean length of v.
func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Vec4 is a point in homogeneous coordinates.
type Vec4 struct {
	X, Y, Z, W float64
}

// XYZ returns the first three components of v.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Mul returns the scalar multiple s*v.
func (v Vec4) Mul(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Lerp interpolates linearly between v (t=0) and w (t=1).
func (v Vec4) Lerp(w Vec4, t float64) Vec4 {
	return v.Add(w.Sub(v).Mul(t))
}

// Dot3 returns n·(X, Y, Z) + W. For a plane normal n this is the signed
// distance of v from the plane in clip space.
func (v Vec4) Dot3(n Vec3) float64 {
	return n.X*v.X + n.Y*v.Y + n.Z*v.Z + v.W
}
