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

// Package render3d draws triangle meshes onto a termgl canvas.
//
// Triangles pass through a vertex shader into clip space, are clipped
// against the six planes of the view frustum, divided by w and mapped to
// the canvas. Optionally, back faces are culled before the remaining
// triangles are drawn using [termgl.Canvas.FillTriangle] or
// [termgl.Canvas.Triangle].
//
// The clip space conventions follow [linalg.Perspective]: the camera looks
// along the positive z axis, and a point is visible iff -w <= x, y, z <= w.
// Larger depth values are closer to the camera, matching the depth test
// of the canvas.
package render3d

import "seehuhn.de/go/termgl/linalg"

// Camera returns the projection matrix for a canvas of the given size in
// cells. fov is the vertical field of view in radians; near and far are
// the distances of the near and far clip planes.
func Camera(width, height int, fov, near, far float64) linalg.Mat4 {
	return linalg.Perspective(fov, float64(width)/float64(height), near, far)
}

// Transform composes scale, rotation and translation into a model matrix.
// The combined matrix Translate·Scale·Rotate is only recomputed by
// [Transform.Update].
type Transform struct {
	scale     linalg.Mat4
	rotate    linalg.Mat4
	translate linalg.Mat4
	result    linalg.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{
		scale:     linalg.Identity,
		rotate:    linalg.Identity,
		translate: linalg.Identity,
		result:    linalg.Identity,
	}
}

// SetScale sets the scale factors along the three axes.
func (t *Transform) SetScale(x, y, z float64) {
	t.scale = linalg.Scale(x, y, z)
}

// SetRotate sets the rotation angles, in radians, about the x, y and z
// axes. See [linalg.Rotate] for the order of the rotations.
func (t *Transform) SetRotate(x, y, z float64) {
	t.rotate = linalg.Rotate(x, y, z)
}

// SetTranslate sets the translation.
func (t *Transform) SetTranslate(x, y, z float64) {
	t.translate = linalg.Translate(x, y, z)
}

// Update recomputes the combined matrix.
func (t *Transform) Update() {
	t.result = t.translate.Mul(t.scale).Mul(t.rotate)
}

// Matrix returns the combined matrix, as of the last call to Update.
func (t *Transform) Matrix() linalg.Mat4 {
	return t.result
}

// Apply maps p using the combined matrix.
func (t *Transform) Apply(p linalg.Vec3) linalg.Vec3 {
	return t.result.Project(p)
}

// ApplyTriangle maps the corners of tri using the combined matrix.
// Texture coordinates are copied unchanged.
func (t *Transform) ApplyTriangle(tri Triangle) Triangle {
	for i := range tri {
		tri[i].Pos = t.Apply(tri[i].Pos)
	}
	return tri
}
