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

package testcases

import (
	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/linalg"
	"seehuhn.de/go/termgl/render3d"
)

var cubeShader = termgl.Linear2D{
	Gradient: termgl.GradientFull,
	Color:    termgl.White,
	Base:     20,
	IU:       117,
	IV:       117,
}

var meshCases = []TestCase{
	{
		Name:   "cube_front",
		Width:  64,
		Height: 32,
		Caps:   termgl.DepthTest | termgl.CullFace,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Translate: linalg.Vec3{Z: 4},
			Shader:    cubeShader,
		}},
	},
	{
		Name:   "cube_rotated",
		Width:  64,
		Height: 32,
		Caps:   termgl.DepthTest | termgl.CullFace,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Rotate:    linalg.Vec3{X: 0.6, Y: 0.8},
			Translate: linalg.Vec3{Z: 4},
			Shader:    cubeShader,
		}},
	},
	{
		Name:   "cube_depth_only",
		Width:  64,
		Height: 32,
		Caps:   termgl.DepthTest,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Rotate:    linalg.Vec3{X: 0.6, Y: 0.8},
			Translate: linalg.Vec3{Z: 4},
			Shader:    cubeShader,
		}},
	},
	{
		Name:   "cube_cull_front",
		Width:  64,
		Height: 32,
		Caps:   termgl.DepthTest | termgl.CullFace | termgl.CullFront,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Rotate:    linalg.Vec3{X: 0.6, Y: 0.8},
			Translate: linalg.Vec3{Z: 4},
			Shader:    cubeShader,
		}},
	},
	{
		Name:   "cube_wireframe",
		Width:  64,
		Height: 32,
		Caps:   termgl.CullFace,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Rotate:    linalg.Vec3{X: 0.6, Y: 0.8},
			Translate: linalg.Vec3{Z: 4},
			Outline:   true,
			Shader:    flat('#', termgl.Green | termgl.HighIntensity),
		}},
	},
	{
		// The cube reaches through the near plane and is clipped.
		Name:   "cube_near_clip",
		Width:  64,
		Height: 32,
		Caps:   termgl.DepthTest | termgl.CullFace,
		Ops: []Operation{Mesh{
			Triangles: render3d.Cube(),
			Scale:     2,
			Rotate:    linalg.Vec3{X: 0.3, Y: 0.4},
			Translate: linalg.Vec3{Z: 1.5},
			Shader:    cubeShader,
		}},
	},
	{
		Name:   "two_cubes",
		Width:  64,
		Height: 32,
		Caps:   termgl.DepthTest | termgl.CullFace,
		Ops: []Operation{
			Mesh{
				Triangles: render3d.Cube(),
				Rotate:    linalg.Vec3{Y: 0.5},
				Translate: linalg.Vec3{X: -0.8, Z: 5},
				Shader:    flat('#', termgl.Red),
			},
			Mesh{
				Triangles: render3d.Cube(),
				Rotate:    linalg.Vec3{Y: -0.5},
				Translate: linalg.Vec3{X: 0.8, Z: 4},
				Shader:    flat('@', termgl.Cyan),
			},
		},
	},
}
