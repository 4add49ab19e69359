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

// Package termgl renders lines, triangles and filled vector paths into a
// grid of character cells and writes the result to an ANSI terminal.
//
// A [Canvas] holds the frame buffer. Each [Cell] stores a glyph and a
// [Color], which packs foreground, background, intensity and the bold and
// underline attributes into 16 bits. Drawing operations take a [Shader]
// which maps the interpolated texture coordinates (u, v) of a cell to a
// glyph and a color; [Gradient] turns an intensity into a glyph.
//
// Optional capabilities are switched with [Canvas.Enable] and
// [Canvas.Disable]:
//
//   - [DepthTest] allocates a depth buffer. Larger depth values are closer
//     to the viewer, and a cell is only overwritten by writes at least as
//     close as the current content.
//   - [OutputBuffer] makes [Canvas.Flush] assemble the frame in a staging
//     buffer and emit it with a single write.
//   - [Progressive] homes the cursor instead of clearing the screen.
//   - [DoubleWidth] prints every glyph twice.
//   - [CullFace], [Clockwise] and [CullFront] control face culling in the
//     3D pipeline of package render3d.
//
// Flush emits only the SGR parameters which change between neighbouring
// cells. Every frame starts and ends in [DefaultColor].
//
// The sub-package render3d maps triangle meshes through a model transform
// and a perspective camera onto a canvas, and the sub-package console
// provides terminal size queries and non-blocking keyboard input.
package termgl

//go:generate go run ./testcases/export -o testdata
