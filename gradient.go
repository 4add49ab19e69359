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

// Gradient is an ordered ramp of glyphs, from the darkest to the
// brightest.
type Gradient []rune

// NewGradient returns the gradient formed by the runes of s.
func NewGradient(s string) Gradient {
	return Gradient([]rune(s))
}

// Char returns the glyph for the given intensity. Intensity 0 selects the
// first glyph, intensity 255 the last. An empty gradient always gives ' '.
func (g Gradient) Char(intensity uint8) rune {
	if len(g) == 0 {
		return ' '
	}
	return g[len(g)*int(intensity)/256]
}

// Built-in gradients.
var (
	// GradientFull is a 70 glyph ramp for fine shading.
	GradientFull = NewGradient(" .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$")

	// GradientMin is a 10 glyph ramp which reads well at small sizes.
	GradientMin = NewGradient(" .:-=+*#%@")
)
