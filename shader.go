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
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Shader maps interpolated surface parameters to the glyph and color of a
// cell. The primitives call Shade once for every cell they cover; the
// order and number of calls is unspecified.
//
// Implementations must not modify the canvas being drawn to.
type Shader interface {
	Shade(u, v uint8) (glyph rune, c Color)
}

// ShaderFunc adapts an ordinary function to the [Shader] interface.
type ShaderFunc func(u, v uint8) (rune, Color)

// Shade calls f(u, v).
func (f ShaderFunc) Shade(u, v uint8) (rune, Color) {
	return f(u, v)
}

// Flat draws every cell with the same glyph and color.
type Flat struct {
	Glyph rune
	Color Color
}

// Shade implements the [Shader] interface.
func (s Flat) Shade(u, v uint8) (rune, Color) {
	return s.Glyph, s.Color
}

// Linear1D maps u to an intensity which varies linearly from I0 (at u=0)
// to I1 (at u=255), and looks the intensity up in Gradient.
// The v parameter is ignored.
type Linear1D struct {
	Gradient Gradient
	Color    Color
	I0, I1   uint8
}

// Shade implements the [Shader] interface.
func (s Linear1D) Shade(u, v uint8) (rune, Color) {
	i := (int(s.I0)*(255-int(u)) + int(s.I1)*int(u)) / 255
	return s.Gradient.Char(uint8(i)), s.Color
}

// Linear2D blends a base intensity with one contribution along each of
// the u and v axes. Base is the intensity at u=v=0, IU the intensity at
// (255, 0) and IV the intensity at (0, 255).
// The result is clamped to 0..255 and looked up in Gradient.
type Linear2D struct {
	Gradient Gradient
	Color    Color

	Base, IU, IV uint8
}

// Shade implements the [Shader] interface.
func (s Linear2D) Shade(u, v uint8) (rune, Color) {
	base := int(s.Base)
	i := base + (int(s.IU)-base)*int(u)/255 + (int(s.IV)-base)*int(v)/255
	i = max(min(i, 255), 0)
	return s.Gradient.Char(uint8(i)), s.Color
}

// Texture samples an image. The parameters u and v address the image
// bounds, with (0, 0) at the top-left pixel and (255, 255) at the
// bottom-right pixel.
//
// The lightness of the sampled pixel selects the glyph from Gradient and
// the nearest ANSI palette color, by CIE L*a*b* distance, becomes the
// foreground. Background and attribute bits are taken from Attr.
// Fully transparent pixels are drawn as blank cells in Attr.
type Texture struct {
	Image    image.Image
	Gradient Gradient
	Attr     Color
}

// Shade implements the [Shader] interface.
func (s Texture) Shade(u, v uint8) (rune, Color) {
	if s.Image == nil {
		return ' ', s.Attr
	}
	b := s.Image.Bounds()
	if b.Empty() {
		return ' ', s.Attr
	}
	x := b.Min.X + int(u)*(b.Dx()-1)/255
	y := b.Min.Y + int(v)*(b.Dy()-1)/255

	col, ok := colorful.MakeColor(s.Image.At(x, y))
	if !ok {
		return ' ', s.Attr
	}

	l, _, _ := col.Lab()
	intensity := max(min(int(l*255+0.5), 255), 0)

	return s.Gradient.Char(uint8(intensity)), s.Attr&^fgMask | NearestColor(col)
}

// NearestColor returns the foreground color (including the high intensity
// bit) of the [Palette] entry closest to c.
func NearestColor(c colorful.Color) Color {
	best := 0
	bestDist := c.DistanceLab(paletteLab[0])
	for i := 1; i < len(paletteLab); i++ {
		d := c.DistanceLab(paletteLab[i])
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return Color(best)
}

var paletteLab = func() [16]colorful.Color {
	var res [16]colorful.Color
	for i, rgba := range Palette {
		res[i], _ = colorful.MakeColor(rgba)
	}
	return res
}()
