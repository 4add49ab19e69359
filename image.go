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

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image renders the frame buffer to an RGBA image, the way a terminal
// with the given font would show the output of [Canvas.Flush]. Colors
// are taken from [Palette]. If face is nil, basicfont.Face7x13 is used.
func (c *Canvas) Image(face font.Face) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := 7
	if adv, ok := face.GlyphAdvance('M'); ok && adv.Ceil() > 0 {
		cellWidth = adv.Ceil()
	}
	metrics := face.Metrics()
	cellHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	repeat := 1
	if c.caps&DoubleWidth != 0 {
		repeat = 2
	}

	img := image.NewRGBA(image.Rect(0, 0, c.width*repeat*cellWidth, c.height*cellHeight))
	d := &font.Drawer{Dst: img, Face: face}
	for y := range c.height {
		for x := range c.width {
			cell := c.frame[y*c.width+x]
			fg := image.NewUniform(Palette[cell.Color.FgIndex()])
			bg := image.NewUniform(Palette[cell.Color.BgIndex()])

			for k := range repeat {
				px := (x*repeat + k) * cellWidth
				py := y * cellHeight
				r := image.Rect(px, py, px+cellWidth, py+cellHeight)
				draw.Draw(img, r, bg, image.Point{}, draw.Src)

				baseline := py + ascent
				if cell.Glyph != ' ' && cell.Glyph != 0 {
					d.Src = fg
					d.Dot = fixed.P(px, baseline)
					d.DrawString(string(cell.Glyph))
					if cell.Color.IsBold() {
						d.Dot = fixed.P(px+1, baseline)
						d.DrawString(string(cell.Glyph))
					}
				}
				if cell.Color.IsUnderline() {
					uy := min(baseline+1, py+cellHeight-1)
					draw.Draw(img, image.Rect(px, uy, px+cellWidth, uy+1), fg, image.Point{}, draw.Src)
				}
			}
		}
	}
	return img
}
