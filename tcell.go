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
	"github.com/gdamore/tcell/v2"
	"github.com/unilibs/uniwidth"
)

// Style converts c to the equivalent tcell style.
func (c Color) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(c.FgIndex())).
		Background(tcell.PaletteColor(c.BgIndex())).
		Bold(c.IsBold()).
		Underline(c.IsUnderline())
}

// Present copies the frame buffer to the top-left corner of a tcell
// screen. Cells outside the screen are skipped. With [DoubleWidth]
// enabled every cell occupies two screen columns, filled with two copies
// of narrow glyphs or one wide glyph.
//
// Present does not call s.Show.
func (c *Canvas) Present(s tcell.Screen) {
	sw, sh := s.Size()
	double := c.caps&DoubleWidth != 0
	for y := range min(c.height, sh) {
		sx := 0
		for x := range c.width {
			if sx >= sw {
				break
			}
			cell := c.frame[y*c.width+x]
			style := cell.Color.Style()
			s.SetContent(sx, y, cell.Glyph, nil, style)
			sx++
			if double {
				if sx < sw && uniwidth.RuneWidth(cell.Glyph) == 1 {
					s.SetContent(sx, y, cell.Glyph, nil, style)
				}
				sx++
			}
		}
	}
}
