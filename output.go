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
	"io"
	"unicode/utf8"

	"github.com/unilibs/uniwidth"
)

// Flush writes the frame buffer to w as a stream of characters and ANSI
// SGR escape sequences.
//
// The frame starts with a screen clear, or with a cursor-home sequence if
// [Progressive] is enabled. Style changes are emitted only where the color
// of a cell differs from its predecessor, and only the changed attributes
// are included. Every row ends in a newline and the frame ends with a
// style reset.
//
// With [OutputBuffer] enabled the frame is assembled in the staging buffer
// and written using a single call to w.Write. Otherwise one Write is issued
// per row, plus one each for the prelude and the final reset. Both modes
// produce identical bytes.
//
// If w returns an error, Flush returns an [*IOError]. Part of the frame may
// already have been written.
func (c *Canvas) Flush(w io.Writer) error {
	if c.out != nil {
		c.out = c.appendFrame(c.out[:0])
		Logger().Debug("frame flushed", "bytes", len(c.out), "buffered", true)
		return c.write(w, c.out)
	}

	if err := c.write(w, c.prelude()); err != nil {
		return err
	}
	cur := DefaultColor
	n := len(c.prelude())
	for y := range c.height {
		c.rowBuf = c.appendRow(c.rowBuf[:0], y, &cur)
		if err := c.write(w, c.rowBuf); err != nil {
			return err
		}
		n += len(c.rowBuf)
	}
	if err := c.write(w, []byte(sgrReset)); err != nil {
		return err
	}
	Logger().Debug("frame flushed", "bytes", n+len(sgrReset), "buffered", false)
	return nil
}

func (c *Canvas) write(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	if err != nil {
		Logger().Warn("write failed", "error", err)
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}

// appendFrame appends the complete encoded frame to dst.
func (c *Canvas) appendFrame(dst []byte) []byte {
	dst = append(dst, c.prelude()...)
	cur := DefaultColor
	for y := range c.height {
		dst = c.appendRow(dst, y, &cur)
	}
	return append(dst, sgrReset...)
}

// appendRow appends row y, terminated by a newline, to dst.
// The current terminal style is tracked in *cur.
func (c *Canvas) appendRow(dst []byte, y int, cur *Color) []byte {
	double := c.caps&DoubleWidth != 0
	for _, cell := range c.frame[y*c.width : (y+1)*c.width] {
		if cell.Color != *cur {
			dst = AppendSGR(dst, *cur, cell.Color)
			*cur = cell.Color
		}
		dst = utf8.AppendRune(dst, cell.Glyph)
		if double && uniwidth.RuneWidth(cell.Glyph) == 1 {
			dst = utf8.AppendRune(dst, cell.Glyph)
		}
	}
	return append(dst, '\n')
}

func (c *Canvas) prelude() []byte {
	if c.caps&Progressive != 0 {
		return []byte(cursorHome)
	}
	return []byte(clearScreen)
}

// AppendSGR appends the SGR sequence which changes the terminal style from
// prev to cur, and returns the extended buffer. Only changed attributes are
// included, in the order bold, underline, foreground, background. If prev
// and cur are equal, dst is returned unchanged.
func AppendSGR(dst []byte, prev, cur Color) []byte {
	prev &= colorMask
	cur &= colorMask
	if prev == cur {
		return dst
	}
	enable := cur &^ prev
	disable := prev &^ cur
	changed := cur ^ prev

	dst = append(dst, '\x1b', '[')
	first := true
	param := func(p ...byte) {
		if !first {
			dst = append(dst, ';')
		}
		first = false
		dst = append(dst, p...)
	}

	switch {
	case disable&Bold != 0:
		param('2', '2')
	case enable&Bold != 0:
		param('1')
	}
	switch {
	case disable&Underline != 0:
		param('2', '4')
	case enable&Underline != 0:
		param('4')
	}
	if changed&fgMask != 0 {
		digit := '0' + byte(cur.Foreground())
		if cur&HighIntensity != 0 {
			param('9', digit)
		} else {
			param('3', digit)
		}
	}
	if changed&bgMask != 0 {
		digit := '0' + byte(cur.Background())
		if cur&HighIntensityBkg != 0 {
			param('1', '0', digit)
		} else {
			param('4', digit)
		}
	}
	return append(dst, 'm')
}

// ClearScreen writes the escape sequence which clears the terminal and
// moves the cursor to the top-left corner.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen)
	if err != nil {
		return &IOError{Op: "clear screen", Err: err}
	}
	return nil
}

// OutputBufferSize returns the capacity of the staging buffer for a canvas
// of the given size. This is the length of the longest frame Flush can
// produce: every cell with a full style change and a double-width glyph,
// plus newlines, the prelude and the final reset.
func OutputBufferSize(width, height int) int {
	return (maxSGRLen+2*utf8.UTFMax)*width*height + height + len(sgrReset) + len(clearScreen)
}

// Escape sequences used by the compositor.
const (
	clearScreen = "\x1b[1;1H\x1b[2J"
	cursorHome  = "\x1b[;H"
	sgrReset    = "\x1b[0m"

	// maxSGRLen is the length of the longest sequence AppendSGR can
	// produce, "\x1b[22;24;97;107m".
	maxSGRLen = 15
)
