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

import "image/color"

// Color describes the style of a cell: foreground and background colors
// from the 8-color ANSI palette, their high-intensity variants, and the
// bold and underline attributes.
//
// The bit layout is part of the terminal protocol and must not change:
//
//	bits 0-2  foreground index
//	bit  3    foreground high intensity
//	bits 4-6  background index
//	bit  7    background high intensity
//	bit  8    bold
//	bit  9    underline
type Color uint16

// Foreground colors.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Background colors.
const (
	BkgBlack Color = iota << 4
	BkgRed
	BkgGreen
	BkgYellow
	BkgBlue
	BkgMagenta
	BkgCyan
	BkgWhite
)

// Attribute bits.
const (
	HighIntensity    Color = 0x0008
	HighIntensityBkg Color = 0x0080
	Bold             Color = 0x0100
	Underline        Color = 0x0200
)

// DefaultColor is the style a terminal shows before any SGR sequence:
// white on black without attributes. Cleared cells use this color and the
// compositor assumes it at the start of every frame.
const DefaultColor = White | BkgBlack

const (
	fgMask    Color = 0x000F // foreground nibble, including intensity
	bgMask    Color = 0x00F0 // background nibble, including intensity
	indexMask Color = 0x0007
	colorMask Color = 0x03FF // all defined bits
)

// Foreground returns the foreground palette index (0-7).
func (c Color) Foreground() uint8 {
	return uint8(c & indexMask)
}

// Background returns the background palette index (0-7).
func (c Color) Background() uint8 {
	return uint8(c >> 4 & indexMask)
}

// IsHighIntensity reports whether the foreground uses the bright palette.
func (c Color) IsHighIntensity() bool {
	return c&HighIntensity != 0
}

// IsHighIntensityBkg reports whether the background uses the bright palette.
func (c Color) IsHighIntensityBkg() bool {
	return c&HighIntensityBkg != 0
}

// IsBold reports whether the bold attribute is set.
func (c Color) IsBold() bool {
	return c&Bold != 0
}

// IsUnderline reports whether the underline attribute is set.
func (c Color) IsUnderline() bool {
	return c&Underline != 0
}

// WithForeground returns c with the foreground index replaced.
// Only the low three bits of idx are used.
func (c Color) WithForeground(idx uint8) Color {
	return c&^indexMask | Color(idx)&indexMask
}

// WithBackground returns c with the background index replaced.
// Only the low three bits of idx are used.
func (c Color) WithBackground(idx uint8) Color {
	return c&^(indexMask<<4) | (Color(idx)&indexMask)<<4
}

// Valid reports whether c only uses the defined bits.
func (c Color) Valid() bool {
	return c&^colorMask == 0
}

// FgIndex returns the foreground as an index into [Palette] (0-15).
func (c Color) FgIndex() int {
	return int(c & fgMask)
}

// BgIndex returns the background as an index into [Palette] (0-15).
func (c Color) BgIndex() int {
	return int(c & bgMask >> 4)
}

// Palette holds RGB approximations of the 16 ANSI colors, used when a
// frame is rendered to an image or colors are matched against RGB data.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // black
	{205, 49, 49, 255},   // red
	{13, 188, 121, 255},  // green
	{229, 229, 16, 255},  // yellow
	{36, 114, 200, 255},  // blue
	{188, 63, 188, 255},  // magenta
	{17, 168, 205, 255},  // cyan
	{229, 229, 229, 255}, // white

	{102, 102, 102, 255}, // bright black
	{241, 76, 76, 255},   // bright red
	{35, 209, 139, 255},  // bright green
	{245, 245, 67, 255},  // bright yellow
	{59, 142, 234, 255},  // bright blue
	{214, 112, 214, 255}, // bright magenta
	{41, 184, 219, 255},  // bright cyan
	{255, 255, 255, 255}, // bright white
}
