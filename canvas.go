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
	"fmt"
	"math"

	"github.com/unilibs/uniwidth"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Cell is one character position of the frame buffer. Glyphs which take
// no terminal column, such as control characters and combining marks, are
// stored as ' '.
type Cell struct {
	Glyph rune
	Color Color
}

// blankCell is the content of a cleared cell.
var blankCell = Cell{Glyph: ' ', Color: DefaultColor}

// Capability is a set of canvas settings which can be switched on and off
// after the canvas has been created.
type Capability uint8

const (
	// DepthTest enables the depth buffer. Writes are only accepted if their
	// depth is at least the depth already stored for the cell.
	DepthTest Capability = 1 << iota

	// OutputBuffer makes Flush assemble the whole frame in memory and
	// write it with a single call.
	OutputBuffer

	// DoubleWidth prints every glyph twice, to approximate square cells.
	DoubleWidth

	// Progressive makes Flush move the cursor home instead of clearing the
	// screen. Use this when every frame overwrites the previous one.
	Progressive

	// CullFace enables back-face culling in the 3D pipeline.
	CullFace

	// Clockwise selects clockwise winding for front faces.
	Clockwise

	// CullFront culls front faces instead of back faces.
	CullFront
)

// Buffer selects canvas buffers for [Canvas.Clear].
type Buffer uint8

const (
	// FrameBuffer holds the glyph and color of every cell.
	FrameBuffer Buffer = 1 << iota

	// DepthBuffer holds the depth of every cell, if DepthTest is enabled.
	DepthBuffer

	// StagingBuffer holds the encoded frame, if OutputBuffer is enabled.
	StagingBuffer
)

// Option configures a Canvas during creation.
type Option func(*canvasOptions)

type canvasOptions struct {
	caps Capability
}

// WithCapabilities enables the given capabilities on the new canvas.
func WithCapabilities(caps Capability) Option {
	return func(o *canvasOptions) {
		o.caps |= caps
	}
}

// Canvas holds the frame buffer, together with the optional depth buffer
// and output staging buffer, and implements the drawing primitives.
// Internal scratch buffers grow as needed but never shrink.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// CTM transforms path coordinates to cell coordinates in FillPath.
	// Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in cells.
	// Must be positive.
	Flatness float64

	// PathDepth is the depth value used for cells written by FillPath.
	PathDepth float64

	width, height int
	maxX, maxY    int

	frame  []Cell
	depth  []float64
	out    []byte // staging buffer, holds the last frame after Flush
	rowBuf []byte // row buffer for unbuffered Flush
	caps   Capability

	// scratch buffers for FillTriangle, indexed by row - yTop
	longMin, longMax   []int
	shortMin, shortMax []int

	// scratch buffers for FillPath
	edges        []edge
	activeIdx    []int
	crossings    []crossing
	pathBox      rect.Rect // bounding box of edges, in cell coordinates
	pathBoxEmpty bool
}

// New allocates a canvas of the given size in cells. The frame buffer is
// cleared to blank cells in [DefaultColor].
//
// New fails with [ErrAllocation] if the size is not positive or exceeds
// [MaxCells], or if one of the requested capabilities cannot allocate its
// buffer.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, fmt.Errorf("%w: invalid canvas size %dx%d", ErrAllocation, width, height)
	}

	o := canvasOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		CTM:       matrix.Identity,
		Flatness:  defaultFlatness,
		PathDepth: 0,

		width:  width,
		height: height,
		maxX:   width - 1,
		maxY:   height - 1,
		frame:  make([]Cell, width*height),
	}
	c.Clear(FrameBuffer)

	if err := c.Enable(o.caps); err != nil {
		return nil, err
	}
	return c, nil
}

// Width returns the width of the canvas in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the rectangle covered by the canvas, in cell coordinates.
func (c *Canvas) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(c.width),
		URy: float64(c.height),
	}
}

// Capabilities returns the currently enabled capabilities.
func (c *Canvas) Capabilities() Capability {
	return c.caps
}

// Enabled reports whether all capabilities in caps are enabled.
func (c *Canvas) Enabled(caps Capability) bool {
	return c.caps&caps == caps
}

// Cell returns the content of the cell at (x, y).
// The coordinates must lie inside the canvas.
func (c *Canvas) Cell(x, y int) Cell {
	return c.frame[y*c.width+x]
}

// Depth returns the depth stored for the cell at (x, y).
// The second return value is false if depth testing is disabled.
func (c *Canvas) Depth(x, y int) (float64, bool) {
	if c.depth == nil {
		return 0, false
	}
	return c.depth[y*c.width+x], true
}

// Clear resets the selected buffers. Frame cells become blank, depth
// values become [DepthCleared] and the staging buffer is emptied.
// Buffers which are not allocated are skipped.
func (c *Canvas) Clear(buffers Buffer) {
	if buffers&FrameBuffer != 0 {
		for i := range c.frame {
			c.frame[i] = blankCell
		}
	}
	if buffers&DepthBuffer != 0 {
		for i := range c.depth {
			c.depth[i] = DepthCleared
		}
	}
	if buffers&StagingBuffer != 0 && c.out != nil {
		c.out = c.out[:0]
	}
}

// Enable switches on the given capabilities. Capabilities which are
// already enabled are left untouched. Enabling [DepthTest] allocates and
// clears the depth buffer; enabling [OutputBuffer] allocates the staging
// buffer.
//
// If a buffer cannot be allocated, Enable returns [ErrAllocation] and the
// canvas keeps its previous settings.
func (c *Canvas) Enable(caps Capability) error {
	enable := caps &^ c.caps

	var depth []float64
	var out []byte
	if enable&OutputBuffer != 0 {
		size := OutputBufferSize(c.width, c.height)
		if size > MaxOutputBytes {
			return fmt.Errorf("%w: output buffer of %d bytes exceeds limit", ErrAllocation, size)
		}
		out = make([]byte, 0, size)
		Logger().Debug("output buffer allocated", "bytes", size)
	}
	if enable&DepthTest != 0 {
		depth = make([]float64, c.width*c.height)
		for i := range depth {
			depth[i] = DepthCleared
		}
		Logger().Debug("depth buffer allocated", "cells", len(depth))
	}

	if depth != nil {
		c.depth = depth
	}
	if out != nil {
		c.out = out
	}
	c.caps |= caps
	return nil
}

// Disable switches off the given capabilities and frees the buffers which
// belong to them.
func (c *Canvas) Disable(caps Capability) {
	disable := caps & c.caps
	c.caps &^= caps
	if disable&DepthTest != 0 {
		c.depth = nil
		Logger().Debug("depth buffer released")
	}
	if disable&OutputBuffer != 0 {
		c.out = nil
		Logger().Debug("output buffer released")
	}
}

// Release drops all buffers owned by the canvas.
// The canvas must not be used afterwards.
func (c *Canvas) Release() {
	c.frame = nil
	c.depth = nil
	c.out = nil
	c.rowBuf = nil
	c.caps = 0
	c.longMin, c.longMax = nil, nil
	c.shortMin, c.shortMax = nil, nil
	c.edges = nil
	c.activeIdx = nil
	c.crossings = nil
}

// clamp moves (x, y) to the nearest cell inside the canvas.
func (c *Canvas) clamp(x, y int) (int, int) {
	return max(min(c.maxX, x), 0), max(min(c.maxY, y), 0)
}

// setPixel writes one cell, subject to the depth test.
// The coordinates must already be clamped.
func (c *Canvas) setPixel(x, y int, z float64, glyph rune, col Color) {
	i := y*c.width + x
	if c.depth != nil {
		if z < c.depth[i] {
			return
		}
		c.depth[i] = z
	}
	c.frame[i] = Cell{Glyph: cellGlyph(glyph), Color: col & colorMask}
}

// setPixelRaw writes one cell without consulting the depth buffer.
func (c *Canvas) setPixelRaw(x, y int, glyph rune, col Color) {
	c.frame[y*c.width+x] = Cell{Glyph: cellGlyph(glyph), Color: col & colorMask}
}

// cellGlyph replaces glyphs which occupy no terminal column, such as
// control characters and combining marks, by a space.
func cellGlyph(r rune) rune {
	if r >= 0x20 && r < 0x7f {
		return r
	}
	if r < 0xa0 || uniwidth.RuneWidth(r) == 0 {
		return ' '
	}
	return r
}

// Limits and sentinel values for canvas buffers.
const (
	// MaxCells is the largest number of cells a canvas may have.
	MaxCells = 1 << 22

	// MaxOutputBytes is the largest staging buffer OutputBuffer may
	// allocate.
	MaxOutputBytes = 1 << 26

	// defaultFlatness is the default curve flattening tolerance in cells.
	defaultFlatness = 0.25
)

// DepthCleared is the value of every depth cell after clearing.
// Any real depth passes the depth test against it.
var DepthCleared = math.Inf(-1)
