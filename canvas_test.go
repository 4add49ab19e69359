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
	"errors"
	"math"
	"testing"
)

func TestNewInvalidSize(t *testing.T) {
	sizes := []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{-1, 5},
		{MaxCells, 2},
		{1 << 12, 1<<10 + 1},
	}
	for _, s := range sizes {
		c, err := New(s.w, s.h)
		if !errors.Is(err, ErrAllocation) {
			t.Errorf("New(%d, %d): got error %v, want ErrAllocation", s.w, s.h, err)
		}
		if c != nil {
			t.Errorf("New(%d, %d): got non-nil canvas", s.w, s.h)
		}
	}
}

func TestNewClearsFrame(t *testing.T) {
	c, err := New(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 7 || c.Height() != 3 {
		t.Fatalf("size: got %dx%d, want 7x3", c.Width(), c.Height())
	}
	for y := range 3 {
		for x := range 7 {
			if got := c.Cell(x, y); got != blankCell {
				t.Errorf("cell (%d,%d): got %v, want %v", x, y, got, blankCell)
			}
		}
	}
	if _, ok := c.Depth(0, 0); ok {
		t.Error("depth buffer present without DepthTest")
	}
	if c.Capabilities() != 0 {
		t.Errorf("capabilities: got %b, want 0", c.Capabilities())
	}
}

func TestEnableDisable(t *testing.T) {
	c, err := New(10, 5, WithCapabilities(DepthTest))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Enabled(DepthTest) {
		t.Fatal("DepthTest not enabled by option")
	}
	d, ok := c.Depth(3, 3)
	if !ok || d != DepthCleared {
		t.Errorf("depth: got %g, %t, want %g, true", d, ok, DepthCleared)
	}

	if err := c.Enable(OutputBuffer | DoubleWidth); err != nil {
		t.Fatal(err)
	}
	if !c.Enabled(DepthTest | OutputBuffer | DoubleWidth) {
		t.Errorf("capabilities: got %b", c.Capabilities())
	}
	if cap(c.out) != OutputBufferSize(10, 5) {
		t.Errorf("staging capacity: got %d, want %d", cap(c.out), OutputBufferSize(10, 5))
	}

	c.Disable(DepthTest | OutputBuffer)
	if c.Enabled(DepthTest) || c.Enabled(OutputBuffer) {
		t.Error("capabilities still enabled after Disable")
	}
	if !c.Enabled(DoubleWidth) {
		t.Error("Disable switched off an unrelated capability")
	}
	if c.depth != nil || c.out != nil {
		t.Error("buffers not released by Disable")
	}
}

func TestEnableTwiceKeepsBuffer(t *testing.T) {
	c, err := New(4, 4, WithCapabilities(DepthTest))
	if err != nil {
		t.Fatal(err)
	}
	c.Point(1, 1, 0.5, 'x', Red)
	if err := c.Enable(DepthTest); err != nil {
		t.Fatal(err)
	}
	if d, _ := c.Depth(1, 1); d != 0.5 {
		t.Errorf("depth after second Enable: got %g, want 0.5", d)
	}
}

func TestEnableFailureKeepsState(t *testing.T) {
	c, err := New(2000, 2000)
	if err != nil {
		t.Fatal(err)
	}
	err = c.Enable(DepthTest | OutputBuffer)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("got error %v, want ErrAllocation", err)
	}
	if c.Capabilities() != 0 || c.depth != nil || c.out != nil {
		t.Error("failed Enable changed the canvas")
	}
}

func TestClear(t *testing.T) {
	c, err := New(5, 5, WithCapabilities(DepthTest|OutputBuffer))
	if err != nil {
		t.Fatal(err)
	}
	c.Point(2, 2, 1, '#', Green)
	c.out = append(c.out, "junk"...)

	c.Clear(DepthBuffer)
	if got := c.Cell(2, 2); got.Glyph != '#' {
		t.Error("Clear(DepthBuffer) touched the frame buffer")
	}
	if d, _ := c.Depth(2, 2); d != DepthCleared {
		t.Errorf("depth: got %g, want %g", d, DepthCleared)
	}

	c.Clear(FrameBuffer | StagingBuffer)
	if got := c.Cell(2, 2); got != blankCell {
		t.Errorf("cell: got %v, want blank", got)
	}
	if len(c.out) != 0 {
		t.Errorf("staging buffer: got %d bytes, want 0", len(c.out))
	}
}

func TestDepthTest(t *testing.T) {
	c, err := New(3, 1, WithCapabilities(DepthTest))
	if err != nil {
		t.Fatal(err)
	}
	c.Point(0, 0, 0.5, 'a', White)
	c.Point(0, 0, 0.2, 'b', White) // farther, rejected
	c.Point(0, 0, 0.5, 'c', White) // equal, accepted
	if got := c.Cell(0, 0).Glyph; got != 'c' {
		t.Errorf("glyph: got %q, want 'c'", got)
	}

	c.Point(1, 0, math.Inf(-1), 'd', White)
	if got := c.Cell(1, 0).Glyph; got != 'd' {
		t.Errorf("glyph at cleared depth: got %q, want 'd'", got)
	}

	c.Disable(DepthTest)
	c.Point(0, 0, -5, 'e', White)
	if got := c.Cell(0, 0).Glyph; got != 'e' {
		t.Errorf("glyph without depth test: got %q, want 'e'", got)
	}
}

func TestInvalidColorBitsMasked(t *testing.T) {
	c, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.PutChar(0, 0, 'x', 0xFC00|Red)
	if got := c.Cell(0, 0).Color; got != Red {
		t.Errorf("color: got %#04x, want %#04x", got, Red)
	}
}
