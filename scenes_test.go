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

package termgl_test

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/testcases"
)

var update = flag.Bool("update", false, "rewrite the reference frames in testdata/")

// TestAgainstReference compares every scene with the frames stored in
// testdata/ by the export command. On mismatch, the rendered frame is
// written to debug/. With -update the reference frames are rewritten
// instead.
func TestAgainstReference(t *testing.T) {
	if *update {
		if err := os.MkdirAll("testdata", 0o755); err != nil {
			t.Fatal(err)
		}
	} else if _, err := os.Stat("testdata"); err != nil {
		t.Fatalf("reference frames missing, run \"go generate\" or \"go test -update\": %v", err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				c, err := testcases.Render(tc)
				if err != nil {
					t.Fatal(err)
				}
				buf := &bytes.Buffer{}
				if err := c.Flush(buf); err != nil {
					t.Fatal(err)
				}

				fname := filepath.Join("testdata", name+".ans")
				if *update {
					if err := os.WriteFile(fname, buf.Bytes(), 0o644); err != nil {
						t.Fatal(err)
					}
					return
				}

				ref, err := os.ReadFile(fname)
				if errors.Is(err, fs.ErrNotExist) {
					t.Fatal("no reference frame")
				} else if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(buf.Bytes(), ref) {
					_ = writeDebugImage(name, c)
					t.Errorf("frame differs from reference (%d vs %d bytes)", buf.Len(), len(ref))
				}
			})
		}
	}
}

func writeDebugImage(name string, c *termgl.Canvas) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, c.Image(nil))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestSceneNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			for _, r := range tc.Name {
				if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
					t.Errorf("%s/%s: invalid character %q in name", category, tc.Name, r)
				}
			}
			name := category + "_" + tc.Name
			if seen[name] {
				t.Errorf("duplicate scene %s", name)
			}
			seen[name] = true
		}
	}
}

// TestScenesDrawSomething makes sure that no scene renders to an empty
// frame, except for the ones which are meant to.
func TestScenesDrawSomething(t *testing.T) {
	empty := map[string]bool{"precision_thin_missed": true}
	for category, cases := range testcases.All {
		for _, tc := range cases {
			if empty[category+"_"+tc.Name] {
				continue
			}
			c, err := testcases.Render(tc)
			if err != nil {
				t.Fatalf("%s/%s: %v", category, tc.Name, err)
			}
			if countCells(c) == 0 {
				t.Errorf("%s/%s: empty frame", category, tc.Name)
			}
		}
	}
}

func countCells(c *termgl.Canvas) int {
	n := 0
	for y := range c.Height() {
		for x := range c.Width() {
			if c.Cell(x, y).Glyph != ' ' {
				n++
			}
		}
	}
	return n
}

func findScene(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("scene %s_%s not found", category, name)
	panic("unreachable")
}

func TestSceneProperties(t *testing.T) {
	render := func(category, name string) *termgl.Canvas {
		c, err := testcases.Render(findScene(t, category, name))
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	// even-odd leaves holes which nonzero fills
	pairs := [][2]string{
		{"star_nonzero", "star_evenodd"},
	}
	for _, p := range pairs {
		nz, eo := render("fill", p[0]), render("fill", p[1])
		if countCells(eo) >= countCells(nz) {
			t.Errorf("%s: %d cells, %s: %d cells", p[1], countCells(eo), p[0], countCells(nz))
		}
	}
	for _, p := range [][2]string{{"ring_nonzero", "ring_evenodd"}, {"overlap_nonzero", "overlap_evenodd"}} {
		nz, eo := render("subpath", p[0]), render("subpath", p[1])
		if countCells(eo) >= countCells(nz) {
			t.Errorf("%s: %d cells, %s: %d cells", p[1], countCells(eo), p[0], countCells(nz))
		}
	}

	// without depth testing the far triangle wins
	behind := render("depth", "behind")
	plain := render("depth", "no_depth_test")
	if g := behind.Cell(12, 8).Glyph; g != 'N' {
		t.Errorf("depth test: got %q, want 'N'", g)
	}
	if g := plain.Cell(12, 8).Glyph; g != 'F' {
		t.Errorf("no depth test: got %q, want 'F'", g)
	}

	// the circle lies behind the triangle
	pb := render("depth", "path_behind_triangle")
	if g := pb.Cell(22, 6).Glyph; g != 'T' {
		t.Errorf("path behind triangle: got %q, want 'T'", g)
	}
	if g := pb.Cell(31, 10).Glyph; g != 'o' {
		t.Errorf("path outside triangle: got %q, want 'o'", g)
	}
}

func TestPrecisionOffsets(t *testing.T) {
	for _, name := range []string{"offset_0", "offset_25", "offset_50", "offset_75"} {
		c, err := testcases.Render(findScene(t, "precision", name))
		if err != nil {
			t.Fatal(err)
		}
		// the rectangle is 6x4 cells in every position
		if n := countCells(c); n != 24 {
			t.Errorf("%s: %d cells, want 24", name, n)
		}
	}

	thin, _ := testcases.Render(findScene(t, "precision", "thin_horizontal"))
	if n := countCells(thin); n != 16 {
		t.Errorf("thin_horizontal: %d cells, want 16", n)
	}
	missed, _ := testcases.Render(findScene(t, "precision", "thin_missed"))
	if n := countCells(missed); n != 0 {
		t.Errorf("thin_missed: %d cells, want 0", n)
	}
}

func ExampleCanvas_Flush() {
	c, err := termgl.New(5, 2)
	if err != nil {
		panic(err)
	}
	c.PutString(0, 0, "hi", termgl.Green)
	buf := &bytes.Buffer{}
	if err := c.Flush(buf); err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", buf.String())
	// Output:
	// "\x1b[1;1H\x1b[2J\x1b[32mhi\x1b[37m   \n     \n\x1b[0m"
}
