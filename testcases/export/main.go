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

// Command export renders all test cases and writes them to testdata/:
// an ANSI file and a PNG image per scene, together with an index
// testcases.json describing the scenes.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/testcases"
)

func main() {
	outDir := flag.String("o", "testdata", "output directory")
	verbose := flag.Bool("v", false, "log buffer allocations")
	flag.Parse()

	if *verbose {
		termgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(outDir, name, tc); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// export writes the .ans and .png files for one scene.
func export(outDir, name string, tc testcases.TestCase) error {
	c, err := testcases.Render(tc)
	if err != nil {
		return err
	}
	defer c.Release()

	buf := &bytes.Buffer{}
	if err := c.Flush(buf); err != nil {
		return err
	}
	err = os.WriteFile(filepath.Join(outDir, name+".ans"), buf.Bytes(), 0o644)
	if err != nil {
		return err
	}

	buf.Reset()
	if err := png.Encode(buf, c.Image(nil)); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name+".png"), buf.Bytes(), 0o644)
}

type jsonTestCase struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Caps   []string `json:"caps,omitempty"`
	Ops    []string `json:"ops"`
}

var capNames = []struct {
	cap  termgl.Capability
	name string
}{
	{termgl.DepthTest, "depth_test"},
	{termgl.OutputBuffer, "output_buffer"},
	{termgl.DoubleWidth, "double_width"},
	{termgl.Progressive, "progressive"},
	{termgl.CullFace, "cull_face"},
	{termgl.Clockwise, "clockwise"},
	{termgl.CullFront, "cull_front"},
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, c := range capNames {
		if tc.Caps&c.cap != 0 {
			jtc.Caps = append(jtc.Caps, c.name)
		}
	}
	for _, op := range tc.Ops {
		var s string
		switch op := op.(type) {
		case testcases.Line:
			s = "line"
		case testcases.Triangle:
			s = "fill_triangle"
			if op.Outline {
				s = "triangle"
			}
		case testcases.Fill:
			s = "fill_nonzero"
			if op.Rule == termgl.EvenOdd {
				s = "fill_evenodd"
			}
		case testcases.Text:
			s = "text"
		case testcases.Mesh:
			s = fmt.Sprintf("mesh(%d)", len(op.Triangles))
		}
		jtc.Ops = append(jtc.Ops, s)
	}
	return jtc
}
