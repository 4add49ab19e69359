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

// Command tgldemo shows a spinning, textured cube in the terminal.
// Press q to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/termgl"
	"seehuhn.de/go/termgl/console"
	"seehuhn.de/go/termgl/render3d"
)

func main() {
	fps := flag.Int("fps", 30, "frames per second")
	wire := flag.Bool("wire", false, "draw the cube as a wireframe")
	textured := flag.Bool("texture", false, "shade the faces with a texture")
	double := flag.Bool("double", false, "print every cell twice")
	useTcell := flag.Bool("tcell", false, "draw through tcell instead of writing ANSI sequences")
	logFile := flag.String("log", "", "write debug log to `file`")
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tgldemo:", err)
			os.Exit(1)
		}
		defer f.Close()
		termgl.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &demo{
		frame:  time.Second / time.Duration(max(*fps, 1)),
		fill:   !*wire,
		double: *double,
		shader: termgl.Linear2D{
			Gradient: termgl.GradientFull,
			Color:    termgl.Green | termgl.HighIntensity,
			Base:     30,
			IU:       140,
			IV:       140,
		},
	}
	if *textured {
		d.shader = termgl.Texture{Image: stripes(), Gradient: termgl.GradientFull, Attr: termgl.BkgBlack}
	}

	var err error
	if *useTcell {
		err = d.runTcell(ctx)
	} else {
		err = d.runANSI(ctx)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "tgldemo:", err)
		os.Exit(1)
	}
}

type demo struct {
	frame  time.Duration
	fill   bool
	double bool
	shader termgl.Shader

	canvas *termgl.Canvas
	pipe   *render3d.Pipeline
	model  *render3d.Transform
	mesh   []render3d.Triangle
}

// resize allocates a new canvas for a terminal of the given size. The
// last terminal row stays empty, since every frame row ends in a newline.
func (d *demo) resize(cols, rows int) error {
	if d.canvas != nil {
		d.canvas.Release()
	}
	caps := termgl.DepthTest | termgl.CullFace | termgl.OutputBuffer | termgl.Progressive
	if d.double {
		caps |= termgl.DoubleWidth
		cols /= 2
	}
	c, err := termgl.New(max(cols, 1), max(rows-1, 1), termgl.WithCapabilities(caps))
	if err != nil {
		return err
	}
	d.canvas = c
	d.pipe = render3d.NewPipeline(c)
	if d.model == nil {
		d.model = render3d.NewTransform()
		d.mesh = render3d.Cube()
	}
	return nil
}

// draw renders the cube at time t.
func (d *demo) draw(t float64) {
	c := d.canvas
	c.Clear(termgl.FrameBuffer | termgl.DepthBuffer)

	d.model.SetRotate(0.7*t, t, 0.3*t)
	d.model.SetTranslate(0, 0, 2.2)
	d.model.Update()

	// cells are about twice as tall as wide
	width := c.Width()
	if !d.double {
		width /= 2
	}
	vs := render3d.MVP{
		Model:      d.model,
		Projection: render3d.Camera(width, c.Height(), math.Pi/3, 0.1, 10),
	}
	d.pipe.Stats = render3d.Stats{}
	d.pipe.DrawMesh(d.mesh, vs, d.shader, d.fill)

	status := fmt.Sprintf(" %d/%d triangles drawn, press q to quit", d.pipe.Stats.Drawn, d.pipe.Stats.Submitted)
	c.PutString(0, c.Height()-1, status, termgl.Black|termgl.BkgWhite)
}

func (d *demo) runANSI(ctx context.Context) error {
	if err := console.Init(); err != nil {
		return err
	}
	cols, rows, err := console.Size(false)
	if err != nil {
		return err
	}
	if err := d.resize(cols, rows); err != nil {
		return err
	}
	if err := termgl.ClearScreen(os.Stdout); err != nil {
		return err
	}
	defer termgl.ClearScreen(os.Stdout)

	start := time.Now()
	ticker := time.NewTicker(d.frame)
	defer ticker.Stop()
	keys := make([]byte, 16)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		n, err := console.ReadAvailable(keys)
		if err != nil {
			termgl.Logger().Warn("reading keyboard failed", "error", err)
		}
		for _, k := range keys[:n] {
			if k == 'q' || k == 'Q' || k == 3 {
				return nil
			}
		}

		if c, r, err := console.Size(false); err == nil && (c != cols || r != rows) {
			cols, rows = c, r
			if err := d.resize(cols, rows); err != nil {
				return err
			}
			if err := termgl.ClearScreen(os.Stdout); err != nil {
				return err
			}
		}

		d.draw(time.Since(start).Seconds())
		if err := d.canvas.Flush(os.Stdout); err != nil {
			return err
		}
	}
}

func (d *demo) runTcell(ctx context.Context) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	cols, rows := s.Size()
	if err := d.resize(cols, rows); err != nil {
		return err
	}

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(d.frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case <-ticker.C:
		}

		if c, r := s.Size(); c != cols || r != rows {
			cols, rows = c, r
			if err := d.resize(cols, rows); err != nil {
				return err
			}
			s.Clear()
		}
		d.draw(time.Since(start).Seconds())
		d.canvas.Present(s)
		s.Show()
	}
}

// stripes returns a small texture with colored diagonal stripes.
func stripes() image.Image {
	const size = 32
	colors := []color.RGBA{
		termgl.Palette[termgl.Red|termgl.HighIntensity],
		termgl.Palette[termgl.Yellow|termgl.HighIntensity],
		termgl.Palette[termgl.Blue|termgl.HighIntensity],
		termgl.Palette[termgl.White],
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.SetRGBA(x, y, colors[(x+y)/8%len(colors)])
		}
	}
	return img
}
