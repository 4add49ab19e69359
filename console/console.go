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

// Package console provides the terminal services needed by interactive
// programs built on termgl: polling for keyboard input without blocking,
// and querying or changing the size of the console.
//
// The rendering packages never use this package; it is meant for the
// main loop of an application.
package console

import (
	"errors"
	"os"
	"sync"

	"golang.org/x/term"

	"seehuhn.de/go/termgl"
)

// PlatformError reports a failed operating system call.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return "console: " + e.Op + ": " + e.Err.Error()
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// ErrUnsupported is returned by operations which are not available on the
// current platform.
var ErrUnsupported = errors.New("not supported on this platform")

var (
	initOnce sync.Once
	initErr  error
)

// Init prepares the console for ANSI output. On Windows this enables
// virtual terminal processing for standard output and disables mouse and
// window events on standard input. On other platforms nothing needs to be
// done.
//
// Only the first call has an effect; later calls return the result of the
// first one. Init is safe for concurrent use.
func Init() error {
	initOnce.Do(func() {
		initErr = platformInit()
		if initErr != nil {
			termgl.Logger().Warn("console initialization failed", "error", initErr)
		} else {
			termgl.Logger().Debug("console initialized")
		}
	})
	return initErr
}

// Size returns the size of the console in character cells. On Windows,
// wantScreenBuffer selects the size of the screen buffer instead of the
// visible window; elsewhere it is ignored.
func Size(wantScreenBuffer bool) (cols, rows int, err error) {
	return platformSize(wantScreenBuffer)
}

// visibleSize returns the size of the terminal connected to stdout.
func visibleSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, &PlatformError{Op: "get size", Err: err}
	}
	return cols, rows, nil
}
