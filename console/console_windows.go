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

//go:build windows

package console

import (
	"golang.org/x/sys/windows"
)

func platformInit() error {
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return &PlatformError{Op: "init", Err: err}
	}
	var mode uint32
	if err := windows.GetConsoleMode(out, &mode); err != nil {
		return &PlatformError{Op: "init", Err: err}
	}
	if err := windows.SetConsoleMode(out, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return &PlatformError{Op: "init", Err: err}
	}

	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return &PlatformError{Op: "init", Err: err}
	}
	if err := windows.GetConsoleMode(in, &mode); err != nil {
		return &PlatformError{Op: "init", Err: err}
	}
	mode &^= windows.ENABLE_MOUSE_INPUT | windows.ENABLE_WINDOW_INPUT | windows.ENABLE_QUICK_EDIT_MODE
	if err := windows.SetConsoleMode(in, mode); err != nil {
		return &PlatformError{Op: "init", Err: err}
	}
	return nil
}

// ReadAvailable reads the pending keyboard input into buf, without
// waiting and without echo. It returns 0 if no input is available.
func ReadAvailable(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}

	var oldMode uint32
	if err := windows.GetConsoleMode(in, &oldMode); err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}
	newMode := oldMode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT)
	if err := windows.SetConsoleMode(in, newMode); err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}
	defer windows.SetConsoleMode(in, oldMode)

	ev, err := windows.WaitForSingleObject(in, 0)
	if err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}
	if ev != windows.WAIT_OBJECT_0 {
		return 0, nil
	}

	var n uint32
	if err := windows.ReadFile(in, buf, &n, nil); err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}
	return int(n), nil
}

func platformSize(wantScreenBuffer bool) (int, int, error) {
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 0, 0, &PlatformError{Op: "get size", Err: err}
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(out, &info); err != nil {
		return 0, 0, &PlatformError{Op: "get size", Err: err}
	}
	if wantScreenBuffer {
		return int(info.Size.X), int(info.Size.Y), nil
	}
	w := info.Window
	return int(w.Right-w.Left) + 1, int(w.Bottom-w.Top) + 1, nil
}

var procSetConsoleScreenBufferSize = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetConsoleScreenBufferSize")

// SetSize changes the size of the console screen buffer.
func SetSize(cols, rows int) error {
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return &PlatformError{Op: "set size", Err: err}
	}
	size := windows.Coord{X: int16(cols), Y: int16(rows)}
	coord := uintptr(uint16(size.X)) | uintptr(uint16(size.Y))<<16
	r, _, err := procSetConsoleScreenBufferSize.Call(uintptr(out), coord)
	if r == 0 {
		return &PlatformError{Op: "set size", Err: err}
	}
	return nil
}
