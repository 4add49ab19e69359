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

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

func platformInit() error {
	return nil
}

// ReadAvailable reads the pending keyboard input into buf, without
// waiting and without echo. It returns 0 if no input is available.
func ReadAvailable(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	fd := int(os.Stdin.Fd())

	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}
	defer term.Restore(fd, state)

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, &PlatformError{Op: "poll", Err: err}
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return 0, nil
	}

	n, err = unix.Read(fd, buf)
	if err != nil {
		return 0, &PlatformError{Op: "read", Err: err}
	}
	return n, nil
}

func platformSize(bool) (int, int, error) {
	return visibleSize()
}

// SetSize asks the terminal to change its size. Many terminal emulators
// ignore the request.
func SetSize(cols, rows int) error {
	ws := &unix.Winsize{Col: uint16(cols), Row: uint16(rows)}
	err := unix.IoctlSetWinsize(int(os.Stdout.Fd()), unix.TIOCSWINSZ, ws)
	if err != nil {
		return &PlatformError{Op: "set size", Err: err}
	}
	return nil
}
