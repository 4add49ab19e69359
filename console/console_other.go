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

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package console

func platformInit() error {
	return nil
}

// ReadAvailable is not supported on this platform.
func ReadAvailable(buf []byte) (int, error) {
	return 0, &PlatformError{Op: "read", Err: ErrUnsupported}
}

func platformSize(bool) (int, int, error) {
	return visibleSize()
}

// SetSize is not supported on this platform.
func SetSize(cols, rows int) error {
	return &PlatformError{Op: "set size", Err: ErrUnsupported}
}
