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

import "errors"

// ErrAllocation is returned when a canvas buffer cannot be allocated,
// either because the requested size is invalid or because it exceeds
// [MaxCells].
var ErrAllocation = errors.New("termgl: buffer allocation failed")

// IOError reports that the output stream rejected a write. Part of the
// frame may already have been written.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "termgl: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
