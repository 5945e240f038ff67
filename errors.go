// seehuhn.de/go/annotate - render annotations onto images
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

package annotate

import (
	"errors"
	"fmt"

	"seehuhn.de/go/annotate/store"
)

var (
	// ErrNotFound indicates that the requested image does not exist.
	ErrNotFound = store.ErrNotFound

	// ErrInvalidOption indicates that the export options are out of range.
	// Errors of this kind are reported as [*OptionError].
	ErrInvalidOption = errors.New("invalid option")

	// ErrIO indicates that the image data could not be read, decoded or
	// encoded. Errors of this kind are reported as [*IOError].
	ErrIO = errors.New("I/O failure")
)

// OptionError reports an export option with an invalid value.
type OptionError struct {
	Field string // JSON name of the option
	Value string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s=%q", e.Field, e.Value)
}

// Is makes errors.Is(err, ErrInvalidOption) succeed.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// IOError reports a failure to read, decode or encode the pixel data of
// an image.
type IOError struct {
	Op   string // "read", "decode" or "encode"
	Path string // pixel source path of the image
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error. A missing pixel file belongs to an
// existing image, so [ErrNotFound] is not passed on.
func (e *IOError) Unwrap() error {
	if errors.Is(e.Err, ErrNotFound) {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrIO) succeed.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
