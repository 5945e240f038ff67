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

// Package store holds the collaborators which supply the export engine
// with image records and pixel data.
//
// [Memory], [Redis] and [Postgres] implement the record lookup, [Memory], [Files]
// and [S3] implement the pixel lookup.
package store

import "errors"

// ErrNotFound is returned when an image ID or pixel path is unknown.
var ErrNotFound = errors.New("not found")
