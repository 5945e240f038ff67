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
	"fmt"
	"image/png"
	"strings"
)

// Format selects the output type of an export.
type Format int

// These are the supported output formats.
const (
	FormatRaster Format = iota + 1 // PNG image
	FormatVector                   // PDF document
)

// ParseFormat converts a format name into a Format.
// Both "raster"/"vector" and the file type names "png"/"pdf" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "raster", "png":
		return FormatRaster, nil
	case "vector", "pdf":
		return FormatVector, nil
	}
	return 0, &OptionError{Field: "format", Value: s}
}

func (f Format) String() string {
	switch f {
	case FormatRaster:
		return "raster"
	case FormatVector:
		return "vector"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type of files in this format.
func (f Format) ContentType() string {
	if f == FormatVector {
		return "application/pdf"
	}
	return "image/png"
}

// Ext returns the file name extension, without the leading dot.
func (f Format) Ext() string {
	if f == FormatVector {
		return "pdf"
	}
	return "png"
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	if f != FormatRaster && f != FormatVector {
		return nil, &OptionError{Field: "format", Value: f.String()}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	g, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// Defaults and limits for the numeric options.
const (
	DefaultQuality = 80
	DefaultScale   = 1.0

	MinQuality = 1
	MaxQuality = 100
	MinScale   = 0.1
	MaxScale   = 5.0
)

// Options controls the content and encoding of an export.
type Options struct {
	Format             Format `json:"format"`
	IncludeAnnotations bool   `json:"includeAnnotations"`
	IncludeMetadata    bool   `json:"includeMetadata"`

	// Quality selects the PNG compression effort, from 1 (fastest) to 100
	// (smallest). The output is lossless in all cases.
	// It is ignored for PDF output. Nil means DefaultQuality.
	Quality *int `json:"quality,omitempty"`

	// Scale resizes the output. Annotations are drawn in image pixel
	// space first. Nil means DefaultScale.
	Scale *float64 `json:"scale,omitempty"`
}

// Validate checks the options against the allowed ranges.
// Values outside the ranges are rejected, never clamped.
// The returned error is an [*OptionError].
func (o *Options) Validate() error {
	if o.Format != FormatRaster && o.Format != FormatVector {
		return &OptionError{Field: "format", Value: o.Format.String()}
	}
	if q := o.Quality; q != nil && (*q < MinQuality || *q > MaxQuality) {
		return &OptionError{Field: "quality", Value: fmt.Sprint(*q)}
	}
	// written so that NaN fails
	if s := o.Scale; s != nil && !(*s >= MinScale && *s <= MaxScale) {
		return &OptionError{Field: "scale", Value: fmt.Sprint(*s)}
	}
	return nil
}

func (o *Options) quality() int {
	if o.Quality == nil {
		return DefaultQuality
	}
	return *o.Quality
}

func (o *Options) scale() float64 {
	if o.Scale == nil {
		return DefaultScale
	}
	return *o.Scale
}

// compressionLevel maps the quality setting to a PNG encoder level.
func (o *Options) compressionLevel() png.CompressionLevel {
	q := o.quality()
	switch {
	case q <= 33:
		return png.BestSpeed
	case q <= 66:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
