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

// Package testcases provides annotated example scenes, shared by the
// tests, the benchmarks and the export command.
package testcases

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"time"

	"seehuhn.de/go/annotate/annotation"
)

// Scene is an image together with the annotations drawn on it.
type Scene struct {
	Name        string // lowercase a-z and _ only
	Width       int    // image width in pixels
	Height      int    // image height in pixels
	Annotations []annotation.Annotation
}

// Image returns the record of the scene image. The ID and the pixel path
// are derived from the scene name.
func (s *Scene) Image() annotation.Image {
	return annotation.Image{
		ID:              s.Name,
		Path:            s.Name + ".png",
		Width:           s.Width,
		Height:          s.Height,
		OriginalName:    s.Name + ".png",
		UploadedAt:      time.Date(2025, 11, 3, 9, 15, 0, 0, time.UTC),
		MimeType:        "image/png",
		AnnotationCount: len(s.Annotations),
	}
}

// PNG returns the base image of the scene: a light grey checkerboard with
// 16 pixel squares.
func (s *Scene) PNG() []byte {
	img := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	for y := range s.Height {
		for x := range s.Width {
			v := uint8(0xe0)
			if (x/16+y/16)%2 == 1 {
				v = 0xc0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		panic(err) // writing to a bytes.Buffer cannot fail
	}
	return buf.Bytes()
}

func v(x, y float64) annotation.Vertex {
	return annotation.Vertex{X: x, Y: y}
}

func box(label string, conf, x0, y0, x1, y1 float64) annotation.Annotation {
	return annotation.Annotation{
		Kind:       annotation.BoundingBox,
		Label:      label,
		Confidence: conf,
		Points:     []annotation.Vertex{v(x0, y0), v(x1, y1)},
	}
}

func polygon(label string, conf float64, pts ...annotation.Vertex) annotation.Annotation {
	return annotation.Annotation{
		Kind:       annotation.Polygon,
		Label:      label,
		Confidence: conf,
		Points:     pts,
	}
}

func point(label string, conf, x, y float64) annotation.Annotation {
	return annotation.Annotation{
		Kind:       annotation.Point,
		Label:      label,
		Confidence: conf,
		Points:     []annotation.Vertex{v(x, y)},
	}
}
