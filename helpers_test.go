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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"seehuhn.de/go/annotate/annotation"
)

func ptr[T any](v T) *T { return &v }

// solidPNG returns a PNG file of the given size filled with c.
func solidPNG(t testing.TB, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testImage(w, h int) annotation.Image {
	return annotation.Image{
		ID:           "img-1",
		Path:         "img-1.png",
		Width:        w,
		Height:       h,
		OriginalName: "street.png",
		UploadedAt:   time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
	}
}

func box(label string, conf, x0, y0, x1, y1 float64) annotation.Annotation {
	return annotation.Annotation{
		Kind:       annotation.BoundingBox,
		Label:      label,
		Confidence: conf,
		Points:     []annotation.Vertex{{X: x0, Y: y0}, {X: x1, Y: y1}},
	}
}

func point(label string, conf, x, y float64) annotation.Annotation {
	return annotation.Annotation{
		Kind:       annotation.Point,
		Label:      label,
		Confidence: conf,
		Points:     []annotation.Vertex{{X: x, Y: y}},
	}
}

// mixedAnnotations returns five annotations, two of which cannot be drawn.
func mixedAnnotations() []annotation.Annotation {
	return []annotation.Annotation{
		box("car", 0.91, 10, 20, 60, 100),
		{Kind: annotation.Polygon, Label: "road", Confidence: 0.7,
			Points: []annotation.Vertex{{X: 100, Y: 100}, {X: 150, Y: 100}, {X: 125, Y: 150}}},
		point("sign", 0.3, 50, 50),
		{Kind: annotation.Polygon, Label: "bad", Confidence: 0.9,
			Points: []annotation.Vertex{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		{Kind: annotation.BoundingBox, Label: "bad", Confidence: 0.9,
			Points: []annotation.Vertex{{X: 1, Y: 1}}},
	}
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
