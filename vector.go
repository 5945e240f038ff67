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
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/annotation"
)

// Text sizes on the PDF page, in image pixel units.
const (
	labelSize = 12.0
	metaSize  = 10.0
)

// RenderVector decodes the image file data and returns a single-page PDF
// document showing the image with the annotations and metadata selected
// by opts.
//
// The page measures img.Width × img.Height points times opts.Scale.
// Options are expected to be valid, see [Options.Validate].
// Failures are reported as [*IOError].
func RenderVector(img annotation.Image, data []byte, anns []annotation.Annotation, opts Options) ([]byte, error) {
	base, err := decodeBase(img, data)
	if err != nil {
		return nil, err
	}
	l := newPageLayout(newScene(img, anns, &opts), opts.scale())

	buf := &bytes.Buffer{}
	if err := writePDF(buf, base, l); err != nil {
		return nil, &IOError{Op: "encode", Path: img.Path, Err: err}
	}
	return buf.Bytes(), nil
}

// flipY maps an image space y coordinate to page space.
func flipY(y, pageHeight float64) float64 {
	return pageHeight - y
}

// pageLayout is a scene translated into PDF page coordinates.
// All coordinates are in image pixel units and y points up; the page
// is scaled by Scale when written.
type pageLayout struct {
	Width, Height float64
	Scale         float64
	Items         []pageItem
}

// pageItem is one of rectItem, polyItem, discItem and textItem.
type pageItem interface {
	isPageItem()
}

// rectItem is a stroked rectangle with its lower-left corner at (X, Y).
type rectItem struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// polyItem is a stroked closed polygon.
type polyItem struct {
	Points []vec.Vec2
	Color  color.NRGBA
}

// discItem is a filled circle.
type discItem struct {
	Center vec.Vec2
	Radius float64
	Color  color.NRGBA
}

// textItem is a line of text with its baseline starting at At, or centred
// on At if Centred is set.
type textItem struct {
	At      vec.Vec2
	Size    float64
	Text    string
	Color   color.NRGBA
	Centred bool
}

func (rectItem) isPageItem() {}
func (polyItem) isPageItem() {}
func (discItem) isPageItem() {}
func (textItem) isPageItem() {}

var metaTextColor = color.NRGBA{A: 255}

func newPageLayout(s *scene, scale float64) *pageLayout {
	h := float64(s.height)
	l := &pageLayout{
		Width:  float64(s.width),
		Height: h,
		Scale:  scale,
	}
	flip := func(v annotation.Vertex) vec.Vec2 {
		return vec.Vec2{X: v.X, Y: flipY(v.Y, h)}
	}

	for _, m := range s.marks {
		switch g := m.shape.(type) {
		case annotation.Box:
			l.Items = append(l.Items, rectItem{
				X:     g.X,
				Y:     h - g.Y - g.Height,
				W:     g.Width,
				H:     g.Height,
				Color: m.color,
			})
		case annotation.Outline:
			pts := make([]vec.Vec2, len(g.Vertices))
			for i, v := range g.Vertices {
				pts[i] = flip(v)
			}
			l.Items = append(l.Items, polyItem{Points: pts, Color: m.color})
		case annotation.Marker:
			l.Items = append(l.Items, discItem{
				Center: flip(g.At),
				Radius: markerRadius,
				Color:  m.color,
			})
		}
		l.Items = append(l.Items, textItem{
			At:      flip(m.labelAt),
			Size:    labelSize,
			Text:    m.label,
			Color:   m.color,
			Centred: m.centred,
		})
	}

	for i, line := range s.meta {
		l.Items = append(l.Items, textItem{
			At:    vec.Vec2{X: metaX, Y: flipY(metaBaseline(i), h)},
			Size:  metaSize,
			Text:  line,
			Color: metaTextColor,
		})
	}
	return l
}
