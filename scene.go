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
	"image/color"

	"seehuhn.de/go/annotate/annotation"
)

// Layout of the annotations and the metadata panel, in image pixels.
const (
	strokeWidth  = 2.0
	markerRadius = 5.0

	boxLabelRise  = 5.0  // label baseline above the top edge of a box
	markerLabelDx = 10.0 // label start to the right of a point

	panelX, panelY          = 10, 10
	panelWidth, panelHeight = 300, 100
	metaX                   = 20
	metaFirstBaseline       = 30
	metaLineSpacing         = 20
)

// panelColor is black at 70% opacity.
var panelColor = color.NRGBA{A: 179}

// mark is one annotation as it will be drawn.
type mark struct {
	shape annotation.Shape
	color color.NRGBA

	label   string
	labelAt annotation.Vertex // baseline anchor
	centred bool              // labelAt is the horizontal centre, not the start
}

// scene is everything drawn on top of the base image. Both renderers draw
// the same scene, so that the outputs agree in content and order.
type scene struct {
	width, height int
	marks         []mark   // in drawing order
	meta          []string // metadata panel lines, nil if disabled
}

// newScene validates the annotations and lays out labels and metadata.
func newScene(img annotation.Image, anns []annotation.Annotation, opts *Options) *scene {
	s := &scene{width: img.Width, height: img.Height}

	if opts.IncludeAnnotations {
		for i := range anns {
			a := &anns[i]
			shape, ok := annotation.Validate(a)
			if !ok {
				continue
			}
			m := mark{
				shape: shape,
				color: annotation.ColorFor(a.Confidence),
				label: a.LabelText(),
			}
			switch g := shape.(type) {
			case annotation.Box:
				m.labelAt = annotation.Vertex{X: g.X, Y: g.Y - boxLabelRise}
			case annotation.Outline:
				m.labelAt = g.Centroid()
				m.centred = true
			case annotation.Marker:
				m.labelAt = annotation.Vertex{X: g.At.X + markerLabelDx, Y: g.At.Y}
			}
			s.marks = append(s.marks, m)
		}
	}

	if opts.IncludeMetadata {
		s.meta = metadataLines(img, len(anns))
	}
	return s
}

// metadataLines returns the text of the metadata panel. The annotation
// count includes annotations which are not drawn.
func metadataLines(img annotation.Image, attached int) []string {
	count := img.AnnotationCount
	if count == 0 {
		count = attached
	}
	return []string{
		"Image: " + img.OriginalName,
		fmt.Sprintf("Size: %dx%d", img.Width, img.Height),
		"Uploaded: " + img.UploadedAt.Format("1/2/2006"),
		fmt.Sprintf("Annotations: %d", count),
	}
}

// metaBaseline returns the y coordinate of the i-th metadata line.
func metaBaseline(i int) float64 {
	return float64(metaFirstBaseline + i*metaLineSpacing)
}
