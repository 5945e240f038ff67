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
	"fmt"
	"image"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/testcases"
)

// TestScenes renders every example scene in both formats.
func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				img := sc.Image()
				data := sc.PNG()
				opts := Options{IncludeAnnotations: true, IncludeMetadata: true}

				opts.Format = FormatRaster
				out, err := RenderRaster(img, data, sc.Annotations, opts)
				if err != nil {
					t.Fatal(err)
				}
				res := decodePNG(t, out)
				if res.Bounds() != image.Rect(0, 0, sc.Width, sc.Height) {
					t.Errorf("raster bounds = %v", res.Bounds())
				}

				opts.Format = FormatVector
				out, err = RenderVector(img, data, sc.Annotations, opts)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.HasPrefix(out, []byte("%PDF-")) {
					t.Error("vector output is not a PDF file")
				}
			})
		}
	}
}

// TestSceneParity checks that both renderers draw the same annotations
// in the same order.
func TestSceneParity(t *testing.T) {
	for _, sc := range testcases.All["mixed"] {
		opts := &Options{IncludeAnnotations: true}
		s := newScene(sc.Image(), sc.Annotations, opts)
		l := newPageLayout(s, 1)

		var shapes []string
		for _, item := range l.Items {
			if _, isText := item.(textItem); !isText {
				shapes = append(shapes, fmt.Sprintf("%T", item))
			}
		}
		var marks []string
		for _, m := range s.marks {
			switch m.shape.(type) {
			case annotation.Box:
				marks = append(marks, "annotate.rectItem")
			case annotation.Outline:
				marks = append(marks, "annotate.polyItem")
			case annotation.Marker:
				marks = append(marks, "annotate.discItem")
			}
		}
		if !slices.Equal(shapes, marks) {
			t.Errorf("%s: page items %v, scene marks %v", sc.Name, shapes, marks)
		}
	}
}

func BenchmarkRenderRaster(b *testing.B) {
	sc := testcases.All["mixed"][1]
	img, data := sc.Image(), sc.PNG()
	opts := Options{Format: FormatRaster, IncludeAnnotations: true, IncludeMetadata: true}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := RenderRaster(img, data, sc.Annotations, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderVector(b *testing.B) {
	sc := testcases.All["mixed"][1]
	img, data := sc.Image(), sc.PNG()
	opts := Options{Format: FormatVector, IncludeAnnotations: true, IncludeMetadata: true}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := RenderVector(img, data, sc.Annotations, opts); err != nil {
			b.Fatal(err)
		}
	}
}
