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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/annotation"
)

func TestFlipY(t *testing.T) {
	if got := flipY(50, 200); got != 150 {
		t.Errorf("flipY(50, 200) = %g", got)
	}
	if got := flipY(0, 200); got != 200 {
		t.Errorf("flipY(0, 200) = %g", got)
	}
}

// TestPointParity checks that a point at (50, 50) in image space ends up
// at (50, 150) on a 200 unit high page.
func TestPointParity(t *testing.T) {
	opts := &Options{IncludeAnnotations: true}
	anns := []annotation.Annotation{point("p", 0.9, 50, 50)}
	l := newPageLayout(newScene(testImage(200, 200), anns, opts), 1)

	if len(l.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(l.Items))
	}
	disc, ok := l.Items[0].(discItem)
	if !ok {
		t.Fatalf("first item is %T, want discItem", l.Items[0])
	}
	if disc.Center != (vec.Vec2{X: 50, Y: 150}) {
		t.Errorf("marker centre = %v, want (50, 150)", disc.Center)
	}
	if disc.Radius != markerRadius {
		t.Errorf("radius = %g", disc.Radius)
	}

	text := l.Items[1].(textItem)
	if text.At != (vec.Vec2{X: 60, Y: 150}) || text.Text != "p (90.0%)" {
		t.Errorf("label = %+v", text)
	}
}

func TestPageLayout(t *testing.T) {
	opts := &Options{IncludeAnnotations: true, IncludeMetadata: true}
	l := newPageLayout(newScene(testImage(200, 200), mixedAnnotations(), opts), 2)

	if l.Width != 200 || l.Height != 200 || l.Scale != 2 {
		t.Errorf("page = %gx%g scale %g", l.Width, l.Height, l.Scale)
	}

	cy := 350.0 / 3 // centroid of the polygon
	want := []pageItem{
		rectItem{X: 10, Y: 100, W: 50, H: 80, Color: annotation.Green},
		textItem{At: vec.Vec2{X: 10, Y: 185}, Size: labelSize, Text: "car (91.0%)", Color: annotation.Green},
		polyItem{
			Points: []vec.Vec2{{X: 100, Y: 100}, {X: 150, Y: 100}, {X: 125, Y: 50}},
			Color:  annotation.Yellow,
		},
		textItem{At: vec.Vec2{X: 125, Y: 200 - cy}, Size: labelSize, Text: "road (70.0%)", Color: annotation.Yellow, Centred: true},
		discItem{Center: vec.Vec2{X: 50, Y: 150}, Radius: 5, Color: annotation.Red},
		textItem{At: vec.Vec2{X: 60, Y: 150}, Size: labelSize, Text: "sign (30.0%)", Color: annotation.Red},
		textItem{At: vec.Vec2{X: 20, Y: 170}, Size: metaSize, Text: "Image: street.png", Color: metaTextColor},
		textItem{At: vec.Vec2{X: 20, Y: 150}, Size: metaSize, Text: "Size: 200x200", Color: metaTextColor},
		textItem{At: vec.Vec2{X: 20, Y: 130}, Size: metaSize, Text: "Uploaded: 3/5/2024", Color: metaTextColor},
		textItem{At: vec.Vec2{X: 20, Y: 110}, Size: metaSize, Text: "Annotations: 5", Color: metaTextColor},
	}
	if d := cmp.Diff(want, l.Items); d != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", d)
	}
}

func TestHelveticaWidth(t *testing.T) {
	if got := helveticaWidth("Hi", 12); math.Abs(got-11.328) > 1e-9 {
		t.Errorf("width of Hi = %g", got)
	}
	if got := helveticaWidth("", 12); got != 0 {
		t.Errorf("width of empty string = %g", got)
	}
	if got := helveticaWidth("é", 10); got != 5.56 {
		t.Errorf("width of non-ASCII = %g", got)
	}
}

func TestVectorSignature(t *testing.T) {
	img := testImage(200, 200)
	data := solidPNG(t, 200, 200, white)
	opts := Options{Format: FormatVector, IncludeAnnotations: true, IncludeMetadata: true}
	out, err := RenderVector(img, data, mixedAnnotations(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output starts with %q", out[:min(len(out), 8)])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("output has no end-of-file marker")
	}
}

func TestVectorSizeMismatch(t *testing.T) {
	img := testImage(100, 100)
	data := solidPNG(t, 50, 50, white)
	if _, err := RenderVector(img, data, nil, Options{Format: FormatVector}); err == nil {
		t.Error("expected an error for mismatched image size")
	}
}
