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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/annotate/annotation"
)

func TestSceneCountsAllAnnotations(t *testing.T) {
	opts := &Options{Format: FormatRaster, IncludeAnnotations: true, IncludeMetadata: true}
	s := newScene(testImage(200, 200), mixedAnnotations(), opts)

	if len(s.marks) != 3 {
		t.Errorf("%d marks drawn, want 3", len(s.marks))
	}
	want := []string{
		"Image: street.png",
		"Size: 200x200",
		"Uploaded: 3/5/2024",
		"Annotations: 5",
	}
	if d := cmp.Diff(want, s.meta); d != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", d)
	}
}

func TestSceneStoredCount(t *testing.T) {
	img := testImage(200, 200)
	img.AnnotationCount = 12
	s := newScene(img, mixedAnnotations(), &Options{IncludeMetadata: true})
	if got := s.meta[3]; got != "Annotations: 12" {
		t.Errorf("got %q", got)
	}
	if len(s.marks) != 0 {
		t.Errorf("annotations drawn although disabled")
	}
}

func TestSceneLabels(t *testing.T) {
	opts := &Options{IncludeAnnotations: true}
	s := newScene(testImage(200, 200), mixedAnnotations(), opts)

	type label struct {
		Text    string
		At      annotation.Vertex
		Centred bool
	}
	var got []label
	for _, m := range s.marks {
		got = append(got, label{m.label, m.labelAt, m.centred})
	}
	want := []label{
		{"car (91.0%)", annotation.Vertex{X: 10, Y: 15}, false},
		{"road (70.0%)", annotation.Vertex{X: 125, Y: 350.0 / 3}, true},
		{"sign (30.0%)", annotation.Vertex{X: 60, Y: 50}, false},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", d)
	}

	colors := []any{s.marks[0].color, s.marks[1].color, s.marks[2].color}
	wantColors := []any{annotation.Green, annotation.Yellow, annotation.Red}
	if d := cmp.Diff(wantColors, colors); d != "" {
		t.Errorf("colours mismatch (-want +got):\n%s", d)
	}
	if s.meta != nil {
		t.Error("metadata present although disabled")
	}
}
