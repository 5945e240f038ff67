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

package testcases

import "seehuhn.de/go/annotate/annotation"

var invalidScenes = []Scene{
	{
		// only the first annotation can be drawn; the metadata panel
		// still counts all of them
		Name:   "skipped",
		Width:  160,
		Height: 120,
		Annotations: []annotation.Annotation{
			box("ok", 0.9, 40, 40, 120, 100),
			{Kind: annotation.BoundingBox, Label: "one corner", Confidence: 0.9,
				Points: []annotation.Vertex{v(10, 10)}},
			{Kind: annotation.Polygon, Label: "segment", Confidence: 0.9,
				Points: []annotation.Vertex{v(10, 10), v(50, 50)}},
			{Kind: annotation.Point, Label: "two points", Confidence: 0.9,
				Points: []annotation.Vertex{v(10, 10), v(20, 20)}},
			{Kind: "ellipse", Label: "unknown", Confidence: 0.9,
				Points: []annotation.Vertex{v(10, 10)}},
		},
	},
	{
		// confidence values outside [0, 1]
		Name:   "confidence",
		Width:  160,
		Height: 80,
		Annotations: []annotation.Annotation{
			box("over", 1.5, 10, 20, 70, 70),
			box("under", -0.2, 90, 20, 150, 70),
		},
	},
}
