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

var boxScenes = []Scene{
	{
		Name:   "single",
		Width:  200,
		Height: 150,
		Annotations: []annotation.Annotation{
			box("car", 0.92, 30, 40, 170, 120),
		},
	},
	{
		Name:   "tiers",
		Width:  320,
		Height: 120,
		Annotations: []annotation.Annotation{
			box("high", 0.80, 10, 30, 100, 110),
			box("medium", 0.60, 115, 30, 205, 110),
			box("low", 0.59, 220, 30, 310, 110),
		},
	},
	{
		// boxes reaching over the image border are clipped
		Name:   "clipped",
		Width:  128,
		Height: 96,
		Annotations: []annotation.Annotation{
			box("left", 0.9, -20, 20, 40, 70),
			box("bottom", 0.7, 60, 50, 110, 130),
		},
	},
	{
		// corners given in the wrong order and zero-size boxes are
		// drawn as given
		Name:   "degenerate",
		Width:  128,
		Height: 96,
		Annotations: []annotation.Annotation{
			box("flipped", 0.9, 100, 80, 30, 20),
			box("flat", 0.7, 20, 50, 100, 50),
			box("empty", 0.5, 64, 48, 64, 48),
		},
	},
}
