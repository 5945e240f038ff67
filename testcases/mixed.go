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

var mixedScenes = []Scene{
	{
		// later annotations are drawn on top of earlier ones
		Name:   "overlap",
		Width:  200,
		Height: 150,
		Annotations: []annotation.Annotation{
			box("first", 0.3, 20, 20, 120, 110),
			box("second", 0.9, 70, 40, 180, 130),
			point("third", 0.7, 95, 75),
		},
	},
	{
		Name:   "street",
		Width:  320,
		Height: 240,
		Annotations: []annotation.Annotation{
			box("car", 0.91, 20, 120, 140, 200),
			box("truck", 0.66, 170, 90, 300, 210),
			polygon("road", 0.72, v(0, 239), v(120, 100), v(200, 100), v(319, 239)),
			point("sign", 0.55, 160, 60),
			point("light", 0.83, 250, 40),
		},
	},
}
