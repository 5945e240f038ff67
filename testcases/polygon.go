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

var polygonScenes = []Scene{
	{
		Name:   "triangle",
		Width:  160,
		Height: 120,
		Annotations: []annotation.Annotation{
			polygon("roof", 0.85, v(20, 100), v(80, 20), v(140, 100)),
		},
	},
	{
		Name:   "concave",
		Width:  160,
		Height: 160,
		Annotations: []annotation.Annotation{
			polygon("bracket", 0.65,
				v(20, 20), v(140, 20), v(140, 50), v(60, 50),
				v(60, 110), v(140, 110), v(140, 140), v(20, 140)),
		},
	},
	{
		// a sharp spike exceeds the miter limit and is bevelled
		Name:   "spike",
		Width:  200,
		Height: 100,
		Annotations: []annotation.Annotation{
			polygon("needle", 0.4, v(10, 60), v(190, 50), v(10, 40)),
		},
	},
}
