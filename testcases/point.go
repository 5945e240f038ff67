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

var pointScenes = []Scene{
	{
		Name:   "centre",
		Width:  200,
		Height: 200,
		Annotations: []annotation.Annotation{
			point("eye", 0.95, 50, 50),
		},
	},
	{
		Name:   "subpixel",
		Width:  120,
		Height: 60,
		Annotations: []annotation.Annotation{
			point("a", 0.9, 20, 30),
			point("b", 0.7, 50.25, 30.25),
			point("c", 0.3, 80.5, 30.5),
		},
	},
}
