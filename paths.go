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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/annotation"
)

// circleK is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const circleK = 0.5522847498

func boxPath(b annotation.Box) *path.Data {
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.Width, b.Y+b.Height
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// polygonPath returns the closed path through pts.
func polygonPath(pts []vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, v := range pts[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

func outlinePath(o annotation.Outline) *path.Data {
	pts := make([]vec.Vec2, len(o.Vertices))
	for i, v := range o.Vertices {
		pts[i] = vec.Vec2{X: v.X, Y: v.Y}
	}
	return polygonPath(pts)
}

// discPath returns a circle made of four cubic arcs.
func discPath(c vec.Vec2, r float64) *path.Data {
	kr := circleK * r
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X + r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + r, Y: c.Y + kr}, vec.Vec2{X: c.X + kr, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}).
		CubeTo(vec.Vec2{X: c.X - kr, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + kr}, vec.Vec2{X: c.X - r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - r, Y: c.Y - kr}, vec.Vec2{X: c.X - kr, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}).
		CubeTo(vec.Vec2{X: c.X + kr, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - kr}, vec.Vec2{X: c.X + r, Y: c.Y}).
		Close()
}
