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

package annotation

// Shape is the validated geometry of an annotation.
// The concrete types are [Box], [Outline] and [Marker].
type Shape interface {
	isShape()
}

// Box is an axis-aligned rectangle given by its top-left corner and
// its extent. Width and Height may be zero or negative when the stored
// corners are not in the expected order; such boxes are drawn as given.
type Box struct {
	X, Y          float64
	Width, Height float64
}

func (Box) isShape() {}

// Outline is a closed polygon. The vertices are connected in order and
// the last vertex is joined back to the first.
type Outline struct {
	Vertices []Vertex
}

func (Outline) isShape() {}

// Centroid returns the arithmetic mean of the polygon vertices.
func (o Outline) Centroid() Vertex {
	var c Vertex
	for _, v := range o.Vertices {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(o.Vertices))
	c.X /= n
	c.Y /= n
	return c
}

// Marker is a single location.
type Marker struct {
	At Vertex
}

func (Marker) isShape() {}

// Validate checks the point list of a against the rules for its kind
// and returns the resulting shape.
//
// A bounding box needs exactly two points (top-left, bottom-right), a
// polygon at least three, and a point exactly one. If the rule is not
// met, or the kind is unknown, Validate returns false and the annotation
// must be left out of the drawing. This is not an error condition.
func Validate(a *Annotation) (Shape, bool) {
	pts := a.Points
	switch a.Kind {
	case BoundingBox:
		if len(pts) != 2 {
			return nil, false
		}
		return Box{
			X:      pts[0].X,
			Y:      pts[0].Y,
			Width:  pts[1].X - pts[0].X,
			Height: pts[1].Y - pts[0].Y,
		}, true
	case Polygon:
		if len(pts) < 3 {
			return nil, false
		}
		return Outline{Vertices: pts}, true
	case Point:
		if len(pts) != 1 {
			return nil, false
		}
		return Marker{At: pts[0]}, true
	}
	return nil, false
}
