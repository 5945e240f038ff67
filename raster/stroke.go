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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// segment is a flattened stroke segment in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

// Stroke paints the outline of the path with the current Width, using butt
// caps and miter joins (bevelled beyond MiterLimit).
//
// The stroke is assembled from one quadrilateral per segment plus one join
// piece per corner. All pieces are given the same orientation, so that
// filling them together with the nonzero rule paints overlaps only once.
// Subpaths of zero length produce no output.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)

	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
	d := r.Width / 2
	for i := range r.segsOffsets {
		segs := r.subpath(i)
		for j := range segs {
			s := &segs[j]
			r.addPiece(
				s.A.Add(s.N.Mul(d)),
				s.B.Add(s.N.Mul(d)),
				s.B.Sub(s.N.Mul(d)),
				s.A.Sub(s.N.Mul(d)),
			)
			if j+1 < len(segs) {
				r.addJoin(s.B, s, &segs[j+1], d)
			} else if r.segsClosed[i] && len(segs) > 1 {
				r.addJoin(s.B, s, &segs[0], d)
			}
		}
	}

	r.beginEdges()
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		for k := range poly {
			r.addEdge(poly[k], poly[(k+1)%len(poly)])
		}
	}
	r.sweep(emit)
}

// flatten splits the path into subpaths of straight segments.
func (r *Rasteriser) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.segsClosed = r.segsClosed[:0]

	var current, start vec.Vec2
	first := 0
	endSubpath := func(closed bool) {
		if len(r.segs) > first {
			r.segsOffsets = append(r.segsOffsets, first)
			r.segsClosed = append(r.segsClosed, closed)
		}
		first = len(r.segs)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			endSubpath(false)
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addSegment)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addSegment(current, start)
			current = start
			endSubpath(true)
		}
	}
	endSubpath(false)
}

// addSegment appends a stroke segment, skipping segments of zero length.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

func (r *Rasteriser) subpath(i int) []segment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// addJoin adds the corner piece at P, where segment s1 ends and s2 starts.
// The piece covers the wedge on the outer side of the turn.
func (r *Rasteriser) addJoin(P vec.Vec2, s1, s2 *segment, d float64) {
	sinTheta := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	// For a turn towards +N the outer side is -N, and vice versa.
	n1, n2 := s1.N, s2.N
	if sinTheta > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}
	o1 := P.Add(n1.Mul(d))
	o2 := P.Add(n2.Mul(d))

	// miter length relative to the line width is 1/sin(φ/2), where φ is
	// the interior angle of the corner
	sinHalf := math.Sqrt((1 + s1.T.Dot(s2.T)) / 2)
	bisector := n1.Add(n2)
	if bl := bisector.Length(); sinHalf > 0 && 1/sinHalf <= r.MiterLimit && bl > zeroLengthThreshold {
		miter := P.Add(bisector.Mul(d / (sinHalf * bl)))
		r.addPiece(P, o1, miter, o2)
		return
	}
	r.addPiece(P, o1, o2)
}

// addPiece appends a closed polygon to the stroke outline, reversing its
// vertex order if necessary so that all pieces have positive orientation.
func (r *Rasteriser) addPiece(pts ...vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return
	}

	r.outlineOffsets = append(r.outlineOffsets, len(r.outline))
	if area > 0 {
		r.outline = append(r.outline, pts...)
		return
	}
	for i := len(pts) - 1; i >= 0; i-- {
		r.outline = append(r.outline, pts[i])
	}
}
