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

// Package raster converts annotation outlines into anti-aliased pixel
// coverage.
//
// Coverage is computed exactly from the signed area of the path inside each
// pixel, so no supersampling is needed. Paths are given as [path.Data] in
// user space and mapped to device pixels by the CTM.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EmitFunc receives the coverage of one scanline segment: coverage[i] is
// the covered fraction of pixel (xMin+i, y), in the range [0, 1].
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 for downward edges, -1 for upward edges
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser fills and strokes paths. The caller creates one instance and
// reuses it for multiple paths; internal buffers grow as needed but never
// shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke line width in user-space units.
	Width float64

	// MiterLimit bounds the length of miter joins, relative to the line
	// width. Longer joins are drawn as bevels.
	MiterLimit float64

	cover  []float32 // per-pixel change of the winding count; reused as output
	area   []float32 // per-pixel signed area
	edges  []edge
	active []int

	// stroke outlines, all polygons contiguous
	outline        []vec.Vec2
	outlineOffsets []int
	segs           []segment
	segsOffsets    []int
	segsClosed     []bool

	// device space bounding box of the collected edges
	bboxEmpty      bool
	bboxX0, bboxX1 float64
	bboxY0, bboxY1 float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity CTM and PDF default values for the stroke parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.segsClosed = r.segsClosed[:0]
}

// Fill fills the path using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) Fill(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}
	r.sweep(emit)
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// The number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if dy < 0 {
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
		dir:  dir,
	})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(x0, x1), max(x0, x1)
		r.bboxY0, r.bboxY1 = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0, x1)
	r.bboxX1 = max(r.bboxX1, x0, x1)
	r.bboxY0 = min(r.bboxY0, y0, y1)
	r.bboxY1 = max(r.bboxY1, y0, y1)
}

// Coverage model: for every pixel of a scanline two values are accumulated.
// cover[i] is the signed vertical extent of all edges crossing column i,
// and area[i] is the part of that extent which lies inside pixel i itself,
// weighted by how far left in the pixel the crossing happens. A left-to-right
// prefix sum over cover, plus the local area term, gives the winding number
// integrated over the pixel, i.e. its coverage.

// sweep scan-converts the collected edges using an active edge list and
// emits the nonzero coverage of every scanline.
func (r *Rasteriser) sweep(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := int(math.Floor(max(r.bboxX0, r.Clip.LLx)))
	xMax := int(math.Floor(min(r.bboxX1, r.Clip.URx-1))) + 1
	yMin := int(math.Floor(max(r.bboxY0, r.Clip.LLy)))
	yMax := int(math.Floor(min(r.bboxY1, r.Clip.URy-1))) + 1
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].top() < yBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers, which are indexed by x-xMin. Edges left of xMin contribute
// to the first pixel, edges right of xMax are ignored.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	left, right := min(xa, xb), max(xa, xb)
	if left >= float64(xMax) {
		return false
	}
	if right < float64(xMin) {
		r.deposit(xMin-1, e.dir*float32(yBot-yTop), left, xMin, xMax)
		return true
	}

	// Clamp before converting, so that far away vertices cannot overflow.
	pixLeft := int(math.Floor(max(left, float64(xMin-1))))
	pixRight := int(math.Floor(min(right, float64(xMax))))
	if pixLeft == pixRight {
		r.deposit(pixLeft, e.dir*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return true
	}

	dydx := 1 / e.dxdy

	// The part of the edge left of the clip only changes the winding
	// count, so it is deposited in one piece.
	if pixLeft < xMin {
		yc := e.y0 + dydx*(float64(xMin)-e.x0)
		s0, s1 := yTop, min(yc, yBot)
		if e.dxdy < 0 {
			s0, s1 = max(yc, yTop), yBot
		}
		if s1 > s0 {
			r.deposit(xMin-1, e.dir*float32(s1-s0), left, xMin, xMax)
		}
		pixLeft = xMin
	}

	// split the rest at pixel column boundaries
	for pix := pixLeft; pix <= pixRight && pix < xMax; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		s0 := max(min(ya, yb), yTop)
		s1 := min(max(ya, yb), yBot)
		if s1 <= s0 {
			continue
		}
		r.deposit(pix, e.dir*float32(s1-s0), e.xAt((s0+s1)/2), xMin, xMax)
	}
	return true
}

// deposit records a crossing of signed height c at horizontal position xMid
// inside pixel column pix.
func (r *Rasteriser) deposit(pix int, c float32, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero turns accumulated cover/area values into coverage,
// in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default. Joins with an interior
	// angle below about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| below which two consecutive
	// segments are treated as collinear and need no join.
	collinearityThreshold = 1e-6
)
