// seehuhn.de/go/svgrender - a 2D rendering library
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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgrender/arc"
	"seehuhn.de/go/svgrender/pathdata"
)

// strokeSegment is a straight line segment in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, T rotated by 90° counter-clockwise
	Len  float64
}

// reversed returns the segment traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1), Len: s.Len}
}

// flattenPath replaces curves and arcs by line segments.  The results
// are stored in r.segs, r.segsOffsets and r.subpathClosed.  Subpaths
// which consist of a single point are listed in r.degeneratePoints.
func (r *Rasterizer) flattenPath(segs []pathdata.Segment) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false // the subpath has a drawing command after its MoveTo

	finish := func(closed bool) {
		if !open {
			return
		}
		if len(r.segs) > first {
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		} else if drawn {
			r.degeneratePoints = append(r.degeneratePoints, start)
		}
		open = false
	}
	begin := func(p vec.Vec2) {
		cur, start = p, p
		first = len(r.segs)
		open = true
		drawn = false
	}

	for _, seg := range segs {
		switch seg.Kind {
		case pathdata.MoveTo:
			finish(false)
			begin(seg.End)
			continue
		case pathdata.ClosePath:
			if !open {
				continue
			}
			drawn = true
			if cur != start {
				r.addSegment(cur, start)
			}
			finish(true)
			cur = start
			continue
		}

		if !open {
			// a drawing command after ClosePath starts a new subpath
			begin(cur)
		}
		drawn = true
		switch seg.Kind {
		case pathdata.LineTo:
			r.addSegment(cur, seg.End)
		case pathdata.CurveTo:
			r.flattenCubic(cur, seg.C1, seg.C2, seg.End, r.addSegment)
		case pathdata.ArcTo:
			r.flattenArc(cur, seg, r.addSegment)
		}
		cur = seg.End
	}
	finish(false)
}

// addSegment appends the line from a to b to r.segs.
// Segments of (almost) zero length are dropped.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}, Len: l})
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// All points are in user space; the number of segments is chosen with
// Wang's formula, so that the error in device space is at most Flatness.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}

	prev := p0
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
	emit(prev, p3)
}

// flattenArc approximates an elliptical arc segment starting at from.
func (r *Rasterizer) flattenArc(from vec.Vec2, seg pathdata.Segment, emit func(a, b vec.Vec2)) {
	a, ok := pathdata.ConvertSVGArc(from, seg.Radii.X, seg.Radii.Y, seg.XRotation, seg.LargeArc, seg.Sweep, seg.End)
	if !ok {
		emit(from, seg.End)
		return
	}

	tol := pathdata.ArcTolerance
	if s := r.deviceScale(); s > 0 {
		tol = min(tol, r.Flatness/s)
	}
	// the last curve is made to end exactly at seg.End
	var pending arc.Cubic
	have := false
	prev := from
	for c := range a.Cubics(tol) {
		if have {
			r.flattenCubic(prev, pending.C1, pending.C2, pending.P, emit)
			prev = pending.P
		}
		pending, have = c, true
	}
	if have {
		r.flattenCubic(prev, pending.C1, pending.C2, seg.End, emit)
	}
}
