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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgrender/pathdata"
)

// Stroke draws the outline of the path, using Width, Cap, Join,
// MiterLimit, Dash and DashPhase.
//
// The outline of every subpath (or every dash) is built as a set of
// polygons in user space.  All polygons are filled together with the
// nonzero rule, so that overlapping parts are painted only once.
func (r *Rasterizer) Stroke(p *pathdata.Path, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	r.flattenPath(p.Segments())
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	d := r.Width / 2
	for _, pt := range r.degeneratePoints {
		switch r.Cap {
		case graphics.LineCapRound:
			r.beginPolygon()
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.beginPolygon()
			r.addSquare(pt, vec.Vec2{X: 1}, d)
		}
	}

	pattern, ok := r.dashPattern()
	for i := range r.segsOffsets {
		segs := r.subpath(i)
		closed := r.subpathClosed[i]
		if ok {
			r.dashSubpath(segs, closed, pattern)
		} else {
			r.strokeSubpath(segs, closed)
		}
	}

	r.resetEdges()
	for i := range r.strokeOffsets {
		poly := r.polygon(i)
		if len(poly) < 3 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterize(NonZero, emit)
}

// strokeSubpath adds the outline polygons of one undashed subpath.
//
// An open subpath gives a single polygon: the left offset line forwards,
// the end cap, the right offset line backwards and the start cap.  A
// closed subpath gives two rings, one for each side.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	first := len(r.strokeOffsets)
	d := r.Width / 2
	n := len(segs)

	if closed {
		r.beginPolygon()
		r.offsetSide(segs, true, d)
		r.reverseSegments(segs)
		r.beginPolygon()
		r.offsetSide(segs, true, d)
		r.reverseSegments(segs)
	} else {
		r.beginPolygon()
		r.offsetSide(segs, false, d)
		r.addCap(segs[n-1].B, segs[n-1].T, d)
		r.reverseSegments(segs)
		r.offsetSide(segs, false, d)
		r.addCap(segs[n-1].B, segs[n-1].T, d)
		r.reverseSegments(segs)
	}
	r.orientPolygons(first)
}

// reverseSegments reverses the direction of the polyline segs, in place.
func (r *Rasterizer) reverseSegments(segs []strokeSegment) {
	for i, j := 0, len(segs)-1; i <= j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j].reversed(), segs[i].reversed()
	}
}

// offsetSide adds the offset line on the left (+N) side of segs, at
// distance d, including the joins between segments.  For closed
// polylines the join between the last and the first segment is added
// first.
func (r *Rasterizer) offsetSide(segs []strokeSegment, closed bool, d float64) {
	n := len(segs)
	if closed {
		r.corner(&segs[n-1], &segs[0], d)
	} else {
		r.stroke = append(r.stroke, segs[0].A.Add(segs[0].N.Mul(d)))
	}
	for i := 0; i < n-1; i++ {
		r.corner(&segs[i], &segs[i+1], d)
	}
	if !closed {
		r.stroke = append(r.stroke, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
	}
}

// corner adds the left offset geometry at the point where segment a
// ends and segment b starts.
func (r *Rasterizer) corner(a, b *strokeSegment, d float64) {
	P := a.B
	sin := a.T.X*b.T.Y - a.T.Y*b.T.X
	cos := a.T.Dot(b.T)

	switch {
	case cos < cuspCosineThreshold:
		// the path doubles back
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)))
		if r.Join == graphics.LineJoinRound {
			r.addArc(P, d, a.N, -math.Pi, false)
		}
		r.stroke = append(r.stroke, P.Add(b.N.Mul(d)))

	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)), P.Add(b.N.Mul(d)))

	case sin > 0:
		// left turn: the left side is the inner side
		r.innerCorner(P, a, b, d)

	default:
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)))
		r.addJoin(P, a.T, b.T, d)
		r.stroke = append(r.stroke, P.Add(b.N.Mul(d)))
	}
}

// innerCorner adds the inner side of a corner.  Where possible this is
// the intersection of the two offset lines.  If the intersection lies
// beyond the end of one of the segments, the outline goes through the
// corner point instead.
func (r *Rasterizer) innerCorner(P vec.Vec2, a, b *strokeSegment, d float64) {
	cos := a.T.Dot(b.T)
	cosHalf := math.Sqrt((1 + cos) / 2)
	bis := a.N.Add(b.N)
	bisLen := bis.Length()

	if cosHalf > 1e-9 && bisLen > 1e-9 {
		// distance from the corner to the foot of the intersection
		// point on each segment: d·tan(θ/2)
		reach := d * math.Sqrt(max(0, 1-cosHalf*cosHalf)) / cosHalf
		if reach <= min(a.Len, b.Len) {
			r.stroke = append(r.stroke, P.Add(bis.Mul(d/(cosHalf*bisLen))))
			return
		}
	}
	r.stroke = append(r.stroke, P.Add(a.N.Mul(d)), P, P.Add(b.N.Mul(d)))
}

// addJoin adds the outer part of a line join at P, where the tangent
// turns from T1 to T2 in clockwise direction.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length, relative to the stroke width, is 1/sin(φ/2)
		// where φ is the angle between the segments.  With θ the angle
		// between the tangents, sin(φ/2) = cos(θ/2) = sqrt((1+cos θ)/2).
		sinHalf := math.Sqrt((1 + cos) / 2)
		const eps = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+eps {
			bis := N1.Add(N2)
			if l := bis.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(bis.Mul(d/(sinHalf*l))))
			}
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		r.addArc(P, d, N1, -angle, false)
	}
}

// addCap adds a line cap at P.  T is the direction pointing away from
// the line.  The outline is assumed to arrive at P+d·N, where N is T
// rotated by 90° counter-clockwise, and continues from P-d·N.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, false)
	}
}

// addArc adds points along a circular arc.  The arc starts at
// center+radius·startDir and sweeps by the given angle, counter-clockwise
// for positive angles.  The start point is only added if includeStart is
// true.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := radius * r.deviceScale()

	n := 1
	if devRadius >= r.Flatness {
		// a chord spanning angle α deviates from the circle by
		// radius·(1-cos(α/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	dt := sweep / float64(n)
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side length 2d, centered at center and
// aligned with the direction T.
func (r *Rasterizer) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	t := T.Mul(d)
	n := N.Mul(d)
	r.stroke = append(r.stroke,
		center.Add(t).Add(n),
		center.Sub(t).Add(n),
		center.Sub(t).Sub(n),
		center.Add(t).Sub(n),
	)
}

// beginPolygon starts a new outline polygon.
func (r *Rasterizer) beginPolygon() {
	r.strokeOffsets = append(r.strokeOffsets, len(r.stroke))
}

// polygon returns the vertices of outline polygon i.
func (r *Rasterizer) polygon(i int) []vec.Vec2 {
	end := len(r.stroke)
	if i+1 < len(r.strokeOffsets) {
		end = r.strokeOffsets[i+1]
	}
	return r.stroke[r.strokeOffsets[i]:end]
}

// orientPolygons gives the polygons starting at index first, which
// together form the outline of one subpath or dash, a common orientation.
// The polygon with the largest area is made to have positive signed
// area, and all others are reversed together with it.
func (r *Rasterizer) orientPolygons(first int) {
	var best float64
	for i := first; i < len(r.strokeOffsets); i++ {
		if a := signedArea(r.polygon(i)); math.Abs(a) > math.Abs(best) {
			best = a
		}
	}
	if best >= 0 {
		return
	}
	for i := first; i < len(r.strokeOffsets); i++ {
		poly := r.polygon(i)
		for a, b := 0, len(poly)-1; a < b; a, b = a+1, b-1 {
			poly[a], poly[b] = poly[b], poly[a]
		}
	}
}

// signedArea returns the signed area of a closed polygon.
func signedArea(poly []vec.Vec2) float64 {
	var s float64
	for i := range poly {
		p := poly[i]
		q := poly[(i+1)%len(poly)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}
