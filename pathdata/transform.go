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

package pathdata

import (
	"iter"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgrender/arc"
)

// Transform applies m to all segments of the path, in place.
func (p *Path) Transform(m matrix.Matrix) *Path {
	return p.TransformFrom(0, m)
}

// TransformFrom applies m to the segments starting at index offset,
// in place.  Earlier segments are left unchanged.
func (p *Path) TransformFrom(offset int, m matrix.Matrix) *Path {
	if offset < 0 || offset >= p.Len() {
		return p
	}
	p.detach()
	segs := p.s.segs

	// the current point and subpath start before the first modified
	// segment, in untransformed coordinates
	var prev, start vec.Vec2
	for _, seg := range segs[:offset] {
		prev, start = advance(seg, prev, start)
	}

	for i := offset; i < len(segs); i++ {
		seg := segs[i]
		segs[i] = mapSegment(seg, prev, m, true)
		prev, start = advance(seg, prev, start)
	}
	return p
}

// Transformed returns the segments of the path with m applied.
// The path itself is not modified.  Degenerate arcs are reported
// as LineTo segments.
func (p *Path) Transformed(m matrix.Matrix) iter.Seq[Segment] {
	return transformed(p.Segments(), m)
}

func transformed(segs []Segment, m matrix.Matrix) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var prev, start vec.Vec2
		for _, seg := range segs {
			if !yield(mapSegment(seg, prev, m, false)) {
				return
			}
			prev, start = advance(seg, prev, start)
		}
	}
}

// advance returns the current point and subpath start after seg.
func advance(seg Segment, prev, start vec.Vec2) (vec.Vec2, vec.Vec2) {
	switch seg.Kind {
	case MoveTo:
		return seg.End, seg.End
	case ClosePath:
		return start, start
	default:
		return seg.End, start
	}
}

// mapSegment returns seg transformed by m.  The point prev is the
// untransformed start point of the segment.  If keepArc is false,
// degenerate arcs are replaced by straight lines.
func mapSegment(seg Segment, prev vec.Vec2, m matrix.Matrix, keepArc bool) Segment {
	switch seg.Kind {
	case MoveTo, LineTo:
		seg.End = applyPoint(m, seg.End)
	case CurveTo:
		seg.C1 = applyPoint(m, seg.C1)
		seg.C2 = applyPoint(m, seg.C2)
		seg.End = applyPoint(m, seg.End)
	case ArcTo:
		end := applyPoint(m, seg.End)
		t, ok := arc.TransformSVG(svgArc(prev, seg), m)
		if !ok {
			if keepArc {
				seg.End = end
				return seg
			}
			return Segment{Kind: LineTo, End: end}
		}
		seg.End = end
		seg.Radii = t.Radii
		seg.XRotation = rad2deg(t.XRotation)
		seg.LargeArc = t.LargeArc
		seg.Sweep = t.Sweep
	}
	return seg
}

func applyPoint(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}
