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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgrender/arc"
)

// BBox returns the exact bounding box of the path.
// The second return value is false if the path has no segments.
func (p *Path) BBox() (rect.Rect, bool) {
	return walkBBox(slices.Values(p.Segments()), nil)
}

// BBoxWithTransform returns the bounding box of the path after applying
// the transformation m.  If stroke is not nil, the box is enlarged by half
// the stroke width on every side.  This ignores miter joins and square
// caps, which may extend further.
func (p *Path) BBoxWithTransform(m matrix.Matrix, stroke *Stroke) (rect.Rect, bool) {
	return bboxWithTransform(p.Segments(), m, stroke)
}

// HasBBox reports whether the path has a bounding box with non-zero width
// or non-zero height.  This stops reading segments as soon as the
// answer is known.
func (p *Path) HasBBox() bool {
	return hasBBox(p.Segments())
}

func bboxWithTransform(segs []Segment, m matrix.Matrix, stroke *Stroke) (rect.Rect, bool) {
	box, ok := walkBBox(transformed(segs, m), nil)
	if ok && stroke != nil {
		w := stroke.Width / 2
		box.LLx -= w
		box.LLy -= w
		box.URx += w
		box.URy += w
	}
	return box, ok
}

func hasBBox(segs []Segment) bool {
	box, ok := walkBBox(slices.Values(segs), hasExtent)
	return ok && hasExtent(box)
}

func hasExtent(r rect.Rect) bool {
	return !fuzzyZero(r.URx-r.LLx) || !fuzzyZero(r.URy-r.LLy)
}

// walkBBox accumulates the bounding box of a segment sequence.
// If stop is not nil, the walk ends early once stop returns true
// for the box seen so far.
func walkBBox(segs iter.Seq[Segment], stop func(rect.Rect) bool) (rect.Rect, bool) {
	var box rect.Rect
	started := false
	add := func(p vec.Vec2) {
		if !started {
			box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			started = true
			return
		}
		box.Add(p.X, p.Y)
	}

	// Extend ignores zero rectangles and replaces a zero box.  Curve
	// boxes contain the start point, which is added first, so both cases
	// give the correct union.
	var prev, start vec.Vec2
	for seg := range segs {
		switch seg.Kind {
		case MoveTo:
			add(seg.End)
			start = seg.End
		case LineTo:
			add(prev)
			add(seg.End)
		case CurveTo:
			add(prev)
			box.Extend(cubicBBox(prev, seg.C1, seg.C2, seg.End))
		case ArcTo:
			add(prev)
			if a, ok := arc.FromSVG(svgArc(prev, seg)); ok {
				box.Extend(a.BBox())
			}
			add(seg.End)
		case ClosePath:
			prev = start
			continue
		}
		prev = seg.End

		if stop != nil && started && stop(box) {
			break
		}
	}
	return box, started
}
