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
)

// Subpath is a contiguous run of segments of a path, starting with
// MoveTo and ending before the next MoveTo or with a ClosePath.
type Subpath []Segment

// Subpaths iterates over the subpaths of p.
// A new subpath starts at every MoveTo except the first.
// A ClosePath segment ends the current subpath and is included in it.
func (p *Path) Subpaths() iter.Seq[Subpath] {
	segs := p.Segments()
	return func(yield func(Subpath) bool) {
		rest := segs
		for len(rest) > 0 {
			n := subpathLen(rest)
			if !yield(Subpath(rest[:n:n])) {
				return
			}
			rest = rest[n:]
		}
	}
}

func subpathLen(segs []Segment) int {
	for i, seg := range segs {
		switch {
		case seg.Kind == MoveTo && i > 0:
			return i
		case seg.Kind == ClosePath:
			return i + 1
		}
	}
	return len(segs)
}

// IsClosed reports whether the subpath ends with ClosePath.
func (s Subpath) IsClosed() bool {
	return len(s) > 0 && s[len(s)-1].Kind == ClosePath
}

// BBox returns the exact bounding box of the subpath.
func (s Subpath) BBox() (rect.Rect, bool) {
	return walkBBox(slices.Values(s), nil)
}

// BBoxWithTransform is like [Path.BBoxWithTransform] for a single subpath.
func (s Subpath) BBoxWithTransform(m matrix.Matrix, stroke *Stroke) (rect.Rect, bool) {
	return bboxWithTransform(s, m, stroke)
}

// HasBBox reports whether the subpath has non-zero width or height.
func (s Subpath) HasBBox() bool {
	return hasBBox(s)
}

// Length returns the length of the subpath.
func (s Subpath) Length() (float64, error) {
	return length(s)
}
