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
	"fmt"

	"seehuhn.de/go/svgrender/arc"
)

// Length returns the length of the first subpath of p.
// The length of an empty path is zero.  If the path does not start
// with a MoveTo segment, [ErrInvalidGeometry] is returned.
func (p *Path) Length() (float64, error) {
	return length(p.Segments())
}

func length(segs []Segment) (float64, error) {
	if len(segs) == 0 {
		return 0, nil
	}
	if segs[0].Kind != MoveTo {
		return 0, fmt.Errorf("length: path starts with %s: %w", segs[0].Kind, ErrInvalidGeometry)
	}

	start := segs[0].End
	prev := start
	var total float64
	for _, seg := range segs[1:] {
		switch seg.Kind {
		case MoveTo:
			return total, nil
		case LineTo:
			total += seg.End.Sub(prev).Length()
		case CurveTo:
			total += cubicArclen(prev, seg.C1, seg.C2, seg.End, ArclenAccuracy)
		case ArcTo:
			a, ok := arc.FromSVG(svgArc(prev, seg))
			if !ok {
				total += seg.End.Sub(prev).Length()
				break
			}
			cur := prev
			for c := range a.Cubics(ArcTolerance) {
				total += cubicArclen(cur, c.C1, c.C2, c.P, ArclenAccuracy)
				cur = c.P
			}
		case ClosePath:
			total += start.Sub(prev).Length()
			return total, nil
		}
		prev = seg.End
	}
	return total, nil
}
