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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgrender/arc"
)

// Iter returns the path as a [path.Path] iterator.
// Elliptical arcs are replaced by cubic Bézier curves, and degenerate
// arcs by straight lines.
func (p *Path) Iter() path.Path {
	segs := p.Segments()
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var prev, start vec.Vec2
		buf := make([]vec.Vec2, 3)
		for _, seg := range segs {
			switch seg.Kind {
			case MoveTo:
				buf[0] = seg.End
				if !yield(path.CmdMoveTo, buf[:1]) {
					return
				}
			case LineTo:
				buf[0] = seg.End
				if !yield(path.CmdLineTo, buf[:1]) {
					return
				}
			case CurveTo:
				buf[0], buf[1], buf[2] = seg.C1, seg.C2, seg.End
				if !yield(path.CmdCubeTo, buf[:3]) {
					return
				}
			case ArcTo:
				a, ok := arc.FromSVG(svgArc(prev, seg))
				if !ok {
					buf[0] = seg.End
					if !yield(path.CmdLineTo, buf[:1]) {
						return
					}
					break
				}
				for _, c := range arcCurves(a, seg.End) {
					buf[0], buf[1], buf[2] = c.C1, c.C2, c.End
					if !yield(path.CmdCubeTo, buf[:3]) {
						return
					}
				}
			case ClosePath:
				if !yield(path.CmdClose, nil) {
					return
				}
			}
			prev, start = advance(seg, prev, start)
		}
	}
}

// FromGeom converts a [path.Path] iterator into a new Path.
// Quadratic curves are stored as cubic curves.
func FromGeom(it path.Path) *Path {
	p := New()
	for cmd, pts := range it {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			p.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			p.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}
