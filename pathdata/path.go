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

// Package pathdata implements the path geometry engine: sequences of
// path segments with construction helpers, exact bounding boxes,
// transform-correct elliptical arcs, arc length, subpath iteration and
// lazily transformed views.
//
// A [Path] is a handle onto segment storage which may be shared between
// several handles, see [Path.Share].  Storage is copied on the first
// mutation through a shared handle, so that all other handles keep
// seeing the old geometry.
package pathdata

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgrender/arc"
)

// ErrInvalidGeometry is returned when an operation needs a current point
// or an initial MoveTo segment which the path does not have.
var ErrInvalidGeometry = errors.New("invalid path geometry")

// Kind identifies the type of a path segment.
type Kind uint8

// These are the supported segment kinds.
const (
	MoveTo Kind = iota
	LineTo
	CurveTo
	ArcTo
	ClosePath
)

func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	case ArcTo:
		return "ArcTo"
	case ClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Segment is a single path command.
//
// End is the end point of all kinds except ClosePath.
// C1 and C2 are only used by CurveTo.
// Radii, XRotation, LargeArc and Sweep are only used by ArcTo;
// they have the meaning of the corresponding SVG arc parameters,
// and XRotation is given in degrees.
type Segment struct {
	Kind      Kind
	C1, C2    vec.Vec2
	End       vec.Vec2
	Radii     vec.Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// ArcTolerance is the maximal distance between an elliptical arc and the
// cubic Bézier curves used to approximate it.
const ArcTolerance = 0.1

type storage struct {
	segs []Segment
	refs atomic.Int32
}

func newStorage(segs []Segment) *storage {
	s := &storage{segs: segs}
	s.refs.Store(1)
	return s
}

// Path is a sequence of path segments.
//
// The zero value is an empty path, ready to use.  A Path must not be
// mutated concurrently, but different handles obtained via [Path.Share]
// may be used from different goroutines.
type Path struct {
	s   *storage
	err error
}

// New returns a new, empty path.
func New() *Path {
	return &Path{}
}

// FromSegments returns a path which holds a copy of segs.
func FromSegments(segs []Segment) *Path {
	return &Path{s: newStorage(slices.Clone(segs))}
}

// FromRect returns a closed path which traces the outline of r.
func FromRect(r rect.Rect) *Path {
	p := New()
	p.MoveTo(r.LLx, r.LLy).
		LineTo(r.URx, r.LLy).
		LineTo(r.URx, r.URy).
		LineTo(r.LLx, r.URy).
		Close()
	return p
}

// Segments returns the segments of the path.
// The returned slice must not be modified.
func (p *Path) Segments() []Segment {
	if p == nil || p.s == nil {
		return nil
	}
	return p.s.segs
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.Segments())
}

// Err returns the first error recorded while building the path.
func (p *Path) Err() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Share returns a new handle onto the same segment storage.
// This does not copy the segments.  Whichever handle is mutated
// first receives a private copy.
func (p *Path) Share() *Path {
	if p.s == nil {
		p.s = newStorage(nil)
	}
	p.s.refs.Add(1)
	return &Path{s: p.s, err: p.err}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{s: newStorage(slices.Clone(p.Segments())), err: p.Err()}
}

// Release gives up the handle's claim on the shared storage and empties
// the handle.  Calling Release on a handle which is no longer needed
// saves a copy when another handle onto the same storage is mutated.
func (p *Path) Release() {
	if p.s != nil {
		p.s.refs.Add(-1)
		p.s = nil
	}
	p.err = nil
}

// detach makes sure that p holds the only reference to its storage.
func (p *Path) detach() {
	if p.s == nil {
		p.s = newStorage(nil)
		return
	}
	if p.s.refs.Load() > 1 {
		old := p.s
		p.s = newStorage(slices.Clone(old.segs))
		old.refs.Add(-1)
	}
}

func (p *Path) push(segs ...Segment) {
	p.detach()
	p.s.segs = append(p.s.segs, segs...)
}

func (p *Path) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.push(Segment{Kind: MoveTo, End: vec.Vec2{X: x, Y: y}})
	return p
}

// LineTo appends a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.push(Segment{Kind: LineTo, End: vec.Vec2{X: x, Y: y}})
	return p
}

// CurveTo appends a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x, y).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) *Path {
	p.push(Segment{
		Kind: CurveTo,
		C1:   vec.Vec2{X: x1, Y: y1},
		C2:   vec.Vec2{X: x2, Y: y2},
		End:  vec.Vec2{X: x, Y: y},
	})
	return p
}

// QuadTo appends a quadratic Bézier curve with control point (x1, y1),
// ending at (x, y).  The curve is stored as the equivalent cubic.
func (p *Path) QuadTo(x1, y1, x, y float64) *Path {
	p0, err := p.CurrentPoint()
	if err != nil {
		p.setErr(fmt.Errorf("QuadTo: %w", err))
		return p
	}
	q := vec.Vec2{X: x1, Y: y1}
	end := vec.Vec2{X: x, Y: y}
	p.push(Segment{
		Kind: CurveTo,
		C1:   p0.Add(q.Mul(2)).Mul(1.0 / 3),
		C2:   end.Add(q.Mul(2)).Mul(1.0 / 3),
		End:  end,
	})
	return p
}

// ArcTo appends an SVG elliptical arc ending at (x, y).
// The rotation of the ellipse's x-axis, xRotation, is given in degrees.
//
// Unless the package is built with the accuratearcs tag, the arc is
// approximated by cubic Bézier curves (see [ArcTolerance]); degenerate
// arcs become straight lines.
func (p *Path) ArcTo(rx, ry, xRotation float64, largeArc, sweep bool, x, y float64) *Path {
	end := vec.Vec2{X: x, Y: y}
	if PreserveArcs {
		p.push(Segment{
			Kind:      ArcTo,
			End:       end,
			Radii:     vec.Vec2{X: rx, Y: ry},
			XRotation: xRotation,
			LargeArc:  largeArc,
			Sweep:     sweep,
		})
		return p
	}

	from, err := p.CurrentPoint()
	if err != nil {
		p.setErr(fmt.Errorf("ArcTo: %w", err))
		return p
	}
	a, ok := ConvertSVGArc(from, rx, ry, xRotation, largeArc, sweep, end)
	if !ok {
		p.push(Segment{Kind: LineTo, End: end})
		return p
	}
	p.push(arcCurves(a, end)...)
	return p
}

// Close closes the current subpath with a straight line to its start.
func (p *Path) Close() *Path {
	p.push(Segment{Kind: ClosePath})
	return p
}

// Append adds all segments of other to the end of p.
func (p *Path) Append(other *Path) *Path {
	p.push(other.Segments()...)
	return p
}

// CurrentPoint returns the point where the next segment would start.
// After ClosePath this is the start of the closed subpath.
func (p *Path) CurrentPoint() (vec.Vec2, error) {
	return currentPoint(p.Segments())
}

func currentPoint(segs []Segment) (vec.Vec2, error) {
	if len(segs) == 0 {
		return vec.Vec2{}, fmt.Errorf("current point of empty path: %w", ErrInvalidGeometry)
	}
	last := segs[len(segs)-1]
	if last.Kind != ClosePath {
		return last.End, nil
	}
	for i := len(segs) - 2; i >= 0; i-- {
		if segs[i].Kind == MoveTo {
			return segs[i].End, nil
		}
	}
	return vec.Vec2{}, fmt.Errorf("ClosePath without MoveTo: %w", ErrInvalidGeometry)
}

// ConvertSVGArc converts an SVG arc from the endpoint representation to
// the centerpoint representation.  The rotation xRotation is given in
// degrees.  The second return value is false if the arc is degenerate
// and should be drawn as a straight line.
func ConvertSVGArc(from vec.Vec2, rx, ry, xRotation float64, largeArc, sweep bool, to vec.Vec2) (arc.Arc, bool) {
	return arc.FromSVG(arc.SVGArc{
		From:      from,
		To:        to,
		Radii:     vec.Vec2{X: rx, Y: ry},
		XRotation: deg2rad(xRotation),
		LargeArc:  largeArc,
		Sweep:     sweep,
	})
}

// arcCurves returns the CurveTo segments which approximate a.
// The last curve ends exactly at end.
func arcCurves(a arc.Arc, end vec.Vec2) []Segment {
	var res []Segment
	for c := range a.Cubics(ArcTolerance) {
		res = append(res, Segment{Kind: CurveTo, C1: c.C1, C2: c.C2, End: c.P})
	}
	if len(res) > 0 {
		res[len(res)-1].End = end
	}
	return res
}

// svgArc returns the arc described by the ArcTo segment seg,
// starting at from.
func svgArc(from vec.Vec2, seg Segment) arc.SVGArc {
	return arc.SVGArc{
		From:      from,
		To:        seg.End,
		Radii:     seg.Radii,
		XRotation: deg2rad(seg.XRotation),
		LargeArc:  seg.LargeArc,
		Sweep:     seg.Sweep,
	}
}
