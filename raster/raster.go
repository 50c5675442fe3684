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

// Package raster converts paths into anti-aliased pixel coverage.
//
// Coverage is the fraction of a pixel's area covered by the filled or
// stroked path, from 0 (outside) to 1 (inside).  Results are delivered
// row by row through a callback, so that the caller can composite them
// into any kind of pixel buffer.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgrender/pathdata"
)

// FillRule determines which points are inside a path.
type FillRule uint8

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// EmitFunc receives the coverage values of one pixel row.  The first
// value belongs to pixel (xMin, y).  The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts paths to pixel coverage values.
// Create one instance and reuse it for many paths: internal buffers grow
// as needed but are never released, so that rendering allocates nothing
// in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to stroke width.
	MiterLimit float64

	// Dash lists alternating dash and gap lengths, in user space units.
	// Nil means a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which the
	// stroke starts.
	DashPhase float64

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which the 2D accumulation buffers are used.  Larger paths use an
	// active edge list.
	smallPathThreshold int

	cover       []float32
	area        []float32
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	devMin, devMax vec.Vec2 // device space bounding box of edges

	// flattened geometry, all subpaths contiguous
	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2

	// stroke outline polygons, all polygons contiguous
	stroke        []vec.Vec2
	strokeOffsets []int

	dashBuf   []strokeSegment
	dashFirst []strokeSegment
}

// NewRasterizer returns a Rasterizer which draws into clip, using the
// initial values of the SVG stroke properties.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	s := pathdata.DefaultStroke()
	r := &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,

		smallPathThreshold: smallPathThreshold,
	}
	r.SetStroke(&s)
	return r
}

// SetStroke copies the stroke parameters from s.
func (r *Rasterizer) SetStroke(s *pathdata.Stroke) {
	r.Width = s.Width
	r.Cap = s.Cap
	r.Join = s.Join
	r.MiterLimit = s.MiterLimit
	r.Dash = s.Dash
	r.DashPhase = s.DashOffset
}

// Fill fills the path using the given fill rule.  Open subpaths are
// closed implicitly.
func (r *Rasterizer) Fill(p *pathdata.Path, rule FillRule, emit EmitFunc) {
	r.flattenPath(p.Segments())
	r.resetEdges()
	for i := range r.segsOffsets {
		segs := r.subpath(i)
		for j := range segs {
			r.addEdge(segs[j].A, segs[j].B)
		}
		if first, last := segs[0].A, segs[len(segs)-1].B; first != last {
			r.addEdge(last, first)
		}
	}
	r.rasterize(rule, emit)
}

// subpath returns the flattened segments of subpath i.
func (r *Rasterizer) subpath(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
}

// addEdge transforms the line from p0 to p1 into device space and adds
// it to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.CTM.Apply(p0.X, p0.Y)
	x1, y1 := r.CTM.Apply(p1.X, p1.Y)

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	dxdy := (x1 - x0) / dy
	if !isFinite(x0, y0, x1, y1, dxdy) {
		return
	}

	if len(r.edges) == 0 {
		r.devMin = vec.Vec2{X: min(x0, x1), Y: min(y0, y1)}
		r.devMax = vec.Vec2{X: max(x0, x1), Y: max(y0, y1)}
	} else {
		r.devMin.X = min(r.devMin.X, x0, x1)
		r.devMin.Y = min(r.devMin.Y, y0, y1)
		r.devMax.X = max(r.devMax.X, x0, x1)
		r.devMax.Y = max(r.devMax.Y, y0, y1)
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: dxdy,
	})
}

// rasterize computes the coverage of the collected edges.
func (r *Rasterizer) rasterize(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	// Device coordinates can be far outside the int range, so they are
	// clamped to the clip rectangle before conversion.
	cx0, cx1 := int(r.Clip.LLx), int(r.Clip.URx)
	cy0, cy1 := int(r.Clip.LLy), int(r.Clip.URy)
	xMin := floorClamp(r.devMin.X, cx0, cx1)
	xMax := min(floorClamp(r.devMax.X, cx0, cx1)+1, cx1)
	yMin := floorClamp(r.devMin.Y, cy0, cy1)
	yMax := min(floorClamp(r.devMax.Y, cy0, cy1)+1, cy1)
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// floorClamp returns floor(v) limited to the range [lo, hi].
func floorClamp(v float64, lo, hi int) int {
	return int(math.Floor(min(max(v, float64(lo)), float64(hi))))
}

func isFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// deviceScale returns the largest factor by which the CTM stretches
// a user space unit vector along the coordinate axes.
func (r *Rasterizer) deviceScale() float64 {
	return max(r.transformLinear(vec.Vec2{X: 1}).Length(), r.transformLinear(vec.Vec2{Y: 1}).Length())
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	smallPathThreshold = 65536

	// zeroLengthThreshold is the smallest length of a flattened segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin θ| between consecutive
	// segment tangents for which no join is drawn.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves, cos(179.43°).
	cuspCosineThreshold = -0.9999
)
