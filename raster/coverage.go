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
	"cmp"
	"slices"
)

// Each pixel row is described by two accumulation buffers:
//
//	cover[i]: signed vertical extent of the edges crossing column i
//	area[i]:  the same, weighted by the uncovered fraction of the pixel
//	          to the left of the crossing
//
// An edge piece crossing a pixel contributes cover = ±dy (positive for
// downward edges) and area = cover·(1-xFrac), where xFrac is the mean
// horizontal position of the piece inside the pixel.  Summing from the
// left, the signed coverage of pixel i is area[i] plus the cover of all
// columns before i.  The fill rule maps this value into [0, 1].

// accumulateEdge adds the part of e inside scanline y to the buffers.
// The buffers are indexed by x-bxMin.  Contributions left of bxMin are
// collected in column 0, contributions right of bxMax are dropped.
func accumulateEdge(e *edge, y int, cover, area []float32, bxMin, bxMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	xLo, xHi := min(xa, xb), max(xa, xb)

	if xHi < float64(bxMin) {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if xLo >= float64(bxMax) {
		return
	}

	// Everything left of bxMin ends up in column 0 and everything right
	// of bxMax is dropped, so only columns bxMin-1 to bxMax are visited.
	pixLeft := floorClamp(xLo, bxMin-1, bxMax)
	pixRight := floorClamp(xHi, bxMin-1, bxMax)
	if pixLeft == pixRight {
		deposit(e, yTop, yBot, sign, pixLeft, cover, area, bxMin, bxMax)
		return
	}

	// split the edge at the pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= min(pixRight, bxMax-1); pix++ {
		left := float64(pix)
		if pix < bxMin {
			left = xLo
		}
		ya := e.y0 + dydx*(left-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(e, lo, hi, sign, pix, cover, area, bxMin, bxMax)
	}
}

// deposit adds the piece of e between yTop and yBot, which lies inside
// pixel column pix, to the buffers.
func deposit(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bxMin, bxMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < bxMin:
		cover[0] += c
		area[0] += c
	case pix < bxMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		xFrac := xMid - float64(pix)
		i := pix - bxMin
		cover[i] += c
		area[i] += c * float32(1-xFrac)
	}
}

// integrate converts the accumulated buffers of one row into coverage
// values, in place in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	if rule == EvenOdd {
		for i := range cover {
			raw := abs32(acc + area[i])
			acc += cover[i]
			m := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-m)
		}
		return
	}
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		cover[i] = min(raw, 1)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of its start.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillSmallPath rasterizes the edges using one pair of buffers for the
// whole bounding box.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], h)[:h]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := floorClamp(min(e.y0, e.y1), yMin, yMax)
		bot := min(floorClamp(max(e.y0, e.y1), yMin, yMax)+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * w
			accumulateEdge(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range h {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w], rule)
		if trimmed, dx := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+dx, trimmed)
		}
	}
}

// fillLargePath rasterizes the edges one scanline at a time, keeping a
// list of the edges which intersect the current scanline.
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			if min(yf+1, max(e.y0, e.y1)) > max(yf, min(e.y0, e.y1)) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, dx := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+dx, trimmed)
		}
	}
}
