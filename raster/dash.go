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
)

// dashPattern returns the effective dash pattern.  Odd-length patterns
// are repeated once.  The second return value is false if the stroke
// is solid: no pattern, a negative entry, or all entries zero.
func (r *Rasterizer) dashPattern() ([]float64, bool) {
	if len(r.Dash) == 0 {
		return nil, false
	}
	var total float64
	for _, l := range r.Dash {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, false
		}
		total += l
	}
	if total <= 0 {
		return nil, false
	}
	if len(r.Dash)%2 == 1 {
		return append(r.Dash[:len(r.Dash):len(r.Dash)], r.Dash...), true
	}
	return r.Dash, true
}

// dashSubpath splits a flattened subpath into dashes and adds the
// outline of every dash.
func (r *Rasterizer) dashSubpath(segs []strokeSegment, closed bool, pattern []float64) {
	var total float64
	for _, l := range pattern {
		total += l
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	idx := 0
	for phase > pattern[idx] || phase == pattern[idx] && pattern[idx] > 0 {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - phase
	on := idx%2 == 0

	split := false // at least one dash boundary was crossed
	haveFirst := false
	r.dashBuf = r.dashBuf[:0]
	r.dashFirst = r.dashFirst[:0]

	for _, seg := range segs {
		pos := 0.0
		for {
			step := min(remaining, seg.Len-pos)
			if on && step > 0 {
				r.dashBuf = append(r.dashBuf, seg.sub(pos, pos+step))
			}
			pos += step
			remaining -= step
			if remaining > 0 {
				break
			}

			// a dash or gap ends here
			if on {
				switch {
				case len(r.dashBuf) == 0:
					r.addDot(seg.pointAt(pos), seg.T)
				case closed && !split:
					// the first dash of a closed subpath may continue
					// the last one
					r.dashFirst = append(r.dashFirst, r.dashBuf...)
					haveFirst = true
				default:
					r.strokeDash(r.dashBuf)
				}
				r.dashBuf = r.dashBuf[:0]
			}
			split = true
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
			on = !on
			if pos >= seg.Len && remaining > 0 {
				break
			}
		}
	}

	switch {
	case on && !split:
		// the whole subpath lies inside one dash
		r.strokeSubpath(segs, closed)
	case on && closed && haveFirst:
		r.dashBuf = append(r.dashBuf, r.dashFirst...)
		r.strokeDash(r.dashBuf)
	default:
		if haveFirst {
			r.strokeDash(r.dashFirst)
		}
		if on && len(r.dashBuf) > 0 {
			r.strokeDash(r.dashBuf)
		}
	}
}

// strokeDash adds the outline of a single open dash.
func (r *Rasterizer) strokeDash(segs []strokeSegment) {
	if len(segs) == 0 {
		return
	}
	r.strokeSubpath(segs, false)
}

// addDot adds the outline of a zero-length dash at p, oriented along T.
// Only round and square caps produce any output.
func (r *Rasterizer) addDot(p, T vec.Vec2) {
	first := len(r.strokeOffsets)
	d := r.Width / 2
	switch r.Cap {
	case graphics.LineCapRound:
		r.beginPolygon()
		r.addArc(p, d, vec.Vec2{X: 1}, 2*math.Pi, true)
	case graphics.LineCapSquare:
		r.beginPolygon()
		r.addSquare(p, T, d)
	}
	r.orientPolygons(first)
}

// pointAt returns the point at distance s from A.
func (s strokeSegment) pointAt(dist float64) vec.Vec2 {
	return s.A.Add(s.T.Mul(dist))
}

// sub returns the part of s between the distances from and to from A.
func (s strokeSegment) sub(from, to float64) strokeSegment {
	res := s
	if from > 0 {
		res.A = s.pointAt(from)
	}
	if to < s.Len {
		res.B = s.pointAt(to)
	}
	res.Len = to - from
	return res
}
