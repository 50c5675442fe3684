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

// Package affine holds the few matrix helpers the renderer needs on top
// of [matrix.Matrix].  Points are mapped with [matrix.Matrix.Apply] and
// transformations combined with [matrix.Matrix.Mul].
//
// A matrix m maps (x, y) to (m[0]x + m[2]y + m[4], m[1]x + m[3]y + m[5]).
package affine

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ApplyVec maps the vector v through the linear part of m.
func ApplyVec(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Det returns the determinant of the linear part of m.
func Det(m matrix.Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// OrIdentity returns m, or the identity if m is the zero matrix.
// Scene nodes use the zero value to mean "no transformation".
func OrIdentity(m matrix.Matrix) matrix.Matrix {
	if m.IsZero() {
		return matrix.Identity
	}
	return m
}

// IsFinite reports whether all coefficients of m are finite.
func IsFinite(m matrix.Matrix) bool {
	for _, c := range m {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Rect returns the axis-aligned bounding box of the image of r under m.
func Rect(m matrix.Matrix, r rect.Rect) rect.Rect {
	x, y := m.Apply(r.LLx, r.LLy)
	res := rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
	for _, c := range [3][2]float64{{r.URx, r.LLy}, {r.URx, r.URy}, {r.LLx, r.URy}} {
		res.Add(m.Apply(c[0], c[1]))
	}
	return res
}

// Scale returns the lengths of the images of the unit vectors in x and y
// direction under m.
func Scale(m matrix.Matrix) (sx, sy float64) {
	return math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3])
}
