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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ArclenAccuracy is the accuracy used when measuring the length of cubic
// Bézier curves.
const ArclenAccuracy = 1.0

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// fuzzyZero reports whether x is zero up to rounding errors.
func fuzzyZero(x float64) bool {
	return math.Abs(x) <= 1e-12
}

func cubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := s * s * s
	b := 3 * s * s * t
	c := 3 * s * t * t
	d := t * t * t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// cubicDeriv returns the derivative of the cubic Bézier curve at t.
func cubicDeriv(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := 3 * s * s
	b := 6 * s * t
	c := 3 * t * t
	return vec.Vec2{
		X: a*(p1.X-p0.X) + b*(p2.X-p1.X) + c*(p3.X-p2.X),
		Y: a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y) + c*(p3.Y-p2.Y),
	}
}

// cubicBBox returns the exact bounding box of a cubic Bézier curve.
// Apart from the end points, the box is determined by the zeros of the
// derivative in (0, 1), for each coordinate separately.
func cubicBBox(p0, p1, p2, p3 vec.Vec2) rect.Rect {
	box := rect.Rect{
		LLx: min(p0.X, p3.X), LLy: min(p0.Y, p3.Y),
		URx: max(p0.X, p3.X), URy: max(p0.Y, p3.Y),
	}

	extend := func(t float64) {
		if t <= 0 || t >= 1 {
			return
		}
		q := cubicPoint(p0, p1, p2, p3, t)
		box.Add(q.X, q.Y)
	}

	// B'(t)/3 = a t^2 + b t + c
	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2 * (p0.X - 2*p1.X + p2.X)
	cx := p1.X - p0.X
	quadRoots(ax, bx, cx, extend)

	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2 * (p0.Y - 2*p1.Y + p2.Y)
	cy := p1.Y - p0.Y
	quadRoots(ay, by, cy, extend)

	return box
}

// quadRoots calls yield for every real root of a t^2 + b t + c.
func quadRoots(a, b, c float64, yield func(float64)) {
	if a == 0 {
		if b != 0 {
			yield(-c / b)
		}
		return
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return
	}
	// numerically stable form, see Numerical Recipes 5.6
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	yield(q / a)
	if q != 0 {
		yield(c / q)
	}
}

// gauss-legendre nodes and weights on [-1, 1]
var (
	glNodes   = [5]float64{0, -0.5384693101056831, 0.5384693101056831, -0.9061798459386640, 0.9061798459386640}
	glWeights = [5]float64{0.5688888888888889, 0.4786286704993665, 0.4786286704993665, 0.2369268850561891, 0.2369268850561891}
)

// cubicArclen returns the length of a cubic Bézier curve, with an error
// of at most accuracy.
func cubicArclen(p0, p1, p2, p3 vec.Vec2, accuracy float64) float64 {
	return arclenRec(p0, p1, p2, p3, accuracy, 0)
}

func arclenRec(p0, p1, p2, p3 vec.Vec2, accuracy float64, depth int) float64 {
	chord := p3.Sub(p0).Length()
	poly := p1.Sub(p0).Length() + p2.Sub(p1).Length() + p3.Sub(p2).Length()
	if poly-chord <= accuracy || depth >= 16 {
		var l float64
		for i, x := range glNodes {
			t := 0.5 * (x + 1)
			l += glWeights[i] * cubicDeriv(p0, p1, p2, p3, t).Length()
		}
		return 0.5 * l
	}

	// de Casteljau split at t = 1/2
	p01 := p0.Add(p1).Mul(0.5)
	p12 := p1.Add(p2).Mul(0.5)
	p23 := p2.Add(p3).Mul(0.5)
	p012 := p01.Add(p12).Mul(0.5)
	p123 := p12.Add(p23).Mul(0.5)
	mid := p012.Add(p123).Mul(0.5)
	return arclenRec(p0, p01, p012, mid, accuracy/2, depth+1) +
		arclenRec(mid, p123, p23, p3, accuracy/2, depth+1)
}
