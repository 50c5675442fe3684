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

// Package arc converts between the two parameterisations of elliptical
// arcs and transforms arcs under affine maps.
//
// The endpoint form [SVGArc] is the one used by SVG path data: start and
// end point, radii, x-axis rotation and the large-arc and sweep flags.
// The centerpoint form [Arc] describes the same curve by its center,
// radii, rotation, start angle and sweep angle.  Conversion follows the
// SVG arc implementation notes.  All angles are in radians.
package arc

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Arc is an elliptical arc in centerpoint parameterisation.
//
// The point at parameter angle t is
//
//	Center + R(XRotation) · (Radii.X·cos t, Radii.Y·sin t)
//
// where R(φ) is the rotation by φ.  The arc runs from t = StartAngle to
// t = StartAngle + SweepAngle.
type Arc struct {
	Center     vec.Vec2
	Radii      vec.Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// SVGArc is an elliptical arc in endpoint parameterisation.
type SVGArc struct {
	From      vec.Vec2
	To        vec.Vec2
	Radii     vec.Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// Cubic is one cubic Bézier segment of an arc approximation.  The start
// point is the end point of the previous segment (or the arc start).
type Cubic struct {
	C1, C2, P vec.Vec2
}

// minRadius is the radius below which an arc is treated as a straight line.
const minRadius = 1e-5

// IsStraightLine reports whether the arc degenerates to a line segment:
// either radius is (almost) zero, or the endpoints coincide.
func (a SVGArc) IsStraightLine() bool {
	return math.Abs(a.Radii.X) <= minRadius ||
		math.Abs(a.Radii.Y) <= minRadius ||
		a.From == a.To
}

// FromSVG converts an endpoint arc to centerpoint form.  Radii which are
// too small to reach from one endpoint to the other are scaled up, as
// required by SVG.  The second return value is false if the arc is
// degenerate; callers then draw a straight line to a.To.
func FromSVG(a SVGArc) (Arc, bool) {
	if a.IsStraightLine() {
		return Arc{}, false
	}

	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	sinPhi, cosPhi := math.Sincos(math.Mod(a.XRotation, 2*math.Pi))

	hd := a.From.Sub(a.To).Mul(0.5)
	mid := a.From.Add(a.To).Mul(0.5)

	// endpoint difference in the coordinate system of the ellipse axes
	p := vec.Vec2{
		X: cosPhi*hd.X + sinPhi*hd.Y,
		Y: -sinPhi*hd.X + cosPhi*hd.Y,
	}

	if lambda := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumSq := rxpy*rxpy + rypx*rypx

	sign := 1.0
	if a.LargeArc == a.Sweep {
		sign = -1.0
	}
	coe := sign * math.Sqrt(math.Abs((rxry*rxry-sumSq)/sumSq))
	tcx := coe * rxpy / ry
	tcy := -coe * rypx / rx

	center := vec.Vec2{
		X: cosPhi*tcx - sinPhi*tcy + mid.X,
		Y: sinPhi*tcx + cosPhi*tcy + mid.Y,
	}

	startAngle := math.Atan2((p.Y-tcy)/ry, (p.X-tcx)/rx)
	endAngle := math.Atan2((-p.Y-tcy)/ry, (-p.X-tcx)/rx)
	sweep := math.Mod(endAngle-startAngle, 2*math.Pi)
	if a.Sweep && sweep < 0 {
		sweep += 2 * math.Pi
	} else if !a.Sweep && sweep > 0 {
		sweep -= 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      vec.Vec2{X: rx, Y: ry},
		StartAngle: startAngle,
		SweepAngle: sweep,
		XRotation:  a.XRotation,
	}, true
}

// ToSVG converts the arc to endpoint form.
func (a Arc) ToSVG() SVGArc {
	return SVGArc{
		From:      a.PointAt(a.StartAngle),
		To:        a.PointAt(a.StartAngle + a.SweepAngle),
		Radii:     a.Radii,
		XRotation: a.XRotation,
		LargeArc:  math.Abs(a.SweepAngle) > math.Pi,
		Sweep:     a.SweepAngle > 0,
	}
}

// PointAt returns the point of the full ellipse at parameter angle t.
func (a Arc) PointAt(t float64) vec.Vec2 {
	return a.Center.Add(a.sample(t))
}

// sample returns the ellipse point at angle t, relative to the center.
func (a Arc) sample(t float64) vec.Vec2 {
	sinT, cosT := math.Sincos(t)
	u := a.Radii.X * cosT
	v := a.Radii.Y * sinT
	sinPhi, cosPhi := math.Sincos(a.XRotation)
	return vec.Vec2{
		X: u*cosPhi - v*sinPhi,
		Y: u*sinPhi + v*cosPhi,
	}
}

// FlipsHandedness reports whether m reverses orientation.
//
// The x basis vector of m is compared against the x basis vector a pure
// rotation would have given the y basis vector of m.  If the two point
// in opposite directions, m contains a reflection and arc sweeps must be
// negated.
func FlipsHandedness(m matrix.Matrix) bool {
	xAxis := vec.Vec2{X: m[0], Y: m[1]}
	yAxis := vec.Vec2{X: m[2], Y: m[3]}
	typicalX := vec.Vec2{X: yAxis.Y, Y: -yAxis.X}
	return typicalX.Dot(xAxis) < 0
}

// Transform maps the arc through m in place.
//
// The center and the two radius anchor points (each radius vector rotated
// by the x-axis rotation and attached to the center) are transformed.
// The new radii are the distances from the transformed center to the
// transformed anchors, and the new rotation is the direction of the
// first anchor.  Start and sweep angle change sign if m flips
// handedness.
//
// For maps which do not keep the ellipse axes orthogonal (shears,
// non-uniform scaling of a rotated ellipse) the result approximates the
// image of the arc.
func (a *Arc) Transform(m matrix.Matrix) {
	center := applyPoint(m, a.Center)

	sinPhi, cosPhi := math.Sincos(math.Mod(a.XRotation, 2*math.Pi))
	rxAnchor := a.Center.Add(vec.Vec2{X: a.Radii.X * cosPhi, Y: a.Radii.X * sinPhi})
	ryAnchor := a.Center.Add(vec.Vec2{X: -a.Radii.Y * sinPhi, Y: a.Radii.Y * cosPhi})

	rxDir := applyPoint(m, rxAnchor).Sub(center)
	ryDir := applyPoint(m, ryAnchor).Sub(center)

	flip := 1.0
	if FlipsHandedness(m) {
		flip = -1.0
	}

	a.Center = center
	a.Radii = vec.Vec2{X: rxDir.Length(), Y: ryDir.Length()}
	a.XRotation = math.Atan2(rxDir.Y, rxDir.X)
	a.StartAngle *= flip
	a.SweepAngle *= flip
}

// TransformSVG maps an endpoint arc through m by way of the centerpoint
// form.  The second return value is false if the arc is degenerate; the
// caller should then transform the end point like a line segment.
func TransformSVG(a SVGArc, m matrix.Matrix) (SVGArc, bool) {
	c, ok := FromSVG(a)
	if !ok {
		return SVGArc{}, false
	}
	c.Transform(m)
	return c.ToSVG(), true
}

// Tangent returns the (unnormalised) tangent vector of the arc at
// position t, where t = 0 is the start and t = 1 the end of the arc.
func (a Arc) Tangent(t float64) vec.Vec2 {
	theta := a.StartAngle + t*a.SweepAngle
	sinT, cosT := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(a.XRotation)
	rx, ry := a.Radii.X, a.Radii.Y
	return vec.Vec2{
		X: -rx*cosPhi*sinT - ry*sinPhi*cosT,
		Y: -rx*sinPhi*sinT + ry*cosPhi*cosT,
	}
}

// Cubics returns a cubic Bézier approximation of the arc with the given
// maximum error.  The first segment starts at the arc start point.
func (a Arc) Cubics(tolerance float64) iter.Seq[Cubic] {
	return func(yield func(Cubic) bool) {
		n := a.segmentCount(tolerance)
		if n == 0 {
			return
		}
		step := a.SweepAngle / float64(n)
		arm := 4.0 / 3.0 * math.Abs(math.Tan(step/4))
		if a.SweepAngle < 0 {
			arm = -arm
		}

		t0 := a.StartAngle
		p0 := a.sample(t0)
		for range n {
			t1 := t0 + step
			p3 := a.sample(t1)
			p1 := p0.Add(a.sample(t0 + math.Pi/2).Mul(arm))
			p2 := p3.Sub(a.sample(t1 + math.Pi/2).Mul(arm))
			if !yield(Cubic{
				C1: a.Center.Add(p1),
				C2: a.Center.Add(p2),
				P:  a.Center.Add(p3),
			}) {
				return
			}
			t0, p0 = t1, p3
		}
	}
}

// maxCubics bounds the number of segments for absurd radius/tolerance
// combinations.
const maxCubics = 1 << 16

func (a Arc) segmentCount(tolerance float64) int {
	if a.SweepAngle == 0 || math.IsNaN(a.SweepAngle) {
		return 0
	}
	scaledErr := max(a.Radii.X, a.Radii.Y) / tolerance
	nErr := max(math.Pow(1.1163*scaledErr, 1.0/6.0), 3.999999)
	n := math.Ceil(nErr * math.Abs(a.SweepAngle) / (2 * math.Pi))
	if math.IsNaN(n) || n > maxCubics {
		return maxCubics
	}
	return max(int(n), 1)
}

// BBox returns the exact bounding box of the arc.
func (a Arc) BBox() rect.Rect {
	start := a.PointAt(a.StartAngle)
	end := a.PointAt(a.StartAngle + a.SweepAngle)
	box := rect.Rect{
		LLx: min(start.X, end.X), LLy: min(start.Y, end.Y),
		URx: max(start.X, end.X), URy: max(start.Y, end.Y),
	}

	// parameter angles where dx/dt = 0 and dy/dt = 0
	sinPhi, cosPhi := math.Sincos(a.XRotation)
	rx, ry := a.Radii.X, a.Radii.Y
	tx := math.Atan2(-ry*sinPhi, rx*cosPhi)
	ty := math.Atan2(ry*cosPhi, rx*sinPhi)

	for _, t := range [4]float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		if !a.contains(t) {
			continue
		}
		p := a.PointAt(t)
		box.Add(p.X, p.Y)
	}
	return box
}

// contains reports whether the parameter angle t lies within the sweep.
func (a Arc) contains(t float64) bool {
	d := t - a.StartAngle
	sweep := a.SweepAngle
	if sweep < 0 {
		d, sweep = -d, -sweep
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= sweep
}

func applyPoint(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}
