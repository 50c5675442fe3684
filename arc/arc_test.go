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

package arc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var roundTripCases = []SVGArc{
	{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 10, Y: 10}},
	{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 10, Y: 10}, LargeArc: true},
	{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 10, Y: 10}, Sweep: true},
	{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 10, Y: 10}, LargeArc: true, Sweep: true},
	{From: vec.Vec2{X: 5, Y: -3}, To: vec.Vec2{X: -2, Y: 7}, Radii: vec.Vec2{X: 12, Y: 8}, XRotation: 0.5, Sweep: true},
	{From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 4, Y: 2}, Radii: vec.Vec2{X: 3, Y: 8}, XRotation: -1.2, LargeArc: true},
}

func TestRoundTrip(t *testing.T) {
	for i, svg := range roundTripCases {
		c, ok := FromSVG(svg)
		require.True(t, ok, "case %d", i)

		back := c.ToSVG()
		assert.InDelta(t, svg.From.X, back.From.X, 1e-9, "case %d", i)
		assert.InDelta(t, svg.From.Y, back.From.Y, 1e-9, "case %d", i)
		assert.InDelta(t, svg.To.X, back.To.X, 1e-9, "case %d", i)
		assert.InDelta(t, svg.To.Y, back.To.Y, 1e-9, "case %d", i)
		assert.InDelta(t, svg.Radii.X, back.Radii.X, 1e-9, "case %d", i)
		assert.InDelta(t, svg.Radii.Y, back.Radii.Y, 1e-9, "case %d", i)
		assert.Equal(t, svg.LargeArc, back.LargeArc, "case %d", i)
		assert.Equal(t, svg.Sweep, back.Sweep, "case %d", i)
	}
}

func TestFromSVGDegenerate(t *testing.T) {
	cases := []SVGArc{
		{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 0, Y: 5}},
		{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 5, Y: 0}},
		{From: vec.Vec2{X: 3, Y: 3}, To: vec.Vec2{X: 3, Y: 3}, Radii: vec.Vec2{X: 5, Y: 5}},
	}
	for i, svg := range cases {
		_, ok := FromSVG(svg)
		assert.False(t, ok, "case %d", i)
	}
}

func TestFromSVGScalesRadii(t *testing.T) {
	// a radius of 1 cannot span a distance of 10
	svg := SVGArc{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 1, Y: 1}, Sweep: true}
	c, ok := FromSVG(svg)
	require.True(t, ok)
	assert.InDelta(t, 5.0, c.Radii.X, 1e-9)
	assert.InDelta(t, 5.0, c.Radii.Y, 1e-9)
	assert.InDelta(t, 5.0, c.Center.X, 1e-9)
	assert.InDelta(t, 0.0, c.Center.Y, 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(c.SweepAngle), 1e-9)
}

func TestFlipsHandedness(t *testing.T) {
	assert.False(t, FlipsHandedness(matrix.Identity))
	assert.False(t, FlipsHandedness(matrix.RotateDeg(30)))
	assert.False(t, FlipsHandedness(matrix.RotateDeg(200)))
	assert.False(t, FlipsHandedness(matrix.Scale(3, 3)))
	assert.False(t, FlipsHandedness(matrix.Scale(-1, -1)))
	assert.True(t, FlipsHandedness(matrix.Scale(1, -1)))
	assert.True(t, FlipsHandedness(matrix.Scale(-1, 1)))
	assert.True(t, FlipsHandedness(matrix.Matrix{0, 1, 1, 0, 0, 0}))
}

// TestTransformMatchesPoints checks that the transformed arc passes
// through the images of the original arc points.
func TestTransformMatchesPoints(t *testing.T) {
	transforms := []matrix.Matrix{
		matrix.Identity,
		matrix.Scale(2, 3),
		matrix.Scale(1, -1),
		matrix.Scale(-2, 2).Translate(5, 1),
		matrix.RotateDeg(37).Translate(-3, 4),
	}
	orig := Arc{
		Center:     vec.Vec2{X: 1, Y: 2},
		Radii:      vec.Vec2{X: 4, Y: 4},
		StartAngle: 0.3,
		SweepAngle: 2.1,
	}
	ellipse := Arc{
		Center:     vec.Vec2{X: -1, Y: 0},
		Radii:      vec.Vec2{X: 5, Y: 2},
		StartAngle: -0.5,
		SweepAngle: -1.7,
	}
	for _, a := range []Arc{orig, ellipse} {
		for i, m := range transforms {
			b := a
			b.Transform(m)
			for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
				want := applyPoint(m, a.PointAt(a.StartAngle+s*a.SweepAngle))
				got := b.PointAt(b.StartAngle + s*b.SweepAngle)
				assert.InDelta(t, want.X, got.X, 1e-9, "transform %d, s=%g", i, s)
				assert.InDelta(t, want.Y, got.Y, 1e-9, "transform %d, s=%g", i, s)
			}
		}
	}
}

func TestTransformSVGReflection(t *testing.T) {
	svg := SVGArc{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Radii: vec.Vec2{X: 10, Y: 10}, Sweep: true}
	got, ok := TransformSVG(svg, matrix.Scale(1, -1))
	require.True(t, ok)
	assert.False(t, got.Sweep)
	assert.Equal(t, svg.LargeArc, got.LargeArc)
	assert.InDelta(t, 10.0, got.To.X, 1e-9)
	assert.InDelta(t, 0.0, got.To.Y, 1e-9)

	_, ok = TransformSVG(SVGArc{From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 1, Y: 1}, Radii: vec.Vec2{X: 1, Y: 1}}, matrix.Identity)
	assert.False(t, ok)
}

func TestTangent(t *testing.T) {
	a := Arc{
		Center:     vec.Vec2{X: 3, Y: -1},
		Radii:      vec.Vec2{X: 4, Y: 1.5},
		StartAngle: 0.2,
		SweepAngle: 2.5,
		XRotation:  0.7,
	}
	const h = 1e-6
	for _, s := range []float64{0, 0.3, 0.5, 1} {
		theta := a.StartAngle + s*a.SweepAngle
		fd := a.PointAt(theta + h).Sub(a.PointAt(theta - h)).Mul(1 / (2 * h))
		got := a.Tangent(s)
		assert.InDelta(t, fd.X, got.X, 1e-5)
		assert.InDelta(t, fd.Y, got.Y, 1e-5)
	}

	circle := Arc{Radii: vec.Vec2{X: 1, Y: 1}, SweepAngle: math.Pi / 2}
	start := circle.Tangent(0)
	assert.InDelta(t, 0.0, start.X, 1e-12)
	assert.InDelta(t, 1.0, start.Y, 1e-12)
}

func TestCubics(t *testing.T) {
	const tol = 0.1
	a := Arc{
		Center:     vec.Vec2{X: 10, Y: 10},
		Radii:      vec.Vec2{X: 50, Y: 50},
		StartAngle: 0.1,
		SweepAngle: -4,
	}
	prev := a.PointAt(a.StartAngle)
	n := 0
	for c := range a.Cubics(tol) {
		n++
		for _, s := range []float64{0.25, 0.5, 0.75} {
			p := cubicAt(prev, c.C1, c.C2, c.P, s)
			assert.InDelta(t, 50.0, p.Sub(a.Center).Length(), tol)
		}
		prev = c.P
	}
	assert.Greater(t, n, 1)
	end := a.PointAt(a.StartAngle + a.SweepAngle)
	assert.InDelta(t, end.X, prev.X, 1e-9)
	assert.InDelta(t, end.Y, prev.Y, 1e-9)
}

func TestBBoxContainsSamples(t *testing.T) {
	arcs := []Arc{
		{Radii: vec.Vec2{X: 3, Y: 1}, StartAngle: 0, SweepAngle: 2 * math.Pi, XRotation: 0.4},
		{Center: vec.Vec2{X: 1, Y: 1}, Radii: vec.Vec2{X: 2, Y: 5}, StartAngle: -1, SweepAngle: 1.5, XRotation: 1.1},
		{Center: vec.Vec2{X: -4, Y: 2}, Radii: vec.Vec2{X: 7, Y: 2}, StartAngle: 2, SweepAngle: -3.5, XRotation: -0.3},
	}
	for i, a := range arcs {
		box := a.BBox()
		const n = 4000
		var xMin, xMax, yMin, yMax = math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
		for k := range n + 1 {
			p := a.PointAt(a.StartAngle + a.SweepAngle*float64(k)/n)
			assert.GreaterOrEqual(t, p.X, box.LLx-1e-9, "arc %d", i)
			assert.LessOrEqual(t, p.X, box.URx+1e-9, "arc %d", i)
			assert.GreaterOrEqual(t, p.Y, box.LLy-1e-9, "arc %d", i)
			assert.LessOrEqual(t, p.Y, box.URy+1e-9, "arc %d", i)
			xMin, xMax = min(xMin, p.X), max(xMax, p.X)
			yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
		}
		// the box is tight
		assert.InDelta(t, xMin, box.LLx, 1e-3, "arc %d", i)
		assert.InDelta(t, xMax, box.URx, 1e-3, "arc %d", i)
		assert.InDelta(t, yMin, box.LLy, 1e-3, "arc %d", i)
		assert.InDelta(t, yMax, box.URy, 1e-3, "arc %d", i)
	}
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
}
