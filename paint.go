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

package svgrender

import (
	"image/color"

	"github.com/srwiley/rasterx"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/scene"
)

// shader gives the premultiplied color of a paint at every pixel of a
// layer.
type shader struct {
	solid   color.RGBA
	fn      rasterx.ColorFunc
	opacity float64
}

func (s *shader) at(x, y int) color.RGBA {
	if s.fn == nil {
		return s.solid
	}
	r, g, b, a := s.fn(x, y).RGBA()
	op := s.opacity
	return color.RGBA{
		R: uint8(float64(r>>8)*op + 0.5),
		G: uint8(float64(g>>8)*op + 0.5),
		B: uint8(float64(b>>8)*op + 0.5),
		A: uint8(float64(a>>8)*op + 0.5),
	}
}

// newShader prepares p for drawing.  The matrix ctm maps the user space
// of the painted object to layer pixels, and bbox is the object bounding
// box in user space.  The second return value is false if nothing should
// be painted.
func newShader(p scene.Paint, opacity float64, ctm matrix.Matrix, bbox rect.Rect, hasBBox bool) (*shader, bool) {
	if !(opacity > 0) {
		return nil, false
	}
	opacity = min(1, opacity)

	switch p := p.(type) {
	case scene.Solid:
		return solidShader(p.Color, opacity), true

	case *scene.LinearGradient:
		if len(p.Stops) == 0 {
			return nil, false
		}
		if len(p.Stops) == 1 || p.X1 == p.X2 && p.Y1 == p.Y2 {
			return solidShader(p.Stops[len(p.Stops)-1].Color, opacity), true
		}
		g := &rasterx.Gradient{
			Points: [5]float64{p.X1, p.Y1, p.X2, p.Y2},
		}
		return gradientShader(g, p.Stops, p.Spread, p.Units, p.Transform, opacity, ctm, bbox, hasBBox)

	case *scene.RadialGradient:
		if len(p.Stops) == 0 {
			return nil, false
		}
		if len(p.Stops) == 1 || !(p.R > 0) {
			return solidShader(p.Stops[len(p.Stops)-1].Color, opacity), true
		}
		g := &rasterx.Gradient{
			Points:   [5]float64{p.CX, p.CY, p.FX, p.FY, p.R},
			IsRadial: true,
		}
		return gradientShader(g, p.Stops, p.Spread, p.Units, p.Transform, opacity, ctm, bbox, hasBBox)
	}
	return nil, false
}

func solidShader(c color.NRGBA, opacity float64) *shader {
	opaque := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	nc := rasterx.ApplyOpacity(opaque, float64(c.A)/255*opacity)
	return &shader{solid: color.RGBAModel.Convert(nc).(color.RGBA)}
}

// gradientShader completes g and obtains its color function.
//
// The gradient is evaluated in gradient space: the bounds are the unit
// square, and g.Matrix maps gradient space all the way to layer pixels.
func gradientShader(g *rasterx.Gradient, stops []scene.Stop, spread scene.Spread, units scene.Units, gradTransform matrix.Matrix, opacity float64, ctm matrix.Matrix, bbox rect.Rect, hasBBox bool) (*shader, bool) {
	m := affine.OrIdentity(gradTransform)
	if units == scene.ObjectBoundingBox {
		w := bbox.URx - bbox.LLx
		h := bbox.URy - bbox.LLy
		if !hasBBox || !(w > 0) || !(h > 0) {
			return nil, false
		}
		m = m.Mul(matrix.Matrix{w, 0, 0, h, bbox.LLx, bbox.LLy})
	}
	m = m.Mul(ctm)
	if !usableMatrix(m) {
		return nil, false
	}

	g.Matrix = rasterx.Matrix2D{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
	g.Bounds.W, g.Bounds.H = 1, 1
	g.Units = rasterx.ObjectBoundingBox
	switch spread {
	case scene.Reflect:
		g.Spread = rasterx.ReflectSpread
	case scene.Repeat:
		g.Spread = rasterx.RepeatSpread
	default:
		g.Spread = rasterx.PadSpread
	}

	// Offsets must be increasing.  Equal offsets are separated slightly,
	// since the stops are sorted before use.
	g.Stops = make([]rasterx.GradStop, len(stops))
	prev := 0.0
	for i, s := range stops {
		off := max(0, min(1, s.Offset))
		if i > 0 && off <= prev {
			off = prev + 1e-9
		}
		prev = off
		g.Stops[i] = rasterx.GradStop{
			StopColor: color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 0xFF},
			Offset:    off,
			Opacity:   float64(s.Color.A) / 255,
		}
	}

	switch f := g.GetColorFunction(1).(type) {
	case rasterx.ColorFunc:
		return &shader{fn: f, opacity: opacity}, true
	case color.Color:
		return &shader{fn: func(int, int) color.Color { return f }, opacity: opacity}, true
	}
	return nil, false
}
