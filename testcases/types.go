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

// Package testcases holds named geometry fixtures which are shared by the
// rasterizer tests, the renderer tests and the reference generators.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgrender/pathdata"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string         // lowercase a-z, 0-9 and _ only
	Path   *pathdata.Path // the geometry to render
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
	Op     Operation      // fill or stroke
	CTM    matrix.Matrix  // user space to device space (zero value means identity)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64
	Dash       []float64 // dash pattern (nil for solid)
	DashPhase  float64
}

func (Stroke) isOperation() {}

// Style returns the stroke parameters as a [pathdata.Stroke].
func (s Stroke) Style() pathdata.Stroke {
	return pathdata.Stroke{
		Width:      s.Width,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
		Dash:       s.Dash,
		DashOffset: s.DashPhase,
	}
}

// svg parses SVG path data.  Fixtures are static, so a syntax error is a
// programming error.
func svg(d string) *pathdata.Path {
	p, err := pathdata.Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

// stroke returns a solid stroke with miter limit 4.
func stroke(width float64, c graphics.LineCapStyle, j graphics.LineJoinStyle) Stroke {
	return Stroke{Width: width, Cap: c, Join: j, MiterLimit: 4}
}
