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

package scene

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
)

// Paint is one of Solid, *LinearGradient or *RadialGradient.
type Paint interface {
	isPaint()
}

// Solid paints with a single color.
type Solid struct {
	Color color.NRGBA
}

// Stop is a color stop of a gradient.  Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Spread determines how a gradient continues outside of [0, 1].
type Spread uint8

// These are the spread methods of SVG.
const (
	Pad Spread = iota
	Reflect
	Repeat
)

// Units selects the coordinate system of gradient geometry.
type Units uint8

// These are the gradient unit systems of SVG.
const (
	// ObjectBoundingBox coordinates are fractions of the bounding box of
	// the painted path.
	ObjectBoundingBox Units = iota

	// UserSpaceOnUse coordinates are in the user space of the painted
	// path.
	UserSpaceOnUse
)

// LinearGradient varies the color along the line from (X1, Y1) to
// (X2, Y2).
type LinearGradient struct {
	X1, Y1, X2, Y2 float64
	Stops          []Stop
	Spread         Spread
	Units          Units
	Transform      matrix.Matrix
}

// RadialGradient varies the color between the focal point (FX, FY) and
// the circle with center (CX, CY) and radius R.
type RadialGradient struct {
	CX, CY, R float64
	FX, FY    float64
	Stops     []Stop
	Spread    Spread
	Units     Units
	Transform matrix.Matrix
}

func (Solid) isPaint()           {}
func (*LinearGradient) isPaint() {}
func (*RadialGradient) isPaint() {}
