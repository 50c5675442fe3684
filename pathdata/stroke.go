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

import "seehuhn.de/go/pdf/graphics"

// Stroke describes how the outline of a path is stroked.
type Stroke struct {
	// Width is the line width in user space units.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to line width.
	// Miter joins exceeding this ratio are drawn as bevel joins.
	MiterLimit float64

	// Dash is the dash pattern, alternating dash and gap lengths.
	// A nil or empty slice means a solid line.
	Dash []float64

	// DashOffset is the distance into the dash pattern at which
	// the stroke starts.
	DashOffset float64
}

// DefaultStroke returns the initial SVG stroke style: width 1, butt caps,
// miter joins with miter limit 4, no dashes.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 4,
	}
}
