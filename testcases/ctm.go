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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:   "scaled_square",
		Path:   svg("M2 2 H14 V14 H2 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(4, 4),
	},
	{
		Name:   "rotated_square",
		Path:   svg("M-12 -12 H12 V12 H-12 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "flipped_y",
		Path:   svg("M10 10 L54 10 L32 50 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
	{
		Name:   "anisotropic_stroke",
		Path:   svg("M4 8 H28"),
		Width:  64,
		Height: 64,
		Op:     stroke(2, graphics.LineCapRound, graphics.LineJoinRound),
		CTM:    matrix.Scale(2, 4),
	},
	{
		Name:   "sheared_circle",
		Path:   svg("M-10 0 A10 10 0 1 1 10 0 A10 10 0 1 1 -10 0 Z"),
		Width:  64,
		Height: 64,
		Op:     stroke(2, graphics.LineCapButt, graphics.LineJoinMiter),
		CTM:    matrix.Matrix{2, 0, 0.8, 2, 32, 32},
	},
	{
		Name:   "scaled_dashes",
		Path:   svg("M2 8 H30"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(1, graphics.LineCapButt, graphics.LineJoinMiter), 0, 3, 2),
		CTM:    matrix.Scale(2, 2),
	},
}
