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

import "seehuhn.de/go/pdf/graphics"

var curveCases = []TestCase{
	{
		Name:   "quadratic_fill",
		Path:   svg("M10 54 Q32 -10 54 54 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "cubic_fill",
		Path:   svg("M10 54 C10 0 54 0 54 54 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "s_curve_stroke",
		Path:   svg("M8 32 C8 8 32 8 32 32 S56 56 56 32"),
		Width:  64,
		Height: 64,
		Op:     stroke(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "smooth_quadratic_stroke",
		Path:   svg("M4 32 Q14 12 24 32 T44 32 T64 32"),
		Width:  64,
		Height: 64,
		Op:     stroke(3, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "cusp_stroke",
		Path:   svg("M10 50 C54 10 10 10 54 50"),
		Width:  64,
		Height: 64,
		Op:     stroke(5, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "loop_evenodd",
		Path:   svg("M10 40 C70 0 -6 0 54 40 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}
