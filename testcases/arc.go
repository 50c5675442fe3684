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

var arcCases = []TestCase{
	{
		Name:   "circle_fill",
		Path:   svg("M12 32 A20 20 0 1 1 52 32 A20 20 0 1 1 12 32 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rotated_ellipse_fill",
		Path:   svg("M10 32 A24 12 30 0 1 54 32 A24 12 30 0 1 10 32 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "pie_slice",
		Path:   svg("M32 32 L56 32 A24 24 0 1 1 32 8 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rounded_rectangle_stroke",
		Path:   svg("M16 8 H48 A8 8 0 0 1 56 16 V48 A8 8 0 0 1 48 56 H16 A8 8 0 0 1 8 48 V16 A8 8 0 0 1 16 8 Z"),
		Width:  64,
		Height: 64,
		Op:     stroke(3, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		// radii too small for the end points: scaled up to a half ellipse
		Name:   "small_radii",
		Path:   svg("M10 32 A4 2 0 0 0 54 32"),
		Width:  64,
		Height: 64,
		Op:     stroke(2, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		// zero radius: drawn as a straight line
		Name:   "zero_radius",
		Path:   svg("M10 32 A0 10 0 0 1 54 32"),
		Width:  64,
		Height: 64,
		Op:     stroke(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "large_arc_sweep_flags",
		Path:   svg("M20 40 a14 10 0 1 0 24 0 M20 24 a14 10 0 0 1 24 0"),
		Width:  64,
		Height: 64,
		Op:     stroke(2, graphics.LineCapButt, graphics.LineJoinMiter),
	},
}
