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

var subpathCases = []TestCase{
	{
		Name:   "square_with_hole_nonzero",
		Path:   svg("M8 8 H56 V56 H8 Z M20 20 V44 H44 V20 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "square_overlap_nonzero",
		Path:   svg("M8 8 H56 V56 H8 Z M20 20 H44 V44 H20 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "square_overlap_evenodd",
		Path:   svg("M8 8 H56 V56 H8 Z M20 20 H44 V44 H20 Z"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "separate_open_strokes",
		Path:   svg("M8 16 H56 M8 32 H56 M8 48 H56"),
		Width:  64,
		Height: 64,
		Op:     stroke(4, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		// a drawing command after Z starts from the closed subpath's start
		Name:   "continue_after_close",
		Path:   svg("M10 10 H30 V30 Z L50 10 V50"),
		Width:  64,
		Height: 64,
		Op:     stroke(3, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "isolated_moveto",
		Path:   svg("M5 5 M10 50 L32 10 L54 50 Z M60 60"),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}
