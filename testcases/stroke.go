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

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   svg("M10 32 H54"),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "line_round",
		Path:   svg("M10 32 H54"),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "line_square",
		Path:   svg("M10 32 H54"),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		Name:   "diagonal_hairline",
		Path:   svg("M5 5 L59 40"),
		Width:  64,
		Height: 64,
		Op:     stroke(0.5, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_miter",
		Path:   svg("M10 50 L32 14 L54 50"),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Path:   svg("M10 50 L32 14 L54 50"),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Path:   svg("M10 50 L32 14 L54 50"),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		// the miter exceeds the limit and becomes a bevel
		Name:   "sharp_corner_miter_limit",
		Path:   svg("M10 54 L32 10 L36 54"),
		Width:  64,
		Height: 64,
		Op:     stroke(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "closed_square",
		Path:   svg("M14 14 H50 V50 H14 Z"),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "doubling_back_round",
		Path:   svg("M10 32 H50 H20"),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "dot_round",
		Path:   svg("M32 32 Z"),
		Width:  64,
		Height: 64,
		Op:     stroke(10, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "dot_square",
		Path:   svg("M32 32 L32 32"),
		Width:  64,
		Height: 64,
		Op:     stroke(10, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		Name:   "short_segments_thick",
		Path:   svg("M10 40 L12 30 L14 40 L16 30 L18 40"),
		Width:  64,
		Height: 64,
		Op:     stroke(10, graphics.LineCapButt, graphics.LineJoinMiter),
	},
}
