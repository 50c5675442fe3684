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

var dashCases = []TestCase{
	{
		Name:   "dash_simple",
		Path:   svg("M4 32 H60"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(4, graphics.LineCapButt, graphics.LineJoinMiter), 0, 8, 4),
	},
	{
		Name:   "dash_phase",
		Path:   svg("M4 32 H60"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(4, graphics.LineCapButt, graphics.LineJoinMiter), 5, 8, 4),
	},
	{
		Name:   "dash_odd_pattern",
		Path:   svg("M4 32 H60"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(4, graphics.LineCapButt, graphics.LineJoinMiter), 0, 6, 3, 2),
	},
	{
		Name:   "dash_round_caps",
		Path:   svg("M8 32 H56"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(6, graphics.LineCapRound, graphics.LineJoinMiter), 0, 6, 10),
	},
	{
		Name:   "dash_zero_length_dots",
		Path:   svg("M8 32 H56"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(6, graphics.LineCapRound, graphics.LineJoinMiter), 0, 0, 10),
	},
	{
		Name:   "dash_around_corner",
		Path:   svg("M10 50 L32 14 L54 50"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(4, graphics.LineCapButt, graphics.LineJoinRound), 0, 30, 5),
	},
	{
		Name:   "dash_closed_square",
		Path:   svg("M14 14 H50 V50 H14 Z"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(4, graphics.LineCapButt, graphics.LineJoinMiter), 3, 10, 6),
	},
	{
		Name:   "dash_circle",
		Path:   svg("M12 32 A20 20 0 1 1 52 32 A20 20 0 1 1 12 32 Z"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(3, graphics.LineCapButt, graphics.LineJoinMiter), 0, 7, 3),
	},
	{
		// negative entries disable dashing
		Name:   "dash_invalid_pattern",
		Path:   svg("M4 32 H60"),
		Width:  64,
		Height: 64,
		Op:     dashed(stroke(4, graphics.LineCapButt, graphics.LineJoinMiter), 0, 5, -1),
	},
}

func dashed(s Stroke, phase float64, pattern ...float64) Stroke {
	s.Dash = pattern
	s.DashPhase = phase
	return s
}
