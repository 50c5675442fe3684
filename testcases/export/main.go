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

// Command export writes all test cases to testdata/testcases.json, so that
// other renderers can be compared against this one.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgrender/pathdata"
	"seehuhn.de/go/svgrender/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	CTM        []float64     `json:"ctm,omitempty"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []float64     `json:"dash,omitempty"`
	DashPhase  float64       `json:"dash_phase,omitempty"`
}

// jsonSegment uses the letters of SVG path data.  For "A", Args holds
// rx, ry, x-axis-rotation, large-arc-flag and sweep-flag, and Pts the
// end point.
type jsonSegment struct {
	Cmd  string      `json:"cmd"`
	Pts  [][]float64 `json:"pts"`
	Args []float64   `json:"args,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		jtc.CTM = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	}
	return jtc
}

func pathToJSON(p *pathdata.Path) []jsonSegment {
	var segs []jsonSegment
	for _, s := range p.Segments() {
		var seg jsonSegment
		switch s.Kind {
		case pathdata.MoveTo:
			seg.Cmd = "M"
			seg.Pts = [][]float64{{s.End.X, s.End.Y}}
		case pathdata.LineTo:
			seg.Cmd = "L"
			seg.Pts = [][]float64{{s.End.X, s.End.Y}}
		case pathdata.CurveTo:
			seg.Cmd = "C"
			seg.Pts = [][]float64{{s.C1.X, s.C1.Y}, {s.C2.X, s.C2.Y}, {s.End.X, s.End.Y}}
		case pathdata.ArcTo:
			seg.Cmd = "A"
			seg.Pts = [][]float64{{s.End.X, s.End.Y}}
			seg.Args = []float64{s.Radii.X, s.Radii.Y, s.XRotation, flag(s.LargeArc), flag(s.Sweep)}
		case pathdata.ClosePath:
			seg.Cmd = "Z"
			seg.Pts = [][]float64{}
		}
		segs = append(segs, seg)
	}
	return segs
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
