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

// Command genpdf regenerates the reference images used by the raster
// tests.  Every test case is drawn into a one-page PDF file, white on
// black, which Ghostscript then converts into an 8-bit grayscale PNG.
// Pixel values of the PNG can thus be read as coverage.
//
// Run from the module root directory:
//
//	go run ./testcases/genpdf [-out dir] [-only category] [-keep]
package main

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/svgrender/testcases"
)

var (
	outDir  = flag.String("out", "raster/testdata/reference", "output directory")
	only    = flag.String("only", "", "restrict output to this category")
	keepPDF = flag.Bool("keep", false, "keep the intermediate PDF files")
)

// job is a single test case together with its output file names.
type job struct {
	tc       testcases.TestCase
	pdf, png string
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}
}

func run() error {
	if _, err := exec.LookPath("gs"); err != nil {
		return fmt.Errorf("ghostscript not found: %w", err)
	}
	jobs := collect(*only)
	if len(jobs) == 0 {
		return fmt.Errorf("no test cases in category %q", *only)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	var errs []error
	for _, j := range jobs {
		if err := j.build(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// collect lists the test cases in a stable order.  An empty category
// selects all of them.
func collect(category string) []job {
	var res []job
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if category != "" && cat != category {
			continue
		}
		for _, tc := range testcases.All[cat] {
			base := filepath.Join(*outDir, cat+"_"+tc.Name)
			res = append(res, job{tc: tc, pdf: base + ".pdf", png: base + ".png"})
		}
	}
	return res
}

func (j job) build() error {
	if err := drawPage(j.tc, j.pdf); err != nil {
		return fmt.Errorf("%s: %w", j.pdf, err)
	}
	if err := ghostscript(j.pdf, j.png); err != nil {
		return fmt.Errorf("%s: %w", j.png, err)
	}
	if !*keepPDF {
		return os.Remove(j.pdf)
	}
	return nil
}

// drawPage writes tc as a PDF file.  Device space of the test cases has
// the origin at the top left, one unit per pixel.
func drawPage(tc testcases.TestCase, fname string) error {
	w, h := float64(tc.Width), float64(tc.Height)
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	if ctm := tc.CTM; !ctm.IsZero() && ctm != matrix.Identity {
		page.Transform(ctm)
	}
	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	stroke, isStroke := tc.Op.(testcases.Stroke)
	if isStroke {
		// line style must be set before the path is constructed
		page.SetLineWidth(stroke.Width)
		page.SetLineCap(stroke.Cap)
		page.SetLineJoin(stroke.Join)
		page.SetMiterLimit(stroke.MiterLimit)
		if dash := usableDash(stroke.Dash); dash != nil {
			page.SetLineDash(dash, stroke.DashPhase)
		}
	}

	emitPath(page, tc.Path.Iter())

	switch op := tc.Op.(type) {
	case testcases.Stroke:
		page.Stroke()
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	}
	return page.Close()
}

// emitPath appends the segments of p to the current PDF path.  PDF has
// no quadratic segments, and arcs are already cubic at this point.
func emitPath(page *document.Page, p path.Path) {
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// usableDash returns nil for patterns which the renderer draws solid:
// those with a negative entry or a zero sum.
func usableDash(pat []float64) []float64 {
	var sum float64
	for _, d := range pat {
		if d < 0 {
			return nil
		}
		sum += d
	}
	if !(sum > 0) {
		return nil
	}
	return pat
}

// ghostscript renders the first page of pdfFile at one pixel per unit,
// with 4-bit anti-aliasing.
func ghostscript(pdfFile, pngFile string) error {
	cmd := exec.Command("gs", "-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=pnggray", "-r72", "-dGraphicsAlphaBits=4",
		"-sOutputFile="+pngFile, pdfFile)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gs: %w\n%s", err, out)
	}
	return nil
}
