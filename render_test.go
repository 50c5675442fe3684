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

package svgrender

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgrender/filter"
	"seehuhn.de/go/svgrender/pathdata"
	"seehuhn.de/go/svgrender/scene"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func box(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

func fillRect(r rect.Rect, c color.NRGBA) *scene.FillPath {
	return &scene.FillPath{
		Path:      pathdata.FromRect(r),
		Paint:     scene.Solid{Color: c},
		Opacity:   1,
		AntiAlias: true,
	}
}

func group(bbox rect.Rect, children ...scene.Node) *scene.Group {
	return &scene.Group{
		BBox:     bbox,
		HasBBox:  true,
		Opacity:  1,
		Children: children,
	}
}

func render(t *testing.T, w, h int, nodes ...scene.Node) *image.RGBA {
	t.Helper()
	tree := &scene.Tree{
		Size:     scene.Size{Width: float64(w), Height: float64(h)},
		Children: nodes,
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Render(tree, matrix.Identity, dst)
	return dst
}

// captureLog installs a logger which writes to the returned buffer.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return buf
}

func TestFill(t *testing.T) {
	dst := render(t, 20, 20, fillRect(box(5, 5, 15, 15), white))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(5, 14))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(15, 10))
}

func TestStroke(t *testing.T) {
	st := pathdata.DefaultStroke()
	st.Width = 4
	n := &scene.StrokePath{
		Path:      pathdata.New().MoveTo(2, 10).LineTo(18, 10),
		Paint:     scene.Solid{Color: red},
		Opacity:   1,
		Stroke:    st,
		AntiAlias: true,
	}
	dst := render(t, 20, 20, n)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(10, 9))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(10, 11))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(10, 5))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(19, 10))
}

func TestStrokeZeroWidth(t *testing.T) {
	st := pathdata.DefaultStroke()
	st.Width = 0
	n := &scene.StrokePath{
		Path:    pathdata.New().MoveTo(2, 10).LineTo(18, 10),
		Paint:   scene.Solid{Color: red},
		Opacity: 1,
		Stroke:  st,
	}
	dst := render(t, 20, 20, n)
	assert.Equal(t, make([]uint8, len(dst.Pix)), dst.Pix)
}

func TestPathOpacity(t *testing.T) {
	n := fillRect(box(0, 0, 10, 10), white)
	n.Opacity = 0.5
	dst := render(t, 10, 10, n)
	assert.InDelta(t, 128, int(dst.RGBAAt(5, 5).A), 1)
}

func TestAntiAliasOff(t *testing.T) {
	n := fillRect(box(0.3, 0.3, 10.6, 10.4), white)
	n.AntiAlias = false
	dst := render(t, 12, 12, n)
	for i := 3; i < len(dst.Pix); i += 4 {
		a := dst.Pix[i]
		if a != 0 && a != 255 {
			t.Fatalf("pixel %d has alpha %d", i/4, a)
		}
	}
	assert.Equal(t, uint8(255), dst.RGBAAt(5, 5).A)
	assert.Equal(t, uint8(0), dst.RGBAAt(11, 11).A)
}

func TestInvalidPathSkipped(t *testing.T) {
	buf := captureLog(t)
	p := pathdata.New().QuadTo(1, 1, 5, 5)
	require.Error(t, p.Err())
	n := &scene.FillPath{Path: p, Paint: scene.Solid{Color: white}, Opacity: 1}

	dst := render(t, 10, 10, n, fillRect(box(0, 0, 2, 2), white))
	assert.Equal(t, uint8(255), dst.RGBAAt(1, 1).A)
	assert.Contains(t, buf.String(), "skipping invalid path")
}

func TestViewBox(t *testing.T) {
	tree := &scene.Tree{
		Size:     scene.Size{Width: 20, Height: 20},
		ViewBox:  box(0, 0, 10, 10),
		Children: []scene.Node{fillRect(box(0, 0, 5, 5), white)},
	}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Render(tree, matrix.Identity, dst)
	assert.Equal(t, uint8(255), dst.RGBAAt(9, 9).A)
	assert.Equal(t, uint8(0), dst.RGBAAt(10, 10).A)
}

func TestRenderTransform(t *testing.T) {
	tree := &scene.Tree{
		Size:     scene.Size{Width: 20, Height: 20},
		Children: []scene.Node{fillRect(box(0, 0, 5, 5), white)},
	}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Render(tree, matrix.Matrix{1, 0, 0, 1, 10, 10}, dst)
	assert.Equal(t, uint8(0), dst.RGBAAt(2, 2).A)
	assert.Equal(t, uint8(255), dst.RGBAAt(12, 12).A)
}

func TestRenderSubImage(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 30, 30))
	dst := full.SubImage(image.Rect(10, 10, 30, 30)).(*image.RGBA)
	tree := &scene.Tree{
		Size: scene.Size{Width: 20, Height: 20},
		Children: []scene.Node{
			group(box(0, 0, 5, 5), fillRect(box(0, 0, 5, 5), white)),
		},
	}
	Render(tree, matrix.Identity, dst)
	assert.Equal(t, uint8(0), full.RGBAAt(2, 2).A)
	assert.Equal(t, uint8(255), full.RGBAAt(12, 12).A)
	assert.Equal(t, uint8(0), full.RGBAAt(16, 16).A)
}

func TestNilTree(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Render(nil, matrix.Identity, dst)
	Render(&scene.Tree{}, matrix.Identity, nil)
	assert.Equal(t, make([]uint8, len(dst.Pix)), dst.Pix)
}

func TestOffCanvasGroup(t *testing.T) {
	off := group(box(100, 100, 120, 120), fillRect(box(100, 100, 120, 120), red))
	dst := render(t, 20, 20, off, fillRect(box(0, 0, 10, 10), white))

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(5, 5))
	for y := range 20 {
		for x := range 20 {
			if x < 10 && y < 10 {
				continue
			}
			require.Equal(t, color.RGBA{}, dst.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestInvalidBBox(t *testing.T) {
	buf := captureLog(t)
	g := group(box(0, 0, 10, 10), fillRect(box(0, 0, 10, 10), red))
	g.ID = "broken"
	g.HasBBox = false

	dst := render(t, 20, 20, g, fillRect(box(10, 10, 20, 20), white))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 5))
	assert.Equal(t, uint8(255), dst.RGBAAt(15, 15).A)
	assert.Contains(t, buf.String(), "invalid group layer bbox")
	assert.Contains(t, buf.String(), "broken")
}

func TestGroupOpacity(t *testing.T) {
	t.Run("stacked", func(t *testing.T) {
		a := group(box(0, 0, 10, 10), fillRect(box(0, 0, 10, 10), white))
		a.Opacity = 0.5
		b := group(box(0, 0, 10, 10), fillRect(box(0, 0, 10, 10), white))
		b.Opacity = 0.5
		dst := render(t, 10, 10, a, b)
		assert.InDelta(t, 0.75*255, float64(dst.RGBAAt(5, 5).A), 2)
	})
	t.Run("nested", func(t *testing.T) {
		inner := group(box(0, 0, 10, 10), fillRect(box(0, 0, 10, 10), white))
		inner.Opacity = 0.5
		outer := group(box(0, 0, 10, 10), inner)
		outer.Opacity = 0.5
		dst := render(t, 10, 10, outer)
		assert.InDelta(t, 0.25*255, float64(dst.RGBAAt(5, 5).A), 2)
	})
	t.Run("transparent", func(t *testing.T) {
		g := group(box(0, 0, 10, 10), fillRect(box(0, 0, 10, 10), white))
		g.Opacity = 0
		dst := render(t, 10, 10, g)
		assert.Equal(t, make([]uint8, len(dst.Pix)), dst.Pix)
	})
}

func TestLayerAllocationLimit(t *testing.T) {
	buf := captureLog(t)
	tree := &scene.Tree{
		Size: scene.Size{Width: 20, Height: 20},
		Children: []scene.Node{
			group(box(0, 0, 20, 20), fillRect(box(0, 0, 20, 20), white)),
			fillRect(box(0, 0, 2, 2), red),
		},
	}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewRenderer()
	r.MaxLayerPixels = 100
	r.Render(tree, matrix.Identity, dst)

	assert.Equal(t, uint8(0), dst.RGBAAt(10, 10).A)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(1, 1))
	assert.Contains(t, buf.String(), ErrLayerAllocation.Error())
}

func TestNewLayer(t *testing.T) {
	l, err := newLayer(3, 4, 12)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 4), l.Bounds())

	_, err = newLayer(4, 4, 12)
	assert.ErrorIs(t, err, ErrLayerAllocation)
	_, err = newLayer(0, 4, 12)
	assert.ErrorIs(t, err, ErrLayerAllocation)
}

func TestToIntRect(t *testing.T) {
	assert.Equal(t, image.Rect(1, -3, 5, 2), toIntRect(box(1.5, -2.5, 4.2, 1.5)))
	huge := toIntRect(box(-1e300, -1e300, 1e300, 1e300))
	assert.Equal(t, -intLimit, huge.Min.X)
	assert.Equal(t, intLimit, huge.Max.Y)
}

func TestFilterBeforeClip(t *testing.T) {
	g := group(box(0, 0, 20, 20), fillRect(box(5, 5, 15, 15), white))
	g.Filters = []scene.Filter{filter.Flood{Color: red}}
	g.ClipPath = &scene.ClipPath{
		Children: []scene.Node{fillRect(box(0, 0, 10, 20), white)},
	}
	dst := render(t, 20, 20, g)

	// the flood covers the whole layer, the clip path then removes the
	// right half
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(8, 18))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(12, 10))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(18, 2))
}

func TestFilterPaint(t *testing.T) {
	g := group(box(0, 0, 10, 10), fillRect(box(2, 2, 4, 4), white))
	g.Filters = []scene.Filter{filter.PaintInput{Source: filter.StrokePaint}}
	g.FilterStroke = scene.Solid{Color: blue}
	dst := render(t, 10, 10, g)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBAAt(8, 8))
}

type failingFilter struct{}

func (failingFilter) Apply(*scene.FilterInputs, *image.RGBA) error {
	return filter.ErrInvalidParameter
}

func TestFilterError(t *testing.T) {
	buf := captureLog(t)
	g := group(box(0, 0, 10, 10), fillRect(box(0, 0, 5, 5), white))
	g.Filters = []scene.Filter{failingFilter{}, filter.Flood{Color: blue}}
	dst := render(t, 10, 10, g)

	assert.Contains(t, buf.String(), "filter failed")
	assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBAAt(8, 8))
}

func TestFilterRegion(t *testing.T) {
	// With filters the layer may extend beyond the canvas, so content
	// left of x=0 is shifted into view.  The layer ends at the right edge
	// of the bounding box.
	g := group(box(-10, 0, 15, 10), fillRect(box(-10, 0, 10, 10), white))
	g.Filters = []scene.Filter{filter.Offset{Dx: 5}}
	dst := render(t, 20, 10, g)
	assert.Equal(t, uint8(255), dst.RGBAAt(0, 5).A)
	assert.Equal(t, uint8(255), dst.RGBAAt(2, 5).A)
	assert.Equal(t, uint8(255), dst.RGBAAt(14, 5).A)
	assert.Equal(t, uint8(0), dst.RGBAAt(16, 5).A)
}

func TestNestedGroups(t *testing.T) {
	inner := group(box(8, 8, 12, 12), fillRect(box(8, 8, 12, 12), red))
	outer := group(box(4, 4, 16, 16), fillRect(box(4, 4, 8, 8), white), inner)
	dst := render(t, 20, 20, outer)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(14, 14))
}
