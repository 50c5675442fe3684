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
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgrender/pathdata"
	"seehuhn.de/go/svgrender/scene"
)

var blackToWhite = []scene.Stop{
	{Offset: 0, Color: color.NRGBA{A: 255}},
	{Offset: 1, Color: white},
}

func paintRect(r scene.Paint, w, h float64) *scene.FillPath {
	return &scene.FillPath{
		Path:      pathdata.FromRect(box(0, 0, w, h)),
		Paint:     r,
		Opacity:   1,
		AntiAlias: true,
	}
}

func TestLinearGradient(t *testing.T) {
	grad := &scene.LinearGradient{X2: 100, Stops: blackToWhite, Units: scene.UserSpaceOnUse}
	dst := render(t, 100, 4, paintRect(grad, 100, 4))

	assert.LessOrEqual(t, dst.RGBAAt(0, 2).R, uint8(2))
	assert.InDelta(t, 0.495*255, int(dst.RGBAAt(49, 2).R), 3)
	assert.GreaterOrEqual(t, dst.RGBAAt(99, 2).R, uint8(250))
	for x := range 100 {
		c := dst.RGBAAt(x, 1)
		assert.Equal(t, uint8(255), c.A)
		assert.Equal(t, c.R, c.G)
		if x > 0 {
			assert.GreaterOrEqual(t, c.R, dst.RGBAAt(x-1, 1).R)
		}
	}

	// the same gradient, given in object bounding box units
	obb := &scene.LinearGradient{X2: 1, Stops: blackToWhite}
	dst2 := render(t, 100, 4, paintRect(obb, 100, 4))
	assert.Equal(t, dst.Pix, dst2.Pix)
}

func TestLinearGradientTransform(t *testing.T) {
	// a vertical gradient, obtained by swapping the axes
	grad := &scene.LinearGradient{
		X2:        10,
		Stops:     blackToWhite,
		Units:     scene.UserSpaceOnUse,
		Transform: matrix.Matrix{0, 1, 1, 0, 0, 0},
	}
	dst := render(t, 10, 10, paintRect(grad, 10, 10))
	assert.Equal(t, dst.RGBAAt(0, 7), dst.RGBAAt(9, 7))
	assert.Less(t, dst.RGBAAt(5, 1).R, dst.RGBAAt(5, 8).R)
}

func TestGradientSpread(t *testing.T) {
	cases := []struct {
		spread scene.Spread
		want   float64
	}{
		{scene.Pad, 255},
		{scene.Repeat, 0.49 * 255},
		{scene.Reflect, 0.51 * 255},
	}
	for _, tc := range cases {
		grad := &scene.LinearGradient{X2: 50, Stops: blackToWhite, Units: scene.UserSpaceOnUse, Spread: tc.spread}
		dst := render(t, 100, 2, paintRect(grad, 100, 2))
		assert.InDelta(t, tc.want, float64(dst.RGBAAt(74, 1).R), 3, "spread %d", tc.spread)
	}
}

func TestRadialGradient(t *testing.T) {
	grad := &scene.RadialGradient{
		CX: 10.5, CY: 10.5, FX: 10.5, FY: 10.5, R: 10,
		Stops: []scene.Stop{
			{Offset: 0, Color: white},
			{Offset: 1, Color: color.NRGBA{A: 255}},
		},
		Units: scene.UserSpaceOnUse,
	}
	dst := render(t, 21, 21, paintRect(grad, 21, 21))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{A: 255}, dst.RGBAAt(0, 10))
	assert.Equal(t, dst.RGBAAt(5, 10), dst.RGBAAt(15, 10))
	assert.Equal(t, dst.RGBAAt(10, 5), dst.RGBAAt(10, 15))
	assert.InDelta(t, 127, int(dst.RGBAAt(15, 10).R), 4)
}

func TestGradientStops(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		grad := &scene.LinearGradient{X2: 1}
		dst := render(t, 4, 4, paintRect(grad, 4, 4))
		assert.Equal(t, make([]uint8, len(dst.Pix)), dst.Pix)
	})
	t.Run("single", func(t *testing.T) {
		grad := &scene.LinearGradient{X2: 1, Stops: []scene.Stop{{Color: red}}}
		dst := render(t, 4, 4, paintRect(grad, 4, 4))
		assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(2, 2))
	})
	t.Run("zero length", func(t *testing.T) {
		grad := &scene.LinearGradient{X1: 0.5, X2: 0.5, Stops: blackToWhite}
		dst := render(t, 4, 4, paintRect(grad, 4, 4))
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(2, 2))
	})
	t.Run("zero radius", func(t *testing.T) {
		grad := &scene.RadialGradient{CX: 0.5, CY: 0.5, Stops: blackToWhite}
		dst := render(t, 4, 4, paintRect(grad, 4, 4))
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(2, 2))
	})
	t.Run("hard stop", func(t *testing.T) {
		grad := &scene.LinearGradient{
			X2: 10,
			Stops: []scene.Stop{
				{Offset: 0, Color: red},
				{Offset: 0.5, Color: red},
				{Offset: 0.5, Color: blue},
				{Offset: 1, Color: blue},
			},
			Units: scene.UserSpaceOnUse,
		}
		dst := render(t, 10, 2, paintRect(grad, 10, 2))
		assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(2, 1))
		assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBAAt(7, 1))
	})
}

func TestGradientOpacity(t *testing.T) {
	grad := &scene.LinearGradient{X2: 1, Stops: blackToWhite}
	n := paintRect(grad, 10, 2)
	n.Opacity = 0.5
	dst := render(t, 10, 2, n)
	assert.InDelta(t, 128, int(dst.RGBAAt(5, 1).A), 1)
}

func TestBoundingBoxUnitsWithoutExtent(t *testing.T) {
	st := pathdata.DefaultStroke()
	st.Width = 4
	n := &scene.StrokePath{
		Path:      pathdata.New().MoveTo(0, 5).LineTo(10, 5),
		Paint:     &scene.LinearGradient{X2: 1, Stops: blackToWhite},
		Opacity:   1,
		Stroke:    st,
		AntiAlias: true,
	}
	dst := render(t, 10, 10, n)
	assert.Equal(t, make([]uint8, len(dst.Pix)), dst.Pix)
}

func TestSolidShader(t *testing.T) {
	sh := solidShader(color.NRGBA{R: 255, G: 128, A: 255}, 1)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, sh.at(3, 4))

	sh = solidShader(color.NRGBA{R: 255, A: 0}, 1)
	assert.Equal(t, uint8(0), sh.at(0, 0).A)
}

func TestImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, blue)
	src.SetNRGBA(0, 1, white)
	src.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 255})

	n := &scene.Image{Data: src, Rect: box(0, 0, 10, 10), Quality: scene.Nearest}
	dst := render(t, 10, 10, n)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBAAt(7, 2))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(2, 7))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, dst.RGBAAt(7, 7))
}

func TestImageTransform(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for _, q := range []scene.ImageQuality{scene.Nearest, scene.Bilinear, scene.CatmullRom} {
		n := &scene.Image{
			Data:      img,
			Rect:      box(0, 0, 6, 6),
			Quality:   q,
			Transform: matrix.Translate(2, 2),
		}
		dst := render(t, 10, 10, n)
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(5, 5), "quality %d", q)
		assert.Equal(t, uint8(0), dst.RGBAAt(0, 0).A, "quality %d", q)
		assert.Equal(t, uint8(0), dst.RGBAAt(9, 9).A, "quality %d", q)
	}
}

func TestImageEmpty(t *testing.T) {
	n := &scene.Image{Data: image.NewRGBA(image.Rect(0, 0, 2, 2)), Rect: box(0, 0, 0, 5)}
	dst := render(t, 4, 4, n, &scene.Image{Rect: box(0, 0, 4, 4)})
	assert.Equal(t, make([]uint8, len(dst.Pix)), dst.Pix)
}
