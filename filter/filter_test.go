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

package filter

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgrender/scene"
)

func inputs(m matrix.Matrix) *scene.FilterInputs {
	return &scene.FilterInputs{
		Region:    image.Rect(0, 0, 21, 21),
		Transform: m,
	}
}

// dot returns a transparent layer with one opaque white pixel at (x, y).
func dot(w, h, x, y int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func alphaSum(img *image.RGBA) int {
	sum := 0
	for i := 3; i < len(img.Pix); i += 4 {
		sum += int(img.Pix[i])
	}
	return sum
}

func checkPremultiplied(t *testing.T, img *image.RGBA) {
	t.Helper()
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if img.Pix[i] > a || img.Pix[i+1] > a || img.Pix[i+2] > a {
			t.Fatalf("pixel %d is not premultiplied: %v", i/4, img.Pix[i:i+4])
		}
	}
}

func TestBlur(t *testing.T) {
	layer := dot(21, 21, 10, 10)
	err := Blur{StdDevX: 2, StdDevY: 2}.Apply(inputs(matrix.Identity), layer)
	require.NoError(t, err)

	center := layer.RGBAAt(10, 10).A
	assert.Less(t, center, uint8(255))
	assert.Greater(t, center, uint8(0))

	// symmetric spread
	assert.Equal(t, layer.RGBAAt(7, 10), layer.RGBAAt(13, 10))
	assert.Equal(t, layer.RGBAAt(10, 7), layer.RGBAAt(10, 13))
	assert.Equal(t, layer.RGBAAt(8, 9), layer.RGBAAt(12, 11))

	// monotone decay away from the center
	assert.Greater(t, layer.RGBAAt(10, 10).A, layer.RGBAAt(11, 10).A)
	assert.Greater(t, layer.RGBAAt(11, 10).A, layer.RGBAAt(13, 10).A)

	// total alpha is preserved up to rounding
	assert.InDelta(t, 255, alphaSum(layer), 80)
	checkPremultiplied(t, layer)
}

func TestBlurScale(t *testing.T) {
	// a std deviation of 1 user unit is 3 pixels under this transform
	a := dot(41, 41, 20, 20)
	b := dot(41, 41, 20, 20)
	require.NoError(t, Blur{StdDevX: 1, StdDevY: 1}.Apply(inputs(matrix.Scale(3, 3)), a))
	require.NoError(t, Blur{StdDevX: 3, StdDevY: 3}.Apply(inputs(matrix.Identity), b))
	assert.Equal(t, a.Pix, b.Pix)
}

func TestBlurOneDirection(t *testing.T) {
	layer := dot(21, 21, 10, 10)
	require.NoError(t, Blur{StdDevX: 2}.Apply(inputs(matrix.Identity), layer))
	assert.Greater(t, layer.RGBAAt(12, 10).A, uint8(0))
	assert.Equal(t, uint8(0), layer.RGBAAt(10, 11).A)
	assert.Equal(t, uint8(0), layer.RGBAAt(10, 9).A)
}

func TestBlurNoop(t *testing.T) {
	layer := dot(5, 5, 2, 2)
	orig := append([]uint8(nil), layer.Pix...)
	require.NoError(t, Blur{}.Apply(inputs(matrix.Identity), layer))
	assert.Equal(t, orig, layer.Pix)
}

func TestBlurInvalid(t *testing.T) {
	layer := dot(5, 5, 2, 2)
	orig := append([]uint8(nil), layer.Pix...)
	err := Blur{StdDevX: -1}.Apply(inputs(matrix.Identity), layer)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, orig, layer.Pix)
}

func TestOffset(t *testing.T) {
	layer := dot(10, 10, 2, 3)
	require.NoError(t, Offset{Dx: 2, Dy: 1}.Apply(inputs(matrix.Scale(2, 2)), layer))
	assert.Equal(t, uint8(255), layer.RGBAAt(6, 5).A)
	assert.Equal(t, uint8(0), layer.RGBAAt(2, 3).A)
	assert.Equal(t, 255, alphaSum(layer))

	// content moved outside of the layer is lost
	require.NoError(t, Offset{Dx: 20}.Apply(inputs(matrix.Identity), layer))
	assert.Equal(t, 0, alphaSum(layer))
}

func TestFlood(t *testing.T) {
	layer := dot(4, 4, 1, 1)
	require.NoError(t, Flood{Color: color.NRGBA{R: 255, A: 128}}.Apply(inputs(matrix.Identity), layer))
	for y := range 4 {
		for x := range 4 {
			c := layer.RGBAAt(x, y)
			assert.Equal(t, uint8(128), c.A)
			assert.Equal(t, uint8(128), c.R)
			assert.Equal(t, uint8(0), c.G)
		}
	}
}

func TestPaintInput(t *testing.T) {
	fill := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range fill.Pix {
		fill.Pix[i] = 200
	}
	in := inputs(matrix.Identity)
	in.Fill = fill

	layer := dot(4, 4, 0, 0)
	require.NoError(t, PaintInput{Source: FillPaint}.Apply(in, layer))
	assert.Equal(t, fill.Pix, layer.Pix)

	require.NoError(t, PaintInput{Source: StrokePaint}.Apply(in, layer))
	assert.Equal(t, 0, alphaSum(layer))
}

func TestMorphology(t *testing.T) {
	layer := dot(9, 9, 4, 4)
	require.NoError(t, Morphology{Operator: Dilate, RadiusX: 2, RadiusY: 1}.Apply(inputs(matrix.Identity), layer))
	for y := range 9 {
		for x := range 9 {
			want := uint8(0)
			if x >= 2 && x <= 6 && y >= 3 && y <= 5 {
				want = 255
			}
			assert.Equal(t, want, layer.RGBAAt(x, y).A, "pixel (%d,%d)", x, y)
		}
	}

	require.NoError(t, Morphology{Operator: Erode, RadiusX: 2, RadiusY: 1}.Apply(inputs(matrix.Identity), layer))
	assert.Equal(t, 255, alphaSum(layer))
	assert.Equal(t, uint8(255), layer.RGBAAt(4, 4).A)
}

func TestMorphologyEdge(t *testing.T) {
	// pixels outside the layer count as transparent
	layer := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for i := range layer.Pix {
		layer.Pix[i] = 255
	}
	require.NoError(t, Morphology{Operator: Erode, RadiusX: 1, RadiusY: 1}.Apply(inputs(matrix.Identity), layer))
	assert.Equal(t, uint8(0), layer.RGBAAt(0, 2).A)
	assert.Equal(t, uint8(0), layer.RGBAAt(2, 4).A)
	assert.Equal(t, uint8(255), layer.RGBAAt(2, 2).A)
	assert.Equal(t, 9*255, alphaSum(layer))
}

func TestColorMatrix(t *testing.T) {
	red := color.RGBA{R: 128, A: 128} // premultiplied half-transparent red

	cases := []struct {
		name string
		f    ColorMatrix
		want color.RGBA
	}{
		{"identity", ColorMatrix{Kind: Matrix, Values: []float64{
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, 1, 0,
		}}, red},
		{"swap_red_green", ColorMatrix{Kind: Matrix, Values: []float64{
			0, 1, 0, 0, 0,
			1, 0, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, 1, 0,
		}}, color.RGBA{G: 128, A: 128}},
		{"saturate_one", ColorMatrix{Kind: Saturate, Values: []float64{1}}, red},
		{"hue_rotate_zero", ColorMatrix{Kind: HueRotate, Values: []float64{0}}, red},
		{"luminance_to_alpha", ColorMatrix{Kind: LuminanceToAlpha}, color.RGBA{A: 54}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			layer := image.NewRGBA(image.Rect(0, 0, 2, 1))
			layer.SetRGBA(0, 0, red)
			require.NoError(t, c.f.Apply(inputs(matrix.Identity), layer))
			got := layer.RGBAAt(0, 0)
			assert.InDelta(t, c.want.R, got.R, 1)
			assert.InDelta(t, c.want.G, got.G, 1)
			assert.InDelta(t, c.want.B, got.B, 1)
			assert.InDelta(t, c.want.A, got.A, 1)
			assert.Equal(t, color.RGBA{}, layer.RGBAAt(1, 0))
		})
	}
}

func TestColorMatrixLuminance(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 1, 1))
	layer.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, ColorMatrix{Kind: LuminanceToAlpha}.Apply(inputs(matrix.Identity), layer))
	assert.Equal(t, color.RGBA{A: 255}, layer.RGBAAt(0, 0))
}

func TestColorMatrixInvalid(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 1, 1))
	err := ColorMatrix{Kind: Matrix, Values: []float64{1, 2, 3}}.Apply(inputs(matrix.Identity), layer)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	err = ColorMatrix{Kind: Saturate, Values: []float64{2}}.Apply(inputs(matrix.Identity), layer)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
