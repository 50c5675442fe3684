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

package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

func TestViewBoxTransform(t *testing.T) {
	vb := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}
	size := Size{Width: 200, Height: 200}

	cases := []struct {
		name   string
		aspect AspectRatio
		want   matrix.Matrix
	}{
		{"none", AspectRatio{Align: AlignNone}, matrix.Matrix{2, 0, 0, 4, 0, 0}},
		{"meet_mid", AspectRatio{Align: XMidYMid}, matrix.Matrix{2, 0, 0, 2, 0, 50}},
		{"meet_min", AspectRatio{Align: XMinYMin}, matrix.Matrix{2, 0, 0, 2, 0, 0}},
		{"meet_max", AspectRatio{Align: XMaxYMax}, matrix.Matrix{2, 0, 0, 2, 0, 100}},
		{"slice_mid", AspectRatio{Align: XMidYMid, Slice: true}, matrix.Matrix{4, 0, 0, 4, -100, 0}},
		{"slice_min", AspectRatio{Align: XMinYMin, Slice: true}, matrix.Matrix{4, 0, 0, 4, 0, 0}},
		{"slice_max", AspectRatio{Align: XMaxYMid, Slice: true}, matrix.Matrix{4, 0, 0, 4, -200, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ViewBoxTransform(vb, c.aspect, size)
			assert.InDeltaSlice(t, c.want[:], got[:], 1e-12)
		})
	}
}

func TestViewBoxTransformOffset(t *testing.T) {
	vb := rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 40}
	m := ViewBoxTransform(vb, AspectRatio{}, Size{Width: 40, Height: 40})
	assert.Equal(t, matrix.Matrix{2, 0, 0, 2, -20, -40}, m)
}

func TestViewBoxTransformEmpty(t *testing.T) {
	m := ViewBoxTransform(rect.Rect{}, AspectRatio{}, Size{Width: 40, Height: 40})
	assert.Equal(t, matrix.Identity, m)

	tree := &Tree{Size: Size{Width: 10, Height: 10}}
	assert.Equal(t, matrix.Identity, tree.Transform())
}

func TestBlendModeNames(t *testing.T) {
	for m := Normal; m <= Luminosity; m++ {
		name := m.String()
		require.False(t, strings.HasPrefix(name, "BlendMode"), "mode %d", m)
		back, ok := ParseBlendMode(name)
		require.True(t, ok, name)
		assert.Equal(t, m, back)
	}
	_, ok := ParseBlendMode("plus-lighter")
	assert.False(t, ok)

	assert.True(t, Exclusion.IsSeparable())
	assert.False(t, Hue.IsSeparable())
	assert.False(t, Luminosity.IsSeparable())
}

func TestIsValidBBox(t *testing.T) {
	cases := []struct {
		name string
		g    Group
		want bool
	}{
		{"missing", Group{BBox: rect.Rect{URx: 1, URy: 1}}, false},
		{"normal", Group{BBox: rect.Rect{URx: 1, URy: 1}, HasBBox: true}, true},
		{"flat", Group{BBox: rect.Rect{URx: 1}, HasBBox: true}, true},
		{"inverted", Group{BBox: rect.Rect{LLx: 2, URx: 1, URy: 1}, HasBBox: true}, false},
		{"nan", Group{BBox: rect.Rect{URx: math.NaN(), URy: 1}, HasBBox: true}, false},
		{"inf", Group{BBox: rect.Rect{LLx: math.Inf(-1), URx: 1, URy: 1}, HasBBox: true}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.g.IsValidBBox(), c.name)
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(2, 1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestDecodeImage(t *testing.T) {
	var pngData, bmpData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, testImage()))
	require.NoError(t, bmp.Encode(&bmpData, testImage()))

	for _, c := range []struct {
		format string
		data   []byte
	}{
		{"png", pngData.Bytes()},
		{"bmp", bmpData.Bytes()},
	} {
		img, format, err := DecodeImage(bytes.NewReader(c.data))
		require.NoError(t, err)
		assert.Equal(t, c.format, format)
		assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

		r, _, _, a := img.At(0, 0).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), a)
	}
}

func TestDecodeImageError(t *testing.T) {
	_, _, err := DecodeImage(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestNewImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	node, err := NewImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, rect.Rect{URx: 3, URy: 2}, node.Rect)
	assert.Equal(t, matrix.Identity, node.Transform)
	assert.Equal(t, Bilinear, node.Quality)
}
