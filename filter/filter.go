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

// Package filter implements SVG filter primitives which operate on the
// premultiplied RGBA layers of the renderer.
//
// All primitives implement [scene.Filter].  Lengths are given in root
// user space and are converted to pixels using the transform passed in
// [scene.FilterInputs].
package filter

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/scene"
)

// ErrInvalidParameter is returned by filters with parameters outside of
// their valid range.  The layer is not modified in this case.
var ErrInvalidParameter = errors.New("invalid filter parameter")

var (
	_ scene.Filter = Blur{}
	_ scene.Filter = Offset{}
	_ scene.Filter = Flood{}
	_ scene.Filter = Morphology{}
	_ scene.Filter = ColorMatrix{}
	_ scene.Filter = PaintInput{}
)

// pixelLengths converts a pair of user space lengths to pixels.
func pixelLengths(in *scene.FilterInputs, x, y float64) (float64, float64) {
	sx, sy := affine.Scale(affine.OrIdentity(in.Transform))
	return x * sx, y * sy
}

func checkLength(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %g: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

// replace copies src into layer.  The top left pixel of src is at
// offset (dx, dy) from the top left pixel of layer.
func replace(layer *image.RGBA, src image.Image, dx, dy int) {
	b := layer.Bounds()
	draw.Draw(layer, b, src, src.Bounds().Min.Add(image.Pt(dx, dy)), draw.Src)
}

func clearLayer(layer *image.RGBA) {
	draw.Draw(layer, layer.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
