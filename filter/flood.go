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

	"golang.org/x/image/draw"

	"seehuhn.de/go/svgrender/scene"
)

// Flood replaces the layer by a single color (feFlood).
type Flood struct {
	Color color.NRGBA
}

// Apply implements [scene.Filter].
func (f Flood) Apply(_ *scene.FilterInputs, layer *image.RGBA) error {
	draw.Draw(layer, layer.Bounds(), image.NewUniform(f.Color), image.Point{}, draw.Src)
	return nil
}

// InputSource selects one of the paint inputs of a filter.
type InputSource uint8

// These are the paint inputs of SVG filters.
const (
	FillPaint InputSource = iota
	StrokePaint
)

// PaintInput replaces the layer by the rendered fill or stroke paint of
// the group.  If the group has no such paint, the layer becomes
// transparent.
type PaintInput struct {
	Source InputSource
}

// Apply implements [scene.Filter].
func (f PaintInput) Apply(in *scene.FilterInputs, layer *image.RGBA) error {
	src := in.Fill
	if f.Source == StrokePaint {
		src = in.Stroke
	}
	if src == nil {
		clearLayer(layer)
		return nil
	}
	replace(layer, src, 0, 0)
	return nil
}
