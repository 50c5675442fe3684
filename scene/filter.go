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
	"image"

	"seehuhn.de/go/geom/matrix"
)

// Filter is a filter primitive which modifies the pixels of a group
// layer in place.
type Filter interface {
	Apply(in *FilterInputs, layer *image.RGBA) error
}

// FilterInputs describes the context in which a filter runs.
type FilterInputs struct {
	// Region is the area covered by the layer, in canvas pixels.
	Region image.Rectangle

	// Transform maps root user space to the pixels of the layer, in
	// which Region.Min is at (0, 0).  Filters use it to convert lengths
	// such as blur radii to pixels.
	Transform matrix.Matrix

	// Fill and Stroke are the layer-sized renderings of the group's
	// FilterFill and FilterStroke paints, or nil.
	Fill   *image.RGBA
	Stroke *image.RGBA
}
