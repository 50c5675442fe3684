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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// ClipPath restricts a group to the union of the shapes in Children.
// Paint and opacity of the children are ignored.
type ClipPath struct {
	Children  []Node
	Transform matrix.Matrix

	// ClipPath, if set, is intersected with this clip path.
	ClipPath *ClipPath
}

// MaskKind selects how mask content is turned into coverage.
type MaskKind uint8

// These are the mask types of CSS Masking.
const (
	Luminance MaskKind = iota
	Alpha
)

// Mask modulates the opacity of a group by the rendered content of
// Children.  Outside of Rect, in root user space, the mask is zero.
type Mask struct {
	Rect     rect.Rect
	Kind     MaskKind
	Children []Node

	// Mask, if set, is applied to the mask content.
	Mask *Mask
}
