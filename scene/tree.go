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

// Tree is a complete scene.
type Tree struct {
	// Size is the intrinsic size of the image, in user units.
	Size Size

	// ViewBox is the region of user space which is mapped onto Size.
	// A ViewBox with zero width or height means that user space is not
	// scaled.
	ViewBox     rect.Rect
	AspectRatio AspectRatio

	Children []Node
}

// Size is the width and height of an image.
type Size struct {
	Width, Height float64
}

// Align is the alignment part of the SVG preserveAspectRatio attribute.
// The zero value is XMidYMid, the SVG default.
type Align uint8

// These are the alignment values of SVG.
const (
	XMidYMid Align = iota
	AlignNone
	XMinYMin
	XMidYMin
	XMaxYMin
	XMinYMid
	XMaxYMid
	XMinYMax
	XMidYMax
	XMaxYMax
)

// AspectRatio describes how the view box is fitted into the viewport.
type AspectRatio struct {
	Align Align

	// Slice, if true, scales the view box to cover the whole viewport.
	// Otherwise the view box is scaled to fit inside the viewport.
	Slice bool
}

// Transform returns the transformation from user space to the
// coordinate system of the image, with the origin at the top left
// corner and one unit per pixel at Size.
func (t *Tree) Transform() matrix.Matrix {
	return ViewBoxTransform(t.ViewBox, t.AspectRatio, t.Size)
}

// ViewBoxTransform returns the matrix which maps viewBox onto a viewport
// of the given size, at the origin.
func ViewBoxTransform(viewBox rect.Rect, aspect AspectRatio, size Size) matrix.Matrix {
	vw := viewBox.URx - viewBox.LLx
	vh := viewBox.URy - viewBox.LLy
	if !(vw > 0 && vh > 0) {
		return matrix.Identity
	}

	sx := size.Width / vw
	sy := size.Height / vh
	if aspect.Align != AlignNone {
		if aspect.Slice {
			sx = max(sx, sy)
		} else {
			sx = min(sx, sy)
		}
		sy = sx
	}

	tx := -viewBox.LLx * sx
	ty := -viewBox.LLy * sy
	dx := size.Width - vw*sx
	dy := size.Height - vh*sy
	switch aspect.Align {
	case XMidYMin, XMidYMid, XMidYMax:
		tx += dx / 2
	case XMaxYMin, XMaxYMid, XMaxYMax:
		tx += dx
	}
	switch aspect.Align {
	case XMinYMid, XMidYMid, XMaxYMid:
		ty += dy / 2
	case XMinYMax, XMidYMax, XMaxYMax:
		ty += dy
	}

	return matrix.Matrix{sx, 0, 0, sy, tx, ty}
}
