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

// Package scene describes the input of the renderer: a tree of groups,
// filled and stroked paths and images.
//
// The scene graph is built by a parser or by hand and is not modified
// during rendering.  All leaf transforms map the leaf's own coordinates
// to the root user space of the tree.  Groups have no transform of their
// own.
package scene

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgrender/pathdata"
)

// Node is one of *Group, *FillPath, *StrokePath or *Image.
type Node interface {
	isNode()
}

// Group is a container which is rendered into an offscreen layer and
// then composited into its parent.
type Group struct {
	ID       string
	Children []Node

	// BBox is the object bounding box of the group, including filter
	// regions, in root user space.  HasBBox is false if the group has
	// no extent.
	BBox    rect.Rect
	HasBBox bool

	Opacity   float64 // in [0, 1]
	BlendMode BlendMode

	// Filters are applied in order, before ClipPath and Mask.
	Filters []Filter

	// FilterFill and FilterStroke, if non-nil, are made available to the
	// filters as flat fills of the whole layer.
	FilterFill   Paint
	FilterStroke Paint

	ClipPath *ClipPath
	Mask     *Mask
}

// FillRule selects the rule which decides whether a point is inside a
// path.
type FillRule uint8

// These are the fill rules of SVG.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// FillPath fills the interior of a path.
type FillPath struct {
	Path      *pathdata.Path
	Paint     Paint
	Opacity   float64
	Rule      FillRule
	AntiAlias bool
	Transform matrix.Matrix
}

// StrokePath draws the outline of a path.
type StrokePath struct {
	Path      *pathdata.Path
	Paint     Paint
	Opacity   float64
	Stroke    pathdata.Stroke
	AntiAlias bool
	Transform matrix.Matrix
}

// ImageQuality selects the interpolation used when drawing images.
type ImageQuality uint8

// These are the supported interpolation kernels.
const (
	Bilinear ImageQuality = iota
	Nearest
	CatmullRom
)

// Image draws a raster image into the rectangle Rect.
type Image struct {
	Data      image.Image
	Rect      rect.Rect
	Quality   ImageQuality
	Transform matrix.Matrix
}

func (*Group) isNode()      {}
func (*FillPath) isNode()   {}
func (*StrokePath) isNode() {}
func (*Image) isNode()      {}

// IsValidBBox reports whether the group has a usable bounding box.
func (g *Group) IsValidBBox() bool {
	if !g.HasBBox {
		return false
	}
	b := g.BBox
	for _, v := range []float64{b.LLx, b.LLy, b.URx, b.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.URx >= b.LLx && b.URy >= b.LLy
}
