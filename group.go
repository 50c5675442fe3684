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
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/scene"
)

// layerMargin is the number of pixels added on each side of the layer of
// a group without filters, so that anti-aliased edges are not cut off.
const layerMargin = 2

// renderGroup draws g into an offscreen layer and composites the layer
// into parent.
func (r *Renderer) renderGroup(ctx *renderContext, g *scene.Group, transform matrix.Matrix, offset image.Point, parent *image.RGBA) {
	if !g.IsValidBBox() {
		Logger().Warn("invalid group layer bbox", "id", g.ID)
		return
	}

	bbox := affine.Rect(ctx.rootTransform, g.BBox)
	ibox := toIntRect(bbox)
	if len(g.Filters) == 0 {
		ibox.Min = ibox.Min.Sub(image.Pt(layerMargin, layerMargin))
		ibox.Max = ibox.Max.Add(image.Pt(layerMargin, layerMargin))
		ibox = ibox.Intersect(ctx.canvas)
	} else {
		ibox = ibox.Intersect(ctx.maxFilterRegion)
	}
	if ibox.Empty() {
		Logger().Debug("empty group layer", "id", g.ID)
		return
	}

	// position of the layer inside the parent layer
	local := ibox.Sub(offset)
	shifted := transform.Translate(-float64(local.Min.X), -float64(local.Min.Y))

	layer, err := newLayer(local.Dx(), local.Dy(), r.maxLayerPixels())
	if err != nil {
		Logger().Warn("cannot allocate group layer", "id", g.ID, "error", err)
		return
	}

	layerOffset := offset.Add(local.Min)
	r.renderNodes(ctx, g.Children, shifted, layerOffset, layer)

	for i, f := range g.Filters {
		in := &scene.FilterInputs{
			Region:    ibox,
			Transform: shifted,
			Fill:      r.filterPaint(g.FilterFill, g, shifted, layer.Bounds()),
			Stroke:    r.filterPaint(g.FilterStroke, g, shifted, layer.Bounds()),
		}
		if err := f.Apply(in, layer); err != nil {
			Logger().Warn("filter failed", "id", g.ID, "index", i, "error", err)
		}
	}

	if g.ClipPath != nil {
		r.applyClipPath(g.ClipPath, shifted, layer)
	}
	if g.Mask != nil {
		r.applyMask(ctx, g.Mask, shifted, layerOffset, layer)
	}

	composite(parent, layer, local.Min, g.Opacity, g.BlendMode)
}

// filterPaint returns a layer of the given size, filled with p.  The
// result is nil if p is nil.
func (r *Renderer) filterPaint(p scene.Paint, g *scene.Group, transform matrix.Matrix, bounds image.Rectangle) *image.RGBA {
	if p == nil {
		return nil
	}
	res := image.NewRGBA(bounds)
	sh, ok := newShader(p, 1, transform, g.BBox, g.HasBBox)
	if !ok {
		return res
	}
	for y := range bounds.Dy() {
		row := res.Pix[y*res.Stride : y*res.Stride+4*bounds.Dx()]
		for x := range bounds.Dx() {
			c := sh.at(x, y)
			row[4*x] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = c.A
		}
	}
	return res
}

// newLayer allocates a transparent layer of size w×h.
func newLayer(w, h, maxPixels int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || int64(w)*int64(h) > int64(maxPixels) {
		return nil, fmt.Errorf("%dx%d layer: %w", w, h, ErrLayerAllocation)
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

// intLimit bounds pixel coordinates, so that huge boxes do not overflow
// when converted to int.
const intLimit = 1 << 30

// toIntRect returns the smallest integer rectangle containing r.
func toIntRect(r rect.Rect) image.Rectangle {
	return image.Rect(
		clampInt(math.Floor(r.LLx)), clampInt(math.Floor(r.LLy)),
		clampInt(math.Ceil(r.URx)), clampInt(math.Ceil(r.URy)),
	)
}

func clampInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(max(-intLimit, min(intLimit, v)))
}
