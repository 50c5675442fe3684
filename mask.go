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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgrender/pathdata"
	"seehuhn.de/go/svgrender/raster"
	"seehuhn.de/go/svgrender/scene"
)

// applyMask multiplies the pixels of layer by the coverage of the mask.
// The arguments transform and offset are the same as for the children of
// the group being masked.
func (r *Renderer) applyMask(ctx *renderContext, mask *scene.Mask, transform matrix.Matrix, offset image.Point, layer *image.RGBA) {
	size := layer.Bounds().Size()

	region := image.NewAlpha(image.Rectangle{Max: size})
	if mask.Rect.URx > mask.Rect.LLx && mask.Rect.URy > mask.Rect.LLy && usableMatrix(transform) {
		r.rasterizer(region, transform).Fill(pathdata.FromRect(mask.Rect), raster.NonZero, alphaBlitter(region, true))
	}

	content, err := newLayer(size.X, size.Y, r.maxLayerPixels())
	if err != nil {
		Logger().Warn("cannot allocate mask layer", "error", err)
		clear(layer.Pix)
		return
	}
	r.renderNodes(ctx, mask.Children, transform, offset, content)

	if mask.Mask != nil {
		r.applyMask(ctx, mask.Mask, transform, offset, layer)
	}

	cov := maskCoverage(content, mask.Kind)
	multiplyAlpha(cov, region)
	scaleLayer(layer, cov)
}

// maskCoverage converts the premultiplied pixels of content into mask
// values.
func maskCoverage(content *image.RGBA, kind scene.MaskKind) *image.Alpha {
	b := content.Bounds()
	res := image.NewAlpha(image.Rectangle{Max: b.Size()})
	w := b.Dx()
	for y := range b.Dy() {
		off := content.PixOffset(b.Min.X, b.Min.Y+y)
		row := content.Pix[off : off+4*w]
		out := res.Pix[y*res.Stride : y*res.Stride+w]
		for x := range out {
			p := row[4*x : 4*x+4 : 4*x+4]
			if kind == scene.Alpha {
				out[x] = p[3]
				continue
			}
			l := 0.2125*float32(p[0]) + 0.7154*float32(p[1]) + 0.0721*float32(p[2])
			out[x] = uint8(min(255, l+0.5))
		}
	}
	return res
}
