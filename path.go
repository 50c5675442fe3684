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

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/pathdata"
	"seehuhn.de/go/svgrender/raster"
	"seehuhn.de/go/svgrender/scene"
)

func (r *Renderer) fillPath(n *scene.FillPath, transform matrix.Matrix, layer *image.RGBA) {
	if !drawable(n.Path) || n.Paint == nil {
		return
	}
	ctm := affine.OrIdentity(n.Transform).Mul(transform)
	if !usableMatrix(ctm) {
		return
	}
	bbox, hasBBox := n.Path.BBox()
	sh, ok := newShader(n.Paint, n.Opacity, ctm, bbox, hasBBox)
	if !ok {
		return
	}

	rule := raster.NonZero
	if n.Rule == scene.EvenOdd {
		rule = raster.EvenOdd
	}
	rast := r.rasterizer(layer, ctm)
	rast.Fill(n.Path, rule, blitter(layer, sh, n.AntiAlias))
}

func (r *Renderer) strokePath(n *scene.StrokePath, transform matrix.Matrix, layer *image.RGBA) {
	if !drawable(n.Path) || n.Paint == nil || !(n.Stroke.Width > 0) {
		return
	}
	ctm := affine.OrIdentity(n.Transform).Mul(transform)
	if !usableMatrix(ctm) {
		return
	}
	bbox, hasBBox := n.Path.BBox()
	sh, ok := newShader(n.Paint, n.Opacity, ctm, bbox, hasBBox)
	if !ok {
		return
	}

	rast := r.rasterizer(layer, ctm)
	rast.SetStroke(&n.Stroke)
	rast.Stroke(n.Path, blitter(layer, sh, n.AntiAlias))
}

// drawable reports whether p can be passed to the rasterizer.
func drawable(p *pathdata.Path) bool {
	if p == nil {
		return false
	}
	if err := p.Err(); err != nil {
		Logger().Debug("skipping invalid path", "error", err)
		return false
	}
	return p.Len() > 0
}

// blitter returns a callback which paints the coverage produced by the
// rasterizer into layer, using source-over compositing.
func blitter(layer *image.RGBA, sh *shader, antiAlias bool) raster.EmitFunc {
	b := layer.Bounds()
	w, h := b.Dx(), b.Dy()
	return func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h {
			return
		}
		for i, c := range coverage {
			x := xMin + i
			if x < 0 || x >= w || c <= 0 {
				continue
			}
			if !antiAlias {
				if c < 0.5 {
					continue
				}
				c = 1
			}
			c = min(c, 1)

			s := sh.at(x, y)
			if s.A == 0 {
				continue
			}
			off := layer.PixOffset(b.Min.X+x, b.Min.Y+y)
			d := layer.Pix[off : off+4 : off+4]
			sa := float32(s.A) * c
			inv := 1 - sa/255
			d[0] = uint8(min(255, float32(s.R)*c+float32(d[0])*inv+0.5))
			d[1] = uint8(min(255, float32(s.G)*c+float32(d[1])*inv+0.5))
			d[2] = uint8(min(255, float32(s.B)*c+float32(d[2])*inv+0.5))
			d[3] = uint8(min(255, sa+float32(d[3])*inv+0.5))
		}
	}
}
