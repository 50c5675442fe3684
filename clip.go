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
	"seehuhn.de/go/svgrender/raster"
	"seehuhn.de/go/svgrender/scene"
)

// applyClipPath makes all pixels of layer outside of cp transparent.
func (r *Renderer) applyClipPath(cp *scene.ClipPath, transform matrix.Matrix, layer *image.RGBA) {
	m := r.clipMask(cp, transform, layer.Bounds().Size())
	scaleLayer(layer, m)
}

// clipMask returns the coverage of the clip path, as an alpha mask of the
// given size.
func (r *Renderer) clipMask(cp *scene.ClipPath, transform matrix.Matrix, size image.Point) *image.Alpha {
	m := image.NewAlpha(image.Rectangle{Max: size})
	ts := affine.OrIdentity(cp.Transform).Mul(transform)
	r.clipNodes(cp.Children, ts, m)
	if cp.ClipPath != nil {
		multiplyAlpha(m, r.clipMask(cp.ClipPath, transform, size))
	}
	return m
}

// clipNodes adds the shapes of nodes to the clip mask m.  Paint and
// opacity are ignored.
func (r *Renderer) clipNodes(nodes []scene.Node, transform matrix.Matrix, m *image.Alpha) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *scene.Group:
			if n.ClipPath == nil {
				r.clipNodes(n.Children, transform, m)
				continue
			}
			sub := image.NewAlpha(m.Rect)
			r.clipNodes(n.Children, transform, sub)
			multiplyAlpha(sub, r.clipMask(n.ClipPath, transform, m.Rect.Size()))
			unionAlpha(m, sub)

		case *scene.FillPath:
			if !drawable(n.Path) {
				continue
			}
			ctm := affine.OrIdentity(n.Transform).Mul(transform)
			if !usableMatrix(ctm) {
				continue
			}
			rule := raster.NonZero
			if n.Rule == scene.EvenOdd {
				rule = raster.EvenOdd
			}
			r.rasterizer(m, ctm).Fill(n.Path, rule, alphaBlitter(m, n.AntiAlias))

		case *scene.StrokePath:
			if !drawable(n.Path) || !(n.Stroke.Width > 0) {
				continue
			}
			ctm := affine.OrIdentity(n.Transform).Mul(transform)
			if !usableMatrix(ctm) {
				continue
			}
			rast := r.rasterizer(m, ctm)
			rast.SetStroke(&n.Stroke)
			rast.Stroke(n.Path, alphaBlitter(m, n.AntiAlias))
		}
	}
}

// alphaBlitter returns a callback which adds coverage to m.
func alphaBlitter(m *image.Alpha, antiAlias bool) raster.EmitFunc {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	return func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h {
			return
		}
		row := m.Pix[y*m.Stride : y*m.Stride+w]
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
			old := float32(row[x])
			row[x] = uint8(min(255, old+c*(255-old)+0.5))
		}
	}
}

// multiplyAlpha sets m to the product of m and other.  Both masks must
// have the same size.
func multiplyAlpha(m, other *image.Alpha) {
	for i, a := range other.Pix {
		m.Pix[i] = mul8(m.Pix[i], a)
	}
}

// unionAlpha sets m to the union of m and other.  Both masks must have
// the same size.
func unionAlpha(m, other *image.Alpha) {
	for i, a := range other.Pix {
		m.Pix[i] += mul8(255-m.Pix[i], a)
	}
}

// scaleLayer multiplies every pixel of layer by the corresponding value
// of m.  The mask m must have the size of layer.
func scaleLayer(layer *image.RGBA, m *image.Alpha) {
	b := layer.Bounds()
	w := b.Dx()
	for y := range b.Dy() {
		off := layer.PixOffset(b.Min.X, b.Min.Y+y)
		row := layer.Pix[off : off+4*w]
		mrow := m.Pix[y*m.Stride : y*m.Stride+w]
		for x, a := range mrow {
			if a == 255 {
				continue
			}
			p := row[4*x : 4*x+4 : 4*x+4]
			p[0] = mul8(p[0], a)
			p[1] = mul8(p[1], a)
			p[2] = mul8(p[2], a)
			p[3] = mul8(p[3], a)
		}
	}
}

// mul8 returns a·b/255, rounded to the nearest integer.
func mul8(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}
