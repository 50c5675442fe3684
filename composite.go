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
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/svgrender/scene"
)

// composite draws src onto dst, with the top left pixel of src at
// position at relative to the top left pixel of dst.  All pixels of src
// are scaled by opacity before blending.
func composite(dst, src *image.RGBA, at image.Point, opacity float64, mode scene.BlendMode) {
	opacity = max(0, min(1, opacity))
	if math.IsNaN(opacity) || opacity == 0 {
		return
	}

	if mode == scene.Normal {
		origin := dst.Rect.Min.Add(at).Sub(src.Rect.Min)
		aff := f64.Aff3{1, 0, float64(origin.X), 0, 1, float64(origin.Y)}
		var opts *draw.Options
		if opacity < 1 {
			a := uint8(math.Round(opacity * 255))
			opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: a})}
		}
		draw.NearestNeighbor.Transform(dst, aff, src, src.Rect, draw.Over, opts)
		return
	}

	blend := separableBlend(mode)
	sb := src.Rect
	target := sb.Sub(sb.Min).Add(dst.Rect.Min.Add(at)).Intersect(dst.Rect)
	op := float32(opacity)
	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			so := src.PixOffset(x-dst.Rect.Min.X-at.X+sb.Min.X, y-dst.Rect.Min.Y-at.Y+sb.Min.Y)
			s := src.Pix[so : so+4 : so+4]
			if s[3] == 0 {
				continue
			}
			do := dst.PixOffset(x, y)
			d := dst.Pix[do : do+4 : do+4]

			var cs, cb [4]float32
			for i := range 4 {
				cs[i] = float32(s[i]) / 255 * op
				cb[i] = float32(d[i]) / 255
			}
			res := blendPixel(cs, cb, mode, blend)
			for i := range 4 {
				d[i] = uint8(max(0, min(1, res[i]))*255 + 0.5)
			}
		}
	}
}

// blendPixel combines the premultiplied source s with the premultiplied
// backdrop b.
func blendPixel(s, b [4]float32, mode scene.BlendMode, blend func(cb, cs float32) float32) [4]float32 {
	as, ab := s[3], b[3]
	if ab == 0 {
		return s
	}

	var Cs, Cb [3]float32
	for i := range 3 {
		Cs[i] = min(1, s[i]/as)
		Cb[i] = min(1, b[i]/ab)
	}

	var B [3]float32
	if blend != nil {
		for i := range 3 {
			B[i] = blend(Cb[i], Cs[i])
		}
	} else {
		B = nonSeparableBlend(mode, Cb, Cs)
	}

	var res [4]float32
	for i := range 3 {
		res[i] = s[i]*(1-ab) + b[i]*(1-as) + as*ab*B[i]
	}
	res[3] = as + ab - as*ab
	return res
}
