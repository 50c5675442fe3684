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

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/scene"
)

// drawImage draws the raster image n into layer.  The image is stretched
// to fill n.Rect.
func drawImage(n *scene.Image, transform matrix.Matrix, layer *image.RGBA) {
	if n.Data == nil {
		return
	}
	sb := n.Data.Bounds()
	rw := n.Rect.URx - n.Rect.LLx
	rh := n.Rect.URy - n.Rect.LLy
	if sb.Empty() || !(rw > 0) || !(rh > 0) {
		return
	}

	// source pixels -> image rectangle -> root user space -> layer
	m := matrix.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)).
		Mul(matrix.Matrix{
			rw / float64(sb.Dx()), 0,
			0, rh / float64(sb.Dy()),
			n.Rect.LLx, n.Rect.LLy,
		}).
		Mul(affine.OrIdentity(n.Transform)).
		Mul(transform).
		Translate(float64(layer.Rect.Min.X), float64(layer.Rect.Min.Y))
	if !usableMatrix(m) {
		return
	}

	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	interpolator(n.Quality).Transform(layer, aff, n.Data, sb, draw.Over, nil)
}

func interpolator(q scene.ImageQuality) draw.Transformer {
	switch q {
	case scene.Nearest:
		return draw.NearestNeighbor
	case scene.CatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}
