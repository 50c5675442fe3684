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

package filter

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"

	"seehuhn.de/go/svgrender/scene"
)

// MorphologyOperator selects between thinning and fattening.
type MorphologyOperator uint8

// These are the operators of feMorphology.
const (
	Erode MorphologyOperator = iota
	Dilate
)

// Morphology takes the per-channel minimum (Erode) or maximum (Dilate)
// over a rectangle of 2·RadiusX by 2·RadiusY user space units around each
// pixel (feMorphology).  Pixels outside the layer count as transparent.
type Morphology struct {
	Operator         MorphologyOperator
	RadiusX, RadiusY float64
}

// Apply implements [scene.Filter].
func (f Morphology) Apply(in *scene.FilterInputs, layer *image.RGBA) error {
	if err := checkLength("morphology: x radius", f.RadiusX); err != nil {
		return err
	}
	if err := checkLength("morphology: y radius", f.RadiusY); err != nil {
		return err
	}
	px, py := pixelLengths(in, f.RadiusX, f.RadiusY)
	rx := int(math.Round(px))
	ry := int(math.Round(py))
	if rx <= 0 && ry <= 0 {
		return nil
	}

	src := clone.Pad(layer, rx, ry, clone.NoFill)
	pick := max8
	if f.Operator == Erode {
		pick = min8
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	tmp := make([]uint8, len(src.Pix))
	if rx > 0 {
		slidingWindow(tmp, src.Pix, w, h, src.Stride, 4, rx, pick)
		copy(src.Pix, tmp)
	}
	if ry > 0 {
		slidingWindow(tmp, src.Pix, h, w, 4, src.Stride, ry, pick)
		copy(src.Pix, tmp)
	}
	replace(layer, src, rx, ry)
	return nil
}

// slidingWindow combines the channel values of each pixel with those of
// its r neighbours on both sides along a line.  The image consists of m
// lines of n pixels; pixel i of line j starts at j*lineStep + i*pixStep.
func slidingWindow(dst, src []uint8, n, m, lineStep, pixStep, r int, pick func(a, b uint8) uint8) {
	for j := range m {
		base := j * lineStep
		for i := range n {
			lo := max(i-r, 0)
			hi := min(i+r, n-1)
			for c := range 4 {
				v := src[base+lo*pixStep+c]
				for k := lo + 1; k <= hi; k++ {
					v = pick(v, src[base+k*pixStep+c])
				}
				dst[base+i*pixStep+c] = v
			}
		}
	}
}

func max8(a, b uint8) uint8 { return max(a, b) }
func min8(a, b uint8) uint8 { return min(a, b) }
