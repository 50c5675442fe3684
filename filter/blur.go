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
	"github.com/anthonynsimon/bild/convolution"

	"seehuhn.de/go/svgrender/scene"
)

// Blur is a Gaussian blur (feGaussianBlur).  The standard deviations are
// in user space units.  Pixels outside the layer are treated as
// transparent.
type Blur struct {
	StdDevX, StdDevY float64
}

// Apply implements [scene.Filter].
func (f Blur) Apply(in *scene.FilterInputs, layer *image.RGBA) error {
	if err := checkLength("blur: x std deviation", f.StdDevX); err != nil {
		return err
	}
	if err := checkLength("blur: y std deviation", f.StdDevY); err != nil {
		return err
	}
	sx, sy := pixelLengths(in, f.StdDevX, f.StdDevY)
	if sx <= 0 && sy <= 0 {
		return nil
	}

	rx, ry := kernelRadius(sx), kernelRadius(sy)
	src := clone.Pad(layer, rx, ry, clone.NoFill)
	opt := &convolution.Options{}
	if rx > 0 {
		src = convolution.Convolve(src, gaussKernel(sx, rx), opt)
	}
	if ry > 0 {
		src = convolution.Convolve(src, gaussKernel(sy, ry).Transposed(), opt)
	}
	replace(layer, src, rx, ry)
	return nil
}

// kernelRadius returns the number of pixels on each side of the center
// which are needed for a Gaussian with standard deviation sigma.
func kernelRadius(sigma float64) int {
	if sigma < 0.1 {
		return 0
	}
	return int(math.Ceil(3 * sigma))
}

// gaussKernel returns a normalized horizontal Gaussian kernel of width
// 2·radius+1.
func gaussKernel(sigma float64, radius int) convolution.Matrix {
	n := 2*radius + 1
	k := convolution.NewKernel(n, 1)
	for i := range n {
		x := float64(i - radius)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	return k.Normalized()
}
