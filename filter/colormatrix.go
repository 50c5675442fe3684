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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"

	"seehuhn.de/go/svgrender/scene"
)

// ColorMatrixKind selects the form of the feColorMatrix values.
type ColorMatrixKind uint8

// These are the types of feColorMatrix.
const (
	// Matrix uses 20 values, a 4×5 matrix in row-major order.
	Matrix ColorMatrixKind = iota

	// Saturate uses one value in [0, 1].
	Saturate

	// HueRotate uses one value, an angle in degrees.
	HueRotate

	// LuminanceToAlpha uses no values.
	LuminanceToAlpha
)

// ColorMatrix transforms the non-premultiplied color of every pixel by
// a matrix (feColorMatrix).
type ColorMatrix struct {
	Kind   ColorMatrixKind
	Values []float64
}

// Apply implements [scene.Filter].
func (f ColorMatrix) Apply(_ *scene.FilterInputs, layer *image.RGBA) error {
	m, err := f.matrix()
	if err != nil {
		return err
	}
	res := adjust.Apply(layer, func(c color.RGBA) color.RGBA {
		return applyMatrix(&m, c)
	})
	replace(layer, res, 0, 0)
	return nil
}

// matrix returns the 4×5 matrix described by f.
func (f ColorMatrix) matrix() ([20]float64, error) {
	var m [20]float64
	switch f.Kind {
	case Matrix:
		if len(f.Values) != 20 {
			return m, fmt.Errorf("color matrix: %d values: %w", len(f.Values), ErrInvalidParameter)
		}
		copy(m[:], f.Values)
	case Saturate:
		s := 1.0
		if len(f.Values) > 0 {
			s = f.Values[0]
		}
		if !(s >= 0 && s <= 1) {
			return m, fmt.Errorf("color matrix: saturation %g: %w", s, ErrInvalidParameter)
		}
		m = [20]float64{
			0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
			0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
			0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
			0, 0, 0, 1, 0,
		}
	case HueRotate:
		var deg float64
		if len(f.Values) > 0 {
			deg = f.Values[0]
		}
		sin, cos := math.Sincos(deg * math.Pi / 180)
		m = [20]float64{
			0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928, 0, 0,
			0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283, 0, 0,
			0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072, 0, 0,
			0, 0, 0, 1, 0,
		}
	case LuminanceToAlpha:
		m = [20]float64{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0.2125, 0.7154, 0.0721, 0, 0,
		}
	default:
		return m, fmt.Errorf("color matrix: kind %d: %w", f.Kind, ErrInvalidParameter)
	}
	return m, nil
}

// applyMatrix transforms one premultiplied pixel.
func applyMatrix(m *[20]float64, c color.RGBA) color.RGBA {
	var in [4]float64
	if c.A > 0 {
		a := float64(c.A)
		in = [4]float64{float64(c.R) / a, float64(c.G) / a, float64(c.B) / a, a / 255}
	}

	var out [4]float64
	for row := range 4 {
		v := m[row*5+4]
		for col := range 4 {
			v += m[row*5+col] * in[col]
		}
		out[row] = min(max(v, 0), 1)
	}

	a := out[3]
	return color.RGBA{
		R: uint8(math.Round(out[0] * a * 255)),
		G: uint8(math.Round(out[1] * a * 255)),
		B: uint8(math.Round(out[2] * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}
