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
	"math"

	"seehuhn.de/go/svgrender/scene"
)

// separableBlend returns the blend function B(cb, cs) of a separable
// blend mode, or nil for the non-separable modes.  Colors are not
// premultiplied.
func separableBlend(mode scene.BlendMode) func(cb, cs float32) float32 {
	switch mode {
	case scene.Normal:
		return func(_, cs float32) float32 { return cs }
	case scene.Multiply:
		return blendMultiply
	case scene.Screen:
		return blendScreen
	case scene.Overlay:
		return func(cb, cs float32) float32 { return blendHardLight(cs, cb) }
	case scene.Darken:
		return func(cb, cs float32) float32 { return min(cb, cs) }
	case scene.Lighten:
		return func(cb, cs float32) float32 { return max(cb, cs) }
	case scene.ColorDodge:
		return blendColorDodge
	case scene.ColorBurn:
		return blendColorBurn
	case scene.HardLight:
		return blendHardLight
	case scene.SoftLight:
		return blendSoftLight
	case scene.Difference:
		return func(cb, cs float32) float32 { return abs32(cb - cs) }
	case scene.Exclusion:
		return func(cb, cs float32) float32 { return cb + cs - 2*cb*cs }
	}
	return nil
}

func blendMultiply(cb, cs float32) float32 { return cb * cs }

func blendScreen(cb, cs float32) float32 { return cb + cs - cb*cs }

func blendHardLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return blendMultiply(cb, 2*cs)
	}
	return blendScreen(cb, 2*cs-1)
}

func blendColorDodge(cb, cs float32) float32 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	default:
		return min(1, cb/(1-cs))
	}
}

func blendColorBurn(cb, cs float32) float32 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	default:
		return 1 - min(1, (1-cb)/cs)
	}
}

func blendSoftLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = float32(math.Sqrt(float64(cb)))
	}
	return cb + (2*cs-1)*(d-cb)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// nonSeparableBlend implements the hue, saturation, color and luminosity
// blend modes.
func nonSeparableBlend(mode scene.BlendMode, cb, cs [3]float32) [3]float32 {
	switch mode {
	case scene.Hue:
		return setLum(setSat(cs, sat(cb)), lum(cb))
	case scene.Saturation:
		return setLum(setSat(cb, sat(cs)), lum(cb))
	case scene.Color:
		return setLum(cs, lum(cb))
	case scene.Luminosity:
		return setLum(cb, lum(cs))
	}
	return cs
}

func lum(c [3]float32) float32 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func clipColor(c [3]float32) [3]float32 {
	l := lum(c)
	n := min(c[0], c[1], c[2])
	x := max(c[0], c[1], c[2])
	if n < 0 && l > n {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
	}
	if x > 1 && x > l {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setLum(c [3]float32, l float32) [3]float32 {
	d := l - lum(c)
	for i := range c {
		c[i] += d
	}
	return clipColor(c)
}

func sat(c [3]float32) float32 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

func setSat(c [3]float32, s float32) [3]float32 {
	// indices of the smallest, middle and largest component
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}

	var res [3]float32
	if c[hi] > c[lo] {
		res[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		res[hi] = s
	}
	return res
}
