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
	"math"

	"github.com/anthonynsimon/bild/clone"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/scene"
)

// Offset moves the layer content by (Dx, Dy) user space units
// (feOffset).  The displacement is rounded to whole pixels.
type Offset struct {
	Dx, Dy float64
}

// Apply implements [scene.Filter].
func (f Offset) Apply(in *scene.FilterInputs, layer *image.RGBA) error {
	d := affine.ApplyVec(affine.OrIdentity(in.Transform), vec.Vec2{X: f.Dx, Y: f.Dy})
	if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsInf(d.X, 0) || math.IsInf(d.Y, 0) {
		return fmt.Errorf("offset (%g, %g): %w", f.Dx, f.Dy, ErrInvalidParameter)
	}
	dx := int(math.Round(d.X))
	dy := int(math.Round(d.Y))
	if dx == 0 && dy == 0 {
		return nil
	}

	src := clone.AsRGBA(layer)
	clearLayer(layer)
	replace(layer, src, -dx, -dy)
	return nil
}
