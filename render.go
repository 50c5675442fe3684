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

// Package svgrender draws scene graphs into RGBA images.
//
// The renderer walks the tree depth first.  Every group is drawn into an
// offscreen layer just large enough to hold its bounding box.  Once the
// children of a group are drawn, filters, clip path and mask are applied
// to the layer, in this order, and the layer is composited into its
// parent using the opacity and blend mode of the group.
package svgrender

import (
	"errors"
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgrender/internal/affine"
	"seehuhn.de/go/svgrender/raster"
	"seehuhn.de/go/svgrender/scene"
)

// ErrLayerAllocation is reported when a group layer cannot be allocated.
var ErrLayerAllocation = errors.New("cannot allocate layer")

// Renderer holds the configuration and the reusable buffers for
// rendering scenes.
//
// A Renderer is not safe for concurrent use.  Distinct Renderers may be
// used concurrently.
type Renderer struct {
	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to draw it.
	Flatness float64

	// MaxLayerPixels is the largest number of pixels of a group layer.
	// Groups which need larger layers are not drawn.  Zero selects the
	// default of 1<<26 pixels.
	MaxLayerPixels int

	rast *raster.Rasterizer
}

// NewRenderer returns a Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{
		Flatness:       defaultFlatness,
		MaxLayerPixels: defaultMaxLayerPixels,
	}
}

const (
	defaultFlatness       = 0.25
	defaultMaxLayerPixels = 1 << 26
)

// Render draws tree into dst, using a new Renderer with default settings.
// The transformation ts is applied after the view box transform of the
// tree.
func Render(tree *scene.Tree, ts matrix.Matrix, dst *image.RGBA) {
	NewRenderer().Render(tree, ts, dst)
}

// renderContext holds the values which are fixed for one call to Render.
type renderContext struct {
	// rootTransform maps root user space to canvas pixels.
	rootTransform matrix.Matrix

	// canvas is the target area, with the origin at the top left pixel.
	canvas image.Rectangle

	// maxFilterRegion limits the layers of groups with filters.
	maxFilterRegion image.Rectangle
}

// Render draws tree into dst.  Pixels are blended onto the existing
// contents of dst.  The top left pixel of dst.Bounds() is the origin of
// the canvas.
func (r *Renderer) Render(tree *scene.Tree, ts matrix.Matrix, dst *image.RGBA) {
	if tree == nil || dst == nil {
		return
	}
	size := dst.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	root := tree.Transform().Mul(affine.OrIdentity(ts))
	ctx := &renderContext{
		rootTransform:   root,
		canvas:          image.Rectangle{Max: size},
		maxFilterRegion: image.Rect(-size.X, -size.Y, 2*size.X, 2*size.Y),
	}
	r.renderNodes(ctx, tree.Children, root, image.Point{}, dst)
}

// renderNodes draws nodes into layer.  The transform maps root user space
// to the pixels of layer, and offset is the position of the top left
// pixel of layer on the canvas.
func (r *Renderer) renderNodes(ctx *renderContext, nodes []scene.Node, transform matrix.Matrix, offset image.Point, layer *image.RGBA) {
	for _, n := range nodes {
		r.renderNode(ctx, n, transform, offset, layer)
	}
}

func (r *Renderer) renderNode(ctx *renderContext, n scene.Node, transform matrix.Matrix, offset image.Point, layer *image.RGBA) {
	switch n := n.(type) {
	case *scene.Group:
		r.renderGroup(ctx, n, transform, offset, layer)
	case *scene.FillPath:
		r.fillPath(n, transform, layer)
	case *scene.StrokePath:
		r.strokePath(n, transform, layer)
	case *scene.Image:
		drawImage(n, transform, layer)
	}
}

// rasterizer returns the shared rasterizer, set up to draw into layer.
func (r *Renderer) rasterizer(layer image.Image, ctm matrix.Matrix) *raster.Rasterizer {
	size := layer.Bounds().Size()
	clip := rect.Rect{URx: float64(size.X), URy: float64(size.Y)}
	if r.rast == nil {
		r.rast = raster.NewRasterizer(clip)
	}
	r.rast.Clip = clip
	r.rast.Flatness = r.Flatness
	if !(r.rast.Flatness > 0) {
		r.rast.Flatness = defaultFlatness
	}
	r.rast.CTM = ctm
	return r.rast
}

func (r *Renderer) maxLayerPixels() int {
	if r.MaxLayerPixels <= 0 {
		return defaultMaxLayerPixels
	}
	return r.MaxLayerPixels
}

// usableMatrix reports whether m can be used as a rasterizer CTM.
func usableMatrix(m matrix.Matrix) bool {
	return affine.IsFinite(m) && affine.Det(m) != 0
}
