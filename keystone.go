// A projective (4-point, keystone-correcting) image transform package
// for Go.
//
// This package maps one quadrilateral onto another: given four source
// points and four corresponding destination points, no three collinear,
// it solves for the unique projective transform between the planes and
// resamples a whole raster through it. A typical application is
// removing the keystone distortion a camera or projector introduces.
//
// Two resampling modes are offered. The sampled mode copies the nearest
// source pixel and works at every supported depth, colormaps included.
// The interpolated mode blends up to four source pixels and gives much
// better results on 8 bpp gray and 32 bpp color images, at a modest
// speed cost.
package keystone

import (
	"github.com/osuushi/keystone/raster"
	"github.com/osuushi/keystone/warp"
)

type Point = warp.Point
type Quad = warp.Quad
type Coeffs = warp.Coeffs
type Fill = warp.Fill

const (
	BringInWhite = warp.BringInWhite
	BringInBlack = warp.BringInBlack
)

// BuildCoefficients solves for the 8 coefficients mapping src[i] to
// dst[i]. Fails with warp.ErrInvalidPointSet when three of a quad's
// points are collinear.
func BuildCoefficients(src, dst Quad) (*Coeffs, error) {
	return warp.BuildCoefficients(src, dst)
}

// SampledPointMap maps an integer coordinate through the transform to
// the nearest integer coordinate in the other plane.
func SampledPointMap(vc *Coeffs, x, y int) (xp, yp int) {
	return vc.ApplySampled(x, y)
}

// InterpolatedPointMap maps a coordinate through the transform without
// rounding.
func InterpolatedPointMap(vc *Coeffs, x, y float64) (xp, yp float64) {
	return vc.Apply(x, y)
}

// TransformSampled warps src so that the four srcQuad points land on
// the four dstQuad points, taking each destination pixel from its
// nearest source pixel. Destination pixels that fall outside the
// source get the fill color.
//
// Internally this builds the backward (destination-to-source) map, so
// every destination pixel is assigned exactly once and the output has
// no holes.
func TransformSampled(src *raster.Raster, srcQuad, dstQuad Quad, fill Fill) (*raster.Raster, error) {
	vc, err := warp.BuildCoefficients(dstQuad, srcQuad)
	if err != nil {
		return nil, err
	}
	return warp.TransformSampled(src, vc, fill)
}

// TransformInterpolated is like TransformSampled but blends up to four
// source pixels per destination pixel. 1 bpp sources fall back to the
// sampled transform; colormapped and 2/4 bpp sources are flattened and
// promoted to 8 bpp first.
func TransformInterpolated(src *raster.Raster, srcQuad, dstQuad Quad, fill Fill) (*raster.Raster, error) {
	vc, err := warp.BuildCoefficients(dstQuad, srcQuad)
	if err != nil {
		return nil, err
	}
	return warp.TransformInterpolated(src, vc, fill)
}
