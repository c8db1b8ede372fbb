package warp

import (
	"github.com/pkg/errors"

	"github.com/osuushi/keystone/raster"
)

// TransformSampled applies the backward projective map to every
// destination pixel and copies the nearest source pixel's value.
// It works at all supported depths, and a colormap rides along
// untouched: pixel values are palette indexes and are copied as
// indexes, with no color arithmetic.
//
// The destination is fully initialized to the fill color before the
// scan, so pixels that map outside the source keep a deterministic
// value. For colormapped sources the fill index is registered in the
// destination's palette copy; the source palette is never modified.
func TransformSampled(src *raster.Raster, vc *Coeffs, fill Fill) (*raster.Raster, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil source raster")
	}
	if vc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil coefficients")
	}
	if !fill.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "fill %d", int(fill))
	}
	w, h, d := src.Width(), src.Height(), src.Depth()
	switch d {
	case 1, 2, 4, 8, 32:
	default:
		return nil, errors.Wrapf(ErrUnsupportedDepth, "%d bpp", d)
	}

	dst, err := raster.NewTemplate(src)
	if err != nil {
		return nil, errors.Wrap(ErrResourceExhausted, err.Error())
	}
	if err := prefill(dst, fill); err != nil {
		return nil, err
	}

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			x, y := vc.ApplySampled(j, i)
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			dst.Set(j, i, src.Get(x, y))
		}
	}
	return dst, nil
}

// prefill sets every destination pixel to the fill color. Colormapped
// rasters get a palette index (added on demand); 1 bpp follows the
// 0-is-white ink convention; deeper gray and color rasters use 0 for
// black and all-bits-on for white.
func prefill(dst *raster.Raster, fill Fill) error {
	if cmap := dst.Colormap(); cmap != nil {
		index, err := cmap.AddBlackOrWhite(fill == BringInWhite)
		if err != nil {
			return errors.Wrap(ErrResourceExhausted, err.Error())
		}
		dst.SetAllTo(uint32(index))
		return nil
	}
	d := dst.Depth()
	if (d == 1 && fill == BringInWhite) || (d > 1 && fill == BringInBlack) {
		dst.ClearAll()
	} else {
		dst.SetAll()
	}
	return nil
}
