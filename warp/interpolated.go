package warp

import (
	"github.com/pkg/errors"

	"github.com/osuushi/keystone/raster"
)

// White fill values for the two interpolated pixel formats.
const (
	grayWhite  = 255
	colorWhite = 0xffffff00 // R, G, B high; alpha byte zero
)

// TransformInterpolated applies the backward projective map with
// bilinear resampling. Interpolation is defined only on 8 bpp gray and
// 32 bpp color, so other inputs are first converted: 1 bpp falls back
// to the sampled transform (blending binary pixels is meaningless), and
// colormapped or 2/4 bpp sources are flattened and promoted to 8 bpp
// before resampling. The returned raster therefore may have a different
// depth than the source and never carries a colormap.
func TransformInterpolated(src *raster.Raster, vc *Coeffs, fill Fill) (*raster.Raster, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil source raster")
	}
	if vc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil coefficients")
	}
	if !fill.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "fill %d", int(fill))
	}
	switch src.Depth() {
	case 1:
		return TransformSampled(src, vc, fill)
	case 2, 4, 8, 32:
	default:
		return nil, errors.Wrapf(ErrUnsupportedDepth, "%d bpp", src.Depth())
	}

	flat, err := raster.RemoveColormap(src)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, err.Error())
	}
	if flat.Depth() < 8 {
		if flat, err = raster.ConvertTo8(flat); err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
	}

	if flat.Depth() == 8 {
		var grayval uint8
		if fill == BringInWhite {
			grayval = grayWhite
		}
		return TransformGray(flat, vc, grayval)
	}
	var colorval uint32
	if fill == BringInWhite {
		colorval = colorWhite
	}
	return TransformColor(flat, vc, colorval)
}

// TransformGray resamples an 8 bpp gray raster, blending up to four
// source neighbors per destination pixel. grayval is the intensity
// brought in at the boundary, both for fully unmapped pixels and for
// the out-of-bounds taps of pixels near the edge.
func TransformGray(src *raster.Raster, vc *Coeffs, grayval uint8) (*raster.Raster, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil source raster")
	}
	if vc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil coefficients")
	}
	if src.Depth() != 8 {
		return nil, errors.Wrapf(ErrUnsupportedDepth, "gray transform on %d bpp", src.Depth())
	}
	if src.Colormap() != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "gray transform on colormapped raster")
	}

	w, h := src.Width(), src.Height()
	dst, err := raster.NewTemplate(src)
	if err != nil {
		return nil, errors.Wrap(ErrResourceExhausted, err.Error())
	}
	dst.SetAllTo(uint32(grayval))

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			x, y := vc.Apply(float64(j), float64(i))
			dst.Set(j, i, interpolateGray(src, x, y, uint32(grayval)))
		}
	}
	return dst, nil
}

// TransformColor resamples a 32 bpp raster, blending each of the three
// color channels independently. colorval is the packed boundary pixel;
// its alpha byte is carried into every output pixel's alpha, since the
// blend itself only touches R, G and B.
func TransformColor(src *raster.Raster, vc *Coeffs, colorval uint32) (*raster.Raster, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil source raster")
	}
	if vc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil coefficients")
	}
	if src.Depth() != 32 {
		return nil, errors.Wrapf(ErrUnsupportedDepth, "color transform on %d bpp", src.Depth())
	}

	w, h := src.Width(), src.Height()
	dst, err := raster.NewTemplate(src)
	if err != nil {
		return nil, errors.Wrap(ErrResourceExhausted, err.Error())
	}
	dst.SetAllTo(colorval)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			x, y := vc.Apply(float64(j), float64(i))
			dst.Set(j, i, interpolateColor(src, x, y, colorval))
		}
	}
	return dst, nil
}

// interpolateGray blends the four source pixels around the real-valued
// location (x, y), weighting by the fractional offsets in sixteenths.
// Taps that fall outside the raster read as fillval, and a location
// entirely outside (including non-finite coordinates from a vanishing
// projective denominator) returns fillval outright.
func interpolateGray(src *raster.Raster, x, y float64, fillval uint32) uint32 {
	w, h := src.Width(), src.Height()
	// The comparisons are written to fail for NaN and the infinities,
	// and they bound the fixed-point conversion below.
	if !(x > -1 && y > -1 && x < float64(w) && y < float64(h)) {
		return fillval
	}

	// Snap to sixteenths: integer pixel plus a 4-bit fraction.
	xpm := int(16*x + 0.5)
	ypm := int(16*y + 0.5)
	xp := xpm >> 4
	yp := ypm >> 4
	xf := xpm & 0x0f
	yf := ypm & 0x0f
	if xp < 0 || yp < 0 || xp >= w || yp >= h {
		return fillval
	}

	v00 := (16 - xf) * (16 - yf) * int(src.Get(xp, yp))
	v10 := xf * (16 - yf) * int(tapGray(src, xp+1, yp, fillval))
	v01 := (16 - xf) * yf * int(tapGray(src, xp, yp+1, fillval))
	v11 := xf * yf * int(tapGray(src, xp+1, yp+1, fillval))
	return uint32((v00 + v10 + v01 + v11 + 128) / 256)
}

func tapGray(src *raster.Raster, x, y int, fillval uint32) uint32 {
	if x >= src.Width() || y >= src.Height() {
		return fillval
	}
	return src.Get(x, y)
}

// interpolateColor is the per-channel analog of interpolateGray for
// packed 32 bpp pixels. The alpha byte of the result comes from
// fillval.
func interpolateColor(src *raster.Raster, x, y float64, fillval uint32) uint32 {
	w, h := src.Width(), src.Height()
	if !(x > -1 && y > -1 && x < float64(w) && y < float64(h)) {
		return fillval
	}

	xpm := int(16*x + 0.5)
	ypm := int(16*y + 0.5)
	xp := xpm >> 4
	yp := ypm >> 4
	xf := xpm & 0x0f
	yf := ypm & 0x0f
	if xp < 0 || yp < 0 || xp >= w || yp >= h {
		return fillval
	}

	p00 := src.Get(xp, yp)
	p10 := tapColor(src, xp+1, yp, fillval)
	p01 := tapColor(src, xp, yp+1, fillval)
	p11 := tapColor(src, xp+1, yp+1, fillval)

	w00 := (16 - xf) * (16 - yf)
	w10 := xf * (16 - yf)
	w01 := (16 - xf) * yf
	w11 := xf * yf

	var out uint32
	for shift := uint(24); shift >= 8; shift -= 8 {
		c := w00*int(p00>>shift&0xff) +
			w10*int(p10>>shift&0xff) +
			w01*int(p01>>shift&0xff) +
			w11*int(p11>>shift&0xff)
		out |= uint32((c+128)/256) << shift
	}
	return out | fillval&0xff
}

func tapColor(src *raster.Raster, x, y int, fillval uint32) uint32 {
	if x >= src.Width() || y >= src.Height() {
		return fillval
	}
	return src.Get(x, y)
}
