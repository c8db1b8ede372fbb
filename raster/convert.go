package raster

import (
	"github.com/pkg/errors"
)

// RemoveColormap flattens a colormapped raster into either 8 bpp gray
// (when every palette entry is gray) or 32 bpp color. Rasters without a
// colormap are returned as a clone. This mirrors remove-based-on-source
// behavior: the output depth is chosen by the palette contents.
func RemoveColormap(src *Raster) (*Raster, error) {
	if src == nil {
		return nil, errors.New("raster: nil source")
	}
	cmap := src.cmap
	if cmap == nil {
		return src.Clone(), nil
	}

	if cmap.IsGray() {
		dst, err := New(src.width, src.height, 8)
		if err != nil {
			return nil, err
		}
		for y := 0; y < src.height; y++ {
			for x := 0; x < src.width; x++ {
				col, err := cmap.Get(int(src.Get(x, y)))
				if err != nil {
					return nil, errors.Wrap(err, "raster: pixel outside colormap")
				}
				dst.Set(x, y, uint32(col.R))
			}
		}
		return dst, nil
	}

	dst, err := New(src.width, src.height, 32)
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			col, err := cmap.Get(int(src.Get(x, y)))
			if err != nil {
				return nil, errors.Wrap(err, "raster: pixel outside colormap")
			}
			dst.Set(x, y, RGBA(col.R, col.G, col.B, 0))
		}
	}
	return dst, nil
}

// ConvertTo8 expands a 1, 2 or 4 bpp gray raster to 8 bpp by replicating
// bits across the byte, so 0 stays 0 and the depth's maximum becomes 255.
// 8 bpp input is cloned. The input must not be colormapped; call
// RemoveColormap first.
func ConvertTo8(src *Raster) (*Raster, error) {
	if src == nil {
		return nil, errors.New("raster: nil source")
	}
	if src.cmap != nil {
		return nil, errors.New("raster: ConvertTo8 on colormapped raster")
	}
	switch src.depth {
	case 8:
		return src.Clone(), nil
	case 1, 2, 4:
	default:
		return nil, errors.Wrapf(ErrBadDepth, "ConvertTo8 from %d bpp", src.depth)
	}

	dst, err := New(src.width, src.height, 8)
	if err != nil {
		return nil, err
	}
	// Scale factor mapping the depth's max value to 255.
	scale := uint32(255 / (1<<uint(src.depth) - 1))
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			dst.Set(x, y, src.Get(x, y)*scale)
		}
	}
	return dst, nil
}
