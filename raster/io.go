package raster

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// FromImage converts a stdlib image into a 32 bpp raster.
func FromImage(img image.Image) (*Raster, error) {
	if img == nil {
		return nil, errors.New("raster: nil image")
	}
	bounds := img.Bounds()
	r, err := New(bounds.Dx(), bounds.Dy(), 32)
	if err != nil {
		return nil, err
	}
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			r.Set(x, y, RGBA(c.R, c.G, c.B, c.A))
		}
	}
	return r, nil
}

// ToImage converts the raster to a stdlib NRGBA image. Colormapped
// pixels go through the palette; gray depths expand to gray RGB.
func (r *Raster) ToImage() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			val := r.Get(x, y)
			var c color.NRGBA
			switch {
			case r.cmap != nil:
				entry, err := r.cmap.Get(int(val))
				if err != nil {
					return nil, errors.Wrap(err, "raster: pixel outside colormap")
				}
				c = color.NRGBA{R: entry.R, G: entry.G, B: entry.B, A: 255}
			case r.depth == 32:
				cr, cg, cb, _ := Components(val)
				c = color.NRGBA{R: cr, G: cg, B: cb, A: 255}
			default:
				gray := uint8(val * uint32(255/(1<<uint(r.depth)-1)))
				c = color.NRGBA{R: gray, G: gray, B: gray, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}
