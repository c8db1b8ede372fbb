package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 250, G: 100, B: 50, A: 255})

	r, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Equal(t, 32, r.Depth())
	assert.Equal(t, RGBA(1, 2, 3, 255), r.Get(0, 0))
	assert.Equal(t, RGBA(250, 100, 50, 255), r.Get(2, 1))

	_, err = FromImage(nil)
	assert.Error(t, err)
}

// Images whose bounds do not start at the origin still map pixel for
// pixel.
func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 7, 8, 9))
	img.SetNRGBA(5, 7, color.NRGBA{R: 9, A: 255})

	r, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Equal(t, RGBA(9, 0, 0, 255), r.Get(0, 0))
}

func TestToImage(t *testing.T) {
	t.Run("32 bpp", func(t *testing.T) {
		r, err := New(2, 2, 32)
		require.NoError(t, err)
		r.Set(1, 1, RGBA(10, 20, 30, 40))

		img, err := r.ToImage()
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(1, 1))
		assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(0, 0))
	})

	t.Run("gray", func(t *testing.T) {
		r, err := New(2, 1, 2)
		require.NoError(t, err)
		r.Set(0, 0, 3)
		r.Set(1, 0, 1)

		img, err := r.ToImage()
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(0, 0))
		assert.Equal(t, color.NRGBA{R: 85, G: 85, B: 85, A: 255}, img.NRGBAAt(1, 0))
	})

	t.Run("colormapped", func(t *testing.T) {
		r, err := New(2, 1, 4)
		require.NoError(t, err)
		cmap, err := NewColormap(4)
		require.NoError(t, err)
		_, err = cmap.Add(Color{R: 200, G: 10, B: 5})
		require.NoError(t, err)
		require.NoError(t, r.SetColormap(cmap))

		img, err := r.ToImage()
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 5, A: 255}, img.NRGBAAt(0, 0))

		// An index past the palette is an error, not a panic.
		r.Set(1, 0, 7)
		_, err = r.ToImage()
		assert.Error(t, err)
	})
}

func TestImageRoundTrip(t *testing.T) {
	src, err := New(5, 4, 32)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			src.Set(x, y, RGBA(uint8(x*40), uint8(y*60), uint8(x*y), 255))
		}
	}

	img, err := src.ToImage()
	require.NoError(t, err)
	back, err := FromImage(img)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, src.Get(x, y), back.Get(x, y), "(%d,%d)", x, y)
		}
	}
}
