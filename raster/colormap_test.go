package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColormapAddFind(t *testing.T) {
	cmap, err := NewColormap(2)
	require.NoError(t, err)
	assert.Equal(t, 0, cmap.Count())

	i, err := cmap.Add(Color{R: 10, G: 20, B: 30})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, cmap.Find(Color{R: 10, G: 20, B: 30}))
	assert.Equal(t, -1, cmap.Find(Color{R: 1}))

	got, err := cmap.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 10, G: 20, B: 30}, got)
	_, err = cmap.Get(1)
	assert.Error(t, err)

	// Depth 2 caps the palette at 4 entries.
	for j := 0; j < 3; j++ {
		_, err = cmap.Add(Color{R: uint8(j + 1)})
		require.NoError(t, err)
	}
	_, err = cmap.Add(Color{R: 99})
	assert.Error(t, err)
}

func TestColormapAddBlackOrWhite(t *testing.T) {
	cmap, err := NewColormap(4)
	require.NoError(t, err)
	_, err = cmap.Add(Color{R: 5, G: 5, B: 5})
	require.NoError(t, err)

	// Not present: registered as a new entry.
	white, err := cmap.AddBlackOrWhite(true)
	require.NoError(t, err)
	assert.Equal(t, 1, white)

	// Present: found, not duplicated.
	again, err := cmap.AddBlackOrWhite(true)
	require.NoError(t, err)
	assert.Equal(t, 1, again)
	assert.Equal(t, 2, cmap.Count())

	black, err := cmap.AddBlackOrWhite(false)
	require.NoError(t, err)
	assert.Equal(t, 2, black)
	assert.Equal(t, 3, cmap.Count())
}

func TestColormapIsGray(t *testing.T) {
	cmap, err := NewColormap(8)
	require.NoError(t, err)
	_, err = cmap.Add(Color{R: 0, G: 0, B: 0})
	require.NoError(t, err)
	_, err = cmap.Add(Color{R: 128, G: 128, B: 128})
	require.NoError(t, err)
	assert.True(t, cmap.IsGray())

	_, err = cmap.Add(Color{R: 128, G: 0, B: 128})
	require.NoError(t, err)
	assert.False(t, cmap.IsGray())
}

func TestColormapCopy(t *testing.T) {
	cmap, err := NewColormap(4)
	require.NoError(t, err)
	_, err = cmap.Add(Color{R: 1})
	require.NoError(t, err)

	cp := cmap.Copy()
	_, err = cp.Add(Color{R: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, cmap.Count())
	assert.Equal(t, 2, cp.Count())
}

func TestNewColormapValidation(t *testing.T) {
	_, err := NewColormap(32)
	assert.ErrorIs(t, err, ErrBadDepth)
	_, err = NewColormap(3)
	assert.ErrorIs(t, err, ErrBadDepth)
}
