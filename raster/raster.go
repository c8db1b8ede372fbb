// Package raster implements the packed in-memory rasters that the warp
// package transforms: 1, 2, 4 and 8 bpp gray or colormapped images, and
// 32 bpp RGBA images.
package raster

import (
	"github.com/pkg/errors"
)

// maxDim keeps w*h*depth comfortably inside int64.
const maxDim = 1 << 27

var (
	ErrBadDepth = errors.New("raster: depth must be 1, 2, 4, 8 or 32")
	ErrBadSize  = errors.New("raster: dimensions out of range")
)

// Raster is a 2-D pixel grid packed into 32-bit words, most significant
// bit first, so that pixel 0 of a line occupies the high bits of word 0.
// A 32 bpp raster holds one RGBA pixel per word with red in the most
// significant byte and alpha in the least; all other depths hold gray
// values or colormap indexes. Rasters at depth <= 8 may carry a
// colormap, in which case pixel values are indexes into it.
type Raster struct {
	width  int
	height int
	depth  int
	wpl    int // 32-bit words per line
	data   []uint32
	cmap   *Colormap
}

func validDepth(depth int) bool {
	switch depth {
	case 1, 2, 4, 8, 32:
		return true
	}
	return false
}

// New creates a zero-filled raster.
func New(width, height, depth int) (*Raster, error) {
	if !validDepth(depth) {
		return nil, errors.Wrapf(ErrBadDepth, "depth %d", depth)
	}
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return nil, errors.Wrapf(ErrBadSize, "%d x %d", width, height)
	}
	wpl := (width*depth + 31) / 32
	return &Raster{
		width:  width,
		height: height,
		depth:  depth,
		wpl:    wpl,
		data:   make([]uint32, wpl*height),
	}, nil
}

// NewTemplate creates a zero-filled raster with the same dimensions and
// depth as src. The colormap, if any, is deep-copied so that entries
// added to the new raster never show up in src.
func NewTemplate(src *Raster) (*Raster, error) {
	if src == nil {
		return nil, errors.New("raster: nil template source")
	}
	r, err := New(src.width, src.height, src.depth)
	if err != nil {
		return nil, err
	}
	if src.cmap != nil {
		r.cmap = src.cmap.Copy()
	}
	return r, nil
}

// Clone returns a deep copy of the raster, pixels and colormap included.
func (r *Raster) Clone() *Raster {
	c := &Raster{
		width:  r.width,
		height: r.height,
		depth:  r.depth,
		wpl:    r.wpl,
		data:   make([]uint32, len(r.data)),
	}
	copy(c.data, r.data)
	if r.cmap != nil {
		c.cmap = r.cmap.Copy()
	}
	return c
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }
func (r *Raster) Depth() int  { return r.depth }

// Colormap returns the attached colormap, or nil.
func (r *Raster) Colormap() *Colormap { return r.cmap }

// SetColormap attaches a colormap. Only valid for depth <= 8.
func (r *Raster) SetColormap(cmap *Colormap) error {
	if r.depth > 8 {
		return errors.Wrap(ErrBadDepth, "colormap on 32 bpp raster")
	}
	r.cmap = cmap
	return nil
}

// Get returns the pixel value at (x, y). Out-of-bounds reads return 0;
// callers that care must bounds-check first, as the transform loops do.
func (r *Raster) Get(x, y int) uint32 {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0
	}
	line := r.data[y*r.wpl:]
	switch r.depth {
	case 1:
		return (line[x>>5] >> (31 - uint(x&31))) & 1
	case 2:
		return (line[x>>4] >> (2 * (15 - uint(x&15)))) & 3
	case 4:
		return (line[x>>3] >> (4 * (7 - uint(x&7)))) & 0xf
	case 8:
		return (line[x>>2] >> (8 * (3 - uint(x&3)))) & 0xff
	default: // 32
		return line[x]
	}
}

// Set writes the pixel value at (x, y), masking val to the depth.
// Out-of-bounds writes are ignored.
func (r *Raster) Set(x, y int, val uint32) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	line := r.data[y*r.wpl:]
	switch r.depth {
	case 1:
		shift := 31 - uint(x&31)
		line[x>>5] = line[x>>5]&^(1<<shift) | (val&1)<<shift
	case 2:
		shift := 2 * (15 - uint(x&15))
		line[x>>4] = line[x>>4]&^(3<<shift) | (val&3)<<shift
	case 4:
		shift := 4 * (7 - uint(x&7))
		line[x>>3] = line[x>>3]&^(0xf<<shift) | (val&0xf)<<shift
	case 8:
		shift := 8 * (3 - uint(x&3))
		line[x>>2] = line[x>>2]&^(0xff<<shift) | (val&0xff)<<shift
	default: // 32
		line[x] = val
	}
}

// ClearAll sets every pixel to 0.
func (r *Raster) ClearAll() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// SetAll sets every pixel to the maximum value for the depth
// (all bits on).
func (r *Raster) SetAll() {
	for i := range r.data {
		r.data[i] = 0xffffffff
	}
}

// SetAllTo sets every pixel to an arbitrary value. For sub-word depths
// the value is replicated across each word.
func (r *Raster) SetAllTo(val uint32) {
	word := val
	switch r.depth {
	case 1:
		word = -(val & 1) // 0 or all ones
	case 2:
		word = val & 3
		word |= word << 2
		word |= word << 4
		word |= word << 8
		word |= word << 16
	case 4:
		word = val & 0xf
		word |= word << 4
		word |= word << 8
		word |= word << 16
	case 8:
		word = val & 0xff
		word |= word << 8
		word |= word << 16
	}
	for i := range r.data {
		r.data[i] = word
	}
}

// RGBA packs color components into a 32 bpp pixel value.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Components unpacks a 32 bpp pixel value.
func Components(val uint32) (r, g, b, a uint8) {
	return uint8(val >> 24), uint8(val >> 16), uint8(val >> 8), uint8(val)
}
