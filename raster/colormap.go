package raster

import (
	"github.com/pkg/errors"
)

// Color is one colormap entry.
type Color struct {
	R, G, B uint8
}

// Colormap is the ordered palette attached to a raster of depth <= 8.
// Pixel values index into it.
type Colormap struct {
	depth   int
	entries []Color
}

// NewColormap creates an empty colormap for the given depth.
func NewColormap(depth int) (*Colormap, error) {
	if depth != 1 && depth != 2 && depth != 4 && depth != 8 {
		return nil, errors.Wrapf(ErrBadDepth, "colormap depth %d", depth)
	}
	return &Colormap{depth: depth}, nil
}

// Copy returns a deep copy of the colormap.
func (c *Colormap) Copy() *Colormap {
	entries := make([]Color, len(c.entries))
	copy(entries, c.entries)
	return &Colormap{depth: c.depth, entries: entries}
}

// Count returns the number of entries.
func (c *Colormap) Count() int { return len(c.entries) }

// Get returns the entry at index i.
func (c *Colormap) Get(i int) (Color, error) {
	if i < 0 || i >= len(c.entries) {
		return Color{}, errors.Errorf("raster: colormap index %d out of range", i)
	}
	return c.entries[i], nil
}

// Add appends an entry and returns its index. Fails once the palette is
// full for the depth.
func (c *Colormap) Add(col Color) (int, error) {
	if len(c.entries) >= 1<<uint(c.depth) {
		return 0, errors.Errorf("raster: colormap full at depth %d", c.depth)
	}
	c.entries = append(c.entries, col)
	return len(c.entries) - 1, nil
}

// Find returns the index of an exact match, or -1.
func (c *Colormap) Find(col Color) int {
	for i, e := range c.entries {
		if e == col {
			return i
		}
	}
	return -1
}

// AddBlackOrWhite returns the index of black (false) or white (true),
// registering a new entry if no exact match is present. This is the
// add-or-find used to pick a fill index for colormapped transforms.
func (c *Colormap) AddBlackOrWhite(white bool) (int, error) {
	col := Color{0, 0, 0}
	if white {
		col = Color{255, 255, 255}
	}
	if i := c.Find(col); i >= 0 {
		return i, nil
	}
	return c.Add(col)
}

// IsGray reports whether every entry has equal components, meaning the
// raster can be flattened to 8 bpp gray without losing color.
func (c *Colormap) IsGray() bool {
	for _, e := range c.entries {
		if e.R != e.G || e.G != e.B {
			return false
		}
	}
	return true
}
