package warp

import "github.com/pkg/errors"

// Every failure in this package is a deterministic function of its
// inputs, detected before any destination pixel is written. Callers get
// exactly one of these sentinels (possibly wrapped with context); there
// is never a partially transformed raster to clean up.
var (
	// ErrInvalidArgument covers nil rasters, nil coefficient vectors
	// and out-of-range fill selectors.
	ErrInvalidArgument = errors.New("warp: invalid argument")

	// ErrInvalidPointSet means the point correspondence is degenerate
	// (three collinear points make the 8x8 system singular).
	ErrInvalidPointSet = errors.New("warp: degenerate point correspondence")

	// ErrUnsupportedDepth means the raster depth is outside {1,2,4,8,32},
	// or interpolation was requested where it is undefined.
	ErrUnsupportedDepth = errors.New("warp: unsupported bit depth")

	// ErrResourceExhausted means the destination raster could not be
	// allocated (dimensions out of range).
	ErrResourceExhausted = errors.New("warp: raster allocation failed")
)

// errSingular is the solver's internal failure. BuildCoefficients
// translates it to ErrInvalidPointSet, since the only way a well-formed
// correspondence produces a singular system is collinear points.
var errSingular = errors.New("warp: singular matrix")
