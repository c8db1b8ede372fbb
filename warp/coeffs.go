package warp

import "github.com/pkg/errors"

// BuildCoefficients solves for the 8 coefficients of the projective map
// taking src[i] to dst[i] for each of the four correspondences.
//
// Each correspondence contributes two rows to an 8x8 system A*c = b:
//
//	[ xi  yi  1  0   0   0  -xi*xi'  -yi*xi' ]   b = xi'
//	[ 0   0   0  xi  yi  1  -xi*yi'  -yi*yi' ]   b = yi'
//
// which comes from multiplying both sides of the mapping equations by
// the denominator (c6*x + c7*y + 1). Quads with three collinear points
// make the system singular and fail with ErrInvalidPointSet.
//
// Note the direction: to warp an image you want the backward map, so
// pass the destination quad as src and the source quad as dst, as the
// Transform wrappers in the root package do.
func BuildCoefficients(src, dst Quad) (*Coeffs, error) {
	var a [solverDim][solverDim]float64
	var b [solverDim]float64

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y
		r := 2 * i

		a[r][0] = x
		a[r][1] = y
		a[r][2] = 1
		a[r][6] = -x * xp
		a[r][7] = -y * xp
		b[r] = xp

		a[r+1][3] = x
		a[r+1][4] = y
		a[r+1][5] = 1
		a[r+1][6] = -x * yp
		a[r+1][7] = -y * yp
		b[r+1] = yp
	}

	if err := gaussJordan(&a, &b); err != nil {
		return nil, errors.Wrap(ErrInvalidPointSet, err.Error())
	}
	vc := Coeffs(b)
	return &vc, nil
}

// outOfRange is returned by ApplySampled for pixels whose projective
// denominator vanishes or whose mapped coordinate cannot be represented
// as an int. Any negative value would do; the transform loops treat it
// as out of bounds.
const outOfRange = -1 << 30

// ApplySampled maps an integer destination coordinate to the nearest
// source pixel coordinate. Rounding is add-0.5-then-truncate, which for
// negative values rounds toward positive rather than away from zero.
// Output is pixel-exact against that convention.
func (vc *Coeffs) ApplySampled(x, y int) (xp, yp int) {
	fx, fy := float64(x), float64(y)
	den := vc[6]*fx + vc[7]*fy + 1
	if den == 0 {
		return outOfRange, outOfRange
	}
	factor := 1 / den
	return roundCoord(factor * (vc[0]*fx + vc[1]*fy + vc[2])),
		roundCoord(factor * (vc[3]*fx + vc[4]*fy + vc[5]))
}

// roundCoord applies the +0.5 truncation, guarding the float-to-int
// conversion: outside int32 range the result would be undefined, and
// such coordinates are out of bounds for any raster we can hold anyway.
func roundCoord(v float64) int {
	v += 0.5
	if !(v >= -(1 << 30) && v < 1<<30) { // also catches NaN
		return outOfRange
	}
	return int(v)
}

// Apply maps a destination coordinate to the real-valued source
// location, for interpolated sampling. When the denominator vanishes
// the result is infinite (or NaN); the interpolators treat any
// non-finite coordinate as out of bounds.
func (vc *Coeffs) Apply(x, y float64) (xp, yp float64) {
	factor := 1 / (vc[6]*x + vc[7]*y + 1)
	return factor * (vc[0]*x + vc[1]*y + vc[2]),
		factor * (vc[3]*x + vc[4]*y + vc[5])
}
