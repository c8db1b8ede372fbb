package warp

import "math"

// The coefficient system is always 8x8, so the solver works on
// fixed-size arrays in place: no allocation, and the rhs vector is
// overwritten with the solution.
const solverDim = 8

// gaussJordan reduces the matrix to the identity with partial pivoting,
// applying every row operation to b as well, so that b ends up holding
// the solution. Unlike plain Gaussian elimination there is no
// back-substitution pass: each pivot column is cleared in all other
// rows, including rows already processed.
//
// Fails with errSingular when a pivot column has no usable candidate,
// which for our coefficient matrices means a degenerate correspondence.
// On failure the contents of a and b are unspecified and must not be
// used.
func gaussJordan(a *[solverDim][solverDim]float64, b *[solverDim]float64) error {
	for col := 0; col < solverDim; col++ {
		// Pick the remaining row with the largest magnitude in this
		// column. Rows above col already hold their pivots and are not
		// eligible.
		pivot := col
		max := math.Abs(a[col][col])
		for row := col + 1; row < solverDim; row++ {
			if abs := math.Abs(a[row][col]); abs > max {
				max = abs
				pivot = row
			}
		}
		if max == 0 {
			return errSingular
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			b[pivot], b[col] = b[col], b[pivot]
		}

		// Normalize the pivot row so the pivot element is 1.
		div := a[col][col]
		for c := col; c < solverDim; c++ {
			a[col][c] /= div
		}
		b[col] /= div

		// Clear the pivot column from every other row.
		for row := 0; row < solverDim; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			if factor == 0 {
				continue
			}
			for c := col; c < solverDim; c++ {
				a[row][c] -= factor * a[col][c]
			}
			b[row] -= factor * b[col]
		}
	}
	return nil
}
