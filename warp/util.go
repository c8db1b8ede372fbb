package warp

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Quad geometry that is collinear only up to float noise should still be
// treated as collinear.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Degenerate reports whether any three of the quad's points are
// collinear (zero cross product of the two edge vectors). The solver
// rejects such quads anyway; this is a cheap pre-check used by the
// debug drawing and available to callers that want a friendlier answer
// than a failed solve.
func (q Quad) Degenerate() bool {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for k := j + 1; k < 4; k++ {
				ax, ay := q[j].X-q[i].X, q[j].Y-q[i].Y
				bx, by := q[k].X-q[i].X, q[k].Y-q[i].Y
				if Equal(ax*by-ay*bx, 0) {
					return true
				}
			}
		}
	}
	return false
}

// isFinite reports whether v is an ordinary number (not NaN or Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
