package warp

// Point is a location in the source or destination plane.
type Point struct {
	X float64
	Y float64
}

// Quad is an ordered set of four control points. The nth point of a
// source quad corresponds to the nth point of its destination quad; the
// ordering is the entire correspondence. No three of the four points may
// be collinear, which surfaces as a singular system when solving for
// coefficients rather than as an up-front geometric check.
type Quad [4]Point

// Coeffs is the 8-coefficient projective map
//
//	x' = (c0*x + c1*y + c2) / (c6*x + c7*y + 1)
//	y' = (c3*x + c4*y + c5) / (c6*x + c7*y + 1)
//
// Once built it is read-only; the transforms never modify it.
type Coeffs [8]float64

// Fill selects the color brought in at the image boundary for
// destination pixels with no source counterpart.
type Fill int

const (
	BringInWhite Fill = iota
	BringInBlack
)

func (f Fill) valid() bool {
	return f == BringInWhite || f == BringInBlack
}

func (f Fill) String() string {
	switch f {
	case BringInWhite:
		return "BringInWhite"
	case BringInBlack:
		return "BringInBlack"
	}
	return "Fill(?)"
}
