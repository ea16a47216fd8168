package field

import (
	"math"

	"github.com/hopi-project/scatter/points"
)

// Field is a pure scalar function over points. Implementations must be
// deterministic: repeated evaluation at the same point yields the same value.
type Field interface {
	Eval(p []float64) float64
}

var (
	_ Field = &Bump{}
	_ Field = &Affine{}
)

// Bump is the field 1 + sum(p) * exp(-Sharpness * |p|^2), a smooth bump
// centered on the origin. Sharpness = 6 gives the field used by the original
// accuracy study.
type Bump struct {
	Sharpness float64
}

func (f *Bump) Eval(p []float64) float64 {
	sum, sqr := 0.0, 0.0
	for _, x := range p {
		sum += x
		sqr += x * x
	}
	return 1 + sum*math.Exp(-f.Sharpness*sqr)
}

// Affine is the field Const + Coeffs . p. Interpolants with a degree-1
// polynomial tail reproduce it exactly, which makes it the natural probe
// for exactness tests.
type Affine struct {
	Const  float64
	Coeffs []float64
}

func (f *Affine) Eval(p []float64) float64 {
	if len(p) != len(f.Coeffs) {
		panic("Point dimension does not match len(Coeffs).")
	}

	sum := f.Const
	for d, x := range p {
		sum += f.Coeffs[d] * x
	}
	return sum
}

// EvalAll evaluates f at every point in pts. An optional output array can be
// supplied to prevent unneeded heap allocations.
func EvalAll(f Field, pts *points.Set, out ...[]float64) []float64 {
	var vals []float64
	if len(out) == 0 {
		vals = make([]float64, pts.Len())
	} else {
		vals = out[0]
		if len(vals) != pts.Len() {
			panic("Length of out array does not equal length of pts.")
		}
	}

	for i := 0; i < pts.Len(); i++ {
		vals[i] = f.Eval(pts.At(i))
	}
	return vals
}
