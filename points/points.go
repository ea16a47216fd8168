package points

import (
	"math/rand"
)

// Set is an ordered collection of points in a fixed number of dimensions.
// Coordinates are stored row-major in a flat buffer, so the i-th point
// occupies Vals[i*Dims: (i+1)*Dims]. Rows have no identity beyond position
// and must not be modified once the Set is handed to an interpolant.
type Set struct {
	Vals []float64
	N, Dims int
}

func NewSet(vals []float64, n, dims int) *Set {
	if n <= 0 {
		panic("n must be positive.")
	} else if dims <= 0 {
		panic("dims must be positive.")
	} else if n * dims != len(vals) {
		panic("n * dims must equal len(vals).")
	}

	return &Set{Vals: vals, N: n, Dims: dims}
}

// Empty creates a zeroed Set with n points in dims dimensions.
func Empty(n, dims int) *Set {
	return NewSet(make([]float64, n*dims), n, dims)
}

func (s *Set) Len() int { return s.N }

// At returns the coordinates of the i-th point. The returned slice aliases
// the Set's buffer.
func (s *Set) At(i int) []float64 {
	return s.Vals[i*s.Dims : (i+1)*s.Dims]
}

// Uniform draws n points whose coordinates are i.i.d. uniform over [0, 1).
// The generator is passed explicitly so that callers control seeding and
// two Sets drawn from different generators stay uncorrelated.
func Uniform(rnd *rand.Rand, n, dims int) *Set {
	s := Empty(n, dims)
	for i := range s.Vals {
		s.Vals[i] = rnd.Float64()
	}
	return s
}
