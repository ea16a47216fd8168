/*Package rbf implements radial basis function interpolation of scattered
data in arbitrary dimension. An Interpolant is fit once from a source point
set and a matching value vector and is immutable afterwards: its only
operation is evaluation at query points.

The interpolant is a weighted sum of kernels centered on the source points,
optionally augmented with a low-degree polynomial tail. A degree-1 tail makes
the interpolant exact on affine fields. For large source sets the fit can be
truncated to the nearest Neighbors sources of each query point, which bounds
the size of the linear system solved per query at the cost of global
interpolation exactness.*/
package rbf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/hopi-project/scatter/points"
)

// Config specifies how an Interpolant is fit.
type Config struct {
	// Kernel is the radial basis function.
	Kernel Kernel
	// Epsilon is the shape parameter of scale-dependent kernels. It must be
	// positive for Multiquadric and Gaussian and is ignored otherwise.
	Epsilon float64
	// Neighbors bounds the local linear system used per query. Values <= 0
	// or >= the source count select a single dense solve over all sources.
	Neighbors int
	// Degree is the degree of the appended polynomial tail. -1 disables the
	// tail. It must be at least Kernel.MinDegree().
	Degree int
}

// Interpolant is a fitted RBF interpolant. It must not be modified after
// construction, and the source Set handed to New must not be modified
// either.
type Interpolant struct {
	cfg  Config
	src  *points.Set
	vals []float64
	mono [][]int

	// Dense path: one global weight vector.
	w, c []float64
	// Truncated path: per-query neighbor lookup.
	tree *kdtree.Tree
}

// New fits an interpolant through vals at the points of src. It returns an
// error if the configuration is inconsistent or if the interpolation system
// is singular, which happens when src contains duplicate points.
func New(src *points.Set, vals []float64, cfg Config) (*Interpolant, error) {
	if src.Len() != len(vals) {
		panic(fmt.Sprintf(
			"Source set has %d points but value vector has length %d.",
			src.Len(), len(vals),
		))
	}

	if cfg.Kernel.NeedsEpsilon() && cfg.Epsilon <= 0 {
		return nil, fmt.Errorf(
			"Kernel %s requires a positive Epsilon shape parameter.",
			cfg.Kernel,
		)
	}
	if min := cfg.Kernel.MinDegree(); cfg.Degree < min {
		return nil, fmt.Errorf(
			"Kernel %s requires Degree >= %d, but Degree = %d.",
			cfg.Kernel, min, cfg.Degree,
		)
	}

	in := &Interpolant{
		cfg:  cfg,
		src:  src,
		vals: vals,
		mono: monomials(src.Dims, cfg.Degree),
	}

	if cfg.Neighbors <= 0 || cfg.Neighbors >= src.Len() {
		if src.Len() < len(in.mono) {
			return nil, fmt.Errorf(
				"Polynomial tail of degree %d needs at least %d source "+
					"points, but only %d were given.",
				cfg.Degree, len(in.mono), src.Len(),
			)
		}

		w, c, err := in.solve(nil)
		if err != nil {
			return nil, err
		}
		in.w, in.c = w, c
		return in, nil
	}

	if cfg.Neighbors < len(in.mono) {
		return nil, fmt.Errorf(
			"Neighbors = %d is smaller than the %d polynomial basis "+
				"functions of degree %d.",
			cfg.Neighbors, len(in.mono), cfg.Degree,
		)
	}
	in.tree = newTree(src)
	return in, nil
}

// Eval evaluates the interpolant at a single point. With neighbor
// truncation enabled this solves a local linear system, so singular local
// configurations surface here rather than in New.
func (in *Interpolant) Eval(p []float64) (float64, error) {
	if len(p) != in.src.Dims {
		panic(fmt.Sprintf(
			"Point has %d dimensions, but interpolant was fit in %d.",
			len(p), in.src.Dims,
		))
	}

	if in.tree == nil {
		return in.evalAt(p, nil, in.w, in.c), nil
	}

	idxs := nearest(in.tree, p, in.cfg.Neighbors)
	w, c, err := in.solve(idxs)
	if err != nil {
		return 0, err
	}
	return in.evalAt(p, idxs, w, c), nil
}

// EvalAll evaluates the interpolant at every point in pts. The returned
// vector always has length pts.Len(). An optional output array can be
// supplied to prevent unneeded heap allocations.
func (in *Interpolant) EvalAll(pts *points.Set, out ...[]float64) ([]float64, error) {
	if pts.Dims != in.src.Dims {
		panic(fmt.Sprintf(
			"Query set has %d dimensions, but interpolant was fit in %d.",
			pts.Dims, in.src.Dims,
		))
	}

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
		val, err := in.Eval(pts.At(i))
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

// solve fits kernel weights and polynomial coefficients over the source
// rows in idxs, or over all sources if idxs is nil. The system is
//
//	| K  P | |w|   |vals|
//	| P' 0 | |c| = | 0  |
//
// where K is the kernel matrix and P the polynomial basis evaluated at the
// sources.
func (in *Interpolant) solve(idxs []int) (w, c []float64, err error) {
	n := in.src.Len()
	if idxs != nil {
		n = len(idxs)
	}
	m := len(in.mono)
	size := n + m

	A := mat.NewDense(size, size, nil)
	b := mat.NewVecDense(size, nil)
	for i := 0; i < n; i++ {
		pi := in.src.At(in.row(idxs, i))
		for j := 0; j < n; j++ {
			pj := in.src.At(in.row(idxs, j))
			A.Set(i, j, in.cfg.Kernel.eval(dist(pi, pj), in.cfg.Epsilon))
		}
		for k := 0; k < m; k++ {
			pk := evalMonomial(pi, in.mono[k])
			A.Set(i, n+k, pk)
			A.Set(n+k, i, pk)
		}
		b.SetVec(i, in.vals[in.row(idxs, i)])
	}

	var qr mat.QR
	qr.Factorize(A)
	x := mat.NewDense(size, 1, nil)
	if err := qr.SolveTo(x, false, b); err != nil {
		return nil, nil, fmt.Errorf(
			"Interpolation system of size %d is singular or "+
				"ill-conditioned: %s", size, err,
		)
	}

	w, c = make([]float64, n), make([]float64, m)
	for i := range w {
		w[i] = x.At(i, 0)
	}
	for k := range c {
		c[k] = x.At(n+k, 0)
	}
	return w, c, nil
}

// evalAt combines fitted weights into a value at p. idxs selects the source
// rows the weights correspond to; nil means all rows in order.
func (in *Interpolant) evalAt(p []float64, idxs []int, w, c []float64) float64 {
	sum := 0.0
	for j := range w {
		pj := in.src.At(in.row(idxs, j))
		sum += w[j] * in.cfg.Kernel.eval(dist(p, pj), in.cfg.Epsilon)
	}
	for k := range c {
		sum += c[k] * evalMonomial(p, in.mono[k])
	}
	return sum
}

func (in *Interpolant) row(idxs []int, i int) int {
	if idxs == nil {
		return i
	}
	return idxs[i]
}

func dist(p, q []float64) float64 {
	sum := 0.0
	for d := range p {
		dx := p[d] - q[d]
		sum += dx * dx
	}
	return math.Sqrt(sum)
}
