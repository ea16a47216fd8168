package rbf

import (
	"fmt"
	"math"
)

// Kernel selects the radial basis function used by an Interpolant. The
// kernel semantics, sign conventions, and minimum polynomial degrees follow
// the usual conditionally-positive-definite formulation, so ThinPlateSpline
// requires at least an affine tail and Quintic at least a quadratic one.
type Kernel int

const (
	ThinPlateSpline Kernel = iota
	Linear
	Cubic
	Quintic
	Multiquadric
	Gaussian
	endKernel
)

func (k Kernel) String() string {
	switch k {
	case ThinPlateSpline:
		return "ThinPlateSpline"
	case Linear:
		return "Linear"
	case Cubic:
		return "Cubic"
	case Quintic:
		return "Quintic"
	case Multiquadric:
		return "Multiquadric"
	case Gaussian:
		return "Gaussian"
	}
	panic(fmt.Sprintf("Unrecognized Kernel value %d.", int(k)))
}

// ParseKernel converts a kernel name, as it would appear in a config file,
// into a Kernel. Matching is exact.
func ParseKernel(name string) (Kernel, error) {
	for k := Kernel(0); k < endKernel; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return endKernel, fmt.Errorf("Unrecognized kernel name '%s'.", name)
}

// MinDegree returns the smallest polynomial tail degree for which the
// interpolation system is guaranteed non-singular on distinct points.
// Kernels that are positive definite on their own return -1.
func (k Kernel) MinDegree() int {
	switch k {
	case Linear, Multiquadric:
		return 0
	case ThinPlateSpline, Cubic:
		return 1
	case Quintic:
		return 2
	case Gaussian:
		return -1
	}
	panic(fmt.Sprintf("Unrecognized Kernel value %d.", int(k)))
}

// NeedsEpsilon reports whether the kernel has a shape parameter. Kernels
// without one are scale invariant and ignore Config.Epsilon.
func (k Kernel) NeedsEpsilon() bool {
	return k == Multiquadric || k == Gaussian
}

// eval computes the kernel at distance r with shape parameter eps.
func (k Kernel) eval(r, eps float64) float64 {
	switch k {
	case ThinPlateSpline:
		if r == 0 {
			return 0
		}
		return r * r * math.Log(r)
	case Linear:
		return -r
	case Cubic:
		return r * r * r
	case Quintic:
		return -r * r * r * r * r
	case Multiquadric:
		er := eps * r
		return -math.Sqrt(1 + er*er)
	case Gaussian:
		er := eps * r
		return math.Exp(-er * er)
	}
	panic(fmt.Sprintf("Unrecognized Kernel value %d.", int(k)))
}
