package stats

import (
	"math"
)

// RelErr computes the elementwise relative absolute difference
// |approx - truth| / truth. Near-zero truth values give unbounded or
// non-finite entries; callers that need a bounded metric should use
// RelErrFloor or AbsErr instead.
func RelErr(approx, truth []float64, out ...[]float64) []float64 {
	errs := errOut(len(approx), len(truth), out)
	for i := range errs {
		errs[i] = math.Abs(approx[i]-truth[i]) / truth[i]
	}
	return errs
}

// RelErrFloor is RelErr with the denominator clamped away from zero:
// |approx - truth| / max(|truth|, floor).
func RelErrFloor(approx, truth []float64, floor float64, out ...[]float64) []float64 {
	if floor <= 0 {
		panic("floor must be positive.")
	}

	errs := errOut(len(approx), len(truth), out)
	for i := range errs {
		den := math.Abs(truth[i])
		if den < floor {
			den = floor
		}
		errs[i] = math.Abs(approx[i]-truth[i]) / den
	}
	return errs
}

// AbsErr computes the elementwise absolute difference |approx - truth|.
func AbsErr(approx, truth []float64, out ...[]float64) []float64 {
	errs := errOut(len(approx), len(truth), out)
	for i := range errs {
		errs[i] = math.Abs(approx[i] - truth[i])
	}
	return errs
}

func errOut(nApprox, nTruth int, out [][]float64) []float64 {
	if nApprox != nTruth {
		panic("approx and truth vectors have different lengths.")
	}

	if len(out) == 0 {
		return make([]float64, nApprox)
	}
	errs := out[0]
	if len(errs) != nApprox {
		panic("Length of out array does not equal length of inputs.")
	}
	return errs
}

// Max returns the largest element of xs.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		panic("xs must be non-empty.")
	}

	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		panic("xs must be non-empty.")
	}

	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// PopStd returns the population standard deviation of xs,
// sqrt(mean((x - mean)^2)). The denominator is n, not n - 1.
func PopStd(xs []float64) float64 {
	mean := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		dx := x - mean
		sum += dx * dx
	}
	return math.Sqrt(sum / float64(len(xs)))
}
