package rbf

import (
	"math"
	"testing"
)

func TestThinPlateSpline(t *testing.T) {
	if got := ThinPlateSpline.eval(0, 0); got != 0 {
		t.Errorf("Thin plate spline at r = 0 is %g, expected 0.", got)
	}
	r := 2.5
	expected := r * r * math.Log(r)
	if got := ThinPlateSpline.eval(r, 0); math.Abs(got-expected) > 1e-14 {
		t.Errorf("Thin plate spline at r = %g is %g, expected %g.",
			r, got, expected)
	}
}

func TestKernelValues(t *testing.T) {
	table := []struct {
		k        Kernel
		r, eps   float64
		expected float64
	}{
		{Linear, 2, 0, -2},
		{Cubic, 2, 0, 8},
		{Quintic, 2, 0, -32},
		{Multiquadric, 3, 1, -math.Sqrt(10)},
		{Gaussian, 2, 0.5, math.Exp(-1)},
	}

	for i, line := range table {
		got := line.k.eval(line.r, line.eps)
		if math.Abs(got-line.expected) > 1e-14 {
			t.Errorf("%d) %s(%g) = %g, expected %g.",
				i, line.k, line.r, got, line.expected)
		}
	}
}

func TestParseKernel(t *testing.T) {
	for k := Kernel(0); k < endKernel; k++ {
		parsed, err := ParseKernel(k.String())
		if err != nil {
			t.Errorf("ParseKernel(%s) failed: %s", k, err.Error())
		} else if parsed != k {
			t.Errorf("ParseKernel(%s) = %s.", k, parsed)
		}
	}

	if _, err := ParseKernel("thin_plate_spline"); err == nil {
		t.Error("ParseKernel accepted an unrecognized name.")
	}
}

func TestMinDegree(t *testing.T) {
	table := []struct {
		k   Kernel
		min int
	}{
		{Linear, 0}, {Multiquadric, 0},
		{ThinPlateSpline, 1}, {Cubic, 1},
		{Quintic, 2},
		{Gaussian, -1},
	}
	for _, line := range table {
		if got := line.k.MinDegree(); got != line.min {
			t.Errorf("%s.MinDegree() = %d, expected %d.",
				line.k, got, line.min)
		}
	}
}
