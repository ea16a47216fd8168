package stats

import (
	"math"
	"testing"
)

func TestRelErr(t *testing.T) {
	approx := []float64{1.1, 1.9, 4.0}
	truth := []float64{1.0, 2.0, 4.0}

	errs := RelErr(approx, truth)
	expected := []float64{0.1, 0.05, 0}
	if len(errs) != len(truth) {
		t.Fatalf("RelErr returned %d values for %d inputs.",
			len(errs), len(truth))
	}
	for i := range errs {
		if math.Abs(errs[i]-expected[i]) > 1e-14 {
			t.Errorf("%d) RelErr = %g, expected %g.",
				i, errs[i], expected[i])
		}
	}
}

func TestRelErrUnguarded(t *testing.T) {
	// The naive formula blows up on zero truth values. That behavior is
	// kept, not masked.
	errs := RelErr([]float64{1}, []float64{0})
	if !math.IsInf(errs[0], 1) {
		t.Errorf("RelErr against a zero truth value = %g, expected +Inf.",
			errs[0])
	}
}

func TestRelErrFloor(t *testing.T) {
	errs := RelErrFloor([]float64{1, 2.2}, []float64{0, 2}, 0.5)
	if errs[0] != 2 {
		t.Errorf("Clamped error = %g, expected 2.", errs[0])
	}
	if math.Abs(errs[1]-0.1) > 1e-14 {
		t.Errorf("Unclamped error = %g, expected 0.1.", errs[1])
	}
}

func TestAbsErr(t *testing.T) {
	errs := AbsErr([]float64{1, 5}, []float64{3, 4})
	if errs[0] != 2 || errs[1] != 1 {
		t.Errorf("AbsErr = %v, expected [2 1].", errs)
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RelErr accepted vectors of different lengths.")
		}
	}()
	RelErr([]float64{1, 2}, []float64{1})
}

func TestMax(t *testing.T) {
	xs := []float64{0.3, -2, 7, 1}
	if got := Max(xs); got != 7 {
		t.Errorf("Max = %g, expected 7.", got)
	}
	for _, x := range xs {
		if x > Max(xs) {
			t.Errorf("Element %g exceeds the reported maximum.", x)
		}
	}
}

func TestPopStd(t *testing.T) {
	// Population formula: denominator n, not n - 1.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := PopStd(xs); math.Abs(got-2) > 1e-14 {
		t.Errorf("PopStd = %g, expected 2.", got)
	}

	if got := PopStd([]float64{3, 3, 3}); got != 0 {
		t.Errorf("PopStd of a constant vector = %g, expected 0.", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %g, expected 2.5.", got)
	}
}

func TestOutArrayReuse(t *testing.T) {
	out := make([]float64, 2)
	res := RelErr([]float64{1, 2}, []float64{1, 1}, out)
	if &res[0] != &out[0] {
		t.Error("RelErr did not use the supplied out array.")
	}
}
