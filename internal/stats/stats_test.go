package stats

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestComputeThreeValues(t *testing.T) {
	s := Compute([]float64{1, 4, 7})
	if s.Mean != 4.0 {
		t.Fatalf("mean = %v, want 4", s.Mean)
	}
	if s.Median != 4.0 {
		t.Fatalf("median = %v, want 4", s.Median)
	}
	// population std dev: sqrt(((1-4)^2+(4-4)^2+(7-4)^2)/3) = sqrt(6)
	if !almostEqual(s.StdDev, math.Sqrt(6), 1e-12) {
		t.Fatalf("std dev = %v, want %v", s.StdDev, math.Sqrt(6))
	}
	if s.Min != 1.0 || s.Max != 7.0 {
		t.Fatalf("min/max = %v/%v, want 1/7", s.Min, s.Max)
	}
}

func TestComputeEvenCount(t *testing.T) {
	s := Compute([]float64{1, 4})
	if s.Mean != 2.5 {
		t.Fatalf("mean = %v, want 2.5", s.Mean)
	}
	if s.Median != 2.5 {
		t.Fatalf("median = %v, want 2.5", s.Median)
	}
	// sqrt(((1-2.5)^2+(4-2.5)^2)/2) = sqrt(2.25) = 1.5 exactly
	if s.StdDev != 1.5 {
		t.Fatalf("std dev = %v, want 1.5", s.StdDev)
	}
	if s.Min != 1.0 || s.Max != 4.0 {
		t.Fatalf("min/max = %v/%v, want 1/4", s.Min, s.Max)
	}
}

func TestComputeEmptyIsAllNaN(t *testing.T) {
	s := Compute(nil)
	for name, v := range map[string]float64{
		"mean": s.Mean, "median": s.Median, "std dev": s.StdDev, "min": s.Min, "max": s.Max,
	} {
		if !math.IsNaN(v) {
			t.Fatalf("%s = %v, want NaN", name, v)
		}
	}
}

func TestComputeSingleValue(t *testing.T) {
	s := Compute([]float64{5})
	if s.Mean != 5 || s.Median != 5 || s.Min != 5 || s.Max != 5 {
		t.Fatalf("unexpected summary: %#v", s)
	}
	// population formula is defined for n=1
	if s.StdDev != 0 {
		t.Fatalf("std dev = %v, want 0", s.StdDev)
	}
}

func TestComputeOrderInvariance(t *testing.T) {
	orders := [][]float64{
		{1, 2, 4, 5, 7, 8},
		{8, 7, 5, 4, 2, 1},
		{4, 8, 1, 7, 2, 5},
	}
	want := Compute(orders[0])
	for _, vals := range orders[1:] {
		if got := Compute(vals); got != want {
			t.Fatalf("Compute(%v) = %#v, want %#v", vals, got, want)
		}
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	vals := []float64{7, 1, 4}
	Compute(vals)
	if !reflect.DeepEqual(vals, []float64{7, 1, 4}) {
		t.Fatalf("input mutated: %v", vals)
	}
}

func TestComputeAll(t *testing.T) {
	got := ComputeAll([][]float64{{1, 4, 7}, {2, 5, 8}, nil})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Mean != 4 || got[1].Mean != 5 {
		t.Fatalf("means = %v/%v, want 4/5", got[0].Mean, got[1].Mean)
	}
	if !almostEqual(got[1].StdDev, math.Sqrt(6), 1e-12) {
		t.Fatalf("std dev = %v, want %v", got[1].StdDev, math.Sqrt(6))
	}
	if !math.IsNaN(got[2].Mean) {
		t.Fatalf("empty column mean = %v, want NaN", got[2].Mean)
	}
}
