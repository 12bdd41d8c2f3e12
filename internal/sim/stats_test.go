package sim

import (
	"math"
	"testing"

	"github.com/san-kum/racketlab/internal/table"
)

func TestDescribe(t *testing.T) {
	tbl := table.New()
	tbl, _ = tbl.WithColumn("a", []float64{1, 2, 3, 4, 5})

	sums := Describe(tbl, []string{"a", "missing"})
	if len(sums) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(sums))
	}

	s := sums[0]
	if s.Count != 5 {
		t.Errorf("count = %d, want 5", s.Count)
	}
	if s.Mean != 3 {
		t.Errorf("mean = %v, want 3", s.Mean)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("min/max = %v/%v, want 1/5", s.Min, s.Max)
	}
	if s.Median != 3 {
		t.Errorf("median = %v, want 3", s.Median)
	}
	if s.Q25 != 2 || s.Q75 != 4 {
		t.Errorf("quartiles = %v/%v, want 2/4", s.Q25, s.Q75)
	}
	if math.Abs(s.Std-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("std = %v, want %v", s.Std, math.Sqrt(2.5))
	}
}

func TestDescribeSingleValue(t *testing.T) {
	tbl := table.New()
	tbl, _ = tbl.WithColumn("a", []float64{7})

	s := Describe(tbl, []string{"a"})[0]
	if s.Std != 0 {
		t.Errorf("std of single value = %v, want 0", s.Std)
	}
	if s.Median != 7 || s.Q25 != 7 || s.Q75 != 7 {
		t.Errorf("quantiles of single value should all be 7: %+v", s)
	}
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{0, 10}
	if q := quantile(sorted, 0.5); q != 5 {
		t.Errorf("quantile(0.5) = %v, want 5", q)
	}
	if q := quantile(sorted, 0.25); q != 2.5 {
		t.Errorf("quantile(0.25) = %v, want 2.5", q)
	}
}
