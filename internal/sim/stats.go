package sim

import (
	"math"
	"sort"

	"github.com/san-kum/racketlab/internal/table"
)

// Summary holds descriptive statistics for one column of a results batch.
type Summary struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes summary statistics for the named columns, in order.
// Columns missing from the table are skipped.
func Describe(tbl *table.Table, cols []string) []Summary {
	out := make([]Summary, 0, len(cols))
	for _, name := range cols {
		if !tbl.Has(name) {
			continue
		}
		out = append(out, summarize(name, tbl.MustColumn(name)))
	}
	return out
}

func summarize(name string, col []float64) Summary {
	s := Summary{Name: name, Count: len(col)}
	if len(col) == 0 {
		return s
	}

	sorted := make([]float64, len(col))
	copy(sorted, col)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range col {
		sum += v
	}
	s.Mean = sum / float64(len(col))

	if len(col) > 1 {
		ss := 0.0
		for _, v := range col {
			d := v - s.Mean
			ss += d * d
		}
		s.Std = math.Sqrt(ss / float64(len(col)-1))
	}

	s.Min = sorted[0]
	s.Q25 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q75 = quantile(sorted, 0.75)
	s.Max = sorted[len(sorted)-1]
	return s
}

// quantile interpolates linearly between the two nearest order statistics.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
