package sim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/racketlab/internal/table"
)

// SampleDesignSpace draws n independent uniform samples per design variable.
// Columns are drawn one variable at a time in DesignColumns order, so the
// same (n, bounds, seed) always reproduces the table bit for bit.
func SampleDesignSpace(n int, bounds Bounds, seed int64) (*table.Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	draws := []struct {
		name string
		r    Range
	}{
		{ColMRacket, bounds.MRacket},
		{ColKString, bounds.KString},
		{ColDamping, bounds.Damping},
		{ColXNorm, bounds.XNorm},
	}

	tbl := table.New()
	var err error
	for _, d := range draws {
		col := make([]float64, n)
		for i := range col {
			col[i] = d.r.Lo + rng.Float64()*(d.r.Hi-d.r.Lo)
		}
		tbl, err = tbl.WithColumn(d.name, col)
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
