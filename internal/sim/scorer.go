package sim

import (
	"github.com/san-kum/racketlab/internal/table"
)

// normEps guards min-max normalization of zero-range batches: an all-equal
// column normalizes to 0 instead of NaN.
const normEps = 1e-9

// Default sweet score weights.
const (
	DefaultWSpeed = 0.65
	DefaultWShock = 0.35
)

// ComputeSweetScore appends the composite sweet_score column. Exit speed
// (higher is better) and shock proxy (lower is better) are min-max
// normalized over the whole batch and combined as
//
//	sweet_score = wSpeed*vNorm - wShock*sNorm
//
// Scoring is batch-relative: the same row scores differently inside a
// different batch. Weights are arbitrary reals; they only rescale the score.
func ComputeSweetScore(results *table.Table, wSpeed, wShock float64) (*table.Table, error) {
	if err := results.Require(ColExitSpeed, ColShockProxy); err != nil {
		return nil, err
	}

	vExit := results.MustColumn(ColExitSpeed)
	shock := results.MustColumn(ColShockProxy)

	// Full-batch reduction first; normalization must not start before both
	// extrema are known.
	vNorm := minMaxNormalize(vExit)
	sNorm := minMaxNormalize(shock)

	score := make([]float64, len(vExit))
	for i := range score {
		score[i] = wSpeed*vNorm[i] - wShock*sNorm[i]
	}
	return results.WithColumn(ColSweetScore, score)
}

func minMaxNormalize(col []float64) []float64 {
	if len(col) == 0 {
		return nil
	}
	lo, hi := col[0], col[0]
	for _, v := range col {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(col))
	span := hi - lo + normEps
	for i, v := range col {
		out[i] = (v - lo) / span
	}
	return out
}
