package sim

import (
	"github.com/san-kum/racketlab/internal/table"
)

// TopColumns is the default projection for ranked output, score first.
var TopColumns = []string{
	ColSweetScore, ColExitSpeed, ColShockProxy,
	ColMRacket, ColKString, ColDamping, ColXNorm,
}

// TopDesigns returns the n highest-scoring rows, sorted descending by
// sweet_score with ties kept in input row order, projected onto cols.
// Requested columns missing from the table are dropped silently; asking for
// more rows than exist returns everything sorted.
func TopDesigns(results *table.Table, n int, cols []string) (*table.Table, error) {
	if cols == nil {
		cols = TopColumns
	}
	top, err := results.TopByDesc(ColSweetScore, n)
	if err != nil {
		return nil, err
	}
	return top.Select(cols), nil
}
