package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/racketlab/internal/sim"
	"github.com/san-kum/racketlab/internal/table"
)

// Histogram buckets values into bins equal-width counts. Values on the top
// edge land in the last bin.
func Histogram(values []float64, bins int) []float64 {
	counts := make([]float64, bins)
	if len(values) == 0 || bins == 0 {
		return counts
	}

	lo, hi := bounds(values)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		counts[0] = float64(len(values))
		return counts
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}

// Dashboard renders the full terminal dashboard: output distributions plus
// a sweet-spot scatter with the top designs overlaid.
func Dashboard(results, top *table.Table) (string, error) {
	if err := results.Require(sim.ColExitSpeed, sim.ColShockProxy, sim.ColXNorm, sim.ColSweetScore); err != nil {
		return "", err
	}

	var b strings.Builder

	histPanel := func(title, col string) string {
		counts := Histogram(results.MustColumn(col), 40)
		graph := asciigraph.Plot(counts,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(title),
		)
		return Panel.Render(graph)
	}

	b.WriteString(histPanel("exit speed distribution (m/s)", sim.ColExitSpeed))
	b.WriteString("\n")
	b.WriteString(histPanel("shock proxy distribution", sim.ColShockProxy))
	b.WriteString("\n")

	scatter := ScatterPlot(
		results.MustColumn(sim.ColXNorm),
		results.MustColumn(sim.ColSweetScore),
		topColumn(top, sim.ColXNorm),
		topColumn(top, sim.ColSweetScore),
		70, 14,
	)
	caption := Subtle.Render("impact location (x_norm) vs sweet score; top designs included")
	b.WriteString(Panel.Render(scatter + caption))
	b.WriteString("\n")

	return b.String(), nil
}

func topColumn(top *table.Table, name string) []float64 {
	if top == nil || !top.Has(name) {
		return nil
	}
	return top.MustColumn(name)
}

// SummaryTable renders descriptive statistics as aligned rows.
func SummaryTable(sums []sim.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-12s %8s %10s %10s %10s %10s %10s %10s %10s\n",
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"))
	for _, s := range sums {
		b.WriteString(fmt.Sprintf("%-12s %8d %10.4f %10.4f %10.4f %10.4f %10.4f %10.4f %10.4f\n",
			s.Name, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max))
	}
	return b.String()
}
