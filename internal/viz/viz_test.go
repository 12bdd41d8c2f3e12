package viz

import (
	"strings"
	"testing"
)

func TestHistogram(t *testing.T) {
	values := []float64{0, 0.1, 0.2, 0.9, 1.0}
	counts := Histogram(values, 2)

	if len(counts) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(counts))
	}
	if counts[0] != 3 || counts[1] != 2 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestHistogramConstant(t *testing.T) {
	counts := Histogram([]float64{5, 5, 5}, 4)
	if counts[0] != 3 {
		t.Errorf("expected all values in first bin, got %v", counts)
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("expected total count 3, got %v", total)
	}
}

func TestHistogramEmpty(t *testing.T) {
	counts := Histogram(nil, 3)
	if len(counts) != 3 {
		t.Fatalf("expected 3 bins, got %d", len(counts))
	}
	for _, c := range counts {
		if c != 0 {
			t.Errorf("expected empty bins, got %v", counts)
		}
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot set at origin")
	}

	// Out-of-range sets are ignored.
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestScatterPlot(t *testing.T) {
	xs := []float64{0, 0.5, 1}
	ys := []float64{0, 1, 0}

	out := ScatterPlot(xs, ys, nil, nil, 10, 5)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}

	set := 0
	for _, line := range lines {
		for _, r := range line {
			if r != 0x2800 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("expected at least one lit cell")
	}
}

func TestScatterPlotDegenerate(t *testing.T) {
	// All points identical must not divide by zero.
	out := ScatterPlot([]float64{1, 1}, []float64{2, 2}, nil, nil, 5, 3)
	if out == "" {
		t.Error("expected canvas output")
	}
}

func TestScoreBar(t *testing.T) {
	if got := ScoreBar(0.5, 10); len([]rune(got)) != 10 {
		t.Errorf("expected width 10, got %d", len([]rune(got)))
	}
	if got := ScoreBar(2.0, 4); got != "████" {
		t.Errorf("expected clamped full bar, got %q", got)
	}
	if got := ScoreBar(-1.0, 4); got != "░░░░" {
		t.Errorf("expected clamped empty bar, got %q", got)
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{0, 1, 2, 3}, 4)
	if len([]rune(out)) == 0 {
		t.Error("expected sparkline output")
	}

	flat := Sparkline(nil, 6)
	if flat != "──────" {
		t.Errorf("expected flat line for empty input, got %q", flat)
	}
}
