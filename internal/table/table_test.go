package table

import (
	"errors"
	"testing"
)

func buildTable(t *testing.T, cols map[string][]float64, order []string) *Table {
	t.Helper()
	tbl := New()
	var err error
	for _, name := range order {
		tbl, err = tbl.WithColumn(name, cols[name])
		if err != nil {
			t.Fatalf("with column %s: %v", name, err)
		}
	}
	return tbl
}

func TestTableWithColumn(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{
		"a": {1, 2, 3},
		"b": {4, 5, 6},
	}, []string{"a", "b"})

	if tbl.Len() != 3 {
		t.Errorf("expected 3 rows, got %d", tbl.Len())
	}

	cols := tbl.Columns()
	if len(cols) != 2 || cols[0] != "a" || cols[1] != "b" {
		t.Errorf("unexpected column order: %v", cols)
	}

	_, err := tbl.WithColumn("c", []float64{1, 2})
	if err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestTableWithColumnImmutable(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{"a": {1, 2}}, []string{"a"})

	ext, err := tbl.WithColumn("b", []float64{3, 4})
	if err != nil {
		t.Fatalf("with column: %v", err)
	}

	if tbl.Has("b") {
		t.Error("original table gained a column")
	}
	if !ext.Has("b") {
		t.Error("extended table missing new column")
	}

	// Mutating the extended table's data must not leak back.
	ext.MustColumn("a")[0] = 99
	if tbl.MustColumn("a")[0] != 1 {
		t.Error("extended table shares backing storage with original")
	}
}

func TestTableRequire(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{"a": {1}}, []string{"a"})

	if err := tbl.Require("a"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := tbl.Require("a", "missing")
	if err == nil {
		t.Fatal("expected schema error")
	}
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	if se.Column != "missing" {
		t.Errorf("expected column 'missing', got %q", se.Column)
	}
}

func TestTableSelectDropsUnknown(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{
		"a": {1, 2},
		"b": {3, 4},
	}, []string{"a", "b"})

	sel := tbl.Select([]string{"b", "nope", "a"})

	cols := sel.Columns()
	if len(cols) != 2 || cols[0] != "b" || cols[1] != "a" {
		t.Errorf("unexpected selection: %v", cols)
	}
	if sel.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", sel.Len())
	}
}

func TestTableTopByDesc(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{
		"score": {0.2, 0.9, 0.5, 0.9, 0.1},
		"id":    {0, 1, 2, 3, 4},
	}, []string{"score", "id"})

	top, err := tbl.TopByDesc("score", 3)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}

	if top.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", top.Len())
	}

	ids := top.MustColumn("id")
	// Tie between rows 1 and 3 keeps input order.
	if ids[0] != 1 || ids[1] != 3 || ids[2] != 2 {
		t.Errorf("unexpected order: %v", ids)
	}
}

func TestTableTopByDescOverflow(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{"score": {1, 3, 2}}, []string{"score"})

	top, err := tbl.TopByDesc("score", 10)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if top.Len() != 3 {
		t.Errorf("expected all 3 rows, got %d", top.Len())
	}

	scores := top.MustColumn("score")
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Errorf("scores not non-increasing: %v", scores)
		}
	}
}

func TestTableTopByDescMissingColumn(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{"a": {1}}, []string{"a"})
	if _, err := tbl.TopByDesc("score", 1); err == nil {
		t.Error("expected schema error")
	}
}

func TestTableRow(t *testing.T) {
	tbl := buildTable(t, map[string][]float64{
		"a": {1, 2},
		"b": {3, 4},
	}, []string{"a", "b"})

	row := tbl.Row(1)
	if row["a"] != 2 || row["b"] != 4 {
		t.Errorf("unexpected row: %v", row)
	}
}
