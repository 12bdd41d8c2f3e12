package table

import (
	"fmt"
	"sort"
)

// Table is a column-oriented batch of float64 data. Columns keep their
// insertion order and must all have the same length. Rows are identified by
// index 0..Len()-1.
type Table struct {
	names []string
	cols  map[string][]float64
}

func New() *Table {
	return &Table{
		names: make([]string, 0),
		cols:  make(map[string][]float64),
	}
}

// Len returns the number of rows. An empty table has zero rows.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the backing slice for a column. Callers must not mutate it;
// use WithColumn to derive a new table instead.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, &SchemaError{Column: name}
	}
	return col, nil
}

// MustColumn is Column for callers that have already validated the schema
// via Require.
func (t *Table) MustColumn(name string) []float64 {
	col, ok := t.cols[name]
	if !ok {
		panic(fmt.Sprintf("table: no column %q", name))
	}
	return col
}

// Require fails with a SchemaError naming the first missing column.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if !t.Has(name) {
			return &SchemaError{Column: name}
		}
	}
	return nil
}

func (t *Table) Clone() *Table {
	c := New()
	for _, name := range t.names {
		c.names = append(c.names, name)
		col := make([]float64, len(t.cols[name]))
		copy(col, t.cols[name])
		c.cols[name] = col
	}
	return c
}

// WithColumn returns a copy of the table extended with the given column.
// The receiver is never mutated. Replacing an existing column keeps its
// original position. The new column must match the table's row count.
func (t *Table) WithColumn(name string, values []float64) (*Table, error) {
	if t.Len() > 0 && len(values) != t.Len() {
		return nil, fmt.Errorf("table: column %q has %d rows, table has %d", name, len(values), t.Len())
	}
	c := t.Clone()
	col := make([]float64, len(values))
	copy(col, values)
	if !c.Has(name) {
		c.names = append(c.names, name)
	}
	c.cols[name] = col
	return c, nil
}

// Select projects the table onto the named columns, preserving the requested
// order. Names not present in the table are silently dropped.
func (t *Table) Select(names []string) *Table {
	c := New()
	for _, name := range names {
		col, ok := t.cols[name]
		if !ok {
			continue
		}
		cp := make([]float64, len(col))
		copy(cp, col)
		c.names = append(c.names, name)
		c.cols[name] = cp
	}
	return c
}

// TakeRows builds a new table from the given row indices, in order.
func (t *Table) TakeRows(idx []int) *Table {
	c := New()
	for _, name := range t.names {
		src := t.cols[name]
		col := make([]float64, len(idx))
		for i, j := range idx {
			col[i] = src[j]
		}
		c.names = append(c.names, name)
		c.cols[name] = col
	}
	return c
}

// TopByDesc returns the n rows with the largest values in the given column,
// sorted descending. Ties keep their original row order. When n exceeds the
// row count, all rows are returned sorted.
func (t *Table) TopByDesc(name string, n int) (*Table, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, &SchemaError{Column: name}
	}

	idx := make([]int, len(col))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return col[idx[a]] > col[idx[b]]
	})

	if n > len(idx) {
		n = len(idx)
	}
	if n < 0 {
		n = 0
	}
	return t.TakeRows(idx[:n]), nil
}

// Row returns a name→value view of a single row.
func (t *Table) Row(i int) map[string]float64 {
	out := make(map[string]float64, len(t.names))
	for _, name := range t.names {
		out[name] = t.cols[name][i]
	}
	return out
}
