package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/san-kum/racketlab/internal/table"
)

// WriteCSV serializes a results table: a header row of column names followed
// by one row per design. Values use the shortest representation that parses
// back to the identical float64, so the export is lossless.
func WriteCSV(w io.Writer, tbl *table.Table) error {
	cw := csv.NewWriter(w)

	names := tbl.Columns()
	if err := cw.Write(names); err != nil {
		return err
	}

	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = tbl.MustColumn(name)
	}

	row := make([]string, len(names))
	for i := 0; i < tbl.Len(); i++ {
		for j := range cols {
			row[j] = strconv.FormatFloat(cols[j][i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (*table.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: missing header row")
	}

	names := records[0]
	cols := make([][]float64, len(names))
	for i := range cols {
		cols[i] = make([]float64, 0, len(records)-1)
	}

	for rowIdx, record := range records[1:] {
		if len(record) != len(names) {
			return nil, fmt.Errorf("csv row %d: %d fields, header has %d", rowIdx+1, len(record), len(names))
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("csv row %d column %s: %w", rowIdx+1, names[j], err)
			}
			cols[j] = append(cols[j], v)
		}
	}

	tbl := table.New()
	for i, name := range names {
		tbl, err = tbl.WithColumn(name, cols[i])
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// ExportData is the JSON export schema for a run.
type ExportData struct {
	ID        string               `json:"id"`
	Label     string               `json:"label,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
	Samples   int                  `json:"samples"`
	Seed      int64                `json:"seed"`
	WSpeed    float64              `json:"w_speed"`
	WShock    float64              `json:"w_shock"`
	Columns   []string             `json:"columns"`
	Data      map[string][]float64 `json:"data"`
	Metrics   map[string]float64   `json:"metrics"`
}

// BuildExport assembles the JSON export payload for a run.
func BuildExport(meta *RunMetadata, results *table.Table) ExportData {
	data := make(map[string][]float64, len(results.Columns()))
	for _, name := range results.Columns() {
		src := results.MustColumn(name)
		col := make([]float64, len(src))
		copy(col, src)
		data[name] = col
	}

	return ExportData{
		ID:        meta.ID,
		Label:     meta.Label,
		Timestamp: meta.Timestamp,
		Samples:   meta.Samples,
		Seed:      meta.Seed,
		WSpeed:    meta.WSpeed,
		WShock:    meta.WShock,
		Columns:   results.Columns(),
		Data:      data,
		Metrics:   meta.Metrics,
	}
}
