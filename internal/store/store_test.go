package store

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/racketlab/internal/sim"
	"github.com/san-kum/racketlab/internal/table"
)

func testResults(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New()
	var err error
	for _, col := range []struct {
		name string
		data []float64
	}{
		{"m_racket", []float64{0.31, 0.29}},
		{"v_exit", []float64{27.123456789012345, 31.5}},
		{"sweet_score", []float64{0.42, -0.17}},
	} {
		tbl, err = tbl.WithColumn(col.name, col.data)
		if err != nil {
			t.Fatalf("with column: %v", err)
		}
	}
	return tbl
}

func testMeta() RunMetadata {
	return RunMetadata{
		Samples:   2,
		Seed:      7,
		Workers:   1,
		WSpeed:    0.65,
		WShock:    0.35,
		TopN:      15,
		Bounds:    sim.DefaultBounds(),
		Constants: sim.DefaultConstants(),
		Metrics:   map[string]float64{"mean_v_exit": 29.3},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testResults(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.Seed != 7 {
		t.Errorf("expected seed 7, got %d", meta.Seed)
	}
	if meta.Metrics["mean_v_exit"] != 29.3 {
		t.Errorf("metrics not round-tripped: %v", meta.Metrics)
	}

	results, err := st.LoadResults(runID)
	if err != nil {
		t.Fatalf("load results failed: %v", err)
	}
	if results.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", results.Len())
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), testResults(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testResults(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, runID, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(dir, runID, "results.csv")); os.IsNotExist(err) {
		t.Error("results.csv not created")
	}
}

func TestCSVRoundTripExact(t *testing.T) {
	tbl := testResults(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tbl); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	for _, name := range tbl.Columns() {
		orig := tbl.MustColumn(name)
		got := back.MustColumn(name)
		for i := range orig {
			if orig[i] != got[i] {
				t.Errorf("%s[%d] lost precision: wrote %v, read %v", name, i, orig[i], got[i])
			}
		}
	}
}

func TestCSVRoundTripExtremes(t *testing.T) {
	tbl := table.New()
	tbl, _ = tbl.WithColumn("v", []float64{
		math.Pi, 1e-300, 1e300, -0.0, math.Nextafter(1, 2),
	})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tbl); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	orig := tbl.MustColumn("v")
	got := back.MustColumn("v")
	for i := range orig {
		if orig[i] != got[i] {
			t.Errorf("v[%d]: wrote %v, read %v", i, orig[i], got[i])
		}
	}
}

func TestReadCSVMalformed(t *testing.T) {
	if _, err := ReadCSV(bytes.NewBufferString("a,b\n1\n")); err == nil {
		t.Error("expected error for ragged row")
	}
	if _, err := ReadCSV(bytes.NewBufferString("a,b\n1,notanumber\n")); err == nil {
		t.Error("expected error for non-numeric field")
	}
}

func TestBuildExport(t *testing.T) {
	tbl := testResults(t)
	meta := testMeta()
	meta.ID = "abc"

	data := BuildExport(&meta, tbl)
	if data.ID != "abc" {
		t.Errorf("expected id abc, got %s", data.ID)
	}
	if len(data.Columns) != 3 {
		t.Errorf("expected 3 columns, got %v", data.Columns)
	}
	if len(data.Data["v_exit"]) != 2 {
		t.Errorf("expected 2 v_exit values, got %v", data.Data["v_exit"])
	}
}
