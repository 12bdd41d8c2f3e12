package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/racketlab/internal/config"
	"github.com/san-kum/racketlab/internal/export"
	"github.com/san-kum/racketlab/internal/sim"
	"github.com/san-kum/racketlab/internal/store"
	"github.com/san-kum/racketlab/internal/table"
	"github.com/san-kum/racketlab/internal/tui"
	"github.com/san-kum/racketlab/internal/viz"
)

var (
	dataDir    string
	samples    int
	seed       int64
	wSpeed     float64
	wShock     float64
	topN       int
	workers    int
	csvPath    string
	jsonPath   string
	svgPath    string
	label      string
	noPlot     bool
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "racketlab",
		Short: "tennis racket impact and vibration design explorer",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".racketlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "sample the design space, simulate and rank",
		RunE:  runPipeline,
	}
	runCmd.Flags().IntVar(&samples, "n", config.DefaultSamples, "number of Monte Carlo samples")
	runCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	runCmd.Flags().Float64Var(&wSpeed, "w-speed", sim.DefaultWSpeed, "weight for exit speed in sweet score")
	runCmd.Flags().Float64Var(&wShock, "w-shock", sim.DefaultWShock, "weight for shock proxy in sweet score")
	runCmd.Flags().IntVar(&topN, "top", config.DefaultTopN, "number of top designs to display")
	runCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "evaluation worker goroutines")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "save full results to CSV (path)")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "save full results to JSON (path)")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "save dashboard figure to SVG (path)")
	runCmd.Flags().StringVar(&label, "label", "", "optional run label")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal dashboard")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "draw a design sample and print it as CSV",
		RunE:  sampleOnly,
	}
	sampleCmd.Flags().IntVar(&samples, "n", 20, "number of samples")
	sampleCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "render the dashboard for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	rescoreCmd := &cobra.Command{
		Use:   "rescore [run_id]",
		Short: "re-rank a stored run with different weights",
		Args:  cobra.ExactArgs(1),
		RunE:  rescoreRun,
	}
	rescoreCmd.Flags().Float64Var(&wSpeed, "w-speed", sim.DefaultWSpeed, "weight for exit speed")
	rescoreCmd.Flags().Float64Var(&wShock, "w-shock", sim.DefaultWShock, "weight for shock proxy")
	rescoreCmd.Flags().IntVar(&topN, "top", config.DefaultTopN, "number of top designs to display")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run results to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run results to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [run_id]",
		Short: "interactively browse a run's top designs",
		Args:  cobra.ExactArgs(1),
		RunE:  browseRun,
	}
	browseCmd.Flags().IntVar(&topN, "top", 30, "number of designs to browse")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark batch evaluation throughput",
		RunE:  benchEvaluator,
	}

	rootCmd.AddCommand(runCmd, sampleCmd, listCmd, showCmd, rescoreCmd,
		exportCSVCmd, exportJSONCmd, browseCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig picks a base config (preset or config file, not both) and
// applies explicitly-set CLI flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if preset != "" && configFile != "" {
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	}

	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("n") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("w-speed") {
		cfg.Weights.Speed = wSpeed
	}
	if cmd.Flags().Changed("w-shock") {
		cfg.Weights.Shock = wShock
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = topN
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, cfg.Validate()
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render("racketlab - racket design exploration"))
	fmt.Printf("  samples: %d  seed: %d  weights: speed=%.2f shock=%.2f\n\n",
		cfg.Samples, cfg.Seed, cfg.Weights.Speed, cfg.Weights.Shock)

	start := time.Now()

	designs, err := sim.SampleDesignSpace(cfg.Samples, cfg.Bounds, cfg.Seed)
	if err != nil {
		return err
	}

	results, err := sim.EvaluateParallel(context.Background(), designs, cfg.Constants, cfg.Seed, cfg.Workers)
	if err != nil {
		return err
	}

	results, err = sim.ComputeSweetScore(results, cfg.Weights.Speed, cfg.Weights.Shock)
	if err != nil {
		return err
	}

	top, err := sim.TopDesigns(results, cfg.TopN, nil)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	sums := sim.Describe(results, []string{sim.ColExitSpeed, sim.ColShockProxy, sim.ColSweetScore})
	fmt.Println(viz.Subtle.Render("summary statistics"))
	fmt.Print(viz.SummaryTable(sums))
	fmt.Println()

	fmt.Println(viz.Subtle.Render(fmt.Sprintf("top %d designs", top.Len())))
	if err := printTable(top); err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	meta := store.RunMetadata{
		Label:     label,
		Samples:   cfg.Samples,
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
		WSpeed:    cfg.Weights.Speed,
		WShock:    cfg.Weights.Shock,
		TopN:      cfg.TopN,
		Bounds:    cfg.Bounds,
		Constants: cfg.Constants,
		Metrics:   runMetrics(sums),
	}
	runID, err := st.Save(meta, results)
	if err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)

	if csvPath != "" {
		if err := writeCSVFile(csvPath, results); err != nil {
			return err
		}
		fmt.Printf("results saved to %s\n", csvPath)
	}
	if jsonPath != "" {
		saved, err := st.Load(runID)
		if err != nil {
			return err
		}
		if err := writeJSONFile(jsonPath, saved, results); err != nil {
			return err
		}
		fmt.Printf("results saved to %s\n", jsonPath)
	}
	if svgPath != "" {
		if err := export.WriteDashboard(svgPath, results, top); err != nil {
			return err
		}
		fmt.Printf("dashboard saved to %s\n", svgPath)
	}

	if !noPlot {
		dash, err := viz.Dashboard(results, top)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(dash)
	}

	return nil
}

func runMetrics(sums []sim.Summary) map[string]float64 {
	m := make(map[string]float64, len(sums)*2)
	for _, s := range sums {
		m["mean_"+s.Name] = s.Mean
		m["max_"+s.Name] = s.Max
	}
	return m
}

func sampleOnly(cmd *cobra.Command, args []string) error {
	designs, err := sim.SampleDesignSpace(samples, sim.DefaultBounds(), seed)
	if err != nil {
		return err
	}
	return store.WriteCSV(os.Stdout, designs)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tSAMPLES\tSEED\tW_SPEED\tW_SHOCK")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f\t%.2f\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Seed,
			run.WSpeed,
			run.WShock,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	top, err := sim.TopDesigns(results, meta.TopN, nil)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\nsamples: %d  seed: %d\n\n", meta.ID, meta.Samples, meta.Seed)
	dash, err := viz.Dashboard(results, top)
	if err != nil {
		return err
	}
	fmt.Print(dash)
	return nil
}

func rescoreRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	rescored, err := sim.ComputeSweetScore(results, wSpeed, wShock)
	if err != nil {
		return err
	}
	top, err := sim.TopDesigns(rescored, topN, nil)
	if err != nil {
		return err
	}

	fmt.Printf("rescored with speed=%.2f shock=%.2f\n\n", wSpeed, wShock)
	return printTable(top)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}
	return store.WriteCSV(os.Stdout, results)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(store.BuildExport(meta, results))
}

func browseRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}
	top, err := sim.TopDesigns(results, topN, nil)
	if err != nil {
		return err
	}
	return tui.Run(args[0], top)
}

func benchEvaluator(cmd *cobra.Command, args []string) error {
	sizes := []int{1000, 10000, 100000}
	workerCounts := []int{1, 2, 4, 8}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tWORKERS\tTIME\tROWS/SEC")

	for _, n := range sizes {
		designs, err := sim.SampleDesignSpace(n, sim.DefaultBounds(), config.DefaultSeed)
		if err != nil {
			return err
		}
		for _, wk := range workerCounts {
			start := time.Now()
			if _, err := sim.EvaluateParallel(context.Background(), designs, sim.DefaultConstants(), config.DefaultSeed, wk); err != nil {
				return err
			}
			elapsed := time.Since(start)
			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, wk, elapsed, float64(n)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func printTable(tbl *table.Table) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := "RANK"
	for _, name := range tbl.Columns() {
		header += "\t" + name
	}
	fmt.Fprintln(w, header+"\t")

	cols := make([][]float64, 0, len(tbl.Columns()))
	for _, name := range tbl.Columns() {
		cols = append(cols, tbl.MustColumn(name))
	}

	for i := 0; i < tbl.Len(); i++ {
		row := strconv.Itoa(i + 1)
		for _, col := range cols {
			row += "\t" + strconv.FormatFloat(col[i], 'f', 4, 64)
		}
		fmt.Fprintln(w, row+"\t")
	}
	return w.Flush()
}

func writeCSVFile(path string, tbl *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return store.WriteCSV(f, tbl)
}

func writeJSONFile(path string, meta *store.RunMetadata, results *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(store.BuildExport(meta, results))
}
