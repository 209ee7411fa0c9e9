package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/programORdie2/verletlab/internal/analysis"
	"github.com/programORdie2/verletlab/internal/config"
	"github.com/programORdie2/verletlab/internal/experiment"
	"github.com/programORdie2/verletlab/internal/export"
	"github.com/programORdie2/verletlab/internal/gui"
	"github.com/programORdie2/verletlab/internal/metrics"
	"github.com/programORdie2/verletlab/internal/storage"
	"github.com/programORdie2/verletlab/internal/verlet"
	"github.com/programORdie2/verletlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	preset      string
	dt          float64
	frames      int
	benchFrames int
	frameRate   int
	label       string
	outFile     string
	seriesName  string
	svgSeries   string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "verletlab",
		Short: "verlet particle sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the windowed sandbox when no command given
			return runGUI(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".verletlab", "data directory")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed sandbox",
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "ticks per second")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal live view",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run recorded to the data directory",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	runCmd.Flags().StringVar(&label, "label", "", "run label (defaults to the preset name)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a recorded series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&seriesName, "series", "kinetic_energy", "series to analyze")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark solver throughput",
		RunE:  benchSolver,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 300, "frames per configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "run a parameter sweep as a parallel ensemble",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepParam,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames per run")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "lowest parameter value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "highest parameter value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of runs")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the final particle state (or a series) as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (defaults to <run_id>.svg)")
	exportSVGCmd.Flags().StringVar(&svgSeries, "series", "", "plot this series instead of the snapshot")

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		benchCmd, sweepCmd, presetsCmd, scenarioCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml, overrides preset)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "frame timestep in seconds")
}

// loadConfig resolves the run configuration: defaults, then preset,
// then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
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

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("frames") {
		cfg.Frames = frames
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}

	return cfg, nil
}

func simMetrics(cfg verlet.Config, frameDt float64) []verlet.Metric {
	subDt := frameDt / float64(cfg.SubSteps)
	return []verlet.Metric{
		metrics.NewKineticEnergy(subDt),
		metrics.NewMaxSpeed(subDt),
		metrics.NewContainment(cfg),
		metrics.NewOverlap(cfg.ParticleRadius),
	}
}

func runLabel() string {
	if label != "" {
		return label
	}
	if preset != "" {
		return preset
	}
	return "reference"
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := verlet.New(cfg.Sim())
	if err != nil {
		return err
	}

	return gui.Run(sim, cfg.Dt, cfg.FPS, "verletlab")
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := verlet.New(cfg.Sim())
	if err != nil {
		return err
	}

	m := viz.NewModel(sim, cfg.Dt, cfg.FPS, runLabel())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	vcfg := cfg.Sim()
	sim, err := verlet.New(vcfg)
	if err != nil {
		return err
	}

	runner := experiment.NewRunner(sim)
	for _, m := range simMetrics(vcfg, cfg.Dt) {
		runner.AddMetric(m)
	}

	fmt.Printf("running %d frames...\n", cfg.Frames)

	result, err := runner.Run(context.Background(), experiment.Config{
		Dt:       cfg.Dt,
		Frames:   cfg.Frames,
		Validate: true,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(runLabel(), vcfg, cfg.Dt, sim.Particles(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.FramesRun)
	fmt.Printf("particles: %d\n", sim.Count())
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	return nil
}

func printMetrics(vals map[string]float64) {
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, vals[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tFRAMES\tPARTICLES\tDT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4fs\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Particles,
			run.Dt,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("label: %s\n", meta.Label)
	fmt.Printf("samples: %d\n\n", meta.Frames)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data := series[name]
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	data, ok := series[seriesName]
	if !ok {
		names := make([]string, 0, len(series))
		for name := range series {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("no series %q in run (available: %v)", seriesName, names)
	}
	if len(data) < 4 {
		return fmt.Errorf("series too short to analyze")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("series: %s\n\n", seriesName)

	ps := analysis.PowerSpectrum(data)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", seriesName)),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(data, meta.Dt)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func benchSolver(cmd *cobra.Command, args []string) error {
	counts := []int{100, 500, 1000}
	subSteps := []int{4, 6, 8}

	fmt.Printf("benchmarking %d frames per configuration\n\n", benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tSUBSTEPS\tFRAMES\tTIME\tFRAMES/SEC")

	for _, count := range counts {
		for _, steps := range subSteps {
			vcfg := config.DefaultConfig().Sim()
			vcfg.MaxParticles = count
			vcfg.SubSteps = steps

			sim, err := verlet.New(vcfg)
			if err != nil {
				return err
			}

			runner := experiment.NewRunner(sim)
			result, err := runner.Run(context.Background(), experiment.Config{
				Dt:     config.DefaultDt,
				Frames: benchFrames,
			})
			if err != nil {
				return err
			}

			framesPerSec := float64(result.FramesRun) / result.Elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
				count, steps, result.FramesRun, result.Elapsed, framesPerSec)
		}
	}

	return w.Flush()
}

func sweepParam(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sweep := experiment.Sweep{
		Base:  cfg.Sim(),
		Param: args[0],
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
	}
	cfgs, values, err := sweep.Configs()
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s over %d runs of %d frames...\n\n", args[0], len(cfgs), cfg.Frames)

	results, err := experiment.RunEnsemble(context.Background(), cfgs,
		experiment.Config{Dt: cfg.Dt, Frames: cfg.Frames, Validate: true},
		func(c verlet.Config) []verlet.Metric { return simMetrics(c, cfg.Dt) })
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := args[0]
	for _, name := range names {
		header += "\t" + name
	}
	fmt.Fprintln(w, header)

	for i, result := range results {
		row := fmt.Sprintf("%.4f", values[i])
		for _, name := range names {
			row += fmt.Sprintf("\t%.6f", result.Metrics[name])
		}
		fmt.Fprintln(w, row)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARTICLES\tGRAVITY\tDAMPING\tRESTITUTION\tTURBULENCE")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t(%.0f, %.0f)\t%.4f\t%.2f\t%.0f\n",
			name,
			p.Particles.Max,
			p.Gravity.X, p.Gravity.Y,
			p.Solver.Damping,
			p.Solver.Restitution,
			p.Turbulence.Strength,
		)
	}

	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := experiment.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Println(scenario.Description)
	}
	fmt.Println()

	results, err := experiment.RunScenario(context.Background(), scenario,
		func(c verlet.Config) []verlet.Metric { return simMetrics(c, config.DefaultDt) })
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	initialized := false
	for _, res := range results {
		fmt.Printf("\n%s (%d frames):\n", res.Step.Label(), res.Result.FramesRun)
		printMetrics(res.Result.Metrics)

		if res.Step.SaveAs == "" {
			continue
		}
		if !initialized {
			if err := st.Init(); err != nil {
				return err
			}
			initialized = true
		}
		runID, err := st.Save(res.Step.SaveAs, res.Config, res.RunConfig.Dt, res.Particles, res.Result)
		if err != nil {
			return err
		}
		fmt.Printf("  saved as %s\n", runID)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// loadResult rebuilds an experiment result from a stored run.
func loadResult(st *storage.Store, runID string) (*storage.RunMetadata, *experiment.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	series, times, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}

	counts := make([]int, len(times))
	if countSeries, ok := series["count"]; ok {
		for i := range countSeries {
			counts[i] = int(countSeries[i])
		}
		delete(series, "count")
	}

	return meta, &experiment.Result{
		Times:     times,
		Counts:    counts,
		Series:    series,
		Metrics:   meta.Metrics,
		FramesRun: meta.Frames,
	}, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, result, err := loadResult(st, args[0])
	if err != nil {
		return err
	}
	if len(result.Times) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := loadResult(st, args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta.Label, meta.Dt, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	var svg string
	if svgSeries != "" {
		series, times, err := st.LoadSeries(runID)
		if err != nil {
			return err
		}
		data, ok := series[svgSeries]
		if !ok {
			return fmt.Errorf("no series %q in run", svgSeries)
		}
		svg = export.SeriesSVG(times, data, 800, 400, "#00ff00")
	} else {
		ps, err := st.LoadParticles(runID)
		if err != nil {
			return err
		}
		svg = export.SnapshotSVG(ps, meta.Config)
	}

	if svg == "" {
		return fmt.Errorf("nothing to render")
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}
