package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bifurc/internal/analysis"
	"github.com/san-kum/bifurc/internal/automation"
	"github.com/san-kum/bifurc/internal/config"
	"github.com/san-kum/bifurc/internal/render"
	"github.com/san-kum/bifurc/internal/storage"
	"github.com/san-kum/bifurc/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	// Sweep parameters
	configFile string
	preset     string
	rMin       float64
	rMax       float64
	rSteps     int
	xIn        float64
	transient  int
	samples    int
	workers    int
	save       bool
	// Rendering
	format  string
	output  string
	width   int
	height  int
	alpha   float64
	columns int
	rows    int
	// Orbit plot
	orbitR   float64
	orbitLag int
)

// lyapunovFloor and lyapunovCeiling bound the plotted exponents so the plot
// keeps a finite scale: superstable orbits give -Inf, escaping orbits
// (r > 4) give +Inf.
const (
	lyapunovFloor   = -4.0
	lyapunovCeiling = 4.0
)

// main registers the bifurc commands and exits with status 1 if a command
// returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "bifurc",
		Short:         "logistic map bifurcation diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bifurc", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep r and render the bifurcation diagram",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addSweepFlags(sweepCmd)
	addRenderFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "sweep with a live progress view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSweepFlags(liveCmd)
	addRenderFlags(liveCmd)
	liveCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "draw a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&columns, "cols", 100, "terminal plot width in characters")
	plotCmd.Flags().IntVar(&rows, "rows", 25, "terminal plot height in characters")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render a stored run to an image",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	addRenderFlags(renderCmd)

	orbitCmd := &cobra.Command{
		Use:   "orbit [run_id]",
		Short: "plot the captured samples for one r value",
		Args:  cobra.ExactArgs(1),
		RunE:  plotOrbit,
	}
	orbitCmd.Flags().Float64Var(&orbitR, "r", 3.5, "r value (nearest stored column is used)")
	orbitCmd.Flags().IntVar(&orbitLag, "lag", 1, "return map lag (0 disables the return map)")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "plot the Lyapunov exponent over the r range",
		Args:  cobra.NoArgs,
		RunE:  plotLyapunov,
	}
	addSweepFlags(lyapunovCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run outputs to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and outputs to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run the sweeps listed in a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&columns, "cols", 100, "terminal plot width in characters")
	batchCmd.Flags().IntVar(&rows, "rows", 25, "terminal plot height in characters")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time a sweep at different worker counts",
		Args:  cobra.NoArgs,
		RunE:  benchSweep,
	}
	addSweepFlags(benchCmd)

	rootCmd.AddCommand(sweepCmd, liveCmd, listCmd, plotCmd, renderCmd, orbitCmd, lyapunovCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, initCmd, batchCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "lowest r value")
	cmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "highest r value")
	cmd.Flags().IntVar(&rSteps, "steps", config.DefaultRSteps, "number of r values")
	cmd.Flags().Float64Var(&xIn, "x0", config.DefaultXIn, "initial state for every r")
	cmd.Flags().IntVar(&transient, "transient", config.DefaultTransient, "iterations discarded before sampling")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "stable outputs captured per r")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all CPUs)")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format: png, svg or ascii")
	cmd.Flags().StringVarP(&output, "out", "o", config.DefaultOutput, "output file (png, svg)")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "point opacity")
	cmd.Flags().IntVar(&columns, "cols", 100, "terminal plot width in characters")
	cmd.Flags().IntVar(&rows, "rows", 25, "terminal plot height in characters")
}

// resolveConfig layers the configuration: defaults, then preset, then the
// config file, then any flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("r-min") {
		cfg.Sweep.RMin = rMin
	}
	if flags.Changed("r-max") {
		cfg.Sweep.RMax = rMax
	}
	if flags.Changed("steps") {
		cfg.Sweep.RSteps = rSteps
	}
	if flags.Changed("x0") {
		cfg.Sweep.XIn = xIn
	}
	if flags.Changed("transient") {
		cfg.Sweep.Transient = transient
	}
	if flags.Changed("samples") {
		cfg.Sweep.Samples = samples
	}
	if flags.Changed("workers") {
		cfg.Sweep.Workers = workers
	}
	applyRenderFlags(cmd, &cfg.Render)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyRenderFlags(cmd *cobra.Command, rc *config.RenderConfig) {
	flags := cmd.Flags()
	if flags.Lookup("format") == nil {
		return
	}
	if flags.Changed("format") {
		rc.Format = format
	}
	if flags.Changed("out") {
		rc.Output = output
	} else if rc.Output == config.DefaultOutput && rc.Format == "svg" {
		rc.Output = strings.TrimSuffix(rc.Output, filepath.Ext(rc.Output)) + ".svg"
	}
	if flags.Changed("width") {
		rc.Width = width
	}
	if flags.Changed("height") {
		rc.Height = height
	}
	if flags.Changed("alpha") {
		rc.Alpha = alpha
	}
}

func sweepParams(sc config.SweepConfig) analysis.Params {
	return analysis.Params{
		RMin:      sc.RMin,
		RMax:      sc.RMax,
		RSteps:    sc.RSteps,
		XIn:       sc.XIn,
		Transient: sc.Transient,
		Samples:   sc.Samples,
		Workers:   sc.Workers,
	}
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	sc := cfg.Sweep
	slog.Info("sweep starting",
		"r_min", sc.RMin, "r_max", sc.RMax, "steps", sc.RSteps,
		"transient", sc.Transient, "samples", sc.Samples, "workers", sc.Workers)

	result, err := analysis.Run(ctx, sweepParams(sc))
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	slog.Info("sweep finished", "elapsed", result.Elapsed)
	fmt.Printf("wall clock time = %f\n", result.Elapsed.Seconds())

	return finishRun(cfg, result)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := cfg.Sweep
	title := fmt.Sprintf("sweeping r in [%g, %g]", sc.RMin, sc.RMax)
	p := tea.NewProgram(viz.NewSweepModel(title, sc.RSteps, cancel))

	params := sweepParams(sc)
	params.Progress = func(done, total int) {
		p.Send(viz.ProgressMsg{Done: done, Total: total})
	}
	go func() {
		result, err := analysis.Run(ctx, params)
		p.Send(viz.DoneMsg{Result: result, Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}

	m := final.(viz.SweepModel)
	switch {
	case m.Cancelled():
		fmt.Println("sweep cancelled")
		return nil
	case m.Err() != nil:
		return fmt.Errorf("sweep failed: %w", m.Err())
	}

	fmt.Printf("wall clock time = %f\n", m.Result().Elapsed.Seconds())
	return finishRun(cfg, m.Result())
}

// finishRun stores the result when --save is set and renders it.
func finishRun(cfg *config.Config, result *analysis.Result) error {
	if save {
		st := storage.New(dataDir)
		sc := cfg.Sweep
		meta := storage.RunMetadata{
			Preset:         preset,
			RMin:           sc.RMin,
			RMax:           sc.RMax,
			RSteps:         sc.RSteps,
			XIn:            sc.XIn,
			Transient:      sc.Transient,
			Samples:        sc.Samples,
			Workers:        sc.Workers,
			ElapsedSeconds: result.Elapsed.Seconds(),
		}
		runID, err := st.Save(meta, result.RVals, result.Outputs)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		slog.Info("run stored", "id", runID, "dir", dataDir)
		fmt.Printf("run id: %s\n", runID)
	}

	return renderDiagram(cfg.Render, result.RVals, result.Outputs)
}

func renderDiagram(rc config.RenderConfig, rVals []float64, outputs *analysis.Matrix) error {
	start := time.Now()
	s := render.FromMatrix(rVals, outputs, render.YlGnBu, rc.Alpha)

	if rc.Format == "ascii" {
		title := fmt.Sprintf("bifurcation diagram (%d r values x %d samples)", outputs.Cols(), outputs.Rows())
		fmt.Println(viz.Panel(title, viz.DiagramStyle.Render(render.ASCII(s, columns, rows))))
		return nil
	}

	f, err := os.Create(rc.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := render.DefaultOptions(rc.Width, rc.Height)
	switch rc.Format {
	case "svg":
		err = render.SVG(f, s, opts)
	default:
		err = render.PNG(f, s, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", rc.Output, err)
	}

	elapsed := time.Since(start)
	slog.Info("diagram written", "path", rc.Output, "format", rc.Format, "points", len(s.Points))
	fmt.Printf("plot time = %f\n", elapsed.Seconds())
	fmt.Printf("wrote %s\n", rc.Output)
	return nil
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tR RANGE\tSTEPS\tSAMPLES\tTRANSIENT\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t[%g, %g]\t%d\t%d\t%d\t%.3fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.RMin, run.RMax,
			run.RSteps,
			run.Samples,
			run.Transient,
			run.ElapsedSeconds,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	rc := config.DefaultConfig().Render
	rc.Format = "ascii"
	return renderStored(args[0], rc)
}

func renderRun(cmd *cobra.Command, args []string) error {
	rc := config.DefaultConfig().Render
	applyRenderFlags(cmd, &rc)
	cfg := config.Config{Sweep: config.DefaultConfig().Sweep, Render: rc}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return renderStored(args[0], rc)
}

func renderStored(runID string, rc config.RenderConfig) error {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rVals, outputs, err := st.LoadOutputs(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	return renderDiagram(rc, rVals, outputs)
}

func plotOrbit(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rVals, outputs, err := st.LoadOutputs(runID)
	if err != nil {
		return err
	}
	if len(rVals) == 0 || outputs.Rows() == 0 {
		return fmt.Errorf("no data to plot")
	}

	j := nearest(rVals, orbitR)
	r := rVals[j]
	data := finite(outputs.Column(j))
	if len(data) == 0 {
		return fmt.Errorf("orbit at r=%g diverged, nothing to plot", r)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("x_n at r = %.6f", r)),
	)
	fmt.Println(graph)
	fmt.Println()

	if points := analysis.ReturnMap(data, orbitLag); len(points) > 0 {
		fmt.Println(viz.Panel(fmt.Sprintf("return map, lag %d", orbitLag),
			viz.DiagramStyle.Render(render.ASCII(returnMapScatter(points), 60, 20))))
		fmt.Println()
	}

	lambda := analysis.LyapunovExponent(r, meta.XIn, meta.Transient, outputs.Rows())
	fmt.Println(viz.Field("r", fmt.Sprintf("%.6f (column %d)", r, j)))
	fmt.Println(viz.Field("samples", fmt.Sprintf("%d", len(data))))
	fmt.Println(viz.Field("lyapunov", fmt.Sprintf("%.4f", lambda)))
	return nil
}

func returnMapScatter(points []analysis.PhasePoint) render.Scatter {
	s := render.Scatter{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	c := render.YlGnBu.NRGBA(1, 1)
	for _, p := range points {
		s.Points = append(s.Points, render.Point{X: p.X, Y: p.Y, Color: c})
	}
	return s
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	slog.Info("scenario loaded", "name", scenario.Name, "steps", len(scenario.Steps))
	results, err := automation.RunScenario(ctx, scenario, storage.New(dataDir),
		func(rc config.RenderConfig, result *analysis.Result) error {
			fmt.Printf("wall clock time = %f\n", result.Elapsed.Seconds())
			return renderDiagram(rc, result.RVals, result.Outputs)
		})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tR VALUES\tSAMPLES\tELAPSED\tRUN ID")
	for _, res := range results {
		id := res.RunID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3fs\t%s\n",
			res.Name, res.Result.Outputs.Cols(), res.Result.Outputs.Rows(),
			res.Result.Elapsed.Seconds(), id)
	}
	if flushErr := w.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}

func plotLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc := cfg.Sweep
	if sc.RSteps == 0 || sc.Samples == 0 {
		return fmt.Errorf("no data to plot")
	}

	start := time.Now()
	rVals := analysis.Linspace(sc.RMin, sc.RMax, sc.RSteps)
	spectrum := analysis.LyapunovSpectrum(rVals, sc.XIn, sc.Transient, sc.Samples)
	slog.Info("lyapunov spectrum computed", "steps", len(rVals), "elapsed", time.Since(start))

	chaotic, escaped := clampSpectrum(spectrum)

	graph := asciigraph.Plot(spectrum,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("lyapunov exponent, r in [%g, %g]", sc.RMin, sc.RMax)),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Println(viz.Field("chaotic", fmt.Sprintf("%d/%d r values", chaotic, len(rVals))))
	if escaped > 0 {
		fmt.Println(viz.Field("escaped", fmt.Sprintf("%d/%d r values", escaped, len(rVals))))
	}
	return nil
}

// clampSpectrum replaces non-finite and out-of-range exponents in place with
// lyapunovFloor or lyapunovCeiling. It counts finite positive exponents as
// chaotic and +Inf ones as escaped.
func clampSpectrum(spectrum []float64) (chaotic, escaped int) {
	for i, v := range spectrum {
		switch {
		case math.IsInf(v, 1):
			escaped++
		case v > 0:
			chaotic++
		}
		switch {
		case math.IsNaN(v) || v < lyapunovFloor:
			spectrum[i] = lyapunovFloor
		case v > lyapunovCeiling:
			spectrum[i] = lyapunovCeiling
		}
	}
	return chaotic, escaped
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rVals, outputs, err := st.LoadOutputs(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, rVals, outputs)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rVals, outputs, err := st.LoadOutputs(runID)
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, rVals, outputs)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tR RANGE\tSTEPS\tX0\tTRANSIENT\tSAMPLES")

	for _, name := range config.ListPresets() {
		sc := config.Presets[name]
		fmt.Fprintf(w, "%s\t[%g, %g]\t%d\t%g\t%d\t%d\n",
			name, sc.RMin, sc.RMax, sc.RSteps, sc.XIn, sc.Transient, sc.Samples)
	}
	return w.Flush()
}

func benchSweep(cmd *cobra.Command, args []string) error {
	if preset == "" && configFile == "" {
		preset = "quick"
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	counts := []int{1, 2, 4, runtime.NumCPU()}
	if cmd.Flags().Changed("workers") {
		counts = []int{cfg.Sweep.Workers}
	}

	sc := cfg.Sweep
	fmt.Printf("benchmarking %d r values x %d samples, %d transient iterations\n\n",
		sc.RSteps, sc.Samples, sc.Transient)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tTIME\tITERATIONS/SEC\tSPEEDUP")

	iterations := float64(sc.RSteps) * float64(sc.Transient+sc.Samples)
	var baseline time.Duration
	seen := make(map[int]bool)
	for _, n := range counts {
		if seen[n] {
			continue
		}
		seen[n] = true

		params := sweepParams(sc)
		params.Workers = n
		result, err := analysis.Run(ctx, params)
		if err != nil {
			return err
		}
		if baseline == 0 {
			baseline = result.Elapsed
		}

		fmt.Fprintf(w, "%d\t%v\t%.3g\t%.2fx\n",
			n, result.Elapsed.Round(time.Microsecond),
			iterations/result.Elapsed.Seconds(),
			baseline.Seconds()/result.Elapsed.Seconds())
	}

	return w.Flush()
}

// nearest returns the index of the value in vals closest to target.
func nearest(vals []float64, target float64) int {
	best := 0
	for i, v := range vals {
		if math.Abs(v-target) < math.Abs(vals[best]-target) {
			best = i
		}
	}
	return best
}

func finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
