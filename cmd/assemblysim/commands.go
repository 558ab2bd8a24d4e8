package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/config"
	"github.com/san-kum/selfassembly/internal/experiment"
	"github.com/san-kum/selfassembly/internal/export"
	"github.com/san-kum/selfassembly/internal/logging"
	"github.com/san-kum/selfassembly/internal/sim"
	"github.com/san-kum/selfassembly/internal/viz"
	"github.com/spf13/cobra"
)

const svgScale = 60.0

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.LogLevel, os.Stderr)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(metricNames, newLogger(cfg)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %d particles for %d steps...\n", cfg.Model.Particles, cfg.Steps)
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	unassembled, assembled := result.Final.Counts()
	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "seed: %d (%s streams)\n", result.Seed, result.Streams)
	fmt.Fprintf(out, "steps: %d\n", result.StepsTaken)
	fmt.Fprintf(out, "assembled: %d  unassembled: %d  fraction: %.4f\n", assembled, unassembled, result.Final.AssembledFraction())
	printMetrics(out, result.Metrics)

	if !noPlot && len(result.Fraction) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotFraction(result.Fraction, 60, 10, "assembled fraction"))
	}

	if err := writeRunOutputs(result, cfg.Params().Bounds()); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "invariant: %v\n", e)
		}
		return fmt.Errorf("%d invariant violation(s)", len(result.Errors))
	}
	return err
}

func printMetrics(w io.Writer, metrics map[string]float64) {
	if len(metrics) == 0 {
		return
	}
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\nmetrics:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%.6f\n", name, metrics[name])
	}
	tw.Flush()
}

func writeRunOutputs(result *sim.Result, bounds assembly.Bounds) error {
	if csvOut != "" {
		if err := writeFile(csvOut, func(w io.Writer) error { return export.WriteTimelineCSV(w, result) }); err != nil {
			return err
		}
	}
	if snapshotOut != "" {
		if err := writeFile(snapshotOut, func(w io.Writer) error { return export.WriteSnapshotCSV(w, result.Final) }); err != nil {
			return err
		}
	}
	if svgOut != "" {
		if err := writeFile(svgOut, func(w io.Writer) error {
			_, err := io.WriteString(w, export.SnapshotSVG(result.Final, bounds, svgScale))
			return err
		}); err != nil {
			return err
		}
	}
	if pngOut != "" {
		if err := writeFile(pngOut, func(w io.Writer) error { return export.WriteFractionChart(w, result) }); err != nil {
			return err
		}
	}
	if jsonOut != "" {
		if err := writeFile(jsonOut, func(w io.Writer) error { return export.WriteJSON(w, result) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(metricNames, newLogger(cfg)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %d runs (seeds %d..%d)...\n", runs, cfg.Seed, cfg.Seed+uint64(max(runs, 1)-1))
	start := time.Now()

	results, sum, err := exp.RunEnsemble(ctx, runs)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "completed in %v\n", time.Since(start))

	violations := 0
	for _, r := range results {
		violations += len(r.Errors)
	}

	if n := len(sum.Mean); n > 0 {
		fmt.Fprintf(out, "final fraction: %.4f ± %.4f at step %d\n", sum.Mean[n-1], sum.StdDev[n-1], sum.Times[n-1])
	}
	printMetrics(out, sum.Metrics)

	if !noPlot && len(sum.Mean) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotFraction(sum.Mean, 60, 10, "mean assembled fraction"))
	}

	if csvOut != "" {
		if err := writeFile(csvOut, func(w io.Writer) error { return export.WriteSummaryCSV(w, sum) }); err != nil {
			return err
		}
	}
	if pngOut != "" {
		if err := writeFile(pngOut, func(w io.Writer) error { return export.WriteEnsembleChart(w, sum) }); err != nil {
			return err
		}
	}

	if violations > 0 {
		return fmt.Errorf("%d invariant violation(s) across runs", violations)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	mode, err := assembly.ParseStreamMode(cfg.Streams)
	if err != nil {
		return err
	}

	maxSteps := cfg.Steps
	if forever {
		maxSteps = 0
	}
	viz.SetTheme(theme)

	m, err := viz.NewModel(cfg.Params(),
		viz.LiveConfig{MaxSteps: maxSteps, FPS: frameRate, GIFPath: gifOut},
		assembly.WithSeed(cfg.Seed),
		assembly.WithStreams(mode),
		assembly.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("live view: %w", err)
	}
	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d particles, %d steps\n\n", cfg.Model.Particles, cfg.Steps)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "streams\tworkers\telapsed\tsteps/s\tupdates/s\tfraction")
	for _, mode := range []assembly.StreamMode{assembly.StreamShared, assembly.StreamPerParticle} {
		model, err := assembly.New(cfg.Params(),
			assembly.WithSeed(cfg.Seed),
			assembly.WithStreams(mode),
			assembly.WithWorkers(cfg.Workers),
		)
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < cfg.Steps; i++ {
			model.Step()
		}
		elapsed := time.Since(start)

		rate := float64(cfg.Steps) / elapsed.Seconds()
		fraction := model.Snapshot().AssembledFraction()
		logger.Debug("bench finished", "streams", mode.String(), "elapsed", elapsed)
		fmt.Fprintf(tw, "%s\t%d\t%v\t%.0f\t%.0f\t%.3f\n",
			mode, cfg.Workers, elapsed.Round(time.Microsecond), rate, rate*float64(cfg.Model.Particles), fraction)
	}
	return tw.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPARTICLES\tK0\tALPHA\tX_P\tSIGMA\tVELOCITY\tSTEPS\tSTREAMS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%g\t%g\t%d\t%s\n",
			name, p.Model.Particles, p.Model.K0, p.Model.Alpha, p.Model.Peak, p.Model.Sigma, p.Model.Velocity, p.Steps, p.Streams)
	}
	return tw.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "selfassembly.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
