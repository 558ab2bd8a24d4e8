package main

import (
	"fmt"
	"os"

	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	// Model parameters
	particles int
	width     float64
	length    float64
	k0        float64
	alpha     float64
	peak      float64
	sigma     float64
	velocity  float64
	// Run settings
	steps       int
	seed        uint64
	streams     string
	workers     int
	sampleEvery int
	metricNames []string
	// Outputs
	csvOut      string
	snapshotOut string
	svgOut      string
	pngOut      string
	jsonOut     string
	noPlot      bool
	// Ensemble
	runs int
	// Live view
	frameRate int
	gifOut    string
	theme     string
	forever   bool
	// config init
	force bool
)

// main is the entry point for the assemblysim CLI.
// It exits the process with status 1 if command execution returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "assemblysim",
		Short: "stochastic self-assembly of particles in a 2-D channel",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	addOutputFlags(runCmd)
	runCmd.Flags().StringSliceVar(&metricNames, "metrics", nil, "metrics to compute (default all)")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "repeat a run over consecutive seeds and average the fraction curve",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	addModelFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&runs, "runs", 10, "number of runs")
	ensembleCmd.Flags().StringVar(&csvOut, "csv", "", "write mean/std curve as CSV")
	ensembleCmd.Flags().StringVar(&pngOut, "png", "", "write mean/std chart as PNG")
	ensembleCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")
	ensembleCmd.Flags().StringSliceVar(&metricNames, "metrics", nil, "metrics to compute (default all)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&gifOut, "gif", "assembly.gif", "GIF recording path")
	liveCmd.Flags().StringVar(&theme, "theme", "classic", "color theme")
	liveCmd.Flags().BoolVar(&forever, "forever", false, "ignore the step limit")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure step throughput for each random stream mode",
		Args:  cobra.NoArgs,
		RunE:  benchModel,
	}
	addModelFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with default or preset values",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, ensembleCmd, liveCmd, benchCmd, presetsCmd, configCmd)
	return rootCmd
}

func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.IntVarP(&particles, "particles", "n", config.DefaultParticles, "number of particles")
	f.Float64Var(&width, "width", config.DefaultWidth, "channel width")
	f.Float64Var(&length, "length", config.DefaultLength, "channel length")
	f.Float64Var(&k0, "k0", config.DefaultK0, "base transformation rate")
	f.Float64Var(&alpha, "alpha", config.DefaultAlpha, "correction amplitude")
	f.Float64Var(&peak, "xp", config.DefaultPeak, "correction peak position")
	f.Float64Var(&sigma, "sigma", config.DefaultSigma, "correction width")
	f.Float64Var(&velocity, "velocity", config.DefaultVelocity, "initial velocity magnitude")
	f.IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	f.Uint64Var(&seed, "seed", 0, "random seed")
	f.StringVar(&streams, "streams", assembly.StreamShared.String(), "random streams (shared, per-particle)")
	f.IntVar(&workers, "workers", assembly.DefaultWorkers, "workers for per-particle streams")
	f.IntVar(&sampleEvery, "sample-every", config.DefaultSampleEvery, "keep every n-th snapshot (0 keeps none)")
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&csvOut, "csv", "", "write the assembled-count timeline as CSV")
	f.StringVar(&snapshotOut, "snapshot", "", "write the final particle table as CSV")
	f.StringVar(&svgOut, "svg", "", "write the final population as SVG")
	f.StringVar(&pngOut, "png", "", "write the fraction curve as PNG")
	f.StringVar(&jsonOut, "json", "", "write a JSON run summary")
	f.BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")
}

// resolveConfig layers the preset, then the config file, then any flag the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Model.Particles = particles
	}
	if flags.Changed("width") {
		cfg.Model.Width = width
	}
	if flags.Changed("length") {
		cfg.Model.Length = length
	}
	if flags.Changed("k0") {
		cfg.Model.K0 = k0
	}
	if flags.Changed("alpha") {
		cfg.Model.Alpha = alpha
	}
	if flags.Changed("xp") {
		cfg.Model.Peak = peak
	}
	if flags.Changed("sigma") {
		cfg.Model.Sigma = sigma
	}
	if flags.Changed("velocity") {
		cfg.Model.Velocity = velocity
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("streams") {
		cfg.Streams = streams
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("sample-every") {
		cfg.SampleEvery = sampleEvery
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
