package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/selfassembly/internal/config"
	"github.com/san-kum/selfassembly/internal/sim"
)

// Experiment ties a validated configuration to a simulator and its metrics.
type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	metrics   []string
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg, registry: NewRegistry()}
}

// Setup validates the configuration and builds the simulator. An empty
// metric list selects every registered metric.
func (e *Experiment) Setup(metricNames []string, logger *slog.Logger) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	if len(metricNames) == 0 {
		metricNames = e.registry.ListMetrics()
	}
	ms, err := e.registry.NewMetrics(metricNames, e.cfg.Params().Bounds())
	if err != nil {
		return err
	}
	e.metrics = metricNames
	e.simulator = sim.New(e.cfg.Params())
	if logger != nil {
		e.simulator.SetLogger(logger)
	}
	for _, m := range ms {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.cfg.RunConfig())
}

// RunEnsemble repeats the run over runs consecutive seeds starting at the
// configured seed and summarizes the fraction curves.
func (e *Experiment) RunEnsemble(ctx context.Context, runs int) ([]*sim.Result, sim.Summary, error) {
	if e.simulator == nil {
		return nil, sim.Summary{}, fmt.Errorf("experiment not setup")
	}
	if runs <= 0 {
		return nil, sim.Summary{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	bounds := e.cfg.Params().Bounds()
	newMetrics := func() []sim.Metric {
		ms, _ := e.registry.NewMetrics(e.metrics, bounds)
		return ms
	}
	results, err := sim.NewEnsemble(e.simulator, runs, e.cfg.Seed, newMetrics).Run(ctx, e.cfg.RunConfig())
	if err != nil {
		return nil, sim.Summary{}, err
	}
	return results, sim.Summarize(results), nil
}

// Simulator returns the underlying simulator for adding observers
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}
