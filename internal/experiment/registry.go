package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/metrics"
	"github.com/san-kum/selfassembly/internal/sim"
)

// Registry maps metric names to constructors. Metrics that need the
// channel geometry receive it at construction.
type Registry struct {
	metrics map[string]func(assembly.Bounds) sim.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]func(assembly.Bounds) sim.Metric),
	}

	r.metrics["assembled_fraction"] = func(assembly.Bounds) sim.Metric { return metrics.NewAssembledFraction() }
	r.metrics["half_time"] = func(assembly.Bounds) sim.Metric { return metrics.NewHalfTime() }
	r.metrics["mean_transform_time"] = func(assembly.Bounds) sim.Metric { return metrics.NewMeanTransformTime() }
	r.metrics["avrami_exponent"] = func(assembly.Bounds) sim.Metric { return metrics.NewAvramiFit() }
	r.metrics["boundary_violations"] = func(b assembly.Bounds) sim.Metric { return metrics.NewBoundaryViolations(b) }
	r.metrics["nucleation_peak"] = func(b assembly.Bounds) sim.Metric { return metrics.NewNucleationPeak(b) }

	return r
}

func (r *Registry) GetMetric(name string, b assembly.Bounds) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(b), nil
}

// NewMetrics builds fresh instances of the named metrics.
func (r *Registry) NewMetrics(names []string, b assembly.Bounds) ([]sim.Metric, error) {
	out := make([]sim.Metric, 0, len(names))
	for _, name := range names {
		m, err := r.GetMetric(name, b)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns one instance of every registered metric.
func (r *Registry) DefaultMetrics(b assembly.Bounds) []sim.Metric {
	ms, _ := r.NewMetrics(r.ListMetrics(), b)
	return ms
}
