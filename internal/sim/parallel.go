package sim

import (
	"context"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Ensemble repeats a run over consecutive seeds, one goroutine per run.
type Ensemble struct {
	base       *Simulator
	numRuns    int
	seedStart  uint64
	newMetrics func() []Metric
}

// NewEnsemble copies the base simulator's parameters and logger. Metrics are
// stateful, so each run gets its own set from newMetrics (which may be nil).
func NewEnsemble(s *Simulator, numRuns int, seedStart uint64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{base: s, numRuns: numRuns, seedStart: seedStart, newMetrics: newMetrics}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + uint64(idx)

			s := New(e.base.params)
			s.SetLogger(e.base.logger.With("run", idx))
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Summary is the per-step mean and standard deviation of the assembled
// fraction across runs, truncated to the shortest run.
type Summary struct {
	Times  []int
	Mean   []float64
	StdDev []float64

	// Metrics holds the mean of each metric across runs.
	Metrics map[string]float64
}

func Summarize(results []*Result) Summary {
	sum := Summary{Metrics: make(map[string]float64)}
	if len(results) == 0 {
		return sum
	}

	steps := len(results[0].Fraction)
	for _, r := range results[1:] {
		if len(r.Fraction) < steps {
			steps = len(r.Fraction)
		}
	}

	col := make([]float64, len(results))
	for i := 0; i < steps; i++ {
		for j, r := range results {
			col[j] = r.Fraction[i]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if len(results) < 2 {
			std = 0
		}
		sum.Times = append(sum.Times, results[0].Times[i])
		sum.Mean = append(sum.Mean, mean)
		sum.StdDev = append(sum.StdDev, std)
	}

	for name := range results[0].Metrics {
		vals := make([]float64, 0, len(results))
		for _, r := range results {
			if v, ok := r.Metrics[name]; ok {
				vals = append(vals, v)
			}
		}
		sum.Metrics[name] = stat.Mean(vals, nil)
	}

	return sum
}
