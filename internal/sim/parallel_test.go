package sim

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/selfassembly/internal/assembly"
)

func TestEnsembleRun(t *testing.T) {
	base := New(assembly.DefaultParams())
	ens := NewEnsemble(base, 4, 100, func() []Metric { return []Metric{&testMetric{}} })

	cfg := DefaultConfig()
	cfg.Steps = 8

	results, err := ens.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Seed != 100+uint64(i) {
			t.Errorf("run %d used seed %d", i, r.Seed)
		}
		if r.StepsTaken != 8 {
			t.Errorf("run %d took %d steps", i, r.StepsTaken)
		}
	}

	sum := Summarize(results)
	if len(sum.Mean) != 9 || len(sum.StdDev) != 9 {
		t.Fatalf("summary length %d/%d, want 9", len(sum.Mean), len(sum.StdDev))
	}
	if sum.Mean[0] != 0 || sum.StdDev[0] != 0 {
		t.Errorf("expected zero fraction at t=0, got %v ± %v", sum.Mean[0], sum.StdDev[0])
	}
	if _, ok := sum.Metrics["test"]; !ok {
		t.Error("metric mean missing from summary")
	}
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Times: []int{0, 1, 2}, Fraction: []float64{0, 0.2, 0.6}, Metrics: map[string]float64{"m": 1}},
		{Times: []int{0, 1}, Fraction: []float64{0, 0.4}, Metrics: map[string]float64{"m": 3}},
	}

	sum := Summarize(results)
	if len(sum.Mean) != 2 {
		t.Fatalf("expected truncation to 2 steps, got %d", len(sum.Mean))
	}
	if math.Abs(sum.Mean[1]-0.3) > 1e-12 {
		t.Errorf("mean at step 1 = %v, want 0.3", sum.Mean[1])
	}
	if math.Abs(sum.StdDev[1]-math.Sqrt(0.02)) > 1e-12 {
		t.Errorf("stddev at step 1 = %v, want %v", sum.StdDev[1], math.Sqrt(0.02))
	}
	if sum.Metrics["m"] != 2 {
		t.Errorf("metric mean = %v, want 2", sum.Metrics["m"])
	}

	if empty := Summarize(nil); len(empty.Mean) != 0 {
		t.Error("expected empty summary")
	}

	single := Summarize(results[:1])
	if single.StdDev[2] != 0 {
		t.Errorf("single run stddev = %v, want 0", single.StdDev[2])
	}
}
