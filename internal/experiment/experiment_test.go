package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/selfassembly/internal/assembly"
	"github.com/san-kum/selfassembly/internal/config"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Model.Particles = 30
	cfg.Steps = 20
	cfg.Seed = 11
	return cfg
}

func TestRegistryListsAllMetrics(t *testing.T) {
	r := NewRegistry()
	want := []string{"assembled_fraction", "avrami_exponent", "boundary_violations", "half_time", "mean_transform_time", "nucleation_peak"}
	got := r.ListMetrics()
	if len(got) != len(want) {
		t.Fatalf("ListMetrics() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListMetrics()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	for _, m := range r.DefaultMetrics(assembly.DefaultParams().Bounds()) {
		if _, err := r.GetMetric(m.Name(), assembly.Bounds{}); err != nil {
			t.Errorf("metric %s registered under a different name", m.Name())
		}
	}
}

func TestRegistryUnknownMetric(t *testing.T) {
	if _, err := NewRegistry().NewMetrics([]string{"half_time", "nope"}, assembly.Bounds{}); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestRunBeforeSetup(t *testing.T) {
	e := New(smallConfig())
	if _, err := e.Run(context.Background()); err == nil {
		t.Error("Run without Setup should fail")
	}
	if _, _, err := e.RunEnsemble(context.Background(), 2); err == nil {
		t.Error("RunEnsemble without Setup should fail")
	}
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Model.Sigma = 0
	if err := New(cfg).Setup(nil, nil); err == nil {
		t.Error("expected validation error")
	}
}

func TestRunProducesMetrics(t *testing.T) {
	e := New(smallConfig())
	if err := e.Setup(nil, nil); err != nil {
		t.Fatal(err)
	}
	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.StepsTaken != 20 {
		t.Errorf("StepsTaken = %d, want 20", res.StepsTaken)
	}
	for _, name := range NewRegistry().ListMetrics() {
		if _, ok := res.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if res.Metrics["boundary_violations"] != 0 {
		t.Errorf("boundary violations = %v", res.Metrics["boundary_violations"])
	}
}

func TestRunEnsemble(t *testing.T) {
	e := New(smallConfig())
	if err := e.Setup([]string{"assembled_fraction"}, nil); err != nil {
		t.Fatal(err)
	}
	results, sum, err := e.RunEnsemble(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Seed != 11+uint64(i) {
			t.Errorf("run %d seed = %d", i, r.Seed)
		}
	}
	if len(sum.Mean) != 21 {
		t.Errorf("summary length = %d, want 21", len(sum.Mean))
	}
	if _, ok := sum.Metrics["assembled_fraction"]; !ok {
		t.Error("summary missing assembled_fraction")
	}
	if _, _, err := e.RunEnsemble(context.Background(), 0); err == nil {
		t.Error("zero runs should fail")
	}
}
