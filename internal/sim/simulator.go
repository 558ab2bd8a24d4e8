package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/selfassembly/internal/assembly"
)

type Simulator struct {
	params    assembly.Params
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(params assembly.Params) *Simulator {
	return &Simulator{
		params:    params,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    slog.New(slog.DiscardHandler),
	}
}

func (s *Simulator) AddMetric(m Metric)       { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)   { s.observers = append(s.observers, o) }
func (s *Simulator) SetLogger(l *slog.Logger) { s.logger = l }
func (s *Simulator) Params() assembly.Params  { return s.params }

// Run builds a fresh model from the simulator's parameters and advances it
// cfg.Steps times. On cancellation the partial result is returned with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	model, err := assembly.New(s.params,
		assembly.WithSeed(cfg.Seed),
		assembly.WithStreams(cfg.Streams),
		assembly.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, err
	}

	return s.RunModel(ctx, model, cfg)
}

// RunModel advances an existing model. cfg.Seed, Streams and Workers are
// taken from the model rather than cfg.
func (s *Simulator) RunModel(ctx context.Context, model *assembly.Model, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Params:    model.Params(),
		Seed:      model.Seed(),
		Streams:   model.Streams(),
		Times:     make([]int, 0, cfg.Steps+1),
		Assembled: make([]int, 0, cfg.Steps+1),
		Fraction:  make([]float64, 0, cfg.Steps+1),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Info("run started",
		"particles", model.Len(),
		"steps", cfg.Steps,
		"seed", model.Seed(),
		"streams", model.Streams().String(),
	)

	prev := model.Snapshot()
	s.record(result, prev, cfg)

	var runErr error
	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		model.Step()
		snap := model.Snapshot()

		if cfg.CheckInvariants {
			if err := CheckInvariants(prev, snap, model.Bounds()); err != nil {
				result.Errors = append(result.Errors, err)
				s.logger.Error("invariant violated", "err", err)
				break
			}
		}

		for _, m := range s.metrics {
			m.Observe(snap)
		}
		for _, obs := range s.observers {
			obs.OnStep(snap)
		}

		s.record(result, snap, cfg)
		result.StepsTaken++
		prev = snap

		if cfg.SampleEvery > 0 && snap.Time%cfg.SampleEvery == 0 {
			s.logger.Debug("progress", "time", snap.Time, "fraction", snap.AssembledFraction())
		}
	}

	result.Final = prev
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Info("run finished",
		"steps", result.StepsTaken,
		"fraction", prev.AssembledFraction(),
	)

	return result, runErr
}

func (s *Simulator) record(result *Result, snap assembly.Snapshot, cfg Config) {
	_, assembled := snap.Counts()
	result.Times = append(result.Times, snap.Time)
	result.Assembled = append(result.Assembled, assembled)
	result.Fraction = append(result.Fraction, snap.AssembledFraction())

	if cfg.SampleEvery > 0 && snap.Time%cfg.SampleEvery == 0 {
		result.Snapshots = append(result.Snapshots, snap)
	}
}

func validateConfig(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.SampleEvery < 0 {
		return fmt.Errorf("sample interval must be non-negative, got %d", cfg.SampleEvery)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", cfg.Workers)
	}
	return nil
}

// CheckInvariants compares two consecutive snapshots of the same model.
func CheckInvariants(prev, cur assembly.Snapshot, b assembly.Bounds) error {
	if cur.Time != prev.Time+1 {
		return SimError{Step: cur.Time, Message: fmt.Sprintf("time jumped from %d", prev.Time)}
	}
	if len(cur.Particles) != len(prev.Particles) {
		return SimError{Step: cur.Time, Message: "population size changed"}
	}

	for i, p := range cur.Particles {
		if !b.Contains(p.X, p.Y) {
			return SimError{Step: cur.Time, Message: fmt.Sprintf("particle %d outside channel at (%g, %g)", p.ID, p.X, p.Y)}
		}
		at, ok := p.TransformationTime()
		if ok && (at < 1 || at > cur.Time) {
			return SimError{Step: cur.Time, Message: fmt.Sprintf("particle %d has transformation time %d", p.ID, at)}
		}
		if !ok && at != 0 {
			return SimError{Step: cur.Time, Message: fmt.Sprintf("unassembled particle %d has transformation time %d", p.ID, at)}
		}

		old := prev.Particles[i]
		if old.State == assembly.Assembled {
			if p.State != assembly.Assembled {
				return SimError{Step: cur.Time, Message: fmt.Sprintf("particle %d reverted", p.ID)}
			}
			if p.X != old.X || p.Y != old.Y {
				return SimError{Step: cur.Time, Message: fmt.Sprintf("assembled particle %d moved", p.ID)}
			}
		}
	}
	return nil
}
