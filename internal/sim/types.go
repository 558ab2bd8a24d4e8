package sim

import (
	"fmt"

	"github.com/san-kum/selfassembly/internal/assembly"
)

// Metric accumulates a scalar over the post-step snapshots of a run.
type Metric interface {
	Name() string
	Observe(snap assembly.Snapshot)
	Value() float64
	Reset()
}

// Observer is notified after every step with a consistent snapshot.
type Observer interface {
	OnStep(snap assembly.Snapshot)
}

type Config struct {
	Steps   int
	Seed    uint64
	Streams assembly.StreamMode
	Workers int

	// SampleEvery keeps every n-th snapshot in Result.Snapshots; 0 keeps none.
	SampleEvery     int
	CheckInvariants bool
}

func DefaultConfig() Config {
	return Config{
		Steps:           100,
		Streams:         assembly.StreamShared,
		Workers:         assembly.DefaultWorkers,
		SampleEvery:     0,
		CheckInvariants: true,
	}
}

// Result is the time series of one run. Index 0 of every series is the
// initial population at time 0.
type Result struct {
	Params     assembly.Params
	Seed       uint64
	Streams    assembly.StreamMode
	Times      []int
	Assembled  []int
	Fraction   []float64
	Snapshots  []assembly.Snapshot
	Final      assembly.Snapshot
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

type SimError struct {
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}
