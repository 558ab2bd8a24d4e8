package metrics

import "github.com/san-kum/selfassembly/internal/assembly"

// AssembledFraction reports the assembled share of the population at the
// latest observation.
type AssembledFraction struct {
	name  string
	value float64
}

func NewAssembledFraction() *AssembledFraction {
	return &AssembledFraction{name: "assembled_fraction"}
}

func (a *AssembledFraction) Name() string { return a.name }

func (a *AssembledFraction) Observe(snap assembly.Snapshot) {
	a.value = snap.AssembledFraction()
}

func (a *AssembledFraction) Value() float64 { return a.value }

func (a *AssembledFraction) Reset() { a.value = 0 }

// HalfTime is the first step at which at least half the population has
// assembled, or 0 if that never happens.
type HalfTime struct {
	name string
	step int
}

func NewHalfTime() *HalfTime {
	return &HalfTime{name: "half_time"}
}

func (h *HalfTime) Name() string { return h.name }

func (h *HalfTime) Observe(snap assembly.Snapshot) {
	if h.step == 0 && len(snap.Particles) > 0 && snap.AssembledFraction() >= 0.5 {
		h.step = snap.Time
	}
}

func (h *HalfTime) Value() float64 { return float64(h.step) }

func (h *HalfTime) Reset() { h.step = 0 }
