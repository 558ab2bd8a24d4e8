package metrics

import (
	"math"

	"github.com/san-kum/selfassembly/internal/assembly"
	"gonum.org/v1/gonum/stat"
)

// MeanTransformTime is the mean transformation step over the particles that
// have assembled so far.
type MeanTransformTime struct {
	name  string
	value float64
}

func NewMeanTransformTime() *MeanTransformTime {
	return &MeanTransformTime{name: "mean_transform_time"}
}

func (m *MeanTransformTime) Name() string { return m.name }

func (m *MeanTransformTime) Observe(snap assembly.Snapshot) {
	times := make([]float64, 0, len(snap.Particles))
	for _, p := range snap.Particles {
		if at, ok := p.TransformationTime(); ok {
			times = append(times, float64(at))
		}
	}
	if len(times) == 0 {
		m.value = 0
		return
	}
	m.value = stat.Mean(times, nil)
}

func (m *MeanTransformTime) Value() float64 { return m.value }

func (m *MeanTransformTime) Reset() { m.value = 0 }

// AvramiFit estimates the population exponent n and rate k of
// X(t) = 1 - exp(-k t^n) by least squares on ln(-ln(1-X)) = ln k + n ln t.
// Only observations with 0 < X < 1 contribute.
//
// The per-step law is applied to each particle with its own hazard, so the
// population curve follows sum(s^2, s<=t) and n drifts from 2 toward 3.
type AvramiFit struct {
	name   string
	lnT    []float64
	lnLogX []float64
}

func NewAvramiFit() *AvramiFit {
	return &AvramiFit{name: "avrami_exponent"}
}

func (a *AvramiFit) Name() string { return a.name }

func (a *AvramiFit) Observe(snap assembly.Snapshot) {
	x := snap.AssembledFraction()
	if snap.Time <= 0 || x <= 0 || x >= 1 {
		return
	}
	a.lnT = append(a.lnT, math.Log(float64(snap.Time)))
	a.lnLogX = append(a.lnLogX, math.Log(-math.Log(1-x)))
}

// Fit returns the exponent and rate constant. ok is false with fewer than
// two usable observations.
func (a *AvramiFit) Fit() (n, k float64, ok bool) {
	if len(a.lnT) < 2 {
		return 0, 0, false
	}
	intercept, slope := stat.LinearRegression(a.lnT, a.lnLogX, nil, false)
	return slope, math.Exp(intercept), true
}

func (a *AvramiFit) Value() float64 {
	n, _, _ := a.Fit()
	return n
}

func (a *AvramiFit) Reset() {
	a.lnT = a.lnT[:0]
	a.lnLogX = a.lnLogX[:0]
}
