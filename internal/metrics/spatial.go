package metrics

import (
	"github.com/san-kum/selfassembly/internal/analysis"
	"github.com/san-kum/selfassembly/internal/assembly"
)

const (
	peakBins = 64
	peakKeep = 4
)

// NucleationPeak estimates the x position where assembly concentrates, from
// the last observed snapshot. It is 0 until something has assembled.
type NucleationPeak struct {
	name   string
	length float64
	x      float64
}

func NewNucleationPeak(b assembly.Bounds) *NucleationPeak {
	return &NucleationPeak{name: "nucleation_peak", length: b.Length}
}

func (n *NucleationPeak) Name() string { return n.name }

func (n *NucleationPeak) Observe(snap assembly.Snapshot) {
	if x, ok := analysis.EstimatePeak(snap, n.length, peakBins, peakKeep); ok {
		n.x = x
	}
}

func (n *NucleationPeak) Value() float64 { return n.x }

func (n *NucleationPeak) Reset() { n.x = 0 }
