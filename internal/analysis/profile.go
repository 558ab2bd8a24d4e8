package analysis

import (
	"github.com/san-kum/selfassembly/internal/assembly"
)

// Profile bins a population along the channel axis.
type Profile struct {
	Centers   []float64
	Total     []int
	Assembled []int
}

// SpatialProfile splits [0,length] into bins equal slices. Particles at
// x == length fall in the last bin.
func SpatialProfile(snap assembly.Snapshot, length float64, bins int) Profile {
	if bins <= 0 || length <= 0 {
		return Profile{}
	}
	p := Profile{
		Centers:   make([]float64, bins),
		Total:     make([]int, bins),
		Assembled: make([]int, bins),
	}
	w := length / float64(bins)
	for i := range p.Centers {
		p.Centers[i] = (float64(i) + 0.5) * w
	}
	for _, ps := range snap.Particles {
		i := int(ps.X / w)
		i = max(0, min(i, bins-1))
		p.Total[i]++
		if ps.State == assembly.Assembled {
			p.Assembled[i]++
		}
	}
	return p
}

// Fraction is the assembled share of each bin; empty bins are 0.
func (p Profile) Fraction() []float64 {
	out := make([]float64, len(p.Total))
	for i, n := range p.Total {
		if n > 0 {
			out[i] = float64(p.Assembled[i]) / float64(n)
		}
	}
	return out
}

// AssembledDensity returns assembled counts as floats, ready for LowPass.
func (p Profile) AssembledDensity() []float64 {
	out := make([]float64, len(p.Assembled))
	for i, n := range p.Assembled {
		out[i] = float64(n)
	}
	return out
}

// EstimatePeak smooths the assembled density with LowPass and returns the
// centre of its highest bin. ok is false when nothing has assembled.
func EstimatePeak(snap assembly.Snapshot, length float64, bins, keep int) (x float64, ok bool) {
	p := SpatialProfile(snap, length, bins)
	total := 0
	for _, n := range p.Assembled {
		total += n
	}
	if total == 0 {
		return 0, false
	}
	smooth := LowPass(p.AssembledDensity(), keep)
	best := 0
	for i, v := range smooth {
		if v > smooth[best] {
			best = i
		}
	}
	return p.Centers[best], true
}
