package metrics

import "github.com/san-kum/selfassembly/internal/assembly"

// BoundaryViolations counts particle observations outside the channel.
// Anything other than 0 is a bug in the reflection logic.
type BoundaryViolations struct {
	name       string
	bounds     assembly.Bounds
	violations int
}

func NewBoundaryViolations(b assembly.Bounds) *BoundaryViolations {
	return &BoundaryViolations{name: "boundary_violations", bounds: b}
}

func (b *BoundaryViolations) Name() string { return b.name }

func (b *BoundaryViolations) Observe(snap assembly.Snapshot) {
	for _, p := range snap.Particles {
		if !b.bounds.Contains(p.X, p.Y) {
			b.violations++
		}
	}
}

func (b *BoundaryViolations) Value() float64 { return float64(b.violations) }

func (b *BoundaryViolations) Reset() { b.violations = 0 }
