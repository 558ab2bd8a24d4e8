package assembly

import "math"

// Particle is a single agent in the channel. Its velocity magnitude is fixed;
// only the signs flip on wall contact. Once assembled it never moves again.
type Particle struct {
	id            int
	x, y          float64
	vx, vy        float64
	state         State
	transformedAt int
}

// NewParticle returns an unassembled particle. Positions are not checked
// against any bounds here; the model places particles inside the channel.
func NewParticle(id int, x, y, vx, vy float64) Particle {
	return Particle{id: id, x: x, y: y, vx: vx, vy: vy}
}

// ID is the particle's index in its model's population.
func (p *Particle) ID() int { return p.id }

func (p *Particle) Position() (x, y float64) { return p.x, p.y }

func (p *Particle) Velocity() (vx, vy float64) { return p.vx, p.vy }

func (p *Particle) State() State { return p.state }

// TransformationTime returns the step at which the particle assembled.
// ok is false while the particle is still unassembled.
func (p *Particle) TransformationTime() (t int, ok bool) {
	return p.transformedAt, p.state == Assembled
}

// TransformProbability is the cumulative Avrami probability 1 - exp(-k0*fx*t^2).
func TransformProbability(k0, fx float64, t int) float64 {
	tf := float64(t)
	return 1 - math.Exp(-k0*fx*tf*tf)
}

// Update advances the particle to step t. r is a uniform draw in [0,1)
// supplied by the model's random source.
//
// A particle that transforms this step does not move this step.
func (p *Particle) Update(t int, k0, fx float64, b Bounds, r float64) {
	if p.state == Assembled {
		return
	}

	if r < TransformProbability(k0, fx, t) {
		p.state = Assembled
		p.transformedAt = t
		return
	}

	p.x += p.vx
	p.y += p.vy

	// Axes reflect independently; both are checked every step.
	if p.x < 0 || p.x > b.Length {
		p.vx = -p.vx
		p.x = clamp(p.x, 0, b.Length)
	}
	if p.y < 0 || p.y > b.Width {
		p.vy = -p.vy
		p.y = clamp(p.y, 0, b.Width)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
