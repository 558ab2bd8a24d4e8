package assembly

import (
	"math"
	"math/rand/v2"
)

// Model owns a fixed population of particles and the kinetic parameters
// shared by all of them.
type Model struct {
	params    Params
	bounds    Bounds
	particles []Particle
	time      int

	seed    uint64
	streams StreamMode
	workers int
	rng     *rand.Rand

	twoSigmaSq float64
}

// Option configures a Model at construction.
type Option func(*Model)

// WithSeed sets the seed for both stream modes.
func WithSeed(seed uint64) Option {
	return func(m *Model) { m.seed = seed }
}

// WithSource replaces the shared stream. It has no effect with StreamPerParticle.
func WithSource(src rand.Source) Option {
	return func(m *Model) { m.rng = rand.New(src) }
}

func WithStreams(mode StreamMode) Option {
	return func(m *Model) { m.streams = mode }
}

// WithWorkers bounds the goroutines used by StreamPerParticle.
func WithWorkers(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.workers = n
		}
	}
}

// New validates p and places p.N particles uniformly in the channel with
// velocity components uniform in [-VelocityMag, VelocityMag].
func New(p Params, opts ...Option) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		params:     p,
		bounds:     p.Bounds(),
		particles:  make([]Particle, p.N),
		workers:    DefaultWorkers,
		twoSigmaSq: 2 * p.Sigma * p.Sigma,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = newSharedRand(m.seed)
	}

	for i := range m.particles {
		var draw func() float64
		if m.streams == StreamPerParticle {
			s := keyedStream(m.seed, i, 0)
			draw = func() float64 { return unitFloat(s.Uint64()) }
		} else {
			draw = m.rng.Float64
		}
		x := p.Length * draw()
		y := p.Width * draw()
		vx := uniform(draw(), p.VelocityMag)
		vy := uniform(draw(), p.VelocityMag)
		m.particles[i] = NewParticle(i, x, y, vx, vy)
	}

	return m, nil
}

// uniform maps r in [0,1) onto [-mag, mag).
func uniform(r, mag float64) float64 {
	return -mag + 2*mag*r
}

// CorrectionFactor is the Gaussian rate multiplier 1 + alpha*exp(-(x-xp)^2 / 2sigma^2).
func (m *Model) CorrectionFactor(x float64) float64 {
	d := x - m.params.XP
	return 1 + m.params.Alpha*math.Exp(-(d*d)/m.twoSigmaSq)
}

// Step advances time by one and updates every particle. The correction
// factor uses each particle's position from before its own move.
func (m *Model) Step() {
	m.time++
	t := m.time

	if m.streams == StreamPerParticle {
		ParallelFor(len(m.particles), minChunk, m.workers, func(start, end int) {
			for i := start; i < end; i++ {
				p := &m.particles[i]
				if p.state == Assembled {
					continue
				}
				m.advance(p, t, keyedFloat(m.seed, i, t))
			}
		})
		return
	}

	for i := range m.particles {
		p := &m.particles[i]
		if p.state == Assembled {
			continue
		}
		m.advance(p, t, m.rng.Float64())
	}
}

func (m *Model) advance(p *Particle, t int, r float64) {
	p.Update(t, m.params.K0, m.CorrectionFactor(p.x), m.bounds, r)
}

// Snapshot copies the current population.
func (m *Model) Snapshot() Snapshot {
	out := Snapshot{
		Time:      m.time,
		Particles: make([]ParticleState, len(m.particles)),
	}
	for i, p := range m.particles {
		out.Particles[i] = ParticleState{
			ID:            p.id,
			X:             p.x,
			Y:             p.y,
			VX:            p.vx,
			VY:            p.vy,
			State:         p.state,
			TransformedAt: p.transformedAt,
		}
	}
	return out
}

func (m *Model) Time() int           { return m.time }
func (m *Model) Len() int            { return len(m.particles) }
func (m *Model) Params() Params      { return m.params }
func (m *Model) Bounds() Bounds      { return m.bounds }
func (m *Model) Seed() uint64        { return m.seed }
func (m *Model) Streams() StreamMode { return m.streams }
