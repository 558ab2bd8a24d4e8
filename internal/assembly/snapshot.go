package assembly

// ParticleState is a copy of one particle at a point in time.
type ParticleState struct {
	ID            int     `json:"id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	VX            float64 `json:"vx"`
	VY            float64 `json:"vy"`
	State         State   `json:"state"`
	TransformedAt int     `json:"transformed_at,omitempty"`
}

// TransformationTime mirrors Particle.TransformationTime.
func (ps ParticleState) TransformationTime() (int, bool) {
	return ps.TransformedAt, ps.State == Assembled
}

// Snapshot is the population after Time steps. It shares nothing with the model.
type Snapshot struct {
	Time      int             `json:"time"`
	Particles []ParticleState `json:"particles"`
}

func (s Snapshot) Counts() (unassembled, assembled int) {
	for _, p := range s.Particles {
		if p.State == Assembled {
			assembled++
		} else {
			unassembled++
		}
	}
	return unassembled, assembled
}

// AssembledFraction is 0 for an empty population.
func (s Snapshot) AssembledFraction() float64 {
	if len(s.Particles) == 0 {
		return 0
	}
	_, a := s.Counts()
	return float64(a) / float64(len(s.Particles))
}

// Positions returns the coordinates of every particle in the given state.
func (s Snapshot) Positions(state State) (xs, ys []float64) {
	for _, p := range s.Particles {
		if p.State != state {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}
