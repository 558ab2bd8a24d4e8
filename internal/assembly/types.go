package assembly

import (
	"fmt"
	"math"
)

// State is the assembly state of a particle.
type State uint8

const (
	Unassembled State = iota
	Assembled
)

func (s State) String() string {
	switch s {
	case Unassembled:
		return "unassembled"
	case Assembled:
		return "assembled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Bounds is the channel extent. Positions are kept in [0,Length] x [0,Width].
type Bounds struct {
	Length float64
	Width  float64
}

// Contains reports whether (x, y) lies inside the channel, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Length && y >= 0 && y <= b.Width
}

// Params are the fixed model parameters supplied at construction.
type Params struct {
	N           int
	Width       float64
	Length      float64
	K0          float64
	Alpha       float64
	XP          float64
	Sigma       float64
	VelocityMag float64
}

// DefaultParams returns a 10x1 channel with 100 slow particles and no hotspot.
func DefaultParams() Params {
	return Params{
		N:           100,
		Width:       1.0,
		Length:      10.0,
		K0:          0.1,
		Alpha:       0.0,
		XP:          3.0,
		Sigma:       1.0,
		VelocityMag: 0.05,
	}
}

func (p Params) Bounds() Bounds {
	return Bounds{Length: p.Length, Width: p.Width}
}

// Validate reports the first parameter that makes the model ill-defined.
func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"width": p.Width, "length": p.Length, "k0": p.K0, "alpha": p.Alpha,
		"x_p": p.XP, "sigma": p.Sigma, "velocity": p.VelocityMag,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, name, v)
		}
	}
	if p.N < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, p.N)
	}
	if p.Length <= 0 || p.Width <= 0 {
		return fmt.Errorf("%w: length=%g width=%g", ErrInvalidBounds, p.Length, p.Width)
	}
	if p.Sigma == 0 {
		return ErrInvalidSigma
	}
	if p.VelocityMag < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidVelocity, p.VelocityMag)
	}
	return nil
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unassembled":
		*s = Unassembled
	case "assembled":
		*s = Assembled
	default:
		return fmt.Errorf("unknown particle state: %q", b)
	}
	return nil
}
