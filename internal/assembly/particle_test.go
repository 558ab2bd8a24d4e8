package assembly

import (
	"math"
	"testing"
)

func TestTransformProbability(t *testing.T) {
	tests := []struct {
		name     string
		k0, fx   float64
		step     int
		expected float64
	}{
		{"first step", 0.1, 1, 1, 0.0951626},
		{"fifth step", 0.1, 1, 5, 0.9179150},
		{"zero rate", 0, 1, 50, 0},
		{"doubled by correction", 0.1, 2, 1, 1 - math.Exp(-0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformProbability(tt.k0, tt.fx, tt.step)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("TransformProbability(%g, %g, %d) = %.7f, want %.7f", tt.k0, tt.fx, tt.step, got, tt.expected)
			}
		})
	}
}

func TestTransformProbability_NonDecreasing(t *testing.T) {
	prev := 0.0
	for step := 1; step <= 50; step++ {
		p := TransformProbability(0.1, 1.0, step)
		if p < prev {
			t.Fatalf("probability decreased at step %d: %f < %f", step, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("probability out of range at step %d: %f", step, p)
		}
		prev = p
	}
}

func TestParticleReflection(t *testing.T) {
	b := Bounds{Length: 10, Width: 1}

	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"right wall", 9.98, 0.5, 0.05, 0, 10, 0.5, -0.05, 0},
		{"left wall", 0.01, 0.5, -0.05, 0, 0, 0.5, 0.05, 0},
		{"top wall", 5, 0.98, 0, 0.05, 5, 1, 0, -0.05},
		{"bottom wall", 5, 0.02, 0, -0.05, 5, 0, 0, 0.05},
		{"corner", 9.99, 0.99, 0.05, 0.05, 10, 1, -0.05, -0.05},
		{"free flight", 5, 0.5, 0.25, 0.25, 5.25, 0.75, 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticle(0, tt.x, tt.y, tt.vx, tt.vy)
			p.Update(1, 0, 1, b, 0.5)

			x, y := p.Position()
			vx, vy := p.Velocity()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
			if vx != tt.wantVX || vy != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vx, vy, tt.wantVX, tt.wantVY)
			}
			if p.State() != Unassembled {
				t.Errorf("state = %s, want unassembled", p.State())
			}
		})
	}
}

func TestParticleTransformSkipsMotion(t *testing.T) {
	b := Bounds{Length: 10, Width: 1}
	p := NewParticle(0, 5, 0.5, 0.05, 0.05)

	p.Update(4, 1.0, 1.0, b, 0)

	if p.State() != Assembled {
		t.Fatalf("expected assembled, got %s", p.State())
	}
	if tt, ok := p.TransformationTime(); !ok || tt != 4 {
		t.Errorf("TransformationTime() = (%d, %v), want (4, true)", tt, ok)
	}
	if x, y := p.Position(); x != 5 || y != 0.5 {
		t.Errorf("particle moved on its transformation step: (%v, %v)", x, y)
	}

	// Further updates are no-ops.
	p.Update(5, 1.0, 1.0, b, 0.99)
	if tt, _ := p.TransformationTime(); tt != 4 {
		t.Errorf("transformation time changed to %d", tt)
	}
	if x, y := p.Position(); x != 5 || y != 0.5 {
		t.Errorf("assembled particle moved: (%v, %v)", x, y)
	}
}

func TestParticleUnassembledHasNoTime(t *testing.T) {
	p := NewParticle(3, 1, 0.5, 0, 0)
	if _, ok := p.TransformationTime(); ok {
		t.Error("new particle reports a transformation time")
	}
	if p.ID() != 3 {
		t.Errorf("ID() = %d, want 3", p.ID())
	}
}

func TestStateText(t *testing.T) {
	for _, s := range []State{Unassembled, Assembled} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", s, err)
		}
		var got State
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("unmarshal %q: %v", b, err)
		}
		if got != s {
			t.Errorf("round trip %s -> %s", s, got)
		}
	}

	var s State
	if err := s.UnmarshalText([]byte("melted")); err == nil {
		t.Error("expected error for unknown state")
	}
}
