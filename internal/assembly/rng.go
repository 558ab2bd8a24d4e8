package assembly

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// StreamMode selects how random draws are assigned to particles.
type StreamMode int

const (
	// StreamShared draws from one stream in particle order. Sequential only.
	StreamShared StreamMode = iota
	// StreamPerParticle keys every draw by (seed, particle ID, step).
	StreamPerParticle
)

func (s StreamMode) String() string {
	switch s {
	case StreamShared:
		return "shared"
	case StreamPerParticle:
		return "per-particle"
	default:
		return fmt.Sprintf("stream(%d)", int(s))
	}
}

// ParseStreamMode accepts "shared" and "per-particle" (also "particle", "parallel").
func ParseStreamMode(s string) (StreamMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shared", "sequential":
		return StreamShared, nil
	case "per-particle", "particle", "parallel":
		return StreamPerParticle, nil
	default:
		return StreamShared, fmt.Errorf("unknown stream mode: %s", s)
	}
}

// sharedSalt is the second PCG seed word for the shared stream.
const sharedSalt = 0x5e1fa55e

func newSharedRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, sharedSalt))
}

// keyedStream returns the independent stream for one particle at one step.
// Step 0 is used for initial placement.
func keyedStream(seed uint64, id, step int) rand.PCG {
	var p rand.PCG
	p.Seed(splitmix64(seed^splitmix64(uint64(id))), splitmix64(uint64(step)))
	return p
}

func keyedFloat(seed uint64, id, step int) float64 {
	p := keyedStream(seed, id, step)
	return unitFloat(p.Uint64())
}

// unitFloat maps 53 high bits onto [0,1), as math/rand does.
func unitFloat(u uint64) float64 {
	return float64(u>>11) * 0x1p-53
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
