package randn

import (
	"math"

	"github.com/katalvlaran/randvar/mt19937"
)

// Generator produces standard-normal deviates from an owned mt19937 source.
// Construct with New; the zero value is not ready to use.
type Generator struct {
	src *mt19937.MT19937
}

// New constructs a standard-normal generator. Options are passed through to
// the underlying mt19937 source unchanged (nil means mt19937 defaults), so
// seeding, snapshot restore and Copy semantics behave identically here.
func New(opts *mt19937.Options) (*Generator, error) {
	src, err := mt19937.New(opts)
	if err != nil {
		return nil, err
	}

	return &Generator{src: src}, nil
}

// Rand returns one standard-normal deviate, consuming exactly two uniform
// draws (four 32-bit words) from the underlying source.
func (g *Generator) Rand() float64 {
	u1 := g.src.Float64()
	u2 := g.src.Float64()
	// 1-u1 lies in (0,1], keeping the logarithm finite.
	r := math.Sqrt(-2 * math.Log(1-u1))

	return r * math.Cos(2*math.Pi*u2)
}

// Seed returns a copy of the underlying seed words.
func (g *Generator) Seed() []uint32 { return g.src.Seed() }

// SeedLength returns the number of seed words.
func (g *Generator) SeedLength() int { return g.src.SeedLength() }

// State returns a copy of the underlying state snapshot.
func (g *Generator) State() []uint32 { return g.src.State() }

// SetState restores the underlying source from a snapshot; see
// mt19937.SetState for the copy-vs-share branch taken in shared mode.
func (g *Generator) SetState(s []uint32) error { return g.src.SetState(s) }

// StateLength returns the snapshot length in 32-bit words.
func (g *Generator) StateLength() int { return g.src.StateLength() }

// ByteLength returns the snapshot length in bytes.
func (g *Generator) ByteLength() int { return g.src.ByteLength() }
