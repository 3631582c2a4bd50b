// Package: randvar/cauchy
//
// generator.go — the two concrete generator variants.
//
// Contract (strict):
//   - stateGenerator owns a randn source and exposes the full accessor set;
//     all state-returning accessors return copies, never live buffers.
//   - externGenerator wraps a caller-supplied normal callable and runs in
//     degraded mode: state introspection of an unknown external source is
//     out of scope, so accessors return nil/zero sentinels, SetState is a
//     no-op and Serialize returns nil.
//   - Both variants apply the identical sampling and NaN-sentinel policy.

package cauchy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randvar/randn"
)

// params holds the optional parameter binding shared by both variants.
type params struct {
	bound bool
	x0    float64
	gamma float64
}

// rand applies the bound-parameter draw policy over src.
func (p params) rand(src func() float64) float64 {
	if !p.bound {
		return math.NaN()
	}

	return transform(src, p.x0, p.gamma)
}

// randWith applies the per-call draw policy over src: invalid parameters
// yield NaN without consuming draws (sentinel, not an error channel).
func randWith(src func() float64, x0, gamma float64) float64 {
	if math.IsNaN(x0) || math.IsNaN(gamma) || gamma <= 0 {
		return math.NaN()
	}

	return transform(src, x0, gamma)
}

// stateGenerator is the state-bearing variant over an internally owned
// standard-normal source.
type stateGenerator struct {
	src *randn.Generator
	params
}

// Name returns "cauchy".
func (g *stateGenerator) Name() string { return Name }

// Rand returns one variate with the bound parameters (NaN when unbound).
func (g *stateGenerator) Rand() float64 { return g.params.rand(g.src.Rand) }

// RandWith returns one variate with per-call parameters.
func (g *stateGenerator) RandWith(x0, gamma float64) float64 {
	return randWith(g.src.Rand, x0, gamma)
}

// PRNG returns the underlying standard-normal callable.
func (g *stateGenerator) PRNG() func() float64 { return g.src.Rand }

// Seed returns a copy of the seed words.
func (g *stateGenerator) Seed() []uint32 { return g.src.Seed() }

// SeedLength returns the number of seed words.
func (g *stateGenerator) SeedLength() int { return g.src.SeedLength() }

// State returns a copy of the current snapshot.
func (g *stateGenerator) State() []uint32 { return g.src.State() }

// SetState restores the source from a snapshot; malformed input fails with
// ErrInvalidState.
func (g *stateGenerator) SetState(s []uint32) error {
	if err := g.src.SetState(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	return nil
}

// StateLength returns the snapshot length in 32-bit words.
func (g *stateGenerator) StateLength() int { return g.src.StateLength() }

// ByteLength returns the snapshot length in bytes.
func (g *stateGenerator) ByteLength() int { return g.src.ByteLength() }

// Serialize returns the plain-data form: type tag, name, state snapshot and
// the bound parameters ([] when unbound).
func (g *stateGenerator) Serialize() *Serialized {
	s := &Serialized{
		Type:   serializedType,
		Name:   Name,
		State:  g.src.State(),
		Params: []float64{},
	}
	if g.bound {
		s.Params = []float64{g.x0, g.gamma}
	}

	return s
}

// externGenerator is the degraded variant over an externally supplied
// standard-normal callable.
type externGenerator struct {
	prng func() float64
	params
}

// Name returns "cauchy".
func (g *externGenerator) Name() string { return Name }

// Rand returns one variate with the bound parameters (NaN when unbound).
func (g *externGenerator) Rand() float64 { return g.params.rand(g.prng) }

// RandWith returns one variate with per-call parameters.
func (g *externGenerator) RandWith(x0, gamma float64) float64 {
	return randWith(g.prng, x0, gamma)
}

// PRNG returns the externally supplied callable.
func (g *externGenerator) PRNG() func() float64 { return g.prng }

// Seed returns nil: external source state is opaque.
func (g *externGenerator) Seed() []uint32 { return nil }

// SeedLength returns 0.
func (g *externGenerator) SeedLength() int { return 0 }

// State returns nil.
func (g *externGenerator) State() []uint32 { return nil }

// SetState is a no-op in degraded mode.
func (g *externGenerator) SetState([]uint32) error { return nil }

// StateLength returns 0.
func (g *externGenerator) StateLength() int { return 0 }

// ByteLength returns 0.
func (g *externGenerator) ByteLength() int { return 0 }

// Serialize returns nil: an external source has no serializable state.
func (g *externGenerator) Serialize() *Serialized { return nil }
