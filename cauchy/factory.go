// Package: randvar/cauchy
//
// factory.go — generator construction.
//
// Construction forms:
//   - New(x0, gamma, opts) — validates and binds fixed parameters.
//   - NewUnbound(opts)     — parameters supplied per call via RandWith.
//
// Exactly one state-initialization path is honored, in precedence order
// PRNG > State > Seed > random default. Underlying seed/state validation
// failures are mapped onto this package's error taxonomy.

package cauchy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/randvar/mt19937"
	"github.com/katalvlaran/randvar/randn"
)

// New constructs a generator bound to the fixed parameters (x0, gamma).
// Parameters are validated eagerly (ErrInvalidLocation / ErrInvalidScale);
// the bound values are immutable for the generator's lifetime. A nil opts
// means DefaultOptions.
func New(x0, gamma float64, opts *Options) (Generator, error) {
	if err := Validate(x0, gamma); err != nil {
		return nil, err
	}

	return newGenerator(params{bound: true, x0: x0, gamma: gamma}, opts)
}

// NewUnbound constructs a generator requiring (x0, gamma) on every call via
// RandWith. A nil opts means DefaultOptions.
func NewUnbound(opts *Options) (Generator, error) {
	return newGenerator(params{}, opts)
}

// newGenerator selects the concrete variant and wires the source.
func newGenerator(p params, opts *Options) (Generator, error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}

	// External source wins over every other initialization path and
	// selects the degraded variant.
	if opts.PRNG != nil {
		return &externGenerator{prng: opts.PRNG, params: p}, nil
	}

	src, err := randn.New(&mt19937.Options{
		Seed:  opts.Seed,
		State: opts.State,
		Copy:  opts.Copy,
	})
	if err != nil {
		switch {
		case errors.Is(err, mt19937.ErrInvalidSeed):
			return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		case errors.Is(err, mt19937.ErrInvalidState):
			return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}

		return nil, err
	}

	return &stateGenerator{src: src, params: p}, nil
}
