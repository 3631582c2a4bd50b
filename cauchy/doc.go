// Package cauchy generates pseudorandom variates from the Cauchy
// distribution with location x0 and scale gamma > 0.
//
// 🚀 How does it work?
//
//	Each variate is the ratio-of-normals transform applied to two
//	independent standard-normal draws n1, n2:
//
//	    X = x0 + gamma * (n1 / n2)
//
//	The ratio of two independent standard normals is exactly
//	Cauchy(0, 1); shifting and scaling stays inside the family, so the
//	transform is mathematically exact, not an approximation. If n2 is
//	exactly 0, IEEE-754 division yields ±Inf (or NaN for 0/0) — accepted
//	behavior for a heavy-tailed, mean-free distribution, not an error.
//
// ✨ Two construction forms:
//
//   - New(x0, gamma, opts)  — parameters validated once, bound for the
//     generator's lifetime; draw with Rand().
//   - NewUnbound(opts)      — parameters supplied per call via
//     RandWith(x0, gamma); invalid per-call parameters yield NaN
//     silently (hot-path sentinel policy, by contrast with the hard
//     validation errors at construction).
//
// State handling:
//
//	A generator with an internally owned source exposes the full accessor
//	set (Seed, SeedLength, State, SetState, StateLength, ByteLength) plus
//	Serialize. Snapshots are copies; restoring one replays the exact output
//	sequence. With Copy: false, generators alias one state buffer and
//	advance in lock-step — see SetState for the equal-length/"rebind" rule.
//
//	A generator constructed around an externally supplied normal source
//	(Options.PRNG) runs in degraded mode: the state of an unknown external
//	source cannot be introspected, so the accessors return nil/zero,
//	SetState is a no-op and Serialize returns nil.
//
// ⚙️ Usage:
//
//	opts := cauchy.DefaultOptions()
//	opts.Seed = []uint32{12345}
//	gen, err := cauchy.New(2.0, 3.0, &opts)
//	if err != nil {
//	  // ErrInvalidLocation, ErrInvalidScale, ErrInvalidOptions, ErrInvalidState
//	}
//	x := gen.Rand()
//
// Generators are not safe for concurrent use; sharing one state buffer
// across goroutines without external synchronization is undefined.
package cauchy
