// Package cauchy defines the generator contract, options and serialized form.
package cauchy

// Name is the canonical identifier of this generator family.
const Name = "cauchy"

// serializedType is the type tag of the serialized form.
const serializedType = "PRNG"

// Options configures generator construction.
//
// Fields:
//   - PRNG  — externally supplied standard-normal source. When set, it wins
//     over every other field and the generator runs in degraded mode
//     (no state introspection; see package docs).
//   - Seed  — seed words for the internally owned source.
//   - State — a full mt19937 snapshot to resume the internally owned source
//     from; wins over Seed.
//   - Copy  — whether a supplied State is deep-copied (true, the default
//     from DefaultOptions) or aliased by reference (false), sharing the
//     buffer with every other holder of the same slice.
//
// Precedence of initialization paths: PRNG > State > Seed > random default.
//
// Example:
//
//	opts := cauchy.DefaultOptions()
//	opts.State = snapshot
//	opts.Copy = false // share the buffer with other holders of snapshot
//	gen, err := cauchy.NewUnbound(&opts)
type Options struct {
	PRNG  func() float64
	Seed  []uint32
	State []uint32
	Copy  bool
}

// DefaultOptions returns the deterministic defaults: exclusive state
// ownership (Copy: true), internally owned source with random seeding.
// Callers mutate the result rather than constructing Options literals, so
// the Copy default survives.
func DefaultOptions() Options {
	return Options{Copy: true}
}

// Serialized is the plain-data form of a generator, suitable for any
// JSON-compatible encoder (see the statecodec package for JSON, CBOR and
// Msgpack codecs).
//
// Params is empty for an unbound generator and [x0, gamma] for a bound one.
type Serialized struct {
	Type   string    `json:"type" cbor:"type" msgpack:"type"`
	Name   string    `json:"name" cbor:"name" msgpack:"name"`
	State  []uint32  `json:"state" cbor:"state" msgpack:"state"`
	Params []float64 `json:"params" cbor:"params" msgpack:"params"`
}

// Generator is the callable entity returned by the factory. Exactly two
// concrete variants exist, chosen once at construction: a state-bearing one
// (internally owned source) and a degraded one (externally supplied source).
// Both expose the same method set.
type Generator interface {
	// Name returns the constant generator identifier, "cauchy".
	Name() string

	// Rand returns one variate using the bound (x0, gamma). On an unbound
	// generator it returns NaN without consuming any draws.
	Rand() float64

	// RandWith returns one variate using per-call parameters. If x0 or
	// gamma is NaN, or gamma <= 0, it returns NaN without consuming any
	// draws — the silent sentinel policy of the unbound call form.
	RandWith(x0, gamma float64) float64

	// PRNG returns the underlying standard-normal callable.
	PRNG() func() float64

	// Seed returns a copy of the seed words, or nil in degraded mode.
	Seed() []uint32

	// SeedLength returns the number of seed words, or 0 in degraded mode.
	SeedLength() int

	// State returns a copy of the current snapshot, or nil in degraded mode.
	State() []uint32

	// SetState restores the generator from a snapshot. Fails with
	// ErrInvalidState for malformed input. In shared mode an equal-length
	// snapshot propagates to co-holders of the buffer while a
	// different-length one rebinds this generator alone. No-op in
	// degraded mode.
	SetState(s []uint32) error

	// StateLength returns the snapshot length in words, or 0 in degraded mode.
	StateLength() int

	// ByteLength returns the snapshot length in bytes, or 0 in degraded mode.
	ByteLength() int

	// Serialize returns the plain-data form of the generator, or nil in
	// degraded mode.
	Serialize() *Serialized
}
