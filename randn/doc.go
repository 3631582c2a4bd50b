// Package randn generates standard-normal deviates (mean 0, variance 1)
// on top of the mt19937 uniform core.
//
// The sampler is the Box–Muller transform in its trigonometric form,
// consuming exactly two uniform draws per deviate and carrying no cached
// spare. That choice keeps the entire generator state inside the underlying
// mt19937 snapshot, so capture/restore and shared-buffer semantics come for
// free and remain bit-exact.
//
// The accessor set (Seed, SeedLength, State, SetState, StateLength,
// ByteLength) mirrors mt19937's shape on purpose: sources that share this
// contract can be layered — the cauchy package layers on randn exactly the
// way randn layers on mt19937.
//
// Not safe for concurrent use without external synchronization.
package randn
