// Package randvar is your toolkit for deterministic, restorable random
// variate generation — from the raw 32-bit uniform core up to heavy-tailed
// distribution samplers.
//
// 🚀 What is randvar?
//
//	A small, focused library that brings together:
//		• mt19937/    — 32-bit Mersenne Twister with a versioned, serializable
//		  state snapshot (seed + table + cursor in one uint32 buffer)
//		• randn/      — standard-normal source layered on mt19937, exposing
//		  the same state-accessor shape so sources compose cleanly
//		• cauchy/     — Cauchy variate generator factory: bound or per-call
//		  parameters, state capture/restore, shared-buffer semantics,
//		  serialization, degraded mode for external sources
//		• statecodec/ — JSON / CBOR / Msgpack codecs for persisting
//		  serialized generator state
//
// ✨ Why choose randvar?
//
//   - Reproducibility first — every generator can snapshot and replay its
//     state bit-for-bit
//   - Explicit ownership — state buffers are exclusively owned by default,
//     shared by reference only when you ask (Copy: false)
//   - Pure Go core — no cgo; codecs are the only third-party surface
//   - Composable — normal and Cauchy sources mirror the same accessor
//     contract, so layering costs nothing
//
// Quick start:
//
//	import "github.com/katalvlaran/randvar/cauchy"
//
//	opts := cauchy.DefaultOptions()
//	opts.Seed = []uint32{12345}
//	gen, err := cauchy.New(2.0, 3.0, &opts)
//	if err != nil {
//	  // handle ErrInvalidLocation / ErrInvalidScale / option errors
//	}
//	x := gen.Rand() // one Cauchy(x0=2, gamma=3) variate
//
// Dive into the per-package doc.go files for contracts, state-buffer layout
// and the sharing/detachment rules.
package randvar
