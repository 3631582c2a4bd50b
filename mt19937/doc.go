// Package mt19937 implements the 32-bit Mersenne Twister pseudorandom
// number generator (period 2^19937−1) with a fully serializable state.
//
// 🚀 What makes this one different?
//
//	The live generator state IS its snapshot: one versioned []uint32 buffer
//	holding the seed, the 624-word twister table and the cursor. That single
//	decision buys three properties:
//	  • capture/restore is a slice copy — replaying from a snapshot
//	    reproduces all subsequent output bit-for-bit
//	  • the seed that produced a lineage survives every restore
//	  • two generators can alias one buffer (Copy: false) and advance in
//	    lock-step, which is how downstream samplers implement shared state
//
// Snapshot layout (all words uint32):
//
//	word 0        format version (currently 1)
//	word 1        table length (always 624)
//	words 2..625  twister table
//	word 626      cursor index, 0..624
//	word 627      seed length L (≥ 1)
//	words 628..   L seed words
//
// Two snapshots differ in total length exactly when their seed sections do;
// SetState exploits this to tell "replace contents" apart from "rebind
// buffer" in shared mode (see SetState).
//
// ⚙️ Usage:
//
//	opts := mt19937.DefaultOptions()
//	opts.Seed = []uint32{12345}
//	g, err := mt19937.New(&opts)
//	if err != nil { ... }
//	u := g.Float64() // 53-bit uniform in [0,1)
//
// Not safe for concurrent use; callers synchronize externally, in
// particular when sharing one state buffer across generators.
package mt19937
