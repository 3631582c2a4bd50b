// Package: randvar/mt19937
//
// mt19937.go — generator core: seeding, block generation, tempering,
// snapshot capture/restore with copy-vs-share semantics.
//
// Contract (strict):
//   - The live state is the snapshot-layout buffer itself; every mutation
//     (draws, restores) happens inside that buffer.
//   - State() and Seed() return copies, never the live buffer.
//   - SetState applies the equal-length/different-length branch explicitly
//     (see method docs); this is public contract, not an implementation
//     accident.
//   - No panics at runtime; all validation surfaces as sentinel errors.

package mt19937

import (
	"fmt"
	"time"
)

// Mersenne Twister constants (Matsumoto & Nishimura reference values).
const (
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	knuthMultiplier  = 1812433253
	initArrayFirst   = 19650218
	initArrayMulOne  = 1664525
	initArrayMulTwo  = 1566083941
	twoPow26         = 67108864.0          // 2^26
	twoPow53         = 9007199254740992.0 // 2^53
)

// MT19937 is a 32-bit Mersenne Twister generator. The zero value is not
// ready to use; construct with New.
type MT19937 struct {
	// buf holds the complete snapshot-layout state. In shared mode it may
	// alias a caller-owned slice.
	buf []uint32
	// shared records construction-time Copy: false; it selects the SetState
	// branch (in-place replace vs reference adoption).
	shared bool
}

// New constructs a generator from opts. A nil opts means DefaultOptions.
// Initialization precedence: State > Seed > random default seed.
//
// Returns ErrInvalidSeed for an empty seed slice and ErrInvalidState for a
// malformed snapshot.
func New(opts *Options) (*MT19937, error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	g := &MT19937{shared: !opts.Copy}

	switch {
	case opts.State != nil:
		if err := validateSnapshot(opts.State); err != nil {
			return nil, err
		}
		if opts.Copy {
			g.buf = append([]uint32(nil), opts.State...)
		} else {
			g.buf = opts.State
		}
	case opts.Seed != nil:
		if len(opts.Seed) == 0 {
			return nil, ErrInvalidSeed
		}
		g.reseed(opts.Seed)
	default:
		g.reseed([]uint32{timeSeed()})
	}

	return g, nil
}

// reseed allocates a fresh buffer sized for seed and initializes the table.
func (g *MT19937) reseed(seed []uint32) {
	g.buf = make([]uint32, seedOffset+len(seed))
	g.buf[versionWord] = formatVersion
	g.buf[lengthWord] = tableLen
	g.buf[seedLenWord] = uint32(len(seed))
	copy(g.buf[seedOffset:], seed)

	if len(seed) == 1 {
		g.initGenrand(seed[0])
	} else {
		g.initByArray(seed)
	}
	g.buf[cursorWord] = tableLen
}

// initGenrand seeds the table from a single word via the Knuth recurrence.
func (g *MT19937) initGenrand(s uint32) {
	mt := g.buf[tableOffset : tableOffset+tableLen]
	mt[0] = s
	for i := 1; i < tableLen; i++ {
		mt[i] = knuthMultiplier*(mt[i-1]^(mt[i-1]>>30)) + uint32(i)
	}
}

// initByArray seeds the table from a multi-word key (init_by_array of the
// reference implementation), guaranteeing the full key influences the table.
func (g *MT19937) initByArray(key []uint32) {
	g.initGenrand(initArrayFirst)
	mt := g.buf[tableOffset : tableOffset+tableLen]

	i, j := 1, 0
	k := tableLen
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		mt[i] = (mt[i] ^ ((mt[i-1] ^ (mt[i-1] >> 30)) * initArrayMulOne)) + key[j] + uint32(j)
		i++
		j++
		if i >= tableLen {
			mt[0] = mt[tableLen-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = tableLen - 1; k > 0; k-- {
		mt[i] = (mt[i] ^ ((mt[i-1] ^ (mt[i-1] >> 30)) * initArrayMulTwo)) - uint32(i)
		i++
		if i >= tableLen {
			mt[0] = mt[tableLen-1]
			i = 1
		}
	}
	// Ensure a non-zero table.
	mt[0] = upperMask
}

// Uint32 returns the next 32-bit word of the sequence.
func (g *MT19937) Uint32() uint32 {
	mt := g.buf[tableOffset : tableOffset+tableLen]
	mti := g.buf[cursorWord]

	if mti >= tableLen {
		// Regenerate the whole block of tableLen words.
		mag01 := [2]uint32{0, matrixA}
		var y uint32
		var kk int
		for kk = 0; kk < tableLen-mtM; kk++ {
			y = (mt[kk] & upperMask) | (mt[kk+1] & lowerMask)
			mt[kk] = mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < tableLen-1; kk++ {
			y = (mt[kk] & upperMask) | (mt[kk+1] & lowerMask)
			mt[kk] = mt[kk+(mtM-tableLen)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (mt[tableLen-1] & upperMask) | (mt[0] & lowerMask)
		mt[tableLen-1] = mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		mti = 0
	}

	y := mt[mti]
	g.buf[cursorWord] = mti + 1

	// Tempering.
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 returns a uniform deviate in [0,1) with 53-bit precision,
// consuming two 32-bit draws.
func (g *MT19937) Float64() float64 {
	a := g.Uint32() >> 5 // 27 high bits
	b := g.Uint32() >> 6 // 26 high bits
	return (float64(a)*twoPow26 + float64(b)) / twoPow53
}

// Seed returns a copy of the seed words that started this lineage. The seed
// survives snapshot restores because it travels inside the state buffer.
func (g *MT19937) Seed() []uint32 {
	return append([]uint32(nil), g.buf[seedOffset:]...)
}

// SeedLength returns the number of seed words.
func (g *MT19937) SeedLength() int {
	return len(g.buf) - seedOffset
}

// State returns a copy of the current snapshot. Mutating the returned slice
// never alters the generator; use SetState to apply a snapshot.
func (g *MT19937) State() []uint32 {
	return append([]uint32(nil), g.buf...)
}

// StateLength returns the snapshot length in 32-bit words.
func (g *MT19937) StateLength() int {
	return len(g.buf)
}

// ByteLength returns the snapshot length in bytes.
func (g *MT19937) ByteLength() int {
	return 4 * len(g.buf)
}

// SetState replaces the generator state with s after validating it.
//
// Exclusive mode (Copy: true at construction): the snapshot is always deep
// copied; the generator never aliases s.
//
// Shared mode (Copy: false): an equal-length snapshot is copied INTO the
// live buffer, so every generator aliasing that buffer observes the
// replacement; a different-length snapshot instead rebinds this generator
// to s by reference, silently detaching it from previous co-holders.
func (g *MT19937) SetState(s []uint32) error {
	if err := validateSnapshot(s); err != nil {
		return err
	}
	if !g.shared {
		if len(s) == len(g.buf) {
			copy(g.buf, s)
		} else {
			g.buf = append([]uint32(nil), s...)
		}

		return nil
	}
	if len(s) == len(g.buf) {
		copy(g.buf, s) // propagate to co-holders
	} else {
		g.buf = s // rebind: share with the holders of s instead
	}

	return nil
}

// validateSnapshot checks the structural invariants of a snapshot buffer.
func validateSnapshot(s []uint32) error {
	if len(s) < minStateLen {
		return fmt.Errorf("%w: length %d below minimum %d", ErrInvalidState, len(s), minStateLen)
	}
	if s[versionWord] != formatVersion {
		return fmt.Errorf("%w: unknown format version %d", ErrInvalidState, s[versionWord])
	}
	if s[lengthWord] != tableLen {
		return fmt.Errorf("%w: table length %d, want %d", ErrInvalidState, s[lengthWord], tableLen)
	}
	if s[cursorWord] > tableLen {
		return fmt.Errorf("%w: cursor %d out of range", ErrInvalidState, s[cursorWord])
	}
	if int(s[seedLenWord]) != len(s)-seedOffset || s[seedLenWord] == 0 {
		return fmt.Errorf("%w: seed section length %d disagrees with buffer size %d", ErrInvalidState, s[seedLenWord], len(s))
	}

	return nil
}

// timeSeed derives a default seed word from the wall clock.
func timeSeed() uint32 {
	return uint32(time.Now().UnixNano())
}
