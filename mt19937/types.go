// Package mt19937 defines construction options and the snapshot layout.
package mt19937

// Snapshot layout offsets and fixed values. The buffer is self-describing:
// a reader can validate it from the first two words alone.
const (
	// formatVersion is the only snapshot format currently understood.
	formatVersion = 1

	// tableLen is the Mersenne Twister table size (N).
	tableLen = 624

	versionWord = 0
	lengthWord  = 1
	tableOffset = 2
	cursorWord  = tableOffset + tableLen // 626
	seedLenWord = cursorWord + 1 // 627
	seedOffset  = seedLenWord + 1 // 628

	// minStateLen is the smallest valid snapshot: header + table + cursor +
	// seed length + one seed word.
	minStateLen = seedOffset + 1 // 629
)

// Options configures construction of an MT19937 generator.
//
// Fields:
//   - Seed  — seed words (one or more). Empty-but-non-nil fails ErrInvalidSeed.
//   - State — a full snapshot to resume from (see package docs for layout).
//     Takes precedence over Seed.
//   - Copy  — whether a supplied State is deep-copied before use (true,
//     the default from DefaultOptions) or aliased by reference (false),
//     in which case the generator shares the buffer with every other
//     holder of the same slice.
//
// Precedence of initialization paths: State > Seed > random default seed.
//
// Example:
//
//	opts := mt19937.DefaultOptions()
//	opts.Seed = []uint32{12345}
//	g, err := mt19937.New(&opts)
type Options struct {
	Seed  []uint32
	State []uint32
	Copy  bool
}

// DefaultOptions returns the deterministic defaults: exclusive state
// ownership (Copy: true), no seed, no snapshot. Callers mutate the result
// rather than constructing Options literals, so the Copy default survives.
func DefaultOptions() Options {
	return Options{Copy: true}
}
