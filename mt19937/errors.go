package mt19937

import "errors"

var (
	// ErrInvalidSeed indicates the supplied seed slice is empty.
	// A seed must carry at least one 32-bit word.
	ErrInvalidSeed = errors.New("mt19937: seed must contain at least one word")

	// ErrInvalidState indicates a snapshot that is not a well-formed state
	// buffer: too short, unknown format version, wrong table length, cursor
	// out of range, or a seed section whose declared length disagrees with
	// the buffer size. Check with errors.Is(err, ErrInvalidState).
	ErrInvalidState = errors.New("mt19937: malformed state snapshot")
)
