// Package: randvar/cauchy
//
// errors.go — sentinel errors for construction and state restoration.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX), never on message text.
//   - All four classes are construction/configuration-time failures raised
//     synchronously; sampling itself never returns an error. The sole
//     runtime sentinel is the NaN result of the unbound call form.
//   - Implementations attach context via %w wrapping; sentinels stay bare.

package cauchy

import "errors"

var (
	// ErrInvalidLocation indicates x0 is NaN or not a finite real number.
	// Usage: if errors.Is(err, cauchy.ErrInvalidLocation) { /* fix x0 */ }.
	ErrInvalidLocation = errors.New("cauchy: location must be a finite number")

	// ErrInvalidScale indicates gamma is NaN, zero or negative; the scale
	// must be strictly positive.
	ErrInvalidScale = errors.New("cauchy: scale must be a positive number")

	// ErrInvalidOptions indicates a structurally invalid Options value,
	// e.g. an empty (but non-nil) seed slice.
	ErrInvalidOptions = errors.New("cauchy: invalid options")

	// ErrInvalidState indicates a snapshot that is not a well-formed state
	// buffer for the underlying source (wrong shape, version or length).
	ErrInvalidState = errors.New("cauchy: invalid state snapshot")
)
