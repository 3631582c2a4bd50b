package cauchy

import (
	"fmt"
	"math"
)

// Validate checks the distribution parameter domain: x0 must be a finite
// real number, gamma strictly positive and non-NaN. Pure; no side effects.
//
// Returns ErrInvalidLocation or ErrInvalidScale (location checked first).
func Validate(x0, gamma float64) error {
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidLocation, x0)
	}
	if math.IsNaN(gamma) || gamma <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, gamma)
	}

	return nil
}
