package cauchy

import "sync"

var (
	defaultOnce sync.Once
	defaultGen  Generator
)

// Default returns the shared, randomly seeded, unbound generator. It is
// created on first use and kept for the process lifetime.
func Default() Generator {
	defaultOnce.Do(func() {
		g, err := NewUnbound(nil)
		if err != nil {
			// Default construction has no options to misconfigure; a
			// failure here is a broken invariant, not a caller error.
			panic(err)
		}
		defaultGen = g
	})

	return defaultGen
}

// Rand draws one Cauchy(x0, gamma) variate from the shared default
// generator. Invalid parameters yield NaN per the unbound call policy.
func Rand(x0, gamma float64) float64 {
	return Default().RandWith(x0, gamma)
}
