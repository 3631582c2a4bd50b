package cauchy_test

import (
	"testing"

	"github.com/katalvlaran/randvar/cauchy"
)

// benchBound builds a deterministically seeded bound generator.
func benchBound(b *testing.B) cauchy.Generator {
	opts := cauchy.DefaultOptions()
	opts.Seed = []uint32{12345}
	g, err := cauchy.New(2.0, 3.0, &opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return g
}

// BenchmarkRand_Bound measures the bound-parameter hot path.
func BenchmarkRand_Bound(b *testing.B) {
	g := benchBound(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Rand()
	}
}

// BenchmarkRandWith_Unbound measures the per-call-parameter path, including
// its sentinel checks.
func BenchmarkRandWith_Unbound(b *testing.B) {
	opts := cauchy.DefaultOptions()
	opts.Seed = []uint32{12345}
	g, err := cauchy.NewUnbound(&opts)
	if err != nil {
		b.Fatalf("NewUnbound failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.RandWith(2.0, 3.0)
	}
}

// BenchmarkSerialize measures snapshot composition.
func BenchmarkSerialize(b *testing.B) {
	g := benchBound(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Serialize()
	}
}
