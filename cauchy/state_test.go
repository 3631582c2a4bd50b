package cauchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randvar/cauchy"
)

// TestStateAccessors verifies lengths and the copy contract of the adapter.
func TestStateAccessors(t *testing.T) {
	g := newBound(t, 2.0, 3.0, 12345)

	assert.Equal(t, []uint32{12345}, g.Seed())
	assert.Equal(t, 1, g.SeedLength())
	assert.Equal(t, 629, g.StateLength(), "628 header+table words plus one seed word")
	assert.Equal(t, 4*629, g.ByteLength())

	// State() must be a copy: mutating it must not alter the generator.
	snap := g.State()
	ref := newBound(t, 2.0, 3.0, 12345)
	snap[10] ^= 0xffffffff
	for i := 0; i < 20; i++ {
		assert.Equal(t, ref.Rand(), g.Rand(), "draw %d affected by snapshot mutation", i)
	}
}

// TestSetState_RestoreReplays verifies the determinism invariant: capture,
// draw 100, restore, draw 100 again — bit-identical sequence.
func TestSetState_RestoreReplays(t *testing.T) {
	g := newBound(t, -1.5, 0.25, 4242)
	snap := g.State()

	first := make([]float64, 100)
	for i := range first {
		first[i] = g.Rand()
	}

	require.NoError(t, g.SetState(snap))
	for i := range first {
		assert.Equal(t, first[i], g.Rand(), "replayed draw %d diverged", i)
	}
}

// TestSetState_RejectsMalformed verifies the adapter's validation surface.
func TestSetState_RejectsMalformed(t *testing.T) {
	g := newBound(t, 0, 1, 1)
	assert.ErrorIs(t, g.SetState([]uint32{1, 2, 3}), cauchy.ErrInvalidState)

	bad := g.State()
	bad[0] = 99 // unknown format version
	assert.ErrorIs(t, g.SetState(bad), cauchy.ErrInvalidState)
}

// TestSharingLaw verifies that two generators constructed with Copy: false
// over one snapshot are NOT independent: a draw through one advances the
// other.
func TestSharingLaw(t *testing.T) {
	seedOpts := cauchy.DefaultOptions()
	seedOpts.Seed = []uint32{2718}
	base, err := cauchy.NewUnbound(&seedOpts)
	require.NoError(t, err)
	snap := base.State()

	shared := cauchy.Options{State: snap, Copy: false}
	a, err := cauchy.New(2.0, 3.0, &shared)
	require.NoError(t, err)
	b, err := cauchy.New(2.0, 3.0, &shared)
	require.NoError(t, err)

	// Independent reference over its own copy of the same snapshot.
	exclusive := cauchy.DefaultOptions()
	exclusive.State = append([]uint32(nil), snap...)
	ref, err := cauchy.New(2.0, 3.0, &exclusive)
	require.NoError(t, err)

	r1, r2, r3 := ref.Rand(), ref.Rand(), ref.Rand()
	assert.Equal(t, r1, a.Rand(), "first draw through a")
	assert.Equal(t, r2, b.Rand(), "b must continue where a left off")
	assert.Equal(t, r3, a.Rand(), "a must continue where b left off")
}

// TestDetachmentLaw verifies that assigning a different-length snapshot to
// one of two sharers rebinds it, after which their outputs diverge.
func TestDetachmentLaw(t *testing.T) {
	seedOpts := cauchy.DefaultOptions()
	seedOpts.Seed = []uint32{31415}
	base, err := cauchy.NewUnbound(&seedOpts)
	require.NoError(t, err)
	snap := base.State()

	shared := cauchy.Options{State: snap, Copy: false}
	a, err := cauchy.New(0.0, 1.0, &shared)
	require.NoError(t, err)
	b, err := cauchy.New(0.0, 1.0, &shared)
	require.NoError(t, err)

	// A longer seed section yields a longer, still-valid snapshot.
	otherOpts := cauchy.DefaultOptions()
	otherOpts.Seed = []uint32{1, 2, 3}
	other, err := cauchy.NewUnbound(&otherOpts)
	require.NoError(t, err)
	require.NotEqual(t, len(snap), other.StateLength())

	require.NoError(t, a.SetState(other.State()))
	assert.Equal(t, other.StateLength(), a.StateLength(), "a rebound to the new lineage")
	assert.Equal(t, len(snap), b.StateLength(), "b keeps the original buffer")
	assert.NotEqual(t, a.Rand(), b.Rand(), "detached generators must diverge")
}

// TestSharedSetState_SameLengthPropagates verifies the in-place branch of
// the state setter: an equal-length restore through one sharer rewinds both.
func TestSharedSetState_SameLengthPropagates(t *testing.T) {
	seedOpts := cauchy.DefaultOptions()
	seedOpts.Seed = []uint32{1618}
	base, err := cauchy.NewUnbound(&seedOpts)
	require.NoError(t, err)
	snap := base.State()

	shared := cauchy.Options{State: snap, Copy: false}
	a, err := cauchy.New(1.0, 2.0, &shared)
	require.NoError(t, err)
	b, err := cauchy.New(1.0, 2.0, &shared)
	require.NoError(t, err)

	rewind := a.State()
	first := a.Rand()
	_ = b.Rand()

	require.NoError(t, a.SetState(rewind))
	assert.Equal(t, first, b.Rand(), "rewind through a must be visible to b")
}

// TestSerialize_Bound verifies the serialized form of a bound generator.
func TestSerialize_Bound(t *testing.T) {
	g := newBound(t, 2.0, 3.0, 12345)
	s := g.Serialize()
	require.NotNil(t, s)

	assert.Equal(t, "PRNG", s.Type)
	assert.Equal(t, "cauchy", s.Name)
	assert.Equal(t, g.State(), s.State)
	assert.Equal(t, []float64{2.0, 3.0}, s.Params)
}

// TestSerialize_Unbound verifies Params is empty (not nil) when unbound.
func TestSerialize_Unbound(t *testing.T) {
	g := newUnbound(t, 12345)
	s := g.Serialize()
	require.NotNil(t, s)

	assert.Equal(t, "PRNG", s.Type)
	assert.Equal(t, "cauchy", s.Name)
	assert.NotNil(t, s.Params)
	assert.Empty(t, s.Params)
}

// TestSerialize_StateIsCopy verifies mutating the serialized state does not
// alter the live generator.
func TestSerialize_StateIsCopy(t *testing.T) {
	g := newUnbound(t, 55)
	ref := newUnbound(t, 55)

	s := g.Serialize()
	s.State[5] ^= 0xffffffff
	for i := 0; i < 20; i++ {
		assert.Equal(t, ref.RandWith(0, 1), g.RandWith(0, 1), "draw %d affected", i)
	}
}

// TestDegradedMode verifies every state accessor of an external-source
// generator returns the absent sentinel.
func TestDegradedMode(t *testing.T) {
	opts := cauchy.DefaultOptions()
	opts.PRNG = func() float64 { return 0.5 }
	g, err := cauchy.NewUnbound(&opts)
	require.NoError(t, err)

	assert.Nil(t, g.Seed())
	assert.Equal(t, 0, g.SeedLength())
	assert.Nil(t, g.State())
	assert.Equal(t, 0, g.StateLength())
	assert.Equal(t, 0, g.ByteLength())
	assert.Nil(t, g.Serialize())
	assert.NoError(t, g.SetState([]uint32{1, 2, 3}), "SetState is a no-op in degraded mode")

	// Sampling still works through the supplied source.
	assert.Equal(t, 0.0+1.0*(0.5/0.5), g.RandWith(0.0, 1.0))
}
