package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSboxIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range sbox {
		assert.False(t, seen[v], "duplicate sbox value %#02x", v)
		seen[v] = true
	}
}

func TestSboxCornerEntries(t *testing.T) {
	assert.EqualValues(t, 0x63, sbox[0x00])
	assert.EqualValues(t, 0xca, sbox[0x10])
	assert.EqualValues(t, 0x00, sbox[0x52])
	assert.EqualValues(t, 0x16, sbox[0xff])
}

// The per-round values of the two fully worked reference traces.
func TestHashRoundTraces(t *testing.T) {
	traces := []struct {
		in     uint32
		rounds [hashRounds]uint32
	}{
		{0x0000000, [hashRounds]uint32{0xb7b7b52, 0xa3a4d42, 0x4800f8e, 0x40b6cd4, 0x41272cc}},
		{0x35cf421, [hashRounds]uint32{0x1dc734b, 0x816aad1, 0x5412137, 0xe5826e1, 0xef8959c}},
	}
	for _, tr := range traces {
		v := tr.in
		for i, want := range tr.rounds {
			v = hashRound(v)
			assert.Equal(t, want, v, "input %#07x round %d", tr.in, i+1)
		}
	}
}

// Each transition derives the output from the pre-mutation pair, then
// rewrites the state through an independent hash of the bare state.
func TestAdvanceTransitions(t *testing.T) {
	r := &Rng{}
	steps := []struct {
		h, state, counter uint32
	}{
		{0x41272cc, 0x41272cc, 1},
		{0x8418668, 0xaf7a950, 2},
		{0xa3dbd2d, 0xf347402, 3},
		{0xcf9b49c, 0x22963f1, 4},
	}
	for i, step := range steps {
		h := r.advance()
		assert.Equal(t, step.h, h, "step %d output", i)
		assert.Equal(t, step.state, r.state, "step %d state", i)
		assert.Equal(t, step.counter, r.counter, "step %d counter", i)
	}
}

// The counter wraps to 0 after 2^28 advances while the state keeps
// evolving. Pinned by setting the counter to its maximum directly: the
// wrap comparison is the same one the long walk would hit.
func TestCounterWrap(t *testing.T) {
	r := &Rng{state: 0x123, counter: Max}
	r.advance()
	assert.EqualValues(t, 0, r.counter)
	assert.NotEqualValues(t, 0x123, r.state)
	assert.LessOrEqual(t, r.state, uint32(Max))
}

// A range of exactly one value consumes no draw at all.
func TestDegenerateRangeLeavesStateAlone(t *testing.T) {
	r := &Rng{state: 0x70554f}
	for i := 0; i < 3; i++ {
		v, err := r.NextInt(100, 100)
		assert.NoError(t, err)
		assert.EqualValues(t, 100, v)
	}
	assert.EqualValues(t, 0x70554f, r.state)
	assert.EqualValues(t, 0, r.counter)
}

// Wide ranges consume two draws per value, narrow ranges one.
func TestDrawConsumption(t *testing.T) {
	r := &Rng{}
	_, err := r.NextInt(0, 0xFF)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, r.counter)

	r = &Rng{}
	_, err = r.NextInt(0, Max)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, r.counter)
}
