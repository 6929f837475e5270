package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/tmarsteel/dprng/rng"
)

func TestHashVectors(t *testing.T) {
	vectors := []struct {
		in, out uint32
	}{
		{0x0000000, 0x41272cc},
		{0x0000001, 0xb624556},
		{0x0000002, 0xdac9b09},
		{0x00000ff, 0x4759937},
		{0x0abcdef, 0x514c374},
		{0x0fffffe, 0xc8ffd09},
		{0x1234567, 0x0e6e724},
		{0x35cf421, 0xef8959c},
		{0x5555555, 0xd9dfb61},
		{0x7654321, 0x53cae10},
		{0x8899aab, 0x8f4020e},
		{0xaaaaaaa, 0x110b1d4},
		{0xdeadbee, 0xbd2226e},
		{0xfffffff, 0x506f3ca},
	}
	for _, v := range vectors {
		assert.Equal(t, v.out, Hash(v.in), "Hash(%#07x)", v.in)
	}
}

// The modulus 2^28-1 is not a power of two: the all-ones output is
// unreachable and must stay unreachable.
func TestHashStaysBelowModulus(t *testing.T) {
	for x := uint32(0); x <= Max; x += 0x10203 {
		assert.Less(t, Hash(x), uint32(Max), "Hash(%#07x)", x)
	}
}
