package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/tmarsteel/dprng/entropy"
)

func TestOSBitsStayInRange(t *testing.T) {
	for _, n := range []uint{1, 7, 28, 32} {
		for i := 0; i < 16; i++ {
			v, err := OS.Bits(n)
			require.NoError(t, err)
			if n < 32 {
				assert.Less(t, v, uint32(1)<<n, "n=%d", n)
			}
		}
	}
}

func TestOSBitsRejectsBadCounts(t *testing.T) {
	_, err := OS.Bits(0)
	assert.Error(t, err)
	_, err = OS.Bits(33)
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	src := Fixed(0xdeadbeef)

	v, err := src.Bits(32)
	require.NoError(t, err)
	assert.EqualValues(t, 0xdeadbeef, v)

	v, err = src.Bits(28)
	require.NoError(t, err)
	assert.EqualValues(t, 0xeadbeef, v)

	v, err = src.Bits(4)
	require.NoError(t, err)
	assert.EqualValues(t, 0xf, v)

	_, err = src.Bits(0)
	assert.Error(t, err)
	_, err = src.Bits(40)
	assert.Error(t, err)
}
