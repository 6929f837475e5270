// Package entropy abstracts the "give me N random bits" capability used
// to pick a generator seed when the caller supplies none. The generator
// core stays free of platform I/O; this package owns it.
package entropy

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/joomcode/errorx"
)

// Source yields up to 32 uniformly random bits per call.
type Source interface {
	// Bits returns n random bits, 1 <= n <= 32, in the low bits of the
	// result.
	Bits(n uint) (uint32, error)
}

// OS reads from the operating system generator via crypto/rand.
var OS Source = osSource{}

type osSource struct{}

func (osSource) Bits(n uint) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, errorx.IllegalArgument.New("bit count %d is out of range 1..32", n)
	}
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, errorx.ExternalError.Wrap(err, "operating system entropy source failed")
	}
	v := binary.BigEndian.Uint32(buf[:])
	if n < 32 {
		v &= uint32(1)<<n - 1
	}
	return v, nil
}

// Fixed returns a source that always yields the low n bits of v. Useful
// for replaying a logged seed and in tests.
func Fixed(v uint32) Source { return fixed(v) }

type fixed uint32

func (f fixed) Bits(n uint) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, errorx.IllegalArgument.New("bit count %d is out of range 1..32", n)
	}
	v := uint32(f)
	if n < 32 {
		v &= uint32(1)<<n - 1
	}
	return v, nil
}
