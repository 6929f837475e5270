package rng

// Max is the largest 28-bit value, 2^28 - 1. It doubles as the hash
// reduction modulus and as the counter wrap threshold.
const Max = 0x0FFFFFFF

const hashRounds = 5

// hashRound performs one split-substitute-recombine-multiply-reduce
// round. The low 4 bits pass through without substitution. v*7 needs at
// most 31 bits, so uint32 arithmetic cannot wrap.
func hashRound(v uint32) uint32 {
	a := v & 0xF
	b := sbox[v>>4&0xFF]
	c := sbox[v>>12&0xFF]
	d := sbox[v>>20&0xFF]
	v = uint32(d)<<20 | uint32(c)<<12 | uint32(b)<<4 | a
	return v * 7 % Max
}

// Hash maps a 28-bit value to a 28-bit value through 5 rounds of
// substitution and reduction. The modulus is 2^28-1, not a power of two:
// outputs fall in [0, Max-1] and the all-ones pattern is unreachable.
// That asymmetry is part of the compatible behavior, not a defect.
// Bits of x above the 28th are ignored.
func Hash(x uint32) uint32 {
	v := x
	for i := 0; i < hashRounds; i++ {
		v = hashRound(v)
	}
	return v
}
