/*
Package rng implements the deterministic 28-bit generator core.

The generator state is a pair of 28-bit values. Each draw returns
Hash(state XOR counter), replaces state with state XOR Hash(state) and
increments the counter, wrapping it modulo 2^28. Hash is five rounds
over the Rijndael substitution table with reduction modulo 2^28-1.
Integer ranges mask the low bits of one draw, or stitch two draws
together for ranges wider than 2^20; out-of-range candidates are halved
back into bounds. Two draws cover 48 bits, wider ranges are rejected.
Floats and byte strings are derived from integer draws.

All of this is reproduced bit-for-bit from the reference algorithm and
validated against its published vectors; rounding, bit-width or ordering
changes here silently break cross-language compatibility.
*/
package rng
