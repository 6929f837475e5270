/*
Package dprng - deterministic, portable pseudo-random number generator.

The generator produces bit-identical output sequences from identical seeds
across independent implementations in different languages. Its value is
reproducibility, not cryptographic strength: given a seed, a simulation,
a test run, or a procedurally generated world can be replayed exactly on
any platform that carries a conforming implementation.

The core is a 28-bit hash built from the Rijndael substitution table:
five rounds of field splitting, byte substitution, recombination,
multiplication by 7 and reduction modulo 2^28-1. A generator instance
holds a 28-bit state and a 28-bit call counter; every draw hashes the
pair, rewrites the state through a second independent hash evaluation and
increments the counter. Integer ranges, floats and byte strings are all
derived from that single primitive, so the whole output space of the
generator is pinned by a small set of published test vectors.

This is explicitly not a CSPRNG. The hash is chosen for being easy to
port bit-exactly, not for resisting prediction; do not use this package
for keys, tokens or anything an adversary must not guess.

Structure

- root package is empty

- the generator, the hash and the error taxonomy are in the rng subpackage

- seed acquisition from the operating system is in the entropy subpackage

- cmd/dprng is a command-line front end over both

Usage

Construct a generator with an explicit seed when the sequence must be
reproducible, or let it pull one from the operating system:

	g, err := rng.NewSeeded(0x35cf42)
	// or
	g, err := rng.New(rng.Opts{})

then draw values:

	n, err := g.NextInt(1, 6)       // inclusive integer range
	f := g.Next()                   // float in [0, 1]
	x, err := g.NextFloat64(-1, 1)  // float range
	b, err := g.NextBytes(16)       // byte string

A generator instance is not safe for concurrent use: every draw mutates
the (state, counter) pair. Give each goroutine its own instance, or
serialize calls externally. The substitution table is an immutable
constant and is shared safely by any number of instances.

All errors returned from this module have *errorx.Error underlying type
and belong to the rng.Errors namespace.
*/
package dprng
