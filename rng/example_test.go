package rng_test

import (
	"fmt"

	"github.com/tmarsteel/dprng/rng"
)

func ExampleNewSeeded() {
	g, _ := rng.NewSeeded(0)
	b, _ := g.NextBytes(4)
	fmt.Printf("% x\n", b)
	// Output: cc 68 2d 9c
}

func ExampleRng_NextInt() {
	g, _ := rng.NewSeeded(0)
	for i := 0; i < 4; i++ {
		v, _ := g.NextInt(1, 6)
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 5 1 6 5
}

func ExampleHash() {
	fmt.Printf("%#07x\n", rng.Hash(0))
	// Output: 0x41272cc
}
