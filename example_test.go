//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"fmt"
)

// Example computes the digest of a text message.
func Example() {
	d1, err := Digest("mon texte")
	if err != nil {
		panic(err)
	}
	d2, err := Digest("mon texte")
	if err != nil {
		panic(err)
	}
	fmt.Printf("digest=%s\n", d1)
	fmt.Printf("length=%d equal=%v\n", len(d1), d1 == d2)

	// Output:
	// digest=82gP5BsAPtisEMnBk9RoSvbwecGapeUHMak+Zie0wZY=
	// length=44 equal=true
}

// ExampleCompress runs the pipeline stages one at a time.
func ExampleCompress() {
	padded := Pad([]byte("abc"))
	blocks, err := Segment(padded)
	if err != nil {
		panic(err)
	}
	state := IV
	for _, block := range blocks {
		state, err = Compress(block[:], state)
		if err != nil {
			panic(err)
		}
	}
	fmt.Printf("blocks=%d\n", len(blocks))
	fmt.Println(Encode(Finalize(state)))

	// Output:
	// blocks=1
	// ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=
}
