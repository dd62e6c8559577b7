//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"encoding/binary"
	"math/bits"
)

// Compress folds one block into the accumulator state and returns the
// new state. The argument state is not modified.
func Compress(block []byte, state State) (State, error) {
	if len(block) != BlockSize {
		return state, &InvalidBlockSizeError{
			Size: len(block),
		}
	}
	var w [rounds]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < rounds; i++ {
		v1 := w[i-2]
		s1 := rotr(v1, 17) ^ rotr(v1, 19) ^ (v1 >> 10)
		v2 := w[i-15]
		s0 := rotr(v2, 7) ^ rotr(v2, 18) ^ (v2 >> 3)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3],
		state[4], state[5], state[6], state[7]

	for i := 0; i < rounds; i++ {
		S1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := h + S1 + ch + K[i] + w[i]

		S0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := S0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return State{
		state[0] + a,
		state[1] + b,
		state[2] + c,
		state[3] + d,
		state[4] + e,
		state[5] + f,
		state[6] + g,
		state[7] + h,
	}, nil
}

// rotr rotates x right by n bits.
func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}
