//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

// TraceStep records the accumulator after one compressed block.
type TraceStep struct {
	Index int
	Block Block
	State State
}

// SumTrace computes the digest of message like Sum and returns the
// intermediate accumulator states, one step per block.
func SumTrace(message []byte) ([Size]byte, []TraceStep) {
	padded := Pad(message)
	steps := make([]TraceStep, 0, len(padded)/BlockSize)

	digest := sumPadded(padded, func(idx int, block *Block, state State) {
		steps = append(steps, TraceStep{
			Index: idx,
			Block: *block,
			State: state,
		})
	})
	return digest, steps
}
