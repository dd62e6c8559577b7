//
// profile.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"time"

	"github.com/markkurossi/biso"
	"github.com/markkurossi/biso/timing"
)

// profileInputs hashes the inputs sequentially, one pipeline stage
// at a time, and records the stage durations into t.
func profileInputs(inputs []input, t *timing.Timing) [][biso.Size]byte {
	var dPad, dSegment, dCompress, dFinalize time.Duration
	var numBlocks int

	result := make([][biso.Size]byte, len(inputs))
	for idx, in := range inputs {
		start := time.Now()
		padded := biso.Pad(in.data)
		padDone := time.Now()

		blocks, err := biso.Segment(padded)
		if err != nil {
			panic(err)
		}
		segmentDone := time.Now()

		state := biso.IV
		for i := range blocks {
			state, err = biso.Compress(blocks[i][:], state)
			if err != nil {
				panic(err)
			}
		}
		compressDone := time.Now()

		result[idx] = biso.Finalize(state)
		end := time.Now()

		dPad += padDone.Sub(start)
		dSegment += segmentDone.Sub(padDone)
		dCompress += compressDone.Sub(segmentDone)
		dFinalize += end.Sub(compressDone)
		numBlocks += len(blocks)
	}

	sample := t.Sample("Digest", []string{fmt.Sprintf("%d blocks", numBlocks)})
	sample.AbsSubSample("Pad", dPad)
	sample.AbsSubSample("Segment", dSegment)
	sample.AbsSubSample("Compress", dCompress)
	sample.AbsSubSample("Finalize", dFinalize)

	return result
}
