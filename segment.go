//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

// Segment splits the padded buffer into consecutive blocks.
func Segment(padded []byte) ([]Block, error) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return nil, &MalformedInputError{
			Length: len(padded),
		}
	}
	blocks := make([]Block, len(padded)/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], padded[i*BlockSize:])
	}
	return blocks, nil
}
