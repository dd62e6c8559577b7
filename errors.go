//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"fmt"
)

// EncodingError is returned when textual input is not well-formed
// UTF-8.
type EncodingError struct {
	// Offset is the byte offset of the first ill-formed sequence.
	Offset int
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("biso: invalid UTF-8 at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// InvalidBlockSizeError is returned by Compress when the block is not
// exactly BlockSize bytes long.
type InvalidBlockSizeError struct {
	Size int
}

func (e *InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("biso: invalid block size %d, expected %d",
		e.Size, BlockSize)
}

// MalformedInputError is returned by Segment when the padded buffer
// is empty or not a multiple of BlockSize bytes.
type MalformedInputError struct {
	Length int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("biso: padded length %d is not a positive multiple of %d",
		e.Length, BlockSize)
}
