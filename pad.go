//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
)

// Pad pads message to a multiple of BlockSize bytes. The padding is a
// single 0x80 byte, zero bytes up to 56 bytes mod 64, and the message
// length in bits as a 64-bit big-endian integer. The result always
// holds at least one block. Messages of 2^61 bytes or more overflow
// the length field.
func Pad(message []byte) []byte {
	ml := uint64(len(message)) * 8

	// Zero bits between the 0x80 byte and the length field, counted
	// modulo the 512-bit block size so the result is never negative.
	k := (448 + 512 - (ml+1)%512) % 512

	padded := make([]byte, 0, len(message)+1+int(k/8)+lengthBytes)
	padded = append(padded, message...)
	padded = append(padded, 0x80)
	padded = append(padded, make([]byte, k/8)...)
	padded = binary.BigEndian.AppendUint64(padded, ml)

	return padded
}

// PadString validates text as UTF-8 and pads its bytes with Pad.
func PadString(text string) ([]byte, error) {
	message, err := encodeUTF8(text)
	if err != nil {
		return nil, err
	}
	return Pad(message), nil
}

// encodeUTF8 returns the UTF-8 bytes of text. Ill-formed input is
// reported with an EncodingError.
func encodeUTF8(text string) ([]byte, error) {
	src := []byte(text)
	dst := make([]byte, len(src))

	nDst, nSrc, err := encoding.UTF8Validator.Transform(dst, src, true)
	if err != nil {
		return nil, &EncodingError{
			Offset: nSrc,
			Err:    err,
		}
	}
	return dst[:nDst], nil
}
