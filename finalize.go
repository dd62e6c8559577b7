//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// Finalize returns the digest of the final accumulator state: the
// state words concatenated in big-endian byte order.
func Finalize(state State) [Size]byte {
	var digest [Size]byte

	for i, v := range state {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest
}

// Encode returns the padded standard base64 encoding of the digest.
// The result is always EncodedSize characters long.
func Encode(digest [Size]byte) string {
	return base64.StdEncoding.EncodeToString(digest[:])
}

// Decode decodes the base64 digest string produced by Encode.
func Decode(s string) ([Size]byte, error) {
	var digest [Size]byte

	if len(s) != EncodedSize {
		return digest, fmt.Errorf("biso: invalid digest length %d", len(s))
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return digest, fmt.Errorf("biso: invalid digest: %w", err)
	}
	if len(data) != Size {
		return digest, fmt.Errorf("biso: invalid digest size %d", len(data))
	}
	copy(digest[:], data)
	return digest, nil
}
