//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package biso implements the BISO message digest. BISO is a
// Merkle-Damgård hash built on the SHA-256 compression function: the
// message is padded to a multiple of 64 bytes, split into blocks, and
// every block is folded into an eight-word accumulator. The final
// accumulator is the 32-byte digest, which is rendered as padded
// standard base64.
//
// The pipeline stages are exported so that they can be tested and
// inspected one at a time:
//
//	padded := biso.Pad(message)
//	blocks, err := biso.Segment(padded)
//	state := biso.IV
//	for _, block := range blocks {
//		state, err = biso.Compress(block[:], state)
//	}
//	digest := biso.Finalize(state)
//	fmt.Println(biso.Encode(digest))
//
// Most callers only need Digest for text and DigestBytes for raw
// bytes:
//
//	b64, err := biso.Digest("mon texte")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(b64) // 82gP5BsAPtisEMnBk9RoSvbwecGapeUHMak+Zie0wZY=
//
// Every call owns its padded buffer, schedule and working state so
// independent messages can be hashed concurrently; see DigestAll.
package biso
