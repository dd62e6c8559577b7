//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package vectors

import (
	"golang.org/x/crypto/chacha20"
)

// Generate returns n pseudo-random bytes from the ChaCha20 keystream
// keyed by seed. The same seed always produces the same bytes. Seeds
// longer than chacha20.KeySize bytes are truncated.
func Generate(seed string, n int) []byte {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	copy(key[:], seed)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}
