//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"golang.org/x/text/unicode/norm"
)

// Sum returns the digest of message.
func Sum(message []byte) [Size]byte {
	return sumPadded(Pad(message), nil)
}

// DigestBytes returns the base64 digest of message.
func DigestBytes(message []byte) string {
	return Encode(Sum(message))
}

// Digest returns the base64 digest of the UTF-8 text. It returns an
// EncodingError if text is not well-formed UTF-8. The text is hashed
// as is, without Unicode normalization.
func Digest(text string) (string, error) {
	digest, err := SumText(text)
	if err != nil {
		return "", err
	}
	return Encode(digest), nil
}

// SumText returns the digest of the UTF-8 text. It returns an
// EncodingError if text is not well-formed UTF-8.
func SumText(text string) ([Size]byte, error) {
	padded, err := PadString(text)
	if err != nil {
		return [Size]byte{}, err
	}
	return sumPadded(padded, nil), nil
}

// DigestText returns the base64 digest of text after normalizing it
// to the Unicode normalization form. Canonically equivalent strings
// have the same digest under NFC and NFD.
func DigestText(text string, form norm.Form) (string, error) {
	if _, err := encodeUTF8(text); err != nil {
		return "", err
	}
	return Digest(form.String(text))
}

// sumPadded folds the blocks of the padded message into the IV. The
// optional trace function is called with every intermediate state.
func sumPadded(padded []byte, trace func(idx int, block *Block,
	state State)) [Size]byte {

	blocks, err := Segment(padded)
	if err != nil {
		panic(err)
	}
	state := IV
	for idx := range blocks {
		state, err = Compress(blocks[idx][:], state)
		if err != nil {
			panic(err)
		}
		if trace != nil {
			trace(idx, &blocks[idx], state)
		}
	}
	return Finalize(state)
}
