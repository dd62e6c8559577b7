//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	mrand "math/rand"
	"testing"

	"golang.org/x/text/unicode/norm"
)

var digestTests = []struct {
	message string
	digest  string
}{
	{
		message: "",
		digest:  "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=",
	},
	{
		message: "mon texte",
		digest:  "82gP5BsAPtisEMnBk9RoSvbwecGapeUHMak+Zie0wZY=",
	},
	{
		message: "abc",
		digest:  "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=",
	},
	{
		message: "The quick brown fox jumps over the lazy dog",
		digest:  "16j7swfXgJRpypq8sAguT41WUeRtPNt2LQLQvzfJ5ZI=",
	},
	{
		message: string(bytes.Repeat([]byte{'a'}, 55)),
		digest:  "n0OQ+NMMLdkuyfCVtl4rmumwqSWlJY4kHJ8ekQ9zQxg=",
	},
	{
		message: string(bytes.Repeat([]byte{'a'}, 56)),
		digest:  "s1Q5pKxvCUi21vnjxq8PX1kM4g8b3nCQ73lwaG7Gc4o=",
	},
	{
		message: string(bytes.Repeat([]byte{'a'}, 1000)),
		digest:  "Qe3s5C1j6Nm/UVqbppMuHCDLyfWl0TRkWttdsblzfqM=",
	},
}

func TestDigest(t *testing.T) {
	for idx, test := range digestTests {
		got, err := Digest(test.message)
		if err != nil {
			t.Fatalf("test %d: Digest failed: %v", idx, err)
		}
		if got != test.digest {
			t.Errorf("test %d: got %s, expected %s", idx, got, test.digest)
		}
		if got := DigestBytes([]byte(test.message)); got != test.digest {
			t.Errorf("test %d: DigestBytes: got %s, expected %s",
				idx, got, test.digest)
		}
	}
}

// TestDeterministic verifies that repeated calls do not share state.
func TestDeterministic(t *testing.T) {
	d1, err := Digest("mon texte")
	if err != nil {
		t.Fatal(err)
	}
	DigestBytes([]byte("something else entirely"))
	d2, err := Digest("mon texte")
	if err != nil {
		t.Fatal(err)
	}
	if d1 != d2 {
		t.Fatalf("digest changed between calls: %s != %s", d1, d2)
	}
}

func TestEncodedLength(t *testing.T) {
	rnd := mrand.New(mrand.NewSource(42))
	for i := 0; i < 100; i++ {
		msg := make([]byte, rnd.Intn(512))
		rnd.Read(msg)
		if l := len(DigestBytes(msg)); l != EncodedSize {
			t.Fatalf("len(%d bytes)=%d, expected %d", len(msg), l, EncodedSize)
		}
	}
}

// TestAvalanche flips every bit of the message and checks that the
// digest changes.
func TestAvalanche(t *testing.T) {
	msg := []byte("mon texte")
	orig := DigestBytes(msg)

	for i := 0; i < len(msg)*8; i++ {
		flipped := bytes.Clone(msg)
		flipped[i/8] ^= 1 << (i % 8)
		if DigestBytes(flipped) == orig {
			t.Fatalf("flipping bit %d did not change the digest", i)
		}
	}
	if got := DigestBytes([]byte("lon texte")); got !=
		"O13e/J5obinAnSa92AMCF8EB+1qsPMG7ZY6DR6s1YS8=" {
		t.Errorf("flipped vector: got %s", got)
	}
}

// TestReference compares the digest against crypto/sha256 around
// the block boundaries.
func TestReference(t *testing.T) {
	rnd := mrand.New(mrand.NewSource(1))
	for l := 0; l <= 300; l++ {
		msg := make([]byte, l)
		rnd.Read(msg)

		got := Sum(msg)
		expected := sha256.Sum256(msg)
		if got != expected {
			t.Fatalf("length %d:\nhave %x\nwant %x", l, got, expected)
		}
	}
}

func TestDigestInvalidUTF8(t *testing.T) {
	_, err := Digest("ok\xffnot ok")
	if err == nil {
		t.Fatal("Digest accepted invalid UTF-8")
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("unexpected error type %T: %v", err, err)
	}
	if encErr.Offset != 2 {
		t.Errorf("offset=%d, expected 2", encErr.Offset)
	}
	if _, err := SumText("\xed\xa0\x80"); err == nil {
		t.Errorf("SumText accepted an encoded surrogate")
	}
}

func TestDigestText(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	d1, err := Digest(composed)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Digest(decomposed)
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Fatalf("Digest normalized its input")
	}
	if d1 != "hQ99xDkQ/4kPiHnA7Sb+aXyToGetk6fVD0ZqcCipv04=" {
		t.Errorf("composed: got %s", d1)
	}
	if d2 != "ge8GC82YrceCTrXBrag8MkkbFgGOEeefAKudCeBLAVo=" {
		t.Errorf("decomposed: got %s", d2)
	}

	for _, form := range []norm.Form{norm.NFC, norm.NFD} {
		n1, err := DigestText(composed, form)
		if err != nil {
			t.Fatal(err)
		}
		n2, err := DigestText(decomposed, form)
		if err != nil {
			t.Fatal(err)
		}
		if n1 != n2 {
			t.Errorf("form %v: %s != %s", form, n1, n2)
		}
	}
	nfc, _ := DigestText(decomposed, norm.NFC)
	if nfc != d1 {
		t.Errorf("NFC digest %s, expected %s", nfc, d1)
	}

	if _, err := DigestText("\xc3", norm.NFC); err == nil {
		t.Errorf("DigestText accepted truncated UTF-8")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, test := range digestTests {
		data, err := base64.StdEncoding.DecodeString(test.digest)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != Size {
			t.Fatalf("decoded %d bytes, expected %d", len(data), Size)
		}
		var digest [Size]byte
		copy(digest[:], data)
		if got := Encode(digest); got != test.digest {
			t.Errorf("round trip: got %s, expected %s", got, test.digest)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, test := range digestTests {
		digest, err := Decode(test.digest)
		if err != nil {
			t.Fatalf("Decode(%s): %v", test.digest, err)
		}
		if digest != Sum([]byte(test.message)) {
			t.Errorf("Decode(%s) does not match Sum", test.digest)
		}
	}
	for _, s := range []string{
		"",
		"47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU",
		"47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU==",
		"47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuF*=",
		"47DEQpj8HBSa-_TImW-5JCeuQeRkm5NMpJWZG3hSuFU=",
	} {
		if _, err := Decode(s); err == nil {
			t.Errorf("Decode(%q) accepted invalid digest", s)
		}
	}
}

func TestFinalize(t *testing.T) {
	digest := Finalize(IV)
	expected := []byte{
		0x6a, 0x09, 0xe6, 0x67, 0xbb, 0x67, 0xae, 0x85,
		0x3c, 0x6e, 0xf3, 0x72, 0xa5, 0x4f, 0xf5, 0x3a,
		0x51, 0x0e, 0x52, 0x7f, 0x9b, 0x05, 0x68, 0x8c,
		0x1f, 0x83, 0xd9, 0xab, 0x5b, 0xe0, 0xcd, 0x19,
	}
	if !bytes.Equal(digest[:], expected) {
		t.Fatalf("Finalize(IV)=%x, expected %x", digest, expected)
	}
}

func FuzzSum(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("mon texte"))
	f.Add(bytes.Repeat([]byte{0xff}, 56))

	f.Fuzz(func(t *testing.T, data []byte) {
		if Sum(data) != sha256.Sum256(data) {
			t.Fatalf("digest mismatch for %x", data)
		}
		if len(DigestBytes(data)) != EncodedSize {
			t.Fatalf("invalid encoded length")
		}
	})
}
