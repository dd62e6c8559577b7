//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package vectors implements known-answer test vectors for the BISO
// digest. Vector files are JSON documents of the form:
//
//	{
//	  "vectors": [
//	    {"name": "abc", "hex": "616263", "digest": "ungWv4..."},
//	    {"name": "text", "text": "mon texte", "digest": "82gP5B..."}
//	  ]
//	}
//
// A vector message is either UTF-8 text or hex-encoded bytes. The
// optional repeat count repeats the message bytes.
package vectors

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/markkurossi/biso"
)

//go:embed builtin.json
var builtin []byte

// Vector defines a known-answer test vector.
type Vector struct {
	Name   string  `json:"name"`
	Text   *string `json:"text,omitempty"`
	Hex    string  `json:"hex,omitempty"`
	Repeat int     `json:"repeat,omitempty"`
	Digest string  `json:"digest"`
}

// File is the vector file document.
type File struct {
	Vectors []Vector `json:"vectors"`
}

// Mismatch describes a vector whose computed digest differs from the
// expected digest.
type Mismatch struct {
	Vector Vector
	Got    string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %s, expected %s",
		m.Vector.Name, m.Got, m.Vector.Digest)
}

// Message returns the message bytes of the vector.
func (v Vector) Message() ([]byte, error) {
	var data []byte
	if v.Text != nil {
		if len(v.Hex) > 0 {
			return nil, fmt.Errorf("vectors: %s: both text and hex message",
				v.Name)
		}
		data = []byte(*v.Text)
	} else {
		var err error
		data, err = hex.DecodeString(v.Hex)
		if err != nil {
			return nil, fmt.Errorf("vectors: %s: %w", v.Name, err)
		}
	}
	if v.Repeat > 1 {
		data = bytes.Repeat(data, v.Repeat)
	} else if v.Repeat < 0 {
		return nil, fmt.Errorf("vectors: %s: invalid repeat count %d",
			v.Name, v.Repeat)
	}
	return data, nil
}

// Compute computes the digest of the vector message. Text messages
// must be well-formed UTF-8.
func (v Vector) Compute() (string, error) {
	data, err := v.Message()
	if err != nil {
		return "", err
	}
	if v.Text != nil {
		return biso.Digest(string(data))
	}
	return biso.DigestBytes(data), nil
}

// Builtin returns the built-in vectors.
func Builtin() ([]Vector, error) {
	return Parse(builtin)
}

// Load loads vectors from the JSON file.
func Load(file string) ([]Vector, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	vectors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return vectors, nil
}

// Parse parses vectors from the JSON data.
func Parse(data []byte) ([]Vector, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("vectors: %w", err)
	}
	for idx, v := range file.Vectors {
		if _, err := biso.Decode(v.Digest); err != nil {
			return nil, fmt.Errorf("vectors: vector %d (%s): %w",
				idx, v.Name, err)
		}
	}
	return file.Vectors, nil
}

// Marshal encodes the vectors as an indented JSON document.
func Marshal(vectors []Vector) ([]byte, error) {
	return json.MarshalIndent(&File{
		Vectors: vectors,
	}, "", "  ")
}

// Check computes the digests of all vectors and returns the vectors
// that did not match.
func Check(vectors []Vector) ([]Mismatch, error) {
	var result []Mismatch
	for _, v := range vectors {
		got, err := v.Compute()
		if err != nil {
			return nil, err
		}
		if got != v.Digest {
			result = append(result, Mismatch{
				Vector: v,
				Got:    got,
			})
		}
	}
	return result, nil
}

// New creates a vector for the message bytes, computing its digest.
func New(name string, message []byte) Vector {
	return Vector{
		Name:   name,
		Hex:    hex.EncodeToString(message),
		Digest: biso.DigestBytes(message),
	}
}
