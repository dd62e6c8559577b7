//
// check.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/biso"
	"github.com/markkurossi/biso/env"
	"github.com/markkurossi/biso/vectors"
)

// checkVectors verifies the vector file. The file name "builtin"
// selects the built-in vectors.
func checkVectors(logger *env.Logger, file string) error {
	var vs []vectors.Vector
	var err error

	if file == "builtin" {
		vs, err = vectors.Builtin()
	} else {
		vs, err = vectors.Load(file)
	}
	if err != nil {
		return logger.Errorf(file, "%s", err)
	}

	mismatches, err := vectors.Check(vs)
	if err != nil {
		return logger.Errorf(file, "%s", err)
	}
	for _, m := range mismatches {
		logger.Warningf(file, "%s", m)
	}
	if len(mismatches) > 0 {
		return logger.Errorf(file, "%d of %d vectors failed",
			len(mismatches), len(vs))
	}
	logger.Verbosef(file, "%d vectors OK", len(vs))
	fmt.Printf("%s: OK\n", file)

	return nil
}

// genVectors writes the inputs and their digests as a vector file.
// Text inputs are stored as text vectors so that checking them
// validates their UTF-8 encoding.
func genVectors(file string, inputs []input, sums [][biso.Size]byte) error {
	var vs []vectors.Vector

	for idx, in := range inputs {
		if !in.text {
			vs = append(vs, vectors.New(in.name, in.data))
			continue
		}
		text := string(in.data)
		vs = append(vs, vectors.Vector{
			Name:   in.name,
			Text:   &text,
			Digest: biso.Encode(sums[idx]),
		})
	}
	data, err := vectors.Marshal(vs)
	if err != nil {
		return err
	}
	return os.WriteFile(file, append(data, '\n'), 0o644)
}
