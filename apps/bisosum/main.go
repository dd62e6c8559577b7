//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/unicode/norm"

	"github.com/markkurossi/biso"
	"github.com/markkurossi/biso/env"
	"github.com/markkurossi/biso/timing"
)

// input is one message to hash.
type input struct {
	name string
	data []byte
	text bool
}

func main() {
	text := flag.String("s", "", "hash the text `string`")
	format := flag.String("format", "base64", "digest format: base64, hex, oci")
	nfc := flag.Bool("nfc", false, "normalize text input to NFC")
	trace := flag.Bool("trace", false, "print intermediate block states")
	fTiming := flag.Bool("timing", false, "print timing report")
	fJSON := flag.Bool("json", false, "print results as JSON")
	workers := flag.Int("workers", 0, "number of concurrent workers")
	check := flag.String("check", "",
		"verify the vector `file` (\"builtin\" for built-in vectors)")
	gen := flag.String("gen", "", "write the inputs as a vector `file`")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)

	config := &env.Config{
		Workers:     *workers,
		Verbose:     *verbose,
		Diagnostics: os.Stderr,
	}
	logger := config.GetLogger()

	if len(*check) > 0 {
		if err := checkVectors(logger, *check); err != nil {
			os.Exit(1)
		}
		return
	}

	f, err := biso.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	if len(*gen) > 0 && *nfc {
		log.Fatal("-gen and -nfc are mutually exclusive")
	}

	t := timing.New()

	var inputs []input
	textFlag := isFlagSet("s")
	if textFlag {
		inputs = append(inputs, input{
			name: "-s",
			data: []byte(*text),
			text: true,
		})
	}
	for _, arg := range flag.Args() {
		data, err := os.ReadFile(arg)
		if err != nil {
			logger.Errorf(arg, "%s", err)
			os.Exit(1)
		}
		inputs = append(inputs, input{
			name: arg,
			data: data,
		})
	}
	if len(inputs) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Errorf("-", "%s", err)
			os.Exit(1)
		}
		inputs = append(inputs, input{
			name: "-",
			data: data,
		})
	}

	var size uint64
	for _, in := range inputs {
		size += uint64(len(in.data))
	}
	t.Sample("Read", []string{timing.FileSize(size).String()})

	sums, err := digestInputs(config, inputs, *nfc, *fTiming, t)
	if err != nil {
		os.Exit(1)
	}

	if len(*gen) > 0 {
		if err := genVectors(*gen, inputs, sums); err != nil {
			logger.Errorf(*gen, "%s", err)
			os.Exit(1)
		}
	}

	if *trace {
		for _, in := range inputs {
			printTrace(os.Stdout, in)
		}
	}

	results := make([]result, len(inputs))
	for idx, in := range inputs {
		results[idx] = result{
			Name:   in.name,
			Size:   len(in.data),
			Format: f.String(),
			Digest: f.Render(sums[idx]),
		}
	}
	if *fJSON {
		err = printJSON(os.Stdout, results)
	} else {
		err = printText(os.Stdout, results)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *fTiming {
		t.Sample("Output", nil)
		t.Print(os.Stderr, size)
	}
}

// digestInputs computes the digests of all inputs. Text inputs are
// hashed with the UTF-8 text functions, normalized to NFC if nfc is
// set; malformed text is reported and returned as an error. The raw
// inputs are hashed concurrently, or sequentially with stage timing if
// profile is set.
func digestInputs(config *env.Config, inputs []input, nfc, profile bool,
	t *timing.Timing) ([][biso.Size]byte, error) {

	logger := config.GetLogger()
	result := make([][biso.Size]byte, len(inputs))

	var raw []input
	var rawIdx []int

	for idx, in := range inputs {
		if !in.text {
			raw = append(raw, in)
			rawIdx = append(rawIdx, idx)
			continue
		}
		var b64 string
		var err error
		if nfc {
			b64, err = biso.DigestText(string(in.data), norm.NFC)
		} else {
			b64, err = biso.Digest(string(in.data))
		}
		if err != nil {
			return nil, logger.Errorf(in.name, "%s", err)
		}
		result[idx], err = biso.Decode(b64)
		if err != nil {
			return nil, logger.Errorf(in.name, "%s", err)
		}
	}

	var sums [][biso.Size]byte
	if profile {
		sums = profileInputs(raw, t)
	} else {
		messages := make([][]byte, len(raw))
		for idx, in := range raw {
			messages[idx] = in.data
		}
		logger.Verbosef("", "hashing %d messages with %d workers",
			len(messages), config.GetWorkers())

		var err error
		sums, err = biso.SumAll(context.Background(), config, messages)
		if err != nil {
			return nil, logger.Errorf("", "%s", err)
		}
		t.Sample("Digest", []string{fmt.Sprintf("%d msgs", len(inputs))})
	}
	for i, sum := range sums {
		result[rawIdx[i]] = sum
	}

	return result, nil
}

func isFlagSet(name string) bool {
	var set bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
