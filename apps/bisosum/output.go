//
// output.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"

	"github.com/markkurossi/biso"
)

type result struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Format string `json:"format"`
	Digest string `json:"digest"`
}

func printText(out io.Writer, results []result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(out, "%s  %s\n", r.Digest, r.Name); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(out io.Writer, results []result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

// printTrace prints the accumulator state after every block of the
// input. Row H⁰ is the initial value.
func printTrace(out io.Writer, in input) {
	_, steps := biso.SumTrace(in.data)

	fmt.Fprintf(out, "%s: %d bytes, %d blocks\n", in.name, len(in.data),
		len(steps))

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("H").SetAlign(tabulate.ML)
	for i := 0; i < len(biso.IV); i++ {
		tab.Header(fmt.Sprintf("h%d", i)).SetAlign(tabulate.MR)
	}

	traceRow(tab, 0, biso.IV)
	for _, step := range steps {
		traceRow(tab, step.Index+1, step.State)
	}
	tab.Print(out)
}

func traceRow(tab *tabulate.Tabulate, idx int, state biso.State) {
	row := tab.Row()
	row.Column("H" + superscript.Itoa(idx))
	for _, v := range state {
		row.Column(fmt.Sprintf("%08x", v))
	}
}
