//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"encoding/hex"
	"fmt"
	"strings"

	ocidigest "github.com/opencontainers/go-digest"
)

// Format defines the textual rendering of a digest.
type Format int

// Digest formats.
const (
	FormatBase64 Format = iota
	FormatHex
	FormatOCI
)

var formatNames = map[Format]string{
	FormatBase64: "base64",
	FormatHex:    "hex",
	FormatOCI:    "oci",
}

func (f Format) String() string {
	name, ok := formatNames[f]
	if ok {
		return name
	}
	return fmt.Sprintf("{Format %d}", f)
}

// ParseFormat parses the format name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatBase64, fmt.Errorf("biso: unknown digest format '%s'", name)
}

// Render renders the digest in the format f. The OCI format is the
// content digest form "sha256:<hex>"; the digest is a plain SHA-256
// value so the algorithm label is accurate.
func (f Format) Render(digest [Size]byte) string {
	switch f {
	case FormatHex:
		return hex.EncodeToString(digest[:])
	case FormatOCI:
		return ocidigest.NewDigestFromBytes(ocidigest.SHA256, digest[:]).String()
	default:
		return Encode(digest)
	}
}
