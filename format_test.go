//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"testing"
)

func TestFormatRender(t *testing.T) {
	digest := Sum(nil)

	tests := []struct {
		format   Format
		expected string
	}{
		{
			format:   FormatBase64,
			expected: "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=",
		},
		{
			format:   FormatHex,
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			format:   FormatOCI,
			expected: "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}
	for _, test := range tests {
		if got := test.format.Render(digest); got != test.expected {
			t.Errorf("%v: got %s, expected %s", test.format, got, test.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatBase64, FormatHex, FormatOCI} {
		parsed, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%s): %v", f, err)
		}
		if parsed != f {
			t.Errorf("ParseFormat(%s)=%v", f, parsed)
		}
	}
	if f, err := ParseFormat(" HEX "); err != nil || f != FormatHex {
		t.Errorf("ParseFormat(\" HEX \")=%v, %v", f, err)
	}
	if _, err := ParseFormat("base32"); err == nil {
		t.Errorf("ParseFormat accepted unknown format")
	}
	if s := Format(42).String(); s != "{Format 42}" {
		t.Errorf("unexpected name %s for unknown format", s)
	}
}
