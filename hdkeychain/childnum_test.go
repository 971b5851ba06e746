// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain_test

import (
	"errors"
	"testing"

	"github.com/hdcore/hdcore/hdkeychain"
)

// TestNewChildNumber ensures the hardened flag follows the index across the
// hardened boundary.
func TestNewChildNumber(t *testing.T) {
	tests := []struct {
		index    uint32
		hardened bool
	}{
		{index: 0, hardened: false},
		{index: 1, hardened: false},
		{index: 44, hardened: false},
		{index: hdkeychain.HardenedKeyStart - 1, hardened: false},
		{index: hdkeychain.HardenedKeyStart, hardened: true},
		{index: hdkeychain.HardenedKeyStart + 1, hardened: true},
		{index: 2147483692, hardened: true},
		{index: 0xffffffff, hardened: true},
	}

	for i, test := range tests {
		cn := hdkeychain.NewChildNumber(test.index)
		if cn.Index() != test.index {
			t.Errorf("NewChildNumber #%d: mismatched index -- got %d, "+
				"want %d", i, cn.Index(), test.index)
			continue
		}
		if cn.IsHardened() != test.hardened {
			t.Errorf("NewChildNumber #%d (%d): mismatched hardened "+
				"flag -- got %v, want %v", i, test.index,
				cn.IsHardened(), test.hardened)
		}
	}

	// The zero value is the master child number.
	if (hdkeychain.ChildNumber{}) != hdkeychain.NewChildNumber(0) {
		t.Errorf("zero value ChildNumber is not index 0")
	}
}

// TestHardenedChildNumber ensures hardened child numbers are offset by 2^31
// and magnitudes in the hardened range are rejected.
func TestHardenedChildNumber(t *testing.T) {
	cn, err := hdkeychain.HardenedChildNumber(44)
	if err != nil {
		t.Fatalf("HardenedChildNumber: unexpected error: %v", err)
	}
	if cn.Index() != 2147483692 || !cn.IsHardened() {
		t.Errorf("HardenedChildNumber: got %d (hardened %v), want "+
			"2147483692 (hardened true)", cn.Index(), cn.IsHardened())
	}

	_, err = hdkeychain.HardenedChildNumber(hdkeychain.HardenedKeyStart)
	if !errors.Is(err, hdkeychain.ErrInvalidIndex) {
		t.Errorf("HardenedChildNumber: mismatched error -- got %v, "+
			"want %v", err, hdkeychain.ErrInvalidIndex)
	}
}

// TestParseChildNumber tests parsing of the textual child number notation.
func TestParseChildNumber(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		index    uint32
		hardened bool
		str      string
		err      error
	}{
		{name: "zero", in: "0", index: 0, str: "0"},
		{name: "normal", in: "44", index: 44, str: "44"},
		{
			name:     "hardened",
			in:       "44'",
			index:    2147483692,
			hardened: true,
			str:      "44'",
		},
		{
			name:     "hardened zero",
			in:       "0'",
			index:    hdkeychain.HardenedKeyStart,
			hardened: true,
			str:      "0'",
		},
		{
			name:     "largest hardened",
			in:       "2147483647'",
			index:    0xffffffff,
			hardened: true,
			str:      "2147483647'",
		},
		{
			name:     "raw hardened index",
			in:       "2147483648",
			index:    hdkeychain.HardenedKeyStart,
			hardened: true,
			str:      "0'",
		},
		{
			name:     "largest raw index",
			in:       "4294967295",
			index:    0xffffffff,
			hardened: true,
			str:      "2147483647'",
		},
		{name: "overflow", in: "4294967299", err: hdkeychain.ErrCannotParseIndex},
		{name: "hardened overflow", in: "2147483648'", err: hdkeychain.ErrCannotParseIndex},
		{name: "not a number", in: "c", err: hdkeychain.ErrCannotParseIndex},
		{name: "empty", in: "", err: hdkeychain.ErrCannotParseIndex},
		{name: "apostrophe only", in: "'", err: hdkeychain.ErrCannotParseIndex},
		{name: "double apostrophe", in: "1''", err: hdkeychain.ErrCannotParseIndex},
		{name: "negative", in: "-1", err: hdkeychain.ErrCannotParseIndex},
		{name: "h suffix", in: "1h", err: hdkeychain.ErrCannotParseIndex},
		{name: "space", in: " 1", err: hdkeychain.ErrCannotParseIndex},
	}

	for i, test := range tests {
		cn, err := hdkeychain.ParseChildNumber(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("ParseChildNumber #%d (%s): mismatched error -- "+
				"got %v, want %v", i, test.name, err, test.err)
			continue
		}
		if test.err != nil {
			continue
		}

		if cn.Index() != test.index || cn.IsHardened() != test.hardened {
			t.Errorf("ParseChildNumber #%d (%s): got %d (hardened %v), "+
				"want %d (hardened %v)", i, test.name, cn.Index(),
				cn.IsHardened(), test.index, test.hardened)
			continue
		}
		if cn.String() != test.str {
			t.Errorf("String #%d (%s): got %q, want %q", i, test.name,
				cn.String(), test.str)
		}
	}
}
