// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// HardenedKeyStart is the index at which a hardened key starts.  Each
	// extended key has 2^31 normal child keys and 2^31 hardened child keys.
	// Thus the range for normal child keys is [0, 2^31 - 1] and the range
	// for hardened child keys is [2^31, 2^32 - 1].
	HardenedKeyStart = 0x80000000 // 2^31

	// hardenedSuffix marks a hardened segment in the textual notation.
	hardenedSuffix = "'"
)

// ChildNumber identifies a single derivation step.  The raw 32-bit index is
// what is serialized; hardened indices already have the high bit set.
//
// The zero value is the normal index 0, which is also what the master key
// carries in its own child number slot.
type ChildNumber struct {
	index    uint32
	hardened bool
}

// NewChildNumber returns the child number for the raw index.  Every uint32 is
// a valid index; indices at or above HardenedKeyStart are hardened.
func NewChildNumber(index uint32) ChildNumber {
	return ChildNumber{
		index:    index,
		hardened: index >= HardenedKeyStart,
	}
}

// HardenedChildNumber returns the hardened child number for i, that is the
// raw index i + 2^31.  The index must be below 2^31.
func HardenedChildNumber(i uint32) (ChildNumber, error) {
	if i >= HardenedKeyStart {
		str := fmt.Sprintf("hardened index %d is not below %d", i,
			uint32(HardenedKeyStart))
		return ChildNumber{}, makeError(ErrInvalidIndex, str)
	}
	return NewChildNumber(i + HardenedKeyStart), nil
}

// ParseChildNumber parses the conventional "44'" / "44" notation.
//
// Text without a trailing apostrophe is a raw decimal index, so values at or
// above 2^31 are accepted as already hardened indices.  Text with a trailing
// apostrophe is the unhardened magnitude, which must be below 2^31.
func ParseChildNumber(s string) (ChildNumber, error) {
	digits, hardened := strings.CutSuffix(s, hardenedSuffix)

	index, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		str := fmt.Sprintf("cannot parse index %q", s)
		return ChildNumber{}, wrapError(ErrCannotParseIndex, str, err)
	}
	if !hardened {
		return NewChildNumber(uint32(index)), nil
	}

	cn, err := HardenedChildNumber(uint32(index))
	if err != nil {
		str := fmt.Sprintf("cannot parse index %q: hardened index "+
			"out of range", s)
		return ChildNumber{}, wrapError(ErrCannotParseIndex, str, err)
	}
	return cn, nil
}

// Index returns the raw 32-bit index.
func (c ChildNumber) Index() uint32 {
	return c.index
}

// IsHardened returns whether the child number is in the hardened range.
func (c ChildNumber) IsHardened() bool {
	return c.hardened
}

// String returns the child number in the conventional notation, with hardened
// indices rendered as their magnitude followed by an apostrophe.
func (c ChildNumber) String() string {
	if c.hardened {
		return strconv.FormatUint(uint64(c.index-HardenedKeyStart), 10) +
			hardenedSuffix
	}
	return strconv.FormatUint(uint64(c.index), 10)
}
