// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
)

const (
	// FingerprintLen is the length of a key fingerprint.
	FingerprintLen = 4

	// ChainCodeLen is the length of a chain code.
	ChainCodeLen = 32

	// KeyDataLen is the length of the key material of a serialized key.
	// Private keys are padded with a leading zero byte to this length and
	// public keys are serialized in compressed form, which already is.
	KeyDataLen = 33

	// maxDepth is the largest depth the serialized format can carry.
	maxDepth = 255
)

// Fingerprint identifies a key by the first four bytes of the hash160 of its
// compressed public key.
type Fingerprint [FingerprintLen]byte

// fingerprintOf returns the fingerprint of a serialized compressed public key.
func fingerprintOf(pubKey []byte) Fingerprint {
	var fp Fingerprint
	copy(fp[:], btcutil.Hash160(pubKey)[:FingerprintLen])
	return fp
}

// Uint32 returns the fingerprint as a big-endian integer, the form commonly
// shown by wallets.
func (f Fingerprint) Uint32() uint32 {
	return binary.BigEndian.Uint32(f[:])
}

// String returns the fingerprint as hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// ChainCode is the extra entropy carried alongside every key in the tree.
type ChainCode [ChainCodeLen]byte

// String returns the chain code as hex.
func (c ChainCode) String() string {
	return hex.EncodeToString(c[:])
}

// KeyData is the key material of a serialized extended key.
type KeyData [KeyDataLen]byte

// ExtendedKeyAttrs is the metadata shared by every node in the tree.  The zero
// value describes a master key.
type ExtendedKeyAttrs struct {
	// Depth is the number of derivation steps from the master key.
	Depth uint8

	// ParentFingerprint is the fingerprint of the parent's public key.  It
	// is all zero for the master key.
	ParentFingerprint Fingerprint

	// ChildNumber is the index this key was derived with.
	ChildNumber ChildNumber
}

// childAttrs returns the attributes of a child derived from a key with these
// attributes and the passed fingerprint.
func (a ExtendedKeyAttrs) childAttrs(parentFP Fingerprint, cn ChildNumber) ExtendedKeyAttrs {
	return ExtendedKeyAttrs{
		Depth:             a.Depth + 1,
		ParentFingerprint: parentFP,
		ChildNumber:       cn,
	}
}

// IsMaster returns whether the attributes describe a master key.
func (a ExtendedKeyAttrs) IsMaster() bool {
	return a.Depth == 0
}
