// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

// References:
//   [BIP32]: BIP0032 - Hierarchical Deterministic Wallets
//   https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// MinSeedBytes is the minimum number of bytes BIP32 recommends for a
	// seed to a master node.
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes BIP32 recommends for a
	// seed to a master node.
	MaxSeedBytes = 64 // 512 bits

	// childDataLen is the length of the HMAC data used to derive a child.
	childDataLen = KeyDataLen + 4
)

// masterKey is the master key used along with a random seed used to generate
// the master node in the hierarchical tree.
var masterKey = []byte("Bitcoin seed")

// ExtendedPrivateKey is a node of the key tree which holds a private key.  It
// can derive both hardened and normal children.
//
// An ExtendedPrivateKey is never modified once created, with the exception of
// Zero, so it is safe to derive children from a single key on many goroutines.
type ExtendedPrivateKey struct {
	attrs     ExtendedKeyAttrs
	chainCode ChainCode
	key       btcec.ModNScalar
	pub       *btcec.PublicKey
	pubKey    [btcec.PubKeyBytesLenCompressed]byte
}

// newExtendedPrivateKey returns a key which owns the passed scalar.  The scalar
// must be nonzero and reduced.
func newExtendedPrivateKey(attrs ExtendedKeyAttrs, chainCode ChainCode,
	key *btcec.ModNScalar) *ExtendedPrivateKey {

	k := &ExtendedPrivateKey{
		attrs:     attrs,
		chainCode: chainCode,
		key:       *key,
	}
	var pubJ btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&k.key, &pubJ)
	pubJ.ToAffine()
	k.pub = btcec.NewPublicKey(&pubJ.X, &pubJ.Y)
	copy(k.pubKey[:], k.pub.SerializeCompressed())
	return k
}

// hmacSHA512 returns HMAC-SHA512(key, data).
func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(data)
	return mac.Sum(nil)
}

// CheckSeedLen returns ErrInvalidSeedLen when the seed is outside the 128 to
// 512 bits BIP32 recommends.  NewMaster accepts seeds of any length, so callers
// which generate or accept seeds from users should check them with this first.
func CheckSeedLen(seed []byte) error {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		str := fmt.Sprintf("seed length must be between %d and %d "+
			"bytes, got %d", MinSeedBytes, MaxSeedBytes, len(seed))
		return makeError(ErrInvalidSeedLen, str)
	}
	return nil
}

// NewMaster creates a new master node for use in creating a hierarchical
// deterministic key chain.  Seeds of any length are accepted; see
// CheckSeedLen for the lengths BIP32 recommends.
//
// ErrUnusableSeed is returned for the negligible number of seeds whose left
// half of the HMAC is not a valid private key.
func NewMaster(seed []byte) (*ExtendedPrivateKey, error) {
	// First take the HMAC-SHA512 of the master key and the seed data:
	//   I = HMAC-SHA512(Key = "Bitcoin seed", Data = S)
	lr := hmacSHA512(masterKey, seed)

	// Split "I" into two 32-byte sequences Il and Ir where:
	//   Il = master secret key
	//   Ir = master chain code
	secretKey := lr[:len(lr)/2]
	var chainCode ChainCode
	copy(chainCode[:], lr[len(lr)/2:])

	// Ensure the key is usable.
	var key btcec.ModNScalar
	overflow := key.SetByteSlice(secretKey)
	zero(lr)
	if overflow || key.IsZero() {
		key.Zero()
		str := "seed produces an invalid master key"
		return nil, makeError(ErrUnusableSeed, str)
	}

	k := newExtendedPrivateKey(ExtendedKeyAttrs{}, chainCode, &key)
	key.Zero()
	return k, nil
}

// DeriveFromPath creates the master node for seed and derives the key at path
// from it.
func DeriveFromPath(seed []byte, path DerivationPath) (*ExtendedPrivateKey, error) {
	master, err := NewMaster(seed)
	if err != nil {
		return nil, err
	}
	return master.DerivePath(path)
}

// Child returns a derived child extended key at the given index.  Both
// hardened and normal children can be derived from a private key.
//
// There is an extremely small chance (< 1 in 2^127) the specific child index
// does not derive to a usable child.  ErrTweakOutOfRange is returned in that
// case and the caller is expected to ignore the index and move on to the next
// one.
func (k *ExtendedPrivateKey) Child(cn ChildNumber) (*ExtendedPrivateKey, error) {
	// Prevent derivation of children beyond the max allowed depth.
	if k.attrs.Depth == maxDepth {
		str := fmt.Sprintf("cannot derive a child of a key at depth %d",
			maxDepth)
		return nil, makeError(ErrDepthExceeded, str)
	}

	// The data used to derive the child key depends on whether or not the
	// child is hardened per [BIP32].
	//
	// For hardened children:
	//   0x00 || ser256(parentKey) || ser32(i)
	//
	// For normal children:
	//   serP(parentPubKey) || ser32(i)
	var data [childDataLen]byte
	if cn.IsHardened() {
		k.key.PutBytesUnchecked(data[1:KeyDataLen])
	} else {
		copy(data[:], k.pubKey[:])
	}
	binary.BigEndian.PutUint32(data[KeyDataLen:], cn.Index())

	// Take the HMAC-SHA512 of the current key's chain code and the derived
	// data:
	//   I = HMAC-SHA512(Key = chainCode, Data = data)
	ilr := hmacSHA512(k.chainCode[:], data[:])
	zero(data[:])

	// Split "I" into two 32-byte sequences Il and Ir where:
	//   Il = intermediate key used to derive the child
	//   Ir = child chain code
	il := ilr[:len(ilr)/2]
	var childChainCode ChainCode
	copy(childChainCode[:], ilr[len(ilr)/2:])

	var childKey btcec.ModNScalar
	ok := tweakPrivate(il, &k.key, &childKey)
	zero(ilr)
	if !ok {
		return nil, tweakError(cn)
	}

	childAttrs := k.attrs.childAttrs(k.Fingerprint(), cn)
	child := newExtendedPrivateKey(childAttrs, childChainCode, &childKey)
	childKey.Zero()
	return child, nil
}

// DerivePath derives the key at path, relative to k.  The zero value
// DerivationPath is rejected with ErrInvalidPathIndex.
func (k *ExtendedPrivateKey) DerivePath(path DerivationPath) (*ExtendedPrivateKey, error) {
	if err := path.checkNotEmpty(); err != nil {
		return nil, err
	}

	key := k
	for _, cn := range path.path {
		var err error
		key, err = key.Child(cn)
		if err != nil {
			return nil, err
		}
	}
	return key, nil
}

// Neuter returns the public extended key of k.  The result can derive the same
// normal children as k, but no hardened ones.
func (k *ExtendedPrivateKey) Neuter() *ExtendedPublicKey {
	return &ExtendedPublicKey{
		attrs:     k.attrs,
		chainCode: k.chainCode,
		pubKey:    k.pub,
	}
}

// PublicKey returns the public key of k.
func (k *ExtendedPrivateKey) PublicKey() *btcec.PublicKey {
	return k.pub
}

// PrivateKey returns a copy of the private key of k.
func (k *ExtendedPrivateKey) PrivateKey() *btcec.PrivateKey {
	key := k.key
	return secp256k1.NewPrivateKey(&key)
}

// Fingerprint returns the first four bytes of the hash160 of the public key.
func (k *ExtendedPrivateKey) Fingerprint() Fingerprint {
	return fingerprintOf(k.pubKey[:])
}

// Attrs returns the depth, parent fingerprint and child number of k.
func (k *ExtendedPrivateKey) Attrs() ExtendedKeyAttrs {
	return k.attrs
}

// Depth returns the number of derivation steps from the master key.
func (k *ExtendedPrivateKey) Depth() uint8 {
	return k.attrs.Depth
}

// ParentFingerprint returns the fingerprint of the parent key.
func (k *ExtendedPrivateKey) ParentFingerprint() Fingerprint {
	return k.attrs.ParentFingerprint
}

// ChildNumber returns the index k was derived with.
func (k *ExtendedPrivateKey) ChildNumber() ChildNumber {
	return k.attrs.ChildNumber
}

// ChainCode returns the chain code of k.
func (k *ExtendedPrivateKey) ChainCode() ChainCode {
	return k.chainCode
}

// ExtendedKey returns the serializable form of k using the passed version.
// The key data is the private key padded with a leading zero byte.
func (k *ExtendedPrivateKey) ExtendedKey(version KeyVersion) *ExtendedKey {
	var keyData KeyData
	k.key.PutBytesUnchecked(keyData[1:])
	return &ExtendedKey{
		Version:   version,
		Attrs:     k.attrs,
		ChainCode: k.chainCode,
		Key:       keyData,
	}
}

// Zero manually clears all fields and bytes in the extended key.  This can be
// used to explicitly clear key material from memory for enhanced security
// against memory scraping.  The key must not be used afterwards, nor
// concurrently with Zero.
func (k *ExtendedPrivateKey) Zero() {
	k.key.Zero()
	zero(k.chainCode[:])
	zero(k.pubKey[:])
	k.pub = nil
	k.attrs = ExtendedKeyAttrs{}
}

// tweakPrivate sets child to the private key of a child:
//   childKey = parse256(Il) + parentKey
// It returns false when Il is not less than the group order or the sum is
// zero, which leaves child zeroed.
func tweakPrivate(il []byte, parent, child *btcec.ModNScalar) bool {
	if overflow := child.SetByteSlice(il); overflow {
		child.Zero()
		return false
	}
	child.Add(parent)
	return !child.IsZero()
}

// tweakError returns the error for a child index which does not produce a
// usable key.
func tweakError(cn ChildNumber) error {
	str := fmt.Sprintf("child index %s derives an invalid key; use the "+
		"next index", cn)
	return makeError(ErrTweakOutOfRange, str)
}

// zero sets all bytes in the passed slice to zero.  This is used to
// explicitly clear private key material from memory.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
