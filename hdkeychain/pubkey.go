// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ExtendedPublicKey is a node of the key tree which only holds a public key.
// It can derive normal children only.  There is no way back to the private
// key.
type ExtendedPublicKey struct {
	attrs     ExtendedKeyAttrs
	chainCode ChainCode
	pubKey    *btcec.PublicKey
}

// NewExtendedPublicKey returns an extended public key for the passed public
// key, chain code and tree position.
func NewExtendedPublicKey(pubKey *btcec.PublicKey, chainCode ChainCode,
	attrs ExtendedKeyAttrs) *ExtendedPublicKey {

	return &ExtendedPublicKey{
		attrs:     attrs,
		chainCode: chainCode,
		pubKey:    pubKey,
	}
}

// Child returns a derived child extended public key at the given index.
// Hardened children can't be derived from a public key and fail with
// ErrHardenedFromPublic.
//
// Like the private derivation, ErrTweakOutOfRange is returned for the
// negligible number of indices which do not derive to a usable child.
func (k *ExtendedPublicKey) Child(cn ChildNumber) (*ExtendedPublicKey, error) {
	// A hardened child extended key may not be created from a public
	// extended key.
	if cn.IsHardened() {
		str := fmt.Sprintf("cannot derive hardened child %s from a "+
			"public key", cn)
		return nil, makeError(ErrHardenedFromPublic, str)
	}

	// Prevent derivation of children beyond the max allowed depth.
	if k.attrs.Depth == maxDepth {
		str := fmt.Sprintf("cannot derive a child of a key at depth %d",
			maxDepth)
		return nil, makeError(ErrDepthExceeded, str)
	}

	//   data = serP(parentPubKey) || ser32(i)
	//   I = HMAC-SHA512(Key = chainCode, Data = data)
	pubKeyBytes := k.pubKey.SerializeCompressed()
	var data [childDataLen]byte
	copy(data[:], pubKeyBytes)
	binary.BigEndian.PutUint32(data[KeyDataLen:], cn.Index())
	ilr := hmacSHA512(k.chainCode[:], data[:])

	var childChainCode ChainCode
	copy(childChainCode[:], ilr[len(ilr)/2:])

	childPubKey, ok := tweakPublic(ilr[:len(ilr)/2], k.pubKey)
	if !ok {
		return nil, tweakError(cn)
	}

	childAttrs := k.attrs.childAttrs(fingerprintOf(pubKeyBytes), cn)
	return NewExtendedPublicKey(childPubKey, childChainCode, childAttrs), nil
}

// DerivePath derives the key at path, relative to k.  The path must not be
// empty nor contain hardened child numbers.
func (k *ExtendedPublicKey) DerivePath(path DerivationPath) (*ExtendedPublicKey, error) {
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

// PublicKey returns the public key of k.
func (k *ExtendedPublicKey) PublicKey() *btcec.PublicKey {
	return k.pubKey
}

// Fingerprint returns the first four bytes of the hash160 of the public key.
func (k *ExtendedPublicKey) Fingerprint() Fingerprint {
	return fingerprintOf(k.pubKey.SerializeCompressed())
}

// Attrs returns the depth, parent fingerprint and child number of k.
func (k *ExtendedPublicKey) Attrs() ExtendedKeyAttrs {
	return k.attrs
}

// Depth returns the number of derivation steps from the master key.
func (k *ExtendedPublicKey) Depth() uint8 {
	return k.attrs.Depth
}

// ParentFingerprint returns the fingerprint of the parent key.
func (k *ExtendedPublicKey) ParentFingerprint() Fingerprint {
	return k.attrs.ParentFingerprint
}

// ChildNumber returns the index k was derived with.
func (k *ExtendedPublicKey) ChildNumber() ChildNumber {
	return k.attrs.ChildNumber
}

// ChainCode returns the chain code of k.
func (k *ExtendedPublicKey) ChainCode() ChainCode {
	return k.chainCode
}

// ExtendedKey returns the serializable form of k using the passed version.
// The key data is the compressed public key.
func (k *ExtendedPublicKey) ExtendedKey(version KeyVersion) *ExtendedKey {
	var keyData KeyData
	copy(keyData[:], k.pubKey.SerializeCompressed())
	return &ExtendedKey{
		Version:   version,
		Attrs:     k.attrs,
		ChainCode: k.chainCode,
		Key:       keyData,
	}
}

// tweakPublic returns the public key of a child:
//   childKey = point(parse256(Il)) + parentKey
// It returns false when Il is not less than the group order or the sum is the
// point at infinity.
func tweakPublic(il []byte, parent *btcec.PublicKey) (*btcec.PublicKey, bool) {
	var ilNum btcec.ModNScalar
	if overflow := ilNum.SetByteSlice(il); overflow {
		return nil, false
	}

	var ilJ, pubJ btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&ilNum, &ilJ)
	parent.AsJacobian(&pubJ)
	btcec.AddNonConst(&ilJ, &pubJ, &pubJ)

	// The sum is the point at infinity when Il is the negation of the
	// parent key, which is not a valid public key.
	if (pubJ.X.IsZero() && pubJ.Y.IsZero()) || pubJ.Z.IsZero() {
		return nil, false
	}
	pubJ.ToAffine()
	return btcec.NewPublicKey(&pubJ.X, &pubJ.Y), true
}
