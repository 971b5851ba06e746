// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// SerializedKeyLen is the length of a serialized extended key without
	// its checksum.
	//   version (4) || depth (1) || parent fingerprint (4) ||
	//   child num (4) || chain code (32) || key data (33)
	SerializedKeyLen = VersionLen + 1 + FingerprintLen + 4 +
		ChainCodeLen + KeyDataLen // 78 bytes

	// MaxBase58Len is the maximum length of the Base58Check form of an
	// extended key.
	MaxBase58Len = 112

	// checksumLen is the length of the Base58Check checksum.
	checksumLen = 4
)

// Offsets of the fields of a serialized extended key.
const (
	depthOffset     = VersionLen
	parentFPOffset  = depthOffset + 1
	childNumOffset  = parentFPOffset + FingerprintLen
	chainCodeOffset = childNumOffset + 4
	keyDataOffset   = chainCodeOffset + ChainCodeLen
)

// ExtendedKey is the serialization form of an extended private or public key.
// The key data is either a private key padded with a leading zero byte or a
// compressed public key; the version tells which one to expect.
//
// ExtendedKey is only used at the serialization boundary.  Derivation works on
// ExtendedPrivateKey and ExtendedPublicKey.
type ExtendedKey struct {
	Version   KeyVersion
	Attrs     ExtendedKeyAttrs
	ChainCode ChainCode
	Key       KeyData
}

// Serialize returns the 78-byte wire layout of the extended key.  An unknown
// version is written as an all zero magic, which no parser accepts.
func (k *ExtendedKey) Serialize() [SerializedKeyLen]byte {
	var b [SerializedKeyLen]byte
	magic := k.Version.Magic()
	copy(b[:depthOffset], magic[:])
	b[depthOffset] = k.Attrs.Depth
	copy(b[parentFPOffset:childNumOffset], k.Attrs.ParentFingerprint[:])
	binary.BigEndian.PutUint32(b[childNumOffset:chainCodeOffset],
		k.Attrs.ChildNumber.Index())
	copy(b[chainCodeOffset:keyDataOffset], k.ChainCode[:])
	copy(b[keyDataOffset:], k.Key[:])
	return b
}

// String returns the extended key as a Base58Check-encoded string.
func (k *ExtendedKey) String() string {
	serialized := k.Serialize()
	checkSum := chainhash.DoubleHashB(serialized[:])[:checksumLen]

	b := make([]byte, 0, SerializedKeyLen+checksumLen)
	b = append(b, serialized[:]...)
	b = append(b, checkSum...)
	return base58.Encode(b)
}

// MarshalText implements encoding.TextMarshaler using the Base58Check form.
func (k *ExtendedKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the Base58Check form.
func (k *ExtendedKey) UnmarshalText(text []byte) error {
	parsed, err := NewKeyFromString(string(text))
	if err != nil {
		return err
	}
	*k = *parsed
	return nil
}

// ParseSerialized parses the 78-byte wire layout of an extended key.
func ParseSerialized(b []byte) (*ExtendedKey, error) {
	if len(b) != SerializedKeyLen {
		str := fmt.Sprintf("serialized extended key must be %d bytes, "+
			"got %d", SerializedKeyLen, len(b))
		return nil, makeError(ErrInvalidKeyLen, str)
	}

	version, err := VersionFromMagic(b[:depthOffset])
	if err != nil {
		return nil, err
	}

	k := &ExtendedKey{Version: version}
	k.Attrs.Depth = b[depthOffset]
	copy(k.Attrs.ParentFingerprint[:], b[parentFPOffset:childNumOffset])
	k.Attrs.ChildNumber = NewChildNumber(binary.BigEndian.Uint32(
		b[childNumOffset:chainCodeOffset]))
	copy(k.ChainCode[:], b[chainCodeOffset:keyDataOffset])
	copy(k.Key[:], b[keyDataOffset:])
	return k, nil
}

// NewKeyFromString returns a new extended key instance from a Base58Check
// encoded extended key.
func NewKeyFromString(key string) (*ExtendedKey, error) {
	decoded := base58.Decode(key)
	if len(decoded) == 0 && len(key) != 0 {
		str := "extended key contains characters outside the base58 " +
			"alphabet"
		return nil, makeError(ErrInvalidBase58, str)
	}

	// The serialized format is:
	//   serialized key (78) || checksum (4)
	if len(decoded) != SerializedKeyLen+checksumLen {
		str := fmt.Sprintf("extended key must decode to %d bytes, "+
			"got %d", SerializedKeyLen+checksumLen, len(decoded))
		return nil, makeError(ErrInvalidKeyLen, str)
	}

	// The serialized key is everything but the last 4 bytes, which is the
	// checksum.
	payload := decoded[:SerializedKeyLen]
	checkSum := decoded[SerializedKeyLen:]
	expectedCheckSum := chainhash.DoubleHashB(payload)[:checksumLen]
	if !bytes.Equal(checkSum, expectedCheckSum) {
		str := "extended key checksum does not match its payload"
		return nil, makeError(ErrBadChecksum, str)
	}

	return ParseSerialized(payload)
}

// IsPrivate returns whether the key data holds a padded private key.
func (k *ExtendedKey) IsPrivate() bool {
	return k.Key[0] == 0x00
}

// PrivateKey returns the extended private key described by k.  The key data
// must be a zero-padded valid private key and the version must be a private
// one.
func (k *ExtendedKey) PrivateKey() (*ExtendedPrivateKey, error) {
	if err := k.checkVersion(); err != nil {
		return nil, err
	}
	if !k.IsPrivate() {
		str := "key data is not a padded private key"
		return nil, makeError(ErrNotPrivateKey, str)
	}
	if !k.Version.IsPrivate() {
		str := fmt.Sprintf("version %s is not for private keys",
			k.Version)
		return nil, makeError(ErrVersionMismatch, str)
	}

	var key btcec.ModNScalar
	overflow := key.SetByteSlice(k.Key[1:])
	if overflow || key.IsZero() {
		key.Zero()
		str := "key data is not a valid private key"
		return nil, makeError(ErrInvalidPrivateKey, str)
	}

	priv := newExtendedPrivateKey(k.Attrs, k.ChainCode, &key)
	key.Zero()
	return priv, nil
}

// PublicKey returns the extended public key described by k.  The key data
// must be a valid compressed public key and the version must be a public one.
func (k *ExtendedKey) PublicKey() (*ExtendedPublicKey, error) {
	if err := k.checkVersion(); err != nil {
		return nil, err
	}
	if k.Version.IsPrivate() {
		str := fmt.Sprintf("version %s is not for public keys",
			k.Version)
		return nil, makeError(ErrVersionMismatch, str)
	}
	if !btcec.IsCompressedPubKey(k.Key[:]) {
		str := fmt.Sprintf("key data prefix 0x%02x is not a compressed "+
			"public key", k.Key[0])
		return nil, makeError(ErrInvalidPublicKey, str)
	}

	pubKey, err := btcec.ParsePubKey(k.Key[:])
	if err != nil {
		str := fmt.Sprintf("key data is not a valid public key: %v", err)
		return nil, wrapError(ErrInvalidPublicKey, str, err)
	}
	return NewExtendedPublicKey(pubKey, k.ChainCode, k.Attrs), nil
}

// checkVersion returns ErrInvalidVersion when k.Version is not one of the
// defined versions, as can happen when the struct is filled in by hand.
func (k *ExtendedKey) checkVersion() error {
	if !k.Version.IsValid() {
		str := fmt.Sprintf("unknown key version %d", uint8(k.Version))
		return makeError(ErrInvalidVersion, str)
	}
	return nil
}
