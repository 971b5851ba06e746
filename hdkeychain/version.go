// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// VersionLen is the length of the version magic of a serialized key.
const VersionLen = 4

// KeyVersion identifies the type of a serialized extended key.  It selects the
// 4-byte magic at the start of the serialization, which in turn determines the
// human-readable prefix of the Base58Check form.
type KeyVersion uint8

// These constants define the supported extended key versions.
const (
	XPrv KeyVersion = iota
	XPub
	TPrv
	TPub
	ZPrv
	ZPub
	YPrv
	YPub

	numKeyVersions = iota
)

// keyVersionInfo houses the serialization details of a key version.
type keyVersionInfo struct {
	tag     string
	magic   [VersionLen]byte
	private bool
	public  KeyVersion
}

// keyVersions is indexed by KeyVersion.
var keyVersions = [numKeyVersions]keyVersionInfo{
	XPrv: {"xprv", [4]byte{0x04, 0x88, 0xad, 0xe4}, true, XPub},
	XPub: {"xpub", [4]byte{0x04, 0x88, 0xb2, 0x1e}, false, XPub},
	TPrv: {"tprv", [4]byte{0x04, 0x35, 0x83, 0x94}, true, TPub},
	TPub: {"tpub", [4]byte{0x04, 0x35, 0x87, 0xcf}, false, TPub},
	ZPrv: {"zprv", [4]byte{0x04, 0xb2, 0x43, 0x0c}, true, ZPub},
	ZPub: {"zpub", [4]byte{0x04, 0xb2, 0x47, 0x46}, false, ZPub},
	YPrv: {"yprv", [4]byte{0x04, 0x9d, 0x78, 0x78}, true, YPub},
	YPub: {"ypub", [4]byte{0x04, 0x9d, 0x7c, 0xb2}, false, YPub},
}

// Reverse lookups, built from keyVersions.
var (
	versionsByMagic = make(map[[VersionLen]byte]KeyVersion, numKeyVersions)
	versionsByTag   = make(map[string]KeyVersion, numKeyVersions)
)

func init() {
	for v, info := range keyVersions {
		versionsByMagic[info.magic] = KeyVersion(v)
		versionsByTag[info.tag] = KeyVersion(v)
	}
}

// VersionFromMagic returns the key version identified by the 4-byte magic.
func VersionFromMagic(magic []byte) (KeyVersion, error) {
	if len(magic) != VersionLen {
		str := fmt.Sprintf("version must be %d bytes, got %d",
			VersionLen, len(magic))
		return 0, makeError(ErrVersionTooShort, str)
	}

	var m [VersionLen]byte
	copy(m[:], magic)
	v, ok := versionsByMagic[m]
	if !ok {
		str := fmt.Sprintf("unknown version magic %x", magic)
		return 0, makeError(ErrInvalidVersion, str)
	}
	return v, nil
}

// ParseKeyVersion returns the key version for a tag such as "xprv".
func ParseKeyVersion(tag string) (KeyVersion, error) {
	v, ok := versionsByTag[tag]
	if !ok {
		str := fmt.Sprintf("unknown version tag %q", tag)
		return 0, makeError(ErrInvalidVersion, str)
	}
	return v, nil
}

// VersionForNet returns the key version matching the HD key IDs of the passed
// network parameters.  Networks whose IDs are not in the version table, such
// as simnet, are reported as ErrInvalidVersion.
func VersionForNet(params *chaincfg.Params, private bool) (KeyVersion, error) {
	id := params.HDPublicKeyID
	if private {
		id = params.HDPrivateKeyID
	}

	v, err := VersionFromMagic(id[:])
	if err != nil {
		str := fmt.Sprintf("network %s has no supported extended key "+
			"version", params.Name)
		return 0, wrapError(ErrInvalidVersion, str, err)
	}
	return v, nil
}

// IsValid returns whether v is one of the defined versions.
func (v KeyVersion) IsValid() bool {
	return v < numKeyVersions
}

// Magic returns the 4-byte magic which starts the serialization of keys with
// this version.  Unknown versions have an all zero magic.
func (v KeyVersion) Magic() [VersionLen]byte {
	if !v.IsValid() {
		return [VersionLen]byte{}
	}
	return keyVersions[v].magic
}

// IsPrivate returns whether the version is used for private extended keys.
// It is false for unknown versions.
func (v KeyVersion) IsPrivate() bool {
	return v.IsValid() && keyVersions[v].private
}

// Public returns the public counterpart of a private version.  Public and
// unknown versions are returned unchanged.
func (v KeyVersion) Public() KeyVersion {
	if !v.IsValid() {
		return v
	}
	return keyVersions[v].public
}

// String returns the version tag, for example "xprv".
func (v KeyVersion) String() string {
	if !v.IsValid() {
		return fmt.Sprintf("Unknown KeyVersion (%d)", uint8(v))
	}
	return keyVersions[v].tag
}

// MagicHex returns the magic as a hex string.
func (v KeyVersion) MagicHex() string {
	m := v.Magic()
	return hex.EncodeToString(m[:])
}
