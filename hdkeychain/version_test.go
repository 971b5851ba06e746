// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain_test

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/hdcore/hdcore/hdkeychain"
	"github.com/stretchr/testify/require"
)

// TestKeyVersions ensures the version table matches the well known magics and
// every magic maps back to its version.
func TestKeyVersions(t *testing.T) {
	tests := []struct {
		version hdkeychain.KeyVersion
		tag     string
		magic   string
		private bool
		public  hdkeychain.KeyVersion
	}{
		{hdkeychain.XPrv, "xprv", "0488ade4", true, hdkeychain.XPub},
		{hdkeychain.XPub, "xpub", "0488b21e", false, hdkeychain.XPub},
		{hdkeychain.TPrv, "tprv", "04358394", true, hdkeychain.TPub},
		{hdkeychain.TPub, "tpub", "043587cf", false, hdkeychain.TPub},
		{hdkeychain.ZPrv, "zprv", "04b2430c", true, hdkeychain.ZPub},
		{hdkeychain.ZPub, "zpub", "04b24746", false, hdkeychain.ZPub},
		{hdkeychain.YPrv, "yprv", "049d7878", true, hdkeychain.YPub},
		{hdkeychain.YPub, "ypub", "049d7cb2", false, hdkeychain.YPub},
	}

	for i, test := range tests {
		v := test.version
		if !v.IsValid() {
			t.Errorf("IsValid #%d (%s): version is not valid", i,
				test.tag)
			continue
		}
		if v.String() != test.tag {
			t.Errorf("String #%d: got %q, want %q", i, v.String(),
				test.tag)
		}
		if v.MagicHex() != test.magic {
			t.Errorf("MagicHex #%d (%s): got %s, want %s", i,
				test.tag, v.MagicHex(), test.magic)
		}
		if v.IsPrivate() != test.private {
			t.Errorf("IsPrivate #%d (%s): got %v, want %v", i,
				test.tag, v.IsPrivate(), test.private)
		}
		if v.Public() != test.public {
			t.Errorf("Public #%d (%s): got %s, want %s", i,
				test.tag, v.Public(), test.public)
		}

		magic := v.Magic()
		fromMagic, err := hdkeychain.VersionFromMagic(magic[:])
		if err != nil || fromMagic != v {
			t.Errorf("VersionFromMagic #%d (%s): got %s (%v), want %s",
				i, test.tag, fromMagic, err, v)
		}

		fromTag, err := hdkeychain.ParseKeyVersion(test.tag)
		if err != nil || fromTag != v {
			t.Errorf("ParseKeyVersion #%d (%s): got %s (%v), want %s",
				i, test.tag, fromTag, err, v)
		}
	}
}

// TestVersionFromMagicErrors ensures unknown and short magics are rejected.
func TestVersionFromMagicErrors(t *testing.T) {
	tests := []struct {
		name  string
		magic []byte
		err   error
	}{
		{name: "nil", magic: nil, err: hdkeychain.ErrVersionTooShort},
		{name: "short", magic: []byte{0x04, 0x88, 0xad}, err: hdkeychain.ErrVersionTooShort},
		{name: "long", magic: []byte{0x04, 0x88, 0xad, 0xe4, 0x00}, err: hdkeychain.ErrVersionTooShort},
		{name: "unknown", magic: []byte{0x00, 0x00, 0x00, 0x00}, err: hdkeychain.ErrInvalidVersion},
		{name: "decred", magic: []byte{0x02, 0xfd, 0xa4, 0xe8}, err: hdkeychain.ErrInvalidVersion},
	}

	for i, test := range tests {
		_, err := hdkeychain.VersionFromMagic(test.magic)
		if !errors.Is(err, test.err) {
			t.Errorf("VersionFromMagic #%d (%s): mismatched error -- "+
				"got: %v, want: %v", i, test.name, err, test.err)
		}
	}

	_, err := hdkeychain.ParseKeyVersion("dprv")
	require.ErrorIs(t, err, hdkeychain.ErrInvalidVersion)

	require.False(t, hdkeychain.KeyVersion(200).IsValid())
	require.Equal(t, "Unknown KeyVersion (200)",
		hdkeychain.KeyVersion(200).String())
}

// TestVersionForNet ensures network parameters map to their key versions.
func TestVersionForNet(t *testing.T) {
	tests := []struct {
		name    string
		params  *chaincfg.Params
		private bool
		want    hdkeychain.KeyVersion
		err     error
	}{
		{"mainnet private", &chaincfg.MainNetParams, true, hdkeychain.XPrv, nil},
		{"mainnet public", &chaincfg.MainNetParams, false, hdkeychain.XPub, nil},
		{"testnet3 private", &chaincfg.TestNet3Params, true, hdkeychain.TPrv, nil},
		{"testnet3 public", &chaincfg.TestNet3Params, false, hdkeychain.TPub, nil},
		{"regtest private", &chaincfg.RegressionNetParams, true, hdkeychain.TPrv, nil},
		{"simnet private", &chaincfg.SimNetParams, true, 0, hdkeychain.ErrInvalidVersion},
	}

	for i, test := range tests {
		got, err := hdkeychain.VersionForNet(test.params, test.private)
		if !errors.Is(err, test.err) {
			t.Errorf("VersionForNet #%d (%s): mismatched error -- "+
				"got: %v, want: %v", i, test.name, err, test.err)
			continue
		}
		if test.err == nil && got != test.want {
			t.Errorf("VersionForNet #%d (%s): got %s, want %s", i,
				test.name, got, test.want)
		}
	}
}
