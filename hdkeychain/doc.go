// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hdkeychain provides an API for bitcoin hierarchical deterministic
extended keys (BIP0032).

Overview

The ability to implement hierarchical deterministic wallets depends on the
ability to create and derive hierarchical deterministic extended keys.

At a high level, this package provides support for those hierarchical
deterministic extended keys by providing an ExtendedPrivateKey type and an
ExtendedPublicKey type along with functions to derive children, and an
ExtendedKey type which is the serialized form shared by both.

Deriving Children

A master private extended key is created from a seed with NewMaster.  Children
are derived one step at a time with Child, or along a parsed DerivationPath
with DerivePath:

	path, err := hdkeychain.ParsePath("m/44'/0'/0'/0/0")
	master, err := hdkeychain.NewMaster(seed)
	key, err := master.DerivePath(path)

A private extended key can derive hardened and normal children.  Neuter
returns the public extended key, which can only derive normal children.
Attempting to derive a hardened child from a public key fails with
ErrHardenedFromPublic.

Serialization

Any key is serialized by choosing a KeyVersion:

	xprv := key.ExtendedKey(hdkeychain.XPrv).String()
	xpub := key.Neuter().ExtendedKey(hdkeychain.XPub).String()

NewKeyFromString parses the Base58Check form back into an ExtendedKey whose
PrivateKey and PublicKey methods rebuild the typed keys.

Errors

All errors are of type Error and carry an ErrorKind which can be checked with
errors.Is.  Nothing in this package logs or retries; in particular the
negligible-probability ErrTweakOutOfRange is left for the caller to handle by
moving on to the next index.
*/
package hdkeychain
