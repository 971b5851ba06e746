// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain_test

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/hdcore/hdcore/hdkeychain"
)

// This example demonstrates how to derive a key along a textual path and
// serialize the result.
func Example_derivePath() {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		fmt.Println(err)
		return
	}

	path, err := hdkeychain.ParsePath("m/0'/1")
	if err != nil {
		fmt.Println(err)
		return
	}

	key, err := hdkeychain.DeriveFromPath(seed, path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer key.Zero()

	fmt.Println("Path:", path)
	fmt.Println("Depth:", key.Depth())
	fmt.Println("Parent:", key.ParentFingerprint())
	fmt.Println(key.Neuter().ExtendedKey(hdkeychain.XPub))

	// Output:
	// Path: m/0'/1
	// Depth: 2
	// Parent: 5c1bd648
	// xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ
}

// This example demonstrates how a watch-only service derives receiving
// addresses' public keys from an account level extended public key.
func Example_watchOnly() {
	// Ordinarily this would be read from a configuration file.
	acctPub := "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw"

	extKey, err := hdkeychain.NewKeyFromString(acctPub)
	if err != nil {
		fmt.Println(err)
		return
	}
	acct, err := extKey.PublicKey()
	if err != nil {
		fmt.Println(err)
		return
	}

	// Hardened children require the private key.
	_, err = acct.Child(hdkeychain.NewChildNumber(hdkeychain.HardenedKeyStart))
	fmt.Println(errors.Is(err, hdkeychain.ErrHardenedFromPublic))

	child, err := acct.Child(hdkeychain.NewChildNumber(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(child.ExtendedKey(hdkeychain.XPub))

	// Output:
	// true
	// xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ
}
