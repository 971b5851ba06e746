// Copyright (c) 2017 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// zero sets all bytes in the passed slice to zero.
func zero(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0x00
	}
}

// promptSeed reads a hex encoded seed from the terminal without echoing it.
func promptSeed() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Seed (hex): ")
	secret, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprint(os.Stderr, "\n")
	if err != nil {
		return nil, fmt.Errorf("unable to read seed: %w", err)
	}
	defer zero(secret)

	return decodeSeed(secret)
}

// decodeSeed decodes a hex encoded seed into a new slice.
func decodeSeed(hexSeed []byte) ([]byte, error) {
	seed := make([]byte, hex.DecodedLen(len(hexSeed)))
	if _, err := hex.Decode(seed, hexSeed); err != nil {
		zero(seed)
		return nil, fmt.Errorf("seed is not valid hex: %w", err)
	}
	return seed, nil
}
