// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/hdcore/hdcore/hdkeychain"
)

// keyArgs is the positional extended key argument shared by several commands.
type keyArgs struct {
	Key string `positional-arg-name:"key" description:"Base58Check encoded extended key"`
}

// decodeCmd prints the fields of an extended key.
type decodeCmd struct {
	Dump bool    `long:"dump" description:"Also print a dump of the decoded key structure"`
	Args keyArgs `positional-args:"yes" required:"yes"`

	cfg *config
	out io.Writer
}

// publicKeyOf returns the public extended key described by extKey, whether it
// holds a private or a public key.
func publicKeyOf(extKey *hdkeychain.ExtendedKey) (*hdkeychain.ExtendedPublicKey, error) {
	if !extKey.IsPrivate() {
		return extKey.PublicKey()
	}

	privKey, err := extKey.PrivateKey()
	if err != nil {
		return nil, err
	}
	pubKey := privKey.Neuter()
	privKey.Zero()
	return pubKey, nil
}

// Execute decodes and prints the key.
func (c *decodeCmd) Execute(args []string) error {
	if err := c.cfg.apply(); err != nil {
		return err
	}

	extKey, err := hdkeychain.NewKeyFromString(c.Args.Key)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	pubKey, err := publicKeyOf(extKey)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	attrs := extKey.Attrs
	fmt.Fprintf(c.out, "version:            %s (%s)\n", extKey.Version,
		extKey.Version.MagicHex())
	fmt.Fprintf(c.out, "private:            %v\n", extKey.IsPrivate())
	fmt.Fprintf(c.out, "depth:              %d\n", attrs.Depth)
	fmt.Fprintf(c.out, "parent fingerprint: %s\n", attrs.ParentFingerprint)
	fmt.Fprintf(c.out, "child number:       %s\n", attrs.ChildNumber)
	fmt.Fprintf(c.out, "chain code:         %s\n", extKey.ChainCode)
	fmt.Fprintf(c.out, "public key:         %s\n", hex.EncodeToString(
		pubKey.PublicKey().SerializeCompressed()))
	fmt.Fprintf(c.out, "fingerprint:        %s\n", pubKey.Fingerprint())

	if c.Dump {
		spew.Fdump(c.out, extKey)
	}
	return nil
}

// neuterCmd prints the public extended key of a private one.
type neuterCmd struct {
	Args keyArgs `positional-args:"yes" required:"yes"`

	cfg *config
	out io.Writer
}

// Execute converts and prints the key.
func (c *neuterCmd) Execute(args []string) error {
	if err := c.cfg.apply(); err != nil {
		return err
	}

	extKey, err := hdkeychain.NewKeyFromString(c.Args.Key)
	if err != nil {
		return fmt.Errorf("neuter: %w", err)
	}
	privKey, err := extKey.PrivateKey()
	if err != nil {
		return fmt.Errorf("neuter: %w", err)
	}
	defer privKey.Zero()

	fmt.Fprintln(c.out, privKey.Neuter().ExtendedKey(extKey.Version.Public()))
	return nil
}
