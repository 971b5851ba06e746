// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hdcore/hdcore/batch"
	"github.com/hdcore/hdcore/hdkeychain"
	"github.com/hdcore/hdcore/internal/log"
)

// rangeCmd derives consecutive children of an extended key.
type rangeCmd struct {
	Start   string  `long:"start" default:"0" description:"First child index, with a trailing ' for hardened children"`
	Count   int     `long:"count" default:"10" description:"Number of children to derive"`
	Workers int     `long:"workers" description:"Number of children derived at once -- defaults to the number of CPUs"`
	Public  bool    `long:"public" description:"Print the public extended keys of the children of a private key"`
	Args    keyArgs `positional-args:"yes" required:"yes"`

	cfg *config
	out io.Writer
}

// Execute derives and prints the children.
func (c *rangeCmd) Execute(args []string) error {
	if err := c.cfg.apply(); err != nil {
		return err
	}

	start, err := hdkeychain.ParseChildNumber(c.Start)
	if err != nil {
		return fmt.Errorf("range: %w", err)
	}
	extKey, err := hdkeychain.NewKeyFromString(c.Args.Key)
	if err != nil {
		return fmt.Errorf("range: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	opts := []batch.Option{batch.WithWorkers(c.Workers)}

	var numDerived int
	if extKey.IsPrivate() {
		numDerived, err = c.privateRange(ctx, extKey, start, opts)
	} else {
		numDerived, err = c.publicRange(ctx, extKey, start, opts)
	}
	if err != nil {
		return fmt.Errorf("range: %w", err)
	}

	log.HdkuLog.Infof("Derived %d %s starting at %s", numDerived,
		log.PickNoun(uint64(numDerived), "child", "children"), start)
	return nil
}

// privateRange derives and prints the children of a private extended key.
func (c *rangeCmd) privateRange(ctx context.Context, extKey *hdkeychain.ExtendedKey,
	start hdkeychain.ChildNumber, opts []batch.Option) (int, error) {

	parent, err := extKey.PrivateKey()
	if err != nil {
		return 0, err
	}
	defer parent.Zero()

	children, err := batch.Range[*hdkeychain.ExtendedPrivateKey](ctx,
		parent, start.Index(), c.Count, opts...)
	if err != nil {
		return 0, err
	}
	for _, child := range children {
		if c.Public {
			fmt.Fprintln(c.out, child.ChildNumber(), child.Neuter().
				ExtendedKey(extKey.Version.Public()))
		} else {
			fmt.Fprintln(c.out, child.ChildNumber(),
				child.ExtendedKey(extKey.Version))
		}
		child.Zero()
	}
	return len(children), nil
}

// publicRange derives and prints the children of a public extended key.
func (c *rangeCmd) publicRange(ctx context.Context, extKey *hdkeychain.ExtendedKey,
	start hdkeychain.ChildNumber, opts []batch.Option) (int, error) {

	parent, err := extKey.PublicKey()
	if err != nil {
		return 0, err
	}

	children, err := batch.Range[*hdkeychain.ExtendedPublicKey](ctx,
		parent, start.Index(), c.Count, opts...)
	if err != nil {
		return 0, err
	}
	for _, child := range children {
		fmt.Fprintln(c.out, child.ChildNumber(),
			child.ExtendedKey(extKey.Version))
	}
	return len(children), nil
}
