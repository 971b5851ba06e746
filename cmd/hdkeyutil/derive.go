// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hdcore/hdcore/batch"
	"github.com/hdcore/hdcore/hdkeychain"
	"github.com/hdcore/hdcore/internal/log"
)

// masterPath selects the master key in place of a derivation path.
const masterPath = "m"

// deriveCmd derives the key at a path from a seed.
type deriveCmd struct {
	Seed       string `long:"seed" description:"Hex encoded seed of 16 to 64 bytes"`
	PromptSeed bool   `long:"promptseed" description:"Read the hex encoded seed from the terminal without echoing it"`
	Path       string `long:"path" default:"m" description:"Derivation path such as m/44'/0'/0'/0/0 -- m alone selects the master key"`
	MaxDepth   int    `long:"maxdepth" default:"5" description:"Maximum number of segments in the derivation path"`
	Type       string `long:"type" description:"Private key type {xprv, tprv, zprv, yprv} -- defaults to the type of the --net network"`
	Public     bool   `long:"public" description:"Only print the public extended key"`
	NextValid  bool   `long:"nextvalid" description:"Move on to the next index when the last index of the path does not produce a usable key"`

	cfg    *config
	out    io.Writer
	prompt func() ([]byte, error)
}

// readSeed returns the seed from the command line or the terminal.
func (c *deriveCmd) readSeed() ([]byte, error) {
	switch {
	case c.Seed != "" && c.PromptSeed:
		return nil, errors.New("--seed and --promptseed can't be used " +
			"together")
	case c.PromptSeed:
		return c.prompt()
	case c.Seed != "":
		return decodeSeed([]byte(c.Seed))
	}
	return nil, errors.New("a seed is required -- use --seed or " +
		"--promptseed")
}

// derivePath derives the key at path from master.  With --nextvalid the last
// child number may be replaced by a following one, so the path actually used
// is returned along with the key.
func (c *deriveCmd) derivePath(master *hdkeychain.ExtendedPrivateKey,
	path hdkeychain.DerivationPath) (*hdkeychain.ExtendedPrivateKey, string, error) {

	if !c.NextValid {
		key, err := master.DerivePath(path)
		return key, path.String(), err
	}

	childNums := path.ChildNumbers()
	last := len(childNums) - 1
	parent := master
	for _, cn := range childNums[:last] {
		var err error
		parent, err = parent.Child(cn)
		if err != nil {
			return nil, "", err
		}
	}

	key, cn, err := batch.NextValidChild[*hdkeychain.ExtendedPrivateKey](
		parent, childNums[last])
	if err != nil {
		return nil, "", err
	}
	childNums[last] = cn

	var sb strings.Builder
	sb.WriteString(masterPath)
	for _, cn := range childNums {
		sb.WriteString("/")
		sb.WriteString(cn.String())
	}
	return key, sb.String(), nil
}

// Execute derives and prints the requested key.
func (c *deriveCmd) Execute(args []string) error {
	if err := c.cfg.apply(); err != nil {
		return err
	}

	privVersion, err := c.cfg.privateVersion(c.Type)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}

	seed, err := c.readSeed()
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}
	if err := hdkeychain.CheckSeedLen(seed); err != nil {
		zero(seed)
		return fmt.Errorf("derive: %w", err)
	}
	master, err := hdkeychain.NewMaster(seed)
	zero(seed)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}
	defer master.Zero()

	key, pathStr := master, masterPath
	if c.Path != masterPath {
		path, err := hdkeychain.ParsePathWithLimit(c.Path, c.MaxDepth)
		if err != nil {
			return fmt.Errorf("derive: %w", err)
		}
		key, pathStr, err = c.derivePath(master, path)
		if err != nil {
			return fmt.Errorf("derive %s: %w", c.Path, err)
		}
		defer key.Zero()
	}

	log.HdkuLog.Debugf("Derived %s at depth %d with fingerprint %s",
		pathStr, key.Depth(), key.Fingerprint())
	if pathStr != c.Path {
		log.HdkuLog.Warnf("Derived %s in place of %s", pathStr, c.Path)
	}

	if !c.Public {
		fmt.Fprintln(c.out, key.ExtendedKey(privVersion))
	}
	fmt.Fprintln(c.out, key.Neuter().ExtendedKey(privVersion.Public()))
	return nil
}
