// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hdcore/hdcore/internal/log"
	"github.com/hdcore/hdcore/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const appName = "hdkeyutil"

// newParser returns a command line parser for cfg with all commands
// registered.  Commands print their results to out.
func newParser(cfg *config, out io.Writer) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name  string
		short string
		long  string
		data  interface{}
	}{{
		name:  "derive",
		short: "Derive an extended key from a seed",
		long: "Derive the extended key at a path from a hex encoded " +
			"seed and print its private and public serializations.",
		data: &deriveCmd{cfg: cfg, out: out, prompt: promptSeed},
	}, {
		name:  "decode",
		short: "Show the fields of an extended key",
		long: "Decode a Base58Check encoded extended key and print its " +
			"version, position in the tree and public key.",
		data: &decodeCmd{cfg: cfg, out: out},
	}, {
		name:  "neuter",
		short: "Convert a private extended key to a public one",
		long:  "Print the public extended key of a private extended key.",
		data:  &neuterCmd{cfg: cfg, out: out},
	}, {
		name:  "range",
		short: "Derive a range of children of an extended key",
		long: "Derive consecutive children of a private or public " +
			"extended key in parallel and print them in index order.",
		data: &rangeCmd{cfg: cfg, out: out},
	}}
	for _, c := range commands {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.data)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// run parses args and runs the selected command.
func run(args []string, out io.Writer) error {
	cfg := defaultConfig()

	// Pre-parse the command line options to see if the version was
	// requested.  Command options are unknown to this parser and ignored.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	_, _ = preParser.ParseArgs(args)
	if preCfg.ShowVersion {
		fmt.Fprintln(out, version.Full(appName))
		return nil
	}

	parser, err := newParser(&cfg, out)
	if err != nil {
		return err
	}
	_, err = parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(out, err)
			return nil
		}
		if errors.Is(err, errShowSubsystems) {
			fmt.Fprintln(out, "Supported subsystems",
				log.SupportedSubsystems())
			return nil
		}
		return err
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer log.CloseLogRotator()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.HdkuLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
