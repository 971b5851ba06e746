// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/hdcore/hdcore/hdkeychain"
	"github.com/hdcore/hdcore/internal/log"
)

const (
	defaultLogLevel = "info"
	defaultNetwork  = "mainnet"
)

// errShowSubsystems is returned by apply for --debuglevel=show.  run prints the
// supported subsystems in place of running the command.
var errShowSubsystems = errors.New("show supported subsystems")

// netParams maps the --net choices to their network parameters.
var netParams = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet3": &chaincfg.TestNet3Params,
	"regtest":  &chaincfg.RegressionNetParams,
	"signet":   &chaincfg.SigNetParams,
	"simnet":   &chaincfg.SimNetParams,
}

// config defines the global configuration options for hdkeyutil.  Options of
// the individual commands live in their command types.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogFile     string `long:"logfile" description:"Also write log output to this file"`
	Network     string `long:"net" description:"Network whose extended key versions are used when no --type is given" choice:"mainnet" choice:"testnet3" choice:"regtest" choice:"signet" choice:"simnet"`

	applied bool
}

// defaultConfig returns the configuration with all defaults applied.
func defaultConfig() config {
	return config{
		DebugLevel: defaultLogLevel,
		Network:    defaultNetwork,
	}
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !log.ValidLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		log.SetLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := log.SubsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, log.SupportedSubsystems())
		}

		// Validate log level.
		if !log.ValidLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		log.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// apply validates the global options and sets up logging.  It is run by every
// command before it does any work.
func (cfg *config) apply() error {
	if cfg.applied {
		return nil
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return errShowSubsystems
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			return fmt.Errorf("apply: %w", err)
		}
	}

	if _, ok := netParams[cfg.Network]; !ok {
		return fmt.Errorf("apply: unknown network %q", cfg.Network)
	}

	cfg.applied = true
	return nil
}

// privateVersion returns the private key version named by tag, or the private
// version of the configured network when tag is empty.
func (cfg *config) privateVersion(tag string) (hdkeychain.KeyVersion, error) {
	if tag == "" {
		return hdkeychain.VersionForNet(netParams[cfg.Network], true)
	}

	version, err := hdkeychain.ParseKeyVersion(tag)
	if err != nil {
		return 0, err
	}
	if !version.IsPrivate() {
		return 0, fmt.Errorf("key type %s is not a private key type -- "+
			"use --public to print public keys", version)
	}
	return version, nil
}
