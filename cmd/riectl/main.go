// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// riectl is a diagnostic command-line tool for the prime-constellation
// proof-of-work core: it is not a full node (no P2P, no wallet, no RPC
// server) and exists only to exercise check_pow and next_work_required
// from the command line.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg := &config{
		DataDir:    defaultDataDir(),
		DebugLevel: defaultDebugLevel,
	}

	// Pre-scan the global flags before the real parser runs: go-flags
	// invokes a command's Execute as soon as its own flags parse
	// successfully, so logging must already be configured by then.
	pre := flags.NewParser(cfg, flags.Default|flags.IgnoreUnknown)
	if _, err := pre.ParseArgs(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)

	setLogLevels(cfg.DebugLevel)
	if !cfg.NoFileLog {
		logFile := filepath.Join(cfg.DataDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	parser := flags.NewParser(cfg, flags.Default)
	parser.AddCommand("checkpow", "Verify a candidate proof-of-work witness",
		"Verify that a header hash, compact difficulty, and offset witness a valid prime constellation.",
		&checkPowCmd{})
	parser.AddCommand("nextwork", "Compute the next required difficulty",
		"Replay a JSON chain snapshot and report the difficulty the block after its tip must meet.",
		&nextWorkCmd{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
