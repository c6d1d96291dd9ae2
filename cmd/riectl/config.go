// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/riecoin/riecoind/chaincfg"
)

const (
	defaultDataDirname = ".riectl"
	defaultLogFilename = "riectl.log"
	defaultDebugLevel  = "info"
)

// netSelection groups the mutually exclusive network flags the way
// dcrd-lineage config structs do, embedded into each verb so every command
// chooses its network independently.
type netSelection struct {
	TestNet bool `long:"testnet" description:"Use the test network"`
	SimNet  bool `long:"simnet" description:"Use the simulation test network"`
	RegTest bool `long:"regtest" description:"Use the regression test network"`
}

// params resolves the network selection flags to the concrete chain
// parameters the selected verb should run against. MainNet is the default
// when no network flag is set, matching every dcrd-lineage config the
// teacher defines.
func (n *netSelection) params() (*chaincfg.Params, error) {
	selected := 0
	var params *chaincfg.Params
	if n.TestNet {
		selected++
		params = chaincfg.TestNetParams()
	}
	if n.SimNet {
		selected++
		params = chaincfg.SimNetParams()
	}
	if n.RegTest {
		selected++
		params = chaincfg.RegNetParams()
	}
	if selected > 1 {
		return nil, fmt.Errorf("the testnet, simnet, and regtest flags can not be used together")
	}
	if selected == 0 {
		params = chaincfg.MainNetParams()
	}
	return params, nil
}

// config defines the top-level, verb-independent flags riectl accepts.
type config struct {
	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	NoFileLog  bool   `long:"nofilelogging" description:"Disable logging to a file"`
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// defaultDataDir returns the OS-appropriate default application data
// directory for riectl.
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultDataDirname
	}
	return filepath.Join(homeDir, defaultDataDirname)
}
