// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters for the riecoin
// networks: mainnet, testnet, simnet, and the regression test network.
// These networks are incompatible with each other (each uses a different
// genesis hash and network magic) and software should handle errors where
// input intended for one network is used on an application instance
// running against a different network.
//
// For main packages, a (typically global) var may be assigned the return
// value of one of the Params constructors below for use as the
// application's "active" network. When a network parameter is needed, it
// may then be looked up through this variable (either directly, or hidden
// in a library call).
//
//	package main
//
//	import (
//	        "flag"
//	        "fmt"
//
//	        "github.com/riecoin/riecoind/chaincfg"
//	)
//
//	var testnet = flag.Bool("testnet", false, "operate on the test riecoin network")
//
//	// By default (without -testnet), use mainnet.
//	var chainParams = chaincfg.MainNetParams()
//
//	func main() {
//	        flag.Parse()
//
//	        // Modify active network parameters if operating on testnet.
//	        if *testnet {
//	                chainParams = chaincfg.TestNetParams()
//	        }
//
//	        // later...
//	        fmt.Println(chainParams.Name)
//	}
package chaincfg
