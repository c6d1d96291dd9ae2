// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/riecoin/riecoind/blockchain/standalone"
	"github.com/riecoin/riecoind/chaincfg"
	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

func TestCheckPowCmdGenesisBypass(t *testing.T) {
	params := chaincfg.MainNetParams()
	cmd := &checkPowCmd{
		Hash:  params.GenesisHashForPoW.String(),
		Bits:  "00000000",
		Delta: "0",
	}
	if err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute: expected the genesis hash to bypass verification, got %v", err)
	}
}

func TestCheckPowCmdRejectsBadHash(t *testing.T) {
	cmd := &checkPowCmd{
		Hash:  "not-a-hash",
		Bits:  "00000000",
		Delta: "0",
	}
	if err := cmd.Execute(nil); err == nil {
		t.Fatal("Execute: expected an error for a malformed --hash")
	}
}

func TestCheckPowCmdRejectsBadDelta(t *testing.T) {
	// A non-genesis hash; --delta is parsed before any verification runs,
	// so the parse failure is reported either way.
	var hash chainhash.Hash
	hash[0] = 0x09
	cmd := &checkPowCmd{
		Hash:  hash.String(),
		Bits:  "00000000",
		Delta: "not-a-number",
	}
	if err := cmd.Execute(nil); err == nil {
		t.Fatal("Execute: expected an error for a malformed --delta")
	}
}

func TestCheckPowCmdRealSextuplet(t *testing.T) {
	var hash chainhash.Hash
	hash[0] = 0x01
	// significantDigits = 1 + zerosBeforeHashInPrime(8) + 256 = 265: zero
	// trailing zeros, so GeneratePrimeBase returns T0 unshifted.
	bits := standalone.BigToCompact(big.NewInt(265))

	t0, _ := standalone.GeneratePrimeBase(hash, bits)
	delta := new(big.Int).Neg(t0)
	delta.Add(delta, big.NewInt(97))

	cmd := &checkPowCmd{
		Hash:  hash.String(),
		Bits:  fmt.Sprintf("%x", bits),
		Delta: delta.String(),
	}
	cmd.TestNet = true // AllowMinDifficultyBlocks so the offset bound never trips

	if err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute: expected the 97..113 sextuplet to verify, got %v", err)
	}
}
