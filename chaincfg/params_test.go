// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"testing"

	"github.com/riecoin/riecoind/blockchain/standalone"
)

// TestNetworksDistinct ensures each standard network has a unique net
// magic and genesis hash; colliding values would let a node on one network
// mistake peers or blocks for another's.
func TestNetworksDistinct(t *testing.T) {
	all := []*Params{
		MainNetParams(),
		TestNetParams(),
		RegNetParams(),
		SimNetParams(),
	}

	seenNets := make(map[Net]string)
	seenHashes := make(map[string]string)
	for _, params := range all {
		if other, ok := seenNets[params.Net]; ok {
			t.Errorf("%s and %s share net magic %08x", params.Name, other, uint32(params.Net))
		}
		seenNets[params.Net] = params.Name

		hash := params.GenesisHash.String()
		if other, ok := seenHashes[hash]; ok {
			t.Errorf("%s and %s share genesis hash %s", params.Name, other, hash)
		}
		seenHashes[hash] = params.Name
	}
}

// TestGenesisBypassesPoW ensures every network's GenesisHashForPoW value
// actually takes CheckProofOfWork's genesis bypass, regardless of whether
// it happens to equal GenesisHash. Passing a zero compact value and a zero
// delta would fail verification on any non-bypassed hash, so success here
// can only mean the bypass fired.
func TestGenesisBypassesPoW(t *testing.T) {
	for _, params := range []*Params{MainNetParams(), TestNetParams(), RegNetParams(), SimNetParams()} {
		err := standalone.CheckProofOfWork(params.GenesisHashForPoW, 0, big.NewInt(0),
			params.GenesisHashForPoW, params.AllowMinDifficultyBlocks)
		if err != nil {
			t.Errorf("%s: GenesisHashForPoW did not bypass verification: %v", params.Name, err)
		}
	}
}

// TestMainNetGenesisHashForPoWLiteral pins the mainnet genesis PoW-bypass
// hash to the literal value the reference client asserts at startup
// (chainparams.cpp's consensus.hashGenesisBlockForPoW), and confirms it
// actually takes CheckProofOfWork's bypass against mainnet's own
// compact-encoded pow limit and a zero offset.
func TestMainNetGenesisHashForPoWLiteral(t *testing.T) {
	params := MainNetParams()
	want := "26d0466d5a0eab0ebf171eacb98146b26143d143463514f26b28d3cded81c1bb"
	if got := params.GenesisHashForPoW.String(); got != want {
		t.Fatalf("GenesisHashForPoW = %s, want %s", got, want)
	}

	err := standalone.CheckProofOfWork(params.GenesisHashForPoW, params.PowLimitBits,
		big.NewInt(0), params.GenesisHashForPoW, params.AllowMinDifficultyBlocks)
	if err != nil {
		t.Fatalf("mainnet genesis scenario: want Ok, got %v", err)
	}
}

// TestPowLimitBitsRoundTrips ensures each network's PowLimitBits decodes
// back to its PowLimit, since a mismatch would mean nodes reject or accept
// the wrong set of headers at minimum difficulty.
func TestPowLimitBitsRoundTrips(t *testing.T) {
	for _, params := range []*Params{MainNetParams(), TestNetParams(), RegNetParams(), SimNetParams()} {
		got := standalone.CompactToBig(params.PowLimitBits)
		if got.Cmp(params.PowLimit) != 0 {
			t.Errorf("%s: PowLimitBits decodes to %s, want %s", params.Name, got, params.PowLimit)
		}
	}
}

// TestRegNetDisablesRetargeting pins the one network that is documented to
// run with a fixed difficulty throughout.
func TestRegNetDisablesRetargeting(t *testing.T) {
	if !RegNetParams().NoRetargeting {
		t.Fatal("regtest must disable retargeting")
	}
	for _, params := range []*Params{MainNetParams(), TestNetParams(), SimNetParams()} {
		if params.NoRetargeting {
			t.Errorf("%s: unexpectedly disables retargeting", params.Name)
		}
	}
}

func TestNetString(t *testing.T) {
	tests := []struct {
		net  Net
		want string
	}{
		{MainNet, "mainnet"},
		{TestNet, "testnet"},
		{SimNet, "simnet"},
		{RegNet, "regtest"},
		{Net(0xffffffff), "unknown"},
	}
	for _, test := range tests {
		if got := test.net.String(); got != test.want {
			t.Errorf("Net(%08x).String() = %q, want %q", uint32(test.net), got, test.want)
		}
	}
}
