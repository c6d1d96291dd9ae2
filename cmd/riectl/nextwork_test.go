// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/riecoin/riecoind/chaincfg"
)

func writeChainFile(t *testing.T, entries []chainEntry) string {
	t.Helper()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal chain file: %v", err)
	}
	path := filepath.Join(t.TempDir(), "chain.json")
	if err := os.WriteFile(path, raw, 0600); err != nil {
		t.Fatalf("write chain file: %v", err)
	}
	return path
}

func TestNextWorkCmdOffInterval(t *testing.T) {
	params := chaincfg.RegNetParams()
	genesis := params.GenesisHash.String()

	entries := []chainEntry{
		{Hash: genesis, ParentHash: genesis, Bits: "", Height: 0, Timestamp: 1},
		{Hash: "1100000000000000000000000000000000000000000000000000000000000000"[:64],
			ParentHash: genesis, Bits: hexBits(params.PowLimitBits), Height: 1, Timestamp: 2},
	}
	// Execute runs parseChainEntry on every entry, height 0 included, and
	// an empty Bits string fails to parse; give it a real hex string.
	entries[0].Bits = hexBits(params.PowLimitBits)

	chainFile := writeChainFile(t, entries)

	cmd := &nextWorkCmd{ChainFile: chainFile}
	cmd.RegTest = true

	if err := cmd.Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestNextWorkCmdRejectsMissingParent(t *testing.T) {
	params := chaincfg.RegNetParams()
	genesis := params.GenesisHash.String()

	orphanParent := "2200000000000000000000000000000000000000000000000000000000000000"[:64]
	orphanHash := "3300000000000000000000000000000000000000000000000000000000000000"[:64]

	entries := []chainEntry{
		{Hash: genesis, ParentHash: genesis, Bits: hexBits(params.PowLimitBits), Height: 0, Timestamp: 1},
		{Hash: orphanHash, ParentHash: orphanParent, Bits: hexBits(params.PowLimitBits), Height: 1, Timestamp: 2},
	}
	chainFile := writeChainFile(t, entries)

	cmd := &nextWorkCmd{ChainFile: chainFile}
	cmd.RegTest = true

	if err := cmd.Execute(nil); err == nil {
		t.Fatal("Execute: expected an error for an unresolvable parent hash")
	}
}

func TestParseChainEntryRejectsBadHash(t *testing.T) {
	_, err := parseChainEntry(chainEntry{Hash: "not-a-hash"})
	if err == nil {
		t.Fatal("parseChainEntry: expected an error for a malformed hash")
	}
}

func TestParseChainEntryRejectsBadBits(t *testing.T) {
	params := chaincfg.RegNetParams()
	_, err := parseChainEntry(chainEntry{
		Hash:       params.GenesisHash.String(),
		ParentHash: params.GenesisHash.String(),
		Bits:       "not-hex",
	})
	if err == nil {
		t.Fatal("parseChainEntry: expected an error for malformed bits")
	}
}

func hexBits(bits uint32) string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = hexdigits[bits&0xf]
		bits >>= 4
	}
	return string(buf)
}
