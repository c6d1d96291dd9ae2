// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"

	"github.com/riecoin/riecoind/blockchain/standalone"
	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// checkPowCmd implements the checkpow verb: a direct, single-shot wrapper
// around standalone.CheckProofOfWork for manually inspecting a candidate
// witness without needing a running node or a populated block index.
type checkPowCmd struct {
	netSelection

	Hash  string `long:"hash" description:"Header hash, as a byte-reversed hex string" required:"true"`
	Bits  string `long:"bits" description:"Compact-encoded difficulty, as hex (e.g. 1d00ffff)" required:"true"`
	Delta string `long:"delta" description:"Candidate offset, as a decimal integer" required:"true"`
}

// Execute implements flags.Commander.
func (cmd *checkPowCmd) Execute(args []string) error {
	params, err := cmd.params()
	if err != nil {
		return err
	}

	hash, err := chainhash.NewHashFromStr(cmd.Hash)
	if err != nil {
		return fmt.Errorf("invalid --hash: %w", err)
	}

	var bits uint32
	if _, err := fmt.Sscanf(cmd.Bits, "%x", &bits); err != nil {
		return fmt.Errorf("invalid --bits: %w", err)
	}

	delta, ok := new(big.Int).SetString(cmd.Delta, 10)
	if !ok {
		return fmt.Errorf("invalid --delta: %q is not a decimal integer", cmd.Delta)
	}

	err = standalone.CheckProofOfWork(*hash, bits, delta, params.GenesisHashForPoW,
		params.AllowMinDifficultyBlocks)
	if err != nil {
		fmt.Printf("invalid: %v\n", err)
		return err
	}
	fmt.Println("valid")
	return nil
}
