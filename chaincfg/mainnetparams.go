// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// MainNetParams returns the network parameters for the main riecoin network.
func MainNetParams() *Params {
	// mainPowLimit is RIECOIN_MIN_PRIME_SIZE, the lowest significant
	// digit count a prime base is ever allowed to target: 1 (the base
	// itself) + 8 (zeros before the hash in the prime) + 256 (the
	// header hash) + 39, matching every network's consensus.powLimit in
	// the reference client.
	mainPowLimit := big.NewInt(304)

	genesisHash := newHashFromStr(
		"e1ea18d0676ef9899fbc78ef428d1d26a2416d0f0441d46668d33bcb41275740",
	)
	// genesisHashForPoW is the block's hash computed over its
	// proof-of-work-relevant fields only, distinct from its full hash,
	// and is what CheckProofOfWork special-cases to bypass verification
	// for the genesis block.
	genesisHashForPoW := newHashFromStr(
		"26d0466d5a0eab0ebf171eacb98146b26143d143463514f26b28d3cded81c1bb",
	)

	return &Params{
		Name:                     "mainnet",
		Net:                      MainNet,
		GenesisHash:              genesisHash,
		GenesisHashForPoW:        genesisHashForPoW,
		PowLimit:                 mainPowLimit,
		PowLimitBits:             bigToCompact(mainPowLimit),
		Fork1Height:              159000,
		TargetTimespan:           time.Hour * 12,
		TargetTimePerBlock:       time.Second * 150,
		AllowMinDifficultyBlocks: false,
		MinDiffReductionTime:     0,
		NoRetargeting:            false,
		SubsidyHalvingInterval:   840000,
	}
}
