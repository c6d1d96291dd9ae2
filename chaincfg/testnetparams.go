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

// TestNetParams returns the network parameters for the test riecoin
// network.
func TestNetParams() *Params {
	// testPowLimit is RIECOIN_MIN_PRIME_SIZE; see the comment on
	// mainPowLimit in mainnetparams.go.
	testPowLimit := big.NewInt(304)

	genesisHash := newHashFromStr(
		"1111111111111111111111111111111111111111111111111111111111111111",
	)

	return &Params{
		Name:        "testnet",
		Net:         TestNet,
		GenesisHash: genesisHash,

		GenesisHashForPoW: genesisHash,
		PowLimit:          testPowLimit,
		PowLimitBits:      bigToCompact(testPowLimit),
		Fork1Height:       3000,

		TargetTimespan:     time.Hour * 12,
		TargetTimePerBlock: time.Second * 150,

		// Testnet allows mining blocks at the network's minimum
		// difficulty once twice TargetTimePerBlock (five minutes, the
		// same as MinDiffReductionTime here) elapses with no new
		// block, and CheckProofOfWork skips the offset-range check
		// for it.
		AllowMinDifficultyBlocks: true,
		MinDiffReductionTime:     time.Minute * 5,

		NoRetargeting:          false,
		SubsidyHalvingInterval: 840000,
	}
}
