// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// SimNetParams returns the network parameters for the simulation test
// riecoin network.
func SimNetParams() *Params {
	// simNetPowLimit is RIECOIN_MIN_PRIME_SIZE; see the comment on
	// mainPowLimit in mainnetparams.go.
	simNetPowLimit := big.NewInt(304)

	genesisHash := newHashFromStr(
		"3333333333333333333333333333333333333333333333333333333333333333",
	)

	return &Params{
		Name:        "simnet",
		Net:         SimNet,
		GenesisHash: genesisHash,

		GenesisHashForPoW: genesisHash,
		PowLimit:          simNetPowLimit,
		PowLimitBits:      bigToCompact(simNetPowLimit),
		Fork1Height:       0,

		TargetTimespan:     time.Minute*14 + time.Second*24,
		TargetTimePerBlock: time.Second * 3,

		AllowMinDifficultyBlocks: true,
		MinDiffReductionTime:     time.Second * 15,

		NoRetargeting:          false,
		SubsidyHalvingInterval: 840000,
	}
}
