// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// RegNetParams returns the network parameters for the regression test
// riecoin network.
func RegNetParams() *Params {
	// regNetPowLimit is RIECOIN_MIN_PRIME_SIZE; see the comment on
	// mainPowLimit in mainnetparams.go.
	regNetPowLimit := big.NewInt(304)

	genesisHash := newHashFromStr(
		"2222222222222222222222222222222222222222222222222222222222222222",
	)

	return &Params{
		Name:        "regtest",
		Net:         RegNet,
		GenesisHash: genesisHash,

		GenesisHashForPoW: genesisHash,
		PowLimit:          regNetPowLimit,
		PowLimitBits:      bigToCompact(regNetPowLimit),
		Fork1Height:       0,

		TargetTimespan:     time.Hour * 12,
		TargetTimePerBlock: time.Second * 150,

		AllowMinDifficultyBlocks: true,
		MinDiffReductionTime:     time.Minute,

		// Regtest is the one network where the interval retarget is
		// disabled: a retarget block keeps its predecessor's bits.
		// The superblock and minimum-difficulty rules still apply.
		NoRetargeting:          true,
		SubsidyHalvingInterval: 840000,
	}
}
