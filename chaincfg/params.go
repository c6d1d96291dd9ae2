// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/riecoin/riecoind/blockchain/standalone"
	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// bigToCompact converts a whole number to the compact representation used
// to encode proof-of-work difficulty targets. It is a thin, package-local
// alias for standalone.BigToCompact so the network parameter constructors
// below read the same way the original dcrd-lineage ones do.
func bigToCompact(n *big.Int) uint32 {
	return standalone.BigToCompact(n)
}

// bigOne is 1 represented as a big.Int. It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// hexDecode decodes the passed hex string and returns the resulting bytes.
// It panics on error since it is only used with hard-coded, and therefore
// known good, hex strings.
func hexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// newHashFromStr converts a big-endian hex string into a chainhash.Hash.
// It panics if the string is not a valid hash string, since it is only used
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic("invalid hash in source file: " + hexStr)
	}
	return *hash
}

// Net represents which riecoin network a message belongs to.
type Net uint32

// Constants used to indicate the message riecoin network.
const (
	// MainNet represents the main riecoin network.
	MainNet Net = 0x52434f49 // "RCOI" in ASCII, chosen arbitrarily.

	// TestNet represents the test network.
	TestNet Net = 0x52435431 // "RCT1"

	// SimNet represents the simulation test network.
	SimNet Net = 0x52435353 // "RCSS"

	// RegNet represents the regression test network.
	RegNet Net = 0x52435252 // "RCRR"
)

// String returns the Net in human-readable form.
func (n Net) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	case SimNet:
		return "simnet"
	case RegNet:
		return "regtest"
	default:
		return "unknown"
	}
}

// Params defines a riecoin network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// This is a deliberately small subset of the dcrd-lineage Params struct: the
// fields governing wallets, tickets, stake voting, deployments, and address
// encoding have no analog in a proof-of-work-only core and are omitted
// rather than carried as dead weight.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net Net

	// GenesisHash is the hash of the genesis block for the network.
	GenesisHash chainhash.Hash

	// GenesisHashForPoW is the hash CheckProofOfWork compares incoming
	// header hashes against to special-case the genesis block, which is
	// never itself subjected to proof-of-work verification. On mainnet
	// it differs from GenesisHash; on the other networks defined here
	// it is equal to GenesisHash. The fields are kept distinct because
	// nothing in the verification contract requires them to coincide.
	GenesisHashForPoW chainhash.Hash

	// PowLimit defines the lowest difficulty (prime size in bits) a
	// block may be required to meet; retargeting never goes below it.
	PowLimit *big.Int

	// PowLimitBits is PowLimit in compact form.
	PowLimitBits uint32

	// Fork1Height is the height at which the superblock and post-fork
	// retarget smoothing rules described in standalone.IsAfterFork1
	// activate. Heights at or below it use the pre-fork retarget rules
	// unconditionally.
	Fork1Height int64

	// TargetTimespan is the desired amount of time it should take to
	// find a group of blocks equal to the difficulty retarget window
	// (standalone.DifficultyAdjustmentInterval blocks).
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// AllowMinDifficultyBlocks defines whether the network allows blocks
	// to be mined with the minimum difficulty once more than twice
	// TargetTimePerBlock has passed since the previous block, and whether
	// CheckProofOfWork skips its offset-range check accordingly. This is
	// enabled for test networks to allow quicker testing.
	AllowMinDifficultyBlocks bool

	// MinDiffReductionTime records a per-network minimum-difficulty
	// delay. The retarget code does not read it: the minimum-difficulty
	// window is always twice TargetTimePerBlock.
	MinDiffReductionTime time.Duration

	// NoRetargeting defines whether the network should retarget
	// difficulty at all. It is intended for private test networks where
	// a fixed difficulty is convenient.
	NoRetargeting bool

	// SubsidyHalvingInterval is the number of blocks between subsidy
	// halvings.
	SubsidyHalvingInterval int64
}
