// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// ConstellationSize is the number of members in the prime constellation a
// valid proof of work must witness.
const ConstellationSize = 6

// constellationOffsets are the fixed small offsets from the base T that
// must all be prime: T, T+4, T+6, T+10, T+12, T+16. They are chosen so
// that, combined with T mod 210 == 97, every member is automatically
// coprime to 2, 3, 5, and 7.
var constellationOffsets = [ConstellationSize]int64{0, 4, 6, 10, 12, 16}

// requiredResidue is the residue class modulo 210 (= 2*3*5*7) that the base
// of a valid constellation witness must belong to.
const requiredResidue = 97

const residueModulus = 210

// witnessStep describes one entry in the fixed, order-sensitive primality
// schedule CheckProofOfWork runs over the candidate constellation. See
// spec.md §4.C; the asymmetric pass (weak-then-strong, with an outlier k=4
// on the last member, T+16) is deliberate and preserved verbatim -- it has no
// documented rationale upstream but changing it would change which
// candidates verify.
type witnessStep struct {
	offsetIndex   int
	k             int
	trialDivision bool
}

var witnessSchedule = [11]witnessStep{
	{0, 1, true},
	{1, 1, true},
	{2, 1, true},
	{3, 1, true},
	{4, 1, true},
	{5, 4, true},
	{4, 3, false},
	{3, 3, false},
	{2, 3, false},
	{1, 3, false},
	{0, 3, false},
}

// CheckProofOfWork reports whether delta witnesses a valid length-6 prime
// constellation at the difficulty given by bits, for the header hash hash.
// It returns nil on success and a PowError identifying the first failing
// check otherwise.
//
// hash == genesisHashForPoW is special-cased to always succeed, matching
// the reference client's unconditional bypass for the genesis block, which
// is never itself evaluated for proof of work.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, delta *big.Int, genesisHashForPoW chainhash.Hash, allowMinDifficultyBlocks bool) error {
	return CheckProofOfWorkOracle(hash, bits, delta, genesisHashForPoW, allowMinDifficultyBlocks, DefaultPrimalityOracle)
}

// CheckProofOfWorkOracle is CheckProofOfWork with an explicit
// PrimalityOracle, exposed so callers (and tests) can substitute a
// different primality implementation without changing the verification
// logic itself.
func CheckProofOfWorkOracle(hash chainhash.Hash, bits uint32, delta *big.Int, genesisHashForPoW chainhash.Hash, allowMinDifficultyBlocks bool, oracle PrimalityOracle) error {
	if hash.IsEqual(&genesisHashForPoW) {
		return nil
	}

	if IsMalformedCompact(bits) {
		return malformedCompactErr(bits)
	}

	t0, trailingZeros := GeneratePrimeBase(hash, bits)

	if trailingZeros < 256 && !allowMinDifficultyBlocks {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(trailingZeros))
		if delta.Cmp(limit) >= 0 {
			return offsetOutOfRangeErr(delta, limit)
		}
	}

	t := new(big.Int).Add(t0, delta)

	residue := new(big.Int).Mod(t, big.NewInt(residueModulus)).Int64()
	if residue != requiredResidue {
		return wrongResidueErr(residue)
	}

	for _, step := range witnessSchedule {
		offset := constellationOffsets[step.offsetIndex]
		candidate := new(big.Int).Add(t, big.NewInt(offset))
		if !oracle.IsProbablePrime(candidate, step.k, step.trialDivision) {
			log.Tracef("constellation base %s failed at offset %d (k=%d)", t, offset, step.k)
			return notPrimeErr(uint8(offset), uint8(step.k))
		}
	}

	return nil
}
