// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/riecoin/riecoind/blockchain/standalone"
	"github.com/riecoin/riecoind/chaincfg"
	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// minPrimeSizeBitsRaw is RIECOIN_MIN_PRIME_SIZE, the raw integer value of
// every network's PowLimit, compared directly against a parent's compact
// nBits field when walking back through testnet's minimum-difficulty
// blocks. It is not a valid compact encoding of that integer -- comparing
// against the raw 304 instead of against PowLimitBits (304's actual
// compact encoding) is the reference implementation's own bug. Preserving
// it, rather than fixing the comparison to use PowLimitBits, is required
// for consensus compatibility: see DESIGN.md for the walk-back this
// produces in practice.
const minPrimeSizeBitsRaw = 304

// findPrevTestNetDifficulty returns the difficulty of the previous block
// which did not have the special testnet minimum difficulty rule applied.
//
// This function MUST be called with the chain state lock held (for reads).
func findPrevTestNetDifficulty(tip *blockNode) uint32 {
	node := tip
	for node.parent != nil && node.parent.height%standalone.DifficultyAdjustmentInterval != 0 &&
		node.parent.bits == minPrimeSizeBitsRaw {

		node = node.parent
	}
	return node.bits
}

// calcNextRequiredDifficulty calculates the required difficulty for the
// block that would follow tip, given its prospective timestamp.
//
// This is the pure retarget function spec'd as next_work_required: it has
// no observable side effects beyond reading tip's ancestry, and calling it
// repeatedly with the same arguments always yields the same result.
func calcNextRequiredDifficulty(tip *blockNode, nextBlockTime time.Time, params *chaincfg.Params) uint32 {
	// Genesis block: there is no predecessor to retarget from.
	if tip == nil {
		return params.PowLimitBits
	}

	height := tip.height + 1
	afterFork1 := standalone.IsAfterFork1(height, params.Fork1Height)

	// Off-interval behavior.
	if height%standalone.DifficultyAdjustmentInterval != 0 {
		if afterFork1 {
			if standalone.IsSuperblock(height) {
				return standalone.SuperblockBits(tip.bits)
			}
			if standalone.IsSuperblock(height - 1) {
				// tip is itself the superblock; restore the
				// pre-superblock difficulty from its parent.
				if tip.parent != nil {
					return tip.parent.bits
				}
				return tip.bits
			}
		}

		if params.AllowMinDifficultyBlocks {
			allowMinTime := tip.timestamp + 2*int64(params.TargetTimePerBlock/time.Second)
			if nextBlockTime.Unix() > allowMinTime {
				return params.PowLimitBits
			}
			return findPrevTestNetDifficulty(tip)
		}

		return tip.bits
	}

	// On-interval retarget.
	firstHeight := tip.height - (standalone.DifficultyAdjustmentInterval - 1)
	if firstHeight < 1 {
		firstHeight = 1
	}
	firstNode := tip.ancestor(firstHeight)
	tActual := tip.timestamp - firstNode.timestamp

	if params.NoRetargeting {
		return tip.bits
	}

	targetTimespanSecs := int64(params.TargetTimespan / time.Second)
	if height >= 2*standalone.DifficultyAdjustmentInterval {
		minTimespan := targetTimespanSecs / 4
		maxTimespan := targetTimespanSecs * 4
		if tActual < minTimespan {
			tActual = minTimespan
		} else if tActual > maxTimespan {
			tActual = maxTimespan
		}
	}

	work := standalone.CalcWork(tip.bits)
	newWork := new(big.Int).Mul(work, big.NewInt(targetTimespanSecs))
	newWork.Div(newWork, big.NewInt(tActual))

	if afterFork1 {
		containsSuperblock := standalone.IsInSuperblockInterval(height)
		followsSuperblock := !containsSuperblock && standalone.IsInSuperblockInterval(height-1)
		newWork = standalone.ApplySuperblockSmoothing(newWork, containsSuperblock, followsSuperblock)
	}

	initial := new(big.Int).Rsh(standalone.CompactToBig(tip.bits), 1)
	newDiff := standalone.IntegerNthRoot(newWork, 3+standalone.ConstellationSize, initial)

	if newDiff.Cmp(params.PowLimit) < 0 {
		newDiff.Set(params.PowLimit)
	}
	maxDiff := new(big.Int).SetUint64(1<<32 - 1)
	if newDiff.Cmp(maxDiff) > 0 {
		newDiff.Set(maxDiff)
	}

	nextBits := standalone.BigToCompact(newDiff)
	log.Debugf("Difficulty retarget at block height %d", height)
	log.Debugf("Old target %08x (%s)", tip.bits, work)
	log.Debugf("New target %08x (%s)", nextBits, newDiff)
	return nextBits
}

// CalcNextRequiredDifficulty calculates the required difficulty for the
// block after the given block based on the difficulty retarget rules.
//
// This function is safe for concurrent access.
func (b *BlockChain) CalcNextRequiredDifficulty(hash *chainhash.Hash, timestamp time.Time) (uint32, error) {
	node := b.index.LookupNode(hash)
	if node == nil {
		return 0, unknownBlockError(hash)
	}

	b.chainLock.Lock()
	difficulty := calcNextRequiredDifficulty(node, timestamp, b.chainParams)
	b.chainLock.Unlock()
	return difficulty, nil
}
