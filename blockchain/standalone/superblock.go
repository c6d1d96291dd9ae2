// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import "math/big"

// superblockNumerator and superblockShift implement the superblock
// difficulty multiplier 95859/65536 ~= (4168/136)^(1/9), applied directly
// to the compact-encoded difficulty rather than the 9th-power work value.
// See spec.md §3 and §4.D.
const (
	superblockNumerator = 95859
	superblockShift     = 16
)

// superblockSmoothNumer/Denom and postSuperblockSmoothNumer/Denom correct
// the average retarget timespan for the one-block difficulty spike a
// superblock introduces.
const (
	superblockSmoothNumer     = 68
	superblockSmoothDenom     = 75
	postSuperblockSmoothNumer = 75
	postSuperblockSmoothDenom = 68
)

// DifficultyAdjustmentInterval is the number of blocks between retargets:
// TargetTimespan / TargetSpacing = 12h / 2.5m = 288.
const DifficultyAdjustmentInterval = 288

// superblockWindowOffset is the within-interval block height at which a
// superblock lands (once per qualifying interval).
const superblockWindowOffset = 144

// superblockIntervalPeriod is how many adjustment intervals occur between
// superblocks: once every 14 windows puts a superblock roughly once a week
// given a 12-hour window.
const superblockIntervalPeriod = 14

// superblockIntervalOffset is which of the 14 windows in the period carries
// the superblock.
const superblockIntervalOffset = 12

// IsAfterFork1 reports whether height is past the superblock activation
// height for the network the given fork1Height belongs to. Below this
// height, the superblock and post-superblock retarget rules never fire.
func IsAfterFork1(height int64, fork1Height int64) bool {
	return height > fork1Height
}

// IsInSuperblockInterval reports whether the adjustment interval
// containing height is the one-in-fourteen interval that carries a
// superblock.
func IsInSuperblockInterval(height int64) bool {
	return (height/DifficultyAdjustmentInterval)%superblockIntervalPeriod == superblockIntervalOffset
}

// IsSuperblock reports whether height is itself the superblock within its
// (superblock-carrying) adjustment interval.
func IsSuperblock(height int64) bool {
	return height%DifficultyAdjustmentInterval == superblockWindowOffset &&
		IsInSuperblockInterval(height)
}

// SuperblockBits returns the compact difficulty for a superblock given the
// prior block's compact difficulty: prevBits scaled by 95859/65536, the
// ninth root of the 4168/136 superblock work multiplier.
func SuperblockBits(prevBits uint32) uint32 {
	bn := CompactToBig(prevBits)
	bn.Mul(bn, big.NewInt(superblockNumerator))
	bn.Rsh(bn, superblockShift)
	return BigToCompact(bn)
}

// CalcWork computes the work estimate backing the retarget engine's
// effort model: the linear difficulty (decoded from bits) raised to the
// 9th power (3 + ConstellationSize), per the Hardy-Littlewood-motivated
// rationale in spec.md §4.D step 3.
func CalcWork(bits uint32) *big.Int {
	diff := CompactToBig(bits)
	work := new(big.Int).Set(diff)
	for i := 1; i < 3+ConstellationSize; i++ {
		work.Mul(work, diff)
	}
	return work
}

// ApplySuperblockSmoothing adjusts a freshly retargeted work value to
// correct for the one-block difficulty spike a superblock introduces into
// its interval's average timespan. containsSuperblock and
// followsSuperblock are mutually exclusive by construction (an interval
// cannot both contain this period's superblock and immediately follow
// one), but the function applies at most one correction regardless.
func ApplySuperblockSmoothing(work *big.Int, containsSuperblock, followsSuperblock bool) *big.Int {
	switch {
	case containsSuperblock:
		work = new(big.Int).Mul(work, big.NewInt(superblockSmoothNumer))
		work.Div(work, big.NewInt(superblockSmoothDenom))
	case followsSuperblock:
		work = new(big.Int).Mul(work, big.NewInt(postSuperblockSmoothNumer))
		work.Div(work, big.NewInt(postSuperblockSmoothDenom))
	}
	return work
}
