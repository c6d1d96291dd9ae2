// Copyright (c) 2014-2018 The riecoin developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// zerosBeforeHashInPrime is the number of zero bits inserted between the
// leading one bit and the header hash bits when constructing the prime
// base. See spec.md §3.
const zerosBeforeHashInPrime = 8

// significantDigits is the bit-length of the base before any trailing
// zeros added by the difficulty are appended: one leading bit, plus the
// zero padding, plus the 256 hash bits.
const significantDigits = 1 + zerosBeforeHashInPrime + 256

// maxSaturatedBits is the largest value the difficulty's raw bit count can
// take before being saturated; this client stores it in a 32-bit word even
// though the wire encoding technically supports wider values. See spec.md
// §4.B and the "Open Questions" note in §9.
const maxSaturatedBits = 1<<32 - 1

// GeneratePrimeBase deterministically derives the starting integer T0 used
// by the constellation verifier from a block's header hash and its compact
// difficulty encoding. It returns T0 along with the number of trailing zero
// bits appended to account for any difficulty above the minimum the hash
// alone provides. A trailingZeros of 0 is returned both when the compact
// bits decode to exactly the significant digit count and when they fall
// short of it. CheckProofOfWork does not reject either case outright: its
// offset bound then admits only a zero offset, and that bound is skipped
// entirely on networks that allow minimum-difficulty blocks.
//
// This exact construction -- consuming the hash least-significant-bit
// first -- is consensus-critical; see spec.md §4.B step 2.
func GeneratePrimeBase(hash chainhash.Hash, bits uint32) (*big.Int, uint32) {
	t0 := big.NewInt(1)
	t0.Lsh(t0, zerosBeforeHashInPrime)

	for i := 0; i < chainhash.HashSize*8; i++ {
		t0.Lsh(t0, 1)
		if hash.Bit(i) == 1 {
			t0.SetBit(t0, 0, 1)
		}
	}

	nBits := CompactToBig(bits)
	var trailingZeros uint32
	if !nBits.IsUint64() || nBits.Uint64() > maxSaturatedBits {
		trailingZeros = maxSaturatedBits
	} else {
		trailingZeros = uint32(nBits.Uint64())
	}

	if trailingZeros < significantDigits {
		return t0, 0
	}
	trailingZeros -= significantDigits
	t0.Lsh(t0, uint(trailingZeros))
	return t0, trailingZeros
}
