// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import "math/big"

// compactNonNegBit is the bit within the mantissa byte of a compact encoding
// that the reference client uses to flag a negative value. This core never
// produces or requires negative targets: CompactToBig ignores the bit, and
// CheckProofOfWork rejects any compact value with it set as malformed
// (see IsMalformedCompact).
const compactNonNegBit = 0x00800000

// CompactToBig converts a compact representation of a whole number N to an
// big.Int. The format is described in detail below, but the basic idea is
// that it's a base 256 number with an 8-bit exponent and 24-bit mantissa and
// thus it is the equivalent of:
//
//	N = mantissa * 256^(exponent-3)
//
// This compact form is used by proof-of-work systems derived from Bitcoin to
// encode difficulty targets and is used here to encode both the prime-search
// difficulty and the resulting base integer's significant digit count.
//
// The negative flag bit (bit 23 of the mantissa, i.e. 0x00800000) is unused
// by this core; a set flag bit is always treated as zero rather than as a
// sign, matching the behavior the reference implementation relies on.
func CompactToBig(compact uint32) *big.Int {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := compact&compactNonNegBit != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly. This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	// The sign bit is unused by this core; the magnitude is returned
	// regardless of its state.
	_ = isNegative
	return bn
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number. The compact representation only provides 23
// bits of precision, so values larger than (2^23 - 1) only encode the
// most significant digits of the number. See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by
	// 256 and increment the exponent accordingly.
	if mantissa&compactNonNegBit != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	return compact
}

// CompactLess reports whether the magnitude encoded by a is strictly less
// than the magnitude encoded by b, comparing their decoded big.Int values.
// It exists so callers that only need an ordering (e.g. clamping a
// difficulty against a network's pow limit) never need to round-trip
// through CompactToBig themselves.
func CompactLess(a, b uint32) bool {
	return CompactToBig(a).Cmp(CompactToBig(b)) < 0
}

// IsMalformedCompact reports whether compact sets the sign bit that this
// core does not support. The reference riecoin client silently treats the
// bit as unused; a conservative implementation rejects it instead. See
// spec.md §4.A and §9.
func IsMalformedCompact(compact uint32) bool {
	return compact&compactNonNegBit != 0
}
