// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"
	"testing"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// TestGeneratePrimeBaseBitOrder pins the consensus-critical bit order: the
// hash is consumed least-significant-bit first, so the base's low-order
// bits (above the trailing zero padding) mirror the hash's high bits.
func TestGeneratePrimeBaseBitOrder(t *testing.T) {
	var hash chainhash.Hash
	hash[0] = 0x01 // bit 0 of the hash set, everything else clear.

	bits := BigToCompact(big.NewInt(significantDigits)) // zero trailing zeros.
	base, trailingZeros := GeneratePrimeBase(hash, bits)
	if trailingZeros != 0 {
		t.Fatalf("trailingZeros: got %d, want 0", trailingZeros)
	}

	// base = 1<<8, then 256 iterations of (base<<1)|bit. The only set
	// input bit is bit 0 (the first one consumed), so it ends up at the
	// most significant position among the 256 hash bits, i.e. bit
	// position 255 of the resulting base.
	want := new(big.Int).Lsh(big.NewInt(1), 255)
	want.Add(want, new(big.Int).Lsh(big.NewInt(1), 8+256)) // the seed "1<<8" term, shifted 256 times.

	if base.Cmp(want) != 0 {
		t.Fatalf("base mismatch: got %x, want %x", base, want)
	}
}

func TestGeneratePrimeBaseUnderDifficulty(t *testing.T) {
	var hash chainhash.Hash
	bits := BigToCompact(big.NewInt(significantDigits - 1))
	_, trailingZeros := GeneratePrimeBase(hash, bits)
	if trailingZeros != 0 {
		t.Fatalf("trailingZeros: got %d, want 0 for under-difficulty bits", trailingZeros)
	}
}

func TestGeneratePrimeBaseTrailingZeros(t *testing.T) {
	var hash chainhash.Hash
	const extra = 17
	bits := BigToCompact(big.NewInt(significantDigits + extra))
	base, trailingZeros := GeneratePrimeBase(hash, bits)
	if trailingZeros != extra {
		t.Fatalf("trailingZeros: got %d, want %d", trailingZeros, extra)
	}
	if base.Bit(0) != 0 {
		t.Fatalf("expected %d trailing zero bits in base", extra)
	}
}

func TestGeneratePrimeBaseSaturates(t *testing.T) {
	var hash chainhash.Hash
	// An exponent/mantissa pair that decodes to a value larger than
	// 2^32-1 must saturate rather than overflow uint32 or panic.
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	bits := BigToCompact(huge)
	_, trailingZeros := GeneratePrimeBase(hash, bits)
	if trailingZeros != maxSaturatedBits-significantDigits {
		t.Fatalf("trailingZeros: got %d, want %d", trailingZeros, maxSaturatedBits-significantDigits)
	}
}
