// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"

	"github.com/jrick/bitset"
)

// smallPrimeLimit bounds the sieve of small primes used for trial division.
// The reference client trial-divides by "the first few thousand" primes
// before falling back to Miller-Rabin; sieving up to 65536 yields 6542
// primes, comfortably in that range.
const smallPrimeLimit = 1 << 16

// smallPrimes and smallPrimeBases are populated once from a sieve of
// Eratosthenes backed by a jrick/bitset composite table. smallPrimeBases
// holds the same values as big.Int, pre-built, since they double as the
// deterministic Miller-Rabin witness bases (see isProbablePrime).
var (
	smallPrimes     []uint32
	smallPrimeBases []*big.Int
)

func init() {
	composite := bitset.NewBytes(smallPrimeLimit)
	for p := uint32(2); p*p < smallPrimeLimit; p++ {
		if composite.Get(p) {
			continue
		}
		for multiple := p * p; multiple < smallPrimeLimit; multiple += p {
			composite.Set(multiple)
		}
	}
	for n := uint32(2); n < smallPrimeLimit; n++ {
		if !composite.Get(n) {
			smallPrimes = append(smallPrimes, n)
			smallPrimeBases = append(smallPrimeBases, new(big.Int).SetUint64(uint64(n)))
		}
	}
}

// PrimalityOracle matches the spec's consumed PrimalityOracle interface: a
// caller-supplied probabilistic primality test with an explicit witness
// count and an optional small-prime trial division pre-pass.
type PrimalityOracle interface {
	IsProbablePrime(n *big.Int, k int, trialDivision bool) bool
}

// defaultPrimalityOracle is the PrimalityOracle this core uses unless a
// caller substitutes one. It performs small-prime trial division (when
// requested) followed by k rounds of Miller-Rabin using the first k small
// primes as fixed, deterministic witness bases -- not random ones -- so
// that verification is reproducible across nodes, per spec.md §9.
type defaultPrimalityOracle struct{}

// DefaultPrimalityOracle is the PrimalityOracle used by CheckProofOfWork
// unless overridden.
var DefaultPrimalityOracle PrimalityOracle = defaultPrimalityOracle{}

// IsProbablePrime implements PrimalityOracle.
func (defaultPrimalityOracle) IsProbablePrime(n *big.Int, k int, trialDivision bool) bool {
	return isProbablePrime(n, k, trialDivision)
}

// isProbablePrime trial-divides n by the sieved small primes (when
// trialDivision is true) and then runs k rounds of a fixed-base
// Miller-Rabin test. The false-positive probability of the Miller-Rabin
// portion alone is at most 4^-k, matching the bound spec.md §6 requires of
// the PrimalityOracle contract.
func isProbablePrime(n *big.Int, k int, trialDivision bool) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.Cmp(big.NewInt(2)) < 0 {
		return false
	}

	if trialDivision {
		for _, p := range smallPrimes {
			pBig := int64(p)
			if n.Cmp(big.NewInt(pBig)) == 0 {
				return true
			}
			if new(big.Int).Mod(n, big.NewInt(pBig)).Sign() == 0 {
				return false
			}
		}
	}

	if k <= 0 {
		return true
	}
	if k > len(smallPrimeBases) {
		k = len(smallPrimeBases)
	}

	// Write n-1 = d * 2^r with d odd.
	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	for i := 0; i < k; i++ {
		base := smallPrimeBases[i]
		if base.Cmp(n) >= 0 {
			continue
		}
		if !millerRabinRound(n, nMinusOne, base, d, r) {
			return false
		}
	}
	return true
}

// millerRabinRound runs a single Miller-Rabin witness round against base,
// returning false only if base proves n composite.
func millerRabinRound(n, nMinusOne, base, d *big.Int, r int) bool {
	x := new(big.Int).Exp(base, d, n)
	if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}
