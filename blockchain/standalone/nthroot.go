// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import "math/big"

// IntegerNthRoot returns the greatest integer r such that r^root <= n,
// starting the doubling/halving search from initial. Implementations MUST
// NOT substitute floating point for this step -- the search is
// consensus-critical (spec.md §9) and must reproduce the reference
// client's CBigNum-based nthRoot bit for bit.
func IntegerNthRoot(n *big.Int, root int, initial *big.Int) *big.Int {
	result := new(big.Int).Set(initial)

	one := big.NewInt(1)
	delta := new(big.Int).Rsh(initial, 1)
	if delta.Cmp(one) < 0 {
		// The reference algorithm starts its search width at
		// initial/2, which stalls immediately whenever initial is 0
		// or 1. Flooring the starting delta at 1 keeps the search
		// converging for small bounds without changing behavior for
		// the realistic, much larger bounds the retarget engine
		// actually passes in.
		delta.Set(one)
	}
	// The search below only ever moves up from result, so a starting point
	// that already overshoots the root is halved until it no longer does.
	for result.Sign() > 0 {
		if new(big.Int).Exp(result, big.NewInt(int64(root)), nil).Cmp(n) <= 0 {
			break
		}
		result.Rsh(result, 1)
	}
	for delta.Cmp(one) >= 0 {
		result.Add(result, delta)
		aux := new(big.Int).Set(result)
		for i := 1; i < root; i++ {
			aux.Mul(aux, result)
		}
		if aux.Cmp(n) > 0 {
			result.Sub(result, delta)
			delta.Rsh(delta, 1)
		} else {
			delta.Lsh(delta, 1)
		}
	}
	return result
}
